package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mgpai22/lyrix/internal/lrc"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [lyric_file]",
	Short: "Normalize an LRC lyric file",
	Long: `Parse an LRC file and write it back with normalized time codes and
tag formatting.

With --merge-repeats, consecutive lines with identical text are collapsed
into a single line carrying both time tags. With --text-only, only the
lyric text is written, without time codes or metadata.

Examples:
  lyrix fmt song.lrc
  lyrix fmt song.lrc --merge-repeats -o clean.lrc
  lyrix fmt song.lrc --text-only -o song.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().
		Bool("merge-repeats", false, "Collapse repeated lines into repeat time tags")
	fmtCmd.Flags().
		Bool("text-only", false, "Write lyric text without time codes or metadata")
}

func runFmt(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	mergeRepeats, _ := cmd.Flags().GetBool("merge-repeats")
	textOnly, _ := cmd.Flags().GetBool("text-only")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		outputPath = inputPath
	}

	logger.Infow("Formatting lyrics",
		"input", inputPath,
		"output", outputPath,
		"merge_repeats", mergeRepeats,
		"text_only", textOnly,
	)

	file, err := lrc.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse LRC file: %w", err)
	}

	if mergeRepeats {
		before := file.Len()
		file.MergeRepeats()
		logger.Debugw("Merged repeated lines",
			"before", before,
			"after", file.Len(),
		)
	}

	if textOnly {
		if err := os.WriteFile(outputPath, []byte(file.PlainText()+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		if err := file.WriteFile(outputPath); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Lyrics formatted successfully: %s\n", absOutput)
	fmt.Printf("  Events: %d\n", file.Len())

	return nil
}
