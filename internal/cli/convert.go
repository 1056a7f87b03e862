package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgpai22/lyrix/internal/lrc"
	"github.com/mgpai22/lyrix/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [lyric_file]",
	Short: "Convert between LRC lyrics and subtitle formats",
	Long: `Convert an LRC lyric file to a subtitle file, or an SRT subtitle
file back to LRC.

For LRC input, each timed lyric line becomes a subtitle cue that stays on
screen until the next line starts; the last line stays for a fixed tail
gap. Metadata tags are not carried into subtitle output.

Examples:
  lyrix convert song.lrc
  lyrix convert song.lrc --format vtt -o song.vtt
  lyrix convert song.lrc --tail-gap 3s
  lyrix convert subs.srt -o song.lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt, ass)")
	convertCmd.Flags().
		Duration("tail-gap", 5*time.Second, "Display duration of the final lyric line")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, _ := cmd.Flags().GetString("format")
	tailGap, _ := cmd.Flags().GetDuration("tail-gap")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("lyric file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	switch ext {
	case ".lrc":
		return convertLRC(inputPath, outputPath, format, tailGap)
	case ".srt":
		return convertSRT(inputPath, outputPath)
	default:
		return fmt.Errorf("unsupported input format %q: use .lrc or .srt", ext)
	}
}

// maps a --format flag value to a subtitle format
func parseOutputFormat(s string) (subtitle.Format, error) {
	switch format := subtitle.Format(strings.ToLower(strings.TrimSpace(s))); format {
	case subtitle.FormatSRT, subtitle.FormatVTT, subtitle.FormatASS:
		return format, nil
	default:
		return "", fmt.Errorf(
			"invalid format %q: supported formats are srt, vtt, ass",
			s,
		)
	}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func convertLRC(
	inputPath, outputPath, formatStr string,
	tailGap time.Duration,
) error {
	format, err := parseOutputFormat(formatStr)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = replaceExt(inputPath, subtitle.GetExtensionForFormat(format))
	}

	logger.Infow("Converting lyrics",
		"input", inputPath,
		"output", outputPath,
		"format", formatStr,
		"tail_gap", tailGap,
	)

	file, err := lrc.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse LRC file: %w", err)
	}

	exporter := &lrc.Exporter{TailGap: tailGap}
	sub := exporter.Export(file)

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(sub, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Lyrics converted successfully: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(sub.Entries))
	if title := file.Title(); title != "" {
		fmt.Printf("  Title: %s\n", title)
	}

	return nil
}

func convertSRT(inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = replaceExt(inputPath, ".lrc")
	}

	logger.Infow("Importing subtitles",
		"input", inputPath,
		"output", outputPath,
	)

	sub, err := subtitle.ParseSRTFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse SRT file: %w", err)
	}

	file := lrc.FromSubtitle(sub)
	if err := file.WriteFile(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles imported successfully: %s\n", absOutput)
	fmt.Printf("  Lines: %d\n", file.Len())

	return nil
}
