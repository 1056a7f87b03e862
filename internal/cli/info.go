package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/lyrix/internal/lrc"
)

var infoCmd = &cobra.Command{
	Use:   "info [lyric_file]",
	Short: "Show metadata and statistics for an LRC file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	file, err := lrc.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse LRC file: %w", err)
	}

	lyrics := 0
	metadata := 0
	for _, event := range file.Events() {
		switch event.Kind {
		case lrc.KindMetadata:
			metadata++
		case lrc.KindLyric:
			lyrics++
		}
	}

	fmt.Printf("File: %s\n", inputPath)
	fmt.Printf("  ID: %s\n", file.ID())
	if title := file.Title(); title != "" {
		fmt.Printf("  Title: %s\n", title)
	}
	if artist := file.Artist(); artist != "" {
		fmt.Printf("  Artist: %s\n", artist)
	}
	if album := file.Album(); album != "" {
		fmt.Printf("  Album: %s\n", album)
	}
	if length := file.Length(); length != "" {
		fmt.Printf("  Length: %s\n", length)
	}
	fmt.Printf("  Lyric lines: %d\n", lyrics)
	fmt.Printf("  Metadata tags: %d\n", metadata)

	return nil
}
