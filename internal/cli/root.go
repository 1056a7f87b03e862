package cli

import (
	"github.com/mgpai22/lyrix/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyrix",
	Short: "LRC lyric file toolkit",
	Long: `Lyrix parses, formats and converts LRC lyric files.

It reads timed lyrics with their metadata tags, writes them back as
normalized LRC, and converts them to SRT, VTT or ASS subtitles.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
