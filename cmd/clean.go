package cmd

import (
	"fmt"
	"os"

	"github.com/ZZRSIC/YouTube-crawler/internal/config"
	"github.com/ZZRSIC/YouTube-crawler/internal/pipeline"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <caption-file>",
	Short: "Clean a caption or transcript file into plain prose",
	Long: `Clean a local VTT caption track or an already-flattened transcript file:
timing lines and markup are stripped, repeated caption lines are collapsed,
filler phrases are suppressed, and adjacent duplicate sentences are removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

var (
	cleanOutput      string
	cleanInline      bool
	cleanExtraFiller []string
	cleanFillersFile string
)

func init() {
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "output path (default: stdout)")
	cleanCmd.Flags().BoolVar(&cleanInline, "inline-fillers", false, "also remove filler phrases inside sentences")
	cleanCmd.Flags().StringArrayVar(&cleanExtraFiller, "filler", nil, "extra filler phrase to suppress (repeatable)")
	cleanCmd.Flags().StringVar(&cleanFillersFile, "fillers-file", "", "newline-separated filler phrase list")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts, err := cleanOptions(config.CleaningConfig{
		InlineFillers: cleanInline,
		ExtraFillers:  cleanExtraFiller,
		FillersFile:   cleanFillersFile,
	})
	if err != nil {
		return err
	}

	text := pipeline.CleanBytes(raw, opts)

	if cleanOutput == "" || cleanOutput == "-" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(cleanOutput, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
