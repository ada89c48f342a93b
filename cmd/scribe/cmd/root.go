package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"meetscribe/cmd/scribe/cmd/export"
	"meetscribe/cmd/scribe/cmd/ingest"
	"meetscribe/cmd/scribe/cmd/serve"
	"meetscribe/cmd/scribe/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A backend for transcribing audio and chatting about the transcripts",
	Long: `A backend for transcribing audio and chatting about the transcripts.
- serve the HTTP API for uploads, YouTube downloads and transcript Q&A
- batch-import local audio files from a directory
- export stored transcripts to an Excel workbook`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(ingest.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
