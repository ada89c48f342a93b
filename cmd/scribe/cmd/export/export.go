package export

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"meetscribe/internal/app"
	appexport "meetscribe/internal/app/export"
	"meetscribe/internal/config"
)

var outputFile string

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "transcripts.xlsx",
		"path of the Excel file to write")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored transcripts to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		dao, cleanup, err := app.InitializeDAO(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		transcripts, err := dao.ListAll(context.Background())
		if err != nil {
			return err
		}

		if err := appexport.ToExcel(transcripts, outputFile); err != nil {
			return err
		}

		fmt.Printf("exported %d transcripts to %s\n", len(transcripts), outputFile)
		return nil
	},
}
