// Package export writes stored transcripts out as an Excel workbook.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"meetscribe/internal/app/model"
)

// ToExcel writes the transcripts to an .xlsx file at outputFilePath.
func ToExcel(transcripts []model.Transcript, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Title"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Content"

	for _, t := range transcripts {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.Title
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.Content
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
