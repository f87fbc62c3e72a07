package schedule

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportWeek writes the weekly grid as an xlsx workbook, one row per
// employee, matching the on-screen table. The returned string is the
// suggested download file name.
func (s *Service) ExportWeek(ctx context.Context, w io.Writer, anchor string) (string, error) {
	view, err := s.Week(ctx, anchor)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetCellValue(sheet, "A1", "Employee"); err != nil {
		return "", err
	}
	for i, day := range view.Days {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, day); err != nil {
			return "", err
		}
	}

	for r, row := range view.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, row.Label); err != nil {
			return "", err
		}
		for c, value := range row.Cells {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+2, r+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}

	return "schedule-week-" + view.Anchor + ".xlsx", nil
}
