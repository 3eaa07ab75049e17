package render

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/streanger/setmatch"
)

// XLSX writes the result as a spreadsheet workbook: a green header
// row, centered check marks on a grey fill for present cells and
// column widths sized to their content.
func XLSX(path string, res *setmatch.MatchResult, opts Options) error {
	m := opts.markers(xlsxMarkers)
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"009879"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	markerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	var header []string
	if opts.Index {
		header = append(header, indexColumn)
	}
	header = append(header, res.Header...)
	widths := make([]int, len(header))
	for c, label := range header {
		widths[c] = max(len(label), 4)
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	keyCol := 0
	if opts.Index {
		keyCol = 1
	}
	for i, r := range res.Rows {
		row := make([]string, 0, len(header))
		present := make([]bool, 0, len(header))
		if opts.Index {
			row = append(row, strconv.Itoa(i+1))
			present = append(present, false)
		}
		row = append(row, r.Key)
		present = append(present, false)
		for _, p := range r.Presence {
			if p {
				row = append(row, m.True)
			} else {
				row = append(row, m.False)
			}
			present = append(present, p)
		}
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if present[c] {
				if err := f.SetCellStyle(sheet, cell, cell, markerStyle); err != nil {
					return err
				}
			}
			// presence columns keep their header width
			if c <= keyCol {
				widths[c] = max(widths[c], len(value))
			}
		}
	}

	for c, width := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
