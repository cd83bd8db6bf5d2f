package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook serializes the sheets into one xlsx workbook.
func WriteWorkbook(w io.Writer, sheets []*Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles := newStyleCache(f)
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(f, styles, sheet); err != nil {
			return fmt.Errorf("writing sheet %q: %w", sheet.Name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("serializing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, styles *styleCache, s *Sheet) error {
	for pos, cell := range s.Cells {
		ref, err := excelize.CoordinatesToCellName(pos[1]+1, pos[0]+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Name, ref, cell.Value); err != nil {
			return err
		}
		styleID, err := styles.idFor(cell)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Name, ref, ref, styleID); err != nil {
			return err
		}
	}

	for _, m := range s.Merges {
		topLeft, err := excelize.CoordinatesToCellName(m.StartCol+1, m.StartRow+1)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(m.EndCol+1, m.EndRow+1)
		if err != nil {
			return err
		}
		if err := f.MergeCell(s.Name, topLeft, bottomRight); err != nil {
			return err
		}
	}

	for i, width := range s.ColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, col, col, width); err != nil {
			return err
		}
	}
	for row, height := range s.RowHeights {
		if err := f.SetRowHeight(s.Name, row+1, height); err != nil {
			return err
		}
	}
	return nil
}

// styleCache creates each distinct (token, fill) style once per workbook.
type styleCache struct {
	f   *excelize.File
	ids map[string]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, ids: make(map[string]int)}
}

func (c *styleCache) idFor(cell Cell) (int, error) {
	key := string(cell.Style) + "/" + cell.Fill
	if id, ok := c.ids[key]; ok {
		return id, nil
	}
	id, err := c.f.NewStyle(styleSpec(cell))
	if err != nil {
		return 0, fmt.Errorf("creating style %s: %w", key, err)
	}
	c.ids[key] = id
	return id, nil
}

func thinBorder() []excelize.Border {
	const color = "B4C6E7"
	return []excelize.Border{
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
	}
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func styleSpec(cell Cell) *excelize.Style {
	switch cell.Style {
	case StyleHeader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      fill("4472C4"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}
	case StyleLabel:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      fill("D9E2F3"),
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder(),
		}
	case StyleNumber:
		return &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
			Border:    thinBorder(),
		}
	case StyleDay:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 8, Color: "FFFFFF"},
			Fill:      fill("4472C4"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}
	case StyleDayWeekend:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 8, Color: "FF6666"},
			Fill:      fill("2F5496"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}
	case StyleBar, StyleSwatch:
		return &excelize.Style{
			Fill:   fill(cell.Fill),
			Border: thinBorder(),
		}
	default: // StyleCell
		return &excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder(),
		}
	}
}
