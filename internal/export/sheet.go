// Package export builds the styled spreadsheet representation of a project.
// Sheet builders are pure: entities in, an abstract cell grid out. The
// workbook writer serializes that grid; nothing here touches the filesystem.
package export

// StyleID is an abstract style token. The writer maps tokens to concrete
// spreadsheet styles; builders never deal in fonts or borders directly.
type StyleID string

const (
	// StyleHeader is the blue header band with white bold text.
	StyleHeader StyleID = "header"
	// StyleLabel is the bold, tinted label column on the overview sheet.
	StyleLabel StyleID = "label"
	// StyleCell is a plain bordered data cell.
	StyleCell StyleID = "cell"
	// StyleNumber is a right-aligned data cell for numeric values.
	StyleNumber StyleID = "number"
	// StyleDay is the small day-of-month header cell.
	StyleDay StyleID = "day"
	// StyleDayWeekend is StyleDay with the weekend tint.
	StyleDayWeekend StyleID = "day_weekend"
	// StyleBar is a gantt interval cell; Fill carries the status color.
	StyleBar StyleID = "bar"
	// StyleSwatch is a color sample cell; Fill carries the hex color.
	StyleSwatch StyleID = "swatch"
)

// Gantt bar colors by status, shared with the interactive timeline.
const (
	ColorNotStarted = "BFBFBF"
	ColorInProgress = "4472C4"
	ColorDone       = "70AD47"
)

// Cell is one styled cell. Value is a string or a number; Fill is only set
// for fill-carrying styles.
type Cell struct {
	Value any
	Style StyleID
	Fill  string
}

// Merge is an inclusive rectangular cell merge.
type Merge struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// Sheet is the abstract grid a builder produces.
type Sheet struct {
	Name       string
	Rows       int
	Cols       int
	Cells      map[[2]int]Cell
	Merges     []Merge
	ColWidths  []float64
	RowHeights map[int]float64
}

// NewSheet returns an empty named sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:       name,
		Cells:      make(map[[2]int]Cell),
		RowHeights: make(map[int]float64),
	}
}

// Set places a cell, growing the tracked extent.
func (s *Sheet) Set(row, col int, c Cell) {
	s.Cells[[2]int{row, col}] = c
	if row+1 > s.Rows {
		s.Rows = row + 1
	}
	if col+1 > s.Cols {
		s.Cols = col + 1
	}
}

// At returns the cell at (row, col), ok=false when empty.
func (s *Sheet) At(row, col int) (Cell, bool) {
	c, ok := s.Cells[[2]int{row, col}]
	return c, ok
}

// MergeCells records an inclusive merge region.
func (s *Sheet) MergeCells(startRow, startCol, endRow, endCol int) {
	s.Merges = append(s.Merges, Merge{startRow, startCol, endRow, endCol})
}

func headerCell(v string) Cell { return Cell{Value: v, Style: StyleHeader} }
func labelCell(v string) Cell  { return Cell{Value: v, Style: StyleLabel} }
func textCell(v string) Cell   { return Cell{Value: v, Style: StyleCell} }
func numberCell(v int) Cell    { return Cell{Value: v, Style: StyleNumber} }
func barCell(fill string) Cell { return Cell{Value: "", Style: StyleBar, Fill: fill} }

// statusLabels maps the stored status enum to display text.
var statusLabels = map[string]string{
	"not_started": "Not started",
	"in_progress": "In progress",
	"done":        "Done",
}

func statusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}

// barColor picks the gantt fill for a status, falling back to the
// not-started gray for anything unrecognized.
func barColor(status string) string {
	switch status {
	case "in_progress":
		return ColorInProgress
	case "done":
		return ColorDone
	default:
		return ColorNotStarted
	}
}
