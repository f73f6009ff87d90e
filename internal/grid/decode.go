package grid

import (
	"strconv"
	"strings"

	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/wok10-dev/shift-planner/backend/internal/timerange"
	"github.com/xuri/excelize/v2"
)

// cells is a worksheet read into memory, addressed 1-indexed. Reads past the
// end of a short row return "".
type cells [][]string

func (c cells) at(row, col int) string {
	if row < 1 || row > len(c) {
		return ""
	}
	r := c[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// dataStartRow is 5 when the grid carries a title row, 3 otherwise.
func (c cells) dataStartRow() int {
	if strings.Contains(c.at(titleRow, nameCol), TitleMarker) {
		return dataRow
	}
	return legacyDataRow
}

// detectLayout looks at the sub-header cell above the data at column 3: the
// hidden hours label only exists in the current layout.
func (c cells) detectLayout(start int) Layout {
	if strings.TrimSpace(c.at(start-1, firstDayCol+1)) == HoursLabel {
		return LayoutCurrent
	}
	return LayoutLegacy
}

// Decode rebuilds a planning from the active worksheet. Cell content is read
// leniently; only a missing sheet, an empty sheet or a header without a name
// column is an error. Total columns are ignored.
func (c *Codec) Decode(f *excelize.File) (*domain.WeekPlanning, error) {
	if f == nil {
		return nil, ErrEmptyGrid
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, ErrEmptyGrid
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	sheetCells := cells(rows)
	start := sheetCells.dataStartRow()
	if strings.TrimSpace(sheetCells.at(start-2, nameCol)) == "" {
		return nil, ErrMissingNameColumn
	}
	layout := sheetCells.detectLayout(start)

	planning := &domain.WeekPlanning{
		WeekNumber: WeekFromSheetName(sheet),
		Year:       c.now().Year(),
		Employees:  []domain.EmployeeWeek{},
	}

	for row := start; ; row++ {
		name := sheetCells.at(row, nameCol)
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || strings.EqualFold(trimmed, terminator) {
			break
		}
		planning.Employees = append(planning.Employees, sheetCells.employee(row, name, layout))
	}

	return planning, nil
}

func (c cells) employee(row int, name string, layout Layout) domain.EmployeeWeek {
	e := domain.EmployeeWeek{Name: name}
	afternoon, evening := layout.shifts()

	for _, d := range domain.Weekdays {
		col := layout.dayCol(d)
		e.Days[d] = domain.Day{
			Afternoon: c.shift(row, col, afternoon),
			Evening:   c.shift(row, col, evening),
		}
	}

	return e
}

func (c cells) shift(row, col int, cols shiftColumns) domain.Shift {
	start, end := timerange.Parse(c.at(row, col+cols.timeRange))
	return domain.Shift{
		StartTime: start,
		EndTime:   end,
		Meals:     parseMeals(c.at(row, col+cols.meals)),
	}
}

// parseMeals reads a meal count, treating blanks, the dash and junk as zero.
func parseMeals(text string) int {
	text = strings.TrimSpace(text)
	if text == "" || text == timerange.Dash {
		return 0
	}
	if n, err := strconv.Atoi(text); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(f)
	}
	return 0
}
