// Package grid encodes a week planning into an .xlsx worksheet and decodes it
// back, accepting both the current 6-columns-per-day layout and the legacy
// 4-columns-per-day one.
//
// Current layout (1-indexed):
//
//	row 1      title, merged over every column
//	row 2      spacer
//	row 3      "Employé" | day label merged over 6 columns (x7) | "Total Semaine" merged over 2
//	row 4      "" | Midi H Repas Soir H Repas (x7) | Heures Repas
//	row 5..    name | range hours meals range hours meals (x7) | hours formula | meals formula
//
// The "H" columns are hidden; they only back the hours formula.
package grid

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	TitleMarker = "Planning des employés"
	HoursLabel  = "H"

	nameHeader   = "Employé"
	totalsHeader = "Total Semaine"
	terminator   = "TOTAL"

	titleRow     = 1
	spacerRow    = 2
	headerRow    = 3
	subHeaderRow = 4
	dataRow      = 5

	legacyDataRow = 3

	nameCol     = 1
	firstDayCol = 2
)

var (
	totalHoursCol = firstDayCol + len(domain.Weekdays)*LayoutCurrent.ColumnsPerDay()
	totalMealsCol = totalHoursCol + 1
	lastCol       = totalMealsCol
)

var currentSubLabels = [6]string{"Midi", HoursLabel, "Repas", "Soir", HoursLabel, "Repas"}

var sheetNamePattern = regexp.MustCompile(`^(?:Semaine|Week)\s+(\d+)`)

// Layout identifies which column arrangement a grid uses. It is decided once
// per decode and handed to the row reader.
type Layout int

const (
	LayoutLegacy Layout = iota
	LayoutCurrent
)

func (l Layout) ColumnsPerDay() int {
	if l == LayoutCurrent {
		return 6
	}
	return 4
}

// shiftColumns holds the offsets of one shift's cells inside a day block.
// hours is -1 when the layout has no hours column.
type shiftColumns struct {
	timeRange int
	hours     int
	meals     int
}

func (l Layout) shifts() (afternoon, evening shiftColumns) {
	if l == LayoutCurrent {
		return shiftColumns{0, 1, 2}, shiftColumns{3, 4, 5}
	}
	return shiftColumns{0, -1, 1}, shiftColumns{2, -1, 3}
}

// dayCol is the first column of the day's block.
func (l Layout) dayCol(d domain.Weekday) int {
	return firstDayCol + int(d)*l.ColumnsPerDay()
}

// SheetName is the worksheet name for a week.
func SheetName(week int) string {
	return fmt.Sprintf("Semaine %d", week)
}

// WeekFromSheetName reads the week number out of "Semaine <n>" or "Week <n>",
// defaulting to 1.
func WeekFromSheetName(name string) int {
	m := sheetNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 1
	}
	week, err := strconv.Atoi(m[1])
	if err != nil || week < 1 {
		return 1
	}
	return week
}

func axis(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
