package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/wok10-dev/shift-planner/backend/internal/calendar"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/wok10-dev/shift-planner/backend/internal/timerange"
	"github.com/xuri/excelize/v2"
)

const (
	nameWidth       = 18
	rangeWidth      = 14
	hoursWidth      = 5
	mealsWidth      = 7
	totalHoursWidth = 8
	totalMealsWidth = 7
	spacerHeight    = 10
)

// Title is the text of the merged first row. Decode looks for TitleMarker in it.
func Title(restaurant string, week int, monday, sunday time.Time) string {
	return fmt.Sprintf("%s %s - Semaine %d du %s au %s",
		TitleMarker, restaurant, week, calendar.FormatDate(monday), calendar.FormatDate(sunday))
}

// Encode lays planning out on a new single-sheet workbook. When the planning
// has no week or year, the upcoming week is used for the title and sheet name.
func (c *Codec) Encode(planning *domain.WeekPlanning) (*excelize.File, error) {
	week, year := planning.WeekNumber, planning.Year
	var monday, sunday time.Time
	if week != 0 && year != 0 {
		monday, sunday = calendar.WeekBounds(week, year)
	} else {
		week, _, monday, sunday = calendar.NextWeekBounds(c.now())
	}

	f := excelize.NewFile()
	w := &sheetWriter{f: f, sheet: SheetName(week)}
	w.err = f.SetSheetName(f.GetSheetName(0), w.sheet)

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	w.set(1, titleRow, Title(c.restaurant, week, monday, sunday))
	w.merge(1, titleRow, lastCol, titleRow)
	w.style(1, titleRow, lastCol, titleRow, st.title)
	w.rowHeight(spacerRow, spacerHeight)

	w.headers(st)
	for i := range planning.Employees {
		w.employee(dataRow+i, &planning.Employees[i], st)
	}
	w.columns()

	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("grid: encode week %d: %w", week, w.err)
	}
	return f, nil
}

// sheetWriter keeps the first error and turns later calls into no-ops.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, axis(col, row), value)
}

func (w *sheetWriter) formula(col, row int, formula string) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellFormula(w.sheet, axis(col, row), formula)
}

func (w *sheetWriter) merge(col1, row1, col2, row2 int) {
	if w.err != nil {
		return
	}
	w.err = w.f.MergeCell(w.sheet, axis(col1, row1), axis(col2, row2))
}

func (w *sheetWriter) style(col1, row1, col2, row2, id int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, axis(col1, row1), axis(col2, row2), id)
}

func (w *sheetWriter) rowHeight(row int, height float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetRowHeight(w.sheet, row, height)
}

func (w *sheetWriter) width(col int, width float64) {
	if w.err != nil {
		return
	}
	name := colName(col)
	w.err = w.f.SetColWidth(w.sheet, name, name, width)
}

func (w *sheetWriter) hide(col int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColVisible(w.sheet, colName(col), false)
}

func (w *sheetWriter) headers(st *styles) {
	w.set(nameCol, headerRow, nameHeader)

	for _, d := range domain.Weekdays {
		col := LayoutCurrent.dayCol(d)
		w.set(col, headerRow, d.Label())
		w.merge(col, headerRow, col+LayoutCurrent.ColumnsPerDay()-1, headerRow)
		for i, label := range currentSubLabels {
			w.set(col+i, subHeaderRow, label)
		}
	}

	w.set(totalHoursCol, headerRow, totalsHeader)
	w.merge(totalHoursCol, headerRow, totalMealsCol, headerRow)
	w.set(totalHoursCol, subHeaderRow, "Heures")
	w.set(totalMealsCol, subHeaderRow, "Repas")

	w.style(1, headerRow, lastCol, headerRow, st.header)
	w.style(1, subHeaderRow, lastCol, subHeaderRow, st.subHeader)
}

func (w *sheetWriter) employee(row int, e *domain.EmployeeWeek, st *styles) {
	w.set(nameCol, row, e.Name)
	w.style(nameCol, row, nameCol, row, st.name)

	afternoon, evening := LayoutCurrent.shifts()
	hours := make([]string, 0, 2*len(domain.Weekdays))
	meals := make([]string, 0, 2*len(domain.Weekdays))

	for _, d := range domain.Weekdays {
		col := LayoutCurrent.dayCol(d)
		day := e.Day(d)
		for _, s := range []struct {
			shift domain.Shift
			cols  shiftColumns
		}{{day.Afternoon, afternoon}, {day.Evening, evening}} {
			w.set(col+s.cols.timeRange, row, timerange.Format(s.shift.StartTime, s.shift.EndTime))
			w.set(col+s.cols.hours, row, s.shift.Hours())
			if s.shift.Meals != 0 {
				w.set(col+s.cols.meals, row, s.shift.Meals)
			} else {
				w.set(col+s.cols.meals, row, timerange.Dash)
			}
			hours = append(hours, axis(col+s.cols.hours, row))
			meals = append(meals, axis(col+s.cols.meals, row))
		}
	}
	w.style(firstDayCol, row, totalHoursCol-1, row, st.cell)

	w.formula(totalHoursCol, row, hoursFormula(hours))
	w.formula(totalMealsCol, row, mealsFormula(meals))
	w.style(totalHoursCol, row, totalMealsCol, row, st.total)
}

// columns applies widths and hides the hours columns.
func (w *sheetWriter) columns() {
	w.width(nameCol, nameWidth)

	afternoon, evening := LayoutCurrent.shifts()
	for _, d := range domain.Weekdays {
		col := LayoutCurrent.dayCol(d)
		for _, cols := range []shiftColumns{afternoon, evening} {
			w.width(col+cols.timeRange, rangeWidth)
			w.width(col+cols.hours, hoursWidth)
			w.width(col+cols.meals, mealsWidth)
			w.hide(col + cols.hours)
		}
	}

	w.width(totalHoursCol, totalHoursWidth)
	w.width(totalMealsCol, totalMealsWidth)
}

func hoursFormula(refs []string) string {
	return strings.Join(refs, "+")
}

// mealsFormula treats the dash sentinel as zero, since meal cells mix numbers and text.
func mealsFormula(refs []string) string {
	terms := make([]string, len(refs))
	for i, c := range refs {
		terms[i] = fmt.Sprintf(`IF(%s="%s",0,%s)`, c, timerange.Dash, c)
	}
	return strings.Join(terms, "+")
}
