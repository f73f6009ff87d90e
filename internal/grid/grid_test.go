package grid

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2025, 10, 15, 9, 0, 0, 0, time.Local)

func newTestCodec() *Codec {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func worked(start, end string) domain.Shift {
	return domain.Shift{StartTime: start, EndTime: end, Meals: 1}
}

func samplePlanning() *domain.WeekPlanning {
	jean := domain.EmployeeWeek{Name: "DUPONT Jean"}
	jean.Days[domain.Monday] = domain.Day{Afternoon: worked("11:30", "14:30")}
	jean.Days[domain.Tuesday] = domain.Day{Afternoon: worked("11:30", "14:30"), Evening: worked("18:30", "22:30")}
	jean.Days[domain.Saturday] = domain.Day{Evening: worked("18:00", "00:00")}

	marie := domain.EmployeeWeek{Name: "MARTIN Marie"}
	marie.Days[domain.Wednesday] = domain.Day{Afternoon: worked("9:30", "15:00"), Evening: worked("17:30", "23:00")}
	marie.Days[domain.Sunday] = domain.Day{Afternoon: domain.Shift{StartTime: "10:30", EndTime: "15:00", Meals: 2}}

	pierre := domain.EmployeeWeek{Name: "BERNARD Pierre"}

	return &domain.WeekPlanning{
		WeekNumber: 3,
		Year:       2025,
		Employees:  []domain.EmployeeWeek{jean, marie, pierre},
	}
}

func encodeToBuffer(t *testing.T, c *Codec, p *domain.WeekPlanning) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.WriteTo(&buf, p))
	return &buf
}

func TestRoundTrip(t *testing.T) {
	c := newTestCodec()
	p := samplePlanning()

	decoded, err := c.DecodeReader(encodeToBuffer(t, c, p))
	require.NoError(t, err)

	assert.Equal(t, p.WeekNumber, decoded.WeekNumber)
	assert.Equal(t, fixedNow.Year(), decoded.Year)
	require.Len(t, decoded.Employees, len(p.Employees))
	for i := range p.Employees {
		assert.Equal(t, p.Employees[i], decoded.Employees[i], "employee %d", i)
	}
	assert.Equal(t, p.Employees[0].WeeklyHours(), decoded.Employees[0].WeeklyHours())
}

func TestRoundTripEmptyPlanning(t *testing.T) {
	c := newTestCodec()
	p := &domain.WeekPlanning{WeekNumber: 10, Year: 2025}

	decoded, err := c.DecodeReader(encodeToBuffer(t, c, p))
	require.NoError(t, err)
	assert.Equal(t, 10, decoded.WeekNumber)
	assert.Empty(t, decoded.Employees)
}

func TestEncodeLayout(t *testing.T) {
	c := newTestCodec()
	f, err := c.Encode(samplePlanning())
	require.NoError(t, err)
	defer f.Close()

	sheet := "Semaine 3"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	value := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Planning des employés WOK10 - Semaine 3 du 13/01/2025 au 19/01/2025", value("A1"))
	assert.Equal(t, "Employé", value("A3"))
	assert.Equal(t, "Lundi", value("B3"))
	assert.Equal(t, "Mardi", value("H3"))
	assert.Equal(t, "Dimanche", value("AL3"))
	assert.Equal(t, "Total Semaine", value("AR3"))
	for i, label := range []string{"Midi", "H", "Repas", "Soir", "H", "Repas"} {
		assert.Equal(t, label, value(axis(2+i, 4)))
	}
	assert.Equal(t, "Heures", value("AR4"))
	assert.Equal(t, "Repas", value("AS4"))

	merges, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	var ranges []string
	for _, m := range merges {
		ranges = append(ranges, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.Contains(t, ranges, "A1:AS1")
	assert.Contains(t, ranges, "B3:G3")
	assert.Contains(t, ranges, "AL3:AQ3")
	assert.Contains(t, ranges, "AR3:AS3")
	assert.Len(t, ranges, 9)

	for d := 0; d < 7; d++ {
		for _, offset := range []int{1, 4} {
			visible, err := f.GetColVisible(sheet, colName(2+d*6+offset))
			require.NoError(t, err)
			assert.False(t, visible, "hours column %s", colName(2+d*6+offset))
		}
		visible, err := f.GetColVisible(sheet, colName(2+d*6))
		require.NoError(t, err)
		assert.True(t, visible)
	}

	width, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.Equal(t, 18.0, width)
	width, err = f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 14.0, width)
	width, err = f.GetColWidth(sheet, "D")
	require.NoError(t, err)
	assert.Equal(t, 7.0, width)

	// DUPONT Jean, Monday
	assert.Equal(t, "DUPONT Jean", value("A5"))
	assert.Equal(t, "11:30 - 14:30", value("B5"))
	assert.Equal(t, "3", value("C5"))
	assert.Equal(t, "1", value("D5"))
	assert.Equal(t, "-", value("E5"))
	assert.Equal(t, "0", value("F5"))
	assert.Equal(t, "-", value("G5"))

	// Saturday evening ends at midnight; the hidden cell keeps the raw duration.
	assert.Equal(t, "18:00 - 00:00", value(axis(2+5*6+3, 5)))
	assert.Equal(t, "-18", value(axis(2+5*6+4, 5)))

	hours, err := f.GetCellFormula(sheet, "AR5")
	require.NoError(t, err)
	hours = strings.TrimPrefix(hours, "=")
	assert.True(t, strings.HasPrefix(hours, "C5+F5+I5+L5"), hours)
	assert.Len(t, strings.Split(hours, "+"), 14)

	meals, err := f.GetCellFormula(sheet, "AS5")
	require.NoError(t, err)
	meals = strings.TrimPrefix(meals, "=")
	assert.True(t, strings.HasPrefix(meals, `IF(D5="-",0,D5)+IF(G5="-",0,G5)+IF(J5="-",0,J5)`), meals)
	assert.Len(t, strings.Split(meals, "+"), 14)
}

func TestEncodeUnworkedDayUsesDashes(t *testing.T) {
	c := newTestCodec()
	p := &domain.WeekPlanning{WeekNumber: 3, Year: 2025, Employees: []domain.EmployeeWeek{{Name: "OFF"}}}

	f, err := c.Encode(p)
	require.NoError(t, err)
	defer f.Close()

	for _, cell := range []string{"B5", "D5", "E5", "G5"} {
		v, err := f.GetCellValue("Semaine 3", cell)
		require.NoError(t, err)
		assert.Equal(t, "-", v, cell)
	}

	decoded, err := c.Decode(f)
	require.NoError(t, err)
	require.Len(t, decoded.Employees, 1)
	for _, day := range decoded.Employees[0].Days {
		assert.Equal(t, domain.Day{}, day)
	}
}

func TestEncodeFallsBackToUpcomingWeek(t *testing.T) {
	c := New(
		WithClock(func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local) }),
		WithRestaurantName("Chez Nous"),
	)

	f, err := c.Encode(&domain.WeekPlanning{})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Semaine 43"}, f.GetSheetList())
	title, err := f.GetCellValue("Semaine 43", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Planning des employés Chez Nous - Semaine 43 du 19/10/2026 au 25/10/2026", title)
}

// legacyFile builds a 4-columns-per-day grid. With title set, the layout starts
// with a title row like the current one; otherwise the header is on rows 1-2.
func legacyFile(t *testing.T, sheet string, title bool, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	header := 1
	if title {
		require.NoError(t, f.SetCellValue(sheet, "A1", "Planning des employés WOK10 - Semaine 7"))
		header = 3
	}

	require.NoError(t, f.SetCellValue(sheet, axis(1, header), "Employé"))
	for d, wd := range domain.Weekdays {
		col := 2 + d*4
		require.NoError(t, f.SetCellValue(sheet, axis(col, header), wd.Label()))
		for i, label := range []string{"Midi", "Repas", "Soir", "Repas"} {
			require.NoError(t, f.SetCellValue(sheet, axis(col+i, header+1), label))
		}
	}

	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, f.SetCellValue(sheet, axis(j+1, header+2+i), v))
		}
	}
	return f
}

// legacyRow renders an employee in the 4-columns-per-day layout.
func legacyRow(e domain.EmployeeWeek) []any {
	row := []any{e.Name}
	for _, day := range e.Days {
		for _, s := range []domain.Shift{day.Afternoon, day.Evening} {
			if s.Worked() {
				row = append(row, s.StartTime+" - "+s.EndTime)
			} else {
				row = append(row, "-")
			}
			if s.Meals != 0 {
				row = append(row, s.Meals)
			} else {
				row = append(row, "-")
			}
		}
	}
	return row
}

func TestDecodeLegacyMatchesCurrent(t *testing.T) {
	c := newTestCodec()
	p := samplePlanning()
	p.WeekNumber = 7

	current, err := c.DecodeReader(encodeToBuffer(t, c, p))
	require.NoError(t, err)

	var rows [][]any
	for _, e := range p.Employees {
		rows = append(rows, legacyRow(e))
	}

	for _, title := range []bool{false, true} {
		f := legacyFile(t, "Semaine 7", title, rows)
		legacy, err := c.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, current, legacy, "title row: %v", title)
		f.Close()
	}
}

func TestDecodeStopsAtTotalRow(t *testing.T) {
	c := newTestCodec()
	f := legacyFile(t, "Week 12", false, [][]any{
		{"A", "11:00 - 14:00", 1},
		{"B", "-", "-", "18:00 - 23:00", 1},
		{"Total", "", 2},
		{"C", "11:00 - 14:00", 1},
	})
	defer f.Close()

	p, err := c.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, p.WeekNumber)
	require.Len(t, p.Employees, 2)
	assert.Equal(t, "A", p.Employees[0].Name)
	assert.Equal(t, "B", p.Employees[1].Name)
	assert.Equal(t, "18:00", p.Employees[1].Day(domain.Monday).Evening.StartTime)
}

func TestDecodeShortRowsAndMessyCells(t *testing.T) {
	c := newTestCodec()
	f := legacyFile(t, "Planning", false, [][]any{
		{"Lucie", "10h - 15h", "abc", "17:30 - 23:00", "1.0", " 9:00-11:00 ", " 2 "},
		{"Hugo"},
	})
	defer f.Close()

	p, err := c.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1, p.WeekNumber)
	assert.Equal(t, fixedNow.Year(), p.Year)
	require.Len(t, p.Employees, 2)

	lucie := p.Employees[0]
	monday := lucie.Day(domain.Monday)
	assert.Equal(t, domain.Shift{}, monday.Afternoon)
	assert.Equal(t, domain.Shift{StartTime: "17:30", EndTime: "23:00", Meals: 1}, monday.Evening)
	assert.Equal(t, domain.Shift{StartTime: "9:00", EndTime: "11:00", Meals: 2}, lucie.Day(domain.Tuesday).Afternoon)
	assert.Equal(t, domain.Day{}, *lucie.Day(domain.Sunday))

	for _, day := range p.Employees[1].Days {
		assert.Equal(t, domain.Day{}, day)
	}
}

func TestLayoutDetection(t *testing.T) {
	withTitle := cells{
		{"Planning des employés WOK10 - Semaine 3 du 13/01/2025 au 19/01/2025"},
		{},
		{"Employé", "Lundi"},
		{"", "Midi", "H", "Repas"},
	}
	assert.Equal(t, 5, withTitle.dataStartRow())
	assert.Equal(t, LayoutCurrent, withTitle.detectLayout(5))

	legacy := cells{
		{"Employé", "Lundi"},
		{"", "Midi", "Repas", "Soir"},
	}
	assert.Equal(t, 3, legacy.dataStartRow())
	assert.Equal(t, LayoutLegacy, legacy.detectLayout(3))

	assert.Equal(t, 6, LayoutCurrent.ColumnsPerDay())
	assert.Equal(t, 4, LayoutLegacy.ColumnsPerDay())
}

func TestWeekFromSheetName(t *testing.T) {
	assert.Equal(t, 12, WeekFromSheetName("Semaine 12"))
	assert.Equal(t, 4, WeekFromSheetName("Week 4"))
	assert.Equal(t, 1, WeekFromSheetName("Sheet1"))
	assert.Equal(t, 1, WeekFromSheetName("Semaine x"))
	assert.Equal(t, 1, WeekFromSheetName("Semaine 0"))
}

func TestParseMeals(t *testing.T) {
	assert.Equal(t, 0, parseMeals(""))
	assert.Equal(t, 0, parseMeals("-"))
	assert.Equal(t, 0, parseMeals("oui"))
	assert.Equal(t, 1, parseMeals("1"))
	assert.Equal(t, 2, parseMeals("2.0"))
}

func TestDecodeStructuralFailures(t *testing.T) {
	c := newTestCodec()

	_, err := c.Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	empty := excelize.NewFile()
	defer empty.Close()
	_, err = c.Decode(empty)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	noName := excelize.NewFile()
	defer noName.Close()
	require.NoError(t, noName.SetCellValue("Sheet1", "B1", "Lundi"))
	require.NoError(t, noName.SetCellValue("Sheet1", "A3", "Jean"))
	_, err = c.Decode(noName)
	assert.ErrorIs(t, err, ErrMissingNameColumn)
}

func TestReEncodeOverwritesFile(t *testing.T) {
	c := newTestCodec()
	path := filepath.Join(t.TempDir(), "planning.xlsx")

	p := samplePlanning()
	require.NoError(t, c.EncodeFile(path, p))

	p.Employees = p.Employees[:1]
	p.Employees[0].Days[domain.Friday].Evening = worked("19:00", "23:30")
	require.NoError(t, c.ReEncode(path, p))

	decoded, err := c.DecodeFile(path)
	require.NoError(t, err)
	require.Len(t, decoded.Employees, 1)
	assert.Equal(t, p.Employees[0], decoded.Employees[0])
}
