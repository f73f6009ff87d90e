package seed

import (
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/wok10-dev/shift-planner/backend/internal/timerange"
)

// SampleWeek and SampleYear are the week the sample planning is dated for.
const (
	SampleWeek = 3
	SampleYear = 2024
)

// sampleShifts lists, per employee, the lunch and dinner ranges from Monday to
// Sunday. Empty means not worked. Every worked shift comes with one meal.
var sampleShifts = []struct {
	name   string
	ranges [7][2]string
}{
	{
		name: "Jean Dupont",
		ranges: [7][2]string{
			{"11:30 - 14:30", ""},
			{"11:30 - 14:30", "18:30 - 22:30"},
			{"", "18:30 - 23:00"},
			{"11:00 - 14:30", "18:30 - 22:30"},
			{"11:30 - 14:30", "18:30 - 23:30"},
			{"", ""},
			{"", ""},
		},
	},
	{
		name: "Marie Martin",
		ranges: [7][2]string{
			{"", "18:30 - 22:30"},
			{"", "18:30 - 22:30"},
			{"11:30 - 14:30", "18:30 - 22:30"},
			{"", ""},
			{"11:30 - 14:30", "18:30 - 23:00"},
			{"11:30 - 15:00", "18:30 - 23:30"},
			{"", ""},
		},
	},
	{
		name: "Pierre Bernard",
		ranges: [7][2]string{
			{"11:30 - 14:30", "18:30 - 22:30"},
			{"", ""},
			{"", ""},
			{"11:30 - 14:30", "18:30 - 22:30"},
			{"", "18:30 - 23:00"},
			{"11:30 - 15:00", "18:30 - 23:30"},
			{"12:00 - 15:00", "18:30 - 22:00"},
		},
	},
}

func sampleShift(text string) domain.Shift {
	start, end := timerange.Parse(text)
	if start == "" {
		return domain.Shift{}
	}
	return domain.Shift{StartTime: start, EndTime: end, Meals: 1}
}

// SamplePlanning returns a fixed three-employee planning, used to produce a
// reference workbook.
func SamplePlanning() *domain.WeekPlanning {
	p := &domain.WeekPlanning{
		WeekNumber: SampleWeek,
		Year:       SampleYear,
		Employees:  make([]domain.EmployeeWeek, 0, len(sampleShifts)),
	}

	for _, s := range sampleShifts {
		e := domain.EmployeeWeek{Name: s.name}
		for _, d := range domain.Weekdays {
			e.Days[d].Afternoon = sampleShift(s.ranges[d][0])
			e.Days[d].Evening = sampleShift(s.ranges[d][1])
		}
		p.Employees = append(p.Employees, e)
	}

	return p
}
