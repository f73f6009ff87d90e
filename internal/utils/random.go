package utils

import (
	"fmt"
	"math/rand"

	"github.com/wok10-dev/shift-planner/backend/internal/domain"
)

var commonSurnames = []string{
	"MARTIN", "BERNARD", "DUBOIS", "THOMAS", "ROBERT", "RICHARD", "PETIT", "DURAND", "LEROY", "MOREAU",
	"SIMON", "LAURENT", "LEFEBVRE", "MICHEL", "GARCIA", "DAVID", "BERTRAND", "ROUX", "VINCENT", "FOURNIER",
}
var commonFirstNames = []string{
	"Jean", "Marie", "Pierre", "Sophie", "Luc", "Camille", "Julien", "Claire", "Nicolas", "Léa",
	"Thomas", "Chloé", "Antoine", "Manon", "Hugo", "Inès", "Louis", "Emma", "Lucas", "Sarah",
}

func GenerateRandomName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	return surname + " " + firstName
}

var (
	afternoonStarts = []string{"10:30", "11:00", "11:30", "12:00"}
	afternoonEnds   = []string{"14:00", "14:30", "15:00"}
	eveningStarts   = []string{"17:30", "18:00", "18:30", "19:00"}
	eveningEnds     = []string{"22:00", "22:30", "23:00", "00:00"}
)

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func GenerateRandomShift(starts, ends []string) domain.Shift {
	return domain.Shift{
		StartTime: pick(starts),
		EndTime:   pick(ends),
		Meals:     rand.Intn(2),
	}
}

// GenerateRandomDaysOff uses a Fisher-Yates shuffle to pick n distinct days.
func GenerateRandomDaysOff(n int) []domain.Weekday {
	days := domain.Weekdays

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	return days[:n]
}

func GenerateRandomEmployeeWeek(name string) domain.EmployeeWeek {
	e := domain.EmployeeWeek{Name: name}

	off := make(map[domain.Weekday]bool)
	for _, d := range GenerateRandomDaysOff(rand.Intn(3) + 1) {
		off[d] = true
	}

	for _, d := range domain.Weekdays {
		if off[d] {
			continue
		}
		// 0: lunch only, 1: dinner only, 2: both
		switch rand.Intn(3) {
		case 0:
			e.Days[d].Afternoon = GenerateRandomShift(afternoonStarts, afternoonEnds)
		case 1:
			e.Days[d].Evening = GenerateRandomShift(eveningStarts, eveningEnds)
		default:
			e.Days[d].Afternoon = GenerateRandomShift(afternoonStarts, afternoonEnds)
			e.Days[d].Evening = GenerateRandomShift(eveningStarts, eveningEnds)
		}
	}

	return e
}

// GenerateRandomPlanning builds a planning of n employees with distinct names.
func GenerateRandomPlanning(n, week, year int) *domain.WeekPlanning {
	p := &domain.WeekPlanning{
		WeekNumber: week,
		Year:       year,
		Employees:  make([]domain.EmployeeWeek, 0, n),
	}

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		name := GenerateRandomName()
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, i+1)
		}
		seen[name] = true

		p.Employees = append(p.Employees, GenerateRandomEmployeeWeek(name))
	}

	return p
}
