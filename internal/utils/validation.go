package utils

import (
	"fmt"
	"strings"

	"github.com/wok10-dev/shift-planner/backend/internal/domain"
)

// ValidateWeekPlanning checks what struct tags cannot: employee names must be
// unique and each shift must carry both times or neither.
func ValidateWeekPlanning(p *domain.WeekPlanning) error {
	seen := make(map[string]bool, len(p.Employees))
	for i, e := range p.Employees {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("employee %d has no name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("employee %q appears more than once", name)
		}
		seen[name] = true

		for _, d := range domain.Weekdays {
			day := e.Days[d]
			if err := validateShift(day.Afternoon); err != nil {
				return fmt.Errorf("%s, %s afternoon: %w", name, d, err)
			}
			if err := validateShift(day.Evening); err != nil {
				return fmt.Errorf("%s, %s evening: %w", name, d, err)
			}
		}
	}

	return nil
}

func validateShift(s domain.Shift) error {
	if (s.StartTime == "") != (s.EndTime == "") {
		return fmt.Errorf("start and end time must both be set or both be empty")
	}
	return nil
}
