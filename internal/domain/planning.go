package domain

import (
	"encoding/json"
	"fmt"

	"github.com/wok10-dev/shift-planner/backend/internal/timerange"
)

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays lists the days in grid order.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayKeys = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekdayLabels = [7]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

func (d Weekday) String() string {
	return weekdayKeys[d]
}

// Label is the French day name used in grid headers.
func (d Weekday) Label() string {
	return weekdayLabels[d]
}

type Shift struct {
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Meals     int    `json:"meals" validate:"min=0"`
}

func (s Shift) Worked() bool {
	return s.StartTime != "" && s.EndTime != ""
}

func (s Shift) Hours() float64 {
	return timerange.DurationHours(s.StartTime, s.EndTime)
}

// TimeRange is "start - end", or empty when the shift is not worked.
func (s Shift) TimeRange() string {
	if !s.Worked() {
		return ""
	}
	return timerange.Format(s.StartTime, s.EndTime)
}

type Day struct {
	Afternoon Shift `json:"afternoon"`
	Evening   Shift `json:"evening"`
}

func (d Day) TotalHours() float64 {
	return d.Afternoon.Hours() + d.Evening.Hours()
}

func (d Day) TotalMeals() int {
	return d.Afternoon.Meals + d.Evening.Meals
}

type EmployeeWeek struct {
	Name string `validate:"required"`
	Days [7]Day `validate:"dive"`
}

func (e *EmployeeWeek) Day(d Weekday) *Day {
	return &e.Days[d]
}

func (e *EmployeeWeek) WeeklyHours() float64 {
	total := 0.0
	for _, day := range e.Days {
		total += day.TotalHours()
	}
	return total
}

func (e *EmployeeWeek) WeeklyMeals() int {
	total := 0
	for _, day := range e.Days {
		total += day.TotalMeals()
	}
	return total
}

// MarshalJSON writes the days under their lower-case English names.
func (e EmployeeWeek) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Days)+1)
	m["name"] = e.Name
	for _, d := range Weekdays {
		m[d.String()] = e.Days[d]
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts the day-keyed form. Missing days stay unworked.
func (e *EmployeeWeek) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = EmployeeWeek{}
	if name, ok := raw["name"]; ok {
		if err := json.Unmarshal(name, &e.Name); err != nil {
			return fmt.Errorf("name: %w", err)
		}
	}

	for _, d := range Weekdays {
		day, ok := raw[d.String()]
		if !ok || string(day) == "null" {
			continue
		}
		if err := json.Unmarshal(day, &e.Days[d]); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}

	return nil
}

type WeekPlanning struct {
	WeekNumber int            `json:"week_number" validate:"min=0,max=53"`
	Year       int            `json:"year" validate:"omitempty,min=2000,max=2100"`
	Employees  []EmployeeWeek `json:"employees" validate:"dive"`
}
