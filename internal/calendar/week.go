// Package calendar maps week numbers to Monday-to-Sunday date ranges.
package calendar

import "time"

const dateLayout = "02/01/2006"

// WeekBounds returns the Monday and Sunday of the given week. Week 1 contains
// January 1st when it falls Monday to Thursday; otherwise week 1 starts on the
// first Monday after it.
func WeekBounds(week, year int) (time.Time, time.Time) {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	offset := daysSinceMonday(jan1)

	var firstMonday time.Time
	if offset <= 3 {
		firstMonday = jan1.AddDate(0, 0, -offset)
	} else {
		firstMonday = jan1.AddDate(0, 0, 7-offset)
	}

	monday := firstMonday.AddDate(0, 0, 7*(week-1))
	return monday, monday.AddDate(0, 0, 6)
}

// NextWeekBounds returns the week that starts on the first Monday strictly
// after ref. On a Monday this is seven days later, never the current week.
func NextWeekBounds(ref time.Time) (int, int, time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	ahead := (7 - daysSinceMonday(day)) % 7
	if ahead == 0 {
		ahead = 7
	}

	monday := day.AddDate(0, 0, ahead)
	_, week := monday.ISOWeek()
	return week, monday.Year(), monday, monday.AddDate(0, 0, 6)
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// daysSinceMonday is 0 for Monday through 6 for Sunday.
func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
