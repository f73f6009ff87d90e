package domain

import "time"

type HistoryEntryType string

const (
	HistoryImportExcel HistoryEntryType = "import_excel"
	HistoryExportExcel HistoryEntryType = "export_excel"
)

type HistoryEntry struct {
	ID         string           `json:"id"`
	Type       HistoryEntryType `json:"type"`
	Filename   string           `json:"filename"`
	Timestamp  time.Time        `json:"timestamp"`
	WeekNumber *int             `json:"week_number"` // nil when no planning was loaded
	Year       *int             `json:"year"`
}
