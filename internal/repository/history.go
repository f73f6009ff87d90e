package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
)

const historyKey = "history"

// AddHistoryEntry prepends entry, so GetHistory lists the most recent first.
// ID and Timestamp are filled in when empty.
func (r *Repository) AddHistoryEntry(entry *domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	return r.rdb.LPush(ctx, r.key(historyKey), data).Err()
}

func (r *Repository) GetHistory() ([]*domain.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	items, err := r.rdb.LRange(ctx, r.key(historyKey), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.HistoryEntry, 0, len(items))
	for _, item := range items {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
