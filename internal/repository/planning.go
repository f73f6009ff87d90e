package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/wok10-dev/shift-planner/backend/internal/domain"
)

const (
	currentKey = "current"
	fileKey    = "file"
	uploadsKey = "uploads"
)

func (r *Repository) GetCurrentPlanning() (*domain.WeekPlanning, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	data, err := r.rdb.Get(ctx, r.key(currentKey)).Bytes()
	if err != nil {
		return nil, notFound(err)
	}

	planning := &domain.WeekPlanning{}
	if err := json.Unmarshal(data, planning); err != nil {
		return nil, err
	}

	return planning, nil
}

func (r *Repository) SetCurrentPlanning(planning *domain.WeekPlanning) error {
	data, err := json.Marshal(planning)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	return r.rdb.Set(ctx, r.key(currentKey), data, r.sessionExpiration()).Err()
}

// GetPlanningFile returns the path of the workbook that mirrors the current planning.
func (r *Repository) GetPlanningFile() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	path, err := r.rdb.Get(ctx, r.key(fileKey)).Result()
	if err != nil {
		return "", notFound(err)
	}

	return path, nil
}

func (r *Repository) SetPlanningFile(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	return r.rdb.Set(ctx, r.key(fileKey), path, r.sessionExpiration()).Err()
}

// AddUploadedFile records an uploaded file and returns its ID.
func (r *Repository) AddUploadedFile(path string) (string, error) {
	id := uuid.NewString()

	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	key := r.key(uploadsKey)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, id, path)
	if exp := r.sessionExpiration(); exp > 0 {
		pipe.Expire(ctx, key, exp)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}

	return id, nil
}

func (r *Repository) GetUploadedFile(id string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	path, err := r.rdb.HGet(ctx, r.key(uploadsKey), id).Result()
	if err != nil {
		return "", notFound(err)
	}

	return path, nil
}

// ClearSession forgets the current planning, its workbook and the uploads.
// History is kept.
func (r *Repository) ClearSession() error {
	ctx, cancel := context.WithTimeout(context.Background(), r.operationTimeout())
	defer cancel()

	return r.rdb.Del(ctx, r.key(currentKey), r.key(fileKey), r.key(uploadsKey)).Err()
}
