package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"widia-api/models"
)

// StatusListLimit caps GET /status.
const StatusListLimit = 1000

type StatusStore interface {
	Insert(ctx context.Context, s models.StatusCheck) error
	ListRecent(ctx context.Context, limit int64) ([]models.StatusCheck, error)
}

type StatusService struct {
	store StatusStore
	now   func() time.Time
	newID func() string
}

func NewStatusService(store StatusStore) *StatusService {
	return &StatusService{store: store, now: time.Now, newID: uuid.NewString}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         s.newID(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.store.Insert(ctx, check); err != nil {
		return models.StatusCheck{}, fmt.Errorf("%w: insert status check: %w", ErrPersistence, err)
	}
	return check, nil
}

// List returns the most recent StatusListLimit checks, oldest first.
func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	items, err := s.store.ListRecent(ctx, StatusListLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: list status checks: %w", ErrPersistence, err)
	}
	if len(items) > StatusListLimit {
		items = items[len(items)-StatusListLimit:]
	}
	return items, nil
}
