package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widia-api/models"
)

type fakeStatusStore struct {
	items     []models.StatusCheck
	err       error
	lastLimit int64
}

func (f *fakeStatusStore) Insert(_ context.Context, s models.StatusCheck) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, s)
	return nil
}

func (f *fakeStatusStore) ListRecent(_ context.Context, limit int64) ([]models.StatusCheck, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestStatusService_Create(t *testing.T) {
	store := &fakeStatusStore{}
	svc := NewStatusService(store)

	before := time.Now().UTC()
	got, err := svc.Create(context.Background(), "landing")
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "landing", got.ClientName)
	assert.False(t, got.Timestamp.Before(before))
	require.Len(t, store.items, 1)
	assert.Equal(t, got, store.items[0])
}

func TestStatusService_CreateAcceptsEmptyName(t *testing.T) {
	store := &fakeStatusStore{}
	got, err := NewStatusService(store).Create(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", got.ClientName)
}

func TestStatusService_CreatePersistenceError(t *testing.T) {
	svc := NewStatusService(&fakeStatusStore{err: errors.New("boom")})
	_, err := svc.Create(context.Background(), "x")
	require.ErrorIs(t, err, ErrPersistence)
}

func TestStatusService_ListUsesLimit(t *testing.T) {
	store := &fakeStatusStore{}
	for i := 0; i < StatusListLimit+5; i++ {
		store.items = append(store.items, models.StatusCheck{ID: string(rune('a' + i%26))})
	}

	got, err := NewStatusService(store).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(StatusListLimit), store.lastLimit)
	assert.Len(t, got, StatusListLimit)
	assert.Equal(t, store.items[len(store.items)-1], got[len(got)-1])
}

func TestStatusService_ListEmpty(t *testing.T) {
	got, err := NewStatusService(&fakeStatusStore{}).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStatusService_ListError(t *testing.T) {
	_, err := NewStatusService(&fakeStatusStore{err: errors.New("boom")}).List(context.Background())
	require.ErrorIs(t, err, ErrPersistence)
}
