// Package store is the persistence layer: four flat entity collections plus
// a session singleton, each read and written wholesale as one JSON snapshot
// under its own key. Backends only need to implement a tiny KV contract;
// snapshot encoding and corruption recovery live here. A missing or
// unparseable blob always degrades to an empty collection, never an error.
package store

import (
	"context"
	"encoding/json"

	"taskdesk/internal/models"
)

const (
	keyUsers         = "users"
	keyTeams         = "teams"
	keyTasks         = "tasks"
	keyNotifications = "notifications"
	keySession       = "session"
)

// Store gives workflows whole-snapshot access to the entity collections.
// Save replaces the persisted collection atomically from the caller's
// perspective; callers own all invariants.
type Store interface {
	Users(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error

	Teams(ctx context.Context) ([]models.Team, error)
	SaveTeams(ctx context.Context, teams []models.Team) error

	Tasks(ctx context.Context) ([]models.Task, error)
	SaveTasks(ctx context.Context, tasks []models.Task) error

	Notifications(ctx context.Context) ([]models.Notification, error)
	SaveNotifications(ctx context.Context, notifications []models.Notification) error

	// Session holds the currently authenticated user, or nil when logged out.
	Session(ctx context.Context) (*models.User, error)
	SaveSession(ctx context.Context, user *models.User) error

	Close() error
}

// kv is the minimal backend contract. Get reports absence via the bool so
// backends never invent sentinel errors for missing keys.
type kv interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type blobStore struct {
	kv kv
}

func newBlobStore(backend kv) *blobStore { return &blobStore{kv: backend} }

func readSlice[T any](ctx context.Context, backend kv, key string) ([]T, error) {
	data, ok, err := backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt blob: recover locally, empty collection.
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func writeSlice[T any](ctx context.Context, backend kv, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return backend.Put(ctx, key, data)
}

func (s *blobStore) Users(ctx context.Context) ([]models.User, error) {
	return readSlice[models.User](ctx, s.kv, keyUsers)
}

func (s *blobStore) SaveUsers(ctx context.Context, users []models.User) error {
	return writeSlice(ctx, s.kv, keyUsers, users)
}

func (s *blobStore) Teams(ctx context.Context) ([]models.Team, error) {
	return readSlice[models.Team](ctx, s.kv, keyTeams)
}

func (s *blobStore) SaveTeams(ctx context.Context, teams []models.Team) error {
	return writeSlice(ctx, s.kv, keyTeams, teams)
}

func (s *blobStore) Tasks(ctx context.Context) ([]models.Task, error) {
	return readSlice[models.Task](ctx, s.kv, keyTasks)
}

func (s *blobStore) SaveTasks(ctx context.Context, tasks []models.Task) error {
	return writeSlice(ctx, s.kv, keyTasks, tasks)
}

func (s *blobStore) Notifications(ctx context.Context) ([]models.Notification, error) {
	return readSlice[models.Notification](ctx, s.kv, keyNotifications)
}

func (s *blobStore) SaveNotifications(ctx context.Context, notifications []models.Notification) error {
	return writeSlice(ctx, s.kv, keyNotifications, notifications)
}

func (s *blobStore) Session(ctx context.Context) (*models.User, error) {
	data, ok, err := s.kv.Get(ctx, keySession)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func (s *blobStore) SaveSession(ctx context.Context, user *models.User) error {
	if user == nil {
		return s.kv.Delete(ctx, keySession)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, keySession, data)
}

func (s *blobStore) Close() error { return s.kv.Close() }
