package handlers

import (
	"context"
	"time"

	"github.com/polesense/polesense-be/internal/models"
	"github.com/polesense/polesense-be/internal/storage"
)

type fakeUserStore struct {
	nextID int64
	users  map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: map[string]models.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

type fakePoleStore struct {
	poles []models.Pole
}

func (f *fakePoleStore) ListPoles(context.Context) ([]models.Pole, error) {
	return append([]models.Pole{}, f.poles...), nil
}

func (f *fakePoleStore) GetPole(_ context.Context, poleID string) (models.Pole, error) {
	for _, p := range f.poles {
		if p.PoleID == poleID {
			return p, nil
		}
	}
	return models.Pole{}, storage.ErrNotFound
}

type fakeTelemetryStore struct {
	lastPoleID string
	lastMode   string
	samples    []models.TelemetrySample
}

func (f *fakeTelemetryStore) ListTelemetry(_ context.Context, poleID, mode string) ([]models.TelemetrySample, error) {
	f.lastPoleID = poleID
	f.lastMode = mode
	return f.samples, nil
}

type fakeAlertStore struct {
	lastLimit int
	alerts    []models.Alert
}

func (f *fakeAlertStore) ListAlerts(_ context.Context, limit int) ([]models.Alert, error) {
	f.lastLimit = limit
	if len(f.alerts) > limit {
		return f.alerts[:limit], nil
	}
	return f.alerts, nil
}

type fakeStatsStore struct {
	stats models.FleetStats
}

func (f *fakeStatsStore) CountStats(context.Context) (models.FleetStats, error) {
	return f.stats, nil
}

type fakeExporter struct {
	headers []string
	rows    [][]string
	start   time.Time
	end     time.Time
}

func (f *fakeExporter) ExportTable(_ context.Context, dataset string, start, end time.Time) ([]string, [][]string, error) {
	if dataset != "telemetry" && dataset != "alerts" && dataset != "poles" {
		return nil, nil, storage.ErrNotFound
	}
	f.start, f.end = start, end
	return f.headers, f.rows, nil
}
