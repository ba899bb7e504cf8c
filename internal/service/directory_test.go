package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibejam-co/jam-sub001/internal/config"
	"github.com/vibejam-co/jam-sub001/internal/models"
	"github.com/vibejam-co/jam-sub001/internal/repository"
	"github.com/vibejam-co/jam-sub001/pkg/errors"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

// memStore is an in-memory stand-in for the database tables.
type memStore struct {
	apps          []models.AppRow
	revenue       []models.RevenuePointRow
	notifications []models.NotificationRow

	failApp, failRevenue, failNotification, failList error

	writes  int
	txCalls int
	nextID  int
	clock   time.Time
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memStore) CreateApp(_ context.Context, row *models.AppRow) error {
	m.writes++
	if m.failApp != nil {
		return m.failApp
	}
	m.nextID++
	row.ID = fmt.Sprintf("app-%d", m.nextID)
	row.CreatedAt = m.tick()
	m.apps = append(m.apps, *row)
	return nil
}

func (m *memStore) CreateRevenuePoints(_ context.Context, rows []models.RevenuePointRow) error {
	m.writes++
	if m.failRevenue != nil {
		return m.failRevenue
	}
	m.revenue = append(m.revenue, rows...)
	return nil
}

func (m *memStore) CreateNotification(_ context.Context, row *models.NotificationRow) error {
	m.writes++
	if m.failNotification != nil {
		return m.failNotification
	}
	row.ID = fmt.Sprintf("n-%d", len(m.notifications)+1)
	row.CreatedAt = m.tick()
	m.notifications = append(m.notifications, *row)
	return nil
}

// InTransaction snapshots the tables and restores them when fn fails.
func (m *memStore) InTransaction(ctx context.Context, fn func(w repository.Writer) error) error {
	m.txCalls++
	apps := append([]models.AppRow(nil), m.apps...)
	revenue := append([]models.RevenuePointRow(nil), m.revenue...)
	notifications := append([]models.NotificationRow(nil), m.notifications...)

	if err := fn(m); err != nil {
		m.apps, m.revenue, m.notifications = apps, revenue, notifications
		return err
	}
	return nil
}

func (m *memStore) List(context.Context) ([]models.AppRow, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	return append([]models.AppRow(nil), m.apps...), nil
}

func (m *memStore) ListAll(context.Context) ([]models.RevenuePointRow, error) {
	return append([]models.RevenuePointRow(nil), m.revenue...), nil
}

func (m *memStore) GetRecent(_ context.Context, limit int) ([]models.NotificationRow, error) {
	out := make([]models.NotificationRow, 0, limit)
	for i := len(m.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.notifications[i])
	}
	return out, nil
}

func newDirectory(store *memStore, atomic bool) *DirectoryService {
	return NewDirectoryService(store, store, store, store, &config.DirectoryConfig{
		AtomicPublish:     atomic,
		NotificationLimit: 25,
	})
}

func acme() models.AppInput {
	return models.AppInput{Name: "Acme", Pitch: "X", Category: "Tools", IsForSale: true}
}

func TestPublishForSaleNotification(t *testing.T) {
	store := newMemStore()
	svc := newDirectory(store, false)

	apps, err := svc.Publish(context.Background(), acme())
	require.NoError(t, err)

	require.Len(t, apps, 1)
	assert.Equal(t, "01", apps[0].Rank)
	assert.Equal(t, []models.RevenuePoint{{Date: "Month 1", Revenue: 0}}, apps[0].RevenueHistory)

	require.Len(t, store.notifications, 1)
	n := store.notifications[0]
	assert.Equal(t, "New Asset Listed", n.Title)
	assert.Equal(t, "Acme is now live on VibeJam.", n.Message)
	assert.Equal(t, "update", n.Type)
	assert.Equal(t, "Just now", n.Timestamp)
	assert.False(t, n.IsRead)
	require.NotNil(t, n.AppID)
	assert.Equal(t, apps[0].ID, *n.AppID)
}

func TestPublishJamNotification(t *testing.T) {
	store := newMemStore()
	svc := newDirectory(store, false)

	in := acme()
	in.IsForSale = false
	_, err := svc.Publish(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "New Jam Published", store.notifications[0].Title)
}

func TestPublishRejectsMissingFieldsWithoutWrites(t *testing.T) {
	cases := map[string]func(*models.AppInput){
		"name":     func(in *models.AppInput) { in.Name = "" },
		"pitch":    func(in *models.AppInput) { in.Pitch = "" },
		"category": func(in *models.AppInput) { in.Category = "   " },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			store := newMemStore()
			svc := newDirectory(store, false)

			in := acme()
			mutate(&in)
			apps, err := svc.Publish(context.Background(), in)

			require.Error(t, err)
			assert.Nil(t, apps)
			assert.True(t, errors.IsValidation(err))
			assert.Contains(t, err.Error(), field)
			assert.Equal(t, 0, store.writes)
		})
	}
}

func TestPublishPersistsHistoryInOrder(t *testing.T) {
	store := newMemStore()
	svc := newDirectory(store, false)

	in := acme()
	in.RevenueHistory = []models.RevenuePoint{
		{Date: "Month 1", Revenue: 100},
		{Date: "Month 2", Revenue: 250},
		{Date: "Month 10", Revenue: 900},
	}
	apps, err := svc.Publish(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, store.revenue, 3)
	for i, r := range store.revenue {
		assert.Equal(t, i, r.SortOrder)
		assert.Equal(t, apps[0].ID, r.AppID)
	}
	assert.Equal(t, in.RevenueHistory, apps[0].RevenueHistory)
}

func TestPublishReturnsRefreshedDirectory(t *testing.T) {
	store := newMemStore()
	svc := newDirectory(store, false)

	big := acme()
	big.Name = "Big"
	big.MonthlyRevenue = 5000
	_, err := svc.Publish(context.Background(), big)
	require.NoError(t, err)

	small := acme()
	small.Name = "Small"
	small.MonthlyRevenue = 10
	apps, err := svc.Publish(context.Background(), small)
	require.NoError(t, err)

	require.Len(t, apps, 2)
	assert.Equal(t, "Big", apps[0].Name)
	assert.Equal(t, "Small", apps[1].Name)
	assert.Equal(t, "02", apps[1].Rank)
}

func TestPublishAppFailureWritesNothingElse(t *testing.T) {
	store := newMemStore()
	store.failApp = stderrors.New("connection refused")
	svc := newDirectory(store, false)

	_, err := svc.Publish(context.Background(), acme())

	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, store.writes)
	assert.Empty(t, store.revenue)
	assert.Empty(t, store.notifications)
}

func TestPublishRevenueFailureLeavesAppWithoutHistory(t *testing.T) {
	store := newMemStore()
	store.failRevenue = stderrors.New("timeout")
	svc := newDirectory(store, false)

	_, err := svc.Publish(context.Background(), acme())

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrRevenueInsert, appErr.Code)
	assert.Len(t, store.apps, 1)
	assert.Empty(t, store.notifications)
	assert.Equal(t, 0, store.txCalls)

	apps, err := svc.LoadApps(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, []models.RevenuePoint{{Date: "Month 1", Revenue: 0}}, apps[0].RevenueHistory)
}

func TestPublishNotificationFailureKeepsAppAndHistory(t *testing.T) {
	store := newMemStore()
	store.failNotification = stderrors.New("constraint")
	svc := newDirectory(store, false)

	_, err := svc.Publish(context.Background(), acme())

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrNotificationInsert, appErr.Code)
	assert.Len(t, store.apps, 1)
	assert.Len(t, store.revenue, 1)
}

func TestAtomicPublishRollsBack(t *testing.T) {
	store := newMemStore()
	store.failNotification = stderrors.New("constraint")
	svc := newDirectory(store, true)

	_, err := svc.Publish(context.Background(), acme())

	require.Error(t, err)
	assert.Equal(t, 1, store.txCalls)
	assert.Empty(t, store.apps)
	assert.Empty(t, store.revenue)
}

func TestAtomicPublishSuccess(t *testing.T) {
	store := newMemStore()
	svc := newDirectory(store, true)

	apps, err := svc.Publish(context.Background(), acme())

	require.NoError(t, err)
	assert.Equal(t, 1, store.txCalls)
	assert.Len(t, apps, 1)
	assert.Len(t, store.notifications, 1)
}

func TestLoadAppsEmpty(t *testing.T) {
	svc := newDirectory(newMemStore(), false)

	apps, err := svc.LoadApps(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestLoadAppsStorageError(t *testing.T) {
	store := newMemStore()
	store.failList = stderrors.New("relation \"apps\" does not exist")
	svc := newDirectory(store, false)

	_, err := svc.LoadApps(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
}

func TestListNotificationsNewestFirstAndCapped(t *testing.T) {
	store := newMemStore()
	svc := newDirectory(store, false)

	for i := 0; i < 30; i++ {
		in := acme()
		in.Name = fmt.Sprintf("App %d", i)
		_, err := svc.Publish(context.Background(), in)
		require.NoError(t, err)
	}

	got, err := svc.ListNotifications(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, got, 25)
	assert.Equal(t, "App 29 is now live on VibeJam.", got[0].Message)

	got, err = svc.ListNotifications(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.ListNotifications(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 25)
}

func TestNewPublishNotification(t *testing.T) {
	n := NewPublishNotification("", "Solo", false)
	assert.Nil(t, n.AppID)
	assert.Equal(t, models.NotificationTypeUpdate, n.Type)
	assert.Equal(t, "Solo is now live on VibeJam.", n.Message)
}
