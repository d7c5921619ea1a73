package calendar

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts/mocks"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPlannerKey = constvars.RedisKeyPlannerPrefix + "ODD-2025"

type calendarFixture struct {
	client    *mocks.AcademiaClient
	redis     *mocks.RedisRepository
	snapshots *mocks.PlannerSnapshotRepository
	usecase   *calendarUsecase
}

func newCalendarFixture() *calendarFixture {
	f := &calendarFixture{
		client:    new(mocks.AcademiaClient),
		redis:     new(mocks.RedisRepository),
		snapshots: new(mocks.PlannerSnapshotRepository),
	}
	cfg := &config.InternalConfig{
		Planner: config.AppPlanner{Name: "ODD-2025"},
		Cache:   config.AppCache{PlannerTTLInMinutes: 60},
	}
	f.usecase = NewCalendarUsecase(f.client, f.redis, f.snapshots, cfg, zap.NewNop()).(*calendarUsecase)
	f.usecase.now = func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func plannerTable() *models.PlannerTable {
	return &models.PlannerTable{
		Headers: []string{"Feb'25", "Jan'25"},
		Rows: [][]string{
			{"1", "Sat", "", "-", "", "30", "Thu", "", "4", ""},
			{"3", "Mon", "", "1", "", "31", "Fri", "Fest", "5", ""},
		},
	}
}

func TestRefreshPlanner_BuildsSortsCachesAndSnapshots(t *testing.T) {
	f := newCalendarFixture()
	f.client.On("FetchPlanner", mock.Anything).Return(plannerTable(), nil)
	f.redis.On("Set", mock.Anything, testPlannerKey, mock.AnythingOfType("models.Calendar"), time.Hour).Return(nil)
	f.snapshots.On("Upsert", mock.Anything, mock.MatchedBy(func(s *models.PlannerSnapshot) bool {
		return s.PlannerName == "ODD-2025" && len(s.Calendar) == 2
	})).Return(nil)

	calendar, err := f.usecase.RefreshPlanner(context.Background())
	require.NoError(t, err)
	require.Len(t, calendar, 2)
	assert.Equal(t, "Jan'25", calendar[0].Month)
	assert.Equal(t, "Feb'25", calendar[1].Month)
	f.redis.AssertExpectations(t)
	f.snapshots.AssertExpectations(t)
}

func TestRefreshPlanner_StoreFailuresDoNotFail(t *testing.T) {
	f := newCalendarFixture()
	f.client.On("FetchPlanner", mock.Anything).Return(plannerTable(), nil)
	f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	f.snapshots.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	calendar, err := f.usecase.RefreshPlanner(context.Background())
	require.NoError(t, err)
	assert.Len(t, calendar, 2)
}

func TestGetCalendar_ServedFromCache(t *testing.T) {
	f := newCalendarFixture()
	cached, err := json.Marshal(models.Calendar{fullMonth("Jan'25", 31, 1)})
	require.NoError(t, err)
	f.redis.On("Get", mock.Anything, testPlannerKey).Return(string(cached), nil)

	view, err := f.usecase.GetCalendar(context.Background(), date(2025, time.January, 31))
	require.NoError(t, err)
	require.NotNil(t, view.Today)
	assert.Equal(t, 31, view.Today.Date)
	assert.Nil(t, view.Tomorrow)
	f.client.AssertNotCalled(t, "FetchPlanner", mock.Anything)
}

func TestGetCalendar_RefreshesOnCacheMiss(t *testing.T) {
	f := newCalendarFixture()
	f.redis.On("Get", mock.Anything, testPlannerKey).Return("", nil)
	f.client.On("FetchPlanner", mock.Anything).Return(plannerTable(), nil)
	f.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.snapshots.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	// records are addressed by position, so the second January record answers for the 2nd
	view, err := f.usecase.GetCalendar(context.Background(), date(2025, time.January, 2))
	require.NoError(t, err)
	require.NotNil(t, view.Today)
	assert.Equal(t, 31, view.Today.Date)
	assert.Equal(t, "Fest", view.Today.Event)
	require.NotNil(t, view.Tomorrow)
	assert.Equal(t, 1, view.Tomorrow.Date)
	assert.Equal(t, "-", view.Tomorrow.DayOrder)
	require.NotNil(t, view.DayAfterTomorrow)
	assert.Equal(t, 3, view.DayAfterTomorrow.Date)
}

func TestGetCalendar_FallsBackToSnapshot(t *testing.T) {
	f := newCalendarFixture()
	f.redis.On("Get", mock.Anything, testPlannerKey).Return("", errors.New("redis down"))
	f.client.On("FetchPlanner", mock.Anything).Return(nil, errors.New("upstream down"))
	f.snapshots.On("FindLatest", mock.Anything, "ODD-2025").Return(&models.PlannerSnapshot{
		PlannerName: "ODD-2025",
		Calendar:    models.Calendar{fullMonth("Jan'25", 31, 1)},
		FetchedAt:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}, nil)

	view, err := f.usecase.GetCalendar(context.Background(), date(2025, time.January, 2))
	require.NoError(t, err)
	require.NotNil(t, view.Today)
	assert.Equal(t, 2, view.Today.Date)
}

func TestGetCalendar_UpstreamAndSnapshotMissing(t *testing.T) {
	f := newCalendarFixture()
	upstreamErr := errors.New("upstream down")
	f.redis.On("Get", mock.Anything, testPlannerKey).Return("", nil)
	f.client.On("FetchPlanner", mock.Anything).Return(nil, upstreamErr)
	f.snapshots.On("FindLatest", mock.Anything, "ODD-2025").Return(nil, nil)

	view, err := f.usecase.GetCalendar(context.Background(), date(2025, time.January, 2))
	assert.Nil(t, view)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestGetDayOrder(t *testing.T) {
	f := newCalendarFixture()
	cached, err := json.Marshal(models.Calendar{fullMonth("Jan'25", 20, 1)})
	require.NoError(t, err)
	f.redis.On("Get", mock.Anything, testPlannerKey).Return(string(cached), nil)

	resolution, err := f.usecase.GetDayOrder(context.Background(), date(2025, time.January, 3))
	require.NoError(t, err)
	assert.True(t, resolution.Found)
	assert.Equal(t, "3", resolution.DayOrder)
	assert.Equal(t, constvars.StatusOK, resolution.Status)

	missing, err := f.usecase.GetDayOrder(context.Background(), date(2025, time.January, 25))
	require.NoError(t, err)
	assert.False(t, missing.Found)
	assert.Equal(t, constvars.StatusNotFound, missing.Status)
	outOfPlanner, err := f.usecase.GetDayOrder(context.Background(), date(2025, time.March, 3))
	require.NoError(t, err)
	assert.False(t, outOfPlanner.Found)
	assert.True(t, outOfPlanner.WeakMatch)
	assert.Equal(t, constvars.StatusNotFound, outOfPlanner.Status)
}
