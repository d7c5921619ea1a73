package courses

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts/mocks"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
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

func newTestCourseUsecase(client *mocks.AcademiaClient, repo *mocks.RedisRepository) *courseUsecase {
	cfg := &config.InternalConfig{Cache: config.AppCache{CoursesTTLInMinutes: 2}}
	return NewCourseUsecase(client, repo, cfg, zap.NewNop()).(*courseUsecase)
}

func TestGetCourses_FetchesNormalizesAndCaches(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	key := constvars.RedisKeyCoursesPrefix + utils.HashSessionToken("session")

	repo.On("Get", mock.Anything, key).Return("", nil)
	client.On("FetchCourses", mock.Anything, "session").Return(&models.RawCourseList{
		RegNumber: "RA01",
		Courses:   []models.RawCourse{{Code: "CS101", Title: "Algorithms", Slot: "A-", Room: "601"}},
	}, nil)
	repo.On("Set", mock.Anything, key, mock.AnythingOfType("models.CourseList"), 2*time.Minute).Return(nil)

	list, err := newTestCourseUsecase(client, repo).GetCourses(context.Background(), "session")
	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.Equal(t, "A", list.Courses[0].Slot)
	assert.Equal(t, "N/A", list.Courses[0].Faculty)
	repo.AssertExpectations(t)
}

func TestGetCourses_ServedFromCache(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	cached, err := json.Marshal(models.CourseList{RegNumber: "RA01", Courses: []models.EnrolledCourse{{Code: "CS101"}}})
	require.NoError(t, err)
	repo.On("Get", mock.Anything, mock.Anything).Return(string(cached), nil)

	list, err := newTestCourseUsecase(client, repo).GetCourses(context.Background(), "session")
	require.NoError(t, err)
	assert.Equal(t, "RA01", list.RegNumber)
	client.AssertNotCalled(t, "FetchCourses", mock.Anything, mock.Anything)
}

func TestGetCourses_CacheFailureFallsThrough(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis down"))
	repo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	client.On("FetchCourses", mock.Anything, "session").Return(&models.RawCourseList{RegNumber: "RA01"}, nil)

	list, err := newTestCourseUsecase(client, repo).GetCourses(context.Background(), "session")
	require.NoError(t, err)
	assert.Equal(t, "RA01", list.RegNumber)
}

func TestGetCourses_UpstreamFailure(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return("", nil)
	upstreamErr := exceptions.ErrUpstreamFetch(errors.New("timeout"), constvars.ResourceCourses)
	client.On("FetchCourses", mock.Anything, "session").Return(nil, upstreamErr)

	_, err := newTestCourseUsecase(client, repo).GetCourses(context.Background(), "session")
	assert.ErrorIs(t, err, upstreamErr)
}

func TestGetCourses_RequiresSession(t *testing.T) {
	_, err := newTestCourseUsecase(new(mocks.AcademiaClient), new(mocks.RedisRepository)).GetCourses(context.Background(), "")

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}
