// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	return m.Called(ctx, key, exp).Error(0)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type AcademiaClient struct {
	mock.Mock
}

func (m *AcademiaClient) FetchPlanner(ctx context.Context) (*models.PlannerTable, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(*models.PlannerTable)
	return table, args.Error(1)
}

func (m *AcademiaClient) FetchCourses(ctx context.Context, sessionToken string) (*models.RawCourseList, error) {
	args := m.Called(ctx, sessionToken)
	list, _ := args.Get(0).(*models.RawCourseList)
	return list, args.Error(1)
}

func (m *AcademiaClient) FetchUser(ctx context.Context, sessionToken string) (*models.User, error) {
	args := m.Called(ctx, sessionToken)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type PlannerSnapshotRepository struct {
	mock.Mock
}

func (m *PlannerSnapshotRepository) Upsert(ctx context.Context, snapshot *models.PlannerSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *PlannerSnapshotRepository) FindLatest(ctx context.Context, plannerName string) (*models.PlannerSnapshot, error) {
	args := m.Called(ctx, plannerName)
	snapshot, _ := args.Get(0).(*models.PlannerSnapshot)
	return snapshot, args.Error(1)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadJSON(ctx context.Context, payload []byte, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, payload, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishTimetableGenerated(ctx context.Context, event *models.TimetableGeneratedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type CalendarUsecase struct {
	mock.Mock
}

func (m *CalendarUsecase) GetCalendar(ctx context.Context, reference time.Time) (*responses.CalendarView, error) {
	args := m.Called(ctx, reference)
	view, _ := args.Get(0).(*responses.CalendarView)
	return view, args.Error(1)
}

func (m *CalendarUsecase) GetDayOrder(ctx context.Context, reference time.Time) (*models.DayOrderResolution, error) {
	args := m.Called(ctx, reference)
	resolution, _ := args.Get(0).(*models.DayOrderResolution)
	return resolution, args.Error(1)
}

func (m *CalendarUsecase) RefreshPlanner(ctx context.Context) (models.Calendar, error) {
	args := m.Called(ctx)
	calendar, _ := args.Get(0).(models.Calendar)
	return calendar, args.Error(1)
}

type CourseUsecase struct {
	mock.Mock
}

func (m *CourseUsecase) GetCourses(ctx context.Context, sessionToken string) (*models.CourseList, error) {
	args := m.Called(ctx, sessionToken)
	list, _ := args.Get(0).(*models.CourseList)
	return list, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) GetUser(ctx context.Context, sessionToken string) (*models.User, error) {
	args := m.Called(ctx, sessionToken)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type TimetableUsecase struct {
	mock.Mock
}

func (m *TimetableUsecase) GetTimetable(ctx context.Context, sessionToken, batch string) (*responses.Timetable, error) {
	args := m.Called(ctx, sessionToken, batch)
	timetable, _ := args.Get(0).(*responses.Timetable)
	return timetable, args.Error(1)
}

func (m *TimetableUsecase) GenerateTimetable(ctx context.Context, sessionToken, batch string) (*responses.Timetable, error) {
	args := m.Called(ctx, sessionToken, batch)
	timetable, _ := args.Get(0).(*responses.Timetable)
	return timetable, args.Error(1)
}

func (m *TimetableUsecase) ExportTimetable(ctx context.Context, sessionToken, batch string) (*models.TimetableExport, error) {
	args := m.Called(ctx, sessionToken, batch)
	export, _ := args.Get(0).(*models.TimetableExport)
	return export, args.Error(1)
}

func (m *TimetableUsecase) GetDayClasses(ctx context.Context, sessionToken, batch string, reference time.Time) (*responses.DayClasses, error) {
	args := m.Called(ctx, sessionToken, batch, reference)
	classes, _ := args.Get(0).(*responses.DayClasses)
	return classes, args.Error(1)
}

type AcademicUsecase struct {
	mock.Mock
}

func (m *AcademicUsecase) GetAcademicData(ctx context.Context, sessionToken string, reference time.Time) (*responses.AcademicData, error) {
	args := m.Called(ctx, sessionToken, reference)
	data, _ := args.Get(0).(*responses.AcademicData)
	return data, args.Error(1)
}
