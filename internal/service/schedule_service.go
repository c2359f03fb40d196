package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/repo"
	"github.com/JackFaiSeT/purple-school-airbnb/pkg/dates"
)

type ScheduleService interface {
	Create(ctx context.Context, roomID string, date time.Time) (models.Schedule, error)
	FindAll(ctx context.Context, filter ScheduleFilter) ([]models.Schedule, error)
	FindOne(ctx context.Context, id string) (models.Schedule, error)
	Update(ctx context.Context, id, roomID string, date time.Time) (models.Schedule, error)
	Remove(ctx context.Context, id string) error
}

// ScheduleFilter narrows FindAll; zero values match everything.
type ScheduleFilter struct {
	RoomID string
	Date   *time.Time
}

type scheduleService struct {
	schedules repo.ScheduleRepo
	log       *zap.Logger
}

func NewScheduleService(schedules repo.ScheduleRepo, log *zap.Logger) ScheduleService {
	return &scheduleService{schedules: schedules, log: log}
}

// Create books roomID for the calendar day of date. The time-of-day part
// is discarded: two requests on the same UTC day land on the same
// normalized date and the second one is rejected.
//
// roomID is a logical reference; no room existence check happens here.
func (s *scheduleService) Create(ctx context.Context, roomID string, date time.Time) (models.Schedule, error) {
	day := dates.StartOfDayUTC(date)

	booked, err := s.schedules.HasConflict(ctx, roomID, day, "")
	if err != nil {
		return models.Schedule{}, err
	}
	if booked {
		return models.Schedule{}, models.ErrRoomBooked
	}

	created, err := s.schedules.Insert(ctx, models.Schedule{RoomID: roomID, Date: day})
	if err != nil {
		return models.Schedule{}, err
	}

	s.log.Info("schedule created",
		zap.String("id", created.ID),
		zap.String("roomId", created.RoomID),
		zap.Time("date", created.Date))
	return created, nil
}

func (s *scheduleService) FindAll(ctx context.Context, filter ScheduleFilter) ([]models.Schedule, error) {
	return s.schedules.FindAll(ctx, repo.ScheduleFilter{
		RoomID: filter.RoomID,
		Day:    filter.Date,
	})
}

func (s *scheduleService) FindOne(ctx context.Context, id string) (models.Schedule, error) {
	return s.schedules.FindByID(ctx, id)
}

// Update re-targets an existing schedule. The target must exist before the
// conflict check runs, so updating a missing id reports not-found even when
// the requested (room, day) pair is already taken.
func (s *scheduleService) Update(ctx context.Context, id, roomID string, date time.Time) (models.Schedule, error) {
	if _, err := s.schedules.FindByID(ctx, id); err != nil {
		return models.Schedule{}, err
	}

	day := dates.StartOfDayUTC(date)

	booked, err := s.schedules.HasConflict(ctx, roomID, day, id)
	if err != nil {
		return models.Schedule{}, err
	}
	if booked {
		return models.Schedule{}, models.ErrRoomBooked
	}

	updated, err := s.schedules.Update(ctx, id, roomID, day)
	if err != nil {
		return models.Schedule{}, err
	}

	s.log.Info("schedule updated",
		zap.String("id", updated.ID),
		zap.String("roomId", updated.RoomID),
		zap.Time("date", updated.Date))
	return updated, nil
}

func (s *scheduleService) Remove(ctx context.Context, id string) error {
	deleted, err := s.schedules.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	s.log.Info("schedule removed", zap.String("id", deleted.ID))
	return nil
}
