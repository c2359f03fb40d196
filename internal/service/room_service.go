package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/repo"
)

type RoomService interface {
	Create(ctx context.Context, in CreateRoomInput) (models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	FindOne(ctx context.Context, id string) (models.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber int) (models.Room, error)
	Update(ctx context.Context, id string, in UpdateRoomInput) (models.Room, error)
	Remove(ctx context.Context, id string) error
	RemoveByRoomNumber(ctx context.Context, roomNumber int) error
}

type CreateRoomInput struct {
	RoomNumber int
	RoomType   models.RoomType
	HasSeaView *bool // defaults to false when absent
}

// UpdateRoomInput carries a partial update; nil fields keep their value.
type UpdateRoomInput struct {
	RoomNumber *int
	RoomType   *models.RoomType
	HasSeaView *bool
}

type roomService struct {
	rooms repo.RoomRepo
	cache repo.RoomCache
	log   *zap.Logger
}

func NewRoomService(rooms repo.RoomRepo, cache repo.RoomCache, log *zap.Logger) RoomService {
	return &roomService{rooms: rooms, cache: cache, log: log}
}

func (s *roomService) Create(ctx context.Context, in CreateRoomInput) (models.Room, error) {
	if in.RoomNumber <= 0 {
		return models.Room{}, models.ErrInvalidRoomNumber
	}
	if !in.RoomType.Valid() {
		return models.Room{}, models.ErrInvalidRoomType
	}

	taken, err := s.rooms.ExistsByNumber(ctx, in.RoomNumber, "")
	if err != nil {
		return models.Room{}, err
	}
	if taken {
		return models.Room{}, models.ErrRoomAlreadyExists
	}

	room := models.Room{
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		HasSeaView: in.HasSeaView != nil && *in.HasSeaView,
	}
	created, err := s.rooms.Insert(ctx, room)
	if err != nil {
		return models.Room{}, err
	}

	s.cache.Set(ctx, created)
	s.log.Info("room created",
		zap.String("id", created.ID),
		zap.Int("roomNumber", created.RoomNumber))
	return created, nil
}

func (s *roomService) FindAll(ctx context.Context) ([]models.Room, error) {
	return s.rooms.FindAll(ctx)
}

func (s *roomService) FindOne(ctx context.Context, id string) (models.Room, error) {
	if room, ok := s.cache.Get(ctx, id); ok {
		return room, nil
	}
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	s.cache.Set(ctx, room)
	return room, nil
}

func (s *roomService) FindByRoomNumber(ctx context.Context, roomNumber int) (models.Room, error) {
	room, err := s.rooms.FindByNumber(ctx, roomNumber)
	if err != nil {
		return models.Room{}, err
	}
	s.cache.Set(ctx, room)
	return room, nil
}

func (s *roomService) Update(ctx context.Context, id string, in UpdateRoomInput) (models.Room, error) {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return models.Room{}, err
	}

	if in.RoomNumber != nil {
		if *in.RoomNumber <= 0 {
			return models.Room{}, models.ErrInvalidRoomNumber
		}
		// a room may keep its own number, so exclude the target itself
		taken, err := s.rooms.ExistsByNumber(ctx, *in.RoomNumber, id)
		if err != nil {
			return models.Room{}, err
		}
		if taken {
			return models.Room{}, models.ErrRoomAlreadyExists
		}
	}
	if in.RoomType != nil && !in.RoomType.Valid() {
		return models.Room{}, models.ErrInvalidRoomType
	}

	updated, err := s.rooms.Update(ctx, id, repo.RoomUpdate{
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		HasSeaView: in.HasSeaView,
	})
	if err != nil {
		return models.Room{}, err
	}

	s.cache.Set(ctx, updated)
	s.log.Info("room updated", zap.String("id", updated.ID))
	return updated, nil
}

func (s *roomService) Remove(ctx context.Context, id string) error {
	deleted, err := s.rooms.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, deleted.ID)
	s.log.Info("room removed", zap.String("id", deleted.ID))
	return nil
}

func (s *roomService) RemoveByRoomNumber(ctx context.Context, roomNumber int) error {
	deleted, err := s.rooms.DeleteByNumber(ctx, roomNumber)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, deleted.ID)
	s.log.Info("room removed", zap.String("id", deleted.ID), zap.Int("roomNumber", roomNumber))
	return nil
}
