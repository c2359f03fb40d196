package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/repo"
	"github.com/JackFaiSeT/purple-school-airbnb/pkg/dates"
)

// In-memory stand-ins for the Mongo repos. They mirror the behavior the
// real repos get from the unique indexes: duplicate inserts fail instead
// of silently overwriting.

type fakeRoomRepo struct {
	rooms map[string]models.Room
	order []string
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]models.Room)}
}

func (f *fakeRoomRepo) Insert(_ context.Context, room models.Room) (models.Room, error) {
	for _, r := range f.rooms {
		if r.RoomNumber == room.RoomNumber {
			return models.Room{}, models.ErrRoomAlreadyExists
		}
	}
	room.ID = primitive.NewObjectID().Hex()
	f.rooms[room.ID] = room
	f.order = append(f.order, room.ID)
	return room, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.order))
	for _, id := range f.order {
		if r, ok := f.rooms[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id string) (models.Room, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Room{}, models.ErrInvalidID
	}
	r, ok := f.rooms[id]
	if !ok {
		return models.Room{}, models.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeRoomRepo) FindByNumber(_ context.Context, roomNumber int) (models.Room, error) {
	for _, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			return r, nil
		}
	}
	return models.Room{}, models.ErrRoomNotFound
}

func (f *fakeRoomRepo) ExistsByNumber(_ context.Context, roomNumber int, excludeID string) (bool, error) {
	for id, r := range f.rooms {
		if r.RoomNumber == roomNumber && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, id string, fields repo.RoomUpdate) (models.Room, error) {
	r, err := f.FindByID(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	if fields.RoomNumber != nil {
		for otherID, other := range f.rooms {
			if other.RoomNumber == *fields.RoomNumber && otherID != id {
				return models.Room{}, models.ErrRoomAlreadyExists
			}
		}
		r.RoomNumber = *fields.RoomNumber
	}
	if fields.RoomType != nil {
		r.RoomType = *fields.RoomType
	}
	if fields.HasSeaView != nil {
		r.HasSeaView = *fields.HasSeaView
	}
	f.rooms[id] = r
	return r, nil
}

func (f *fakeRoomRepo) DeleteByID(ctx context.Context, id string) (models.Room, error) {
	r, err := f.FindByID(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	delete(f.rooms, id)
	return r, nil
}

func (f *fakeRoomRepo) DeleteByNumber(ctx context.Context, roomNumber int) (models.Room, error) {
	r, err := f.FindByNumber(ctx, roomNumber)
	if err != nil {
		return models.Room{}, err
	}
	delete(f.rooms, r.ID)
	return r, nil
}

func (f *fakeRoomRepo) countByNumber(roomNumber int) int {
	n := 0
	for _, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			n++
		}
	}
	return n
}

type fakeRoomCache struct {
	entries map[string]models.Room
}

func newFakeRoomCache() *fakeRoomCache {
	return &fakeRoomCache{entries: make(map[string]models.Room)}
}

func (f *fakeRoomCache) Get(_ context.Context, id string) (models.Room, bool) {
	r, ok := f.entries[id]
	return r, ok
}

func (f *fakeRoomCache) Set(_ context.Context, room models.Room) { f.entries[room.ID] = room }

func (f *fakeRoomCache) Invalidate(_ context.Context, id string) { delete(f.entries, id) }

type fakeScheduleRepo struct {
	scheds map[string]models.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{scheds: make(map[string]models.Schedule)}
}

func (f *fakeScheduleRepo) Insert(_ context.Context, s models.Schedule) (models.Schedule, error) {
	if _, err := primitive.ObjectIDFromHex(s.RoomID); err != nil {
		return models.Schedule{}, models.ErrInvalidID
	}
	for _, existing := range f.scheds {
		if existing.RoomID == s.RoomID && existing.Date.Equal(s.Date) {
			return models.Schedule{}, models.ErrRoomBooked
		}
	}
	s.ID = primitive.NewObjectID().Hex()
	f.scheds[s.ID] = s
	return s, nil
}

func (f *fakeScheduleRepo) FindAll(_ context.Context, filter repo.ScheduleFilter) ([]models.Schedule, error) {
	out := make([]models.Schedule, 0)
	for _, s := range f.scheds {
		if filter.RoomID != "" && s.RoomID != filter.RoomID {
			continue
		}
		if filter.Day != nil {
			start := dates.StartOfDayUTC(*filter.Day)
			end := dates.EndOfDayUTC(*filter.Day)
			if s.Date.Before(start) || s.Date.After(end) {
				continue
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeScheduleRepo) FindByID(_ context.Context, id string) (models.Schedule, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Schedule{}, models.ErrInvalidID
	}
	s, ok := f.scheds[id]
	if !ok {
		return models.Schedule{}, models.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) HasConflict(_ context.Context, roomID string, date time.Time, excludeID string) (bool, error) {
	for id, s := range f.scheds {
		if s.RoomID == roomID && s.Date.Equal(date) && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, id, roomID string, date time.Time) (models.Schedule, error) {
	s, err := f.FindByID(ctx, id)
	if err != nil {
		return models.Schedule{}, err
	}
	for otherID, other := range f.scheds {
		if other.RoomID == roomID && other.Date.Equal(date) && otherID != id {
			return models.Schedule{}, models.ErrRoomBooked
		}
	}
	s.RoomID = roomID
	s.Date = date
	f.scheds[id] = s
	return s, nil
}

func (f *fakeScheduleRepo) DeleteByID(ctx context.Context, id string) (models.Schedule, error) {
	s, err := f.FindByID(ctx, id)
	if err != nil {
		return models.Schedule{}, err
	}
	delete(f.scheds, id)
	return s, nil
}
