package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/db"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
	"github.com/JackFaiSeT/purple-school-airbnb/pkg/dates"
)

// ScheduleFilter narrows FindAll. Zero values mean "no filter".
// Day matches any schedule stored within that UTC calendar day.
type ScheduleFilter struct {
	RoomID string
	Day    *time.Time
}

type ScheduleRepo interface {
	Insert(ctx context.Context, s models.Schedule) (models.Schedule, error)
	FindAll(ctx context.Context, filter ScheduleFilter) ([]models.Schedule, error)
	FindByID(ctx context.Context, id string) (models.Schedule, error)
	// HasConflict reports whether a schedule other than excludeID already
	// books roomID on the given (normalized) date.
	HasConflict(ctx context.Context, roomID string, date time.Time, excludeID string) (bool, error)
	Update(ctx context.Context, id, roomID string, date time.Time) (models.Schedule, error)
	DeleteByID(ctx context.Context, id string) (models.Schedule, error)
}

type scheduleDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	RoomID primitive.ObjectID `bson:"roomId"`
	Date   time.Time          `bson:"date"`
}

func (d scheduleDoc) toModel() models.Schedule {
	return models.Schedule{
		ID:     oidHex(d.ID),
		RoomID: oidHex(d.RoomID),
		Date:   d.Date.UTC(),
	}
}

type scheduleRepoMongo struct{ d *mongo.Database }

func NewScheduleRepoMongo(d *mongo.Database) ScheduleRepo { return &scheduleRepoMongo{d: d} }

func (r *scheduleRepoMongo) col() *mongo.Collection { return r.d.Collection(db.SchedulesCollection) }

func (r *scheduleRepoMongo) Insert(ctx context.Context, s models.Schedule) (models.Schedule, error) {
	roid, err := mustOID(s.RoomID)
	if err != nil {
		return models.Schedule{}, err
	}
	res, err := r.col().InsertOne(ctx, bson.M{"roomId": roid, "date": s.Date})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// unique (roomId, date) index closed the check-then-insert race
			return models.Schedule{}, models.ErrRoomBooked
		}
		return models.Schedule{}, err
	}
	s.ID = oidHex(res.InsertedID.(primitive.ObjectID))
	return s, nil
}

func (r *scheduleRepoMongo) FindAll(ctx context.Context, filter ScheduleFilter) ([]models.Schedule, error) {
	q := bson.M{}
	if filter.RoomID != "" {
		roid, err := mustOID(filter.RoomID)
		if err != nil {
			return nil, err
		}
		q["roomId"] = roid
	}
	if filter.Day != nil {
		q["date"] = bson.M{
			"$gte": dates.StartOfDayUTC(*filter.Day),
			"$lte": dates.EndOfDayUTC(*filter.Day),
		}
	}

	cur, err := r.col().Find(ctx, q)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Schedule, 0)
	for cur.Next(ctx) {
		var doc scheduleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}

func (r *scheduleRepoMongo) FindByID(ctx context.Context, id string) (models.Schedule, error) {
	oid, err := mustOID(id)
	if err != nil {
		return models.Schedule{}, err
	}
	var doc scheduleDoc
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Schedule{}, models.ErrScheduleNotFound
	}
	if err != nil {
		return models.Schedule{}, err
	}
	return doc.toModel(), nil
}

func (r *scheduleRepoMongo) HasConflict(ctx context.Context, roomID string, date time.Time, excludeID string) (bool, error) {
	roid, err := mustOID(roomID)
	if err != nil {
		return false, err
	}
	filter := bson.M{"roomId": roid, "date": date}
	if excludeID != "" {
		oid, err := mustOID(excludeID)
		if err != nil {
			return false, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	cnt, err := r.col().CountDocuments(ctx, filter)
	return cnt > 0, err
}

func (r *scheduleRepoMongo) Update(ctx context.Context, id, roomID string, date time.Time) (models.Schedule, error) {
	oid, err := mustOID(id)
	if err != nil {
		return models.Schedule{}, err
	}
	roid, err := mustOID(roomID)
	if err != nil {
		return models.Schedule{}, err
	}

	var doc scheduleDoc
	err = r.col().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"roomId": roid, "date": date}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Schedule{}, models.ErrScheduleNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Schedule{}, models.ErrRoomBooked
		}
		return models.Schedule{}, err
	}
	return doc.toModel(), nil
}

func (r *scheduleRepoMongo) DeleteByID(ctx context.Context, id string) (models.Schedule, error) {
	oid, err := mustOID(id)
	if err != nil {
		return models.Schedule{}, err
	}
	var doc scheduleDoc
	err = r.col().FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Schedule{}, models.ErrScheduleNotFound
	}
	if err != nil {
		return models.Schedule{}, err
	}
	return doc.toModel(), nil
}
