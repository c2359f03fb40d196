package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/db"
	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
)

type RoomRepo interface {
	Insert(ctx context.Context, room models.Room) (models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (models.Room, error)
	FindByNumber(ctx context.Context, roomNumber int) (models.Room, error)
	// ExistsByNumber reports whether a room other than excludeID holds
	// roomNumber. Pass excludeID == "" to check against all rooms.
	ExistsByNumber(ctx context.Context, roomNumber int, excludeID string) (bool, error)
	Update(ctx context.Context, id string, fields RoomUpdate) (models.Room, error)
	DeleteByID(ctx context.Context, id string) (models.Room, error)
	DeleteByNumber(ctx context.Context, roomNumber int) (models.Room, error)
}

// RoomUpdate carries a partial update; nil fields are left untouched.
type RoomUpdate struct {
	RoomNumber *int
	RoomType   *models.RoomType
	HasSeaView *bool
}

type roomDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	RoomNumber int                `bson:"roomNumber"`
	RoomType   models.RoomType    `bson:"roomType"`
	HasSeaView bool               `bson:"hasSeaView"`
}

func (d roomDoc) toModel() models.Room {
	return models.Room{
		ID:         oidHex(d.ID),
		RoomNumber: d.RoomNumber,
		RoomType:   d.RoomType,
		HasSeaView: d.HasSeaView,
	}
}

type roomRepoMongo struct{ d *mongo.Database }

func NewRoomRepoMongo(d *mongo.Database) RoomRepo { return &roomRepoMongo{d: d} }

func (r *roomRepoMongo) col() *mongo.Collection { return r.d.Collection(db.RoomsCollection) }

func (r *roomRepoMongo) Insert(ctx context.Context, room models.Room) (models.Room, error) {
	res, err := r.col().InsertOne(ctx, bson.M{
		"roomNumber": room.RoomNumber,
		"roomType":   room.RoomType,
		"hasSeaView": room.HasSeaView,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// unique index on roomNumber closed the check-then-insert race
			return models.Room{}, models.ErrRoomAlreadyExists
		}
		return models.Room{}, err
	}
	room.ID = oidHex(res.InsertedID.(primitive.ObjectID))
	return room, nil
}

func (r *roomRepoMongo) FindAll(ctx context.Context) ([]models.Room, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Room, 0)
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}

func (r *roomRepoMongo) FindByID(ctx context.Context, id string) (models.Room, error) {
	oid, err := mustOID(id)
	if err != nil {
		return models.Room{}, err
	}
	var doc roomDoc
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return doc.toModel(), nil
}

func (r *roomRepoMongo) FindByNumber(ctx context.Context, roomNumber int) (models.Room, error) {
	var doc roomDoc
	err := r.col().FindOne(ctx, bson.M{"roomNumber": roomNumber}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return doc.toModel(), nil
}

func (r *roomRepoMongo) ExistsByNumber(ctx context.Context, roomNumber int, excludeID string) (bool, error) {
	filter := bson.M{"roomNumber": roomNumber}
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

func (r *roomRepoMongo) Update(ctx context.Context, id string, fields RoomUpdate) (models.Room, error) {
	oid, err := mustOID(id)
	if err != nil {
		return models.Room{}, err
	}

	set := bson.M{}
	if fields.RoomNumber != nil {
		set["roomNumber"] = *fields.RoomNumber
	}
	if fields.RoomType != nil {
		set["roomType"] = *fields.RoomType
	}
	if fields.HasSeaView != nil {
		set["hasSeaView"] = *fields.HasSeaView
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var doc roomDoc
	err = r.col().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Room{}, models.ErrRoomAlreadyExists
		}
		return models.Room{}, err
	}
	return doc.toModel(), nil
}

func (r *roomRepoMongo) DeleteByID(ctx context.Context, id string) (models.Room, error) {
	oid, err := mustOID(id)
	if err != nil {
		return models.Room{}, err
	}
	var doc roomDoc
	err = r.col().FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return doc.toModel(), nil
}

func (r *roomRepoMongo) DeleteByNumber(ctx context.Context, roomNumber int) (models.Room, error) {
	var doc roomDoc
	err := r.col().FindOneAndDelete(ctx, bson.M{"roomNumber": roomNumber}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Room{}, models.ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return doc.toModel(), nil
}
