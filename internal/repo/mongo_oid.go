package repo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
)

func mustOID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, models.ErrInvalidID
	}
	return oid, nil
}

func oidHex(id primitive.ObjectID) string {
	return id.Hex()
}
