// Package model contains the bson persistence models mirroring the Mongo
// collections. Domain entities never carry bson tags; mapping happens in the
// mongodb package.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors the 'users' collection. Email and Subject carry unique
// indexes declared at startup.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Subject   string             `bson:"subject"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone,omitempty"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CollectionUsers is the collection name for UserModel.
const CollectionUsers = "users"
