package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SignupRequestModel mirrors the 'signup_requests' collection.
type SignupRequestModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BusinessName string             `bson:"businessName"`
	BusinessType string             `bson:"businessType"`
	OwnerName    string             `bson:"ownerName"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone,omitempty"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// CollectionSignupRequests is the collection name for SignupRequestModel.
const CollectionSignupRequests = "signup_requests"
