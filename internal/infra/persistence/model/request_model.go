package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestModel mirrors the 'requests' collection.
type RequestModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID   primitive.ObjectID `bson:"businessId"`
	BusinessName string             `bson:"businessName"`
	OwnerSubject string             `bson:"ownerSubject"`
	Changes      map[string]string  `bson:"changes"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// RequestHistoryModel mirrors the append-only 'request_history' collection.
type RequestHistoryModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RequestID    primitive.ObjectID `bson:"requestId"`
	BusinessID   primitive.ObjectID `bson:"businessId"`
	BusinessName string             `bson:"businessName"`
	Changes      map[string]string  `bson:"changes"`
	Status       string             `bson:"status"`
	ResolvedBy   string             `bson:"resolvedBy"`
	Date         time.Time          `bson:"date"`
}

// Collection names for request documents.
const (
	CollectionRequests       = "requests"
	CollectionRequestHistory = "request_history"
)
