package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentMessageModel mirrors the 'sent_messages' collection. Exactly one of
// ToAddress and BroadcastType is set.
type SentMessageModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Subject       string             `bson:"subject"`
	Body          string             `bson:"body"`
	Attachments   []string           `bson:"attachments,omitempty"`
	ToAddress     string             `bson:"toAddress,omitempty"`
	BroadcastType string             `bson:"broadcastType,omitempty"`
	SentBy        string             `bson:"sentBy"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

// CollectionSentMessages is the collection name for SentMessageModel.
const CollectionSentMessages = "sent_messages"
