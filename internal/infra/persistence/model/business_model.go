package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialModel is the embedded social-handles document.
type SocialModel struct {
	Facebook  string `bson:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty"`
}

// BusinessModel mirrors the 'businesses' collection. BusinessName and
// OwnerSubject carry unique indexes declared at startup.
type BusinessModel struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	OwnerSubject         string             `bson:"ownerSubject"`
	BusinessName         string             `bson:"businessName"`
	BusinessType         string             `bson:"businessType"`
	OwnerName            string             `bson:"ownerName"`
	Website              string             `bson:"website,omitempty"`
	Address              string             `bson:"address,omitempty"`
	Contact              string             `bson:"contact,omitempty"`
	Social               SocialModel        `bson:"social,omitempty"`
	Description          string             `bson:"description,omitempty"`
	MembershipExpiryDate time.Time          `bson:"membershipExpiryDate,omitempty"`
	LastPayDate          time.Time          `bson:"lastPayDate,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt"`
}

// CollectionBusinesses is the collection name for BusinessModel.
const CollectionBusinesses = "businesses"
