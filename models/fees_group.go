package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeesGroup is a named category of fees, e.g. "Tuition" or "Transport".
type FeesGroup struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	// GroupId is the external identifier, unique.
	GroupId     string    `json:"groupId" bson:"groupId"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Status      string    `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
