package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeesType is a billable line item. It belongs to exactly one FeesGroup and
// can never be attached under a different group than the one it was created
// with; every lookup for template building matches both _id and feesGroup.
type FeesType struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	// TypeId is the external identifier, unique.
	TypeId      string             `json:"typeId" bson:"typeId"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	FeesGroup   primitive.ObjectID `json:"feesGroup" bson:"feesGroup"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Status      string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
