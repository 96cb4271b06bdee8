package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a billing/academic period. Fee templates, student fees and
// ledger rows are all scoped to one session.
type Session struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	StartDate time.Time          `json:"startDate" bson:"startDate" validate:"required"`
	EndDate   time.Time          `json:"endDate" bson:"endDate" validate:"required"`
	// SessionId is the external identifier, e.g. "2024-25". Unique.
	SessionId string    `json:"sessionId" bson:"sessionId"`
	Status    string    `json:"status" bson:"status" validate:"omitempty,oneof=active inactive completed"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
