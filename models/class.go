package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class is a group of students within one session. Fee templates are scoped
// to a set of classes before they can be assigned.
type Class struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	// ClassId is the external identifier shown to staff, unique per school.
	ClassId    string               `json:"classId" bson:"classId"`
	Name       string               `json:"name" bson:"name" validate:"required"`
	TeacherIds []primitive.ObjectID `json:"teacherIds,omitempty" bson:"teacherIds,omitempty"`
	SessionId  primitive.ObjectID   `json:"sessionId" bson:"sessionId"`
	CreatedAt  time.Time            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
