package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin   = "admin"
	RoleParent  = "parent"
	RoleTeacher = "teacher"
	RoleStudent = "student"

	UserActive    = "active"
	UserInactive  = "inactive"
	UserSuspended = "suspended"
)

type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Role     string             `json:"role" bson:"role" validate:"required,oneof=admin parent teacher student"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	Email    string             `json:"email" bson:"email" validate:"required,email"`
	Password string             `json:"-" bson:"password"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Status   string             `json:"status" bson:"status"`
	// LastLogin is bumped by the login endpoint.
	LastLogin time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (u *User) GetID() *primitive.ObjectID {
	if u == nil {
		return nil
	}
	if u.ID == primitive.NilObjectID {
		return nil
	}
	return &u.ID
}
