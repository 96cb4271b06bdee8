package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParentInfo holds the contact details for one parent or guardian. The email
// is the join key into the users collection when resolving reminder
// recipients.
type ParentInfo struct {
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Occupation  string `json:"occupation,omitempty" bson:"occupation,omitempty"`
}

type Student struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AdmissionNumber string             `json:"admissionNumber" bson:"admissionNumber" validate:"required"`
	AdmissionDate   time.Time          `json:"admissionDate" bson:"admissionDate"`
	Status          string             `json:"status" bson:"status"`
	SessionId       primitive.ObjectID `json:"sessionId" bson:"sessionId"`
	// ClassId is optional at admission time; students without a class are
	// outside every template's scope.
	ClassId    primitive.ObjectID `json:"classId,omitempty" bson:"classId,omitempty"`
	RollNumber string             `json:"rollNumber,omitempty" bson:"rollNumber,omitempty"`
	Name       string             `json:"name" bson:"name" validate:"required"`
	Gender     string             `json:"gender,omitempty" bson:"gender,omitempty"`
	// Class is a legacy flat field kept for records created before classes
	// became references; the session ledger aggregation falls back to it.
	Class      string     `json:"class,omitempty" bson:"class,omitempty"`
	Section    string     `json:"section,omitempty" bson:"section,omitempty"`
	Photo      string     `json:"photo,omitempty" bson:"photo,omitempty"`
	FatherInfo ParentInfo `json:"fatherInfo,omitempty" bson:"fatherInfo,omitempty"`
	MotherInfo ParentInfo `json:"motherInfo,omitempty" bson:"motherInfo,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ParentEmails returns the linked parent emails in father-then-mother order,
// skipping blanks.
func (s *Student) ParentEmails() []string {
	emails := make([]string, 0, 2)
	if s.FatherInfo.Email != "" {
		emails = append(emails, s.FatherInfo.Email)
	}
	if s.MotherInfo.Email != "" {
		emails = append(emails, s.MotherInfo.Email)
	}
	return emails
}
