package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TemplateActive   = "Active"
	TemplateInactive = "Inactive"
)

// TemplateFeeType is one line item inside a template: a fee type and the
// amount billed for it under this plan.
type TemplateFeeType struct {
	FeesType primitive.ObjectID `json:"feesType" bson:"feesType"`
	Amount   float64            `json:"amount" bson:"amount" validate:"gte=0"`
}

// TemplateFeeGroup bundles the line items of one fees group.
type TemplateFeeGroup struct {
	FeesGroup primitive.ObjectID `json:"feesGroup" bson:"feesGroup"`
	FeeTypes  []TemplateFeeType  `json:"feeTypes" bson:"feeTypes" validate:"required,min=1"`
}

// FeesTemplate is a reusable fee plan for one session. It is created with an
// empty class scope; classes are attached later through update, and the
// template cannot be assigned to students until at least one class is set.
type FeesTemplate struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	TemplateId string               `json:"templateId" bson:"templateId"`
	Name       string               `json:"name" bson:"name" validate:"required"`
	SessionId  primitive.ObjectID   `json:"sessionId" bson:"sessionId"`
	ClassIds   []primitive.ObjectID `json:"classIds" bson:"classIds"`
	Fees       []TemplateFeeGroup   `json:"fees" bson:"fees" validate:"required,min=1,dive"`
	Status     string               `json:"status" bson:"status"`
	CreatedAt  time.Time            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// HasFeesGroup reports whether the template's fee list carries the group.
func (t *FeesTemplate) HasFeesGroup(groupId primitive.ObjectID) bool {
	for _, g := range t.Fees {
		if g.FeesGroup == groupId {
			return true
		}
	}
	return false
}

// Reference views returned by the template endpoints: the raw ObjectID
// references expanded into {id, name} pairs the way the admin UI consumes
// them.

type NamedRef struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}

type SessionRef struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	SessionId string             `json:"sessionId" bson:"sessionId"`
}

type TemplateFeeTypeView struct {
	FeesType NamedRef `json:"feesType"`
	Amount   float64  `json:"amount"`
}

type TemplateFeeGroupView struct {
	FeesGroup NamedRef              `json:"feesGroup"`
	FeeTypes  []TemplateFeeTypeView `json:"feeTypes"`
}

type FeesTemplateView struct {
	ID         primitive.ObjectID     `json:"id"`
	TemplateId string                 `json:"templateId"`
	Name       string                 `json:"name"`
	Session    SessionRef             `json:"session"`
	Classes    []NamedRef             `json:"classes"`
	Fees       []TemplateFeeGroupView `json:"fees"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"createdAt,omitempty"`
	UpdatedAt  time.Time              `json:"updatedAt,omitempty"`
}
