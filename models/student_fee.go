package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

// StudentFeeType is one resolved line item on a student's fee plan. Amount
// is the effective amount actually billed; OriginalAmount preserves the
// template's pre-discount amount.
type StudentFeeType struct {
	FeesType       primitive.ObjectID `json:"feesType" bson:"feesType"`
	Amount         float64            `json:"amount" bson:"amount" validate:"gte=0"`
	OriginalAmount float64            `json:"originalAmount" bson:"originalAmount"`
	Discount       float64            `json:"discount" bson:"discount" validate:"gte=0"`
	DiscountType   string             `json:"discountType" bson:"discountType" validate:"omitempty,oneof=fixed percentage"`
	DueDate        time.Time          `json:"dueDate" bson:"dueDate"`
}

type StudentFeeGroup struct {
	FeesGroup primitive.ObjectID `json:"feesGroup" bson:"feesGroup"`
	FeeTypes  []StudentFeeType   `json:"feeTypes" bson:"feeTypes" validate:"required,min=1"`
}

// StudentFee is the resolved fee plan for one (student, session) pair. It is
// created on first assignment; later assignments only append fee groups that
// are not already present.
type StudentFee struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentId     primitive.ObjectID `json:"studentId" bson:"studentId"`
	SessionId     primitive.ObjectID `json:"sessionId" bson:"sessionId"`
	ClassId       primitive.ObjectID `json:"classId" bson:"classId"`
	FeeTemplateId primitive.ObjectID `json:"feeTemplateId" bson:"feeTemplateId"`
	CustomFees    []StudentFeeGroup  `json:"customFees" bson:"customFees"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DefaultPlanFromTemplate derives the fee plan a template bills when no
// custom fees are supplied: every line item at the template amount, no
// discount, due immediately.
func DefaultPlanFromTemplate(t *FeesTemplate, now time.Time) []StudentFeeGroup {
	plan := make([]StudentFeeGroup, 0, len(t.Fees))
	for _, group := range t.Fees {
		types := make([]StudentFeeType, 0, len(group.FeeTypes))
		for _, ft := range group.FeeTypes {
			types = append(types, StudentFeeType{
				FeesType:       ft.FeesType,
				Amount:         ft.Amount,
				OriginalAmount: ft.Amount,
				Discount:       0,
				DiscountType:   DiscountFixed,
				DueDate:        now,
			})
		}
		plan = append(plan, StudentFeeGroup{FeesGroup: group.FeesGroup, FeeTypes: types})
	}
	return plan
}

// NormalizeCustomFees fills in the optional line-item fields of a
// caller-supplied fee set and drops any group the template does not carry.
// OriginalAmount falls back to the billed amount, the discount defaults to a
// fixed zero and missing due dates resolve to now.
func NormalizeCustomFees(custom []StudentFeeGroup, t *FeesTemplate, now time.Time) []StudentFeeGroup {
	plan := make([]StudentFeeGroup, 0, len(custom))
	for _, group := range custom {
		if !t.HasFeesGroup(group.FeesGroup) {
			continue
		}
		types := make([]StudentFeeType, 0, len(group.FeeTypes))
		for _, ft := range group.FeeTypes {
			if ft.OriginalAmount == 0 {
				ft.OriginalAmount = ft.Amount
			}
			if ft.DiscountType == "" {
				ft.DiscountType = DiscountFixed
			}
			if ft.DueDate.IsZero() {
				ft.DueDate = now
			}
			types = append(types, ft)
		}
		plan = append(plan, StudentFeeGroup{FeesGroup: group.FeesGroup, FeeTypes: types})
	}
	return plan
}

// MissingGroups returns the groups of incoming that existing does not carry
// yet, preserving order. Groups already on the plan are never merged or
// overwritten.
func MissingGroups(existing, incoming []StudentFeeGroup) []StudentFeeGroup {
	present := make(map[primitive.ObjectID]struct{}, len(existing))
	for _, g := range existing {
		present[g.FeesGroup] = struct{}{}
	}
	missing := make([]StudentFeeGroup, 0, len(incoming))
	for _, g := range incoming {
		if _, ok := present[g.FeesGroup]; !ok {
			missing = append(missing, g)
		}
	}
	return missing
}
