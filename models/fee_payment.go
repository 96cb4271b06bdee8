package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeePayment status values. "Paid" is set by the payment-recording flow when
// amountPaid reaches amountDue; "Collected" is the terminal state the bulk
// collection workflow moves Pending/Overdue rows into, with no reversal
// path.
const (
	PaymentPending   = "Pending"
	PaymentPaid      = "Paid"
	PaymentOverdue   = "Overdue"
	PaymentCollected = "Collected"
)

// FeePayment is one ledger row, keyed by (studentId, sessionId, feesGroupId,
// feesTypeId). It is created exactly once per line item on first assignment;
// re-assignment updates the due date in place and never touches amountDue.
type FeePayment struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentId    primitive.ObjectID `json:"studentId" bson:"studentId"`
	SessionId    primitive.ObjectID `json:"sessionId" bson:"sessionId"`
	FeesGroupId  primitive.ObjectID `json:"feesGroupId" bson:"feesGroupId"`
	FeesTypeId   primitive.ObjectID `json:"feesTypeId" bson:"feesTypeId"`
	AmountDue    float64            `json:"amountDue" bson:"amountDue"`
	AmountPaid   float64            `json:"amountPaid" bson:"amountPaid"`
	DueDate      time.Time          `json:"dueDate" bson:"dueDate"`
	PaymentDate  *time.Time         `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	Status       string             `json:"status" bson:"status"`
	ReminderSent bool               `json:"reminderSent" bson:"reminderSent"`
	ReminderDate *time.Time         `json:"reminderDate,omitempty" bson:"reminderDate,omitempty"`
}

// Outstanding is the amount still owed on the row. Not clamped: an overpaid
// row reports a negative balance.
func (p *FeePayment) Outstanding() float64 {
	return p.AmountDue - p.AmountPaid
}

// LedgerSummary aggregates a student's ledger rows for one session.
type LedgerSummary struct {
	TotalAmountDue  float64   `json:"totalAmountDue"`
	TotalAmountPaid float64   `json:"totalAmountPaid"`
	// Status is "Paid" only when the totals are equal; everything else,
	// Overdue rows included, reports "Pending".
	Status   string    `json:"status"`
	LastDate time.Time `json:"lastDate"`
}

// SummarizeLedger folds ledger rows into per-student totals, the synthesized
// Paid/Pending status and the latest due date.
func SummarizeLedger(rows []FeePayment) LedgerSummary {
	var s LedgerSummary
	for _, row := range rows {
		s.TotalAmountDue += row.AmountDue
		s.TotalAmountPaid += row.AmountPaid
		if row.DueDate.After(s.LastDate) {
			s.LastDate = row.DueDate
		}
	}
	if s.TotalAmountDue == s.TotalAmountPaid {
		s.Status = PaymentPaid
	} else {
		s.Status = PaymentPending
	}
	return s
}
