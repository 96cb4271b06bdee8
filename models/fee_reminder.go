package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RecipientParent  = "parent"
	RecipientStudent = "student"

	ReminderUnread    = "unread"
	ReminderRead      = "read"
	ReminderDismissed = "dismissed"

	ReminderTitle = "Fee Payment Reminder"
)

// Recipient is the tagged reference a reminder is addressed to: either a
// parent user or, when no parent account resolves, the student itself.
type Recipient struct {
	ID   primitive.ObjectID `json:"id"`
	Type string             `json:"type"`
}

// FeeReminderNotification is one reminder sent to one recipient about one
// outstanding ledger row. Message, dueDate and amountDue are snapshots taken
// at send time; only Status changes afterwards.
type FeeReminderNotification struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RecipientId   primitive.ObjectID `json:"recipientId" bson:"recipientId"`
	RecipientType string             `json:"recipientType" bson:"recipientType"`
	Title         string             `json:"title" bson:"title"`
	Message       string             `json:"message" bson:"message"`
	FeePaymentId  primitive.ObjectID `json:"feePaymentId" bson:"feePaymentId"`
	// DueDate is kept as a "YYYY-MM-DD" string snapshot.
	DueDate   string    `json:"dueDate" bson:"dueDate"`
	AmountDue float64   `json:"amountDue" bson:"amountDue"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ResolveRecipients picks the reminder audience: every parent account that
// resolved for the student, or the student itself when none did.
func ResolveRecipients(studentId primitive.ObjectID, parents []User) []Recipient {
	recipients := make([]Recipient, 0, len(parents))
	for _, p := range parents {
		recipients = append(recipients, Recipient{ID: p.ID, Type: RecipientParent})
	}
	if len(recipients) == 0 {
		recipients = append(recipients, Recipient{ID: studentId, Type: RecipientStudent})
	}
	return recipients
}

// ReminderMessage renders the per-line reminder text.
func ReminderMessage(typeName, groupName string, amountDue float64, dueDate time.Time) string {
	return fmt.Sprintf("Reminder: Your %s fee (%s) of $%v is due on %s. Please pay promptly.",
		typeName, groupName, amountDue, dueDate.Format("1/2/2006"))
}

// CollectionLine renders a single outstanding line of the bulk collection
// notice.
func CollectionLine(typeName, groupName string, amountDue float64, dueDate time.Time) string {
	return fmt.Sprintf("%s (%s): $%v (Due: %s)", typeName, groupName, amountDue, dueDate.Format("1/2/2006"))
}

// CollectionMessage renders the aggregate notice the collection workflow
// sends to the parent, one line per outstanding row plus the combined total.
func CollectionMessage(studentName string, lines []string, totalDue float64) string {
	return fmt.Sprintf("Fee collection initiated for %s:\n%s\nTotal Due: $%v. Please pay at your earliest convenience.",
		studentName, strings.Join(lines, "\n"), totalDue)
}

// SnapshotDate formats a due date for the notification's string snapshot.
func SnapshotDate(t time.Time) string {
	return t.Format("2006-01-02")
}

type SendSMSResponse struct {
	Successful   bool   `json:"successful"`
	ErrorMessage string `json:"error_message"`
}
