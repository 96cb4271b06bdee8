package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveRecipientsPrefersParents(t *testing.T) {
	studentId := primitive.NewObjectID()
	father := User{ID: primitive.NewObjectID(), Role: RoleParent}
	mother := User{ID: primitive.NewObjectID(), Role: RoleParent}

	recipients := ResolveRecipients(studentId, []User{father, mother})
	require.Len(t, recipients, 2)
	assert.Equal(t, Recipient{ID: father.ID, Type: RecipientParent}, recipients[0])
	assert.Equal(t, Recipient{ID: mother.ID, Type: RecipientParent}, recipients[1])
}

func TestResolveRecipientsFallsBackToStudent(t *testing.T) {
	studentId := primitive.NewObjectID()
	recipients := ResolveRecipients(studentId, nil)
	require.Len(t, recipients, 1)
	assert.Equal(t, Recipient{ID: studentId, Type: RecipientStudent}, recipients[0])
}

func TestReminderMessage(t *testing.T) {
	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	msg := ReminderMessage("Tuition", "Term 1", 450, due)
	assert.Equal(t, "Reminder: Your Tuition fee (Term 1) of $450 is due on 3/5/2026. Please pay promptly.", msg)
}

func TestCollectionMessage(t *testing.T) {
	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	lines := []string{
		CollectionLine("Tuition", "Term 1", 450, due),
		CollectionLine("Exam", "Term 1", 50, due),
	}
	msg := CollectionMessage("Amina Yusuf", lines, 500)

	assert.Contains(t, msg, "Fee collection initiated for Amina Yusuf:")
	assert.Contains(t, msg, "Tuition (Term 1): $450 (Due: 3/5/2026)")
	assert.Contains(t, msg, "Exam (Term 1): $50 (Due: 3/5/2026)")
	assert.Contains(t, msg, "Total Due: $500. Please pay at your earliest convenience.")
}

func TestSnapshotDate(t *testing.T) {
	due := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-05", SnapshotDate(due))
}
