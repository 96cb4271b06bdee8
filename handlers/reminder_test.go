package handlers

import (
	"testing"
	"time"

	"github.com/edustack/school-fees-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestActiveParentFilterRequiresParentRole(t *testing.T) {
	filter := activeParentFilter("mother@example.com")
	assert.Equal(t, "mother@example.com", filter["email"])
	assert.Equal(t, models.RoleParent, filter["role"])
	assert.Equal(t, models.UserActive, filter["status"])
}

func TestPendingLedgerRowMatchesPendingOnly(t *testing.T) {
	studentId := primitive.NewObjectID()
	sessionId := primitive.NewObjectID()
	groupId := primitive.NewObjectID()
	typeId := primitive.NewObjectID()

	filter := pendingLedgerRow(studentId, sessionId, groupId, typeId)
	assert.Equal(t, studentId, filter["studentId"])
	assert.Equal(t, sessionId, filter["sessionId"])
	assert.Equal(t, groupId, filter["feesGroupId"])
	assert.Equal(t, typeId, filter["feesTypeId"])
	assert.Equal(t, models.PaymentPending, filter["status"])
}

func TestOutstandingLedgerRowsExcludeSettledStates(t *testing.T) {
	filter := outstandingLedgerRows(primitive.NewObjectID(), primitive.NewObjectID())

	status, ok := filter["status"].(bson.M)
	require.True(t, ok)
	in, ok := status["$in"].(bson.A)
	require.True(t, ok)
	assert.ElementsMatch(t, bson.A{models.PaymentPending, models.PaymentOverdue}, in)
	assert.NotContains(t, in, models.PaymentPaid)
	assert.NotContains(t, in, models.PaymentCollected)
}

func TestLedgerRowUpsertNeverTouchesAmounts(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	update := ledgerRowUpsert(500, due)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	// only the due date moves on re-assignment
	assert.Equal(t, bson.M{"dueDate": due}, set)

	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 500.0, onInsert["amountDue"])
	assert.Equal(t, 0.0, onInsert["amountPaid"])
	assert.Equal(t, models.PaymentPending, onInsert["status"])
	assert.Equal(t, false, onInsert["reminderSent"])
}
