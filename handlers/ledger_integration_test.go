//go:build integration

package handlers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/edustack/school-fees-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// These tests exercise the ledger write documents against a real MongoDB.
// Run with -tags integration and TEST_MONGODB_URI pointing at a disposable
// instance; without the env var they skip.

func ledgerCollection(t *testing.T) (*mongo.Collection, context.Context) {
	t.Helper()
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}
	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	db := client.Database("schoolfees_test")
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db.Collection("feepayments"), ctx
}

func TestLedgerRowCreatedOncePerLineItem(t *testing.T) {
	col, ctx := ledgerCollection(t)
	key := ledgerRowKey(primitive.NewObjectID(), primitive.NewObjectID(),
		primitive.NewObjectID(), primitive.NewObjectID())
	first := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := col.UpdateOne(ctx, key, ledgerRowUpsert(500, first), options.Update().SetUpsert(true))
	require.NoError(t, err)

	// a partial payment lands on the row
	_, err = col.UpdateOne(ctx, key, bson.M{"$set": bson.M{"amountPaid": 200.0}})
	require.NoError(t, err)

	// re-assignment refreshes the due date only
	later := first.AddDate(0, 1, 0)
	_, err = col.UpdateOne(ctx, key, ledgerRowUpsert(999, later), options.Update().SetUpsert(true))
	require.NoError(t, err)

	var row models.FeePayment
	require.NoError(t, col.FindOne(ctx, key).Decode(&row))
	assert.Equal(t, 500.0, row.AmountDue)
	assert.Equal(t, 200.0, row.AmountPaid)
	assert.WithinDuration(t, later, row.DueDate, time.Second)

	count, err := col.CountDocuments(ctx, key)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestReminderStampsPendingRowsOnly(t *testing.T) {
	col, ctx := ledgerCollection(t)
	studentId := primitive.NewObjectID()
	sessionId := primitive.NewObjectID()
	groupId := primitive.NewObjectID()
	typeId := primitive.NewObjectID()
	key := ledgerRowKey(studentId, sessionId, groupId, typeId)

	_, err := col.UpdateOne(ctx, key, ledgerRowUpsert(300, time.Now()), options.Update().SetUpsert(true))
	require.NoError(t, err)

	stamp := bson.M{"$set": bson.M{"reminderSent": true, "reminderDate": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var row models.FeePayment
	err = col.FindOneAndUpdate(ctx,
		pendingLedgerRow(studentId, sessionId, groupId, typeId), stamp, opts).Decode(&row)
	require.NoError(t, err)
	assert.True(t, row.ReminderSent)

	// a settled row is no longer eligible
	_, err = col.UpdateOne(ctx, key, bson.M{"$set": bson.M{"status": models.PaymentPaid}})
	require.NoError(t, err)
	err = col.FindOneAndUpdate(ctx,
		pendingLedgerRow(studentId, sessionId, groupId, typeId), stamp, opts).Decode(&row)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestCollectionIsTerminal(t *testing.T) {
	col, ctx := ledgerCollection(t)
	studentId := primitive.NewObjectID()
	sessionId := primitive.NewObjectID()

	newRow := func(status string) models.FeePayment {
		return models.FeePayment{
			ID:          primitive.NewObjectID(),
			StudentId:   studentId,
			SessionId:   sessionId,
			FeesGroupId: primitive.NewObjectID(),
			FeesTypeId:  primitive.NewObjectID(),
			AmountDue:   100,
			DueDate:     time.Now(),
			Status:      status,
		}
	}
	_, err := col.InsertMany(ctx, []any{
		newRow(models.PaymentPending),
		newRow(models.PaymentOverdue),
		newRow(models.PaymentPaid),
	})
	require.NoError(t, err)

	res, err := col.UpdateMany(ctx, outstandingLedgerRows(studentId, sessionId),
		bson.M{"$set": bson.M{"status": models.PaymentCollected}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.ModifiedCount)

	// collected rows never surface as outstanding again
	count, err := col.CountDocuments(ctx, outstandingLedgerRows(studentId, sessionId))
	require.NoError(t, err)
	assert.Zero(t, count)
}
