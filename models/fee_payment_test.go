package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutstanding(t *testing.T) {
	row := FeePayment{AmountDue: 500, AmountPaid: 120}
	assert.Equal(t, 380.0, row.Outstanding())

	overpaid := FeePayment{AmountDue: 100, AmountPaid: 150}
	assert.Equal(t, -50.0, overpaid.Outstanding())
}

func TestSummarizeLedgerMixedRows(t *testing.T) {
	early := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := []FeePayment{
		{AmountDue: 100, AmountPaid: 100, DueDate: late, Status: PaymentPaid},
		{AmountDue: 50, AmountPaid: 0, DueDate: early, Status: PaymentPending},
	}

	s := SummarizeLedger(rows)
	assert.Equal(t, 150.0, s.TotalAmountDue)
	assert.Equal(t, 100.0, s.TotalAmountPaid)
	assert.Equal(t, PaymentPending, s.Status)
	assert.Equal(t, late, s.LastDate)
}

func TestSummarizeLedgerPaidOnlyWhenTotalsEqual(t *testing.T) {
	rows := []FeePayment{
		{AmountDue: 100, AmountPaid: 100},
		{AmountDue: 75, AmountPaid: 75},
	}
	assert.Equal(t, PaymentPaid, SummarizeLedger(rows).Status)

	// an Overdue row still reports Pending, never Overdue, at summary level
	rows = append(rows, FeePayment{AmountDue: 30, AmountPaid: 0, Status: PaymentOverdue})
	assert.Equal(t, PaymentPending, SummarizeLedger(rows).Status)
}

func TestSummarizeLedgerEmpty(t *testing.T) {
	s := SummarizeLedger(nil)
	assert.Zero(t, s.TotalAmountDue)
	assert.Zero(t, s.TotalAmountPaid)
	assert.Equal(t, PaymentPaid, s.Status)
	assert.True(t, s.LastDate.IsZero())
}
