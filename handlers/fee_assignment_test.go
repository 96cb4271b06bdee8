package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseAssignCustomFees(t *testing.T) {
	groupId := primitive.NewObjectID()
	typeId := primitive.NewObjectID()
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	inputs := []AssignFeeGroupInput{{
		FeesGroup: groupId.Hex(),
		FeeTypes: []AssignFeeTypeInput{{
			FeesType:     typeId.Hex(),
			Amount:       250,
			Discount:     25,
			DiscountType: "percentage",
			DueDate:      due,
		}},
	}}

	custom, err := parseAssignCustomFees(inputs)
	require.NoError(t, err)
	require.Len(t, custom, 1)
	require.Len(t, custom[0].FeeTypes, 1)
	assert.Equal(t, groupId, custom[0].FeesGroup)
	assert.Equal(t, typeId, custom[0].FeeTypes[0].FeesType)
	assert.Equal(t, 250.0, custom[0].FeeTypes[0].Amount)
	assert.Equal(t, due, custom[0].FeeTypes[0].DueDate)
}

func TestParseAssignCustomFeesRejectsBadIds(t *testing.T) {
	inputs := []AssignFeeGroupInput{{
		FeesGroup: "not-a-hex-id",
		FeeTypes:  []AssignFeeTypeInput{{FeesType: primitive.NewObjectID().Hex()}},
	}}
	_, err := parseAssignCustomFees(inputs)
	assert.Error(t, err)

	inputs = []AssignFeeGroupInput{{
		FeesGroup: primitive.NewObjectID().Hex(),
		FeeTypes:  []AssignFeeTypeInput{{FeesType: "nope"}},
	}}
	_, err = parseAssignCustomFees(inputs)
	assert.Error(t, err)
}

func TestAssignFeesRequestValidation(t *testing.T) {
	valid := AssignFeesRequest{
		TemplateId: primitive.NewObjectID().Hex(),
		SessionId:  primitive.NewObjectID().Hex(),
		StudentIds: []string{primitive.NewObjectID().Hex()},
	}
	assert.NoError(t, validateStruct(valid))

	noStudents := valid
	noStudents.StudentIds = nil
	assert.Error(t, validateStruct(noStudents))

	badDiscountType := valid
	badDiscountType.CustomFees = []AssignFeeGroupInput{{
		FeesGroup: primitive.NewObjectID().Hex(),
		FeeTypes: []AssignFeeTypeInput{{
			FeesType:     primitive.NewObjectID().Hex(),
			DiscountType: "half-off",
		}},
	}}
	assert.Error(t, validateStruct(badDiscountType))
}

func TestEditStudentFeesRequestValidation(t *testing.T) {
	valid := EditStudentFeesRequest{
		StudentId: primitive.NewObjectID().Hex(),
		SessionId: primitive.NewObjectID().Hex(),
		CustomFees: []AssignFeeGroupInput{{
			FeesGroup: primitive.NewObjectID().Hex(),
			FeeTypes:  []AssignFeeTypeInput{{FeesType: primitive.NewObjectID().Hex(), Amount: 100}},
		}},
	}
	assert.NoError(t, validateStruct(valid))

	empty := valid
	empty.CustomFees = nil
	assert.Error(t, validateStruct(empty))
}
