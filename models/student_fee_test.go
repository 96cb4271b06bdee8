package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testTemplate(groups ...TemplateFeeGroup) *FeesTemplate {
	return &FeesTemplate{
		ID:         primitive.NewObjectID(),
		TemplateId: "tpl-2026",
		Name:       "Grade 5 Annual",
		Fees:       groups,
	}
}

func TestDefaultPlanFromTemplate(t *testing.T) {
	tuition := primitive.NewObjectID()
	exam := primitive.NewObjectID()
	groupId := primitive.NewObjectID()
	now := time.Now()

	tpl := testTemplate(TemplateFeeGroup{
		FeesGroup: groupId,
		FeeTypes: []TemplateFeeType{
			{FeesType: tuition, Amount: 1200},
			{FeesType: exam, Amount: 150},
		},
	})

	plan := DefaultPlanFromTemplate(tpl, now)
	require.Len(t, plan, 1)
	require.Len(t, plan[0].FeeTypes, 2)
	assert.Equal(t, groupId, plan[0].FeesGroup)

	for i, ft := range plan[0].FeeTypes {
		assert.Equal(t, tpl.Fees[0].FeeTypes[i].Amount, ft.Amount)
		assert.Equal(t, ft.Amount, ft.OriginalAmount)
		assert.Zero(t, ft.Discount)
		assert.Equal(t, DiscountFixed, ft.DiscountType)
		assert.Equal(t, now, ft.DueDate)
	}
}

func TestNormalizeCustomFeesFillsDefaults(t *testing.T) {
	tuition := primitive.NewObjectID()
	groupId := primitive.NewObjectID()
	now := time.Now()

	tpl := testTemplate(TemplateFeeGroup{
		FeesGroup: groupId,
		FeeTypes:  []TemplateFeeType{{FeesType: tuition, Amount: 1200}},
	})

	custom := []StudentFeeGroup{{
		FeesGroup: groupId,
		FeeTypes:  []StudentFeeType{{FeesType: tuition, Amount: 900, Discount: 300}},
	}}

	plan := NormalizeCustomFees(custom, tpl, now)
	require.Len(t, plan, 1)
	require.Len(t, plan[0].FeeTypes, 1)

	ft := plan[0].FeeTypes[0]
	assert.Equal(t, 900.0, ft.Amount)
	assert.Equal(t, 900.0, ft.OriginalAmount)
	assert.Equal(t, 300.0, ft.Discount)
	assert.Equal(t, DiscountFixed, ft.DiscountType)
	assert.Equal(t, now, ft.DueDate)
}

func TestNormalizeCustomFeesKeepsExplicitFields(t *testing.T) {
	tuition := primitive.NewObjectID()
	groupId := primitive.NewObjectID()
	now := time.Now()
	due := now.AddDate(0, 1, 0)

	tpl := testTemplate(TemplateFeeGroup{
		FeesGroup: groupId,
		FeeTypes:  []TemplateFeeType{{FeesType: tuition, Amount: 1200}},
	})

	custom := []StudentFeeGroup{{
		FeesGroup: groupId,
		FeeTypes: []StudentFeeType{{
			FeesType:       tuition,
			Amount:         1080,
			OriginalAmount: 1200,
			Discount:       10,
			DiscountType:   DiscountPercentage,
			DueDate:        due,
		}},
	}}

	plan := NormalizeCustomFees(custom, tpl, now)
	require.Len(t, plan, 1)

	ft := plan[0].FeeTypes[0]
	assert.Equal(t, 1200.0, ft.OriginalAmount)
	assert.Equal(t, DiscountPercentage, ft.DiscountType)
	assert.Equal(t, due, ft.DueDate)
}

func TestNormalizeCustomFeesDropsGroupsOutsideTemplate(t *testing.T) {
	tuition := primitive.NewObjectID()
	inTemplate := primitive.NewObjectID()
	notInTemplate := primitive.NewObjectID()
	now := time.Now()

	tpl := testTemplate(TemplateFeeGroup{
		FeesGroup: inTemplate,
		FeeTypes:  []TemplateFeeType{{FeesType: tuition, Amount: 1200}},
	})

	custom := []StudentFeeGroup{
		{FeesGroup: notInTemplate, FeeTypes: []StudentFeeType{{FeesType: tuition, Amount: 10}}},
		{FeesGroup: inTemplate, FeeTypes: []StudentFeeType{{FeesType: tuition, Amount: 1200}}},
	}

	plan := NormalizeCustomFees(custom, tpl, now)
	require.Len(t, plan, 1)
	assert.Equal(t, inTemplate, plan[0].FeesGroup)
}

func TestMissingGroupsIsAppendOnly(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	existing := []StudentFeeGroup{
		{FeesGroup: a, FeeTypes: []StudentFeeType{{Amount: 100}}},
	}
	incoming := []StudentFeeGroup{
		{FeesGroup: a, FeeTypes: []StudentFeeType{{Amount: 999}}},
		{FeesGroup: b, FeeTypes: []StudentFeeType{{Amount: 200}}},
		{FeesGroup: c, FeeTypes: []StudentFeeType{{Amount: 300}}},
	}

	missing := MissingGroups(existing, incoming)
	require.Len(t, missing, 2)
	assert.Equal(t, b, missing[0].FeesGroup)
	assert.Equal(t, c, missing[1].FeesGroup)
}

func TestMissingGroupsEmptyWhenAllPresent(t *testing.T) {
	a := primitive.NewObjectID()
	existing := []StudentFeeGroup{{FeesGroup: a}}
	incoming := []StudentFeeGroup{{FeesGroup: a, FeeTypes: []StudentFeeType{{Amount: 50}}}}
	assert.Empty(t, MissingGroups(existing, incoming))
}
