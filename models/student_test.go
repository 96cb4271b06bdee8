package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParentEmailsOrderAndBlanks(t *testing.T) {
	s := Student{
		FatherInfo: ParentInfo{Email: "father@example.com"},
		MotherInfo: ParentInfo{Email: "mother@example.com"},
	}
	assert.Equal(t, []string{"father@example.com", "mother@example.com"}, s.ParentEmails())

	s.FatherInfo.Email = ""
	assert.Equal(t, []string{"mother@example.com"}, s.ParentEmails())

	s.MotherInfo.Email = ""
	assert.Empty(t, s.ParentEmails())
}

func TestHasFeesGroup(t *testing.T) {
	in := primitive.NewObjectID()
	out := primitive.NewObjectID()
	tpl := FeesTemplate{Fees: []TemplateFeeGroup{{FeesGroup: in}}}

	assert.True(t, tpl.HasFeesGroup(in))
	assert.False(t, tpl.HasFeesGroup(out))
}
