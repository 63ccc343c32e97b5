package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRecord_Attribute(t *testing.T) {
	record := &UserRecord{
		Username: "a@x.com",
		Attributes: []UserAttribute{
			{Name: "name", Value: "Alice Example"},
			{Name: "email", Value: "a@x.com"},
			{Name: "custom:role", Value: RolePatient},
		},
	}

	assert.Equal(t, "Alice Example", record.Attribute("name"))
	assert.Equal(t, RolePatient, record.Attribute("custom:role"))
	assert.Equal(t, "", record.Attribute("custom:crm"))
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "regular address", email: "alice@example.com", expected: "a****@example.com"},
		{name: "single char local part", email: "a@x.com", expected: "a@x.com"},
		{name: "not an email", email: "not-an-email", expected: "not-an-email"},
		{name: "empty", email: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.email))
		})
	}
}

func TestNewAuthEvent(t *testing.T) {
	t.Run("failure carries error kind", func(t *testing.T) {
		event := NewAuthEvent("signin", "alice@example.com", OutcomeFailure, KindInvalidCredentials)

		assert.Equal(t, "signin", event.Operation)
		assert.Equal(t, "a****@example.com", event.Email)
		assert.Equal(t, OutcomeFailure, event.Outcome)
		assert.Equal(t, string(KindInvalidCredentials), event.ErrorKind)
		assert.NotEqual(t, [16]byte{}, [16]byte(event.ID))
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("success has no error kind", func(t *testing.T) {
		event := NewAuthEvent("signup", "alice@example.com", OutcomeSuccess, "")

		assert.Equal(t, OutcomeSuccess, event.Outcome)
		assert.Empty(t, event.ErrorKind)
	})
}
