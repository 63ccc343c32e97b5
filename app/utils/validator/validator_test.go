package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognito-auth-service/app/domain"
)

func TestValidator_SignupRequest(t *testing.T) {
	v := New(domain.DefaultRoles())

	tests := []struct {
		name      string
		request   domain.SignupRequest
		expectErr bool
		field     string
	}{
		{
			name: "valid patient",
			request: domain.SignupRequest{
				Email:      "a@x.com",
				Password:   "Abc12345!",
				FullName:   "Alice Example",
				Role:       "patient",
				NationalID: "12345678900",
			},
			expectErr: false,
		},
		{
			name: "valid doctor with professional ID",
			request: domain.SignupRequest{
				Email:          "doc@x.com",
				Password:       "Abc12345!",
				FullName:       "Doc Example",
				Role:           "doctor",
				NationalID:     "98765432100",
				ProfessionalID: "CRM-1234",
			},
			expectErr: false,
		},
		{
			name: "missing email",
			request: domain.SignupRequest{
				Password:   "Abc12345!",
				FullName:   "Alice Example",
				Role:       "patient",
				NationalID: "12345678900",
			},
			expectErr: true,
			field:     "email",
		},
		{
			name: "invalid email format",
			request: domain.SignupRequest{
				Email:      "not-an-email",
				Password:   "Abc12345!",
				FullName:   "Alice Example",
				Role:       "patient",
				NationalID: "12345678900",
			},
			expectErr: true,
			field:     "email",
		},
		{
			name: "short password",
			request: domain.SignupRequest{
				Email:      "a@x.com",
				Password:   "Abc1!",
				FullName:   "Alice Example",
				Role:       "patient",
				NationalID: "12345678900",
			},
			expectErr: true,
			field:     "password",
		},
		{
			name: "unknown role",
			request: domain.SignupRequest{
				Email:      "a@x.com",
				Password:   "Abc12345!",
				FullName:   "Alice Example",
				Role:       "superuser",
				NationalID: "12345678900",
			},
			expectErr: true,
			field:     "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.request)

			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}
}

func TestValidator_CustomRoleSet(t *testing.T) {
	v := New([]string{"patient", "doctor", "admin"})

	request := domain.SignupRequest{
		Email:      "root@x.com",
		Password:   "Abc12345!",
		FullName:   "Root Example",
		Role:       "admin",
		NationalID: "11122233344",
	}

	assert.NoError(t, v.Validate(request))
}

func TestValidator_SigninRequest(t *testing.T) {
	v := New(domain.DefaultRoles())

	assert.NoError(t, v.Validate(domain.SigninRequest{Email: "a@x.com", Password: "Abc12345!"}))
	assert.Error(t, v.Validate(domain.SigninRequest{Email: "a@x.com"}))
	assert.Error(t, v.Validate(domain.SigninRequest{Password: "Abc12345!"}))
}
