package validator

import (
	"testing"

	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `validate:"max=4"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupRequest{Email: "alice@bank.test", Password: "s3cret-pass"})

	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupRequest{Email: "not-an-email", Nickname: "toolong"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "is required"},
		{Field: "Nickname", Message: "must be at most 4 characters"},
	}, verr.Fields)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email: must be a valid email address")
}

func TestValidate_NonStruct(t *testing.T) {
	v := New()

	err := v.Validate("plain string")

	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
