package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("submitting: %w", &domain.ValidationError{Fields: map[string]string{
		"email":         "must be a valid email",
		"aboutYourself": "must be at least 50 characters",
	}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "submitting: invalid input: aboutYourself: must be at least 50 characters; email: must be a valid email", err.Error())

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 2)

	assert.ErrorIs(t, domain.Invalid("decision", "must be accepted or rejected"), domain.ErrInvalidInput)
}
