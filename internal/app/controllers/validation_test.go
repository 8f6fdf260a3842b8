package controllers

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/studentms/internal/app/models/dto"
)

func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestBindingErrorMessagesForStudentCreate(t *testing.T) {
	err := bindingValidator().Struct(dto.CreateStudentRequest{Email: "nope"})
	require.Error(t, err)

	msgs := bindingErrorMessages(err)
	assert.ElementsMatch(t, []string{
		"Student ID is required",
		"Name is required",
		"Please include a valid email",
		"Password is required",
	}, msgs)
}

func TestBindingErrorMessagesForLogin(t *testing.T) {
	err := bindingValidator().Struct(dto.LoginRequest{})
	require.Error(t, err)

	msgs := bindingErrorMessages(err)
	assert.ElementsMatch(t, []string{
		"Username is required",
		"Password is required",
	}, msgs)
}

func TestBindingErrorMessagesForGradeUpsert(t *testing.T) {
	err := bindingValidator().Struct(dto.UpsertGradeRequest{StudentID: 1})
	require.Error(t, err)

	msgs := bindingErrorMessages(err)
	assert.ElementsMatch(t, []string{
		"Course ID is required",
		"Score is required",
	}, msgs)
}

func TestBindingErrorMessagesNonValidatorError(t *testing.T) {
	msgs := bindingErrorMessages(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"Invalid request body"}, msgs)
}
