package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// messageFor translates a single binding failure into the wire-level
// message clients expect for that field.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		return "Username is required"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be 6 or more characters"
		}
		return "Password is required"
	case "StudentUniqueID", "StudentID":
		return "Student ID is required"
	case "Name":
		return "Name is required"
	case "Email":
		return "Please include a valid email"
	case "CourseCode":
		return "Course code is required"
	case "CourseName":
		return "Course name is required"
	case "Credits":
		return "Credits must be a positive number"
	case "CourseID":
		return "Course ID is required"
	case "Score":
		return "Score is required"
	default:
		return "Invalid value for " + fe.Field()
	}
}

// bindingErrorMessages converts a ShouldBindJSON failure into the list
// of messages for the `{errors:[{msg}]}` body. Non-validator failures
// (malformed JSON, wrong types) collapse into a single generic message.
func bindingErrorMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return msgs
}
