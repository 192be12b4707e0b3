package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type form struct {
	Text     string `json:"text" validate:"notblank"`
	Username string `json:"username" validate:"required,max=5"`
	Note     string `json:"-" validate:"omitempty,min=2"`
}

func TestStruct(t *testing.T) {
	assert.Nil(t, Struct(&form{Text: "hi", Username: "leo"}))

	errs := Struct(&form{Text: "   ", Username: "toolongname"})
	assert.Equal(t, []FieldError{
		{Field: "text", Message: "this field is required"},
		{Field: "username", Message: "must be at most 5 characters"},
	}, errs)
}

func TestTranslate_NonValidationError(t *testing.T) {
	errs := Translate(errors.New("unexpected EOF"))
	assert.Equal(t, []FieldError{{Field: "body", Message: "malformed request body"}}, errs)
	assert.Nil(t, Translate(nil))
}

func TestFieldErrorString(t *testing.T) {
	assert.Equal(t, "text: this field is required", FieldError{Field: "text", Message: "this field is required"}.Error())
}

func TestUsernameTag(t *testing.T) {
	type signup struct {
		Username string `json:"username" validate:"required,username"`
	}
	assert.Nil(t, Struct(&signup{Username: "leo.tolstoy+1@x"}))
	assert.Nil(t, Struct(&signup{Username: "Лев_Толстой"}))
	assert.Equal(t, []FieldError{{Field: "username", Message: "may contain only letters, digits and @/./+/-/_"}},
		Struct(&signup{Username: "leo tolstoy"}))
}
