package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"email" validate:"required,loose_email"`
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@example.com"))
	assert.True(t, IsEmail("a@b.c"))
	assert.False(t, IsEmail("bad"))
	assert.False(t, IsEmail("a b@example.com"))
	assert.False(t, IsEmail("ana@example"))
	assert.False(t, IsEmail("@example.com"))
}

func TestValidate(t *testing.T) {
	v := New()

	errs, err := v.Validate(form{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Nil(t, errs)

	errs, err = v.Validate(form{Email: "bad"})
	require.NoError(t, err)
	assert.Equal(t, []FieldError{{Field: "nombre", Tag: "required"}, {Field: "email", Tag: "loose_email"}}, errs)

	errs, err = v.Validate(&form{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, []FieldError{{Field: "email", Tag: "required"}}, errs)
}

func TestValidate_NonStruct(t *testing.T) {
	_, err := New().Validate("not a struct")
	assert.Error(t, err)
}
