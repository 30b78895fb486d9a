package model

import (
	"errors"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	ErrBlank   = errors.New("field is required and must be a non-empty string")
	ErrTooLong = errors.New("field exceeds maximum length")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("messagelen", func(fl validator.FieldLevel) bool {
		return UTF16Len(fl.Field().String()) <= MaxMessageLength
	}); err != nil {
		panic(err)
	}
	return v
}

// UTF16Len counts the UTF-16 code units of s. Characters outside the Basic
// Multilingual Plane, such as most emoji, count twice.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Validate checks req against its struct tags. The first failing rule is
// reported as ErrBlank or ErrTooLong.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "messagelen" {
		return ErrTooLong
	}
	return ErrBlank
}
