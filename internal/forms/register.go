package forms

import "net/url"

// RegisterForm is the user registration schema: a username and two password
// fields used for confirmation.
type RegisterForm struct {
	Username  string `validate:"required,min=3,max=30,alphanum"`
	Password1 string `validate:"required,min=8"`
	Password2 string `validate:"required,eqfield=Password1"`
}

// ParseRegisterForm decodes a registration form from submitted values.
func ParseRegisterForm(values url.Values) RegisterForm {
	return RegisterForm{
		Username:  values.Get("username"),
		Password1: values.Get("password1"),
		Password2: values.Get("password2"),
	}
}

// Validate returns field-level errors, or an empty map when the form is valid.
func (f RegisterForm) Validate() map[string]string {
	if err := validate.Struct(f); err != nil {
		return FormatValidationError(err)
	}
	return map[string]string{}
}
