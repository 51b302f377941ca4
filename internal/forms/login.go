package forms

import "net/url"

// LoginForm is the credential schema for the login endpoint.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// ParseLoginForm decodes a login form from submitted values.
func ParseLoginForm(values url.Values) LoginForm {
	return LoginForm{
		Username: values.Get("username"),
		Password: values.Get("password"),
	}
}

// Validate returns field-level errors, or an empty map when the form is valid.
func (f LoginForm) Validate() map[string]string {
	if err := validate.Struct(f); err != nil {
		return FormatValidationError(err)
	}
	return map[string]string{}
}
