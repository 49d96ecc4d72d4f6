package service

import "errors"

var (
	ErrRegistration      = errors.New("registration rejected")
	ErrMessageValidation = errors.New("message rejected")
)

// RegistrationError reports a bad or duplicate username, or a weak password.
type RegistrationError struct {
	Reason string
}

func (e *RegistrationError) Error() string {
	return "service: registration: " + e.Reason
}

func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistration
}

// MessageValidationError reports blank or oversized text, an unknown poster,
// or an unknown message on update.
type MessageValidationError struct {
	Reason string
}

func (e *MessageValidationError) Error() string {
	return "service: message: " + e.Reason
}

func (e *MessageValidationError) Is(target error) bool {
	return target == ErrMessageValidation
}
