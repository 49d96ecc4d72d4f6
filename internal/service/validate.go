package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	MinPasswordLength = 4
	MaxMessageLength  = 255
)

type registerRules struct {
	Username string `validate:"notblank"`
	Password string `validate:"min=4"`
}

type messageRules struct {
	Text string `validate:"notblank,max=255"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// reason renders the first failed rule as a short sentence.
func reason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Field() + "." + fe.Tag() {
	case "Username.notblank":
		return "username is blank"
	case "Password.min":
		return fmt.Sprintf("password shorter than %d characters", MinPasswordLength)
	case "Text.notblank":
		return "message is blank"
	case "Text.max":
		return fmt.Sprintf("message exceeds character limit (%d)", MaxMessageLength)
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
