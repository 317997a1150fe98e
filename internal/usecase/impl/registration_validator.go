package impl

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	fieldPassword = "password"
	usernameTag   = "username"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)

// registration is the normalized form checked before any hashing or storage.
type registration struct {
	Username string `validate:"required,min=3,max=32,username"`
	Email    string `validate:"required,max=320,email"`
}

// registrationValidator applies field rules with validator/v10 and the
// configured password policy by hand.
type registrationValidator struct {
	validate *validator.Validate
	policy   config.PasswordStrengthConfig
}

func newRegistrationValidator(policy *config.PasswordStrengthConfig) *registrationValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerRules(validate); err != nil {
		panic(err)
	}

	return &registrationValidator{validate: validate, policy: *policy}
}

func registerRules(validate *validator.Validate) error {
	err := validate.RegisterValidation(usernameTag, func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return errors.Wrap(err, "register username rule")
}

// Check returns ErrValidationFailed carrying a field -> reason map, or nil.
func (v *registrationValidator) Check(username, email, password string) error {
	details := make(map[string]string)

	err := v.validate.Struct(registration{Username: username, Email: email})
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[strings.ToLower(fe.Field())] = describe(fe)
		}
	} else if err != nil {
		return errors.Wrap(err, "validate registration")
	}

	if reason := v.checkPassword(password); reason != "" {
		details[fieldPassword] = reason
	}

	if len(details) == 0 {
		return nil
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func (v *registrationValidator) checkPassword(password string) string {
	p := v.policy
	if len(password) < p.MinLength || len(password) > p.MaxLength {
		return fmt.Sprintf("must be between %d and %d bytes", p.MinLength, p.MaxLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	var missing []string
	if p.RequireUppercase && !upper {
		missing = append(missing, "an uppercase letter")
	}
	if p.RequireLowercase && !lower {
		missing = append(missing, "a lowercase letter")
	}
	if p.RequireNumbers && !digit {
		missing = append(missing, "a digit")
	}
	if p.RequireSpecial && !special {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return "must contain " + strings.Join(missing, ", ")
	}

	return ""
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "max":
		if strings.EqualFold(fe.Field(), repository.FieldUsername) {
			return "must be 3 to 32 characters"
		}

		return "must be at most " + fe.Param() + " characters"
	case usernameTag:
		return "may only contain a-z, 0-9, '_', '.' and '-'"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
