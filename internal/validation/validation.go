// Declarative request-shape validation on top of go-playground/validator.
// Every request body is checked here before any handler side effect;
// failures produce the full list of itemized messages, not just the first.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once

	nameRe = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields under their json names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("complexity", hasComplexity)
		_ = validate.RegisterValidation("personname", isPersonName)
		_ = validate.RegisterValidation("emaildomain", hasDottedDomain)
	})
	return validate
}

// Validate checks a request struct against its validate tags and
// returns all violation messages, or nil when the shape is valid.
func Validate(s any) []string {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Validation failed"}
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, message(e))
	}
	return messages
}

// hasComplexity requires at least one lowercase letter, one uppercase
// letter, one digit and one special character.
func hasComplexity(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

func isPersonName(fl validator.FieldLevel) bool {
	return nameRe.MatchString(fl.Field().String())
}

// hasDottedDomain rejects single-segment mail domains like "a@b"; the
// email tag alone accepts them.
func hasDottedDomain(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	at := strings.LastIndex(value, "@")
	if at < 0 {
		return false
	}
	domain := value[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func message(e validator.FieldError) string {
	field := label(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email", "emaildomain":
		return "Please provide a valid email address"
	case "min":
		return field + " must be at least " + e.Param() + " characters long"
	case "max":
		// Login never reveals password constraints beyond the format.
		if e.Field() == "password" && strings.HasPrefix(e.StructNamespace(), "LoginRequest.") {
			return "Invalid password format"
		}
		return field + " must be less than " + e.Param() + " characters"
	case "complexity":
		return field + " must contain uppercase, lowercase, number, and special character"
	case "personname":
		return field + " can only contain letters, spaces, hyphens, and apostrophes"
	default:
		return field + " is invalid"
	}
}

// label turns a json field name into a human-readable one
// ("refreshToken" -> "Refresh token").
func label(name string) string {
	if name == "" {
		return name
	}
	var b strings.Builder
	b.WriteString(strings.ToUpper(name[:1]))
	for _, r := range name[1:] {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
