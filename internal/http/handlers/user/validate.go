package user

import (
	"reflect"
	"regexp"

	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/go-playground/validator/v10"
)

// emailPart matches one run of characters that are neither '@' nor
// whitespace. RE2's \s only covers ASCII blanks, so the Unicode space
// separators, line/paragraph separators and the BOM are listed explicitly.
const emailPart = `[^\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}@]+`

// emailPattern accepts local@domain.tld: no whitespace or '@' in any part and
// at least one '.' after the '@'.
var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves every request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// A falsy age (0, "" or null) extracts as nil, which "required" reports
	// as missing.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		age, ok := field.Interface().(types.Age)
		if !ok || !age.Truthy() {
			return nil
		}
		return age.String()
	}, types.Age{})

	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// validateInput returns nil or validator.ValidationErrors.
func validateInput(in types.UserInput) error {
	return validate.Struct(in)
}
