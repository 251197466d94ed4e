package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("witid", func(fl validator.FieldLevel) bool {
		return isIdentifier(fl.Field().String(), false)
	})
	_ = v.RegisterValidation("witpkgid", func(fl validator.FieldLevel) bool {
		return isIdentifier(fl.Field().String(), true)
	})
	return v
}

// isIdentifier reports whether s is a kebab-case identifier: words separated
// by '-', each starting with an ASCII letter and either all lowercase or all
// uppercase alphanumerics. Package identifiers must be lowercase.
func isIdentifier(s string, lowerOnly bool) bool {
	if s == "" {
		return false
	}
	for _, word := range strings.Split(s, "-") {
		if word == "" || !isASCIILetter(word[0]) {
			return false
		}
		lower, upper := true, true
		for i := 0; i < len(word); i++ {
			c := word[i]
			switch {
			case c >= 'a' && c <= 'z':
				upper = false
			case c >= 'A' && c <= 'Z':
				lower = false
			case c >= '0' && c <= '9':
			default:
				return false
			}
		}
		if lowerOnly && !lower {
			return false
		}
		if !lower && !upper {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ValidateID checks that s is a syntactically valid interface or world identifier.
func ValidateID(s string) error {
	if s == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if err := validate.Var(s, "witid"); err != nil {
		return fmt.Errorf("`%s` is not in kebab case", s)
	}
	return nil
}

// PackageName identifies a registry package as `<namespace>:<name>`.
type PackageName struct {
	Namespace string `validate:"required,witpkgid"`
	Name      string `validate:"required,witpkgid"`
}

// ParsePackageName parses and validates a `<namespace>:<name>` package name.
func ParsePackageName(s string) (PackageName, error) {
	namespace, name, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(name, ":") {
		return PackageName{}, fmt.Errorf("invalid package name `%s`: expected format `<namespace>:<name>`", s)
	}
	pkg := PackageName{Namespace: namespace, Name: name}
	if err := validate.Struct(pkg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			part := name
			if verrs[0].Field() == "Namespace" {
				part = namespace
			}
			return PackageName{}, fmt.Errorf("invalid package name `%s`: `%s` is not a lowercase kebab-case identifier", s, part)
		}
		return PackageName{}, fmt.Errorf("invalid package name `%s`: %w", s, err)
	}
	return pkg, nil
}

// String returns the `<namespace>:<name>` form.
func (n PackageName) String() string {
	return n.Namespace + ":" + n.Name
}

// IsZero reports whether the name is unset.
func (n PackageName) IsZero() bool {
	return n.Namespace == "" && n.Name == ""
}

// MarshalText implements encoding.TextMarshaler so names can key json/yaml maps.
func (n PackageName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
