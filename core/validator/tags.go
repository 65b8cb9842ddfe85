package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/idkit/pkg/aadhaar"
	"github.com/dmitrymomot/idkit/pkg/gstin"
	"github.com/dmitrymomot/idkit/pkg/ifsc"
	"github.com/dmitrymomot/idkit/pkg/pan"
	"github.com/dmitrymomot/idkit/pkg/vpa"
)

// ValidatorFunc is a function that validates a value and returns a Rule
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		// Generic rules
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"len":      lenValidator,
		"digits":   digitsValidator,
		"alpha":    alphaValidator,
		"alphanum": alphanumValidator,

		// Identifier rules
		"pan":     documentValidator(func(s string) error { _, err := pan.Parse(s); return err }),
		"aadhaar": documentValidator(func(s string) error { _, err := aadhaar.Parse(s); return err }),
		"gstin":   documentValidator(func(s string) error { _, err := gstin.Parse(s); return err }),
		"ifsc":    documentValidator(func(s string) error { _, err := ifsc.Parse(s); return err }),
		"vpa":     documentValidator(func(s string) error { _, err := vpa.Parse(s); return err }),
	}
)

// RegisterValidator adds a custom validator function to the registry
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its field tags
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errors ValidationErrors
	validateStructRecursive(rv, "", &errors)

	if errors.IsEmpty() {
		return nil
	}
	return errors
}

func validateStructRecursive(rv reflect.Value, prefix string, errors *ValidationErrors) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("validate")

		fieldPath := structField.Name
		if prefix != "" {
			fieldPath = prefix + "." + structField.Name
		}

		if tag == "-" {
			continue
		}

		// Nested structs are always walked
		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errors)
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(fieldPath, field, tag, errors)
				}
			} else {
				elem := field.Elem()
				if elem.Kind() == reflect.Struct && tag == "" {
					validateStructRecursive(elem, fieldPath, errors)
				} else if tag != "" {
					validateField(fieldPath, elem, tag, errors)
				}
			}
			continue
		}

		if tag == "" {
			continue
		}

		validateField(fieldPath, field, tag, errors)
	}
}

func validateField(fieldPath string, field reflect.Value, tag string, errors *ValidationErrors) {
	// Rules are separated by semicolon, parameters by colon
	rules := strings.Split(tag, ";")

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range rules {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		parts := strings.SplitN(ruleStr, ":", 2)
		ruleName := strings.TrimSpace(parts[0])

		var params []string
		if len(parts) > 1 {
			paramStr := strings.TrimSpace(parts[1])
			if paramStr != "" {
				params = strings.Split(paramStr, ",")
				for i := range params {
					params[i] = strings.TrimSpace(params[i])
				}
			}
		}

		if validatorFn, ok := registry[ruleName]; ok {
			rule := validatorFn(fieldPath, field, params)
			if !rule.Check() {
				errors.Add(rule.Error)
			}
		}
	}
}

// Built-in validators

// documentValidator adapts an identifier parse function into a tag rule.
// Empty values pass so optional fields stay optional; combine with
// "required" to force presence. The rule message is taken from the parse
// error, keeping tag validation and direct validation in agreement.
func documentValidator(parse func(string) error) ValidatorFunc {
	return func(field string, value reflect.Value, params []string) Rule {
		if value.Kind() != reflect.String {
			return passRule()
		}

		raw := value.String()
		if strings.TrimSpace(raw) == "" {
			return passRule()
		}

		err := parse(raw)
		if err == nil {
			return passRule()
		}
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:   field,
				Message: err.Error(),
			},
		}
	}
}

func requiredValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				return !value.IsZero()
			}
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 || value.Kind() != reflect.String {
		return passRule()
	}

	min, _ := strconv.Atoi(params[0])
	return Rule{
		Check: func() bool {
			return len(value.String()) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 || value.Kind() != reflect.String {
		return passRule()
	}

	max, _ := strconv.Atoi(params[0])
	return Rule{
		Check: func() bool {
			return len(value.String()) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

func lenValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 || value.Kind() != reflect.String {
		return passRule()
	}

	expectedLen, _ := strconv.Atoi(params[0])
	return Rule{
		Check: func() bool {
			return len(value.String()) == expectedLen
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d characters long", expectedLen),
		},
	}
}

func digitsValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return passRule()
	}

	return Rule{
		Check: func() bool {
			s := value.String()
			for i := 0; i < len(s); i++ {
				if s[i] < '0' || s[i] > '9' {
					return false
				}
			}
			return s != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only digits",
		},
	}
}

func alphaValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return passRule()
	}

	return Rule{
		Check: func() bool {
			s := value.String()
			for i := 0; i < len(s); i++ {
				c := s[i]
				if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
					return false
				}
			}
			return s != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters",
		},
	}
}

func alphanumValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return passRule()
	}

	return Rule{
		Check: func() bool {
			s := value.String()
			for i := 0; i < len(s); i++ {
				c := s[i]
				if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
					return false
				}
			}
			return s != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters and digits",
		},
	}
}
