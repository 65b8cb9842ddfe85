package sanitizer

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		// Generic string sanitizers
		"trim":     Trim,
		"lower":    ToLower,
		"upper":    ToUpper,
		"digits":   KeepDigits,
		"alphanum": KeepAlphanumeric,

		// Identifier normalizers
		"code":    NormalizeCode,
		"pan":     NormalizeCode,
		"aadhaar": NormalizeCode,
		"gstin":   NormalizeCode,
		"ifsc":    NormalizeCode,
		"vpa":     StripWhitespace,
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct normalizes struct fields in place based on their "sanitize"
// tags. Fields without a tag, or tagged "-", are left untouched.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	sanitizeStructRecursive(rv)
	return nil
}

func sanitizeStructRecursive(rv reflect.Value) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag == "" {
				continue
			}
			field.SetString(applySanitizers(field.String(), tag))

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			if elem.Kind() == reflect.String && tag != "" {
				elem.SetString(applySanitizers(elem.String(), tag))
			} else if elem.Kind() == reflect.Struct {
				sanitizeStructRecursive(elem)
			}

		case reflect.Struct:
			sanitizeStructRecursive(field)

		case reflect.Slice:
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(applySanitizers(elem.String(), tag))
				}
			}
		}
	}
}

func applySanitizers(value string, tag string) string {
	sanitizers := strings.Split(tag, ",")
	result := value

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range sanitizers {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if fn, ok := registry[name]; ok {
			result = fn(result)
		}
	}

	return result
}
