package entities

import (
	"forumapi/internal/apperror"
)

// Payload is a decoded request body merged with path and auth values.
type Payload map[string]any

// rule describes one field check of an input entity.
type rule struct {
	field    string
	required bool
}

// check runs the missing pass over every required field first, then the type
// pass, so a payload that is both incomplete and mistyped reports the
// missing field.
func (p Payload) check(missing, invalid apperror.Code, rules ...rule) error {
	for _, r := range rules {
		if r.required && !truthy(p[r.field]) {
			return apperror.Missing(missing, r.field)
		}
	}
	for _, r := range rules {
		// 非必填字段也必须是字符串
		if _, isString := p[r.field].(string); !isString {
			return apperror.InvalidType(invalid, r.field, "string")
		}
	}
	return nil
}

func (p Payload) str(field string) string {
	s, _ := p[field].(string)
	return s
}

// truthy mirrors the loose presence test used by clients of this API: nil,
// empty strings, zero numbers and false all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}
