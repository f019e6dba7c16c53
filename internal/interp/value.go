package interp

import (
	"strconv"
	"strings"
)

// Value is the runtime representation of any Lox value: nil, bool,
// float64, string, a Callable (native function, user function, class,
// or bound method), or a *LoxInstance.
type Value any

// IsTruthy implements Lox's truthiness rule: only nil and false are falsy;
// every other value, including 0 and "", is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox equality: nil equals only nil, NaN is compared by
// host float64 equality (so NaN != NaN, the documented choice for the
// spec's open question on NaN), and everything else by Go's == operator,
// which for the interface types Lox uses (bool, float64, string, and
// pointer-identity callables/instances) matches the spec's rules.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	af, aIsFloat := a.(float64)
	bf, bIsFloat := b.(float64)
	if aIsFloat && bIsFloat {
		return af == bf
	}
	return a == b
}

// Stringify renders v the way `print` and string concatenation do.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		return formatNumber(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case *LoxClass:
		return val.Name
	case *LoxInstance:
		return val.Class.Name + " instance"
	case Callable:
		return val.String()
	default:
		return "nil"
	}
}

// formatNumber renders a Lox number: plain decimal, with a trailing ".0"
// stripped for values that are mathematically whole numbers (so `7.0`
// prints as `7`, matching the reference stringification).
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return strings.TrimSuffix(s, ".0")
}
