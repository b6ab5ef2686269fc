package causal

import (
	"fmt"
	"strings"
)

// Sign is the polarity carried by a causal edge or accumulated along a path.
type Sign uint8

const (
	// Positive marks an activating influence: the source going up drives
	// the target up.
	Positive Sign = 0

	// Negative marks an inhibiting influence: the source going up drives
	// the target down.
	Negative Sign = 1
)

// Valid reports whether s is one of the two defined polarities.
func (s Sign) Valid() bool { return s == Positive || s == Negative }

// Combine returns the polarity of s followed by t along a path.
// Two negatives cancel; a single negative flips (XOR parity).
func (s Sign) Combine(t Sign) Sign { return s ^ t }

// String renders the polarity in conventional "+" / "-" notation.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "?"
	}
}

// ParseSign coerces a loosely typed edge sign into a Sign.
//
// Assembled graphs arrive from JSON exports and notebook pipelines where the
// sign attribute may be an int, a float, or a string; ParseSign is the single
// lenient boundary for all of them. Accepted forms: Sign values, integer
// kinds equal to 0 or 1, the whole floats 0.0 and 1.0, and the strings "0",
// "1", "+", "-" (surrounding spaces ignored). Everything else, including
// integers outside {0, 1}, is a decode failure reported as ErrBadSign.
func ParseSign(v any) (Sign, error) {
	switch x := v.(type) {
	case Sign:
		if x.Valid() {
			return x, nil
		}
	case int:
		return signFromInt(int64(x))
	case int8:
		return signFromInt(int64(x))
	case int16:
		return signFromInt(int64(x))
	case int32:
		return signFromInt(int64(x))
	case int64:
		return signFromInt(x)
	case uint:
		return signFromUint(uint64(x))
	case uint8:
		return signFromUint(uint64(x))
	case uint16:
		return signFromUint(uint64(x))
	case uint32:
		return signFromUint(uint64(x))
	case uint64:
		return signFromUint(x)
	case float32:
		if x == 0 || x == 1 {
			return Sign(x), nil
		}
	case float64:
		if x == 0 || x == 1 {
			return Sign(x), nil
		}
	case string:
		return signFromString(x)
	}

	return 0, fmt.Errorf("%w: %v (%T)", ErrBadSign, v, v)
}

func signFromInt(n int64) (Sign, error) {
	if n == 0 || n == 1 {
		return Sign(n), nil
	}

	return 0, fmt.Errorf("%w: integer %d outside {0, 1}", ErrBadSign, n)
}

func signFromUint(n uint64) (Sign, error) {
	if n == 0 || n == 1 {
		return Sign(n), nil
	}

	return 0, fmt.Errorf("%w: integer %d outside {0, 1}", ErrBadSign, n)
}

func signFromString(s string) (Sign, error) {
	switch strings.TrimSpace(s) {
	case "0", "+":
		return Positive, nil
	case "1", "-":
		return Negative, nil
	}

	return 0, fmt.Errorf("%w: string %q", ErrBadSign, s)
}
