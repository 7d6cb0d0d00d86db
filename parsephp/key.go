package parsephp

import (
	"fmt"
	"strconv"
)

// Key addresses an entry of a Tree. It is either an integer or a string and
// is comparable, so it can be used as a map key.
type Key struct {
	str   string
	num   int
	isInt bool
}

// IntKey returns an integer key.
func IntKey(i int) Key {
	return Key{num: i, isInt: true}
}

// StringKey returns a key for s. Canonical decimal integers ("0", "42",
// "-7") become integer keys, mirroring PHP array key normalization, so
// StringKey("1") == IntKey(1).
func StringKey(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return IntKey(n)
	}
	return Key{str: s}
}

// KeyOf converts k to a Key. Accepted are Key, string and all integer types.
func KeyOf(k any) (Key, error) {
	switch x := k.(type) {
	case Key:
		return x, nil
	case string:
		return StringKey(x), nil
	case int:
		return IntKey(x), nil
	case int8:
		return IntKey(int(x)), nil
	case int16:
		return IntKey(int(x)), nil
	case int32:
		return IntKey(int(x)), nil
	case int64:
		return IntKey(int(x)), nil
	case uint:
		return IntKey(int(x)), nil
	case uint8:
		return IntKey(int(x)), nil
	case uint16:
		return IntKey(int(x)), nil
	case uint32:
		return IntKey(int(x)), nil
	case uint64:
		return IntKey(int(x)), nil
	}
	return Key{}, fmt.Errorf("%w: got %T", ErrInvalidKeyType, k)
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k, or 0 for string keys.
func (k Key) Int() int { return k.num }

// String returns the textual form of k.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// canonicalInt reports whether s is a decimal integer without sign noise or
// leading zeros that fits in an int.
func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
		if digits == "" || digits == "0" {
			return 0, false
		}
	}
	if !isNumeric(digits) {
		return 0, false
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isNumeric reports whether the token is an unsigned integer consisting of digits only.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
