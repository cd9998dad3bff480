package id

import (
	"fmt"
	"strconv"
	"strings"
)

const userNoPrefix = "PMB-"

// FormatUserNo renders a sequential user number as the public member code,
// e.g. 7 → "PMB-00007". Numbers above 99999 widen past five digits.
func FormatUserNo(n uint64) string {
	return fmt.Sprintf("%s%05d", userNoPrefix, n)
}

// ParseUserNo accepts a member code case-insensitively ("pmb-00007") and
// returns the sequential number. ok is false for anything that is not a
// well-formed code.
func ParseUserNo(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if len(s) <= len(userNoPrefix) || !strings.EqualFold(s[:len(userNoPrefix)], userNoPrefix) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[len(userNoPrefix):], 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
