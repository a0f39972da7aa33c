package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Capitalize upper-cases the first letter and lower-cases the rest,
// so "the DARK knight" becomes "The dark knight".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ParseInt reads the leading integer of value and returns 0 when there is none.
// "12abc" gives 12, "abc" gives 0.
func ParseInt(value string) int {
	value = strings.TrimLeftFunc(value, unicode.IsSpace)

	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return n
}

// SplitList splits a comma-separated line and trims every item.
// Trailing empty items are dropped; inner empty items are kept.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	items := make([]string, len(parts))
	for i, part := range parts {
		items[i] = strings.TrimSpace(part)
	}
	return items
}

func ParseIntList(value string) []int {
	items := SplitList(value)
	numbers := make([]int, len(items))
	for i, item := range items {
		numbers[i] = ParseInt(item)
	}
	return numbers
}

func JoinInts(numbers []int, sep string) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}

// GenerateReference returns a reference for a booking or cancellation.
func GenerateReference() string {
	return uuid.NewString()
}
