// Package productcode generates and parses shelf product numbers.
//
// A product number is [store number][sequence]: store_001 yields 1001, 1002, ...
// and store_002 yields 2001, 2002, ...
package productcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^\d{4,6}$`)

// Generate returns the number following last for storeID, or the first
// number of the store when last is empty.
func Generate(storeID, last string) (string, error) {
	if last == "" {
		n, err := storeNumber(storeID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d001", n), nil
	}

	current, err := strconv.Atoi(last)
	if err != nil {
		return "", fmt.Errorf("productcode: invalid product number %q: %w", last, err)
	}
	return strconv.Itoa(current + 1), nil
}

// Validate reports whether number has the 4 to 6 digit shelf format.
func Validate(number string) bool {
	return numberPattern.MatchString(number)
}

// ExtractStoreID returns the store encoded in the first digit of number.
func ExtractStoreID(number string) (string, bool) {
	if !Validate(number) {
		return "", false
	}
	return "store_00" + number[:1], true
}

// Next returns the number after the highest of existing, or the store's first
// number when existing is empty.
func Next(storeID string, existing []string) (string, error) {
	if len(existing) == 0 {
		return Generate(storeID, "")
	}

	highest := -1
	for _, s := range existing {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("productcode: invalid product number %q: %w", s, err)
		}
		if n > highest {
			highest = n
		}
	}
	return Generate(storeID, strconv.Itoa(highest))
}

func storeNumber(storeID string) (int, error) {
	raw := strings.TrimPrefix(strings.ToLower(storeID), "store_")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("productcode: invalid store id %q: %w", storeID, err)
	}
	return n, nil
}
