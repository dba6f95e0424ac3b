package numberutils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToIntWithError converts the given string to an integer and returns any error that occurred during conversion.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(str))
}

// IsIntInRange checks if num lies within [min, max].
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

// ToIntInRange converts the given string to an integer and rejects values outside [min, max].
func ToIntInRange(str string, min, max int) (int, error) {
	num, err := ToIntWithError(str)
	if err != nil {
		return 0, err
	}
	if !IsIntInRange(num, min, max) {
		return 0, fmt.Errorf("%d is outside [%d, %d]", num, min, max)
	}
	return num, nil
}
