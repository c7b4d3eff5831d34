package utils

import "fmt"

// ToStringSlice renders every element of a mixed slice as a string.
// Non-string elements format with %v, so parameter sequences that arrive
// as []any (numbers, bools, strings) all render uniformly.
func ToStringSlice(slice []any) []string {
	stringSlice := make([]string, 0, len(slice))
	for _, v := range slice {
		if s, ok := v.(string); ok {
			stringSlice = append(stringSlice, s)
			continue
		}
		stringSlice = append(stringSlice, fmt.Sprintf("%v", v))
	}
	return stringSlice
}
