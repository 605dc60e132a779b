package util

// UniqueStrings returns the distinct values of s in first-seen order.
func UniqueStrings(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, a := range s {
		if !seen[a] {
			seen[a] = true
			result = append(result, a)
		}
	}
	return result
}
