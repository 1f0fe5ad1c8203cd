package utils

// ContainsString reports whether list holds s exactly.
func ContainsString(list []string, s string) bool {
	for _, entry := range list {
		if entry == s {
			return true
		}
	}
	return false
}
