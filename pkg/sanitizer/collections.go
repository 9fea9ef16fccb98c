package sanitizer

import "strings"

// TrimStringSlice trims every element; the input slice is not modified.
func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, s := range slice {
		result[i] = strings.TrimSpace(s)
	}
	return result
}

// FilterEmpty drops empty and whitespace-only strings.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if strings.TrimSpace(s) != "" {
			result = append(result, s)
		}
	}
	return result
}

// DeduplicateStrings keeps the first occurrence of each string, preserving order.
func DeduplicateStrings(slice []string) []string {
	seen := make(map[string]struct{}, len(slice))
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}

// CleanStringSlice trims, drops empties and deduplicates.
func CleanStringSlice(slice []string) []string {
	return Apply(slice,
		TrimStringSlice,
		FilterEmpty,
		DeduplicateStrings,
	)
}

// CleanStringMap trims keys and values and drops entries whose key ends up empty.
// Keys that collide after trimming keep an arbitrary one of their values.
func CleanStringMap(m map[string]string) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		result[key] = strings.TrimSpace(v)
	}
	return result
}
