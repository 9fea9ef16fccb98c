package validator

// CrossField builds a rule that spans several fields or the whole record.
// field names the field the failure is reported against.
func CrossField(field, message, translationKey string, values map[string]any, check func() bool) Rule {
	kv := make([]any, 0, 2*len(values))
	for k, v := range values {
		kv = append(kv, k, v)
	}
	return newRule(field, KindCrossField, translationKey, message, check, kv...)
}

// RequiredKeyWhen requires key to be present in m whenever cond holds.
func RequiredKeyWhen[V any](field string, m map[string]V, key string, cond bool, message string) Rule {
	return CrossField(field, message, "validation.required_key", map[string]any{"key": key}, func() bool {
		if !cond {
			return true
		}
		_, ok := m[key]
		return ok
	})
}
