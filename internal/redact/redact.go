package redact

// Placeholder replaces a masked value, quotes included.
const Placeholder = "'******'"

// SecretKey is the only key whose value is masked.
const SecretKey = "password"

// Key returns Placeholder when key is SecretKey and v unchanged otherwise.
func Key(key string, v any) any {
	if key == SecretKey {
		return Placeholder
	}
	return v
}
