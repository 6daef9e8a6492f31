package facestore

// Sanitizer produces a filesystem-safe key from an arbitrary reference name.
// Implementations must be deterministic, stateless, and idempotent:
// sanitize(sanitize(name)) == sanitize(name). Distinct names that sanitize to
// the same key address the same stored reference.
type Sanitizer func(name string) string

// SanitizeName is the default Sanitizer. It keeps ASCII letters, digits,
// '.', '_' and '-', and replaces every other rune with '_'.
func SanitizeName(name string) string {
	out := []byte(name)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			out[i] = c
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
