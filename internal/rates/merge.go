package rates

// Merge returns the union of a and b. For a country code present in both,
// b's record replaces a's wholesale; fields are never merged across sources.
// Neither input is modified.
func Merge(a, b map[string]Record) map[string]Record {
	out := make(map[string]Record, len(a)+len(b))
	for code, rec := range a {
		out[code] = rec
	}
	for code, rec := range b {
		out[code] = rec
	}
	return out
}
