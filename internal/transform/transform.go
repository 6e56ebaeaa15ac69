// internal/transform/transform.go
package transform

import "strings"

// TitleText trims the input and title-cases each word. Used to normalize
// submitted names before they are stored.
func TitleText(text string) string {
	words := strings.Fields(strings.TrimSpace(text))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// NormalizeEmail lowercases and trims an email address. Lookups against
// the store are case-insensitive, but stored values are kept normalized
// so the same address never appears in two spellings.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
