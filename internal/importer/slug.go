package importer

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	tokenLength   = 5
	tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// TokenFunc returns the random suffix appended to slugs.
type TokenFunc func() string

// RandomToken returns five base36 characters.
func RandomToken() string {
	b := make([]byte, tokenLength)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}

// BaseSlug lower-cases name, strips accents and joins the remaining
// alphanumeric runs with dashes.
func BaseSlug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	plain, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		plain = strings.ToLower(name)
	}
	return strings.Trim(nonSlug.ReplaceAllString(plain, "-"), "-")
}

// Slug is BaseSlug plus a dash and a token, so names may repeat.
func Slug(name string, token TokenFunc) string {
	return BaseSlug(name) + "-" + token()
}
