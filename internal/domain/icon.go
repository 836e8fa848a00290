// Package domain holds the icon record model shared by every gh-emoji component.
package domain

import (
	"net/url"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ExcludedCode is a catalog artifact that is not an emoji and is always skipped.
const ExcludedCode = "atom"

// Icon is one catalog entry: its shortcode name, the hyphen-separated
// hexadecimal code points, and the rendered glyph.
type Icon struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Emoji string `json:"emoji"`
}

// Catalog is the ordered sequence of icons for one snapshot. Positions in a
// Catalog are the indices shown to and parsed back from the selector, so it
// is never re-sorted.
type Catalog []Icon

// At returns the icon at position i, or false if i is out of range.
func (c Catalog) At(i int) (Icon, bool) {
	if i < 0 || i >= len(c) {
		return Icon{}, false
	}
	return c[i], true
}

// DecodeCode renders a code such as "1f1e6-1f1e7" into its glyph. It reports
// false when a component is not hexadecimal or is not a valid code point.
func DecodeCode(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	var b strings.Builder
	for _, part := range strings.Split(code, "-") {
		n, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return "", false
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// CodeFromURL returns the final path segment of an image URL with its
// ".png" extension removed.
func CodeFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return "", false
	}
	return strings.TrimSuffix(base, ".png"), true
}

// NewIcon builds the icon for a catalog entry. It reports false when the
// entry must be dropped: an unusable URL, the excluded "atom" code, or a
// code that does not decode.
func NewIcon(name, imageURL string) (Icon, bool) {
	code, ok := CodeFromURL(imageURL)
	if !ok || code == ExcludedCode {
		return Icon{}, false
	}
	emoji, ok := DecodeCode(code)
	if !ok {
		return Icon{}, false
	}
	return Icon{Name: name, Code: code, Emoji: emoji}, true
}
