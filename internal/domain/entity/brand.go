package entity

import "strings"

// BrandFilter is a free-text manufacturer filter with line breaks removed and
// surrounding whitespace trimmed.
type BrandFilter string

// NewBrandFilter sanitizes raw user input into a BrandFilter.
func NewBrandFilter(raw string) BrandFilter {
	cleaned := strings.NewReplacer("\r", "", "\n", "").Replace(raw)

	return BrandFilter(strings.TrimSpace(cleaned))
}

// IsEmpty reports whether no search should be issued for the filter.
func (b BrandFilter) IsEmpty() bool {
	return b == ""
}

// String returns the sanitized brand.
func (b BrandFilter) String() string {
	return string(b)
}
