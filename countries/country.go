// Package countries resolves country metadata lookups by dial code, ISO
// 3166-1 alpha-2 code or display name against an immutable in-memory table.
//
// The table ships embedded in the binary and is parsed once on first use;
// callers can also load their own source tables from JSON or YAML. Lookups
// scan in table order and report misses through a comma-ok boolean rather
// than an error, since "no such country" is an expected answer.
package countries

import "strings"

// Country is an immutable country record. Updates go through the With
// methods, which return a modified copy. The zero value is what lookups
// return on a miss and never describes a real country.
type Country struct {
	name     string
	isoCode  string
	dialCode string
	nsn      int
	hasNSN   bool
}

// New constructs a Country record without a national significant number.
func New(name, isoCode, dialCode string) Country {
	return Country{name: name, isoCode: isoCode, dialCode: dialCode}
}

// Name returns the display name, e.g. "United States".
func (c Country) Name() string { return c.name }

// ISOCode returns the ISO 3166-1 alpha-2 code, e.g. "US".
func (c Country) ISOCode() string { return c.isoCode }

// DialCode returns the international dialing prefix including the leading
// "+", e.g. "+1".
func (c Country) DialCode() string { return c.dialCode }

// NationalSignificantNumber returns the digit count of a full national
// number. The boolean is false when the record carries no such count.
func (c Country) NationalSignificantNumber() (int, bool) {
	return c.nsn, c.hasNSN
}

// WithName returns a copy of the record with the display name replaced.
func (c Country) WithName(name string) Country {
	c.name = name
	return c
}

// WithISOCode returns a copy of the record with the ISO code replaced.
func (c Country) WithISOCode(isoCode string) Country {
	c.isoCode = isoCode
	return c
}

// WithDialCode returns a copy of the record with the dial code replaced.
func (c Country) WithDialCode(dialCode string) Country {
	c.dialCode = dialCode
	return c
}

// WithNationalSignificantNumber returns a copy of the record with the
// national number length set.
func (c Country) WithNationalSignificantNumber(digits int) Country {
	c.nsn = digits
	c.hasNSN = true
	return c
}

// Equal reports whether two records carry identical values in every field,
// including presence of the national significant number.
func (c Country) Equal(other Country) bool {
	return c == other
}

// FlagAssetPath returns the conventional bundle path of the record's flag
// image, "flags/<lowercased iso code>.png". The path is derived, never
// checked against a filesystem.
func (c Country) FlagAssetPath() string {
	return "flags/" + strings.ToLower(c.isoCode) + ".png"
}

// FlagEmoji returns the Unicode flag for the record's ISO code. Each flag is
// composed of two Regional Indicator Symbol letters; codes that are not two
// ASCII letters yield the neutral globe.
func (c Country) FlagEmoji() string {
	code := strings.ToUpper(c.isoCode)
	if len(code) != 2 {
		return "🌐"
	}
	if code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "🌐"
	}

	// A = U+1F1E6, B = U+1F1E7, ..., Z = U+1F1FF
	first := rune(0x1F1E6 + int32(code[0]-'A'))
	second := rune(0x1F1E6 + int32(code[1]-'A'))

	return string([]rune{first, second})
}

// String renders the record for logs and CLI output, e.g. "Canada (CA +1)".
func (c Country) String() string {
	return c.name + " (" + c.isoCode + " " + c.dialCode + ")"
}
