package countries

import (
	"strings"

	"github.com/countrydex/countrydex/textutil"
)

// Directory is an immutable, ordered collection of Country records. Every
// lookup scans in table order and returns the first match, so tables where
// several records share a key (the NANP members on "+1", for instance)
// resolve deterministically to the earliest record. A Directory is safe for
// concurrent readers; nothing mutates it after construction.
type Directory struct {
	records []Country

	// normalized display names, parallel to records, precomputed for Search
	searchNames []string
}

// NewDirectory builds a Directory over a copy of records, preserving order.
func NewDirectory(records []Country) *Directory {
	d := &Directory{
		records:     make([]Country, len(records)),
		searchNames: make([]string, len(records)),
	}
	copy(d.records, records)
	for i, c := range d.records {
		d.searchNames[i] = textutil.NormalizeText(c.name)
	}
	return d
}

// FindByDialCode returns the first record in table order whose dial code
// matches the input exactly. A missing leading "+" is tolerated, so "1" and
// "+1" are the same query. The boolean is false when the input is empty or
// nothing matches; a miss is a normal result, not a fault.
func (d *Directory) FindByDialCode(dialCode string) (Country, bool) {
	if dialCode == "" {
		return Country{}, false
	}
	if !strings.HasPrefix(dialCode, "+") {
		dialCode = "+" + dialCode
	}
	for _, c := range d.records {
		if c.dialCode == dialCode {
			return c, true
		}
	}
	return Country{}, false
}

// FindByISOCode returns the first record in table order whose ISO code
// matches the input case-insensitively. The boolean is false when the input
// is empty or nothing matches.
func (d *Directory) FindByISOCode(isoCode string) (Country, bool) {
	if isoCode == "" {
		return Country{}, false
	}
	for _, c := range d.records {
		if strings.EqualFold(c.isoCode, isoCode) {
			return c, true
		}
	}
	return Country{}, false
}

// FindByName returns the first record in table order whose display name
// matches the input case-insensitively. Accents are significant here; use
// Search for accent-insensitive matching.
func (d *Directory) FindByName(name string) (Country, bool) {
	if name == "" {
		return Country{}, false
	}
	for _, c := range d.records {
		if strings.EqualFold(c.name, name) {
			return c, true
		}
	}
	return Country{}, false
}

// Search returns every record, in table order, whose normalized display name
// contains the normalized query or whose ISO code equals it. Normalization
// folds case and strips diacritics, so "sao" finds São Tomé and Príncipe.
// An empty or blank query returns nil.
func (d *Directory) Search(query string) []Country {
	q := textutil.NormalizeText(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Country
	for i, c := range d.records {
		if strings.Contains(d.searchNames[i], q) || strings.EqualFold(c.isoCode, q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// All returns a copy of the table in order.
func (d *Directory) All() []Country {
	out := make([]Country, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of records in the table.
func (d *Directory) Len() int {
	return len(d.records)
}
