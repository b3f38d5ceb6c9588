package countries

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Fallback values substituted at parse time for raw entries that omit a
// required key. Substitution is per missing field and never applies to
// present-but-empty values.
const (
	DefaultName     = "United States"
	DefaultISOCode  = "US"
	DefaultDialCode = "+1"
)

// Format identifies a source table encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// rawRecord mirrors one source table entry. Pointer fields allow
// distinguishing "not set" (nil) from "explicitly empty", which the
// defaulting rules depend on.
type rawRecord struct {
	Name     *string `json:"name" yaml:"name"`
	Code     *string `json:"code" yaml:"code"`
	DialCode *string `json:"dial_code" yaml:"dial_code"`
	NSN      *int    `json:"national_significant_number" yaml:"national_significant_number"`
}

// Load parses a source table from r and returns a Directory over it. Record
// order is preserved; it determines which record wins when several share a
// lookup key. Entries missing a required key get the US fallback for that
// key, with a warning per substituted field.
func Load(r io.Reader, format Format) (*Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source table: %w", err)
	}

	var raws []rawRecord
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("failed to parse JSON source table: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("failed to parse YAML source table: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown source table format %d", format)
	}

	if len(raws) == 0 {
		return nil, fmt.Errorf("source table contains no records")
	}

	records := make([]Country, len(raws))
	for i, raw := range raws {
		records[i] = raw.toCountry(i)
	}
	return NewDirectory(records), nil
}

// LoadFile loads a source table from path, selecting the format by file
// extension (.json, .yaml or .yml).
func LoadFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source table: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return Load(f, FormatJSON)
	case ".yaml", ".yml":
		return Load(f, FormatYAML)
	default:
		return nil, fmt.Errorf("unsupported source table extension %q (must be .json, .yaml or .yml)", ext)
	}
}

// MustLoad is Load but panics on error. It backs the embedded table, which
// is a build artifact and cannot legitimately fail to parse.
func MustLoad(r io.Reader, format Format) *Directory {
	d, err := Load(r, format)
	if err != nil {
		panic(fmt.Sprintf("countries: loading source table: %v", err))
	}
	return d
}

// toCountry converts a raw entry into a Country, substituting the US
// fallbacks for omitted keys. Every substitution and suspicious value is
// logged so malformed source data stays visible.
func (r rawRecord) toCountry(index int) Country {
	var c Country

	if r.Name != nil {
		c.name = *r.Name
	} else {
		c.name = DefaultName
		log.WithField("index", index).Warn("Source entry has no name, falling back to United States")
	}

	if r.Code != nil {
		c.isoCode = *r.Code
	} else {
		c.isoCode = DefaultISOCode
		log.WithField("index", index).Warn("Source entry has no code, falling back to US")
	}

	if r.DialCode != nil {
		c.dialCode = *r.DialCode
	} else {
		c.dialCode = DefaultDialCode
		log.WithField("index", index).Warn("Source entry has no dial_code, falling back to +1")
	}

	if r.NSN != nil {
		c.nsn = *r.NSN
		c.hasNSN = true
	}

	if c.dialCode != "" && !strings.HasPrefix(c.dialCode, "+") {
		log.WithFields(log.Fields{
			"index":     index,
			"dial_code": c.dialCode,
		}).Warn("Source entry dial_code does not start with '+', dial lookups will not match it")
	}

	if c.isoCode != "" {
		if _, err := language.ParseRegion(c.isoCode); err != nil {
			log.WithFields(log.Fields{
				"index": index,
				"code":  c.isoCode,
			}).Warn("Source entry code is not a recognized ISO region")
		}
	}

	return c
}
