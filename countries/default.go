package countries

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed data/countries.json
var embeddedTable []byte

// Singleton over the embedded source table, built on first use and shared
// by every caller for the life of the process.
var (
	defaultDirectory     *Directory
	defaultDirectoryOnce sync.Once
)

// Default returns the process-wide Directory over the embedded source table.
// The table is parsed exactly once; repeated calls return the same immutable
// instance, so it is safe to call from any goroutine.
func Default() *Directory {
	defaultDirectoryOnce.Do(func() {
		defaultDirectory = MustLoad(bytes.NewReader(embeddedTable), FormatJSON)
	})
	return defaultDirectory
}

// FindByDialCode looks up a dial code in the embedded table. See
// Directory.FindByDialCode.
func FindByDialCode(dialCode string) (Country, bool) {
	return Default().FindByDialCode(dialCode)
}

// FindByISOCode looks up an ISO code in the embedded table. See
// Directory.FindByISOCode.
func FindByISOCode(isoCode string) (Country, bool) {
	return Default().FindByISOCode(isoCode)
}

// FindByName looks up a display name in the embedded table. See
// Directory.FindByName.
func FindByName(name string) (Country, bool) {
	return Default().FindByName(name)
}

// Search runs an accent-insensitive substring search over the embedded
// table. See Directory.Search.
func Search(query string) []Country {
	return Default().Search(query)
}

// All returns a copy of the embedded table in order.
func All() []Country {
	return Default().All()
}
