// Command countrydex looks up country metadata from the command line
// by dial code, ISO 3166-1 alpha-2 code, or name.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/countrydex/countrydex/countries"
	"github.com/countrydex/countrydex/textutil"
)

// Application version
const Version = "1.0.0"

// countryOutput is the JSON shape printed by -json
type countryOutput struct {
	Name                      string `json:"name"`
	ISOCode                   string `json:"iso_code"`
	DialCode                  string `json:"dial_code"`
	NationalSignificantNumber *int   `json:"national_significant_number,omitempty"`
	FlagEmoji                 string `json:"flag_emoji"`
	FlagPath                  string `json:"flag_path"`
}

func main() {
	dial := flag.String("dial", "", "Find the country for a dial code, e.g. +81")
	iso := flag.String("iso", "", "Find the country for an ISO 3166-1 alpha-2 code, e.g. JP")
	name := flag.String("name", "", "Find the country with an exact English name")
	search := flag.String("search", "", "List countries matching an accent-insensitive name fragment or ISO code")
	list := flag.Bool("list", false, "List the full country table")
	jsonOut := flag.Bool("json", false, "Print results as JSON")
	tablePath := flag.String("table", "", "Path to a JSON or YAML country table (default: embedded table)")
	version := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *version {
		fmt.Printf("countrydex v%s\n", Version)
		os.Exit(0)
	}

	// Table-load warnings still surface; informational logs stay quiet
	log.SetLevel(log.WarnLevel)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if *tablePath == "" {
		*tablePath = os.Getenv("COUNTRYDEX_TABLE")
	}

	modes := 0
	for _, set := range []bool{*dial != "", *iso != "", *name != "", *search != "", *list} {
		if set {
			modes++
		}
	}
	if modes == 0 {
		fmt.Fprintln(os.Stderr, "Error: one of -dial, -iso, -name, -search, or -list is required")
		flag.Usage()
		os.Exit(1)
	}
	if modes > 1 {
		fmt.Fprintln(os.Stderr, "Error: -dial, -iso, -name, -search, and -list are mutually exclusive")
		os.Exit(1)
	}

	var dir *countries.Directory
	if *tablePath != "" {
		var err error
		dir, err = countries.LoadFile(*tablePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading country table: %v\n", err)
			os.Exit(1)
		}
	} else {
		dir = countries.Default()
	}

	switch {
	case *dial != "":
		country, ok := dir.FindByDialCode(*dial)
		if !ok {
			fmt.Fprintf(os.Stderr, "No country matches dial code %s\n", *dial)
			os.Exit(1)
		}
		printCountry(country, *jsonOut)

	case *iso != "":
		country, ok := dir.FindByISOCode(*iso)
		if !ok {
			fmt.Fprintf(os.Stderr, "No country matches ISO code %s\n", *iso)
			os.Exit(1)
		}
		printCountry(country, *jsonOut)

	case *name != "":
		country, ok := dir.FindByName(*name)
		if !ok {
			fmt.Fprintf(os.Stderr, "No country named %s\n", *name)
			os.Exit(1)
		}
		printCountry(country, *jsonOut)

	case *search != "":
		matches := dir.Search(*search)
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "No countries match %q\n", *search)
			os.Exit(1)
		}
		printCountries(matches, *jsonOut)

	case *list:
		printCountries(dir.All(), *jsonOut)
	}
}

func toOutput(country countries.Country) countryOutput {
	out := countryOutput{
		Name:      country.Name(),
		ISOCode:   country.ISOCode(),
		DialCode:  country.DialCode(),
		FlagEmoji: country.FlagEmoji(),
		FlagPath:  country.FlagAssetPath(),
	}
	if nsn, ok := country.NationalSignificantNumber(); ok {
		out.NationalSignificantNumber = &nsn
	}
	return out
}

func printCountry(country countries.Country, asJSON bool) {
	if asJSON {
		printJSON(toOutput(country))
		return
	}

	fmt.Printf("%s %s\n", country.FlagEmoji(), country.Name())
	fmt.Printf("  ISO code:   %s\n", country.ISOCode())
	fmt.Printf("  Dial code:  %s\n", country.DialCode())
	if nsn, ok := country.NationalSignificantNumber(); ok {
		fmt.Printf("  NSN length: %d digits\n", nsn)
	}
	fmt.Printf("  Flag asset: %s\n", country.FlagAssetPath())
}

func printCountries(list []countries.Country, asJSON bool) {
	if asJSON {
		output := make([]countryOutput, 0, len(list))
		for _, country := range list {
			output = append(output, toOutput(country))
		}
		printJSON(output)
		return
	}

	fmt.Printf("%-5s %-9s %s\n", "CODE", "DIAL", "NAME")
	for _, country := range list {
		fmt.Printf("%-5s %-9s %s\n", country.ISOCode(), country.DialCode(), textutil.TruncateText(country.Name(), 40))
	}
}

func printJSON(v interface{}) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(pretty))
}
