package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/countrydex/countrydex/countries"
)

// CountryHandler serves the lookup endpoints over a country directory
type CountryHandler struct {
	dir *countries.Directory
}

// NewCountryHandler creates a handler backed by the given directory
func NewCountryHandler(dir *countries.Directory) *CountryHandler {
	return &CountryHandler{dir: dir}
}

// CountryResponse is the JSON shape of a single country
type CountryResponse struct {
	Name                      string `json:"name"`
	ISOCode                   string `json:"iso_code"`
	DialCode                  string `json:"dial_code"`
	NationalSignificantNumber *int   `json:"national_significant_number,omitempty"`
	FlagPath                  string `json:"flag_path"`
	FlagEmoji                 string `json:"flag_emoji"`
}

func toCountryResponse(country countries.Country) CountryResponse {
	resp := CountryResponse{
		Name:      country.Name(),
		ISOCode:   country.ISOCode(),
		DialCode:  country.DialCode(),
		FlagPath:  country.FlagAssetPath(),
		FlagEmoji: country.FlagEmoji(),
	}
	if nsn, ok := country.NationalSignificantNumber(); ok {
		resp.NationalSignificantNumber = &nsn
	}
	return resp
}

// ListCountries returns the full table, or the accent-insensitive
// matches for the optional ?q= search term
func (h *CountryHandler) ListCountries(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var list []countries.Country
	if query == "" {
		list = h.dir.All()
	} else {
		list = h.dir.Search(query)
	}

	response := make([]CountryResponse, 0, len(list))
	for _, country := range list {
		response = append(response, toCountryResponse(country))
	}

	SendSuccess(c, http.StatusOK, response, &Meta{Count: len(response)})
}

// GetByDialCode returns the first country matching a dial code.
// The leading "+" is optional, so /dial/81 and /dial/+81 are equivalent.
func (h *CountryHandler) GetByDialCode(c *gin.Context) {
	code := c.Param("code")

	country, ok := h.dir.FindByDialCode(code)
	if !ok {
		SendNotFound(c, "no country matches dial code "+code)
		return
	}

	SendSuccess(c, http.StatusOK, toCountryResponse(country), nil)
}

// GetByISOCode returns the country with the given ISO 3166-1 alpha-2 code
func (h *CountryHandler) GetByISOCode(c *gin.Context) {
	code := c.Param("code")

	country, ok := h.dir.FindByISOCode(code)
	if !ok {
		SendNotFound(c, "no country matches ISO code "+code)
		return
	}

	SendSuccess(c, http.StatusOK, toCountryResponse(country), nil)
}

// GetByName returns the country with the given English name
func (h *CountryHandler) GetByName(c *gin.Context) {
	name := c.Param("name")

	country, ok := h.dir.FindByName(name)
	if !ok {
		SendNotFound(c, "no country named "+name)
		return
	}

	SendSuccess(c, http.StatusOK, toCountryResponse(country), nil)
}

// Healthz reports service liveness and the loaded table size
func (h *CountryHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"countries": h.dir.Len(),
	})
}
