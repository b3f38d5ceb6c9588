package api

import (
	"github.com/gin-gonic/gin"

	"github.com/countrydex/countrydex/countries"
)

// NewRouter builds the gin engine with middleware and all lookup routes
func NewRouter(dir *countries.Directory) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(CORSMiddleware())
	router.Use(ErrorHandlerMiddleware())

	handler := NewCountryHandler(dir)

	// Health check endpoint
	router.GET("/healthz", handler.Healthz)

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/countries", handler.ListCountries)
		v1.GET("/countries/dial/:code", handler.GetByDialCode)
		v1.GET("/countries/iso/:code", handler.GetByISOCode)
		v1.GET("/countries/name/:name", handler.GetByName)
	}

	return router
}
