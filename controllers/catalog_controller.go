package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/models"
)

// GetCatalog returns the full price list in one response so the frontend can
// boot with a single call.
func GetCatalog(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"websiteTypes":             cat.WebsiteTypes(),
			"addOns":                   cat.AddOns(""),
			"maintenancePlans":         cat.MaintenancePlans(),
			"defaultMaintenancePlanId": catalog.DefaultMaintenancePlanId,
		})
	}
}

func GetWebsiteTypes(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": cat.WebsiteTypes()})
	}
}

// GetAddOns lists add-on services, optionally filtered with ?category=.
// An unknown category simply matches nothing.
func GetAddOns(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := models.AddOnCategory(strings.TrimSpace(c.Query("category")))
		c.JSON(http.StatusOK, gin.H{"items": cat.AddOns(category)})
	}
}

func GetMaintenancePlans(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": cat.MaintenancePlans()})
	}
}
