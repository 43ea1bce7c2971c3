package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/dto"
	"github.com/bmowen/webquote-backend/models"
	"github.com/bmowen/webquote-backend/pricing"
)

// PreviewQuote computes the live quote for the current selection.
// POST /quotes/preview, body: SelectionDTO.
func PreviewQuote(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SelectionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		breakdown := pricing.ComputeBreakdown(cat, body.ToSelection())
		c.JSON(http.StatusOK, gin.H{
			"breakdown": breakdown,
			"summary":   pricing.RenderSummaryText(breakdown),
		})
	}
}

// ExportQuote serves the quote document as a text-file download.
// GET /quotes/export?websiteType=static&addOns=chat,whatsapp&maintenancePlan=standard
func ExportQuote(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sel := selectionFromQuery(c)

		if _, ok := cat.WebsiteTypeById(sel.WebsiteTypeId); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or missing websiteType"})
			return
		}

		breakdown := pricing.ComputeBreakdown(cat, sel)
		summary := pricing.RenderSummaryText(breakdown)
		filename := pricing.ExportFileName(breakdown, time.Now())

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(summary))
	}
}

func selectionFromQuery(c *gin.Context) models.Selection {
	addOnIds := []string{}
	for _, id := range strings.Split(c.Query("addOns"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			addOnIds = append(addOnIds, id)
		}
	}

	planId := strings.TrimSpace(c.Query("maintenancePlan"))
	if planId == "" {
		planId = catalog.DefaultMaintenancePlanId
	}

	return models.Selection{
		WebsiteTypeId:     strings.TrimSpace(c.Query("websiteType")),
		AddOnIds:          addOnIds,
		MaintenancePlanId: planId,
	}
}
