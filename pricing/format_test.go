package pricing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/models"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₦0"},
		{5000, "₦5,000"},
		{150000, "₦150,000"},
		{1200000, "₦1,200,000"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatPrice(tc.amount))
	}
}

func TestRenderSummaryText(t *testing.T) {
	cat := catalog.Default()
	sel := models.Selection{
		WebsiteTypeId:     "static",
		AddOnIds:          []string{"chat", "whatsapp"},
		MaintenancePlanId: "standard",
	}
	b := ComputeBreakdown(cat, sel)

	got := RenderSummaryText(b)

	want := strings.Join([]string{
		"Website Type: Static Website",
		"One-Time Development Cost: ₦270,000",
		"Monthly Maintenance: ₦28,000",
		"",
		"Selected Add-ons:",
		"• Live Chat System - ₦75,000 (+₦3,000/month)",
		"• WhatsApp Integration - ₦45,000",
		"",
		"Maintenance Plan: Standard Maintenance - ₦20,000/month",
		"",
		"Total First Payment: ₦270,000",
		"Ongoing Monthly: ₦28,000",
	}, "\n")
	require.Equal(t, want, got)
}

func TestRenderSummaryTextEmptySelection(t *testing.T) {
	got := RenderSummaryText(models.Breakdown{})

	require.Contains(t, got, "Website Type: Not selected")
	require.Contains(t, got, "• None")
	require.Contains(t, got, "Maintenance Plan: Not selected - ₦0/month")
	require.Contains(t, got, "Total First Payment: ₦0")
}

func TestRenderSummaryTextIsDeterministic(t *testing.T) {
	cat := catalog.Default()
	sel := models.Selection{
		WebsiteTypeId:     "ecommerce",
		AddOnIds:          []string{"booking-system", "seo-basic"},
		MaintenancePlanId: "premium",
	}
	b := ComputeBreakdown(cat, sel)

	require.Equal(t, RenderSummaryText(b), RenderSummaryText(b))
}

func TestExportFileName(t *testing.T) {
	cat := catalog.Default()
	b := ComputeBreakdown(cat, models.Selection{WebsiteTypeId: "static", MaintenancePlanId: "standard"})
	at := time.UnixMilli(1756600000000)

	require.Equal(t, "website-quote-Static Website-1756600000000.txt", ExportFileName(b, at))
	require.Equal(t, "website-quote-quote-1756600000000.txt", ExportFileName(models.Breakdown{}, at))
}
