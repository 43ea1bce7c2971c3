package pricing

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bmowen/webquote-backend/models"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a whole-naira amount for display, e.g. "₦150,000".
// No decimal places; catalog prices carry no kobo.
func FormatPrice(amount int64) string {
	return pricePrinter.Sprintf("₦%d", amount)
}

// RenderSummaryText produces the plain-text quote summary. The same output
// is shown in the preview, written into the export download and embedded in
// the relay payload, so it must stay the single source of that text.
func RenderSummaryText(b models.Breakdown) string {
	var sb strings.Builder

	typeName := "Not selected"
	if b.WebsiteType != nil {
		typeName = b.WebsiteType.Name
	}
	fmt.Fprintf(&sb, "Website Type: %s\n", typeName)
	fmt.Fprintf(&sb, "One-Time Development Cost: %s\n", FormatPrice(b.OneTimeTotal))
	fmt.Fprintf(&sb, "Monthly Maintenance: %s\n", FormatPrice(b.MonthlyTotal))

	sb.WriteString("\nSelected Add-ons:\n")
	if len(b.AddOns) == 0 {
		sb.WriteString("• None\n")
	}
	for _, a := range b.AddOns {
		fmt.Fprintf(&sb, "• %s - %s", a.Name, FormatPrice(a.Price))
		if a.MonthlyFee > 0 {
			fmt.Fprintf(&sb, " (+%s/month)", FormatPrice(a.MonthlyFee))
		}
		sb.WriteString("\n")
	}

	planName := "Not selected"
	var planPrice int64
	if b.MaintenancePlan != nil {
		planName = b.MaintenancePlan.Name
		planPrice = b.MaintenancePlan.Price
	}
	fmt.Fprintf(&sb, "\nMaintenance Plan: %s - %s/month\n", planName, FormatPrice(planPrice))

	fmt.Fprintf(&sb, "\nTotal First Payment: %s\n", FormatPrice(b.OneTimeTotal))
	fmt.Fprintf(&sb, "Ongoing Monthly: %s", FormatPrice(b.MonthlyTotal))

	return sb.String()
}

// ExportFileName names the downloadable quote document, e.g.
// "website-quote-Static Website-1756600000000.txt".
func ExportFileName(b models.Breakdown, at time.Time) string {
	name := "quote"
	if b.WebsiteType != nil {
		name = b.WebsiteType.Name
	}
	return fmt.Sprintf("website-quote-%s-%d.txt", name, at.UnixMilli())
}
