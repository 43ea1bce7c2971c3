package pricing

import (
	"github.com/bmowen/webquote-backend/catalog"
	"github.com/bmowen/webquote-backend/models"
)

// ComputeBreakdown resolves a selection against the catalog and returns the
// itemised quote. It never fails: an empty or unknown website type id yields
// a breakdown with no website type and both totals 0, and unknown add-on or
// maintenance plan ids are dropped without contributing to the totals. The
// frontend is the sole producer of ids, but stale ids from an older catalog
// must not break a session.
func ComputeBreakdown(cat *catalog.Catalog, sel models.Selection) models.Breakdown {
	b := models.Breakdown{AddOns: []models.AddOnService{}}

	wt, ok := cat.WebsiteTypeById(sel.WebsiteTypeId)
	if !ok {
		return b
	}
	b.WebsiteType = wt

	seen := make(map[string]bool, len(sel.AddOnIds))
	for _, id := range sel.AddOnIds {
		if seen[id] {
			continue
		}
		seen[id] = true
		if a, ok := cat.AddOnById(id); ok {
			b.AddOns = append(b.AddOns, *a)
		}
	}

	if plan, ok := cat.MaintenancePlanById(sel.MaintenancePlanId); ok {
		b.MaintenancePlan = plan
	}

	b.OneTimeTotal = wt.BasePrice
	b.MonthlyTotal = wt.MonthlyMaintenance
	for _, a := range b.AddOns {
		b.OneTimeTotal += a.Price
		b.MonthlyTotal += a.MonthlyFee
	}
	if b.MaintenancePlan != nil {
		b.MonthlyTotal += b.MaintenancePlan.Price
	}
	return b
}

// ToggleAddOn returns a new selection with the add-on id added if absent or
// removed if present. Applying it twice with the same id returns the
// original set. The input selection is not modified.
func ToggleAddOn(sel models.Selection, id string) models.Selection {
	out := sel
	out.AddOnIds = make([]string, 0, len(sel.AddOnIds)+1)
	removed := false
	for _, existing := range sel.AddOnIds {
		if existing == id {
			removed = true
			continue
		}
		out.AddOnIds = append(out.AddOnIds, existing)
	}
	if !removed {
		out.AddOnIds = append(out.AddOnIds, id)
	}
	return out
}

// NewSelection is the starting state for a session: no website type, no
// add-ons, the default maintenance tier.
func NewSelection() models.Selection {
	return models.Selection{
		AddOnIds:          []string{},
		MaintenancePlanId: catalog.DefaultMaintenancePlanId,
	}
}
