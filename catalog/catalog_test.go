package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmowen/webquote-backend/models"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	require.Len(t, cat.WebsiteTypes(), 5)
	require.Len(t, cat.AddOns(""), 13)
	require.Len(t, cat.MaintenancePlans(), 3)

	_, ok := cat.MaintenancePlanById(DefaultMaintenancePlanId)
	require.True(t, ok, "default maintenance plan must exist in the catalog")
}

func TestWebsiteTypesKeepCatalogOrder(t *testing.T) {
	cat := Default()

	ids := make([]string, 0)
	for _, wt := range cat.WebsiteTypes() {
		ids = append(ids, wt.Id)
	}
	require.Equal(t, []string{"static", "dynamic", "ecommerce", "mobile-app", "web-app"}, ids)
}

func TestAddOnsCategoryFilter(t *testing.T) {
	cat := Default()

	marketing := cat.AddOns(models.AddOnCategoryMarketing)
	require.Len(t, marketing, 3)
	for _, a := range marketing {
		require.Equal(t, models.AddOnCategoryMarketing, a.Category)
	}

	require.Empty(t, cat.AddOns("no-such-category"))
}

func TestLookupsNeverError(t *testing.T) {
	cat := Default()

	wt, ok := cat.WebsiteTypeById("static")
	require.True(t, ok)
	require.Equal(t, int64(150000), wt.BasePrice)
	require.Equal(t, int64(5000), wt.MonthlyMaintenance)

	_, ok = cat.WebsiteTypeById("missing")
	require.False(t, ok)

	addOn, ok := cat.AddOnById("chat")
	require.True(t, ok)
	require.Equal(t, int64(75000), addOn.Price)
	require.Equal(t, int64(3000), addOn.MonthlyFee)

	_, ok = cat.AddOnById("")
	require.False(t, ok)

	plan, ok := cat.MaintenancePlanById("standard")
	require.True(t, ok)
	require.Equal(t, int64(20000), plan.Price)

	_, ok = cat.MaintenancePlanById("gold")
	require.False(t, ok)
}
