package catalog

import "github.com/bmowen/webquote-backend/models"

// Catalog is the read-only set of purchasable website types, add-on services
// and maintenance plans. It is built once at startup and never mutated, so it
// is safe to share across handlers.
type Catalog struct {
	websiteTypes     []models.WebsiteType
	addOns           []models.AddOnService
	maintenancePlans []models.MaintenancePlan

	websiteTypesById     map[string]*models.WebsiteType
	addOnsById           map[string]*models.AddOnService
	maintenancePlansById map[string]*models.MaintenancePlan
}

// DefaultMaintenancePlanId is the tier pre-selected for every new session.
const DefaultMaintenancePlanId = "standard"

func New(
	websiteTypes []models.WebsiteType,
	addOns []models.AddOnService,
	maintenancePlans []models.MaintenancePlan,
) *Catalog {
	c := &Catalog{
		websiteTypes:         websiteTypes,
		addOns:               addOns,
		maintenancePlans:     maintenancePlans,
		websiteTypesById:     make(map[string]*models.WebsiteType, len(websiteTypes)),
		addOnsById:           make(map[string]*models.AddOnService, len(addOns)),
		maintenancePlansById: make(map[string]*models.MaintenancePlan, len(maintenancePlans)),
	}
	for i := range c.websiteTypes {
		c.websiteTypesById[c.websiteTypes[i].Id] = &c.websiteTypes[i]
	}
	for i := range c.addOns {
		c.addOnsById[c.addOns[i].Id] = &c.addOns[i]
	}
	for i := range c.maintenancePlans {
		c.maintenancePlansById[c.maintenancePlans[i].Id] = &c.maintenancePlans[i]
	}
	return c
}

// WebsiteTypes returns the website types in catalog order.
func (c *Catalog) WebsiteTypes() []models.WebsiteType {
	return c.websiteTypes
}

// AddOns returns the add-on services in catalog order. When category is
// non-empty only add-ons of that category are returned.
func (c *Catalog) AddOns(category models.AddOnCategory) []models.AddOnService {
	if category == "" {
		return c.addOns
	}
	out := make([]models.AddOnService, 0, len(c.addOns))
	for _, a := range c.addOns {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) MaintenancePlans() []models.MaintenancePlan {
	return c.maintenancePlans
}

// WebsiteTypeById resolves a website type id. The second return is false on
// an unknown id; lookups never error.
func (c *Catalog) WebsiteTypeById(id string) (*models.WebsiteType, bool) {
	wt, ok := c.websiteTypesById[id]
	return wt, ok
}

func (c *Catalog) AddOnById(id string) (*models.AddOnService, bool) {
	a, ok := c.addOnsById[id]
	return a, ok
}

func (c *Catalog) MaintenancePlanById(id string) (*models.MaintenancePlan, bool) {
	p, ok := c.maintenancePlansById[id]
	return p, ok
}
