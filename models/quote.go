package models

// Selection holds the client's current configurator choices. The zero value
// is a valid empty selection.
type Selection struct {
	WebsiteTypeId     string   `json:"websiteTypeId"`
	AddOnIds          []string `json:"addOnIds"`
	MaintenancePlanId string   `json:"maintenancePlanId"`
}

// Breakdown is the itemised quote derived from a Selection. It is never
// stored; it is recomputed from the catalog whenever the selection changes.
// WebsiteType and MaintenancePlan are nil when the corresponding id did not
// resolve.
type Breakdown struct {
	WebsiteType     *WebsiteType     `json:"websiteType,omitempty"`
	AddOns          []AddOnService   `json:"addOns"`
	MaintenancePlan *MaintenancePlan `json:"maintenancePlan,omitempty"`
	OneTimeTotal    int64            `json:"oneTimeTotal"`
	MonthlyTotal    int64            `json:"monthlyTotal"`
}

// AddOnsSubtotal is the one-time cost of the selected add-ons alone.
func (b Breakdown) AddOnsSubtotal() int64 {
	var sum int64
	for _, a := range b.AddOns {
		sum += a.Price
	}
	return sum
}

// AddOnNames returns the selected add-on names in selection order.
func (b Breakdown) AddOnNames() []string {
	names := make([]string, 0, len(b.AddOns))
	for _, a := range b.AddOns {
		names = append(names, a.Name)
	}
	return names
}
