package models

// AddOnCategory groups add-on services for display.
type AddOnCategory string

const (
	AddOnCategoryFeature     AddOnCategory = "feature"
	AddOnCategoryIntegration AddOnCategory = "integration"
	AddOnCategoryMaintenance AddOnCategory = "maintenance"
	AddOnCategoryMarketing   AddOnCategory = "marketing"
)

// WebsiteType is one of the base website packages a client can order.
// All prices are whole naira, no kobo.
type WebsiteType struct {
	Id                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	BasePrice          int64    `json:"basePrice"`
	MonthlyMaintenance int64    `json:"monthlyMaintenance"`
	Features           []string `json:"features"`
	DeliveryTime       string   `json:"deliveryTime"`
	Popular            bool     `json:"popular,omitempty"`
}

// AddOnService is an optional extra on top of a website type.
// MonthlyFee is 0 when the add-on has no recurring cost.
type AddOnService struct {
	Id          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	MonthlyFee  int64         `json:"monthlyFee,omitempty"`
	Category    AddOnCategory `json:"category"`
}

type MaintenancePlan struct {
	Id       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Features []string `json:"features"`
}
