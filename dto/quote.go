package dto

import "github.com/bmowen/webquote-backend/models"

// SelectionDTO mirrors the configurator state sent by the frontend.
type SelectionDTO struct {
	WebsiteTypeId     string   `json:"websiteTypeId"`
	AddOnIds          []string `json:"addOnIds"`
	MaintenancePlanId string   `json:"maintenancePlanId"`
}

func (d SelectionDTO) ToSelection() models.Selection {
	addOns := d.AddOnIds
	if addOns == nil {
		addOns = []string{}
	}
	return models.Selection{
		WebsiteTypeId:     d.WebsiteTypeId,
		AddOnIds:          addOns,
		MaintenancePlanId: d.MaintenancePlanId,
	}
}
