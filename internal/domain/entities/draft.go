package entities

import "time"

// InquiryDraft is the single autosave slot for an in-progress public inquiry
// form. It keeps the raw form shape, not the Quote shape: a draft has not
// passed validation and never feeds the quote collection directly. Saving
// overwrites the previous draft unconditionally; a successful submission
// clears it.

type InquiryDraft struct {
	Company         string    `json:"company"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	OriginCity      string    `json:"originCity"`
	OriginAddress   string    `json:"originAddress"`
	DestCity        string    `json:"destCity"`
	DestAddress     string    `json:"destAddress"`
	CargoType       string    `json:"cargoType"`
	CargoDetails    string    `json:"cargoDetails"`
	PickupDate      string    `json:"pickupDate"`
	PickupTime      string    `json:"pickupTime"`
	DeliveryDate    string    `json:"deliveryDate"`
	DeliveryTime    string    `json:"deliveryTime"`
	VehicleMode     string    `json:"vehicleMode"`
	SpecificVehicle string    `json:"specificVehicle"`
	SpecialNeeds    []string  `json:"specialNeeds"`
	Notes           string    `json:"notes"`
	Agreed          bool      `json:"agreed"`
	SavedAt         time.Time `json:"savedAt"`
}

func (d InquiryDraft) Empty() bool {
	return d.SavedAt.IsZero()
}
