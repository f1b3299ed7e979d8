package request

import (
	"time"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase"
)

// InquiryRequest is the public quote-request form payload. Field-level
// validation (required fields, phone and email formats, consent) happens in
// the use case so the caller gets the full map of failures in one response.
type InquiryRequest struct {
	Company         string   `json:"company"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	OriginCity      string   `json:"originCity"`
	OriginAddress   string   `json:"originAddress"`
	DestCity        string   `json:"destCity"`
	DestAddress     string   `json:"destAddress"`
	CargoType       string   `json:"cargoType"`
	CargoDetails    string   `json:"cargoDetails"`
	PickupDate      string   `json:"pickupDate"`
	PickupTime      string   `json:"pickupTime"`
	DeliveryDate    string   `json:"deliveryDate"`
	DeliveryTime    string   `json:"deliveryTime"`
	VehicleMode     string   `json:"vehicleMode"`
	SpecificVehicle string   `json:"specificVehicle"`
	SpecialNeeds    []string `json:"specialNeeds"`
	Notes           string   `json:"notes"`
	Agreed          bool     `json:"agreed"`
}

func (r InquiryRequest) ToCommand() usecase.InquiryCommand {
	return usecase.InquiryCommand{
		Company:         r.Company,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		OriginCity:      r.OriginCity,
		OriginAddress:   r.OriginAddress,
		DestCity:        r.DestCity,
		DestAddress:     r.DestAddress,
		CargoType:       r.CargoType,
		CargoDetails:    r.CargoDetails,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		DeliveryDate:    r.DeliveryDate,
		DeliveryTime:    r.DeliveryTime,
		VehicleMode:     r.VehicleMode,
		SpecificVehicle: r.SpecificVehicle,
		SpecialNeeds:    r.SpecialNeeds,
		Notes:           r.Notes,
		Agreed:          r.Agreed,
	}
}

// ToDraft reuses the same form shape for the autosave slot. SavedAt is
// stamped by the use case, not trusted from the client.
func (r InquiryRequest) ToDraft() entities.InquiryDraft {
	return entities.InquiryDraft{
		Company:         r.Company,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		OriginCity:      r.OriginCity,
		OriginAddress:   r.OriginAddress,
		DestCity:        r.DestCity,
		DestAddress:     r.DestAddress,
		CargoType:       r.CargoType,
		CargoDetails:    r.CargoDetails,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		DeliveryDate:    r.DeliveryDate,
		DeliveryTime:    r.DeliveryTime,
		VehicleMode:     r.VehicleMode,
		SpecificVehicle: r.SpecificVehicle,
		SpecialNeeds:    r.SpecialNeeds,
		Notes:           r.Notes,
		Agreed:          r.Agreed,
		SavedAt:         time.Time{},
	}
}
