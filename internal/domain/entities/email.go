package entities

import "time"

// EmailStatus tracks an inbound inquiry email through triage.
//
// unread -> read happens when the email is opened; read -> processed when a
// quote has been created from it. Emails live only in process memory, they
// are not part of the durable quote collection.

type EmailStatus string

const (
	EmailStatusUnread    EmailStatus = "unread"
	EmailStatusRead      EmailStatus = "read"
	EmailStatusProcessed EmailStatus = "processed"
)

type InboundEmail struct {
	ID         string      `json:"id"`
	From       string      `json:"from"`
	SenderName string      `json:"senderName"`
	Subject    string      `json:"subject"`
	Preview    string      `json:"preview"`
	Content    string      `json:"content"`
	ReceivedAt time.Time   `json:"receivedAt"`
	Status     EmailStatus `json:"status"`
}

// ExtractionProposal is the structured result of analyzing a raw inquiry
// email. The shape mirrors the JSON schema requested from the language model;
// every field is free text and editable before the proposal is accepted.

type ExtractionProposal struct {
	Summary      ProposalSummary      `json:"summary"`
	Customer     ProposalCustomer     `json:"customer"`
	Shipping     ProposalShipping     `json:"shipping"`
	Requirements ProposalRequirements `json:"requirements"`
	FilteredInfo ProposalFilteredInfo `json:"filteredInfo"`
	Workflow     ProposalWorkflow     `json:"workflow"`
	AINotes      []string             `json:"aiNotes"`
}

type ProposalSummary struct {
	Sender        string `json:"sender"`
	Subject       string `json:"subject"`
	Type          string `json:"type"`
	Urgency       string `json:"urgency"`
	UrgencyReason string `json:"urgencyReason"`
}

type ProposalCustomer struct {
	Company       string `json:"company"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
}

type ProposalShipping struct {
	OriginCity       string `json:"originCity"`
	OriginAddress    string `json:"originAddress"`
	DestCity         string `json:"destCity"`
	DestAddress      string `json:"destAddress"`
	DestPort         string `json:"destPort"`
	CargoType        string `json:"cargoType"`
	CargoDescription string `json:"cargoDescription"`
	TotalBoxes       string `json:"totalBoxes"`
	TotalPallets     string `json:"totalPallets"`
	PalletSize       string `json:"palletSize"`
	PalletWeight     string `json:"palletWeight"`
	TotalWeight      string `json:"totalWeight"`
	PickupDate       string `json:"pickupDate"`
	PickupTime       string `json:"pickupTime"`
	DeliveryDate     string `json:"deliveryDate"`
	DeliveryTime     string `json:"deliveryTime"`
	Deadline         string `json:"deadline"`
}

type ProposalRequirements struct {
	VehicleType   string   `json:"vehicleType"`
	VehicleReason string   `json:"vehicleReason"`
	SpecialNeeds  []string `json:"specialNeeds"`
	Equipment     []string `json:"equipment"`
}

type ProposalFilteredInfo struct {
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

type ProposalWorkflow struct {
	Stage             string   `json:"stage"`
	AssignTo          string   `json:"assignTo"`
	AssistDepts       []string `json:"assistDepts"`
	EstimatedPrice    string   `json:"estimatedPrice"`
	EstimatedVehicles string   `json:"estimatedVehicles"`
}
