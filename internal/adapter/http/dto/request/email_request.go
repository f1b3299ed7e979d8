package request

import "yuanli_transport/internal/domain/entities"

// AcceptProposalRequest carries the extraction proposal back after the staff
// member reviewed and possibly edited it in the triage view.
type AcceptProposalRequest struct {
	Proposal entities.ExtractionProposal `json:"proposal" binding:"required"`
}
