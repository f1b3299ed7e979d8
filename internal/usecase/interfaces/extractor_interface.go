package interfaces

import (
	"context"

	"yuanli_transport/internal/domain/entities"
)

// IEmailExtractor turns raw email text into a structured shipment proposal.
// The concrete backend is an external language-model service; failures are
// returned as-is and reported to the operator, there is no automatic retry.

type IEmailExtractor interface {
	Analyze(ctx context.Context, emailText string) (entities.ExtractionProposal, error)
}

// IQuotationRenderer produces the downloadable quotation document for a
// quote record. Write-only sink: nothing is read back from the artifact.

type IQuotationRenderer interface {
	Render(q entities.Quote) ([]byte, error)
}
