package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrExtractorNotConfigured = errors.New("email extractor not configured")
var ErrEmptyModelResponse = errors.New("empty model response")

const extractionModel = "gemini-2.5-flash"

// GeminiExtractor analyzes raw inquiry emails with the Gemini API and
// returns a structured proposal. With EXTRACTOR_MOCK enabled it produces a
// deterministic canned proposal instead of calling the API, which keeps
// local development and CI offline.

type GeminiExtractor struct {
	client   *genai.Client
	mockMode bool
}

var _ interfaces.IEmailExtractor = (*GeminiExtractor)(nil)

func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	if isExtractorMockEnabled() {
		log.Printf("[email][extractor] mock mode enabled")
		return &GeminiExtractor{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[email][extractor] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[email][extractor] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[email][extractor] Gemini client initialized model=%s", extractionModel)

	return &GeminiExtractor{client: client}, nil
}

func (e *GeminiExtractor) Analyze(ctx context.Context, emailText string) (entities.ExtractionProposal, error) {
	if e != nil && e.mockMode {
		log.Printf("[email][extractor] mock analyze start text_len=%d", len(emailText))
		return mockProposal(emailText), nil
	}

	if e == nil || e.client == nil {
		log.Printf("[email][extractor] extractor not configured")
		return entities.ExtractionProposal{}, ErrExtractorNotConfigured
	}
	log.Printf("[email][extractor] analyze start text_len=%d", len(emailText))

	prompt := fmt.Sprintf(`請作為一位專業的物流業務助理,分析以下客戶詢價郵件,提取運輸需求並以 JSON 格式回傳。

郵件內容:
%s

分析重點:
1. 識別並過濾「客戶的上游訂單資訊」,只提取與「實際運輸」相關的資訊。
2. 產品規格、價格、付款條件等商業資訊都屬於無關資訊。
3. 特別注意時間的緊迫性。
4. 精密貨物建議氣墊車;大型貨物建議歐翼車;出口貨物注意報關需求。`, emailText)

	resp, err := e.client.Models.GenerateContent(ctx, extractionModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   proposalSchema(),
	})
	if err != nil {
		log.Printf("[email][extractor] generate content failed err=%v", err)
		return entities.ExtractionProposal{}, err
	}

	text := resp.Text()
	if text == "" {
		log.Printf("[email][extractor] model returned no text")
		return entities.ExtractionProposal{}, ErrEmptyModelResponse
	}

	var proposal entities.ExtractionProposal
	if err := json.Unmarshal([]byte(text), &proposal); err != nil {
		log.Printf("[email][extractor] proposal unmarshal failed err=%v", err)
		return entities.ExtractionProposal{}, err
	}
	log.Printf("[email][extractor] analyze success urgency=%s vehicle=%s",
		proposal.Summary.Urgency, proposal.Requirements.VehicleType)

	return proposal, nil
}

// proposalSchema mirrors entities.ExtractionProposal so the model is forced
// into the exact shape the triage view edits.
func proposalSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	strList := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sender":        str(""),
					"subject":       str(""),
					"type":          str("運輸類型 (國內運輸/出口運輸/展覽運輸/精密運輸)"),
					"urgency":       {Type: genai.TypeString, Enum: []string{"低", "中", "高"}},
					"urgencyReason": str(""),
				},
			},
			"customer": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"company":       str(""),
					"contactPerson": str(""),
					"phone":         str(""),
					"email":         str(""),
					"mobile":        str(""),
				},
			},
			"shipping": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"originCity":       str(""),
					"originAddress":    str(""),
					"destCity":         str(""),
					"destAddress":      str(""),
					"destPort":         str(""),
					"cargoType":        str(""),
					"cargoDescription": str(""),
					"totalBoxes":       str(""),
					"totalPallets":     str(""),
					"palletSize":       str(""),
					"palletWeight":     str(""),
					"totalWeight":      str(""),
					"pickupDate":       str(""),
					"pickupTime":       str(""),
					"deliveryDate":     str(""),
					"deliveryTime":     str(""),
					"deadline":         str(""),
				},
			},
			"requirements": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"vehicleType":   str(""),
					"vehicleReason": str(""),
					"specialNeeds":  strList,
					"equipment":     strList,
				},
			},
			"filteredInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": str(""),
					"items":       strList,
				},
			},
			"workflow": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"stage":             str(""),
					"assignTo":          str(""),
					"assistDepts":       strList,
					"estimatedPrice":    str(""),
					"estimatedVehicles": str(""),
				},
			},
			"aiNotes": strList,
		},
	}
}

func mockProposal(emailText string) entities.ExtractionProposal {
	urgency := "中"
	urgencyReason := "郵件未標示急迫性"
	if strings.Contains(emailText, "急") {
		urgency = "高"
		urgencyReason = "郵件中出現急件字樣"
	}

	return entities.ExtractionProposal{
		Summary: entities.ProposalSummary{
			Type:          "國內運輸",
			Urgency:       urgency,
			UrgencyReason: urgencyReason,
		},
		Shipping: entities.ProposalShipping{
			CargoType: "一般貨物",
		},
		Requirements: entities.ProposalRequirements{
			VehicleType:   "建議車型",
			VehicleReason: "離線模式預設建議",
			SpecialNeeds:  []string{},
			Equipment:     []string{},
		},
		FilteredInfo: entities.ProposalFilteredInfo{
			Description: "離線模式未過濾任何資訊",
			Items:       []string{},
		},
		Workflow: entities.ProposalWorkflow{
			Stage:          "待報價",
			AssignTo:       "陳經理",
			AssistDepts:    []string{},
			EstimatedPrice: "NT$ 10,000",
		},
		AINotes: []string{"此結果由離線模式產生,僅供開發測試使用"},
	}
}

func isExtractorMockEnabled() bool {
	for _, key := range []string{"EXTRACTOR_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
