package handlers

import (
	"errors"
	"net/http"

	request "yuanli_transport/internal/adapter/http/dto/request"
	response "yuanli_transport/internal/adapter/http/dto/response"
	"yuanli_transport/internal/usecase"
	"yuanli_transport/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// EmailTriageHandler serves the AI email triage flow: mailbox listing,
// opening an email, running the extraction, and accepting a proposal as a
// new quote record.

type EmailTriageHandler struct {
	usecase usecase.IEmailTriageUseCase
}

func NewEmailTriageHandler(uc usecase.IEmailTriageUseCase) *EmailTriageHandler {
	return &EmailTriageHandler{usecase: uc}
}

func (h *EmailTriageHandler) ListEmails(c *gin.Context) {
	emails, err := h.usecase.ListEmails(c.Request.Context(), c.DefaultQuery("view", "all"))
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmails(emails))
}

// OpenEmail returns the full email body and marks an unread email as read.
func (h *EmailTriageHandler) OpenEmail(c *gin.Context) {
	email, err := h.usecase.OpenEmail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmailDetail(email))
}

// AnalyzeEmail runs the extraction and returns the editable proposal. The
// email itself is not modified; nothing is persisted until the proposal is
// accepted.
func (h *EmailTriageHandler) AnalyzeEmail(c *gin.Context) {
	emailID := c.Param("id")
	proposal, err := h.usecase.AnalyzeEmail(c.Request.Context(), emailID)
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AnalyzeResponse{EmailID: emailID, Proposal: proposal})
}

// CreateQuoteFromEmail accepts a reviewed proposal, creating a quote record
// and marking the email processed.
func (h *EmailTriageHandler) CreateQuoteFromEmail(c *gin.Context) {
	var payload request.AcceptProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuoteFromProposal(c.Request.Context(), c.Param("id"), payload.Proposal)
	if err != nil {
		appErr := mapEmailError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func mapEmailError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmailID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailNotFound):
		return pkg.NewDomainErrorSimple("EMAIL_NOT_FOUND", "Email not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailAlreadyProcessed):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_PROCESSED", "Email was already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainError("EMAIL_ANALYSIS_FAILED", "Email analysis failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrQuoteIDExhausted):
		return pkg.NewDomainError("QUOTE_ID_EXHAUSTED", "Could not allocate a quote id", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
