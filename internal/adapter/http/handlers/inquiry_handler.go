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
	errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry payload", http.StatusBadRequest)
)

// InquiryHandler serves the public quote-request form: submission and the
// single autosave draft slot.

type InquiryHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewInquiryHandler(uc usecase.IQuoteUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// SubmitInquiry validates and persists a new quote request. Validation is
// all-or-nothing: any field failure returns the full per-field message map
// and nothing is stored.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SubmitInquiry(c.Request.Context(), payload.ToCommand())
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
				Code:    "INQUIRY_VALIDATION_FAILED",
				Message: "Inquiry validation failed",
				Fields:  vErr.Fields,
			})
			return
		}
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *InquiryHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.GetDraft(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// SaveDraft overwrites the autosave slot unconditionally.
func (h *InquiryHandler) SaveDraft(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SaveDraft(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *InquiryHandler) ClearDraft(c *gin.Context) {
	if err := h.usecase.ClearDraft(c.Request.Context()); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
