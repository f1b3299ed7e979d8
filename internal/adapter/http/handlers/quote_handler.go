package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "yuanli_transport/internal/adapter/http/dto/request"
	response "yuanli_transport/internal/adapter/http/dto/response"
	"yuanli_transport/internal/domain/entities"
	"yuanli_transport/internal/usecase"
	"yuanli_transport/internal/usecase/interfaces"
	"yuanli_transport/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler serves the admin quote-record endpoints: listing with
// filters, detail, status and business mutations, and the printable
// quotation sheet.

type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	renderer interfaces.IQuotationRenderer
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, renderer interfaces.IQuotationRenderer) *QuoteHandler {
	return &QuoteHandler{usecase: uc, renderer: renderer}
}

// ListQuotes applies the AND-combined query filters: search (free text over
// id, company, contact name and phone), status, and dateRange (today/week).
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	filter := usecase.QuoteFilter{
		Search:    c.Query("search"),
		Status:    c.DefaultQuery("status", "all"),
		DateRange: c.DefaultQuery("dateRange", "all"),
	}

	quotes, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), payload.Version)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// QuickQuote advances a pending record straight to quoted, skipping
// processing. The list view exposes it as a one-click action.
func (h *QuoteHandler) QuickQuote(c *gin.Context) {
	quote, err := h.usecase.QuickQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AdvanceQuote moves a record one step forward along the normal lifecycle.
func (h *QuoteHandler) AdvanceQuote(c *gin.Context) {
	quote, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) AssignHandler(c *gin.Context) {
	var payload request.AssignHandlerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.AssignHandler(c.Request.Context(), c.Param("id"), payload.ResolveHandler())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateBusiness(c *gin.Context) {
	var payload request.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateBusiness(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetQuoteDocument renders the record as a downloadable quotation sheet.
func (h *QuoteHandler) GetQuoteDocument(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.renderer.Render(quote)
	if err != nil {
		appErr := pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Could not render quotation document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation-%s.pdf", quote.ID))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidHandler):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, entities.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("QUOTE_VERSION_CONFLICT", "Quote was modified by another session", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteIDExhausted):
		return pkg.NewDomainError("QUOTE_ID_EXHAUSTED", "Could not allocate a quote id", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
