package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quotedesk/services"
)

// HandleQuoteEstimate prices a JSON list of items without storing anything.
func HandleQuoteEstimate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.EstimateRequest
		if err := e.BindBody(&req); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		est, err := services.EstimateQuote(req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidQuote) {
				return e.String(http.StatusBadRequest, err.Error())
			}
			log.Printf("quote_estimate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to estimate quote")
		}

		return e.JSON(http.StatusOK, est)
	}
}
