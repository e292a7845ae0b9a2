package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotedesk/layout"
	"quotedesk/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// loadQuotation resolves the {id} path value into a quotation, writing the
// error response itself when it returns ok == false.
func loadQuotation(e *core.RequestEvent, app *pocketbase.PocketBase, area string) (q layout.Quotation, ok bool, err error) {
	id := e.Request.PathValue("id")
	if id == "" {
		return q, false, e.String(http.StatusBadRequest, "Missing quote ID")
	}

	q, err = services.BuildQuotation(app, id)
	switch {
	case err == nil:
		return q, true, nil
	case errors.Is(err, services.ErrQuoteNotFound):
		log.Printf("%s: %v", area, err)
		return q, false, e.String(http.StatusNotFound, "Quote not found")
	case errors.Is(err, services.ErrInvalidQuote):
		log.Printf("%s: %v", area, err)
		return q, false, e.String(http.StatusUnprocessableEntity, "Quote data is invalid")
	default:
		log.Printf("%s: failed to load quote %s: %v", area, id, err)
		return q, false, e.String(http.StatusInternalServerError, "Failed to load quote")
	}
}

// HandleQuoteExportPDF returns a handler that renders a quote as an inline PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase, renderer *services.QuoteRenderer) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok, err := loadQuotation(e, app, "quote_pdf")
		if !ok {
			return err
		}

		pdfBytes, err := renderer.GeneratePDF(e.Request.Context(), q)
		if err != nil {
			log.Printf("quote_pdf: failed to generate PDF for %s: %v", q.ID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("quote-%s.pdf", sanitizeFilename(q.ID))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
		e.Response.Header().Set("Cache-Control", "no-store")
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel returns a handler that downloads a quote as xlsx.
func HandleQuoteExportExcel(app *pocketbase.PocketBase, renderer *services.QuoteRenderer) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok, err := loadQuotation(e, app, "quote_excel")
		if !ok {
			return err
		}

		excelBytes, err := renderer.GenerateExcel(q)
		if err != nil {
			log.Printf("quote_excel: failed to generate Excel for %s: %v", q.ID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("quote-%s.xlsx", sanitizeFilename(q.ID))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Header().Set("Cache-Control", "no-store")
		e.Response.Write(excelBytes)
		return nil
	}
}
