package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"quotedesk/collections"
	"quotedesk/handlers"
	"quotedesk/layout"
	"quotedesk/services"
)

func main() {
	app := pocketbase.New()

	style := layout.DefaultStyle()
	var maxRenders int

	flags := app.RootCmd.PersistentFlags()
	flags.StringVar(&style.Institution, "org-name", style.Institution, "institution name printed in the quote header")
	flags.StringVar(&style.Subtitle, "org-subtitle", style.Subtitle, "subtitle printed under the institution name")
	flags.StringVar(&style.Signatory, "signatory", style.Signatory, "organization printed under the signature line")
	flags.StringVar(&style.Locale, "locale", style.Locale, "BCP 47 locale used for number grouping (en, id, ...)")
	flags.IntVar(&maxRenders, "max-renders", 0, "maximum concurrent PDF renders (0 = number of CPUs)")

	newRenderer := func() (*services.QuoteRenderer, error) {
		return services.NewQuoteRenderer(style, services.WithMaxConcurrent(maxRenders))
	}

	app.RootCmd.AddCommand(newRenderCmd(app, newRenderer))

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		renderer, err := newRenderer()
		if err != nil {
			return fmt.Errorf("failed to configure quote renderer: %w", err)
		}

		// ── Quote export ────────────────────────────────────────
		se.Router.GET("/quotes/{id}/pdf", handlers.HandleQuoteExportPDF(app, renderer))
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app, renderer))

		// ── Pricing ─────────────────────────────────────────────
		se.Router.POST("/quotes/estimate", handlers.HandleQuoteEstimate())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// newRenderCmd writes one PDF per quote id into the output directory.
func newRenderCmd(app *pocketbase.PocketBase, newRenderer func() (*services.QuoteRenderer, error)) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render <quote-id>...",
		Short: "Render stored quotes to PDF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collections.Setup(app)

			renderer, err := newRenderer()
			if err != nil {
				return fmt.Errorf("failed to configure quote renderer: %w", err)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			for _, id := range args {
				g.Go(func() error {
					q, err := services.BuildQuotation(app, id)
					if err != nil {
						return err
					}
					pdfBytes, err := renderer.GeneratePDF(ctx, q)
					if err != nil {
						return fmt.Errorf("quote %s: %w", id, err)
					}
					path := filepath.Join(outDir, "quote-"+id+".pdf")
					if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
						return fmt.Errorf("failed to write %s: %w", path, err)
					}
					log.Printf("render: wrote %s (%d bytes)", path, len(pdfBytes))
					return nil
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory the PDF files are written to")
	return cmd
}
