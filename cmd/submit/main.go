// Command submit sends one property inquiry from the command line, either
// to the third-party webhook receiver or straight into the database. It is
// the headless counterpart of the portal's lead form.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bmahler/estate-portal/api/internal/config"
	"github.com/bmahler/estate-portal/api/internal/database"
	"github.com/bmahler/estate-portal/api/internal/logger"
	"github.com/bmahler/estate-portal/api/internal/repository"
	"github.com/bmahler/estate-portal/api/internal/services"
	"github.com/bmahler/estate-portal/api/internal/submitter"
	"github.com/bmahler/estate-portal/api/internal/webhook"
)

const submitTimeout = 30 * time.Second

// consoleSink renders submission status to stdout.
type consoleSink struct{}

func (consoleSink) ShowMessage(text string, kind submitter.MessageKind) {
	fmt.Printf("[%s] %s\n", kind, text)
}

// HideMessage and ResetForm are no-ops: the process exits right after the
// submission, so there is nothing to hide or clear.
func (consoleSink) HideMessage() {}
func (consoleSink) ResetForm()   {}

func main() {
	mode := flag.String("mode", "webhook", "submission mode: webhook or database")
	name := flag.String("name", "", "customer full name (required)")
	email := flag.String("email", "", "customer email address (required)")
	contact := flag.String("contact", "", "customer phone number (required)")
	needs := flag.String("needs", "", "description of real estate requirements (required)")
	propertyType := flag.String("property-type", "", "property type (Residential, Commercial, Industrial, Land)")
	budgetRange := flag.String("budget-range", "", "budget range (Under $100K, $100K-$500K, $500K-$1M, $1M+)")
	location := flag.String("location", "", "preferred location or area")
	timeline := flag.String("timeline", "", "timeline (Immediate, 1-3 months, 3-6 months, 6+ months)")
	details := flag.String("details", "", "additional details")
	industry := flag.String("industry", "", "customer industry")
	zipcode := flag.String("zipcode", "", "customer zip code")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	backend, cleanup, err := buildBackend(ctx, cfg, log, *mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	sub := submitter.New(backend, consoleSink{}, log)

	err = sub.Submit(ctx, submitter.FormData{
		Name:              *name,
		Email:             *email,
		Contact:           *contact,
		Needs:             *needs,
		PropertyType:      *propertyType,
		BudgetRange:       *budgetRange,
		PreferredLocation: *location,
		Timeline:          *timeline,
		AdditionalDetails: *details,
		Industry:          *industry,
		Zipcode:           *zipcode,
	})
	if err != nil {
		os.Exit(1)
	}
}

// buildBackend wires the requested submission backend. The returned
// cleanup closes any resources the backend holds.
func buildBackend(ctx context.Context, cfg *config.Config, log *logger.Logger, mode string) (submitter.Backend, func(), error) {
	switch mode {
	case "webhook":
		if err := cfg.ValidateWebhook(); err != nil {
			return nil, nil, fmt.Errorf("webhook mode: %w", err)
		}
		client := webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.APIKey)
		return submitter.NewWebhookBackend(client), func() {}, nil

	case "database":
		db, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database mode: %w", err)
		}
		repo := repository.NewInquiryRepository(db, cfg.Database.Table)
		svc := services.NewInquiryService(repo, log)
		return submitter.NewServiceBackend(svc), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown mode %q: expected webhook or database", mode)
	}
}
