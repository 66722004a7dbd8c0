package submitter

import (
	"context"

	"github.com/bmahler/estate-portal/api/internal/services"
	"github.com/bmahler/estate-portal/api/internal/webhook"
)

// webhookBackend submits leads to the third-party webhook receiver.
type webhookBackend struct {
	client webhook.Client
}

// NewWebhookBackend creates a Backend over the webhook client.
func NewWebhookBackend(client webhook.Client) Backend {
	return &webhookBackend{client: client}
}

func (b *webhookBackend) Submit(ctx context.Context, in services.CreateInquiryInput) error {
	lead := webhook.Lead{
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Contact,
		PropertyType:      in.PropertyType,
		BudgetRange:       in.BudgetRange,
		City:              in.PreferredLocation,
		Timeline:          in.Timeline,
		Needs:             in.Needs,
		AdditionalDetails: in.AdditionalDetails,
	}

	result, err := b.client.Submit(ctx, lead)
	if err != nil {
		// Surface the receiver's own message when it sent one.
		if result != nil && result.Message != "" {
			return &RejectionError{Message: result.Message}
		}
		return err
	}
	return nil
}

// serviceBackend submits inquiries straight through the inquiry service,
// the in-process equivalent of the database-direct client variant.
type serviceBackend struct {
	svc services.InquiryService
}

// NewServiceBackend creates a Backend over the inquiry service.
func NewServiceBackend(svc services.InquiryService) Backend {
	return &serviceBackend{svc: svc}
}

func (b *serviceBackend) Submit(ctx context.Context, in services.CreateInquiryInput) error {
	_, err := b.svc.Create(ctx, in)
	return err
}
