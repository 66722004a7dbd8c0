package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bmahler/estate-portal/api/internal/logger"
	"github.com/bmahler/estate-portal/api/internal/metrics"
	"github.com/bmahler/estate-portal/api/internal/models"
	"github.com/bmahler/estate-portal/api/internal/repository"
	"github.com/bmahler/estate-portal/api/internal/validation"
)

// ErrInquiryNotFound is returned when the requested inquiry id has no
// matching row.
var ErrInquiryNotFound = errors.New("inquiry not found")

// CreateInquiryInput carries the client-supplied inquiry fields. The id
// and submitted_at columns are never client-supplied.
type CreateInquiryInput struct {
	Name              string
	Email             string
	Contact           string
	Needs             string
	PropertyType      *string
	BudgetRange       *string
	PreferredLocation *string
	Timeline          *string
	AdditionalDetails *string
	Industry          *string
	Zipcode           *string
}

// InquiryService defines the business logic over inquiry records.
type InquiryService interface {
	// Create validates and stores a new inquiry.
	// Returns a validation sentinel (validation.ErrMissingRequired,
	// validation.ErrInvalidEmail, validation.ErrInvalidEnum) before any
	// store call is made; store failures are wrapped and passed through.
	Create(ctx context.Context, in CreateInquiryInput) (*models.Inquiry, error)

	// List returns all inquiries, newest first. Empty slice when none.
	List(ctx context.Context) ([]models.Inquiry, error)

	// Get returns one inquiry by id. Returns ErrInquiryNotFound when the
	// id has no matching row.
	Get(ctx context.Context, id int64) (*models.Inquiry, error)

	// Delete removes one inquiry by id and returns the deleted record.
	// Returns ErrInquiryNotFound when the id has no matching row.
	Delete(ctx context.Context, id int64) (*models.Inquiry, error)
}

type inquiryService struct {
	repo repository.InquiryRepository
	log  *logger.Logger
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(repo repository.InquiryRepository, log *logger.Logger) InquiryService {
	return &inquiryService{
		repo: repo,
		log:  log,
	}
}

// Create normalizes the input, runs the shared validator, and inserts the
// record. Validation failures never reach the store.
func (s *inquiryService) Create(ctx context.Context, in CreateInquiryInput) (*models.Inquiry, error) {
	normalized := normalize(in)

	if err := validation.Validate(validation.Input{
		Name:         normalized.Name,
		Email:        normalized.Email,
		Contact:      normalized.Contact,
		Needs:        normalized.Needs,
		PropertyType: normalized.PropertyType,
		BudgetRange:  normalized.BudgetRange,
		Timeline:     normalized.Timeline,
		Industry:     normalized.Industry,
	}); err != nil {
		s.log.Warn("Inquiry rejected by validator", map[string]interface{}{
			"reason": err.Error(),
			"email":  normalized.Email,
		})
		return nil, err
	}

	stored, err := s.repo.Insert(ctx, models.Inquiry{
		Name:              normalized.Name,
		Email:             normalized.Email,
		Contact:           normalized.Contact,
		Needs:             normalized.Needs,
		PropertyType:      normalized.PropertyType,
		BudgetRange:       normalized.BudgetRange,
		PreferredLocation: normalized.PreferredLocation,
		Timeline:          normalized.Timeline,
		AdditionalDetails: normalized.AdditionalDetails,
		Industry:          normalized.Industry,
		Zipcode:           normalized.Zipcode,
	})
	if err != nil {
		s.log.Error("Failed to insert inquiry", err, map[string]interface{}{
			"email": normalized.Email,
		})
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	metrics.IncInquiriesCreated()
	s.log.Info("Inquiry created", map[string]interface{}{
		"inquiry_id": stored.ID,
		"email":      stored.Email,
	})

	return stored, nil
}

func (s *inquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list inquiries", err, nil)
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	s.log.Debug("Inquiries listed", map[string]interface{}{
		"count": len(inquiries),
	})

	return inquiries, nil
}

func (s *inquiryService) Get(ctx context.Context, id int64) (*models.Inquiry, error) {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug("Inquiry not found", map[string]interface{}{
				"inquiry_id": id,
			})
			return nil, ErrInquiryNotFound
		}
		s.log.Error("Failed to get inquiry", err, map[string]interface{}{
			"inquiry_id": id,
		})
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return inquiry, nil
}

func (s *inquiryService) Delete(ctx context.Context, id int64) (*models.Inquiry, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debug("Inquiry not found for deletion", map[string]interface{}{
				"inquiry_id": id,
			})
			return nil, ErrInquiryNotFound
		}
		s.log.Error("Failed to delete inquiry", err, map[string]interface{}{
			"inquiry_id": id,
		})
		return nil, fmt.Errorf("failed to delete inquiry: %w", err)
	}

	metrics.IncInquiriesDeleted()
	s.log.Info("Inquiry deleted", map[string]interface{}{
		"inquiry_id": deleted.ID,
	})

	return deleted, nil
}

// normalize trims every textual field and collapses empty optional values
// to nil so an optional column is either NULL or a non-empty trimmed
// string, never "".
func normalize(in CreateInquiryInput) CreateInquiryInput {
	return CreateInquiryInput{
		Name:              strings.TrimSpace(in.Name),
		Email:             strings.TrimSpace(in.Email),
		Contact:           strings.TrimSpace(in.Contact),
		Needs:             strings.TrimSpace(in.Needs),
		PropertyType:      trimOptional(in.PropertyType),
		BudgetRange:       trimOptional(in.BudgetRange),
		PreferredLocation: trimOptional(in.PreferredLocation),
		Timeline:          trimOptional(in.Timeline),
		AdditionalDetails: trimOptional(in.AdditionalDetails),
		Industry:          trimOptional(in.Industry),
		Zipcode:           trimOptional(in.Zipcode),
	}
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
