// Package submitter implements the form submission controller: validate,
// send through one backend, surface a transient status message, and
// always return to the idle state.
package submitter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bmahler/estate-portal/api/internal/logger"
	"github.com/bmahler/estate-portal/api/internal/services"
	"github.com/bmahler/estate-portal/api/internal/validation"
)

// DefaultMessageDuration is how long a status message stays visible.
const DefaultMessageDuration = 8 * time.Second

// User-facing status messages.
const (
	msgSubmitSuccess = "Inquiry submitted successfully! Our team will contact you soon."
	msgMissingFields = "Please fill in all required fields: Name, Email, Phone, and Requirements."
	msgBadEmail      = "Please enter a valid email address."
	msgBackendDown   = "Unable to reach the submission backend. Please try again later."
)

// ErrSubmissionInFlight is returned when a submission is attempted while
// another one is still running. The UI equivalent is a disabled submit
// button.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// MessageKind classifies a status message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// StatusSink receives the controller's UI effects: transient messages and
// the form reset after a successful submission.
type StatusSink interface {
	ShowMessage(text string, kind MessageKind)
	HideMessage()
	ResetForm()
}

// Backend is one submission target: the third-party webhook or the
// inquiry service over the database.
type Backend interface {
	Submit(ctx context.Context, in services.CreateInquiryInput) error
}

// RejectionError carries a provider-supplied failure message suitable for
// direct display. Backends wrap application-level rejections with it;
// everything else is shown as a generic failure.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// FormData is the raw field set gathered from the form. Optional fields
// are empty strings when absent.
type FormData struct {
	Name              string
	Email             string
	Contact           string
	Needs             string
	PropertyType      string
	BudgetRange       string
	PreferredLocation string
	Timeline          string
	AdditionalDetails string
	Industry          string
	Zipcode           string
}

// Submitter drives one form instance through idle -> submitting -> idle.
type Submitter struct {
	backend Backend
	sink    StatusSink
	log     *logger.Logger

	messageDuration time.Duration

	mu         sync.Mutex
	submitting bool
	hideTimer  *time.Timer
}

// New creates a Submitter over the given backend and status sink.
func New(backend Backend, sink StatusSink, log *logger.Logger) *Submitter {
	return &Submitter{
		backend:         backend,
		sink:            sink,
		log:             log,
		messageDuration: DefaultMessageDuration,
	}
}

// Submit runs one submission. Validation failures never reach the
// backend; exactly one backend call is made otherwise. The controller
// returns to idle on every path.
func (s *Submitter) Submit(ctx context.Context, form FormData) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.submitting = true
	s.mu.Unlock()

	// Re-enable regardless of which branch ran.
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	in := form.toInput()

	if err := validation.Validate(validation.Input{
		Name:         in.Name,
		Email:        in.Email,
		Contact:      in.Contact,
		Needs:        in.Needs,
		PropertyType: in.PropertyType,
		BudgetRange:  in.BudgetRange,
		Timeline:     in.Timeline,
		Industry:     in.Industry,
	}); err != nil {
		s.log.Warn("Submission rejected by validator", map[string]interface{}{
			"reason": err.Error(),
		})
		s.show(validationMessage(err), MessageError)
		return err
	}

	if err := s.backend.Submit(ctx, in); err != nil {
		s.log.Error("Submission failed", err, map[string]interface{}{
			"email": in.Email,
		})
		s.show(failureMessage(err), MessageError)
		return err
	}

	s.log.Info("Submission accepted", map[string]interface{}{
		"email": in.Email,
	})
	s.sink.ResetForm()
	s.show(msgSubmitSuccess, MessageSuccess)
	return nil
}

// show displays a transient message. A pending hide from an earlier
// message is cancelled so a stale timer cannot hide a newer message.
func (s *Submitter) show(text string, kind MessageKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hideTimer != nil {
		s.hideTimer.Stop()
	}
	s.sink.ShowMessage(text, kind)
	s.hideTimer = time.AfterFunc(s.messageDuration, s.sink.HideMessage)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrMissingRequired):
		return msgMissingFields
	case errors.Is(err, validation.ErrInvalidEmail):
		return msgBadEmail
	default:
		return err.Error()
	}
}

func failureMessage(err error) string {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message
	}
	return msgBackendDown
}

// toInput trims every field and drops empty optional values.
func (f FormData) toInput() services.CreateInquiryInput {
	return services.CreateInquiryInput{
		Name:              strings.TrimSpace(f.Name),
		Email:             strings.TrimSpace(f.Email),
		Contact:           strings.TrimSpace(f.Contact),
		Needs:             strings.TrimSpace(f.Needs),
		PropertyType:      optional(f.PropertyType),
		BudgetRange:       optional(f.BudgetRange),
		PreferredLocation: optional(f.PreferredLocation),
		Timeline:          optional(f.Timeline),
		AdditionalDetails: optional(f.AdditionalDetails),
		Industry:          optional(f.Industry),
		Zipcode:           optional(f.Zipcode),
	}
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
