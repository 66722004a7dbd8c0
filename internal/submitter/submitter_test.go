package submitter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmahler/estate-portal/api/internal/logger"
	"github.com/bmahler/estate-portal/api/internal/services"
	"github.com/bmahler/estate-portal/api/internal/validation"
)

// recordingSink captures all UI effects for assertions.
type recordingSink struct {
	mu        sync.Mutex
	messages  []string
	kinds     []MessageKind
	hides     int
	formReset int
}

func (s *recordingSink) ShowMessage(text string, kind MessageKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, text)
	s.kinds = append(s.kinds, kind)
}

func (s *recordingSink) HideMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hides++
}

func (s *recordingSink) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formReset++
}

func (s *recordingSink) lastMessage() (string, MessageKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return "", ""
	}
	return s.messages[len(s.messages)-1], s.kinds[len(s.kinds)-1]
}

func (s *recordingSink) hideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hides
}

// fakeBackend records submissions and returns a configured error.
// A non-nil gate blocks Submit until the gate is closed.
type fakeBackend struct {
	mu    sync.Mutex
	calls []services.CreateInquiryInput
	err   error
	gate  chan struct{}
}

func (b *fakeBackend) Submit(ctx context.Context, in services.CreateInquiryInput) error {
	b.mu.Lock()
	b.calls = append(b.calls, in)
	b.mu.Unlock()
	if b.gate != nil {
		<-b.gate
	}
	return b.err
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func validForm() FormData {
	return FormData{
		Name:    "John Doe",
		Email:   "john@example.com",
		Contact: "+1234567890",
		Needs:   "Looking for a 3-bedroom apartment",
	}
}

func TestSubmit_Success(t *testing.T) {
	backend := &fakeBackend{}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	err := sub.Submit(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, 1, backend.callCount())
	assert.Equal(t, 1, sink.formReset)

	msg, kind := sink.lastMessage()
	assert.Equal(t, msgSubmitSuccess, msg)
	assert.Equal(t, MessageSuccess, kind)
}

func TestSubmit_TrimsFieldsBeforeSending(t *testing.T) {
	backend := &fakeBackend{}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	form := validForm()
	form.Name = "  John Doe  "
	form.PreferredLocation = "  Downtown  "
	form.Zipcode = "   " // whitespace-only drops to nil

	err := sub.Submit(context.Background(), form)
	require.NoError(t, err)

	require.Equal(t, 1, backend.callCount())
	sent := backend.calls[0]
	assert.Equal(t, "John Doe", sent.Name)
	require.NotNil(t, sent.PreferredLocation)
	assert.Equal(t, "Downtown", *sent.PreferredLocation)
	assert.Nil(t, sent.Zipcode)
}

func TestSubmit_ValidationFailureSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	form := validForm()
	form.Email = "not-an-email"

	err := sub.Submit(context.Background(), form)

	assert.ErrorIs(t, err, validation.ErrInvalidEmail)
	// No network call is made on validation failure
	assert.Equal(t, 0, backend.callCount())
	assert.Equal(t, 0, sink.formReset)

	msg, kind := sink.lastMessage()
	assert.Equal(t, msgBadEmail, msg)
	assert.Equal(t, MessageError, kind)
}

func TestSubmit_MissingFieldsMessage(t *testing.T) {
	backend := &fakeBackend{}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	form := validForm()
	form.Contact = ""

	err := sub.Submit(context.Background(), form)

	assert.ErrorIs(t, err, validation.ErrMissingRequired)
	msg, _ := sink.lastMessage()
	assert.Equal(t, msgMissingFields, msg)
}

func TestSubmit_BackendRejectionShowsProviderMessage(t *testing.T) {
	backend := &fakeBackend{err: &RejectionError{Message: "Duplicate lead"}}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	err := sub.Submit(context.Background(), validForm())

	require.Error(t, err)
	msg, kind := sink.lastMessage()
	assert.Equal(t, "Duplicate lead", msg)
	assert.Equal(t, MessageError, kind)
	assert.Equal(t, 0, sink.formReset)
}

func TestSubmit_TransportFailureShowsGenericMessage(t *testing.T) {
	backend := &fakeBackend{err: errors.New("dial tcp: connection refused")}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	err := sub.Submit(context.Background(), validForm())

	require.Error(t, err)
	msg, _ := sink.lastMessage()
	assert.Equal(t, msgBackendDown, msg)
}

// The controller must return to idle on every path, including failures.
func TestSubmit_ReturnsToIdleAfterFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("boom")}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	require.Error(t, sub.Submit(context.Background(), validForm()))

	// A second submission must be possible immediately
	backend.err = nil
	require.NoError(t, sub.Submit(context.Background(), validForm()))
	assert.Equal(t, 2, backend.callCount())
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	gate := make(chan struct{})
	backend := &fakeBackend{gate: gate}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- sub.Submit(context.Background(), validForm())
	}()

	// Wait until the first submission is inside the backend
	require.Eventually(t, func() bool {
		return backend.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	// Second submission while the first is in flight
	err := sub.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(gate)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, backend.callCount())
}

func TestShow_MessageAutoHides(t *testing.T) {
	backend := &fakeBackend{}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())
	sub.messageDuration = 20 * time.Millisecond

	require.NoError(t, sub.Submit(context.Background(), validForm()))

	require.Eventually(t, func() bool {
		return sink.hideCount() == 1
	}, time.Second, 5*time.Millisecond)
}

// A new message cancels the pending hide of the previous one, so the
// newer message is not hidden early by a stale timer.
func TestShow_NewMessageReschedulesHide(t *testing.T) {
	backend := &fakeBackend{}
	sink := &recordingSink{}
	sub := New(backend, sink, logger.Nop())
	sub.messageDuration = 50 * time.Millisecond

	require.NoError(t, sub.Submit(context.Background(), validForm()))
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, sub.Submit(context.Background(), validForm()))

	// At 50ms from the first message, its timer would have fired; it must
	// have been cancelled by the second message.
	time.Sleep(35 * time.Millisecond)
	assert.Equal(t, 0, sink.hideCount())

	require.Eventually(t, func() bool {
		return sink.hideCount() == 1
	}, time.Second, 5*time.Millisecond)
}
