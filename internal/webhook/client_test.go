package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testLead() Lead {
	return Lead{
		Name:         "John Doe",
		Email:        "john@example.com",
		Phone:        "+1234567890",
		Needs:        "3BR apartment",
		PropertyType: strPtr("Residential"),
		City:         strPtr("Downtown"),
	}
}

func TestSubmit_Success(t *testing.T) {
	var gotAPIKey string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Result{Success: true, Message: "Lead received"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "prt_test_key")
	result, err := client.Submit(context.Background(), testLead())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Lead received", result.Message)

	// Authentication header and payload shape
	assert.Equal(t, "prt_test_key", gotAPIKey)
	assert.Equal(t, "John Doe", gotPayload["name"])
	assert.Equal(t, "+1234567890", gotPayload["phone"])
	assert.Equal(t, "Downtown", gotPayload["city"])
	assert.Equal(t, Source, gotPayload["source"])

	// Absent optional fields travel as null
	assert.Contains(t, gotPayload, "budget_range")
	assert.Nil(t, gotPayload["budget_range"])
}

func TestSubmit_ApplicationRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Result{Success: false, Message: "Duplicate lead"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "prt_test_key")
	result, err := client.Submit(context.Background(), testLead())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate lead")
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "Duplicate lead", result.Message)
}

func TestSubmit_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "prt_test_key")
	_, err := client.Submit(context.Background(), testLead())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSubmit_TransportError(t *testing.T) {
	// Server closed before the request is made
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "prt_test_key")
	result, err := client.Submit(context.Background(), testLead())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSubmit_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "prt_test_key")
	_, err := client.Submit(ctx, testLead())

	require.Error(t, err)
}
