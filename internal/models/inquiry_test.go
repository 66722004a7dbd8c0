package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeSchema(t *testing.T) {
	schema := DescribeSchema("property_inquiries")

	assert.Equal(t, "PropertyInquiry", schema.Name)
	assert.Equal(t, "property_inquiries", schema.Table)
	assert.Equal(t, []string{"name", "email", "contact", "needs"}, schema.RequiredFields)
	assert.Len(t, schema.OptionalFields, 7)

	// Every declared field is described
	for _, field := range append(schema.RequiredFields, schema.OptionalFields...) {
		_, ok := schema.Fields[field]
		assert.True(t, ok, "schema missing field %q", field)
	}

	// Generated columns are marked, never required
	id := schema.Fields["id"]
	assert.True(t, id.AutoGenerated)
	assert.True(t, id.PrimaryKey)
	assert.False(t, id.Required)

	submittedAt := schema.Fields["submitted_at"]
	assert.True(t, submittedAt.AutoGenerated)
	assert.False(t, submittedAt.Required)

	// Enum fields publish their allowed value sets
	assert.Equal(t, PropertyTypes, schema.Fields["property_type"].Enum)
	assert.Equal(t, BudgetRanges, schema.Fields["budget_range"].Enum)
	assert.Equal(t, Timelines, schema.Fields["timeline"].Enum)
	assert.Equal(t, Industries, schema.Fields["industry"].Enum)
}

func TestInquiry_JSONNullsForOptionalFields(t *testing.T) {
	// Optional fields must serialize as null, not "", when absent.
	data, err := json.Marshal(Inquiry{
		ID:      1,
		Name:    "John Doe",
		Email:   "john@example.com",
		Contact: "+1234567890",
		Needs:   "3BR apartment",
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, field := range []string{"property_type", "budget_range", "preferred_location", "timeline", "additional_details", "industry", "zipcode"} {
		value, ok := decoded[field]
		assert.True(t, ok, "field %q omitted from JSON", field)
		assert.Nil(t, value, "field %q should be null", field)
	}
}
