package models

import (
	"time"
)

// Inquiry represents one customer's real estate lead record.
// Optional columns use pointers so a NULL survives the round trip as JSON
// null rather than an empty string.
type Inquiry struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Contact           string    `json:"contact"`
	Needs             string    `json:"needs"`
	PropertyType      *string   `json:"property_type"`
	BudgetRange       *string   `json:"budget_range"`
	PreferredLocation *string   `json:"preferred_location"`
	Timeline          *string   `json:"timeline"`
	AdditionalDetails *string   `json:"additional_details"`
	Industry          *string   `json:"industry"`
	Zipcode           *string   `json:"zipcode"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

// Allowed values for the enum-typed inquiry fields. These are published by
// the schema endpoint and enforced by the validator.
var (
	PropertyTypes = []string{"Residential", "Commercial", "Industrial", "Land"}
	BudgetRanges  = []string{"Under $100K", "$100K-$500K", "$500K-$1M", "$1M+"}
	Timelines     = []string{"Immediate", "1-3 months", "3-6 months", "6+ months"}
	Industries    = []string{"Home Health and Hospice", "Finance", "Insurance", "Handyman Services"}
)

// Field length limits, enforced at the request-binding layer.
const (
	MaxNameLength     = 255
	MaxContactLength  = 50
	MaxNeedsLength    = 2000
	MaxLocationLength = 255
	MaxDetailsLength  = 2000
	MaxZipcodeLength  = 10
)

// SchemaField describes one field of the inquiry schema.
type SchemaField struct {
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Required      bool     `json:"required"`
	AutoGenerated bool     `json:"auto_generated,omitempty"`
	PrimaryKey    bool     `json:"primary_key,omitempty"`
	MaxLength     int      `json:"max_length,omitempty"`
	Format        string   `json:"format,omitempty"`
	Enum          []string `json:"enum,omitempty"`
	Example       string   `json:"example,omitempty"`
}

// Schema is the static description of the inquiry record shape served by
// the schema endpoint.
type Schema struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Table          string                 `json:"table"`
	Fields         map[string]SchemaField `json:"fields"`
	RequiredFields []string               `json:"required_fields"`
	OptionalFields []string               `json:"optional_fields"`
}

// DescribeSchema returns the inquiry schema for the given table name.
func DescribeSchema(table string) Schema {
	return Schema{
		Name:        "PropertyInquiry",
		Description: "Schema for property inquiry records",
		Table:       table,
		Fields: map[string]SchemaField{
			"id": {
				Type:          "integer",
				Description:   "Unique identifier for the inquiry record",
				AutoGenerated: true,
				PrimaryKey:    true,
			},
			"name": {
				Type:        "string",
				Description: "Customer full name",
				Required:    true,
				MaxLength:   MaxNameLength,
				Example:     "John Doe",
			},
			"email": {
				Type:        "string",
				Description: "Valid email address",
				Required:    true,
				Format:      "email",
				Example:     "john@example.com",
			},
			"contact": {
				Type:        "string",
				Description: "Phone number or contact information",
				Required:    true,
				MaxLength:   MaxContactLength,
				Example:     "+1234567890",
			},
			"needs": {
				Type:        "string",
				Description: "Detailed description of real estate requirements",
				Required:    true,
				MaxLength:   MaxNeedsLength,
				Example:     "Looking for a 3-bedroom apartment",
			},
			"property_type": {
				Type:        "string",
				Description: "Type of property needed",
				Enum:        PropertyTypes,
				Example:     "Residential",
			},
			"budget_range": {
				Type:        "string",
				Description: "Price range preference",
				Enum:        BudgetRanges,
				Example:     "$500K-$1M",
			},
			"preferred_location": {
				Type:        "string",
				Description: "Desired location or area",
				MaxLength:   MaxLocationLength,
				Example:     "Downtown Area",
			},
			"timeline": {
				Type:        "string",
				Description: "When the property is needed",
				Enum:        Timelines,
				Example:     "1-3 months",
			},
			"additional_details": {
				Type:        "string",
				Description: "Extra requirements or preferences",
				MaxLength:   MaxDetailsLength,
				Example:     "Must have parking space",
			},
			"industry": {
				Type:        "string",
				Description: "Customer industry",
				Enum:        Industries,
				Example:     "Finance",
			},
			"zipcode": {
				Type:        "string",
				Description: "Customer zip code",
				MaxLength:   MaxZipcodeLength,
				Example:     "12345",
			},
			"submitted_at": {
				Type:          "timestamp with time zone",
				Description:   "ISO 8601 timestamp when inquiry was submitted",
				AutoGenerated: true,
				Format:        "date-time",
				Example:       "2025-10-29T12:33:17.701047+00:00",
			},
		},
		RequiredFields: []string{"name", "email", "contact", "needs"},
		OptionalFields: []string{"property_type", "budget_range", "preferred_location", "timeline", "additional_details", "industry", "zipcode"},
	}
}
