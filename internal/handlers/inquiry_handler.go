package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bmahler/estate-portal/api/internal/middleware"
	"github.com/bmahler/estate-portal/api/internal/models"
	"github.com/bmahler/estate-portal/api/internal/services"
	"github.com/bmahler/estate-portal/api/internal/validation"
)

// User-facing envelope strings. These are part of the API contract and
// must not drift.
const (
	msgMissingRequired = "Missing required fields: name, email, contact, and needs are required"
	msgInvalidEmail    = "Invalid email format"
	msgNotFound        = "Inquiry not found"
	msgCreated         = "Property inquiry created successfully"
	msgDeleted         = "Inquiry deleted successfully"
)

// InquiryHandler handles inquiry-related HTTP requests.
type InquiryHandler struct {
	service services.InquiryService
	table   string
}

// NewInquiryHandler creates a new InquiryHandler. The table name is only
// used by the schema endpoint's static description.
func NewInquiryHandler(service services.InquiryService, table string) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		table:   table,
	}
}

// CreateInquiryRequest is the POST /api/inquiries body. Requiredness and
// email format are checked by the shared validator (so the combined
// missing-fields message stays exact); binding tags only cap lengths.
type CreateInquiryRequest struct {
	Name              string  `json:"name" binding:"omitempty,max=255"`
	Email             string  `json:"email"`
	Contact           string  `json:"contact" binding:"omitempty,max=50"`
	Needs             string  `json:"needs" binding:"omitempty,max=2000"`
	PropertyType      *string `json:"property_type"`
	BudgetRange       *string `json:"budget_range"`
	PreferredLocation *string `json:"preferred_location" binding:"omitempty,max=255"`
	Timeline          *string `json:"timeline"`
	AdditionalDetails *string `json:"additional_details" binding:"omitempty,max=2000"`
	Industry          *string `json:"industry"`
	Zipcode           *string `json:"zipcode" binding:"omitempty,max=10"`
}

// Create handles POST /api/inquiries.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			respondBadRequest(c, bindingErrorMessage(validationErrors))
			return
		}
		respondBadRequest(c, "Invalid request body")
		return
	}

	inquiry, err := h.service.Create(c.Request.Context(), services.CreateInquiryInput{
		Name:              req.Name,
		Email:             req.Email,
		Contact:           req.Contact,
		Needs:             req.Needs,
		PropertyType:      req.PropertyType,
		BudgetRange:       req.BudgetRange,
		PreferredLocation: req.PreferredLocation,
		Timeline:          req.Timeline,
		AdditionalDetails: req.AdditionalDetails,
		Industry:          req.Industry,
		Zipcode:           req.Zipcode,
	})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrMissingRequired):
			respondBadRequest(c, msgMissingRequired)
		case errors.Is(err, validation.ErrInvalidEmail):
			respondBadRequest(c, msgInvalidEmail)
		case errors.Is(err, validation.ErrInvalidEnum):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: msgCreated,
		Data:    inquiry,
	})
}

// List handles GET /api/inquiries.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.service.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err)
		return
	}

	count := len(inquiries)
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Count:   &count,
		Data:    inquiries,
	})
}

// Get handles GET /api/inquiries/:id.
func (h *InquiryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inquiry, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInquiryNotFound) {
			respondNotFound(c, msgNotFound)
			return
		}
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    inquiry,
	})
}

// Delete handles DELETE /api/inquiries/:id.
func (h *InquiryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInquiryNotFound) {
			respondNotFound(c, msgNotFound)
			return
		}
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: msgDeleted,
		Data:    deleted,
	})
}

// Schema handles GET /api/schema. The description is static; no store
// call is involved.
func (h *InquiryHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Schema:  models.DescribeSchema(h.table),
	})
}

// Docs handles GET /api with a documentation object.
func (h *InquiryHandler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Real Estate Portal API Server",
		"version": "1.0.0",
		"endpoints": gin.H{
			"GET /api/inquiries":        "Get all property inquiries",
			"GET /api/inquiries/:id":    "Get a specific inquiry by ID",
			"POST /api/inquiries":       "Create a new property inquiry",
			"DELETE /api/inquiries/:id": "Delete an inquiry by ID",
			"GET /api/schema":           "Get the data schema for property inquiries",
		},
	})
}

// parseID reads the :id route parameter. On failure it writes a 400
// envelope and returns ok=false.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Warn("Invalid inquiry id", map[string]interface{}{
				"id": raw,
			})
		}
		respondBadRequest(c, "Invalid inquiry id")
		return 0, false
	}
	return id, true
}
