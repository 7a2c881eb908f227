package handlers

import (
	"errors"
	"strconv"

	"scholarchain/internal/core/domain"
	"scholarchain/internal/core/services"
	"scholarchain/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ScholarshipHandler handles scholarship registry endpoints
type ScholarshipHandler struct {
	scholarshipService *services.ScholarshipService
}

// NewScholarshipHandler creates a new scholarship handler
func NewScholarshipHandler(scholarshipService *services.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{
		scholarshipService: scholarshipService,
	}
}

// CreateScholarshipRequest represents create scholarship request
type CreateScholarshipRequest struct {
	Amount             float64                 `json:"amount"`
	EligibleLevels     []domain.EducationLevel `json:"eligibleLevels"`
	EligibleCategories []domain.Category       `json:"eligibleCategories"`
	MaxAnnualIncome    float64                 `json:"maxAnnualIncome"`
	MinCgpa            float64                 `json:"minCgpa"`
	MaxSscScore        float64                 `json:"maxSscScore"`
}

// Create creates a new scholarship offer
// @Summary Create scholarship
// @Description Create a new scholarship offer with eligibility criteria (provider only)
// @Tags Scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateScholarshipRequest true "Scholarship criteria"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /scholarships [post]
func (h *ScholarshipHandler) Create(c *fiber.Ctx) error {
	var req CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	providerAddress, _ := c.Locals("walletAddress").(string)

	input := &services.CreateScholarshipInput{
		ProviderAddress:    providerAddress,
		Amount:             req.Amount,
		EligibleLevels:     req.EligibleLevels,
		EligibleCategories: req.EligibleCategories,
		MaxAnnualIncome:    req.MaxAnnualIncome,
		MinCgpa:            req.MinCgpa,
		MaxSscScore:        req.MaxSscScore,
	}

	scholarship, err := h.scholarshipService.Create(c.Context(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		var txErr *domain.TransactionError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Error())
		case errors.As(err, &txErr):
			return response.BadGateway(c, txErr.Error())
		default:
			return response.InternalServerError(c, "Failed to create scholarship")
		}
	}

	return response.Created(c, "Scholarship created successfully", fiber.Map{
		"scholarship": scholarship,
	})
}

// List lists active scholarships
// @Summary List scholarships
// @Description List active scholarship offers in insertion order
// @Tags Scholarships
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /scholarships [get]
func (h *ScholarshipHandler) List(c *fiber.Ctx) error {
	scholarships, err := h.scholarshipService.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list scholarships")
	}

	return response.Success(c, "Scholarships retrieved successfully", fiber.Map{
		"scholarships": scholarships,
		"total":        len(scholarships),
	})
}

// GetByID gets a scholarship by ID
// @Summary Get scholarship
// @Description Get a scholarship offer by ID
// @Tags Scholarships
// @Accept json
// @Produce json
// @Param id path int true "Scholarship ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /scholarships/{id} [get]
func (h *ScholarshipHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid scholarship ID")
	}

	scholarship, err := h.scholarshipService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrScholarshipNotFound) {
			return response.NotFound(c, "Scholarship not found")
		}
		return response.InternalServerError(c, "Failed to get scholarship")
	}

	return response.Success(c, "Scholarship retrieved successfully", fiber.Map{
		"scholarship": scholarship,
	})
}

// SetActive toggles scholarship visibility
// @Summary Toggle scholarship visibility
// @Description Activate or deactivate a scholarship offer (provider only)
// @Tags Scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID"
// @Param body body SetActiveRequest true "Visibility flag"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /scholarships/{id}/active [patch]
func (h *ScholarshipHandler) SetActive(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid scholarship ID")
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.scholarshipService.SetActive(c.Context(), uint(id), req.IsActive); err != nil {
		if errors.Is(err, domain.ErrScholarshipNotFound) {
			return response.NotFound(c, "Scholarship not found")
		}
		return response.InternalServerError(c, "Failed to update scholarship")
	}

	return response.Success(c, "Scholarship visibility updated", nil)
}

// SetActiveRequest represents set active request
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}
