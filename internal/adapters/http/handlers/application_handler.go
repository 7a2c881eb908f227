package handlers

import (
	"errors"
	"strconv"

	"scholarchain/internal/core/domain"
	"scholarchain/internal/core/services"
	"scholarchain/internal/pkg/pagination"
	"scholarchain/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles application lifecycle endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// SubmitApplicationRequest represents submit application request
type SubmitApplicationRequest struct {
	ScholarshipID uint                    `json:"scholarshipId"`
	Level         domain.EducationLevel   `json:"level"`
	Categories    []domain.Category       `json:"categories"`
	AnnualIncome  float64                 `json:"annualIncome"`
	Cgpa          float64                 `json:"cgpa"`
	SscScore      float64                 `json:"sscScore"`
}

// Submit submits an application against a scholarship
// @Summary Submit application
// @Description Submit an applicant profile against a scholarship; the eligibility decision is returned with the persisted record (applicant only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitApplicationRequest true "Application profile"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ScholarshipID == 0 {
		return response.BadRequest(c, "Scholarship ID is required")
	}

	applicantAddress, _ := c.Locals("walletAddress").(string)

	input := &services.SubmitApplicationInput{
		ScholarshipID:    req.ScholarshipID,
		ApplicantAddress: applicantAddress,
		Profile: domain.Profile{
			Level:        req.Level,
			Categories:   req.Categories,
			AnnualIncome: req.AnnualIncome,
			Cgpa:         req.Cgpa,
			SscScore:     req.SscScore,
		},
	}

	application, err := h.applicationService.Submit(c.Context(), input)
	if err != nil {
		var validationErr *domain.ValidationError
		var txErr *domain.TransactionError
		var persistErr *domain.PersistenceError
		switch {
		case errors.Is(err, domain.ErrScholarshipNotFound):
			return response.NotFound(c, "Scholarship not found")
		case errors.Is(err, domain.ErrScholarshipInactive):
			return response.Conflict(c, "Scholarship is not active")
		case errors.Is(err, domain.ErrDuplicateApproval):
			return response.Conflict(c, "An approved application already exists for this scholarship")
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Error())
		case errors.As(err, &txErr):
			return response.BadGateway(c, txErr.Error())
		case errors.As(err, &persistErr):
			return response.InternalServerError(c, persistErr.Error())
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Created(c, "Application submitted successfully", fiber.Map{
		"application": application,
	})
}

// ListMine lists applications for the calling applicant
// @Summary List my applications
// @Description List applications submitted by the calling wallet address in insertion order
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /applications/me [get]
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	applicantAddress, _ := c.Locals("walletAddress").(string)

	applications, err := h.applicationService.ListByApplicant(c.Context(), applicantAddress)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", fiber.Map{
		"applications": applications,
		"total":        len(applications),
	})
}

// ListByScholarship lists applications submitted against a scholarship
// @Summary List scholarship applications
// @Description List applications submitted against a scholarship (provider only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /scholarships/{id}/applications [get]
func (h *ApplicationHandler) ListByScholarship(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid scholarship ID")
	}

	params := pagination.GetParams(c)

	applications, total, err := h.applicationService.ListByScholarship(c.Context(), uint(id), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully",
		pagination.NewResponse(applications, params, total))
}
