package application

import (
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ApplicationHandler handles consultation request submission and management
type ApplicationHandler struct {
	db        *gorm.DB
	repo      *database.Repository[model.Application]
	validator *validation.Validator
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{
		db:        db,
		repo:      database.NewRepository[model.Application](db),
		validator: validation.NewValidator(),
	}
}

// CreateApplicationRequest represents a visitor's consultation request
type CreateApplicationRequest struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Phone          string `json:"phone" validate:"required,min=5,max=50"`
	Nationality    string `json:"nationality" validate:"omitempty,max=100"`
	EducationLevel string `json:"education_level" validate:"omitempty,max=100"`
	Message        string `json:"message" validate:"omitempty,max=5000"`
	ProgramID      *uint  `json:"program_id" validate:"omitempty"`
}

// UpdateStatusRequest moves an application to another status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateApplication handles POST /api/v1/applications (public)
// Status is force-initialized to pending regardless of input.
func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var req CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	app := model.Application{
		FullName:       validation.SanitizeString(req.FullName),
		Email:          validation.SanitizeString(req.Email),
		Phone:          validation.SanitizeString(req.Phone),
		Nationality:    validation.SanitizeString(req.Nationality),
		EducationLevel: validation.SanitizeString(req.EducationLevel),
		Message:        validation.SanitizeString(req.Message),
		ProgramID:      req.ProgramID,
		Status:         model.StatusPending,
	}

	if err := h.repo.Create(c.Context(), &app); err != nil {
		return response.InternalServerError(c, "Failed to submit application")
	}

	return response.Created(c, app)
}

// ListApplications handles GET /api/v1/admin/applications (admin)
// Newest first, paginated, optional status filter.
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	countOpts := []database.QueryOption{}
	if status := c.Query("status"); status != "" {
		if !model.IsValidStatus(status) {
			return response.BadRequest(c, "Invalid status filter")
		}
		countOpts = append(countOpts, database.Where("status = ?", status))
	}

	total, err := h.repo.Count(c.Context(), countOpts...)
	if err != nil {
		return response.InternalServerError(c, "Failed to count applications")
	}

	pagination := response.CalculatePagination(page, limit, total)
	opts := append(countOpts,
		database.Order("created_at DESC"),
		database.Preload("Program"),
		database.Limit(pagination.PerPage),
		database.Offset((pagination.CurrentPage-1)*pagination.PerPage),
	)

	apps, err := h.repo.List(c.Context(), opts...)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch applications")
	}

	return response.Paginated(c, apps, pagination)
}

// GetApplication handles GET /api/v1/admin/applications/:id (admin)
func (h *ApplicationHandler) GetApplication(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid application id")
	}

	app, err := h.repo.Get(c.Context(), uint(id),
		database.Preload("Program"),
		database.Preload("Program.University"),
	)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to fetch application")
	}

	return response.Success(c, app)
}

// UpdateStatus handles PATCH /api/v1/admin/applications/:id/status (admin)
// Single-step overwrite; any status in the closed vocabulary may be set
// from any other. Values outside the vocabulary are rejected.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid application id")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !model.IsValidStatus(req.Status) {
		return response.ValidationError(c, model.ErrInvalidStatus)
	}

	app, err := h.repo.Get(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to fetch application")
	}

	app.Status = req.Status

	if err := h.repo.Save(c.Context(), app); err != nil {
		return response.InternalServerError(c, "Failed to update application status")
	}

	return response.SuccessWithMessage(c, "Application status updated", app)
}

// DeleteApplication handles DELETE /api/v1/admin/applications/:id (admin)
func (h *ApplicationHandler) DeleteApplication(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid application id")
	}

	if err := h.repo.Delete(c.Context(), uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to delete application")
	}

	return response.SuccessWithMessage(c, "Application deleted successfully", nil)
}
