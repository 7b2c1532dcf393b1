package program

import (
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgramHandler handles program-related requests
type ProgramHandler struct {
	db        *gorm.DB
	repo      *database.Repository[model.Program]
	validator *validation.Validator
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(db *gorm.DB) *ProgramHandler {
	return &ProgramHandler{
		db:        db,
		repo:      database.NewRepository[model.Program](db),
		validator: validation.NewValidator(),
	}
}

// ProgramRequest represents the request body for creating or updating a program
type ProgramRequest struct {
	NameEN         string `json:"name_en" validate:"required,min=2,max=255"`
	NameAR         string `json:"name_ar" validate:"required,min=2,max=255"`
	DescriptionEN  string `json:"description_en" validate:"omitempty"`
	DescriptionAR  string `json:"description_ar" validate:"omitempty"`
	RequirementsEN string `json:"requirements_en" validate:"omitempty"`
	RequirementsAR string `json:"requirements_ar" validate:"omitempty"`
	ImageURL       string `json:"image_url" validate:"omitempty,url,max=500"`
	UniversityID   *uint  `json:"university_id" validate:"omitempty"`
	DegreeLevel    string `json:"degree_level" validate:"omitempty,oneof=Bachelor Master PhD Diploma"`
	Duration       string `json:"duration" validate:"omitempty,max=100"`
	Language       string `json:"language" validate:"omitempty,max=100"`
	TuitionFee     string `json:"tuition_fee" validate:"omitempty,max=100"`
	Featured       bool   `json:"featured"`
}

func (r *ProgramRequest) apply(p *model.Program) {
	p.NameEN = validation.SanitizeString(r.NameEN)
	p.NameAR = validation.SanitizeString(r.NameAR)
	p.DescriptionEN = r.DescriptionEN
	p.DescriptionAR = r.DescriptionAR
	p.RequirementsEN = r.RequirementsEN
	p.RequirementsAR = r.RequirementsAR
	p.ImageURL = validation.SanitizeString(r.ImageURL)
	p.UniversityID = r.UniversityID
	p.DegreeLevel = r.DegreeLevel
	p.Duration = validation.SanitizeString(r.Duration)
	p.Language = validation.SanitizeString(r.Language)
	p.TuitionFee = validation.SanitizeString(r.TuitionFee)
	p.Featured = r.Featured
}

// ListPrograms handles GET /api/v1/programs
// Optional university_id and degree_level filters.
func (h *ProgramHandler) ListPrograms(c *fiber.Ctx) error {
	opts := []database.QueryOption{
		database.Order("featured DESC"),
		database.Order("name_en ASC"),
		database.Preload("University"),
	}

	if universityID := c.Query("university_id"); universityID != "" {
		id, err := strconv.ParseUint(universityID, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid university_id")
		}
		opts = append(opts, database.Where("university_id = ?", uint(id)))
	}

	if degree := c.Query("degree_level"); degree != "" {
		if !model.IsValidDegreeLevel(degree) {
			return response.BadRequest(c, "Invalid degree_level")
		}
		opts = append(opts, database.Where("degree_level = ?", degree))
	}

	programs, err := h.repo.List(c.Context(), opts...)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch programs")
	}

	return response.Success(c, programs)
}

// GetProgram handles GET /api/v1/programs/:id
func (h *ProgramHandler) GetProgram(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid program id")
	}

	program, err := h.repo.Get(c.Context(), uint(id),
		database.Preload("University"),
		database.Preload("University.Country"),
	)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	return response.Success(c, program)
}

// CreateProgram handles POST /api/v1/programs (admin)
func (h *ProgramHandler) CreateProgram(c *fiber.Ctx) error {
	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var program model.Program
	req.apply(&program)

	if err := h.repo.Create(c.Context(), &program); err != nil {
		return response.InternalServerError(c, "Failed to create program")
	}

	return response.Created(c, program)
}

// UpdateProgram handles PUT /api/v1/programs/:id (admin)
func (h *ProgramHandler) UpdateProgram(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid program id")
	}

	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	program, err := h.repo.Get(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	req.apply(program)

	if err := h.repo.Save(c.Context(), program); err != nil {
		return response.InternalServerError(c, "Failed to update program")
	}

	return response.SuccessWithMessage(c, "Program updated successfully", program)
}

// DeleteProgram handles DELETE /api/v1/programs/:id (admin)
// Applications referencing this program keep their program_id.
func (h *ProgramHandler) DeleteProgram(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid program id")
	}

	if err := h.repo.Delete(c.Context(), uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to delete program")
	}

	return response.SuccessWithMessage(c, "Program deleted successfully", nil)
}
