package university

import (
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UniversityHandler handles university-related requests
type UniversityHandler struct {
	db        *gorm.DB
	repo      *database.Repository[model.University]
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(db *gorm.DB) *UniversityHandler {
	return &UniversityHandler{
		db:        db,
		repo:      database.NewRepository[model.University](db),
		validator: validation.NewValidator(),
	}
}

// UniversityRequest represents the request body for creating or updating a university
type UniversityRequest struct {
	NameEN        string `json:"name_en" validate:"required,min=2,max=255"`
	NameAR        string `json:"name_ar" validate:"required,min=2,max=255"`
	DescriptionEN string `json:"description_en" validate:"omitempty"`
	DescriptionAR string `json:"description_ar" validate:"omitempty"`
	ImageURL      string `json:"image_url" validate:"omitempty,url,max=500"`
	CountryID     *uint  `json:"country_id" validate:"omitempty"`
	Ranking       int    `json:"ranking" validate:"omitempty,gte=0"`
	StudentsCount string `json:"students_count" validate:"omitempty,max=100"`
	Website       string `json:"website" validate:"omitempty,url,max=500"`
	Featured      bool   `json:"featured"`
}

func (r *UniversityRequest) apply(u *model.University) {
	u.NameEN = validation.SanitizeString(r.NameEN)
	u.NameAR = validation.SanitizeString(r.NameAR)
	u.DescriptionEN = r.DescriptionEN
	u.DescriptionAR = r.DescriptionAR
	u.ImageURL = validation.SanitizeString(r.ImageURL)
	u.CountryID = r.CountryID
	u.Ranking = r.Ranking
	u.StudentsCount = validation.SanitizeString(r.StudentsCount)
	u.Website = validation.SanitizeString(r.Website)
	u.Featured = r.Featured
}

// ListUniversities handles GET /api/v1/universities
// Featured first, then best-ranked. Optional country_id filter.
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	opts := []database.QueryOption{
		database.Order("featured DESC"),
		database.Order("ranking ASC"),
		database.Preload("Country"),
	}

	if countryID := c.Query("country_id"); countryID != "" {
		id, err := strconv.ParseUint(countryID, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid country_id")
		}
		opts = append(opts, database.Where("country_id = ?", uint(id)))
	}

	universities, err := h.repo.List(c.Context(), opts...)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	return response.Success(c, universities)
}

// GetUniversity handles GET /api/v1/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	university, err := h.repo.Get(c.Context(), uint(id),
		database.Preload("Country"),
		database.Preload("Programs", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("featured DESC, name_en ASC")
		}),
	)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	return response.Success(c, university)
}

// CreateUniversity handles POST /api/v1/universities (admin)
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var university model.University
	req.apply(&university)

	if err := h.repo.Create(c.Context(), &university); err != nil {
		return response.InternalServerError(c, "Failed to create university")
	}

	return response.Created(c, university)
}

// UpdateUniversity handles PUT /api/v1/universities/:id (admin)
func (h *UniversityHandler) UpdateUniversity(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	university, err := h.repo.Get(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	req.apply(university)

	if err := h.repo.Save(c.Context(), university); err != nil {
		return response.InternalServerError(c, "Failed to update university")
	}

	return response.SuccessWithMessage(c, "University updated successfully", university)
}

// DeleteUniversity handles DELETE /api/v1/universities/:id (admin)
// Programs referencing this university are deliberately NOT cascade-deleted;
// their university_id keeps pointing at the removed row.
func (h *UniversityHandler) DeleteUniversity(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid university id")
	}

	if err := h.repo.Delete(c.Context(), uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to delete university")
	}

	return response.SuccessWithMessage(c, "University deleted successfully", nil)
}
