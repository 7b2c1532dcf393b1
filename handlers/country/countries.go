package country

import (
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CountryHandler handles country-related requests
type CountryHandler struct {
	db           *gorm.DB
	repo         *database.Repository[model.Country]
	universities *database.Repository[model.University]
	programs     *database.Repository[model.Program]
	validator    *validation.Validator
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(db *gorm.DB) *CountryHandler {
	return &CountryHandler{
		db:           db,
		repo:         database.NewRepository[model.Country](db),
		universities: database.NewRepository[model.University](db),
		programs:     database.NewRepository[model.Program](db),
		validator:    validation.NewValidator(),
	}
}

// CountryRequest represents the request body for creating or updating a country
type CountryRequest struct {
	NameEN            string  `json:"name_en" validate:"required,min=2,max=255"`
	NameAR            string  `json:"name_ar" validate:"required,min=2,max=255"`
	DescriptionEN     string  `json:"description_en" validate:"omitempty"`
	DescriptionAR     string  `json:"description_ar" validate:"omitempty"`
	ImageURL          string  `json:"image_url" validate:"omitempty,url,max=500"`
	FlagEmoji         string  `json:"flag_emoji" validate:"omitempty,max=16"`
	Capital           string  `json:"capital" validate:"omitempty,max=255"`
	Population        int64   `json:"population" validate:"omitempty,gte=0"`
	AcceptanceRate    float64 `json:"acceptance_rate" validate:"omitempty,gte=0,lte=100"`
	LivingCost        float64 `json:"living_cost" validate:"omitempty,gte=0"`
	UniversitiesCount int     `json:"universities_count" validate:"omitempty,gte=0"`
	StudentsCount     string  `json:"students_count" validate:"omitempty,max=100"`
	Featured          bool    `json:"featured"`
}

func (r *CountryRequest) apply(country *model.Country) {
	country.NameEN = validation.SanitizeString(r.NameEN)
	country.NameAR = validation.SanitizeString(r.NameAR)
	country.DescriptionEN = r.DescriptionEN
	country.DescriptionAR = r.DescriptionAR
	country.ImageURL = validation.SanitizeString(r.ImageURL)
	country.FlagEmoji = validation.SanitizeString(r.FlagEmoji)
	country.Capital = validation.SanitizeString(r.Capital)
	country.Population = r.Population
	country.AcceptanceRate = r.AcceptanceRate
	country.LivingCost = r.LivingCost
	country.UniversitiesCount = r.UniversitiesCount
	country.StudentsCount = validation.SanitizeString(r.StudentsCount)
	country.Featured = r.Featured
}

// ListCountries handles GET /api/v1/countries
// Featured destinations first, then alphabetical.
func (h *CountryHandler) ListCountries(c *fiber.Ctx) error {
	countries, err := h.repo.List(c.Context(),
		database.Order("featured DESC"),
		database.Order("name_en ASC"),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch countries")
	}

	return response.Success(c, countries)
}

// CountryDetailResponse bundles a country with its universities and a
// bounded sample of programs taught at them.
type CountryDetailResponse struct {
	Country      model.Country      `json:"country"`
	Universities []model.University `json:"universities"`
	Programs     []model.Program    `json:"programs"`
}

// GetCountry handles GET /api/v1/countries/:id
func (h *CountryHandler) GetCountry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid country id")
	}

	country, err := h.repo.Get(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to fetch country")
	}

	universities, err := h.universities.List(c.Context(),
		database.Where("country_id = ?", country.ID),
		database.Order("featured DESC"),
		database.Order("ranking ASC"),
	)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	// Programs are reachable only through this country's universities
	programs := []model.Program{}
	if len(universities) > 0 {
		ids := make([]uint, 0, len(universities))
		for _, u := range universities {
			ids = append(ids, u.ID)
		}
		programs, err = h.programs.List(c.Context(),
			database.Where("university_id IN ?", ids),
			database.Order("featured DESC"),
			database.Limit(6),
		)
		if err != nil {
			return response.InternalServerError(c, "Failed to fetch programs")
		}
	}

	return response.Success(c, CountryDetailResponse{
		Country:      *country,
		Universities: universities,
		Programs:     programs,
	})
}

// CreateCountry handles POST /api/v1/countries (admin)
func (h *CountryHandler) CreateCountry(c *fiber.Ctx) error {
	var req CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var country model.Country
	req.apply(&country)

	if err := h.repo.Create(c.Context(), &country); err != nil {
		return response.InternalServerError(c, "Failed to create country")
	}

	return response.Created(c, country)
}

// UpdateCountry handles PUT /api/v1/countries/:id (admin)
func (h *CountryHandler) UpdateCountry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid country id")
	}

	var req CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	country, err := h.repo.Get(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to fetch country")
	}

	req.apply(country)

	if err := h.repo.Save(c.Context(), country); err != nil {
		return response.InternalServerError(c, "Failed to update country")
	}

	return response.SuccessWithMessage(c, "Country updated successfully", country)
}

// DeleteCountry handles DELETE /api/v1/countries/:id (admin)
// Universities referencing this country are left as-is.
func (h *CountryHandler) DeleteCountry(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid country id")
	}

	if err := h.repo.Delete(c.Context(), uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to delete country")
	}

	return response.SuccessWithMessage(c, "Country deleted successfully", nil)
}
