package settings

import (
	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/alinasr783/studyabroad-buddy/utils/whatsapp"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SettingsHandler handles the site-settings singleton
type SettingsHandler struct {
	db        *gorm.DB
	repo      *database.Repository[model.SiteSetting]
	validator *validation.Validator
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{
		db:        db,
		repo:      database.NewRepository[model.SiteSetting](db),
		validator: validation.NewValidator(),
	}
}

// SettingsRequest represents the request body for updating site settings
type SettingsRequest struct {
	SiteName         string `json:"site_name" validate:"omitempty,max=255"`
	SiteLogo         string `json:"site_logo" validate:"omitempty,url,max=500"`
	Phone            string `json:"phone" validate:"omitempty,max=50"`
	Email            string `json:"email" validate:"omitempty,email,max=255"`
	Whatsapp         string `json:"whatsapp" validate:"omitempty,max=50"`
	Address          string `json:"address" validate:"omitempty,max=1000"`
	AboutDescription string `json:"about_description" validate:"omitempty"`
	PrimaryColor     string `json:"primary_color" validate:"omitempty,max=20"`
	SecondaryColor   string `json:"secondary_color" validate:"omitempty,max=20"`
	AccentColor      string `json:"accent_color" validate:"omitempty,max=20"`
}

func (r *SettingsRequest) apply(s *model.SiteSetting) {
	s.SiteName = validation.SanitizeString(r.SiteName)
	s.SiteLogo = validation.SanitizeString(r.SiteLogo)
	s.Phone = validation.SanitizeString(r.Phone)
	s.Email = validation.SanitizeString(r.Email)
	s.Whatsapp = validation.SanitizeString(r.Whatsapp)
	s.Address = validation.SanitizeString(r.Address)
	s.AboutDescription = r.AboutDescription
	s.PrimaryColor = validation.SanitizeString(r.PrimaryColor)
	s.SecondaryColor = validation.SanitizeString(r.SecondaryColor)
	s.AccentColor = validation.SanitizeString(r.AccentColor)
}

// GetSettings handles GET /api/v1/settings
// When no row exists yet, an empty settings object is returned so the
// frontend always has something to render.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	setting, err := h.repo.First(c.Context())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Success(c, model.SiteSetting{})
		}
		return response.InternalServerError(c, "Failed to fetch settings")
	}

	return response.Success(c, setting)
}

// WhatsappLinkResponse carries the ready-to-open chat link
type WhatsappLinkResponse struct {
	URL string `json:"url"`
}

// GetWhatsappLink handles GET /api/v1/settings/whatsapp
func (h *SettingsHandler) GetWhatsappLink(c *fiber.Ctx) error {
	number := ""
	setting, err := h.repo.First(c.Context())
	if err != nil && err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Failed to fetch settings")
	}
	if err == nil {
		number = setting.Whatsapp
	}

	link, err := whatsapp.Link(number, "")
	if err != nil {
		return response.NotFound(c, "No WhatsApp number configured")
	}

	return response.Success(c, WhatsappLinkResponse{URL: link})
}

// UpdateSettings handles PUT /api/v1/admin/settings (admin)
// Read-then-write: inserts the singleton row on first save, updates it
// afterwards. Never creates a second row.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	setting, err := h.repo.First(c.Context())
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return response.InternalServerError(c, "Failed to fetch settings")
		}
		setting = &model.SiteSetting{}
	}

	req.apply(setting)

	if setting.ID == 0 {
		err = h.repo.Create(c.Context(), setting)
	} else {
		err = h.repo.Save(c.Context(), setting)
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to save settings")
	}

	return response.SuccessWithMessage(c, "Settings saved successfully", setting)
}
