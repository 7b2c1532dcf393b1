package auth

import (
	authutil "github.com/alinasr783/studyabroad-buddy/utils/auth"
	"github.com/alinasr783/studyabroad-buddy/utils/middleware"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/alinasr783/studyabroad-buddy/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// GetProfile retrieves the current admin's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, adminResponse(admin))
}

// UpdateProfile updates the current admin's display name
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name != "" {
		admin.Name = validation.SanitizeString(req.Name)
	}

	if err := h.db.Save(admin).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.SuccessWithMessage(c, "Profile updated successfully", adminResponse(admin))
}

// ChangePassword verifies the old password, stores a new bcrypt hash, and
// bumps the token version so every outstanding token is invalidated.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := authutil.VerifyPassword(admin.PasswordHash, req.OldPassword); err != nil {
		return response.Unauthorized(c, "Current password is incorrect")
	}

	hash, err := authutil.HashPassword(req.NewPassword)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	admin.PasswordHash = hash
	admin.TokenVersion++

	if err := h.db.Save(admin).Error; err != nil {
		return response.InternalServerError(c, "Failed to change password")
	}

	return response.SuccessWithMessage(c, "Password changed successfully. Please log in again.", nil)
}
