package admin

import (
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuditLogHandler serves the admin activity trail
type AuditLogHandler struct {
	db   *gorm.DB
	repo *database.Repository[model.AdminAuditLog]
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{
		db:   db,
		repo: database.NewRepository[model.AdminAuditLog](db),
	}
}

// ListAuditLogs handles GET /api/v1/admin/audit-logs (admin)
// Newest first, paginated, with optional action/resource/admin_id filters.
func (h *AuditLogHandler) ListAuditLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	filters := []database.QueryOption{}
	if action := c.Query("action"); action != "" {
		filters = append(filters, database.Where("action = ?", action))
	}
	if resource := c.Query("resource"); resource != "" {
		filters = append(filters, database.Where("resource = ?", resource))
	}
	if adminIDStr := c.Query("admin_id"); adminIDStr != "" {
		adminID, err := strconv.ParseUint(adminIDStr, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid admin_id")
		}
		filters = append(filters, database.Where("admin_id = ?", uint(adminID)))
	}

	total, err := h.repo.Count(c.Context(), filters...)
	if err != nil {
		return response.InternalServerError(c, "Failed to count audit logs")
	}

	pagination := response.CalculatePagination(page, limit, total)
	opts := append(filters,
		database.Order("created_at DESC"),
		database.Preload("Admin"),
		database.Limit(pagination.PerPage),
		database.Offset((pagination.CurrentPage-1)*pagination.PerPage),
	)

	logs, err := h.repo.List(c.Context(), opts...)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	return response.Paginated(c, logs, pagination)
}

// GetAuditLog handles GET /api/v1/admin/audit-logs/:id (admin)
func (h *AuditLogHandler) GetAuditLog(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid log id")
	}

	log, err := h.repo.Get(c.Context(), uint(id), database.Preload("Admin"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Audit log not found")
		}
		return response.InternalServerError(c, "Failed to fetch audit log")
	}

	return response.Success(c, log)
}
