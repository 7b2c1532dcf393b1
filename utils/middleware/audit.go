package middleware

import (
	"encoding/json"
	"strconv"

	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog records an admin mutation: the acting admin, the action, the
// targeted row, and its before/after JSON snapshots. Logging failures never
// fail the request.
func AuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := GetAdmin(c)
		if !ok {
			return c.Next()
		}

		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		// The settings singleton has no :id param; snapshot it anyway.
		var oldValue interface{}
		if c.Method() != fiber.MethodPost && (resourceID > 0 || resource == "site_settings") {
			oldValue = snapshotResource(db, resource, resourceID)
		}

		var newValue json.RawMessage
		if body := c.Body(); len(body) > 0 && json.Valid(body) {
			newValue = append(newValue, body...)
		}

		err := c.Next()
		if err != nil {
			return err
		}

		// Only log mutations that succeeded
		if c.Response().StatusCode() >= 400 {
			return nil
		}

		oldJSON, _ := json.Marshal(oldValue)
		entry := model.AdminAuditLog{
			AdminID:    admin.ID,
			Action:     action,
			Resource:   resource,
			ResourceID: resourceID,
			OldValue:   datatypes.JSON(oldJSON),
			NewValue:   datatypes.JSON(newValue),
			IPAddress:  c.IP(),
			UserAgent:  c.Get("User-Agent"),
		}
		db.Create(&entry)

		return nil
	}
}

func snapshotResource(db *gorm.DB, resource string, id uint) interface{} {
	fetch := func(dest interface{}) interface{} {
		if err := db.First(dest, id).Error; err != nil {
			return nil
		}
		return dest
	}

	switch resource {
	case "countries":
		return fetch(&model.Country{})
	case "universities":
		return fetch(&model.University{})
	case "programs":
		return fetch(&model.Program{})
	case "articles":
		return fetch(&model.Article{})
	case "applications":
		return fetch(&model.Application{})
	case "site_settings":
		var setting model.SiteSetting
		if err := db.First(&setting).Error; err != nil {
			return nil
		}
		return &setting
	}
	return nil
}
