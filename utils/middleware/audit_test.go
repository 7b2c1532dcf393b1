package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func requireTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DB_NAME") == "" {
		t.Skip("DB_NAME not set, skipping database integration test")
	}

	store, err := database.StartGORM()
	require.NoError(t, err)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	db, ok := store.GetDB().(*gorm.DB)
	require.True(t, ok)
	return db
}

// Settings updates carry no :id param; the audit entry must still capture
// the singleton's previous state.
func TestAuditLogSnapshotsSettingsSingleton(t *testing.T) {
	db := requireTestDB(t)

	var setting model.SiteSetting
	if err := db.First(&setting).Error; err != nil {
		setting = model.SiteSetting{SiteName: "Before Update"}
		require.NoError(t, db.Create(&setting).Error)
		t.Cleanup(func() { db.Delete(&model.SiteSetting{}, setting.ID) })
	}

	admin := model.Admin{
		Email:        fmt.Sprintf("auditor-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "irrelevant",
		Name:         "Auditor",
	}
	require.NoError(t, db.Create(&admin).Error)
	t.Cleanup(func() {
		db.Where("admin_id = ?", admin.ID).Delete(&model.AdminAuditLog{})
		db.Delete(&model.Admin{}, admin.ID)
	})

	app := fiber.New()
	app.Put("/settings",
		func(c *fiber.Ctx) error {
			c.Locals("admin", &admin)
			return c.Next()
		},
		AuditLog(db, "settings_update", "site_settings"),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)

	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"site_name":"After Update"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entry model.AdminAuditLog
	require.NoError(t, db.
		Where("admin_id = ? AND action = ?", admin.ID, "settings_update").
		Order("id DESC").
		First(&entry).Error)

	assert.Contains(t, string(entry.OldValue), "site_name", "old value snapshot missing")
	assert.Contains(t, string(entry.NewValue), "After Update")
	assert.Equal(t, "site_settings", entry.Resource)
}
