package university

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

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

// Deleting a university must leave its programs untouched; they keep
// their university_id even though the row it points at is gone.
func TestDeleteUniversityKeepsPrograms(t *testing.T) {
	db := requireTestDB(t)

	uni := model.University{NameEN: "Doomed University", NameAR: "جامعة"}
	require.NoError(t, db.Create(&uni).Error)

	prog := model.Program{NameEN: "Surviving Program", NameAR: "برنامج", UniversityID: &uni.ID}
	require.NoError(t, db.Create(&prog).Error)
	t.Cleanup(func() {
		db.Delete(&model.Program{}, prog.ID)
		db.Delete(&model.University{}, uni.ID)
	})

	app := fiber.New()
	handler := NewUniversityHandler(db)
	app.Delete("/universities/:id", handler.DeleteUniversity)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/universities/%d", uni.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var gone model.University
	assert.ErrorIs(t, db.First(&gone, uni.ID).Error, gorm.ErrRecordNotFound)

	var kept model.Program
	require.NoError(t, db.First(&kept, prog.ID).Error, "program must survive its university")
	require.NotNil(t, kept.UniversityID)
	assert.Equal(t, uni.ID, *kept.UniversityID, "orphaned program keeps its dangling university_id")
}
