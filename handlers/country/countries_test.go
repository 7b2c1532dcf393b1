package country

import (
	"encoding/json"
	"fmt"
	"io"
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

func decodeData(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

// The country detail's program sample must only contain programs taught
// at that country's own universities, capped at six.
func TestGetCountryScopesPrograms(t *testing.T) {
	db := requireTestDB(t)

	countryA := model.Country{NameEN: "Wonderland", NameAR: "بلاد العجائب"}
	countryB := model.Country{NameEN: "Otherland", NameAR: "بلاد أخرى"}
	require.NoError(t, db.Create(&countryA).Error)
	require.NoError(t, db.Create(&countryB).Error)

	uniA := model.University{NameEN: "Wonderland University", NameAR: "جامعة", CountryID: &countryA.ID}
	uniB := model.University{NameEN: "Otherland University", NameAR: "جامعة", CountryID: &countryB.ID}
	require.NoError(t, db.Create(&uniA).Error)
	require.NoError(t, db.Create(&uniB).Error)

	var programIDs []uint
	for i := 0; i < 7; i++ {
		p := model.Program{NameEN: fmt.Sprintf("Program %d", i), NameAR: "برنامج", UniversityID: &uniA.ID}
		require.NoError(t, db.Create(&p).Error)
		programIDs = append(programIDs, p.ID)
	}
	foreign := model.Program{NameEN: "Foreign Program", NameAR: "برنامج أجنبي", UniversityID: &uniB.ID}
	require.NoError(t, db.Create(&foreign).Error)

	t.Cleanup(func() {
		db.Delete(&model.Program{}, foreign.ID)
		db.Delete(&model.Program{}, programIDs)
		db.Delete(&model.University{}, uniA.ID)
		db.Delete(&model.University{}, uniB.ID)
		db.Delete(&model.Country{}, countryA.ID)
		db.Delete(&model.Country{}, countryB.ID)
	})

	app := fiber.New()
	handler := NewCountryHandler(db)
	app.Get("/countries/:id", handler.GetCountry)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/countries/%d", countryA.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detail CountryDetailResponse
	decodeData(t, resp, &detail)

	assert.Equal(t, countryA.ID, detail.Country.ID)

	require.Len(t, detail.Universities, 1)
	assert.Equal(t, uniA.ID, detail.Universities[0].ID)

	assert.LessOrEqual(t, len(detail.Programs), 6, "program sample is capped at six")
	for _, p := range detail.Programs {
		require.NotNil(t, p.UniversityID)
		assert.Equal(t, uniA.ID, *p.UniversityID,
			"program %d belongs to a university outside the country", p.ID)
	}
}
