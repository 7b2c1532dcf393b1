package database

import (
	"context"
	"os"
	"testing"

	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// requireTestDB connects to the database configured via env. Tests are
// skipped when no database is configured so the suite stays runnable
// without infrastructure.
func requireTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DB_NAME") == "" {
		t.Skip("DB_NAME not set, skipping database integration test")
	}

	store, err := StartGORM()
	require.NoError(t, err)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	db, ok := store.GetDB().(*gorm.DB)
	require.True(t, ok)
	return db
}

func TestRepositoryCRUD(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	repo := NewRepository[model.Country](db)

	country := model.Country{NameEN: "Testlandia", NameAR: "تستلانديا", Featured: true}
	require.NoError(t, repo.Create(ctx, &country))
	require.NotZero(t, country.ID)
	t.Cleanup(func() { repo.Delete(ctx, country.ID) })

	got, err := repo.Get(ctx, country.ID)
	require.NoError(t, err)
	assert.Equal(t, "Testlandia", got.NameEN)

	got.Capital = "Test City"
	require.NoError(t, repo.Save(ctx, got))

	again, err := repo.Get(ctx, country.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test City", again.Capital)

	count, err := repo.Count(ctx, Where("id = ?", country.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	listed, err := repo.List(ctx, Where("id = ?", country.ID), Order("name_en ASC"), Limit(1))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, country.ID, listed[0].ID)

	require.NoError(t, repo.Delete(ctx, country.ID))

	_, err = repo.Get(ctx, country.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, country.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFirst(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	repo := NewRepository[model.SiteSetting](db)

	_, err := repo.First(ctx, Where("id = ?", uint(0)))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
