package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"orders/internal/model"
	"orders/internal/pagination"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &model.Category{Name: "Tools"}
	require.NoError(t, repo.Create(ctx, category))
	require.NotZero(t, category.ID)

	err := repo.Create(ctx, &model.Category{Name: "Tools"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	category.Name = "Hand Tools"
	require.NoError(t, repo.Update(ctx, category))

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hand Tools", found.Name)

	require.NoError(t, repo.Delete(ctx, category.ID))
	assert.ErrorIs(t, repo.Delete(ctx, category.ID), gorm.ErrRecordNotFound)
}

func TestCategoryRepository_FindByIDs_SkipsUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	categories := seedCategories(t, db, "Tools", "Garden")

	found, err := repo.FindByIDs(ctx, []uint{categories[0].ID, 999, categories[1].ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCategoryRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	seedCategories(t, db, "Garden", "Tools", "Toys")

	categories, err := repo.List(ctx, pagination.Pagination{Page: 1, RecordsNumber: 2})
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Garden", categories[0].Name)
	assert.Equal(t, "Tools", categories[1].Name)

	count, err := repo.Count(ctx, "to")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
