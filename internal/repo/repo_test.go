package repo_test

import (
	"testing"

	"vaulterp-backend/internal/models"
	"vaulterp-backend/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}))
	return db
}

func TestCreateAndGet(t *testing.T) {
	db := newTestDB(t, "repo_create")
	r := repo.New[models.Category](db)

	cat := models.Category{OfficeID: 1, Name: "Raw Material", IsActive: true, CreatedBy: 1}
	require.NoError(t, r.Create(&cat))
	require.NotZero(t, cat.ID)

	got, err := r.GetByID(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Raw Material", got.Name)

	_, err = r.GetByID(9999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestListScoping(t *testing.T) {
	db := newTestDB(t, "repo_list")
	r := repo.New[models.Category](db)

	require.NoError(t, r.Create(&models.Category{OfficeID: 1, Name: "Approved", IsActive: true, IsApproved: true}))
	require.NoError(t, r.Create(&models.Category{OfficeID: 1, Name: "Pending", IsActive: true}))
	require.NoError(t, r.Create(&models.Category{OfficeID: 2, Name: "Other office", IsActive: true, IsApproved: true}))
	require.NoError(t, r.Create(&models.Category{OfficeID: 1, Name: "Deleted", IsActive: false, IsApproved: true}))

	office := uint(1)

	rows, err := r.List(repo.ListScope{OfficeID: &office, ApprovedOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Approved", rows[0].Name)

	rows, err = r.List(repo.ListScope{OfficeID: &office})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Empty scope is an empty slice, never an error.
	office = 42
	rows, err = r.List(repo.ListScope{OfficeID: &office})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestUpdateMissingRow(t *testing.T) {
	db := newTestDB(t, "repo_update")
	r := repo.New[models.Category](db)

	cat := models.Category{OfficeID: 1, Name: "Before", IsActive: true}
	require.NoError(t, r.Create(&cat))

	cat.Name = "After"
	require.NoError(t, r.Update(cat.ID, &cat))

	got, err := r.GetByID(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.True(t, got.IsActive)

	err = r.Update(9999, &cat)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSoftDeleteIsNotIdempotentSuccess(t *testing.T) {
	db := newTestDB(t, "repo_delete")
	r := repo.New[models.Category](db)

	cat := models.Category{OfficeID: 1, Name: "Doomed", IsActive: true}
	require.NoError(t, r.Create(&cat))

	require.NoError(t, r.SoftDelete(cat.ID))

	// The row is gone from the active set, so deleting again reports absence.
	err := r.SoftDelete(cat.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	var raw models.Category
	require.NoError(t, db.First(&raw, "id = ?", cat.ID).Error)
	assert.False(t, raw.IsActive)
}

func TestApprovalFlow(t *testing.T) {
	db := newTestDB(t, "repo_approve")
	r := repo.New[models.Category](db)

	cat := models.Category{OfficeID: 3, Name: "Needs approval", IsActive: true}
	require.NoError(t, r.Create(&cat))

	pending, err := r.PendingApproval(3)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, r.Approve(cat.ID, 7))

	pending, err = r.PendingApproval(3)
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := r.GetByID(cat.ID)
	require.NoError(t, err)
	assert.True(t, got.IsApproved)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, uint(7), *got.ApprovedBy)

	assert.ErrorIs(t, r.Approve(9999, 7), repo.ErrNotFound)
}
