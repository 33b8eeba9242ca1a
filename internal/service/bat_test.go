package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/validation"
)

func setupBatService(t *testing.T) (*BatService, *UploadService, string) {
	t.Helper()

	conn := setupDB(t)
	auth := NewAuthService(repository.NewUserRepository(conn))
	owner, err := auth.Register(registerFields("owner@example.com", "OWNER-1"))
	require.NoError(t, err)

	uploads := NewUploadService(setupStorage(t))
	bats := NewBatService(repository.NewBatRepository(conn), uploads)
	return bats, uploads, owner.ID
}

func batFields(brand string) *validation.BatFields {
	return &validation.BatFields{
		BrandName:       brand,
		Price:           299.0,
		Description:     "Grade 1 English willow",
		BrandAmbassador: "Ben Stokes",
	}
}

func TestBat_CreateRequiresImage(t *testing.T) {
	bats, _, ownerID := setupBatService(t)

	_, err := bats.Create(ownerID, batFields("GM"), "")
	assert.Error(t, err)
}

func TestBat_Lifecycle(t *testing.T) {
	bats, uploads, ownerID := setupBatService(t)

	imagePath, err := uploads.Accept("image", uploadHeader(t, "bat.png", pngBytes(512)))
	require.NoError(t, err)

	created, err := bats.Create(ownerID, batFields("Kookaburra"), imagePath)
	require.NoError(t, err)
	assert.Equal(t, ownerID, created.UserID)
	assert.Equal(t, imagePath, created.ImagePath)

	all, err := bats.Bats()
	require.NoError(t, err)
	require.Len(t, all, 1)

	updated, err := bats.Update(created.ID, 349.5, "refurbished", "Pat Cummins")
	require.NoError(t, err)
	assert.InDelta(t, 349.5, updated.Price, 0.001)
	assert.Equal(t, "Kookaburra", updated.BrandName)

	require.NoError(t, bats.Delete(created.ID))

	// Record and backing image are both gone
	_, err = bats.ByID(created.ID)
	assert.ErrorIs(t, err, repository.ErrBatNotFound)
	assert.False(t, uploads.Exists(imagePath))
}

func TestBat_UpdateMissing(t *testing.T) {
	bats, _, _ := setupBatService(t)

	_, err := bats.Update("missing", 10, "d", "a")
	assert.ErrorIs(t, err, repository.ErrBatNotFound)
}

func TestBat_DeleteMissing(t *testing.T) {
	bats, _, _ := setupBatService(t)

	assert.ErrorIs(t, bats.Delete("missing"), repository.ErrBatNotFound)
}

func TestBat_ImageURL(t *testing.T) {
	bats, uploads, ownerID := setupBatService(t)

	imagePath, err := uploads.Accept("image", uploadHeader(t, "bat.png", pngBytes(512)))
	require.NoError(t, err)

	created, err := bats.Create(ownerID, batFields("SS"), imagePath)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/"+imagePath, bats.ImageURL(created))
}
