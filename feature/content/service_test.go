package content_test

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/database"
	"content-platform/core/storage/mocks"
	"content-platform/feature/content"
	"content-platform/feature/metadata"

	"content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

const bucket = "test-bucket"

func setupService(t *testing.T, client *mocks.Client) (*content.Service, *gorm.DB, *performermodels.Performer) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	err = database.Migrate(db, &performermodels.Performer{}, &models.Content{})
	assert.NoError(t, err)

	performer := &performermodels.Performer{
		Hash: metadata.PerformerHash("Ahmad"), Name: "Ahmad", IsActive: true,
	}
	assert.NoError(t, db.Create(performer).Error)

	store := metadata.NewStore(client, bucket, zap.NewNop())
	return content.NewService(db, store, zap.NewNop()), db, performer
}

func quietClient() *mocks.Client {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Maybe()
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo)
			close(ch)
			return ch
		}).Maybe()
	client.On("RemoveObjects", mock.Anything, bucket, mock.Anything, mock.Anything).
		Return(nil).Maybe()
	return client
}

func TestCreate(t *testing.T) {
	svc, _, performer := setupService(t, quietClient())

	created, err := svc.Create(context.Background(), content.CreateInput{
		Title:       "First Song",
		Type:        "audio",
		PerformerID: performer.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, metadata.ContentHash("First Song", performer.Hash), created.Hash)
	assert.True(t, created.IsActive)

	t.Run("DuplicateTitle", func(t *testing.T) {
		_, err := svc.Create(context.Background(), content.CreateInput{
			Title: "  FIRST SONG ", Type: "audio", PerformerID: performer.ID,
		})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := svc.Create(context.Background(), content.CreateInput{
			Title: "Other", Type: "image", PerformerID: performer.ID,
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("UnknownPerformer", func(t *testing.T) {
		_, err := svc.Create(context.Background(), content.CreateInput{
			Title: "Other", Type: "audio", PerformerID: "no-such-id",
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestList(t *testing.T) {
	svc, db, performer := setupService(t, quietClient())

	other := &performermodels.Performer{Hash: "other0", Name: "Other", IsActive: true}
	assert.NoError(t, db.Create(other).Error)

	for _, seed := range []struct {
		title       string
		performerID string
		active      bool
	}{
		{"One", performer.ID, true},
		{"Two", performer.ID, true},
		{"Three", other.ID, true},
		{"Hidden", performer.ID, false},
	} {
		row := models.Content{
			Hash:        metadata.ContentHash(seed.title, "x"),
			Title:       seed.title,
			Type:        models.TypeAudio,
			PerformerID: seed.performerID,
			IsActive:    seed.active,
		}
		assert.NoError(t, db.Create(&row).Error)
	}

	all, err := svc.List(context.Background(), 1, 20, "")
	assert.NoError(t, err)
	assert.Len(t, all.Content, 3)
	assert.Equal(t, int64(3), all.Meta.Total)

	filtered, err := svc.List(context.Background(), 1, 20, performer.ID)
	assert.NoError(t, err)
	assert.Len(t, filtered.Content, 2)
}

func TestCounters(t *testing.T) {
	svc, db, performer := setupService(t, quietClient())

	created, err := svc.Create(context.Background(), content.CreateInput{
		Title: "Song", Type: "audio", PerformerID: performer.ID,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.IncrementViewCount(context.Background(), created.ID))
	assert.NoError(t, svc.IncrementViewCount(context.Background(), created.ID))
	assert.NoError(t, svc.IncrementDownloadCount(context.Background(), created.ID))

	var reloaded models.Content
	assert.NoError(t, db.First(&reloaded, "id = ?", created.ID).Error)
	assert.Equal(t, 2, reloaded.ViewCount)
	assert.Equal(t, 1, reloaded.DownloadCount)

	t.Run("UnknownID", func(t *testing.T) {
		err := svc.IncrementViewCount(context.Background(), "no-such-id")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestUpdate_RetitleRederivesHash(t *testing.T) {
	svc, _, performer := setupService(t, quietClient())

	created, err := svc.Create(context.Background(), content.CreateInput{
		Title: "Song", Type: "audio", PerformerID: performer.ID,
	})
	assert.NoError(t, err)

	title := "Renamed Song"
	updated, err := svc.Update(context.Background(), created.ID, content.UpdateInput{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, metadata.ContentHash("Renamed Song", performer.Hash), updated.Hash)
	assert.NotEqual(t, created.Hash, updated.Hash)

	t.Run("PartialUpdateKeepsHash", func(t *testing.T) {
		desc := "edited"
		again, err := svc.Update(context.Background(), created.ID, content.UpdateInput{Description: &desc})
		assert.NoError(t, err)
		assert.Equal(t, updated.Hash, again.Hash)
	})
}

func TestDelete(t *testing.T) {
	t.Run("RemovesRow", func(t *testing.T) {
		svc, db, performer := setupService(t, quietClient())

		created, err := svc.Create(context.Background(), content.CreateInput{
			Title: "Song", Type: "audio", PerformerID: performer.ID,
		})
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(context.Background(), created.ID))

		var count int64
		db.Model(&models.Content{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("StorageFailureStillDeletesRow", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Maybe()
		client.On("ListObjects", mock.Anything, bucket, mock.Anything).
			Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
				ch := make(chan minio.ObjectInfo, 1)
				ch <- minio.ObjectInfo{Err: assert.AnError}
				close(ch)
				return ch
			})
		client.On("RemoveObjects", mock.Anything, bucket, mock.Anything, mock.Anything).
			Return(nil).Maybe()
		svc, db, performer := setupService(t, client)

		created, err := svc.Create(context.Background(), content.CreateInput{
			Title: "Song", Type: "audio", PerformerID: performer.ID,
		})
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(context.Background(), created.ID))

		var count int64
		db.Model(&models.Content{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _, _ := setupService(t, quietClient())
		err := svc.Delete(context.Background(), "no-such-id")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
