package sync_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/database"
	"content-platform/core/storage/mocks"
	"content-platform/feature/metadata"
	contentsync "content-platform/feature/sync"

	contentmodels "content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

const bucket = "test-bucket"

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	err = database.Migrate(db, &performermodels.Performer{}, &contentmodels.Content{})
	assert.NoError(t, err)
	return db
}

func listFn(keys ...string) func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(keys))
		for _, key := range keys {
			if strings.HasPrefix(key, opts.Prefix) {
				ch <- minio.ObjectInfo{Key: key}
			}
		}
		close(ch)
		return ch
	}
}

func docBody(t *testing.T, doc any) func(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	raw, err := json.Marshal(doc)
	assert.NoError(t, err)
	return func(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(raw)), nil
	}
}

func TestSyncFromR2(t *testing.T) {
	performerHash := metadata.PerformerHash("Ahmad")
	contentHash := metadata.ContentHash("First Song", performerHash)

	performerDoc := metadata.PerformerDocument{Hash: performerHash, Name: "Ahmad"}
	contentDoc := metadata.ContentDocument{
		Hash:          contentHash,
		Title:         "First Song",
		Type:          "audio",
		PerformerHash: performerHash,
	}

	newClient := func(t *testing.T) *mocks.Client {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, bucket, mock.Anything).
			Return(listFn(
				"performers/"+performerHash+"/metadata.json",
				"content/"+contentHash+"/metadata.json",
			))
		client.On("GetObject", mock.Anything, bucket, "performers/"+performerHash+"/metadata.json", mock.Anything).
			Return(docBody(t, performerDoc), nil)
		client.On("GetObject", mock.Anything, bucket, "content/"+contentHash+"/metadata.json", mock.Anything).
			Return(docBody(t, contentDoc), nil)
		return client
	}

	t.Run("CreatesRows", func(t *testing.T) {
		db := setupDB(t)
		store := metadata.NewStore(newClient(t), bucket, zap.NewNop())
		svc := contentsync.NewService(db, store, zap.NewNop())

		result, err := svc.SyncFromR2(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Performers)
		assert.Equal(t, 1, result.Content)
		assert.Equal(t, 0, result.Skipped)

		var performer performermodels.Performer
		assert.NoError(t, db.First(&performer, "hash = ?", performerHash).Error)
		assert.Equal(t, "Ahmad", performer.Name)
		assert.True(t, performer.IsActive)

		var content contentmodels.Content
		assert.NoError(t, db.First(&content, "hash = ?", contentHash).Error)
		assert.Equal(t, performer.ID, content.PerformerID)
		assert.Equal(t, contentmodels.TypeAudio, content.Type)
	})

	t.Run("Idempotent", func(t *testing.T) {
		db := setupDB(t)
		store := metadata.NewStore(newClient(t), bucket, zap.NewNop())
		svc := contentsync.NewService(db, store, zap.NewNop())

		_, err := svc.SyncFromR2(context.Background())
		assert.NoError(t, err)
		_, err = svc.SyncFromR2(context.Background())
		assert.NoError(t, err)

		var performerCount, contentCount int64
		db.Model(&performermodels.Performer{}).Count(&performerCount)
		db.Model(&contentmodels.Content{}).Count(&contentCount)
		assert.Equal(t, int64(1), performerCount)
		assert.Equal(t, int64(1), contentCount)
	})

	t.Run("TrustsDocumentHash", func(t *testing.T) {
		// A hand-edited document keeps its recorded hash on recovery.
		db := setupDB(t)
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, bucket, mock.Anything).
			Return(listFn("performers/abc123/metadata.json"))
		client.On("GetObject", mock.Anything, bucket, "performers/abc123/metadata.json", mock.Anything).
			Return(docBody(t, metadata.PerformerDocument{Hash: "abc123", Name: "Renamed"}), nil)

		store := metadata.NewStore(client, bucket, zap.NewNop())
		svc := contentsync.NewService(db, store, zap.NewNop())

		_, err := svc.SyncFromR2(context.Background())
		assert.NoError(t, err)

		var performer performermodels.Performer
		assert.NoError(t, db.First(&performer, "hash = ?", "abc123").Error)
		assert.Equal(t, "Renamed", performer.Name)
	})

	t.Run("SkipsMalformedDocument", func(t *testing.T) {
		db := setupDB(t)
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, bucket, mock.Anything).
			Return(listFn(
				"performers/"+performerHash+"/metadata.json",
				"performers/broken/metadata.json",
			))
		client.On("GetObject", mock.Anything, bucket, "performers/"+performerHash+"/metadata.json", mock.Anything).
			Return(docBody(t, performerDoc), nil)
		client.On("GetObject", mock.Anything, bucket, "performers/broken/metadata.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

		store := metadata.NewStore(client, bucket, zap.NewNop())
		svc := contentsync.NewService(db, store, zap.NewNop())

		result, err := svc.SyncFromR2(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Performers)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("SkipsOrphanedContent", func(t *testing.T) {
		db := setupDB(t)
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, bucket, mock.Anything).
			Return(listFn("content/" + contentHash + "/metadata.json"))
		client.On("GetObject", mock.Anything, bucket, "content/"+contentHash+"/metadata.json", mock.Anything).
			Return(docBody(t, contentDoc), nil)

		store := metadata.NewStore(client, bucket, zap.NewNop())
		svc := contentsync.NewService(db, store, zap.NewNop())

		result, err := svc.SyncFromR2(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Content)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("StorageListingFailureAborts", func(t *testing.T) {
		db := setupDB(t)
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, bucket, mock.Anything).
			Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
				ch := make(chan minio.ObjectInfo, 1)
				ch <- minio.ObjectInfo{Err: assert.AnError}
				close(ch)
				return ch
			})

		store := metadata.NewStore(client, bucket, zap.NewNop())
		svc := contentsync.NewService(db, store, zap.NewNop())

		_, err := svc.SyncFromR2(context.Background())
		assert.Error(t, err)
		assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
	})
}

func TestRebuildMetadata(t *testing.T) {
	db := setupDB(t)

	performer := performermodels.Performer{Hash: metadata.PerformerHash("Ahmad"), Name: "Ahmad", IsActive: true}
	assert.NoError(t, db.Create(&performer).Error)
	content := contentmodels.Content{
		Hash:        metadata.ContentHash("First Song", performer.Hash),
		Title:       "First Song",
		Type:        contentmodels.TypeAudio,
		PerformerID: performer.ID,
		IsActive:    true,
	}
	assert.NoError(t, db.Create(&content).Error)

	client := new(mocks.Client)
	var order []string
	var orderMu sync.Mutex
	client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			orderMu.Lock()
			order = append(order, args.String(2))
			orderMu.Unlock()
		}).
		Return(minio.UploadInfo{}, nil)

	store := metadata.NewStore(client, bucket, zap.NewNop())
	svc := contentsync.NewService(db, store, zap.NewNop())

	result, err := svc.RebuildMetadata(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Performers)
	assert.Equal(t, 1, result.Content)

	// Performer documents must land before any content document.
	assert.Equal(t, []string{
		"performers/" + performer.Hash + "/metadata.json",
		"content/" + content.Hash + "/metadata.json",
	}, order)
}

func TestRebuildMetadata_SkipsFailedWrite(t *testing.T) {
	db := setupDB(t)

	performer := performermodels.Performer{Hash: metadata.PerformerHash("Ahmad"), Name: "Ahmad"}
	assert.NoError(t, db.Create(&performer).Error)

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	store := metadata.NewStore(client, bucket, zap.NewNop())
	svc := contentsync.NewService(db, store, zap.NewNop())

	result, err := svc.RebuildMetadata(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Performers)
	assert.Equal(t, 1, result.Skipped)
}

func TestStatus(t *testing.T) {
	db := setupDB(t)

	shared := performermodels.Performer{Hash: "both00", Name: "Shared"}
	onlyDB := performermodels.Performer{Hash: "dbonly", Name: "Local"}
	assert.NoError(t, db.Create(&shared).Error)
	assert.NoError(t, db.Create(&onlyDB).Error)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(listFn(
			"performers/both00/metadata.json",
			"performers/r2only/metadata.json",
		))

	store := metadata.NewStore(client, bucket, zap.NewNop())
	svc := contentsync.NewService(db, store, zap.NewNop())

	status, err := svc.Status(context.Background())
	assert.NoError(t, err)
	assert.False(t, status.Synced)
	assert.Equal(t, int64(2), status.Neon.Performers)
	assert.Equal(t, int64(2), status.R2.Performers)
	assert.Equal(t, []string{"r2only"}, status.Drift.PerformersMissingInDB)
	assert.Equal(t, []string{"dbonly"}, status.Drift.PerformersMissingInR2)
	assert.Empty(t, status.Drift.ContentMissingInDB)
	assert.Empty(t, status.Drift.ContentMissingInR2)
}

func TestStatus_DatabaseFailure(t *testing.T) {
	sqlDB, dbmock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	dbmock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	store := metadata.NewStore(new(mocks.Client), bucket, zap.NewNop())
	svc := contentsync.NewService(db, store, zap.NewNop())

	_, err = svc.Status(context.Background())
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
	assert.NoError(t, dbmock.ExpectationsWereMet())
}

func TestMutationGuard(t *testing.T) {
	db := setupDB(t)

	release := make(chan struct{})
	started := make(chan struct{})

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			if opts.Prefix == "performers/" {
				close(started)
				<-release
			}
			ch := make(chan minio.ObjectInfo)
			close(ch)
			return ch
		}).Once()
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(listFn())

	store := metadata.NewStore(client, bucket, zap.NewNop())
	svc := contentsync.NewService(db, store, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := svc.SyncFromR2(context.Background())
		done <- err
	}()

	<-started
	_, err := svc.RebuildMetadata(context.Background())
	assert.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("first sync run did not finish")
	}
}
