package streaming_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/database"
	"content-platform/core/server"
	"content-platform/feature/streaming"

	"content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	err = database.Migrate(db, &performermodels.Performer{}, &models.Content{})
	assert.NoError(t, err)
	return db
}

// seedContent writes the media files a content row points at under
// root and creates the row.
func seedContent(t *testing.T, db *gorm.DB, root string, contentType models.ContentType) *models.Content {
	hlsDir := filepath.Join(root, "content", "abc123", "hls")
	assert.NoError(t, os.MkdirAll(hlsDir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(hlsDir, "playlist.m3u8"), []byte("#EXTM3U\n"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(hlsDir, "segment0.ts"), []byte("segment-bytes"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "content", "abc123", "audio.mp3"), []byte("audio-bytes"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "content", "abc123", "original.mp4"), []byte("original-bytes"), 0o644))

	row := &models.Content{
		Hash:            "abc123",
		Title:           "First Song",
		Type:            contentType,
		HLSURL:          "content/abc123/hls/playlist.m3u8",
		AudioURL:        "content/abc123/audio.mp3",
		OriginalFileURL: "content/abc123/original.mp4",
		IsActive:        true,
	}
	assert.NoError(t, db.Create(row).Error)
	return row
}

func TestGetHLSPlaylist(t *testing.T) {
	db := setupDB(t)
	root := t.TempDir()
	svc := streaming.NewService(db, server.Config{MediaRoot: root}, zap.NewNop())
	row := seedContent(t, db, root, models.TypeVideo)

	playlist, err := svc.GetHLSPlaylist(row.ID)
	assert.NoError(t, err)
	assert.Equal(t, "#EXTM3U\n", string(playlist))

	// Playback counts as a view.
	var reloaded models.Content
	assert.NoError(t, db.First(&reloaded, "id = ?", row.ID).Error)
	assert.Equal(t, 1, reloaded.ViewCount)

	t.Run("MissingRow", func(t *testing.T) {
		_, err := svc.GetHLSPlaylist("no-such-id")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("NoHLSRendition", func(t *testing.T) {
		audioOnly := &models.Content{Hash: "aud001", Title: "Audio Only", Type: models.TypeAudio}
		assert.NoError(t, db.Create(audioOnly).Error)

		_, err := svc.GetHLSPlaylist(audioOnly.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, "HLS playlist not found", apperr.MessageOf(err))
	})

	t.Run("FileMissing", func(t *testing.T) {
		ghost := &models.Content{Hash: "gho001", Title: "Ghost", Type: models.TypeVideo,
			HLSURL: "content/gho001/hls/playlist.m3u8"}
		assert.NoError(t, db.Create(ghost).Error)

		_, err := svc.GetHLSPlaylist(ghost.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, "HLS playlist file not found", apperr.MessageOf(err))
	})
}

func TestGetHLSSegment(t *testing.T) {
	db := setupDB(t)
	root := t.TempDir()
	svc := streaming.NewService(db, server.Config{MediaRoot: root}, zap.NewNop())
	row := seedContent(t, db, root, models.TypeVideo)

	segment, err := svc.GetHLSSegment(row.ID, "segment0.ts")
	assert.NoError(t, err)
	defer segment.Close()

	data, err := io.ReadAll(segment)
	assert.NoError(t, err)
	assert.Equal(t, "segment-bytes", string(data))

	t.Run("TraversalRejected", func(t *testing.T) {
		for _, name := range []string{"", ".", "..", "../secret", "a/b.ts", `a\b.ts`, "..segment.ts"} {
			_, err := svc.GetHLSSegment(row.ID, name)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "segment %q", name)
		}
	})

	t.Run("MissingSegment", func(t *testing.T) {
		_, err := svc.GetHLSSegment(row.ID, "segment9.ts")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestGetAudio(t *testing.T) {
	db := setupDB(t)
	root := t.TempDir()
	svc := streaming.NewService(db, server.Config{MediaRoot: root}, zap.NewNop())
	row := seedContent(t, db, root, models.TypeAudio)

	audio, err := svc.GetAudio(row.ID)
	assert.NoError(t, err)
	defer audio.Close()

	data, err := io.ReadAll(audio)
	assert.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	t.Run("NoAudioRendition", func(t *testing.T) {
		videoOnly := &models.Content{Hash: "vid001", Title: "Video Only", Type: models.TypeVideo}
		assert.NoError(t, db.Create(videoOnly).Error)

		_, err := svc.GetAudio(videoOnly.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestGetDownloadFile(t *testing.T) {
	t.Run("Video", func(t *testing.T) {
		db := setupDB(t)
		root := t.TempDir()
		svc := streaming.NewService(db, server.Config{MediaRoot: root}, zap.NewNop())
		row := seedContent(t, db, root, models.TypeVideo)

		download, err := svc.GetDownloadFile(row.ID)
		assert.NoError(t, err)
		defer download.File.Close()

		assert.Equal(t, "First Song.mp4", download.Filename)
		assert.Equal(t, "video/mp4", download.MimeType)
		assert.Equal(t, int64(len("original-bytes")), download.Size)

		var reloaded models.Content
		assert.NoError(t, db.First(&reloaded, "id = ?", row.ID).Error)
		assert.Equal(t, 1, reloaded.DownloadCount)
	})

	t.Run("Audio", func(t *testing.T) {
		db := setupDB(t)
		root := t.TempDir()
		svc := streaming.NewService(db, server.Config{MediaRoot: root}, zap.NewNop())
		row := seedContent(t, db, root, models.TypeAudio)

		download, err := svc.GetDownloadFile(row.ID)
		assert.NoError(t, err)
		defer download.File.Close()

		assert.Equal(t, "First Song.mp3", download.Filename)
		assert.Equal(t, "audio/mpeg", download.MimeType)
	})

	t.Run("NoOriginal", func(t *testing.T) {
		db := setupDB(t)
		svc := streaming.NewService(db, server.Config{MediaRoot: t.TempDir()}, zap.NewNop())

		bare := &models.Content{Hash: "bar001", Title: "Bare", Type: models.TypeVideo}
		assert.NoError(t, db.Create(bare).Error)

		_, err := svc.GetDownloadFile(bare.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
