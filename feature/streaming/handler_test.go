package streaming_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/server"
	"content-platform/feature/streaming"

	"content-platform/feature/content/models"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	db := setupDB(t)
	root := t.TempDir()
	svc := streaming.NewService(db, server.Config{MediaRoot: root}, zap.NewNop())

	app := fiber.New()
	streaming.NewHandler(svc).RegisterRoutes(app)
	return app, db, root
}

func TestRoutes(t *testing.T) {
	app, db, root := setupApp(t)
	row := seedContent(t, db, root, models.TypeVideo)

	t.Run("Playlist", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/streaming/video/"+row.ID+"/playlist.m3u8", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/vnd.apple.mpegurl", resp.Header.Get(fiber.HeaderContentType))

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.Equal(t, "#EXTM3U\n", string(body))
	})

	t.Run("Segment", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/streaming/video/"+row.ID+"/segment/segment0.ts", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "video/mp2t", resp.Header.Get(fiber.HeaderContentType))
	})

	t.Run("Audio", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/streaming/audio/"+row.ID, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("UnknownContent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/streaming/video/no-such-id/playlist.m3u8", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, "Content not found", body.Message)
	})
}

func TestDownloadHeaders(t *testing.T) {
	app, db, root := setupApp(t)

	dir := filepath.Join(root, "content", "qt0001")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "original.mp4"), []byte("bytes"), 0o644))

	// A title with quotes must not break out of the header value.
	row := &models.Content{
		Hash:            "qt0001",
		Title:           `Say "Hi"`,
		Type:            models.TypeVideo,
		OriginalFileURL: "content/qt0001/original.mp4",
		IsActive:        true,
	}
	assert.NoError(t, db.Create(row).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/streaming/download/"+row.ID, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "video/mp4", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="Say \"Hi\".mp4"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
}
