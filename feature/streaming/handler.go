package streaming

import (
	"mime"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-platform/core/apperr"
	"content-platform/core/logger"
)

// Handler handles HTTP requests for streaming.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the streaming routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/streaming")
	group.Get("/video/:id/playlist.m3u8", h.HandleGetPlaylist)
	group.Get("/video/:id/segment/:segment", h.HandleGetSegment)
	group.Get("/audio/:id", h.HandleGetAudio)
	group.Get("/download/:id", h.HandleDownload)
}

// HandleGetPlaylist serves the HLS playlist for a content item.
// @Summary Get HLS Playlist
// @Description Serve the HLS playlist for a content item. Counts as a view.
// @Tags streaming
// @Produce octet-stream
// @Param id path string true "Content ID"
// @Success 200 {string} string "Playlist text"
// @Failure 404 {object} map[string]interface{} "Playlist not found"
// @Router /streaming/video/{id}/playlist.m3u8 [get]
func (h *Handler) HandleGetPlaylist(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	playlist, err := h.service.GetHLSPlaylist(c.Params("id"))
	if err != nil {
		l.Warn("Playlist request failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.apple.mpegurl")
	return c.Send(playlist)
}

// HandleGetSegment serves one HLS segment for a content item.
// @Summary Get HLS Segment
// @Description Serve one HLS media segment for a content item.
// @Tags streaming
// @Produce octet-stream
// @Param id path string true "Content ID"
// @Param segment path string true "Segment file name"
// @Success 200 {string} string "Segment bytes"
// @Failure 400 {object} map[string]interface{} "Invalid segment name"
// @Failure 404 {object} map[string]interface{} "Segment not found"
// @Router /streaming/video/{id}/segment/{segment} [get]
func (h *Handler) HandleGetSegment(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	segment, err := h.service.GetHLSSegment(c.Params("id"), c.Params("segment"))
	if err != nil {
		l.Warn("Segment request failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	c.Set(fiber.HeaderContentType, "video/mp2t")
	return c.SendStream(segment)
}

// HandleGetAudio serves the audio rendition of a content item.
// @Summary Get Audio
// @Description Serve the audio rendition of a content item.
// @Tags streaming
// @Produce octet-stream
// @Param id path string true "Content ID"
// @Success 200 {string} string "Audio bytes"
// @Failure 404 {object} map[string]interface{} "Audio not found"
// @Router /streaming/audio/{id} [get]
func (h *Handler) HandleGetAudio(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	audio, err := h.service.GetAudio(c.Params("id"))
	if err != nil {
		l.Warn("Audio request failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.SendStream(audio)
}

// HandleDownload serves the original file as an attachment.
// @Summary Download Original File
// @Description Serve the original file as an attachment named after the content title.
// @Tags streaming
// @Produce octet-stream
// @Param id path string true "Content ID"
// @Success 200 {string} string "File bytes"
// @Failure 404 {object} map[string]interface{} "Download not found"
// @Router /streaming/download/{id} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	download, err := h.service.GetDownloadFile(c.Params("id"))
	if err != nil {
		l.Warn("Download request failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	c.Set(fiber.HeaderContentType, download.MimeType)
	// mime.FormatMediaType quotes and escapes the filename, so titles
	// with quotes or backslashes cannot break out of the header value.
	c.Set(fiber.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": download.Filename}))
	if download.Size > 0 {
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(download.Size, 10))
	}
	return c.SendStream(download.File)
}
