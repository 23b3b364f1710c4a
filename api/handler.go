package api

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/ytcaptions/errors"
	"github.com/skillsenselab/ytcaptions/logger"
	"github.com/skillsenselab/ytcaptions/server"
	"github.com/skillsenselab/ytcaptions/validation"
	"github.com/skillsenselab/ytcaptions/youtube"
)

// Extractor produces formatted captions for a YouTube URL.
type Extractor interface {
	ExtractCaptions(ctx context.Context, url string) (string, error)
}

// ExtractRequest is the extract-captions request body.
type ExtractRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

// ExtractResponse is the successful extract-captions response.
type ExtractResponse struct {
	Success  bool   `json:"success"`
	Captions string `json:"captions"`
	VideoURL string `json:"videoUrl"`
	Length   int    `json:"length"`
}

// Handler serves the caption extraction API.
type Handler struct {
	extractor Extractor
	log       *logger.Logger
}

// NewHandler creates the API handler.
func NewHandler(extractor Extractor, log *logger.Logger) *Handler {
	return &Handler{
		extractor: extractor,
		log:       log.WithComponent("api"),
	}
}

// RegisterRoutes mounts all API and page routes on the engine, including the
// JSON fallbacks for unknown routes and disallowed methods.
func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.GET("/docs", h.Docs)
	engine.POST("/api/extract-captions", h.ExtractCaptions)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		server.RespondWithError(c, apperrors.NotFound())
	})
	engine.NoMethod(func(c *gin.Context) {
		server.RespondWithError(c, apperrors.MethodNotAllowed())
	})
}

// ExtractCaptions handles POST /api/extract-captions.
func (h *Handler) ExtractCaptions(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		server.RespondWithError(c, apperrors.MissingField("YouTube URL"))
		return
	}

	h.log.Debug("Extract request received", map[string]interface{}{
		"url": req.URL,
	})

	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	if !youtube.ValidateURL(req.URL) {
		server.RespondWithError(c, apperrors.InvalidInput(
			"Invalid YouTube URL",
			"The provided URL does not appear to be a valid YouTube video URL"))
		return
	}

	captions, err := h.extractor.ExtractCaptions(c.Request.Context(), req.URL)
	if err != nil {
		h.log.Warn("Extraction failed", map[string]interface{}{
			"url":   req.URL,
			"error": err.Error(),
		})
		server.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExtractResponse{
		Success:  true,
		Captions: captions,
		VideoURL: req.URL,
		// Character count, not bytes: captions frequently carry curly quotes
		// and other multi-byte runes.
		Length: utf8.RuneCountInString(captions),
	})
}
