package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitegen_server/internal/generator"
	"sitegen_server/internal/types"
)

// ImageRewriter is the seam for the external image-search collaborator. It
// may rewrite image slots (props.image, props.images) in place after
// population; the pipeline never calls an image API itself, and placeholder
// keyword strings remain when no rewriter is wired or it fails.
type ImageRewriter interface {
	Rewrite(ctx context.Context, sections []types.GeneratedSection) error
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline *generator.Service
	images   ImageRewriter // optional
	log      *zap.Logger
}

// NewAPIHandler initializes a new API handler. images may be nil.
func NewAPIHandler(pipeline *generator.Service, images ImageRewriter, log *zap.Logger) *APIHandler {
	return &APIHandler{
		pipeline: pipeline,
		images:   images,
		log:      log,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateWebsiteRequest struct {
	types.GenerationRequest
	IncludeImages bool `json:"includeImages"`
}

type Status struct {
	Success  bool   `json:"success"`
	Degraded bool   `json:"degraded"`
	Message  string `json:"message"`
}

type GenerateWebsiteResponse struct {
	GenerationID string                  `json:"generationId,omitempty"`
	Website      *types.GeneratedWebsite `json:"website,omitempty"`
	Status       Status                  `json:"status"`
}

// --- API Handlers ---

// POST /api/website/generate
func (h *APIHandler) GenerateWebsite(c *gin.Context) {
	var req GenerateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenerateWebsiteResponse{
			Status: Status{Success: false, Message: "invalid request body: " + err.Error()},
		})
		return
	}

	result, err := h.pipeline.Generate(c.Request.Context(), req.GenerationRequest)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nothing useful to write.
			c.Abort()
			return
		}
		h.log.Error("generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, GenerateWebsiteResponse{
			Status: Status{Success: false, Message: err.Error()},
		})
		return
	}

	if req.IncludeImages && h.images != nil {
		if err := h.images.Rewrite(c.Request.Context(), result.Website.Components); err != nil {
			// Image slots keep their placeholder keywords on failure.
			h.log.Warn("image rewrite failed, keeping placeholders", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, GenerateWebsiteResponse{
		GenerationID: result.GenerationID,
		Website:      result.Website,
		Status: Status{
			Success:  true,
			Degraded: result.Degraded,
			Message:  result.Message,
		},
	})
}
