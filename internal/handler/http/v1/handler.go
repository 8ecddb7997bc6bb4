package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/live_location_system/internal/config"
	"github.com/shenikar/live_location_system/internal/feed"
	"github.com/shenikar/live_location_system/internal/identity"
	"github.com/shenikar/live_location_system/internal/sampler"
	"github.com/shenikar/live_location_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationService service.LocationService
	shareService    service.ShareService
	feeds           *feed.Factory
	identityManager *identity.Manager
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(locationService service.LocationService, shareService service.ShareService, feeds *feed.Factory, identityManager *identity.Manager, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		locationService: locationService,
		shareService:    shareService,
		feeds:           feeds,
		identityManager: identityManager,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Report a raw GPS sample
// @Description Feed a raw GPS sample into the caller's location filter. Accepted positions are published asynchronously.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sample body ReportLocationRequest true "Raw GPS sample"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Location stream is in a failed state"
// @Router /location/report [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input ReportLocationRequest
	log := h.logger.WithField("method", "reportLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	ts := time.Now()
	if input.TimestampMillis > 0 {
		ts = time.UnixMilli(input.TimestampMillis)
	}

	err := h.locationService.ReportSample(c.Request.Context(), ident, sampler.RawSample{
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		AccuracyMeters: input.AccuracyMeters,
		Timestamp:      ts,
	})
	if err != nil {
		if errors.Is(err, sampler.ErrStreamFailed) {
			c.JSON(http.StatusConflict, gin.H{"error": "location stream failed, retry required"})
			return
		}
		log.WithError(err).Error("Failed to report sample in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Report a position source failure
// @Description Record a terminal failure of the caller's position source (permission denied, unavailable, timeout, unknown).
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param failure body ReportFailureRequest true "Failure code"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/failure [post]
func (h *Handler) reportFailure(c *gin.Context) {
	var input ReportFailureRequest
	log := h.logger.WithField("method", "reportFailure")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	if err := h.locationService.ReportFailure(c.Request.Context(), ident, input.Code); err != nil {
		log.WithError(err).Error("Failed to report failure in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Retry a failed location stream
// @Description Reset the caller's failed location stream so the next sample starts a fresh subscription.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/retry [post]
func (h *Handler) retryLocation(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	h.locationService.RetryStream(c.Request.Context(), ident)
	c.Status(http.StatusNoContent)
}

// @Summary Disconnect the location stream
// @Description Stop the caller's location stream and best-effort mark the presence record offline.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/disconnect [post]
func (h *Handler) disconnect(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	h.locationService.Disconnect(c.Request.Context(), ident)
	c.Status(http.StatusNoContent)
}

// @Summary Get a presence record
// @Description Get the latest published position and online flag for a user.
// @Tags Presence
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} PresenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Presence record not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/{user_id} [get]
func (h *Handler) getPresence(c *gin.Context) {
	userID := c.Param("user_id")
	log := h.logger.WithField("method", "getPresence").WithField("user_id", userID)

	presence, err := h.locationService.GetPresence(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get presence from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if presence == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "presence record not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToPresenceResponse(presence))
}

// @Summary Share location with a viewer
// @Description Grant a viewer email access to the caller's position. The current position is copied into the grant.
// @Tags Shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param share body CreateShareRequest true "Share creation request"
// @Success 201 {object} ShareResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Owner has no known position yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shares [post]
func (h *Handler) createShare(c *gin.Context) {
	var input CreateShareRequest
	log := h.logger.WithField("method", "createShare")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	share, err := h.shareService.CreateShare(c.Request.Context(), ident, input.ViewerEmail)
	if err != nil {
		if errors.Is(err, service.ErrNoKnownPosition) {
			c.JSON(http.StatusConflict, gin.H{"error": "no known position to share yet"})
			return
		}
		log.WithError(err).Error("Failed to create share in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToShareResponse(share))
}

// @Summary List the caller's active shares
// @Description List active shares issued by the caller, one entry per viewer, for the manage-my-shares view.
// @Tags Shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ShareResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shares [get]
func (h *Handler) listShares(c *gin.Context) {
	log := h.logger.WithField("method", "listShares")

	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	shares, err := h.shareService.ListOwned(c.Request.Context(), ident.Email)
	if err != nil {
		log.WithError(err).Error("Failed to list shares from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToShareResponses(shares))
}

// @Summary Revoke a viewer's access
// @Description Deactivate every active share the caller issued to the given viewer email. Idempotent.
// @Tags Shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param viewer_email path string true "Viewer email"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Revoke was not confirmed, safe to retry"
// @Router /shares/{viewer_email} [delete]
func (h *Handler) revokeShare(c *gin.Context) {
	viewerEmail := c.Param("viewer_email")
	log := h.logger.WithField("method", "revokeShare").WithField("viewer_email", viewerEmail)

	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	if err := h.shareService.RevokeAccess(c.Request.Context(), ident, viewerEmail); err != nil {
		log.WithError(err).Error("Failed to revoke access in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke access"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List locations shared with the caller
// @Description Snapshot of the viewer feed: active, well-formed shares, deduplicated per owner.
// @Tags Shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FeedEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shares/visible [get]
func (h *Handler) listVisible(c *gin.Context) {
	log := h.logger.WithField("method", "listVisible")

	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	entries, err := h.shareService.ListVisible(c.Request.Context(), ident.Email)
	if err != nil {
		log.WithError(err).Error("Failed to list visible shares from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, EntriesToFeedResponses(entries))
}

// @Summary Stream the viewer feed
// @Description Server-sent events stream of the viewer's display list, recomputed on every share change.
// @Tags Shares
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 "SSE stream of feed updates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /shares/visible/stream [get]
func (h *Handler) streamVisible(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
		return
	}

	viewerFeed := h.feeds.Open(c.Request.Context(), ident.Email)
	defer viewerFeed.Close()

	c.Stream(func(w io.Writer) bool {
		select {
		case entries, open := <-viewerFeed.Updates():
			if !open {
				return false
			}
			c.SSEvent("update", EntriesToFeedResponses(entries))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
