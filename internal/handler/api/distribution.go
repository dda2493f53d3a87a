package api

import (
	"errors"
	"net/http"

	"postify/internal/domain/distribution"
	resdto "postify/internal/handler/dto/response"
	"postify/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DistributionHandler struct {
	distributionUseCase usecase.DistributionUseCase
}

func NewDistributionHandler(distributionUseCase usecase.DistributionUseCase) *DistributionHandler {
	return &DistributionHandler{distributionUseCase: distributionUseCase}
}

// @Summary Distribute to users
// @Description Generate today's post and fan it out to all users with logo and footer branding
// @Tags distribution
// @Produce json
// @Security BearerAuth
// @Success 202 {object} resdto.DistributionStartedResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} resdto.DistributionStartedResponse
// @Router /users/distribute [post]
func (h *DistributionHandler) DistributeToUsers(c *gin.Context) {
	result, err := h.distributionUseCase.DistributeToUsers(c.Request.Context())
	if err != nil {
		h.startError(c, err)
		return
	}

	h.started(c, result, distribution.AudienceUsers, "/api/users/distribution-status")
}

// @Summary Distribute to subscribers
// @Description Generate today's post and fan it out to all subscribers with their overlays
// @Tags distribution
// @Produce json
// @Security BearerAuth
// @Success 202 {object} resdto.DistributionStartedResponse
// @Failure 404 {object} map[string]string
// @Router /subscribers/distribute [post]
func (h *DistributionHandler) DistributeToSubscribers(c *gin.Context) {
	result, err := h.distributionUseCase.DistributeToSubscribers(c.Request.Context())
	if err != nil {
		h.startError(c, err)
		return
	}

	h.started(c, result, distribution.AudienceSubscribers, "/api/subscribers/distribution-status")
}

// @Summary Distribution job status
// @Tags distribution
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} resdto.JobStatusResponse
// @Failure 404 {object} map[string]string
// @Router /users/distribution-status/{job_id} [get]
func (h *DistributionHandler) Status(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid job ID",
		})
		return
	}

	snapshot, err := h.distributionUseCase.Status(jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Job not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snapshot))
}

// started answers an accepted start. When base synthesis already failed the
// job is terminal and the caller gets a 502 that still carries the job ID.
func (h *DistributionHandler) started(c *gin.Context, result usecase.StartResult, audience distribution.Audience, statusPath string) {
	if result.Failed {
		resp := resdto.DistributionStartedResponse{
			Status:  "failed",
			JobID:   result.JobID,
			Holiday: result.Holiday,
			Error:   result.Error,
		}
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusAccepted, resdto.NewDistributionStarted(
		result.JobID, result.Holiday, result.Total, audience, statusPath))
}

func (h *DistributionHandler) startError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoHolidayToday):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No holiday found for today",
		})
	case errors.Is(err, usecase.ErrNoRecipients):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No recipients found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
