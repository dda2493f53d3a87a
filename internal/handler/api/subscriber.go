package api

import (
	"errors"
	"net/http"

	"postify/internal/domain/recipient"
	reqdto "postify/internal/handler/dto/request"
	resdto "postify/internal/handler/dto/response"
	"postify/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriberHandler struct {
	subscriberUseCase usecase.SubscriberUseCase
}

func NewSubscriberHandler(subscriberUseCase usecase.SubscriberUseCase) *SubscriberHandler {
	return &SubscriberHandler{subscriberUseCase: subscriberUseCase}
}

// @Summary Create subscriber
// @Description Register a recipient with a full-canvas overlay
// @Tags subscribers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Subscriber name"
// @Param phone formData string true "Phone number"
// @Param overlay formData file true "Overlay image"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /subscribers [post]
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req reqdto.CreateSubscriberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	overlay, err := readUpload(req.Overlay)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read overlay upload",
		})
		return
	}

	id, err := h.subscriberUseCase.Create(c.Request.Context(), usecase.CreateSubscriberInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Overlay: overlay,
	})
	if err != nil {
		switch {
		case errors.Is(err, recipient.ErrEmptyPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Phone must not be empty",
			})
		case errors.Is(err, usecase.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid image file",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{
		Status:  "success",
		Message: "Subscriber created successfully",
		ID:      id,
	})
}

// @Summary List subscribers
// @Tags subscribers
// @Produce json
// @Success 200 {array} resdto.SubscriberResponse
// @Router /subscribers [get]
func (h *SubscriberHandler) List(c *gin.Context) {
	subs, err := h.subscriberUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	resp, err := resdto.FromSubscriberSummaries(subs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get subscriber
// @Tags subscribers
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} resdto.SubscriberResponse
// @Failure 404 {object} map[string]string
// @Router /subscribers/{id} [get]
func (h *SubscriberHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscriber ID",
		})
		return
	}

	sub, err := h.subscriberUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSubscriberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Subscriber not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromSubscriber(sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update subscriber
// @Tags subscribers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /subscribers/{id} [put]
func (h *SubscriberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscriber ID",
		})
		return
	}

	var req reqdto.UpdateSubscriberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := usecase.UpdateSubscriberInput{
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.Overlay != nil {
		raw, err := readUpload(req.Overlay)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to read overlay upload",
			})
			return
		}
		input.Overlay = raw
	}

	if err := h.subscriberUseCase.Update(c.Request.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSubscriberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Subscriber not found",
			})
		case errors.Is(err, usecase.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid image file",
			})
		case errors.Is(err, usecase.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No fields to update",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Subscriber updated successfully",
	})
}

// @Summary Delete subscriber
// @Tags subscribers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /subscribers/{id} [delete]
func (h *SubscriberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscriber ID",
		})
		return
	}

	if err := h.subscriberUseCase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrSubscriberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Subscriber not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Subscriber deleted successfully",
	})
}
