package api

import (
	"errors"
	"net/http"

	"postify/internal/domain/holiday"
	reqdto "postify/internal/handler/dto/request"
	resdto "postify/internal/handler/dto/response"
	"postify/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HolidayHandler struct {
	holidayUseCase usecase.HolidayUseCase
}

func NewHolidayHandler(holidayUseCase usecase.HolidayUseCase) *HolidayHandler {
	return &HolidayHandler{holidayUseCase: holidayUseCase}
}

// @Summary Create holiday
// @Description Register a calendar entry; the date must be unique
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHolidayRequest true "Holiday"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /holidays [post]
func (h *HolidayHandler) Create(c *gin.Context) {
	var req reqdto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.holidayUseCase.Create(c.Request.Context(), usecase.CreateHolidayInput{
		Date:        req.Date,
		Prompt:      req.Prompt,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, holiday.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be in DD-MM-YYYY format",
			})
		case errors.Is(err, usecase.ErrDuplicateHoliday):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Holiday already exists for that date",
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
		Message: "Holiday created successfully",
		ID:      id,
	})
}

// @Summary List holidays
// @Tags holidays
// @Produce json
// @Success 200 {array} resdto.HolidayResponse
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	holidays, err := h.holidayUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromHolidays(holidays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get holiday
// @Tags holidays
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 200 {object} resdto.HolidayResponse
// @Failure 404 {object} map[string]string
// @Router /holidays/{id} [get]
func (h *HolidayHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid holiday ID",
		})
		return
	}

	entry, err := h.holidayUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrHolidayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Holiday not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromHoliday(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get holiday by date
// @Tags holidays
// @Produce json
// @Param date path string true "Date (DD-MM-YYYY)"
// @Success 200 {object} resdto.HolidayResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /holidays/date/{date} [get]
func (h *HolidayHandler) GetByDate(c *gin.Context) {
	entry, err := h.holidayUseCase.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, holiday.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be in DD-MM-YYYY format",
			})
		case errors.Is(err, usecase.ErrHolidayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Holiday not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromHoliday(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update holiday
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Param request body reqdto.UpdateHolidayRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /holidays/{id} [put]
func (h *HolidayHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid holiday ID",
		})
		return
	}

	var req reqdto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.holidayUseCase.Update(c.Request.Context(), id, usecase.UpdateHolidayInput{
		Date:        req.Date,
		Prompt:      req.Prompt,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, holiday.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be in DD-MM-YYYY format",
			})
		case errors.Is(err, usecase.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No fields to update",
			})
		case errors.Is(err, usecase.ErrHolidayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Holiday not found",
			})
		case errors.Is(err, usecase.ErrDuplicateHoliday):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Holiday already exists for that date",
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
		"message": "Holiday updated successfully",
	})
}

// @Summary Delete holiday
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /holidays/{id} [delete]
func (h *HolidayHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid holiday ID",
		})
		return
	}

	if err := h.holidayUseCase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrHolidayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Holiday not found",
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
		"message": "Holiday deleted successfully",
	})
}
