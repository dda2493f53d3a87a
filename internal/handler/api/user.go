package api

import (
	"errors"
	"net/http"

	reqdto "postify/internal/handler/dto/request"
	resdto "postify/internal/handler/dto/response"
	"postify/internal/domain/recipient"
	"postify/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// @Summary Create user
// @Description Register a branded recipient with an optional logo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param phone formData string true "Phone number"
// @Param mail formData string true "Footer email"
// @Param website formData string true "Footer website"
// @Param logo formData file false "Logo image"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := usecase.CreateUserInput{
		Phone:   req.Phone,
		Mail:    req.Mail,
		Website: req.Website,
	}
	if req.Logo != nil {
		raw, err := readUpload(req.Logo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to read logo upload",
			})
			return
		}
		input.Logo = raw
		input.LogoFilename = req.Logo.Filename
	}

	id, err := h.userUseCase.Create(c.Request.Context(), input)
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
		Message: "User created successfully",
		ID:      id,
	})
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	resp, err := resdto.FromUserSummaries(users)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := usecase.UpdateUserInput{
		Phone:   req.Phone,
		Mail:    req.Mail,
		Website: req.Website,
	}
	if req.Logo != nil {
		raw, err := readUpload(req.Logo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to read logo upload",
			})
			return
		}
		input.Logo = raw
		filename := req.Logo.Filename
		input.LogoFilename = &filename
	}

	if err := h.userUseCase.Update(c.Request.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
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
		"message": "User updated successfully",
	})
}

// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
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
		"message": "User deleted successfully",
	})
}
