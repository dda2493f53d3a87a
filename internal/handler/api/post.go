package api

import (
	"errors"
	"net/http"

	reqdto "postify/internal/handler/dto/request"
	resdto "postify/internal/handler/dto/response"
	"postify/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
}

func NewPostHandler(postUseCase usecase.PostUseCase) *PostHandler {
	return &PostHandler{postUseCase: postUseCase}
}

// @Summary Generate one post
// @Description Generate a post for today's (or the given) occasion and send it to one phone
// @Tags posts
// @Produce json
// @Param holiday query string false "Occasion override"
// @Param phone query string false "Receiver phone number"
// @Param mail query string false "Footer email"
// @Param website query string false "Footer website"
// @Success 200 {object} resdto.GeneratePostResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /posts/generate [post]
func (h *PostHandler) Generate(c *gin.Context) {
	var req reqdto.GeneratePostRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.postUseCase.Generate(c.Request.Context(), usecase.GeneratePostInput{
		Holiday: req.Holiday,
		Phone:   req.Phone,
		Mail:    req.Mail,
		Website: req.Website,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNoHolidayToday) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No holiday found for today and no holiday parameter provided",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resdto.GeneratePostResponse{
		Success: result.Success,
		Holiday: result.Holiday,
		Caption: result.Caption,
		Message: result.Message,
	})
}
