//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"postify/internal/domain/recipient"
	"postify/internal/handler/api"
	resdto "postify/internal/handler/dto/response"
	"postify/internal/usecase"
	"postify/tests/common/httptest"
	usecasemock "postify/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUser *usecasemock.MockUserUseCase
	handler  *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUser = usecasemock.NewMockUserUseCase(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockUser)

	s.router.POST("/users", s.handler.Create)
	s.router.GET("/users", s.handler.List)
	s.router.GET("/users/:id", s.handler.Get)
	s.router.PUT("/users/:id", s.handler.Update)
	s.router.DELETE("/users/:id", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"
	fields := map[string]string{
		"phone":   "919999999999",
		"mail":    "hello@example.com",
		"website": "example.in",
	}

	s.Run("multipart form with a logo is created", func() {
		id := uuid.New()
		logo := []byte{0x89, 0x50, 0x4e, 0x47}
		s.mockUser.EXPECT().
			Create(gomock.Any(), usecase.CreateUserInput{
				Phone:        "919999999999",
				Mail:         "hello@example.com",
				Website:      "example.in",
				Logo:         logo,
				LogoFilename: "logo.png",
			}).
			Return(id, nil)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			fields, map[string][]byte{"logo": logo}, "")

		s.Equal(http.StatusCreated, w.Code)
		var resp resdto.CreatedResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(id, resp.ID)
	})

	s.Run("logo is optional", func() {
		s.mockUser.EXPECT().
			Create(gomock.Any(), usecase.CreateUserInput{
				Phone:   "919999999999",
				Mail:    "hello@example.com",
				Website: "example.in",
			}).
			Return(uuid.New(), nil)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, fields, nil, "")

		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("missing required field is a 400", func() {
		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"phone": "919999999999"}, nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unreadable logo image is a 400", func() {
		s.mockUser.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, usecase.ErrInvalidImage)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			fields, map[string][]byte{"logo": []byte("junk")}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid image file")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("existing user is returned", func() {
		u := recipient.User{
			ID:           uuid.New(),
			Phone:        "919999999999",
			Mail:         "hello@example.com",
			Website:      "example.in",
			LogoFilename: "logo.png",
			CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		s.mockUser.EXPECT().Get(gomock.Any(), u.ID).Return(u, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+u.ID.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.UserResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(u.ID, resp.ID)
		s.Equal("919999999999", resp.Phone)
	})

	s.Run("unknown user is a 404", func() {
		id := uuid.New()
		s.mockUser.EXPECT().Get(gomock.Any(), id).Return(recipient.User{}, usecase.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+id.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/users/" + id.String()

	s.Run("partial field update", func() {
		mail := "new@example.com"
		s.mockUser.EXPECT().
			Update(gomock.Any(), id, usecase.UpdateUserInput{Mail: &mail}).
			Return(nil)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{"mail": "new@example.com"}, nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("empty patch is a 400", func() {
		s.mockUser.EXPECT().
			Update(gomock.Any(), id, usecase.UpdateUserInput{}).
			Return(usecase.ErrNoFieldsToUpdate)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPut, url, nil, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No fields to update")
	})

	s.Run("unknown user is a 404", func() {
		phone := "1"
		s.mockUser.EXPECT().
			Update(gomock.Any(), id, usecase.UpdateUserInput{Phone: &phone}).
			Return(usecase.ErrUserNotFound)

		w := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPut, url,
			map[string]string{"phone": "1"}, nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("existing user is deleted", func() {
		id := uuid.New()
		s.mockUser.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+id.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown user is a 404", func() {
		id := uuid.New()
		s.mockUser.EXPECT().Delete(gomock.Any(), id).Return(usecase.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+id.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}
