//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"postify/internal/domain/holiday"
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

type HolidayHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockHoliday *usecasemock.MockHolidayUseCase
	handler     *api.HolidayHandler
}

func (s *HolidayHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHoliday = usecasemock.NewMockHolidayUseCase(s.mockCtrl)
	s.handler = api.NewHolidayHandler(s.mockHoliday)

	s.router.POST("/holidays", s.handler.Create)
	s.router.GET("/holidays", s.handler.List)
	s.router.GET("/holidays/:id", s.handler.Get)
	s.router.GET("/holidays/date/:date", s.handler.GetByDate)
	s.router.PUT("/holidays/:id", s.handler.Update)
	s.router.DELETE("/holidays/:id", s.handler.Delete)
}

func (s *HolidayHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHolidayHandlerSuite(t *testing.T) {
	suite.Run(t, new(HolidayHandlerTestSuite))
}

func (s *HolidayHandlerTestSuite) TestCreate() {
	url := "/holidays"
	reqBody := map[string]any{"date": "15-08-2025", "prompt": "Independence Day"}

	s.Run("valid entry is created", func() {
		id := uuid.New()
		s.mockHoliday.EXPECT().
			Create(gomock.Any(), usecase.CreateHolidayInput{Date: "15-08-2025", Prompt: "Independence Day"}).
			Return(id, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusCreated, w.Code)
		var resp resdto.CreatedResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("success", resp.Status)
		s.Equal(id, resp.ID)
	})

	s.Run("invalid date layout is a 400", func() {
		s.mockHoliday.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, holiday.ErrInvalidDate)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"date": "2025-08-15", "prompt": "Independence Day"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "DD-MM-YYYY")
	})

	s.Run("duplicate date is a 409", func() {
		s.mockHoliday.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, usecase.ErrDuplicateHoliday)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("missing prompt is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"date": "15-08-2025"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HolidayHandlerTestSuite) TestGet() {
	s.Run("existing holiday is returned", func() {
		entry := holiday.Holiday{
			ID:        uuid.New(),
			Date:      "15-08-2025",
			Prompt:    "Independence Day",
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		s.mockHoliday.EXPECT().Get(gomock.Any(), entry.ID).Return(entry, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holidays/"+entry.ID.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.HolidayResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(entry.ID, resp.ID)
		s.Equal("15-08-2025", resp.Date)
	})

	s.Run("unknown id is a 404", func() {
		id := uuid.New()
		s.mockHoliday.EXPECT().Get(gomock.Any(), id).Return(holiday.Holiday{}, usecase.ErrHolidayNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holidays/"+id.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holidays/nope", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HolidayHandlerTestSuite) TestGetByDate() {
	s.Run("calendar lookup by date", func() {
		entry := holiday.Holiday{ID: uuid.New(), Date: "20-10-2025", Prompt: "Diwali"}
		s.mockHoliday.EXPECT().GetByDate(gomock.Any(), "20-10-2025").Return(entry, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holidays/date/20-10-2025", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid date layout is a 400", func() {
		s.mockHoliday.EXPECT().GetByDate(gomock.Any(), "2025-10-20").
			Return(holiday.Holiday{}, holiday.ErrInvalidDate)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holidays/date/2025-10-20", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("no entry for the date is a 404", func() {
		s.mockHoliday.EXPECT().GetByDate(gomock.Any(), "21-10-2025").
			Return(holiday.Holiday{}, usecase.ErrHolidayNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holidays/date/21-10-2025", nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *HolidayHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/holidays/" + id.String()

	s.Run("partial update succeeds", func() {
		prompt := "Deepavali"
		s.mockHoliday.EXPECT().
			Update(gomock.Any(), id, usecase.UpdateHolidayInput{Prompt: &prompt}).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"prompt": "Deepavali"}, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("empty patch is a 400", func() {
		s.mockHoliday.EXPECT().
			Update(gomock.Any(), id, usecase.UpdateHolidayInput{}).
			Return(usecase.ErrNoFieldsToUpdate)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No fields to update")
	})

	s.Run("date collision is a 409", func() {
		date := "15-08-2025"
		s.mockHoliday.EXPECT().
			Update(gomock.Any(), id, usecase.UpdateHolidayInput{Date: &date}).
			Return(usecase.ErrDuplicateHoliday)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"date": "15-08-2025"}, "")

		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *HolidayHandlerTestSuite) TestDelete() {
	s.Run("existing holiday is deleted", func() {
		id := uuid.New()
		s.mockHoliday.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holidays/"+id.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown id is a 404", func() {
		id := uuid.New()
		s.mockHoliday.EXPECT().Delete(gomock.Any(), id).Return(usecase.ErrHolidayNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holidays/"+id.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}
