//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"petcare-booking/internal/handler/api"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/usecase"
	"petcare-booking/tests/common/builder"
	"petcare-booking/tests/common/httptest"
	usecasemock "petcare-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)
	s.userID = uuid.New()

	withUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			h(c)
		}
	}

	s.router.POST("/bookings/wizard", withUser(s.handler.EvaluateWizard))
	s.router.POST("/bookings", withUser(s.handler.CreateBooking))
	s.router.GET("/bookings", withUser(s.handler.ListBookings))
	s.router.GET("/bookings/:id", withUser(s.handler.GetBooking))
	s.router.DELETE("/bookings/:id", withUser(s.handler.CancelBooking))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestEvaluateWizard() {
	s.Run("success: reports the derived step", func() {
		s.mockUseCase.EXPECT().EvaluateWizard(gomock.Any()).
			Return(&usecase.WizardView{Step: 2, StepName: "branch", Complete: false}).Times(1)

		body := map[string]any{"pet_id": uuid.New().String(), "time": "10:00 AM"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/wizard", body, "")

		var response resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Step)
		s.Equal("branch", response.StepName)
		s.False(response.Complete)
	})

	s.Run("success: an empty body is still a valid draft", func() {
		s.mockUseCase.EXPECT().EvaluateWizard(gomock.Any()).
			Return(&usecase.WizardView{Step: 1, StepName: "pet_and_schedule", Complete: false}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/wizard", map[string]any{}, "")

		var response resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Step)
	})
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the confirmation payload", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		s.mockUseCase.EXPECT().SubmitBooking(gomock.Any(), s.userID, gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Buddy", response.PetName)
		s.Equal("Aseo Básico", response.PlanName)
		s.Equal("Sucursal Palermo", response.BranchName)
		s.Equal("10:00 AM", response.Time)
		s.Equal("scheduled", response.ReminderStatus)
	})

	s.Run("error: 422 with guidance when the draft is incomplete", func() {
		s.mockUseCase.EXPECT().SubmitBooking(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, usecase.ErrIncompleteBooking).Times(1)

		body := map[string]any{"plan_id": "plan1"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "completa todos los campos")
	})

	s.Run("error: 404 on unknown references", func() {
		cases := []struct {
			name string
			err  error
		}{
			{name: "pet", err: usecase.ErrPetNotFound},
			{name: "plan", err: usecase.ErrPlanNotFound},
			{name: "branch", err: usecase.ErrBranchNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().SubmitBooking(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
			})
		}
	})

	s.Run("error: 422 on time slot problems", func() {
		cases := []struct {
			name string
			err  error
		}{
			{name: "off-catalog slot", err: usecase.ErrUnknownTimeSlot},
			{name: "malformed time", err: usecase.ErrMalformedTime},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().SubmitBooking(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
			})
		}
	})

	s.Run("error: 400 Bad Request when plan_id is missing", func() {
		body := map[string]any{"pet_id": uuid.New().String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the booking", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), s.userID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), s.userID, id).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), s.userID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().CancelBooking(gomock.Any(), s.userID, id).
			Return(usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
