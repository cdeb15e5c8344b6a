//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/handler/api"
	reqdto "housnkuh/internal/handler/dto/request"
	resdto "housnkuh/internal/handler/dto/response"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/commands"
	"housnkuh/internal/usecase/queries"
	"housnkuh/tests/common/builder"
	"housnkuh/tests/common/httptest"
	"housnkuh/tests/common/testutil"
	commandsmock "housnkuh/tests/mock/commands"
	queriesmock "housnkuh/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockApproval        *commandsmock.MockApprovalCommands
	mockUnitCommands    *commandsmock.MockUnitCommands
	mockSettingsCmd     *commandsmock.MockSettingsCommands
	mockVendorQueries   *queriesmock.MockVendorQueries
	mockContractQueries *queriesmock.MockContractQueries
	mockSettingsQueries *queriesmock.MockSettingsQueries
	handler             *api.AdminHandler

	adminID uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockApproval = commandsmock.NewMockApprovalCommands(s.mockCtrl)
	s.mockUnitCommands = commandsmock.NewMockUnitCommands(s.mockCtrl)
	s.mockSettingsCmd = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockVendorQueries = queriesmock.NewMockVendorQueries(s.mockCtrl)
	s.mockContractQueries = queriesmock.NewMockContractQueries(s.mockCtrl)
	s.mockSettingsQueries = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(
		s.mockApproval,
		s.mockUnitCommands,
		s.mockSettingsCmd,
		s.mockVendorQueries,
		s.mockContractQueries,
		s.mockSettingsQueries,
	)

	s.adminID = uuid.New()

	// Mock middleware behavior: an Authorization header authenticates
	// as the admin.
	authStub := func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.adminID)
			c.Set("user_role", vendor.RoleAdmin)
		}
	}

	s.router.GET("/admin/bookings", authStub, s.handler.ListPendingBookings)
	s.router.POST("/admin/bookings/:vendorId/approve", authStub, s.handler.ApproveBooking)
	s.router.GET("/admin/contracts", authStub, s.handler.ListContracts)
	s.router.POST("/admin/units", authStub, s.handler.CreateUnit)
	s.router.PATCH("/admin/units/:id", authStub, s.handler.UpdateUnit)
	s.router.GET("/admin/settings", authStub, s.handler.GetSettings)
	s.router.PUT("/admin/settings", authStub, s.handler.UpdateSettings)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListPendingBookings() {
	s.Run("success: returns pending booking requests", func() {
		view := builder.NewVendorBuilder().BuildView().Booking
		s.mockVendorQueries.EXPECT().ListPendingBookings(gomock.Any()).
			Return([]*queries.PendingBookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "bearer-token")

		var response []*queries.PendingBookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Starter", response[0].PackageName)
	})

	s.Run("error: 500 when the query fails", func() {
		s.mockVendorQueries.EXPECT().ListPendingBookings(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestApproveBooking() {
	vendorID := uuid.New()
	unitIDs := []uuid.UUID{uuid.New(), uuid.New()}
	url := "/admin/bookings/" + vendorID.String() + "/approve"
	reqBody := reqdto.ApproveBookingRequest{UnitIDs: unitIDs}

	s.Run("success: returns 201 Created with the contract window", func() {
		contractID := uuid.New()
		s.mockApproval.EXPECT().Approve(gomock.Any(), vendorID, unitIDs, s.adminID).
			Return(&commands.ApproveResult{
				ContractID: contractID,
				ImpactFrom: "2025-09-01",
				ImpactTo:   "2026-10-01",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ApproveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(contractID, response.ContractID)
		s.Equal("2025-09-01", response.ImpactFrom)
		s.Equal("2026-10-01", response.ImpactTo)
	})

	s.Run("error: 400 on bad input", func() {
		cases := []struct {
			name   string
			url    string
			mutate func(m map[string]any)
		}{
			{name: "malformed vendor ID", url: "/admin/bookings/not-a-uuid/approve"},
			{name: "missing unit IDs", url: url, mutate: testutil.Field("unit_ids", nil)},
			{name: "empty unit IDs", url: url, mutate: testutil.Field("unit_ids", []string{})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody)
				if tc.mutate != nil {
					tc.mutate(requestMap)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			approveError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "vendor not found",
				approveError:   errs.ErrVendorNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vendor not found",
			},
			{
				name:           "no booking request",
				approveError:   errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No booking request",
			},
			{
				name:           "unknown unit",
				approveError:   errs.ErrUnitNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "units not found",
			},
			{
				name:           "vendor not confirmed",
				approveError:   errs.ErrVendorNotConfirmed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not confirmed",
			},
			{
				name:           "booking already processed",
				approveError:   errs.ErrBookingAlreadyProcessed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already processed",
			},
			{
				name:           "overlapping contract",
				approveError:   errs.ErrContractConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "overlapping period",
			},
			{
				name:           "unit occupied",
				approveError:   errs.ErrUnitOccupied,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already occupied",
			},
			{
				name:           "domain validation",
				approveError:   errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				approveError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockApproval.EXPECT().Approve(gomock.Any(), vendorID, unitIDs, s.adminID).
					Return(nil, tc.approveError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestListContracts() {
	s.Run("success: returns all contracts", func() {
		items := []*queries.ContractListItem{
			builder.NewContractBuilder().BuildListItem(),
			builder.NewContractBuilder().BuildListItem(),
		}
		s.mockContractQueries.EXPECT().ListAll(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/contracts", nil, "bearer-token")

		var response []*queries.ContractListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *AdminHandlerTestSuite) TestCreateUnit() {
	url := "/admin/units"
	reqBody := reqdto.CreateUnitRequest{
		Label:             "K-01",
		UnitType:          "cooled",
		MonthlyPriceCents: 5500,
	}

	s.Run("success: returns 201 Created with the unit ID", func() {
		unitID := uuid.New()
		s.mockUnitCommands.EXPECT().Create(gomock.Any(), commands.CreateUnitInput{
			Label:             "K-01",
			UnitType:          "cooled",
			MonthlyPriceCents: 5500,
		}).Return(unitID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(unitID.String(), response["id"])
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing label", mutate: testutil.Field("label", nil)},
			{name: "missing unit type", mutate: testutil.Field("unit_type", nil)},
			{name: "negative price", mutate: testutil.Field("monthly_price_cents", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 on domain validation failures", func() {
		s.mockUnitCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateUnit() {
	unitID := uuid.New()
	url := "/admin/units/" + unitID.String()
	newLabel := "R-07"
	newPrice := int64(4200)
	reqBody := reqdto.UpdateUnitRequest{Label: &newLabel, MonthlyPriceCents: &newPrice}

	s.Run("success: returns 204 No Content", func() {
		s.mockUnitCommands.EXPECT().Update(gomock.Any(), unitID, commands.UpdateUnitInput{
			Label:             &newLabel,
			MonthlyPriceCents: &newPrice,
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/units/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid unit ID")
	})

	s.Run("error: 404 for an unknown unit", func() {
		s.mockUnitCommands.EXPECT().Update(gomock.Any(), unitID, gomock.Any()).
			Return(errs.ErrUnitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unit not found")
	})

	s.Run("error: 422 on domain validation failures", func() {
		s.mockUnitCommands.EXPECT().Update(gomock.Any(), unitID, gomock.Any()).
			Return(errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *AdminHandlerTestSuite) TestGetSettings() {
	s.Run("success: returns the store opening settings", func() {
		opening := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		view := &queries.StoreOpeningView{
			Enabled:          true,
			OpeningDate:      &opening,
			ReminderLeadDays: 14,
			UpdatedAt:        time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC),
		}
		s.mockSettingsQueries.EXPECT().Get(gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/settings", nil, "bearer-token")

		var response queries.StoreOpeningView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Enabled)
		s.Require().NotNil(response.OpeningDate)
		s.True(opening.Equal(*response.OpeningDate))
	})
}

func (s *AdminHandlerTestSuite) TestUpdateSettings() {
	url := "/admin/settings"
	opening := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	reqBody := reqdto.UpdateSettingsRequest{
		Enabled:          true,
		OpeningDate:      &opening,
		ReminderLeadDays: 14,
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockSettingsCmd.EXPECT().Update(gomock.Any(), s.adminID, commands.UpdateSettingsInput{
			Enabled:          true,
			OpeningDate:      &opening,
			ReminderLeadDays: 14,
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without authentication context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})

	s.Run("error: 422 when gating is enabled without a date", func() {
		s.mockSettingsCmd.EXPECT().Update(gomock.Any(), s.adminID, gomock.Any()).
			Return(errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Opening date required")
	})
}
