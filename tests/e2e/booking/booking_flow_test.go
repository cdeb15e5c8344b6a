//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"housnkuh/internal/domain/vendor"
	reqdto "housnkuh/internal/handler/dto/request"
	resdto "housnkuh/internal/handler/dto/response"
	"housnkuh/internal/usecase/queries"
	"housnkuh/tests/common/builder"
	"housnkuh/tests/common/dbtest"
	"housnkuh/tests/common/httptest"
	"housnkuh/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL  = "/api/vendors/register"
	confirmURL   = "/api/vendors/confirm"
	loginURL     = "/api/auth/login"
	contractsURL = "/api/contracts"
	adminURL     = "/api/admin"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

func (s *bookingSuite) login(email, password string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		reqdto.LoginRequest{Email: email, Password: password}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

func (s *bookingSuite) createUnit(adminToken, label, unitType string, priceCents int64) uuid.UUID {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminURL+"/units",
		reqdto.CreateUnitRequest{Label: label, UnitType: unitType, MonthlyPriceCents: priceCents}, adminToken)

	var response map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	id, err := uuid.Parse(response["id"])
	s.Require().NoError(err)
	return id
}

// Full lifecycle: registration with an embedded booking request, email
// confirmation, admin approval onto concrete units, and trial cancellation.
func (s *bookingSuite) TestVendorBookingLifecycle() {
	// First of the month, two months out, so the contract stays scheduled
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 2, 0)

	registerBody := builder.NewVendorBuilder().
		With(func(v *builder.VendorBuilder) {
			v.Email = "huber@example.com"
			v.Booking.RequestedStart = start
		}).
		BuildRegisterDTO()

	// Register: vendor stored unconfirmed, confirmation mail captured
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, registerBody, "")
	var registered resdto.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &registered)
	vendorID := registered.VendorID

	token := s.Mailer.TokenFor("huber@example.com")
	s.Require().NotEmpty(token, "confirmation mail was not sent")
	s.Equal(token, dbtest.ConfirmationToken(s.T(), s.DB, vendorID))

	// Login is rejected until the address is confirmed
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		reqdto.LoginRequest{Email: "huber@example.com", Password: registerBody.Password}, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not confirmed")

	// Confirm consumes the single-use token
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL+"?token="+token, nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL+"?token="+token, nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "confirmation token")

	vendorToken := s.login("huber@example.com", registerBody.Password)

	// Admin assigns two standard units
	dbtest.CreateTestVendor(s.T(), s.DB, "admin@example.com", string(vendor.RoleAdmin), true)
	adminToken := s.login("admin@example.com", "password123")

	unitA := s.createUnit(adminToken, "R-01", "standard", 3500)
	unitB := s.createUnit(adminToken, "R-02", "standard", 3500)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL+"/bookings", nil, adminToken)
	var pending []*queries.PendingBookingView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &pending)
	s.Require().Len(pending, 1)
	s.Equal(vendorID, pending[0].VendorID)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		adminURL+"/bookings/"+vendorID.String()+"/approve",
		reqdto.ApproveBookingRequest{UnitIDs: []uuid.UUID{unitA, unitB}}, adminToken)
	var approved resdto.ApproveResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &approved)
	s.Equal(start.Format("2006-01-02"), approved.ImpactFrom)
	// 12 contracted months plus the trial month
	s.Equal(start.AddDate(0, 13, 0).Format("2006-01-02"), approved.ImpactTo)

	// A second approval of the same booking is rejected
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		adminURL+"/bookings/"+vendorID.String()+"/approve",
		reqdto.ApproveBookingRequest{UnitIDs: []uuid.UUID{unitA, unitB}}, adminToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already processed")

	// The assigned units report as unavailable over the impact window
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/units/"+unitA.String()+"/availability?from="+start.Format(time.RFC3339)+
			"&to="+start.AddDate(0, 1, 0).Format(time.RFC3339), nil, "")
	var availability resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &availability)
	s.False(availability.Available)

	// The vendor sees the scheduled contract
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, contractsURL, nil, vendorToken)
	var contracts []*queries.ContractListItem
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &contracts)
	s.Require().Len(contracts, 1)
	s.Equal(approved.ContractID, contracts[0].ID)
	s.Equal("scheduled", contracts[0].EffectiveStatus)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		contractsURL+"/"+approved.ContractID.String(), nil, vendorToken)
	var view queries.ContractView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	s.Len(view.Services, 2)
	s.True(view.Trial)

	// Cancelling before the trial month ends flags the trial cancellation
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		contractsURL+"/"+approved.ContractID.String()+"/cancel", nil, vendorToken)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		contractsURL+"/"+approved.ContractID.String(), nil, vendorToken)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	s.Equal("cancelled", view.Status)
	s.True(view.TrialCancelled)

	// A repeated cancellation is rejected
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		contractsURL+"/"+approved.ContractID.String()+"/cancel", nil, vendorToken)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be cancelled")

	// The released units are available again
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/units/"+unitA.String(), nil, "")
	var unitView queries.UnitView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &unitView)
	s.True(unitView.Available)
}

func (s *bookingSuite) TestRegistrationConflicts() {
	registerBody := builder.NewVendorBuilder().
		With(func(v *builder.VendorBuilder) { v.Email = "dup@example.com" }).
		BuildRegisterDTO()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, registerBody, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, registerBody, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
}

func (s *bookingSuite) TestAdminOnlyRoutes() {
	dbtest.CreateTestVendor(s.T(), s.DB, "plain@example.com", string(vendor.RoleVendor), true)
	vendorToken := s.login("plain@example.com", "password123")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL+"/bookings", nil, vendorToken)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL+"/bookings", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}
