//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/domain/settings"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/commands"
	"housnkuh/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ApprovalSuite struct {
	suite.Suite
	uow      *fakeUoW
	approval commands.ApprovalCommands

	vendorID uuid.UUID
	adminID  uuid.UUID
	unitIDs  []uuid.UUID
}

func TestApprovalSuite(t *testing.T) {
	suite.Run(t, new(ApprovalSuite))
}

func (s *ApprovalSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.approval = commands.NewApprovalCommands(s.uow, clock.NewMockClock(time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)))
	s.adminID = uuid.New()

	// A confirmed vendor with a pending two-unit booking, and two free units.
	vb := builder.NewVendorBuilder()
	s.vendorID = vb.ID
	s.uow.store.vendors[vb.ID] = vb.BuildSnapshot()

	s.unitIDs = nil
	for _, label := range []string{"R-01", "R-02"} {
		ub := builder.NewUnitBuilder()
		ub.Label = label
		s.uow.store.units[ub.ID] = ub.BuildSnapshot()
		s.unitIDs = append(s.unitIDs, ub.ID)
	}
}

func (s *ApprovalSuite) TestApprove() {
	ctx := context.Background()

	s.Run("creates a scheduled contract and assigns the units", func() {
		result, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.Require().NoError(err)
		s.Require().NotNil(result)

		// Trial month extends the 12 contracted months by one.
		s.Equal("2025-09-01", result.ImpactFrom)
		s.Equal("2026-10-01", result.ImpactTo)

		stored, ok := s.uow.store.contracts[result.ContractID]
		s.Require().True(ok)
		s.Equal(contract.StatusScheduled.String(), stored.Status)
		s.Equal(s.vendorID, stored.VendorID)
		s.True(stored.Trial)
		s.Len(stored.Services, 2)

		booking := s.uow.store.vendors[s.vendorID].Booking
		s.Equal(vendor.BookingConfirmed.String(), booking.Status)
		s.Require().NotNil(booking.ContractID)
		s.Equal(result.ContractID, *booking.ContractID)
		s.ElementsMatch(s.unitIDs, booking.AssignedUnitIDs)

		for _, id := range s.unitIDs {
			u := s.uow.store.units[id]
			s.False(u.Available)
			s.Require().NotNil(u.OccupiedBy)
			s.Equal(result.ContractID, *u.OccupiedBy)
		}
	})

	s.Run("store opening after the start delays billing", func() {
		opening := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		store, err := settings.NewStoreOpening(true, &opening, 14)
		s.Require().NoError(err)
		s.uow.store.opening = store

		result, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.Require().NoError(err)

		stored := s.uow.store.contracts[result.ContractID]
		s.Equal(opening, stored.BillableFrom)
		// The impact window starts at the requested start regardless.
		s.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), stored.ImpactFrom)
	})
}

func (s *ApprovalSuite) TestApproveValidation() {
	ctx := context.Background()

	s.Run("no units assigned", func() {
		_, err := s.approval.Approve(ctx, s.vendorID, nil, s.adminID)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("duplicate unit assignment", func() {
		_, err := s.approval.Approve(ctx, s.vendorID, []uuid.UUID{s.unitIDs[0], s.unitIDs[0]}, s.adminID)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("assigned count must match the package", func() {
		_, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs[:1], s.adminID)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("unknown vendor", func() {
		_, err := s.approval.Approve(ctx, uuid.New(), s.unitIDs, s.adminID)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("vendor without booking", func() {
		vb := builder.NewVendorBuilder()
		vb.Booking = nil
		s.uow.store.vendors[vb.ID] = vb.BuildSnapshot()

		_, err := s.approval.Approve(ctx, vb.ID, s.unitIDs, s.adminID)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("unconfirmed vendor", func() {
		s.uow.store.vendors[s.vendorID].Confirmed = false
		_, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.ErrorIs(err, errs.ErrVendorNotConfirmed)
	})

	s.Run("booking already processed", func() {
		s.uow.store.vendors[s.vendorID].Booking.Status = vendor.BookingConfirmed.String()
		_, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.ErrorIs(err, errs.ErrBookingAlreadyProcessed)
	})

	s.Run("unknown unit", func() {
		_, err := s.approval.Approve(ctx, s.vendorID, []uuid.UUID{s.unitIDs[0], uuid.New()}, s.adminID)
		s.ErrorIs(err, errs.ErrUnitNotFound)
	})
}

func (s *ApprovalSuite) TestApproveConflict() {
	ctx := context.Background()

	seedContract := func(from, to time.Time) {
		cb := builder.NewContractBuilder()
		cb.UnitIDs = []uuid.UUID{s.unitIDs[0]}
		cb.ImpactFrom = from
		cb.ImpactTo = to
		s.uow.store.contracts[cb.ID] = cb.BuildSnapshot()
	}

	s.Run("overlapping contract on one unit aborts without partial mutation", func() {
		seedContract(
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		)
		before := s.uow.store.clone()

		_, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.Require().ErrorIs(err, errs.ErrContractConflict)

		// All-or-nothing: no contract, booking still pending, units untouched.
		s.Empty(cmp.Diff(before.vendors, s.uow.store.vendors))
		s.Empty(cmp.Diff(before.units, s.uow.store.units))
		s.Empty(cmp.Diff(before.contracts, s.uow.store.contracts))
		s.Equal(vendor.BookingPending.String(), s.uow.store.vendors[s.vendorID].Booking.Status)
	})

	s.Run("adjacent contract ending at the requested start does not conflict", func() {
		s.SetupTest()
		seedContract(
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		)

		result, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.Require().NoError(err)
		s.NotNil(result)
	})

	s.Run("cancelled contract does not block the units", func() {
		s.SetupTest()
		cb := builder.NewContractBuilder()
		cb.UnitIDs = []uuid.UUID{s.unitIDs[0]}
		cb.Status = contract.StatusCancelled.String()
		s.uow.store.contracts[cb.ID] = cb.BuildSnapshot()

		_, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
		s.NoError(err)
	})
}

func (s *ApprovalSuite) TestApproveNonTrialWindow() {
	ctx := context.Background()

	s.uow.store.vendors[s.vendorID].Booking.Trial = false

	result, err := s.approval.Approve(ctx, s.vendorID, s.unitIDs, s.adminID)
	s.Require().NoError(err)

	assert.Equal(s.T(), "2025-09-01", result.ImpactFrom)
	assert.Equal(s.T(), "2026-09-01", result.ImpactTo)
	require.False(s.T(), s.uow.store.contracts[result.ContractID].Trial)
}
