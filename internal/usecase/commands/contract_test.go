//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/commands"
	"housnkuh/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ContractCancelSuite struct {
	suite.Suite
	uow      *fakeUoW
	clk      *clock.MockClock
	cancel   commands.ContractCommands
	vendorID uuid.UUID
	contract uuid.UUID
	unitIDs  []uuid.UUID
}

func TestContractCancelSuite(t *testing.T) {
	suite.Run(t, new(ContractCancelSuite))
}

// Seeds a scheduled trial contract (Sep 2025 start, 12 months) whose two
// units are occupied by it.
func (s *ContractCancelSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.clk = clock.NewMockClock(time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC))
	s.cancel = commands.NewContractCommands(s.uow, s.clk)

	cb := builder.NewContractBuilder()
	s.vendorID = cb.VendorID
	s.contract = cb.ID
	s.unitIDs = cb.UnitIDs
	s.uow.store.contracts[cb.ID] = cb.BuildSnapshot()

	for i, id := range cb.UnitIDs {
		ub := builder.NewUnitBuilder()
		ub.ID = id
		ub.Label = []string{"R-01", "R-02"}[i]
		ub.Available = false
		contractID := cb.ID
		ub.OccupiedBy = &contractID
		s.uow.store.units[id] = ub.BuildSnapshot()
	}
}

func (s *ContractCancelSuite) TestCancel() {
	ctx := context.Background()

	s.Run("owner cancels inside the trial month", func() {
		err := s.cancel.Cancel(ctx, s.contract, s.vendorID, vendor.RoleVendor)
		s.Require().NoError(err)

		stored := s.uow.store.contracts[s.contract]
		s.Equal(contract.StatusCancelled.String(), stored.Status)
		s.True(stored.TrialCancelled)
		s.Require().NotNil(stored.TrialCancelledAt)
		s.Equal(s.clk.Now(), *stored.TrialCancelledAt)
		// The impact window is truncated so the units free up immediately.
		s.Equal(s.clk.Now(), stored.ImpactTo)

		for _, id := range s.unitIDs {
			u := s.uow.store.units[id]
			s.True(u.Available)
			s.Nil(u.OccupiedBy)
		}
	})

	s.Run("cancellation after the trial month is not a trial cancellation", func() {
		s.SetupTest()
		s.clk.Set(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

		s.Require().NoError(s.cancel.Cancel(ctx, s.contract, s.vendorID, vendor.RoleVendor))

		stored := s.uow.store.contracts[s.contract]
		s.Equal(contract.StatusCancelled.String(), stored.Status)
		s.False(stored.TrialCancelled)
		s.Nil(stored.TrialCancelledAt)
		s.Equal(s.clk.Now(), stored.ImpactTo)
	})

	s.Run("admin may cancel any contract", func() {
		s.SetupTest()
		s.NoError(s.cancel.Cancel(ctx, s.contract, uuid.New(), vendor.RoleAdmin))
	})

	s.Run("other vendors are rejected", func() {
		s.SetupTest()
		err := s.cancel.Cancel(ctx, s.contract, uuid.New(), vendor.RoleVendor)
		s.ErrorIs(err, errs.ErrForbidden)
		s.Equal(contract.StatusScheduled.String(), s.uow.store.contracts[s.contract].Status)
	})

	s.Run("unknown contract", func() {
		s.ErrorIs(s.cancel.Cancel(ctx, uuid.New(), s.vendorID, vendor.RoleVendor), errs.ErrContractNotFound)
	})

	s.Run("second cancellation fails", func() {
		s.SetupTest()
		s.Require().NoError(s.cancel.Cancel(ctx, s.contract, s.vendorID, vendor.RoleVendor))
		s.ErrorIs(s.cancel.Cancel(ctx, s.contract, s.vendorID, vendor.RoleVendor), errs.ErrInvalidTransition)
	})
}
