//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/pkg/password"
	"housnkuh/internal/usecase/commands"
	"housnkuh/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type RegistrationSuite struct {
	suite.Suite
	uow          *fakeUoW
	mailer       *fakeMailer
	registration commands.RegistrationCommands
}

func TestRegistrationSuite(t *testing.T) {
	suite.Run(t, new(RegistrationSuite))
}

func (s *RegistrationSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.mailer = &fakeMailer{}
	s.registration = commands.NewRegistrationCommands(
		s.uow,
		s.mailer,
		clock.NewMockClock(time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)),
	)
}

func (s *RegistrationSuite) registerInput() commands.RegisterVendorInput {
	dto := builder.NewVendorBuilder().BuildRegisterDTO()
	return dto.ToInput()
}

func (s *RegistrationSuite) TestRegister() {
	ctx := context.Background()

	s.Run("creates an unconfirmed vendor with a pending booking", func() {
		result, err := s.registration.Register(ctx, s.registerInput())
		s.Require().NoError(err)
		s.Require().NotNil(result)

		stored, ok := s.uow.store.vendors[result.VendorID]
		s.Require().True(ok)
		s.Equal("vendor@example.com", stored.Email)
		s.Equal(vendor.RoleVendor.String(), stored.Role)
		s.False(stored.Confirmed)
		s.Require().NotNil(stored.ConfirmationToken)
		s.NotEmpty(*stored.ConfirmationToken)

		s.NoError(password.ComparePassword(stored.PasswordHash, "password123"),
			"stored hash must verify against the plain password")

		s.Require().NotNil(stored.Booking)
		s.Equal(vendor.BookingPending.String(), stored.Booking.Status)
		s.Equal("Starter", stored.Booking.PackageName)
		s.Equal(map[string]int{"standard": 2}, stored.Booking.UnitCounts)

		// The confirmation mail carries the stored token.
		s.Require().Len(s.mailer.recipients, 1)
		s.Equal("vendor@example.com", s.mailer.recipients[0])
		s.Equal(*stored.ConfirmationToken, s.mailer.tokens[0])
	})

	s.Run("duplicate email is rejected without a mail", func() {
		_, err := s.registration.Register(ctx, s.registerInput())
		s.Require().NoError(err)
		mailsBefore := len(s.mailer.recipients)

		_, err = s.registration.Register(ctx, s.registerInput())
		s.ErrorIs(err, errs.ErrDuplicateEmail)
		s.Len(s.uow.store.vendors, 1)
		s.Len(s.mailer.recipients, mailsBefore)
	})

	s.Run("mail failure does not fail the registration", func() {
		s.SetupTest()
		s.mailer.failWith = errors.New("smtp unreachable")

		result, err := s.registration.Register(ctx, s.registerInput())
		s.Require().NoError(err)
		s.Contains(s.uow.store.vendors, result.VendorID)
	})
}

func (s *RegistrationSuite) TestRegisterValidation() {
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*commands.RegisterVendorInput)
	}{
		{
			name:   "invalid email",
			mutate: func(in *commands.RegisterVendorInput) { in.Email = "not-an-email" },
		},
		{
			name:   "weak password",
			mutate: func(in *commands.RegisterVendorInput) { in.Password = "1234567" },
		},
		{
			name:   "empty name",
			mutate: func(in *commands.RegisterVendorInput) { in.Name = "  " },
		},
		{
			name:   "empty package name",
			mutate: func(in *commands.RegisterVendorInput) { in.Package.Name = "" },
		},
		{
			name:   "no units in the package",
			mutate: func(in *commands.RegisterVendorInput) { in.Package.UnitCounts = nil },
		},
		{
			name:   "unknown unit type",
			mutate: func(in *commands.RegisterVendorInput) { in.Package.UnitCounts = map[string]int{"garage": 1} },
		},
		{
			name:   "zero duration",
			mutate: func(in *commands.RegisterVendorInput) { in.Package.DurationMonths = 0 },
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			input := s.registerInput()
			tc.mutate(&input)

			_, err := s.registration.Register(ctx, input)
			s.ErrorIs(err, errs.ErrDomainValidation)
			s.Empty(s.uow.store.vendors)
			s.Empty(s.mailer.recipients)
		})
	}
}

func (s *RegistrationSuite) TestConfirm() {
	ctx := context.Background()

	s.Run("consumes the token exactly once", func() {
		result, err := s.registration.Register(ctx, s.registerInput())
		s.Require().NoError(err)
		token := *s.uow.store.vendors[result.VendorID].ConfirmationToken

		s.Require().NoError(s.registration.Confirm(ctx, token))

		stored := s.uow.store.vendors[result.VendorID]
		s.True(stored.Confirmed)
		s.Nil(stored.ConfirmationToken)

		// The consumed token never validates again.
		s.ErrorIs(s.registration.Confirm(ctx, token), errs.ErrConfirmationToken)
	})

	s.Run("empty token", func() {
		s.ErrorIs(s.registration.Confirm(ctx, ""), errs.ErrConfirmationToken)
	})

	s.Run("unknown token", func() {
		s.ErrorIs(s.registration.Confirm(ctx, "no-such-token"), errs.ErrConfirmationToken)
	})

	s.Run("already confirmed vendor with a stale token", func() {
		vb := builder.NewVendorBuilder()
		vb.Confirmed = true
		s.uow.store.vendors[vb.ID] = vb.BuildSnapshot()

		s.ErrorIs(s.registration.Confirm(ctx, *vb.ConfirmationToken), errs.ErrAlreadyConfirmed)
	})
}
