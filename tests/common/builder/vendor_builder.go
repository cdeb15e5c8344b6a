//go:build unit || e2e

package builder

import (
	"time"

	domunit "housnkuh/internal/domain/unit"
	domvendor "housnkuh/internal/domain/vendor"
	reqdto "housnkuh/internal/handler/dto/request"
	"housnkuh/internal/usecase"
	"housnkuh/internal/usecase/queries"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	PackageName       string
	MonthlyPriceCents int64
	SetupFeeCents     int64
	UnitCounts        map[string]int
	Addons            []string
	RequestedStart    time.Time
	DurationMonths    int
	Trial             bool
	Status            string
	RequestedAt       time.Time
	ContractID        *uuid.UUID
	AssignedUnitIDs   []uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		PackageName:       "Starter",
		MonthlyPriceCents: 4500,
		SetupFeeCents:     2000,
		UnitCounts:        map[string]int{"standard": 2},
		Addons:            []string{"social-media"},
		RequestedStart:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths:    12,
		Trial:             true,
		Status:            string(domvendor.BookingPending),
		RequestedAt:       time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*domvendor.PendingBooking, error) {
	return domvendor.NewPendingBooking(
		b.PackageName,
		b.MonthlyPriceCents,
		b.SetupFeeCents,
		b.domainUnitCounts(),
		b.Addons,
		b.RequestedStart,
		b.DurationMonths,
		b.Trial,
		b.RequestedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		PackageName:       b.PackageName,
		MonthlyPriceCents: b.MonthlyPriceCents,
		SetupFeeCents:     b.SetupFeeCents,
		UnitCounts:        b.UnitCounts,
		Addons:            b.Addons,
		RequestedStart:    b.RequestedStart,
		DurationMonths:    b.DurationMonths,
		Trial:             b.Trial,
		Status:            b.Status,
		RequestedAt:       b.RequestedAt,
		ContractID:        b.ContractID,
		AssignedUnitIDs:   b.AssignedUnitIDs,
	}
}

func (b *BookingBuilder) domainUnitCounts() map[domunit.Type]int {
	counts := make(map[domunit.Type]int, len(b.UnitCounts))
	for t, n := range b.UnitCounts {
		counts[domunit.Type(t)] = n
	}
	return counts
}

type VendorBuilder struct {
	ID                uuid.UUID
	Email             string
	Password          string
	PasswordHash      string
	Name              string
	Role              string
	Confirmed         bool
	ConfirmationToken *string
	Booking           *BookingBuilder
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewVendorBuilder() *VendorBuilder {
	now := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
	token := "confirmation-token"
	return &VendorBuilder{
		ID:                uuid.New(),
		Email:             "vendor@example.com",
		Password:          "password123",
		PasswordHash:      "hashed_password",
		Name:              "Hofladen Huber",
		Role:              string(domvendor.RoleVendor),
		Confirmed:         true,
		ConfirmationToken: &token,
		Booking:           NewBookingBuilder(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (v *VendorBuilder) With(mutate func(*VendorBuilder)) *VendorBuilder {
	mutate(v)
	return v
}

func (v *VendorBuilder) BuildDomain() (*domvendor.Vendor, error) {
	email, err := domvendor.NewEmail(v.Email)
	if err != nil {
		return nil, err
	}
	name, err := domvendor.NewName(v.Name)
	if err != nil {
		return nil, err
	}

	var booking *domvendor.PendingBooking
	if v.Booking != nil {
		booking, err = v.Booking.BuildDomain()
		if err != nil {
			return nil, err
		}
	}

	token := ""
	if v.ConfirmationToken != nil {
		token = *v.ConfirmationToken
	}
	return domvendor.NewVendor(email, v.PasswordHash, name, token, booking), nil
}

func (v *VendorBuilder) BuildSnapshot() *shared.VendorSnapshot {
	var booking *shared.BookingSnapshot
	if v.Booking != nil {
		booking = v.Booking.BuildSnapshot()
	}
	return &shared.VendorSnapshot{
		ID:                v.ID,
		Email:             v.Email,
		PasswordHash:      v.PasswordHash,
		Name:              v.Name,
		Role:              v.Role,
		Confirmed:         v.Confirmed,
		ConfirmationToken: v.ConfirmationToken,
		Booking:           booking,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func (v *VendorBuilder) BuildView() *queries.VendorView {
	var booking *queries.PendingBookingView
	if v.Booking != nil {
		booking = &queries.PendingBookingView{
			VendorID:          v.ID,
			VendorName:        v.Name,
			VendorEmail:       v.Email,
			VendorConfirmed:   v.Confirmed,
			PackageName:       v.Booking.PackageName,
			MonthlyPriceCents: v.Booking.MonthlyPriceCents,
			SetupFeeCents:     v.Booking.SetupFeeCents,
			UnitCounts:        v.Booking.UnitCounts,
			Addons:            v.Booking.Addons,
			RequestedStart:    v.Booking.RequestedStart,
			DurationMonths:    v.Booking.DurationMonths,
			Trial:             v.Booking.Trial,
			Status:            v.Booking.Status,
			RequestedAt:       v.Booking.RequestedAt,
			ContractID:        v.Booking.ContractID,
			AssignedUnitIDs:   v.Booking.AssignedUnitIDs,
		}
	}
	return &queries.VendorView{
		ID:        v.ID,
		Email:     v.Email,
		Name:      v.Name,
		Role:      v.Role,
		Confirmed: v.Confirmed,
		Booking:   booking,
		CreatedAt: v.CreatedAt,
	}
}

func (v *VendorBuilder) BuildAuthenticated() *usecase.AuthenticatedVendor {
	return &usecase.AuthenticatedVendor{
		ID:        v.ID,
		Email:     v.Email,
		Name:      v.Name,
		Role:      v.Role,
		Confirmed: v.Confirmed,
	}
}

func (v *VendorBuilder) BuildRegisterDTO() reqdto.RegisterVendorRequest {
	return reqdto.RegisterVendorRequest{
		Email:    v.Email,
		Password: v.Password,
		Name:     v.Name,
		Package: reqdto.PackageRequest{
			Name:              v.Booking.PackageName,
			MonthlyPriceCents: v.Booking.MonthlyPriceCents,
			SetupFeeCents:     v.Booking.SetupFeeCents,
			UnitCounts:        v.Booking.UnitCounts,
			Addons:            v.Booking.Addons,
			RequestedStart:    v.Booking.RequestedStart,
			DurationMonths:    v.Booking.DurationMonths,
			Trial:             v.Booking.Trial,
		},
	}
}
