package request

import (
	"time"

	"housnkuh/internal/usecase/commands"
)

type PackageRequest struct {
	Name              string         `json:"name" binding:"required"`
	MonthlyPriceCents int64          `json:"monthly_price_cents" binding:"min=0"`
	SetupFeeCents     int64          `json:"setup_fee_cents" binding:"min=0"`
	UnitCounts        map[string]int `json:"unit_counts" binding:"required"`
	Addons            []string       `json:"addons"`
	RequestedStart    time.Time      `json:"requested_start" binding:"required"`
	DurationMonths    int            `json:"duration_months" binding:"required,min=1"`
	Trial             bool           `json:"trial"`
}

type RegisterVendorRequest struct {
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=8"`
	Name     string         `json:"name" binding:"required"`
	Package  PackageRequest `json:"package" binding:"required"`
}

func (r *RegisterVendorRequest) ToInput() commands.RegisterVendorInput {
	return commands.RegisterVendorInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Package: commands.PackageInput{
			Name:              r.Package.Name,
			MonthlyPriceCents: r.Package.MonthlyPriceCents,
			SetupFeeCents:     r.Package.SetupFeeCents,
			UnitCounts:        r.Package.UnitCounts,
			Addons:            r.Package.Addons,
			RequestedStart:    r.Package.RequestedStart,
			DurationMonths:    r.Package.DurationMonths,
			Trial:             r.Package.Trial,
		},
	}
}
