package unit

import "errors"

var ErrInvalidType = errors.New("invalid unit type")

// Type classifies a Mietfach: a regular shelf, a cooled compartment,
// a premium placement, or anything else.
type Type string

const (
	TypeStandard Type = "standard"
	TypeCooled   Type = "cooled"
	TypePremium  Type = "premium"
	TypeOther    Type = "other"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeCooled, TypePremium, TypeOther:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
