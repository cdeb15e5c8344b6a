package response

import "housnkuh/internal/usecase"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Vendor      *usecase.AuthenticatedVendor `json:"vendor"`
}
