package response

import (
	"housnkuh/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Message  string    `json:"message"`
}

func FromRegisterResult(result *commands.RegisterResult) RegisterResponse {
	return RegisterResponse{
		VendorID: result.VendorID,
		Message:  "registration received, please confirm your email address",
	}
}

type ApproveResponse struct {
	ContractID uuid.UUID `json:"contract_id"`
	ImpactFrom string    `json:"impact_from"`
	ImpactTo   string    `json:"impact_to"`
}

func FromApproveResult(result *commands.ApproveResult) ApproveResponse {
	return ApproveResponse{
		ContractID: result.ContractID,
		ImpactFrom: result.ImpactFrom,
		ImpactTo:   result.ImpactTo,
	}
}
