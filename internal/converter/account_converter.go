package converter

import (
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
)

func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	if account == nil {
		return nil
	}

	return &dto.AccountResponse{
		ID:          account.ID,
		Email:       account.Email,
		Role:        string(account.Role),
		ReferenceID: account.ReferenceID,
	}
}
