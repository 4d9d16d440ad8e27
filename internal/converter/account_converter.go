package converter

import (
	"time"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
)

func AccountToResponse(a *entity.Account) *dto.AccountResponse {
	resp := &dto.AccountResponse{
		ID:            a.ID,
		Name:          a.Name,
		Type:          string(a.Type),
		Description:   a.Description,
		Amount:        a.Amount.StringFixed(2),
		DueDate:       formatDate(a.DueDate),
		PaymentDate:   formatDate(a.PaymentDate),
		PatientID:     a.PatientID,
		PatientName:   a.PatientName(),
		Category:      a.Category,
		PaymentMethod: a.PaymentMethod,
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
	if a.Creator != nil {
		resp.CreatedByName = a.Creator.FullName
	}
	return resp
}

func AccountsToResponses(accounts []entity.Account) []*dto.AccountResponse {
	responses := make([]*dto.AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = AccountToResponse(&accounts[i])
	}
	return responses
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
