package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkPaidRequest struct {
	PaymentDate   string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=dinheiro cartao_credito cartao_debito pix transferencia boleto"`
}

type AccountResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Description   *string    `json:"description,omitempty"`
	Amount        string     `json:"amount"`
	DueDate       *string    `json:"due_date,omitempty"`
	PaymentDate   *string    `json:"payment_date,omitempty"`
	PatientID     *uuid.UUID `json:"patient_id,omitempty"`
	PatientName   string     `json:"patient_name,omitempty"`
	Category      *string    `json:"category,omitempty"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status"`
	CreatedByName string     `json:"created_by_name,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
