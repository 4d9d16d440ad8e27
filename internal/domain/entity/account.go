package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a ledger entry
type AccountType string

const (
	AccountTypeReceivable AccountType = "receivable"
	AccountTypePayable    AccountType = "payable"
	AccountTypeRevenue    AccountType = "revenue"
	AccountTypeExpense    AccountType = "expense"
)

var AccountTypes = []string{
	string(AccountTypeReceivable),
	string(AccountTypePayable),
	string(AccountTypeRevenue),
	string(AccountTypeExpense),
}

// AccountStatus represents the settlement status of a ledger entry
type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusPaid      AccountStatus = "paid"
	AccountStatusOverdue   AccountStatus = "overdue"
	AccountStatusCancelled AccountStatus = "cancelled"
)

var AccountStatuses = []string{
	string(AccountStatusPending),
	string(AccountStatusPaid),
	string(AccountStatusOverdue),
	string(AccountStatusCancelled),
}

var AccountCategories = []string{
	"consulta", "material", "aluguel", "energia", "agua", "internet", "salario", "outros",
}

var PaymentMethods = []string{
	"dinheiro", "cartao_credito", "cartao_debito", "pix", "transferencia", "boleto",
}

// Account is one financial ledger entry.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Type          AccountType     `gorm:"type:varchar(20);not null;index" json:"type"`
	Description   *string         `gorm:"type:text" json:"description,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate       *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	PaymentDate   *time.Time      `gorm:"type:date" json:"payment_date,omitempty"`
	PatientID     *uuid.UUID      `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	Category      *string         `gorm:"type:varchar(50)" json:"category,omitempty"`
	PaymentMethod *string         `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	Status        AccountStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Creator *Profile `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) IsPaid() bool {
	return a.Status == AccountStatusPaid
}

func (a *Account) IsCancelled() bool {
	return a.Status == AccountStatusCancelled
}

func (a *Account) PatientName() string {
	if a.Patient == nil {
		return ""
	}
	return a.Patient.FullName
}

// SettledOn returns the date used to place the entry in a period: the
// payment date, else the due date, else the creation time.
func (a *Account) SettledOn() time.Time {
	if a.PaymentDate != nil {
		return *a.PaymentDate
	}
	if a.DueDate != nil {
		return *a.DueDate
	}
	return a.CreatedAt
}
