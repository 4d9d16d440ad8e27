package stats

import (
	"time"

	"neuroclinic/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type PatientStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Minors int `json:"minors"`
	Adults int `json:"adults"`
}

func Patients(patients []entity.Patient, now time.Time) PatientStats {
	s := PatientStats{Total: len(patients)}
	for i := range patients {
		p := &patients[i]
		if p.Active() {
			s.Active++
		}
		if Age(p.BirthDate, now) < AdultAge {
			s.Minors++
		} else {
			s.Adults++
		}
	}
	return s
}

type ProfessionalStats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Psychologists int `json:"psychologists"`
	Others        int `json:"others"`
}

func Professionals(profiles []entity.Profile) ProfessionalStats {
	s := ProfessionalStats{Total: len(profiles)}
	for i := range profiles {
		p := &profiles[i]
		if p.Active() {
			s.Active++
		}
		if p.IsPsychologist() {
			s.Psychologists++
		} else {
			s.Others++
		}
	}
	return s
}

type AppointmentStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	Scheduled int `json:"scheduled"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

func Appointments(appointments []entity.Appointment, today time.Time) AppointmentStats {
	s := AppointmentStats{Total: len(appointments)}
	for i := range appointments {
		a := &appointments[i]
		if a.OnDate(today) {
			s.Today++
		}
		switch a.Status {
		case entity.AppointmentStatusScheduled:
			s.Scheduled++
		case entity.AppointmentStatusConfirmed:
			s.Confirmed++
		case entity.AppointmentStatusCompleted:
			s.Completed++
		}
	}
	return s
}

// FinancialTotals sums the ledger. Receivables and payables include every
// entry that is not cancelled; revenue and expenses only paid entries.
type FinancialTotals struct {
	Receivables decimal.Decimal `json:"receivables"`
	Payables    decimal.Decimal `json:"payables"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	Balance     decimal.Decimal `json:"balance"`
}

func Financial(accounts []entity.Account) FinancialTotals {
	t := FinancialTotals{
		Receivables: decimal.Zero,
		Payables:    decimal.Zero,
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
	}
	for i := range accounts {
		a := &accounts[i]
		switch a.Type {
		case entity.AccountTypeReceivable:
			if !a.IsCancelled() {
				t.Receivables = t.Receivables.Add(a.Amount)
			}
		case entity.AccountTypePayable:
			if !a.IsCancelled() {
				t.Payables = t.Payables.Add(a.Amount)
			}
		case entity.AccountTypeRevenue:
			if a.IsPaid() {
				t.Revenue = t.Revenue.Add(a.Amount)
			}
		case entity.AccountTypeExpense:
			if a.IsPaid() {
				t.Expenses = t.Expenses.Add(a.Amount)
			}
		}
	}
	t.Balance = t.Revenue.Sub(t.Expenses)
	return t
}
