package stats

import (
	"sort"
	"time"

	"neuroclinic/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	AppointmentsToday int             `json:"appointments_today"`
	ActivePatients    int             `json:"active_patients"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	HoursWorked       float64         `json:"hours_worked"`
}

// Dashboard summarises the current day and month. Monthly revenue is paid
// revenue settled in now's month; hours worked sums completed appointments
// of now's month.
func Dashboard(appointments []entity.Appointment, patients []entity.Patient, accounts []entity.Account, now time.Time) DashboardStats {
	s := DashboardStats{MonthlyRevenue: decimal.Zero}

	var worked time.Duration
	for i := range appointments {
		a := &appointments[i]
		if a.OnDate(now) {
			s.AppointmentsToday++
		}
		if a.IsCompleted() && sameMonth(a.AppointmentDate, now) {
			if d, err := a.Duration(); err == nil && d > 0 {
				worked += d
			}
		}
	}
	s.HoursWorked = worked.Hours()

	for i := range patients {
		if patients[i].Active() {
			s.ActivePatients++
		}
	}

	for i := range accounts {
		a := &accounts[i]
		if a.Type == entity.AccountTypeRevenue && a.IsPaid() && sameMonth(a.SettledOn(), now) {
			s.MonthlyRevenue = s.MonthlyRevenue.Add(a.Amount)
		}
	}
	return s
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyAppointments counts appointments per day for days starting at from.
// Cancelled appointments are left out.
func DailyAppointments(appointments []entity.Appointment, from time.Time, days int) []DailyCount {
	out := make([]DailyCount, days)
	for d := 0; d < days; d++ {
		day := from.AddDate(0, 0, d)
		out[d].Date = day.Format("2006-01-02")
		for i := range appointments {
			a := &appointments[i]
			if a.Status != entity.AppointmentStatusCancelled && a.OnDate(day) {
				out[d].Count++
			}
		}
	}
	return out
}

type MonthlyAmount struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// RevenueByMonth returns paid revenue and expenses for the given number of
// months ending with now's month, oldest first.
func RevenueByMonth(accounts []entity.Account, now time.Time, months int) []MonthlyAmount {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	out := make([]MonthlyAmount, months)
	for m := 0; m < months; m++ {
		month := first.AddDate(0, m, 0)
		out[m] = MonthlyAmount{Month: month.Format("2006-01"), Revenue: decimal.Zero, Expenses: decimal.Zero}
		for i := range accounts {
			a := &accounts[i]
			if !a.IsPaid() || !sameMonth(a.SettledOn(), month) {
				continue
			}
			switch a.Type {
			case entity.AccountTypeRevenue:
				out[m].Revenue = out[m].Revenue.Add(a.Amount)
			case entity.AccountTypeExpense:
				out[m].Expenses = out[m].Expenses.Add(a.Amount)
			}
		}
	}
	return out
}

type SpecialtyShare struct {
	Specialty string `json:"specialty"`
	Count     int    `json:"count"`
}

// SpecialtyDistribution counts non-cancelled appointments per specialty,
// largest first, ties by name.
func SpecialtyDistribution(appointments []entity.Appointment) []SpecialtyShare {
	counts := make(map[string]int)
	for i := range appointments {
		a := &appointments[i]
		if a.Status == entity.AppointmentStatusCancelled {
			continue
		}
		name := a.SpecialtyName()
		if name == "" {
			continue
		}
		counts[name]++
	}

	out := make([]SpecialtyShare, 0, len(counts))
	for name, n := range counts {
		out = append(out, SpecialtyShare{Specialty: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Specialty < out[j].Specialty
	})
	return out
}
