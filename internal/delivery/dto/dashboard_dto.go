package dto

import "neuroclinic/internal/stats"

type DashboardResponse struct {
	Stats                 stats.DashboardStats   `json:"stats"`
	DailyAppointments     []stats.DailyCount     `json:"daily_appointments"`
	RevenueByMonth        []stats.MonthlyAmount  `json:"revenue_by_month"`
	SpecialtyDistribution []stats.SpecialtyShare `json:"specialty_distribution"`
}
