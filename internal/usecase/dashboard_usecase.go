package usecase

import (
	"context"

	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/stats"

	"github.com/sourcegraph/conc/pool"
)

const (
	dashboardDays   = 7
	dashboardMonths = 6
)

type DashboardUsecase interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	deps Dependencies
}

func NewDashboardUsecase(deps Dependencies) DashboardUsecase {
	return &dashboardUsecase{deps: deps}
}

// Get loads the three lists concurrently, through the same cache keys as the
// list views, and derives the dashboard from them.
func (u *dashboardUsecase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		appointments []entity.Appointment
		patients     []entity.Patient
		accounts     []entity.Account
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		appointments, err = fetch[entity.Appointment](ctx, u.deps, appointmentsQuery)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		patients, err = fetch[entity.Patient](ctx, u.deps, patientsQuery)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		accounts, err = fetch[entity.Account](ctx, u.deps, accountsQuery)
		return err
	})
	if err := p.Wait(); err != nil {
		u.deps.Log.Warnf("Failed to load dashboard data: %+v", err)
		return nil, err
	}

	now := u.deps.now()
	from := now.AddDate(0, 0, -(dashboardDays - 1))

	return &dto.DashboardResponse{
		Stats:                 stats.Dashboard(appointments, patients, accounts, now),
		DailyAppointments:     stats.DailyAppointments(appointments, from, dashboardDays),
		RevenueByMonth:        stats.RevenueByMonth(accounts, now, dashboardMonths),
		SpecialtyDistribution: stats.SpecialtyDistribution(appointments),
	}, nil
}
