package usecase

import (
	"context"

	"offerchain/internal/core/port"
)

// StatsUseCase serves the admin analytics aggregate.
type StatsUseCase struct {
	actions port.ActionRepository
}

// NewStatsUseCase creates a new usecase with the provided repository.
func NewStatsUseCase(actions port.ActionRepository) *StatsUseCase {
	return &StatsUseCase{actions: actions}
}

// Overview returns lead and event totals plus per-offer counts.
func (u *StatsUseCase) Overview(ctx context.Context) (port.StatsReport, error) {
	report, err := u.actions.Stats(ctx)
	if err != nil {
		return port.StatsReport{}, err
	}
	return *report, nil
}
