package analytics

import (
	"Pantry-Tracker-Backend/domain"
	"context"
	"math"
)

type (
	AnalyticsService interface {
		GetOverview(ctx context.Context, userID string, year int) (domain.AnalyticsOverviewResponse, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

// GetOverview derives the waste/consumption percentages, the per-month series
// for the requested year, and the category breakdown of current stock. It is
// read-only; all quantities come from the ledger's historical data.
//
// The percentages are relative to current stock, not to stock ever owned:
// wasted items have already left the inventory, so total_quantity reflects
// only what is on hand.
func (s *analyticsService) GetOverview(ctx context.Context, userID string, year int) (domain.AnalyticsOverviewResponse, error) {
	items, err := s.analyticsRepository.GetGroceryItemsByUser(ctx, userID)
	if err != nil {
		return domain.AnalyticsOverviewResponse{}, err
	}
	logs, err := s.analyticsRepository.GetConsumptionLogsByUser(ctx, userID)
	if err != nil {
		return domain.AnalyticsOverviewResponse{}, err
	}
	wasted, err := s.analyticsRepository.GetFoodWastedByUser(ctx, userID)
	if err != nil {
		return domain.AnalyticsOverviewResponse{}, err
	}

	overview := domain.AnalyticsOverviewResponse{
		Year:              year,
		CategoryBreakdown: make(map[string]float64),
	}

	for _, item := range items {
		overview.TotalQuantity += item.Quantity

		category := "Uncategorized"
		if item.Category != nil {
			category = item.Category.Name
		}
		overview.CategoryBreakdown[category] += item.Quantity
	}

	for _, log := range logs {
		overview.TotalConsumed += log.QtyUsed
		if log.Date.Year() == year {
			overview.MonthlyConsumed[int(log.Date.Month())-1] += log.QtyUsed
		}
	}

	for _, w := range wasted {
		overview.TotalWasted += w.Quantity
		if w.ExpiryDate != nil && w.ExpiryDate.Year() == year {
			overview.MonthlyWasted[int(w.ExpiryDate.Month())-1] += w.Quantity
		}
	}

	if fresh := overview.TotalQuantity - overview.TotalWasted; overview.TotalQuantity > 0 && fresh > 0 {
		overview.FreshPct = round1(100 * fresh / overview.TotalQuantity)
	}
	if overview.TotalQuantity > 0 && overview.TotalConsumed > 0 {
		overview.ConsumedPct = round1(100 * overview.TotalConsumed / overview.TotalQuantity)
	}
	if overview.TotalQuantity > 0 && overview.TotalWasted > 0 {
		overview.WastedPct = round1(100 * overview.TotalWasted / overview.TotalQuantity)
	}

	return overview, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
