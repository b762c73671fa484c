// Package analytics contains the dashboard use case: the computed aggregates
// the UI shell consumes without generating a document.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/onderdelen-beheer/api/internal/application/dto"
	domainanalytics "github.com/onderdelen-beheer/api/internal/domain/analytics"
	"github.com/onderdelen-beheer/api/internal/domain/entity"
	"github.com/onderdelen-beheer/api/internal/domain/repository"
	"github.com/onderdelen-beheer/api/internal/domain/stock"
	"github.com/onderdelen-beheer/api/pkg/money"
)

// DashboardUseCase computes the overview stats: inventory position over the
// active parts plus today's sales figures.
type DashboardUseCase struct {
	parts repository.PartRepository
	sales repository.SaleRepository
	now   func() time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(parts repository.PartRepository, sales repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{parts: parts, sales: sales, now: time.Now}
}

// GetStats loads parts and today's sales with two parallel queries and
// reduces them into the DashboardStatsDTO.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	type partsResult struct {
		parts []entity.Part
		err   error
	}
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	partsCh := make(chan partsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		p, err := uc.parts.ListActive(ctx)
		partsCh <- partsResult{p, err}
	}()
	go func() {
		s, err := uc.sales.ListBetween(ctx, todayStart, todayEnd)
		salesCh <- salesResult{s, err}
	}()

	parts := <-partsCh
	sales := <-salesCh

	if parts.err != nil {
		return nil, fmt.Errorf("dashboard: load parts: %w", parts.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: today's sales: %w", sales.err)
	}

	valuation := domainanalytics.Valuate(parts.parts)
	today := domainanalytics.Aggregate(sales.sales)

	var low, out int
	for _, p := range parts.parts {
		switch stock.Classify(p.Stock, p.MinStock) {
		case stock.OutOfStock:
			out++
		case stock.Critical, stock.Low:
			low++
		}
	}

	return &dto.DashboardStatsDTO{
		TotalParts:        len(parts.parts),
		StockValue:        valuation.SaleValue.Round(2),
		StockValueDisplay: money.FormatEUR(valuation.SaleValue),
		LowStock:          low,
		OutOfStock:        out,
		SalesToday:        today.Count,
		RevenueToday:      today.Revenue.Round(2),
		RevenueDisplay:    money.FormatEUR(today.Revenue),
		ProfitToday:       today.GrossProfit.Round(2),
		ProfitDisplay:     money.FormatEUR(today.GrossProfit),
	}, nil
}
