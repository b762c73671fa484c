package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO is the overview panel of the dashboard: inventory
// position plus today's trading. Display fields carry pre-formatted nl-NL
// euro strings so the UI does not re-implement locale formatting.
type DashboardStatsDTO struct {
	TotalParts        int             `json:"totaal_onderdelen"`
	StockValue        decimal.Decimal `json:"voorraad_waarde"`
	StockValueDisplay string          `json:"voorraad_waarde_display"`
	LowStock          int             `json:"lage_voorraad"`
	OutOfStock        int             `json:"uit_voorraad"`
	SalesToday        int             `json:"verkopen_vandaag"`
	RevenueToday      decimal.Decimal `json:"omzet_vandaag"`
	RevenueDisplay    string          `json:"omzet_vandaag_display"`
	ProfitToday       decimal.Decimal `json:"winst_vandaag"`
	ProfitDisplay     string          `json:"winst_vandaag_display"`
}
