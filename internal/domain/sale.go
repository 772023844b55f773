package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda de veículo do dataset
type Sale struct {
	Date         time.Time
	Company      string
	Price        decimal.Decimal
	AnnualIncome decimal.Decimal
	Transmission string

	// Campos derivados pelo binning; nil quando o valor está fora das faixas
	IncomeGroup *IncomeGroup
	PriceRange  *PriceRange
}

// Month retorna o primeiro dia do mês da venda
func (s Sale) Month() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Year retorna o ano da venda
func (s Sale) Year() int {
	return s.Date.Year()
}

// DatasetInfo descreve o dataset carregado na inicialização
type DatasetInfo struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}
