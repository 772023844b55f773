package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
)

// SaleSource fornece as vendas brutas de uma origem externa, como uma tabela
type SaleSource interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// LoadFromSource carrega o dataset a partir de uma SaleSource. Datas já vêm
// tipadas; apenas as categorias são normalizadas.
func LoadFromSource(ctx context.Context, src SaleSource, name string) (*Dataset, error) {
	sales, err := src.ListSales(ctx)
	if err != nil {
		return nil, newLoadError(fmt.Errorf("%w: %w", ErrUnreadableSource, err), name)
	}

	for i := range sales {
		sales[i].Company = normalizeCategory(sales[i].Company)
		sales[i].Transmission = normalizeCategory(sales[i].Transmission)
		y, m, d := sales[i].Date.Date()
		sales[i].Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	ds, err := New(name, sales)
	if err != nil {
		return nil, newLoadError(err, name)
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": ds.Info().ID,
		"source":     name,
		"rows":       ds.Len(),
	}).Info("Dataset de vendas carregado")

	return ds, nil
}
