// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
)

type SalesRecordRepository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

type salesRecordRepository struct {
	conn  postgres.Queryer
	table string
}

func NewSalesRecordRepository(conn postgres.Queryer, table string) SalesRecordRepository {
	return &salesRecordRepository{
		conn:  conn,
		table: table,
	}
}

// ListSales lê todas as vendas na ordem de inserção
func (r *salesRecordRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query, args, err := squirrel.
		Select("date", "company", "price", "annual_income", "transmission").
		From(r.table).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar vendas em %s", r.table)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.Date,
			&sale.Company,
			&sale.Price,
			&sale.AnnualIncome,
			&sale.Transmission,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}
