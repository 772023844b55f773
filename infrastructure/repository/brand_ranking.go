package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
)

const (
	brandRankingTable = "brand_ranking br"
)

var brandRankingColumns = []string{
	"br.id",
	"br.year",
	"br.company",
	"br.revenue",
	"br.position",
	"br.position_change",
	"br.previous_position",
	"br.dataset_id",
	"br.created_at",
	"br.updated_at",
}

type BrandRankingRepository interface {
	GetByYear(ctx context.Context, year int) (*domain.BrandRankingResponse, error)
	ReplaceYearRanking(ctx context.Context, year int, rankings []*domain.BrandRankingItem) error
}

type brandRankingRepository struct {
	conn postgres.Conn
}

func NewBrandRankingRepository(conn postgres.Conn) BrandRankingRepository {
	return &brandRankingRepository{
		conn: conn,
	}
}

// GetByYear retorna o snapshot do ano, ou nil quando o ano ainda não foi gravado
func (r *brandRankingRepository) GetByYear(ctx context.Context, year int) (*domain.BrandRankingResponse, error) {
	query, args, err := squirrel.
		Select(brandRankingColumns...).
		From(brandRankingTable).
		Where(squirrel.Eq{"br.year": year}).
		OrderBy("br.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.BrandRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanBrandRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(rankings) == 0 {
		return nil, nil
	}

	return &domain.BrandRankingResponse{
		Year:       year,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

// ReplaceYearRanking grava o ranking do ano e remove as marcas que saíram dele
func (r *brandRankingRepository) ReplaceYearRanking(ctx context.Context, year int, rankings []*domain.BrandRankingItem) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		companies := make([]string, 0, len(rankings))
		for _, ranking := range rankings {
			companies = append(companies, ranking.Company)
		}

		deleteQuery := squirrel.
			Delete("brand_ranking").
			Where(squirrel.Eq{"year": year}).
			PlaceholderFormat(squirrel.Dollar)
		if len(companies) > 0 {
			deleteQuery = deleteQuery.Where(squirrel.NotEq{"company": companies})
		}

		sqlQuery, args, err := deleteQuery.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao remover marcas fora do ranking: %w", err)
		}

		if len(rankings) == 0 {
			return nil
		}

		insert := squirrel.StatementBuilder.
			Insert("brand_ranking").
			Columns(
				"year",
				"company",
				"revenue",
				"position",
				"position_change",
				"previous_position",
				"dataset_id",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, ranking := range rankings {
			insert = insert.Values(
				year,
				ranking.Company,
				ranking.Revenue,
				ranking.Position,
				ranking.PositionChange,
				ranking.PreviousPosition,
				ranking.DatasetID,
			)
		}

		insert = insert.Suffix(`
			ON CONFLICT (year, company) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				position = EXCLUDED.position,
				position_change = EXCLUDED.position_change,
				previous_position = EXCLUDED.previous_position,
				dataset_id = EXCLUDED.dataset_id,
				updated_at = CURRENT_TIMESTAMP
		`)

		sqlQuery, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		return nil
	})
}

func scanBrandRankingItem(rows *sql.Rows) (*domain.BrandRankingItem, error) {
	item := &domain.BrandRankingItem{}

	err := rows.Scan(
		&item.ID,
		&item.Year,
		&item.Company,
		&item.Revenue,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.DatasetID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
