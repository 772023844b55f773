package domain

import "time"

type BrandRankingResponse struct {
	Year       int                `json:"year"`
	Ranking    []BrandRankingItem `json:"ranking"`
	LastUpdate time.Time          `json:"last_update"`
}

type BrandRankingItem struct {
	ID               int       `json:"id"`
	Year             int       `json:"year"`
	Company          string    `json:"company"`
	Revenue          float64   `json:"revenue"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	DatasetID        string    `json:"dataset_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
