// Package dataset carrega as vendas em memória e calcula os campos derivados
package dataset

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
)

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 10
)

// Dataset é a tabela de vendas carregada na inicialização. Nenhum campo é
// alterado depois de New, então pode ser compartilhado entre goroutines.
type Dataset struct {
	info  domain.DatasetInfo
	sales []domain.Sale
}

// New cria o dataset a partir das vendas brutas, aplicando o binning
func New(source string, sales []domain.Sale) (*Dataset, error) {
	id, err := gonanoid.Generate(idCharacters, idLength)
	if err != nil {
		return nil, err
	}

	derived := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		derived[i] = deriveFields(sale)
	}

	return &Dataset{
		info: domain.DatasetInfo{
			ID:       id,
			Source:   source,
			Rows:     len(derived),
			LoadedAt: time.Now(),
		},
		sales: derived,
	}, nil
}

// Info retorna os metadados do dataset
func (d *Dataset) Info() domain.DatasetInfo {
	return d.info
}

// Len retorna a quantidade de vendas
func (d *Dataset) Len() int {
	return len(d.sales)
}

// At retorna uma cópia da venda na posição i
func (d *Dataset) At(i int) domain.Sale {
	return d.sales[i]
}

// Each percorre as vendas na ordem original
func (d *Dataset) Each(fn func(sale domain.Sale)) {
	for _, sale := range d.sales {
		fn(sale)
	}
}
