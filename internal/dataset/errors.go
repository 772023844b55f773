package dataset

import (
	"errors"
	"fmt"
)

// Erros de carga do dataset
var (
	ErrUnreadableSource = errors.New("unreadable dataset source")
	ErrMissingColumn    = errors.New("missing required column")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrUnsupportedType  = errors.New("unsupported dataset type")
)

// LoadError é um erro fatal de carga com a posição do problema no arquivo
type LoadError struct {
	Err    error  // Erro base
	Source string // Arquivo ou tabela de origem
	Row    int    // Linha de dados (1 = primeira linha após o cabeçalho), 0 quando não se aplica
	Column string // Coluna envolvida (quando aplicável)
	Value  string // Valor rejeitado (quando aplicável)
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Source, e.Err.Error())
	if e.Column != "" {
		msg = fmt.Sprintf("%s (coluna %q)", msg, e.Column)
	}
	if e.Row > 0 {
		msg = fmt.Sprintf("%s na linha %d", msg, e.Row)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(err error, source string) *LoadError {
	return &LoadError{Err: err, Source: source}
}

func newCellError(err error, source string, row int, column, value string) *LoadError {
	return &LoadError{
		Err:    err,
		Source: source,
		Row:    row,
		Column: column,
		Value:  value,
	}
}
