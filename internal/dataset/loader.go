package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnDate         = "Date"
	ColumnCompany      = "Company"
	ColumnPrice        = "Price ($)"
	ColumnAnnualIncome = "Annual Income"
	ColumnTransmission = "Transmission"
)

// DateLayout aceita MM/DD/YYYY com ou sem zero à esquerda
const DateLayout = "1/2/2006"

var requiredColumns = []string{
	ColumnDate,
	ColumnCompany,
	ColumnPrice,
	ColumnAnnualIncome,
	ColumnTransmission,
}

// Options configura a leitura de arquivos
type Options struct {
	Delimiter rune   // Separador de colunas para arquivos de texto (padrão ',')
	Sheet     string // Planilha para arquivos .xlsx (padrão: a primeira)
}

// LoadFile carrega o dataset a partir de um arquivo delimitado ou .xlsx
func LoadFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError(fmt.Errorf("%w: %w", ErrUnreadableSource, err), path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(f, path, opts.Sheet)
	case ".csv", ".tsv", ".txt", "":
		delimiter := opts.Delimiter
		if delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
			delimiter = '\t'
		}
		return LoadCSV(f, path, delimiter)
	}

	return nil, newLoadError(ErrUnsupportedType, path)
}

// LoadCSV carrega o dataset a partir de um texto delimitado
func LoadCSV(r io.Reader, source string, delimiter rune) (*Dataset, error) {
	if delimiter == 0 {
		delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	records, err := reader.ReadAll()
	if err != nil {
		return nil, newLoadError(fmt.Errorf("%w: %w", ErrUnreadableSource, err), source)
	}
	if len(records) == 0 {
		return nil, newLoadError(fmt.Errorf("%w: arquivo vazio", ErrUnreadableSource), source)
	}

	return fromRecords(records, source)
}

// LoadXLSX carrega o dataset a partir de uma planilha
func LoadXLSX(r io.Reader, source string, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, newLoadError(fmt.Errorf("%w: %w", ErrUnreadableSource, err), source)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, newLoadError(fmt.Errorf("%w: planilha sem abas", ErrUnreadableSource), source)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, newLoadError(fmt.Errorf("%w: %w", ErrUnreadableSource, err), source)
	}
	rows = normalizeRows(rows)
	if len(rows) == 0 {
		return nil, newLoadError(fmt.Errorf("%w: planilha %q vazia", ErrUnreadableSource, sheet), source)
	}

	return fromRecords(rows, source)
}

// fromRecords monta o dataset a partir das linhas lidas; a primeira linha é o cabeçalho.
// Um arquivo só com cabeçalho resulta em dataset vazio.
func fromRecords(records [][]string, source string) (*Dataset, error) {
	if len(records) == 1 {
		if _, err := resolveColumns(records[0], source); err != nil {
			return nil, err
		}
		return build(source, nil)
	}

	// Sem valores NaN: "NA" é um valor válido de Company ou Transmission
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, newLoadError(fmt.Errorf("%w: %w", ErrUnreadableSource, df.Err), source)
	}

	return fromFrame(df, source)
}

// normalizeRows remove linhas vazias e completa as linhas curtas até a largura do cabeçalho
func normalizeRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return out
	}

	width := len(out[0])
	for i, row := range out {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			out[i] = padded
		} else if len(row) > width {
			out[i] = row[:width]
		}
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// normalizeHeader remove BOM e espaços para comparar nomes de colunas
func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

// resolveColumns associa cada coluna obrigatória ao nome encontrado no arquivo
func resolveColumns(names []string, source string) (map[string]string, error) {
	present := make(map[string]string, len(names))
	for _, name := range names {
		present[normalizeHeader(name)] = name
	}

	resolved := make(map[string]string, len(requiredColumns))
	for _, column := range requiredColumns {
		name, ok := present[normalizeHeader(column)]
		if !ok {
			err := newLoadError(ErrMissingColumn, source)
			err.Column = column
			return nil, err
		}
		resolved[column] = name
	}
	return resolved, nil
}

func fromFrame(df dataframe.DataFrame, source string) (*Dataset, error) {
	columns, err := resolveColumns(df.Names(), source)
	if err != nil {
		return nil, err
	}

	dates := df.Col(columns[ColumnDate]).Records()
	companies := df.Col(columns[ColumnCompany]).Records()
	prices := df.Col(columns[ColumnPrice]).Records()
	incomes := df.Col(columns[ColumnAnnualIncome]).Records()
	transmissions := df.Col(columns[ColumnTransmission]).Records()

	sales := make([]domain.Sale, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		row := i + 1

		date, err := ParseDate(dates[i])
		if err != nil {
			return nil, newCellError(ErrInvalidDate, source, row, ColumnDate, dates[i])
		}

		price, err := ParseAmount(prices[i])
		if err != nil {
			return nil, newCellError(ErrInvalidNumber, source, row, ColumnPrice, prices[i])
		}

		income, err := ParseAmount(incomes[i])
		if err != nil {
			return nil, newCellError(ErrInvalidNumber, source, row, ColumnAnnualIncome, incomes[i])
		}

		sales = append(sales, domain.Sale{
			Date:         date,
			Company:      normalizeCategory(companies[i]),
			Price:        price,
			AnnualIncome: income,
			Transmission: normalizeCategory(transmissions[i]),
		})
	}

	return build(source, sales)
}

func build(source string, sales []domain.Sale) (*Dataset, error) {
	ds, err := New(source, sales)
	if err != nil {
		return nil, newLoadError(err, source)
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": ds.Info().ID,
		"source":     source,
		"rows":       ds.Len(),
	}).Info("Dataset de vendas carregado")

	return ds, nil
}

// ParseDate converte uma data no formato MM/DD/YYYY
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// ParseAmount converte um valor monetário, ignorando símbolo e separador de milhar
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(value))
	return decimal.NewFromString(cleaned)
}

func normalizeCategory(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
