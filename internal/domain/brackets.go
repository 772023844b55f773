package domain

// IncomeGroup é a faixa de renda anual do comprador
type IncomeGroup string

const (
	Income0To50K     IncomeGroup = "0-50K"
	Income50KTo100K  IncomeGroup = "50K-100K"
	Income100KTo200K IncomeGroup = "100K-200K"
	Income200KTo500K IncomeGroup = "200K-500K"
	Income500KTo1M   IncomeGroup = "500K-1M"
	Income1MPlus     IncomeGroup = "1M+"
)

// IncomeGroups lista as faixas de renda na ordem dos limites
var IncomeGroups = []IncomeGroup{
	Income0To50K,
	Income50KTo100K,
	Income100KTo200K,
	Income200KTo500K,
	Income500KTo1M,
	Income1MPlus,
}

// PriceRange é a faixa de preço do veículo
type PriceRange string

const (
	Price0To20K    PriceRange = "0-20K"
	Price20KTo40K  PriceRange = "20K-40K"
	Price40KTo60K  PriceRange = "40K-60K"
	Price60KTo80K  PriceRange = "60K-80K"
	Price80KTo100K PriceRange = "80K-100K"
)

// PriceRanges lista as faixas de preço na ordem dos limites
var PriceRanges = []PriceRange{
	Price0To20K,
	Price20KTo40K,
	Price40KTo60K,
	Price60KTo80K,
	Price80KTo100K,
}
