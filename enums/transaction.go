package enums

type TransactionType string

const (
	TransactionRent TransactionType = "rent"
	TransactionSale TransactionType = "sale"
)

func (t TransactionType) Valid() bool {
	return t == TransactionRent || t == TransactionSale
}
