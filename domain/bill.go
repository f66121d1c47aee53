package domain

import "github.com/shopspring/decimal"

// Bill is the receipt produced when an order is processed. Amounts are
// rounded to two decimal places; Total includes tax.
type Bill struct {
	OrderID  int
	Customer string
	Lines    []string // human-readable "name x qty" descriptions
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}
