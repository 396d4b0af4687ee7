package valueobjects

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// idPrinter formats integers with Indonesian digit grouping ("." for
// thousands), matching Rupiah display convention: 125000 -> "125.000".
var idPrinter = message.NewPrinter(language.Indonesian)

// Money holds a whole-rupiah amount. IDR has no minor unit in practice,
// so no cents field is carried.
type Money struct {
	amount   int64
	currency string
}

func NewMoney(amount int64, currency string) Money {
	if currency == "" {
		currency = "IDR"
	}
	return Money{
		amount:   amount,
		currency: currency,
	}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount, currency: m.currency}
}

func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// Format renders the amount with thousands grouping and no decimals,
// e.g. 125000 -> "125.000".
func (m Money) Format() string {
	return idPrinter.Sprintf("%d", m.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Format(), m.currency)
}
