package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// The currency package predefines only the majors, so the ringgit unit is
// resolved by ISO code once here.
var myr = currency.MustParseISO("MYR")

// MYR wraps an amount in the shop's currency.
func MYR(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: myr}
}

// Display renders the amount the way the shop prints it, e.g. "RM170.00".
func (m Money) Display() string {
	symbol := m.Currency.String()
	if m.Currency == myr {
		symbol = "RM"
	}

	return symbol + m.Amount.StringFixed(2)
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Amount,
		Currency: m.Currency.String(),
	})
}

// UnmarshalJSON accepts the object form as well as a bare amount, which older
// persisted carts stored with an implicit shop currency.
func (m *Money) UnmarshalJSON(b []byte) error {
	var obj moneyJSON
	if err := json.Unmarshal(b, &obj); err == nil && obj.Currency != "" {
		parsedCurrency, err := currency.ParseISO(obj.Currency)
		if err != nil {
			return fmt.Errorf("currency[%s] is not valid: %w", obj.Currency, err)
		}

		m.Amount = obj.Amount
		m.Currency = parsedCurrency
		return nil
	}

	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("money[%s] is neither an object nor an amount", string(b))
	}

	*m = MYR(amount)
	return nil
}
