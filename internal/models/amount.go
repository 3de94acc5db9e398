package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
)

const (
	// amountScale is the number of fractional digits kept for every amount.
	amountScale = 2
	// amountIntDigits is the number of integer digits a DECIMAL(19,2) column holds.
	amountIntDigits = 17
	// maxAmountInput bounds the length of an amount as sent by a client.
	maxAmountInput = 64
)

// sqliteAmountLimit bounds amounts written to SQLite, which keeps DECIMAL
// columns as 8-byte floats. Below 1e13 an amount has at most 15 significant
// digits and survives the round trip exactly.
var sqliteAmountLimit = decimal.New(1, 13)

// ErrAmountNotStorable is returned when saving an amount the database
// would round.
var ErrAmountNotStorable = apperrors.WithMessage(apperrors.ErrInvalidInput,
	"amount must be below 10000000000000 on this database")

// Amount is a fixed-point monetary value with two fractional digits.
//
// It marshals to a JSON number ("42.50") and accepts either a JSON number or
// a decimal string on input. Input must fit DECIMAL(19,2): below 1e17 in
// magnitude and with no more than two significant fractional digits.
type Amount struct {
	decimal.Decimal
}

// NewAmount rounds d to two fractional digits.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(amountScale)}
}

// ParseAmount parses a decimal string such as "42.5" or "1000.00".
func ParseAmount(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxAmountInput {
		return Amount{}, fmt.Errorf("invalid amount: longer than %d characters", maxAmountInput)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: expected a decimal number", s)
	}
	if err := checkAmountInput(d); err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return fromInput(d), nil
}

// checkAmountInput rejects values a DECIMAL(19,2) column cannot hold. It
// only inspects the coefficient and exponent, so huge exponents are never
// expanded.
func checkAmountInput(d decimal.Decimal) error {
	if d.IsZero() {
		// 0e-99999999 is valid; fromInput drops its exponent.
		return nil
	}
	digits := d.Abs().Coefficient().String()
	exp := int(d.Exponent())

	if len(digits)+exp > amountIntDigits {
		return fmt.Errorf("must be below 1e%d in magnitude", amountIntDigits)
	}
	if extra := -exp - amountScale; extra > 0 {
		if extra >= len(digits) || strings.TrimRight(digits[len(digits)-extra:], "0") != "" {
			return fmt.Errorf("at most %d fractional digits allowed", amountScale)
		}
	}
	return nil
}

func fromInput(d decimal.Decimal) Amount {
	if d.IsZero() {
		return NewAmount(decimal.Zero)
	}
	return NewAmount(d)
}

// MustParseAmount is like ParseAmount but panics on malformed input.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Equal reports whether a and o represent the same value.
func (a Amount) Equal(o Amount) bool {
	return a.Decimal.Equal(o.Decimal)
}

// Cmp compares a and o like decimal.Decimal.Cmp.
func (a Amount) Cmp(o Amount) int {
	return a.Decimal.Cmp(o.Decimal)
}

func (a Amount) String() string {
	return a.StringFixed(amountScale)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > maxAmountInput+2 {
		return fmt.Errorf("invalid amount: longer than %d characters", maxAmountInput)
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount %s: expected a decimal number", string(data))
	}
	if err := checkAmountInput(d); err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	*a = fromInput(d)
	return nil
}

// Value implements driver.Valuer. The fixed-point string keeps the exact
// value on its way to DECIMAL columns.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("scan amount: %w", err)
	}
	*a = NewAmount(d)
	return nil
}

// checkStorable is called from the BeforeSave hooks of models with amounts.
func checkStorable(tx *gorm.DB, a Amount) error {
	if tx.Dialector.Name() == "sqlite" && a.Abs().Cmp(sqliteAmountLimit) >= 0 {
		return ErrAmountNotStorable
	}
	return nil
}
