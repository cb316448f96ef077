// Package ledger provides the persisted account balance and purchase history.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The ledger file stores amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// PurchaseDateLayout is the layout of Purchase.Date.
	PurchaseDateLayout = "2006-01-02 15:04:05"

	// DefaultPurchaseName replaces a blank purchase name.
	DefaultPurchaseName = "Purchase"

	// MaxIntegerDigits and MaxFractionDigits bound amounts accepted from
	// user input.
	MaxIntegerDigits  = 15
	MaxFractionDigits = 8
)

var (
	// ErrNonPositiveAmount rejects deposits and purchases of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds rejects purchases larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned when user input is not a number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrCorrupt is reported when the ledger file cannot be parsed.
	ErrCorrupt = errors.New("ledger file is corrupt")
)

// Record is the persisted account state.
type Record struct {
	Balance     decimal.Decimal `json:"balance"`
	Purchases   []Purchase      `json:"purchases"`
	LastUpdated string          `json:"last_updated,omitempty"`
}

// Purchase is one entry of the purchase history. Entries are never modified
// after being appended.
type Purchase struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// SaveError reports a failed write of the ledger file. The in-memory state
// that was being saved is kept as is.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save ledger to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// ParseAmount parses a user-entered currency amount. A comma is accepted as
// the decimal separator.
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}

	// The exponent is checked before any arithmetic on d.
	exp := d.Exponent()
	if exp < -MaxFractionDigits || exp > MaxIntegerDigits || d.NumDigits()+int(exp) > MaxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, input)
	}
	return d, nil
}

// FormatMoney renders an amount with two decimals and the currency label.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
