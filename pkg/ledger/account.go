package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is the in-memory ledger for one interactive session. Every
// balance-affecting operation saves through the Store. A failed save is
// returned as *SaveError but the operation stays applied in memory; the
// next successful save writes it out.
type Account struct {
	store     *Store
	balance   decimal.Decimal
	purchases []Purchase
	now       func() time.Time
}

// Open loads the ledger from store. The notice is non-nil when the file
// existed but could not be used; the account then starts from zero.
func Open(store *Store) (acct *Account, notice error) {
	rec, notice := store.Load()
	return &Account{
		store:     store,
		balance:   rec.Balance,
		purchases: rec.Purchases,
		now:       store.now,
	}, notice
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Purchases returns a copy of the purchase history in chronological order.
func (a *Account) Purchases() []Purchase {
	return slices.Clone(a.purchases)
}

// TotalSpent returns the sum of all purchase amounts in the history.
func (a *Account) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.purchases {
		total = total.Add(p.Amount)
	}
	return total
}

// Deposit adds amount to the balance and saves. Non-positive amounts are
// rejected with ErrNonPositiveAmount and change nothing.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return a.Save()
}

// Purchase records a purchase of amount and saves. It is rejected without
// side effects unless 0 < amount <= balance. A blank name is replaced by
// DefaultPurchaseName.
func (a *Account) Purchase(amount decimal.Decimal, name string) (Purchase, error) {
	if !amount.IsPositive() {
		return Purchase{}, ErrNonPositiveAmount
	}
	if amount.GreaterThan(a.balance) {
		return Purchase{}, ErrInsufficientFunds
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPurchaseName
	}

	a.balance = a.balance.Sub(amount)
	p := Purchase{
		Name:         name,
		Amount:       amount,
		Date:         a.now().Format(PurchaseDateLayout),
		BalanceAfter: a.balance,
	}
	a.purchases = append(a.purchases, p)

	return p, a.Save()
}

// ClearHistory empties the purchase history, keeps the balance, and saves.
func (a *Account) ClearHistory() error {
	a.purchases = []Purchase{}
	return a.Save()
}

// Save writes the current state through the store.
func (a *Account) Save() error {
	return a.store.Save(a.balance, a.purchases)
}
