package shell

import (
	"errors"
	"log/slog"

	"github.com/shunichi-ikebuchi/file-manager/pkg/ledger"
)

// accountSession runs the bank account sub-menu until the user goes back.
// The ledger is loaded once on entry and saved after every change and on exit.
func (s *Shell) accountSession() error {
	acct := s.unsaved
	s.unsaved = nil
	if acct != nil {
		s.con.Warn("Continuing with account data that has not been saved yet")
	} else {
		var notice error
		acct, notice = ledger.Open(s.store)
		if notice != nil {
			slog.Warn("Ledger file unusable, starting from zero", "path", s.store.Path(), "error", notice)
			s.con.Warn("Account file could not be loaded, starting a new one (%v)", notice)
			if err := s.con.WaitForEnter(); err != nil {
				return s.leaveAccount(acct, err)
			}
		}
	}

	for {
		s.con.Screen("MY BANK ACCOUNT")
		s.con.Printf("Current balance: %s\n", ledger.FormatMoney(acct.Balance(), s.currency))
		s.con.Printf("Total purchases: %d\n", len(acct.Purchases()))
		s.con.Rule("-")
		for a := acctDeposit; a <= acctBack; a++ {
			s.con.Printf("%d. %s\n", int(a), a.label())
		}
		s.con.Rule("-")

		choice, err := s.con.Prompt("Choose an action: ")
		if err != nil {
			return s.leaveAccount(acct, err)
		}

		action := parseAccountAction(choice)
		switch action {
		case acctDeposit:
			err = s.deposit(acct)
		case acctPurchase:
			err = s.purchase(acct)
		case acctHistory:
			s.showHistory(acct)
		case acctClearHistory:
			err = s.clearHistory(acct)
		case acctBack:
			return s.leaveAccount(acct, nil)
		case acctInvalid:
			s.con.Error("Invalid selection!")
		}

		if err != nil {
			if isInputClosed(err) {
				return s.leaveAccount(acct, err)
			}
			s.report(CmdAccount, err)
		}

		if err := s.con.WaitForEnter(); err != nil {
			return s.leaveAccount(acct, err)
		}
	}
}

// leaveAccount saves on the way out. If that fails the account is kept in
// memory for the next session. cause is returned unchanged.
func (s *Shell) leaveAccount(acct *ledger.Account, cause error) error {
	if err := acct.Save(); err != nil {
		s.unsaved = acct
		s.report(CmdAccount, err)
	} else if cause == nil {
		s.con.Success("Data saved!")
		s.done(CmdAccount.Action(), ledger.FormatMoney(acct.Balance(), s.currency))
	}

	if cause == nil {
		if err := s.con.WaitForEnter(); err != nil {
			return err
		}
	}
	return cause
}

func (s *Shell) deposit(acct *ledger.Account) error {
	input, err := s.con.Prompt("Enter the top-up amount: ")
	if err != nil {
		return err
	}
	amount, err := ledger.ParseAmount(input)
	if err != nil {
		return err
	}

	err = acct.Deposit(amount)
	var saveErr *ledger.SaveError
	if err != nil && !errors.As(err, &saveErr) {
		return err
	}

	s.con.Success("Account topped up by %s", ledger.FormatMoney(amount, s.currency))
	s.done("deposit", amount.String())
	return err
}

func (s *Shell) purchase(acct *ledger.Account) error {
	input, err := s.con.Prompt("Enter the purchase price: ")
	if err != nil {
		return err
	}
	amount, err := ledger.ParseAmount(input)
	if err != nil {
		return err
	}
	name, err := s.con.Prompt("Enter the purchase name: ")
	if err != nil {
		return err
	}

	p, err := acct.Purchase(amount, name)
	var saveErr *ledger.SaveError
	if err != nil && !errors.As(err, &saveErr) {
		return err
	}

	s.con.Success("Purchase '%s' completed!", p.Name)
	s.done("purchase", p.Name+" "+p.Amount.String())
	return err
}

func (s *Shell) showHistory(acct *ledger.Account) {
	s.con.Screen("PURCHASE HISTORY")

	purchases := acct.Purchases()
	if len(purchases) == 0 {
		s.con.Println("Purchase history is empty")
		return
	}

	s.con.Printf("Total spent: %s\n\n", ledger.FormatMoney(acct.TotalSpent(), s.currency))
	for i, p := range purchases {
		s.con.Printf("%d. %s\n", i+1, p.Date)
		s.con.Printf("   %s - %s\n", p.Name, ledger.FormatMoney(p.Amount, s.currency))
		s.con.Printf("   Balance after: %s\n\n", ledger.FormatMoney(p.BalanceAfter, s.currency))
	}
}

func (s *Shell) clearHistory(acct *ledger.Account) error {
	ok, err := s.con.Confirm("Are you sure you want to clear the history? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		s.con.Println("Action cancelled.")
		return nil
	}

	err = acct.ClearHistory()
	s.con.Success("History cleared!")
	s.done("clear-history", "")
	return err
}
