// Package bank contains a minimal account type whose only purpose is to be
// exercised by the example tests in this repository. It has just enough
// behavior to demonstrate precondition errors and simple state changes.
package bank

import "errors"

var (
	// ErrNonPositiveAmount is returned when a deposit or withdrawal amount
	// is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a simple bank account with a non-negative balance.
type Account struct {
	owner   string
	email   string
	balance float64
}

// NewAccount creates an account with an initial balance. A negative initial
// balance is treated as zero.
func NewAccount(owner, email string, initialBalance float64) *Account {
	if initialBalance < 0 {
		initialBalance = 0
	}
	return &Account{owner: owner, email: email, balance: initialBalance}
}

func (a *Account) Owner() string { return a.owner }

func (a *Account) Email() string { return a.email }

// Balance returns the current balance. It is never negative.
func (a *Account) Balance() float64 { return a.balance }

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	a.balance += amount
	return nil
}

// Withdraw removes a positive amount from the balance. The amount may not
// exceed the current balance.
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}
