package tests

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errDivideByZero      = errors.New("division by zero")
	errInsufficientFunds = errors.New("insufficient funds")
)

type Calculator struct {
	value float64
}

func NewCalculator(initial float64) *Calculator {
	return &Calculator{value: initial}
}

func (c *Calculator) Add(n float64) *Calculator {
	c.value += n
	return c
}

func (c *Calculator) Multiply(n float64) *Calculator {
	c.value *= n
	return c
}

func (c *Calculator) DivideBy(n float64) (*Calculator, error) {
	if n == 0 {
		return nil, errDivideByZero
	}
	c.value /= n
	return c, nil
}

func (c *Calculator) GetValue() float64 {
	return c.value
}

type Account struct {
	Owner   string
	Balance int
	History []string
}

func (a *Account) Deposit(amount int) *Account {
	a.Balance += amount
	a.History = append(a.History, fmt.Sprintf("deposit %d", amount))
	return a
}

func (a *Account) Withdraw(amount int) (*Account, error) {
	if amount > a.Balance {
		return nil, errInsufficientFunds
	}
	a.Balance -= amount
	a.History = append(a.History, fmt.Sprintf("withdraw %d", amount))
	return a, nil
}

func (a *Account) GetBalance() int {
	return a.Balance
}

func (a *Account) IsOverdrawn() bool {
	return a.Balance < 0
}

type StringBuilder struct {
	parts []string
}

func (b *StringBuilder) Append(s string) *StringBuilder {
	b.parts = append(b.parts, s)
	return b
}

func (b *StringBuilder) Upper() *StringBuilder {
	for i, p := range b.parts {
		b.parts[i] = strings.ToUpper(p)
	}
	return b
}

func (b *StringBuilder) Build(sep string) string {
	return strings.Join(b.parts, sep)
}

type Notification struct {
	To      string
	Message string
}

// Mailer fails the first failures sends, then delivers.
type Mailer struct {
	failures int
	Sent     []Notification
}

func (m *Mailer) Send(to, message string) (*Notification, error) {
	if m.failures > 0 {
		m.failures--
		return nil, errors.New("smtp unavailable")
	}
	n := Notification{To: to, Message: message}
	m.Sent = append(m.Sent, n)
	return &n, nil
}

func (n *Notification) Summary() string {
	return n.To + ": " + n.Message
}
