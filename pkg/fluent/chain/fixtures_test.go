package chain

import (
	"errors"
	"iter"
)

var errDivideByZero = errors.New("cannot divide by zero")

type calculator struct {
	value float64
}

func newCalculator(v float64) *calculator {
	return &calculator{value: v}
}

func (c *calculator) Add(n float64) *calculator {
	c.value += n
	return c
}

func (c *calculator) Subtract(n float64) *calculator {
	c.value -= n
	return c
}

func (c *calculator) Multiply(n float64) *calculator {
	c.value *= n
	return c
}

func (c *calculator) Divide(n float64) (*calculator, error) {
	if n == 0 {
		return nil, errDivideByZero
	}
	c.value /= n
	return c, nil
}

func (c *calculator) GetValue() float64 {
	return c.value
}

func (c *calculator) IsPositive() bool {
	return c.value > 0
}

func (c *calculator) Reset() {
	c.value = 0
}

func (c *calculator) MinMax(other float64) (float64, float64) {
	return min(c.value, other), max(c.value, other)
}

type user struct {
	Name    string
	Age     int
	Email   string
	Roles   []string
	Profile *profile
}

func (u *user) SetEmail(email string) *user {
	u.Email = email
	return u
}

func (u *user) SetAge(age uint8) *user {
	u.Age = int(age)
	return u
}

func (u *user) GetEmail() string {
	return u.Email
}

func (u *user) IsAdult() bool {
	return u.Age >= 18
}

func (u *user) AddRole(role string) *user {
	u.Roles = append(u.Roles, role)
	return u
}

func (u *user) GetRoles() []string {
	return u.Roles
}

func (u *user) GetProfile() *profile {
	return u.Profile
}

type profile struct {
	Bio string
}

func (p *profile) SetBio(bio string) *profile {
	p.Bio = bio
	return p
}

func (p *profile) GetBio() string {
	return p.Bio
}

type inventory struct {
	Stock map[string]int
}

func (i *inventory) Counts() map[string]int {
	return i.Stock
}

func (i *inventory) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range []string{"apple", "pear"} {
			if !yield(n) {
				return
			}
		}
	}
}

func (i *inventory) Pairs() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, n := range []string{"apple", "pear"} {
			if !yield(n, i.Stock[n]) {
				return
			}
		}
	}
}

// counterSheet copies itself with a marker so tests can tell the copy apart.
type counterSheet struct {
	Count  int
	Copied bool
}

func (s *counterSheet) Inc() *counterSheet {
	s.Count++
	return s
}

func (s *counterSheet) CloneSubject() any {
	return &counterSheet{Count: s.Count, Copied: true}
}

type point struct {
	X, Y int
}

func (p point) Move(dx, dy int) point {
	return point{X: p.X + dx, Y: p.Y + dy}
}

func (p point) Sum() int {
	return p.X + p.Y
}

type greeter struct{}

func (greeter) Greet() string { return "hello" }

type waver struct{}

func (waver) Wave() string { return "wave" }

// Both funcs declare a local type named visitor.
func newGreetingVisitor() any {
	type visitor struct{ greeter }
	return &visitor{}
}

func newWavingVisitor() any {
	type visitor struct{ waver }
	return &visitor{}
}
