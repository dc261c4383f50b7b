package core

import (
	"errors"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// isoDate is the layout every stored date uses.
const isoDate = "2006-01-02"

type (
	// Kind tells income and expense transactions apart.
	Kind string

	// Date is a calendar day in ISO YYYY-MM-DD form, kept as text so
	// period filters can match it by string prefix.
	Date string

	// Money is an amount in integer cents.
	Money struct {
		Cents int64
	}

	User struct {
		ID           int64
		Username     string
		PasswordHash string
	}

	Transaction struct {
		ID       int64
		UserID   int64
		Kind     Kind
		Category string
		Amount   Money
		Date     Date
	}

	Budget struct {
		ID       int64
		UserID   int64
		Category string
		Amount   Money
	}
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrEmptyUsername      = errors.New("empty username")
	ErrEmptyPassword      = errors.New("empty password")
	ErrEmptyCategory      = errors.New("empty category")
	ErrNotFound           = errors.New("not found")
)

// ParseKind accepts exactly "income" or "expense".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Income, Expense:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) Validate() error {
	_, err := ParseKind(string(k))
	return err
}

// ParseDate validates s as a real YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	// Reject inputs that parse but are not in canonical form
	if t.Format(isoDate) != s {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// DateOf formats t as a stored date.
func DateOf(t time.Time) Date {
	return Date(t.Format(isoDate))
}

func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

func (d Date) String() string {
	return string(d)
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	return t.Date.Validate()
}

func (b Budget) Validate() error {
	if b.Category == "" {
		return ErrEmptyCategory
	}
	return b.Amount.Validate()
}
