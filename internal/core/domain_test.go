package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"income", true},
		{"expense", true},
		{"Income", false},
		{"transfer", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if tc.ok {
			if err != nil || string(got) != tc.in {
				t.Fatalf("%q expected ok, got %q (err=%v)", tc.in, got, err)
			}
		} else if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("%q expected ErrInvalidKind, got %v", tc.in, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-11-01", true},
		{"2024-02-29", true}, // leap day
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-11-1", false}, // not canonical
		{"24-11-01", false},
		{"yesterday", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil || string(got) != tc.in {
				t.Fatalf("%q expected ok, got %q (err=%v)", tc.in, got, err)
			}
		} else if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, 11, 2, 23, 59, 0, 0, time.UTC))
	if d != "2024-11-02" {
		t.Fatalf("expected 2024-11-02, got %s", d)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		UserID:   1,
		Kind:     Expense,
		Category: "Food",
		Amount:   Money{Cents: 200},
		Date:     "2024-11-02",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Kind: "deposit", Category: "Food", Amount: Money{Cents: 1}, Date: "2024-11-02"},
		{Kind: Expense, Category: "", Amount: Money{Cents: 1}, Date: "2024-11-02"},
		{Kind: Expense, Category: "Food", Amount: Money{Cents: 0}, Date: "2024-11-02"},
		{Kind: Expense, Category: "Food", Amount: Money{Cents: 1}, Date: "02/11/2024"},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := (Budget{Category: "Food", Amount: Money{Cents: 1}}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Budget{Category: "", Amount: Money{Cents: 1}}).Validate(); err == nil {
		t.Fatalf("expected error for empty category")
	}
	if err := (Budget{Category: "Food", Amount: Money{}}).Validate(); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
