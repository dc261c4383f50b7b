package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"finman/internal/services"
	"finman/internal/storage/memory"
)

func runMenu(t *testing.T, script ...string) string {
	t.Helper()
	store := memory.New()
	var out bytes.Buffer
	menu := NewMenu(
		services.NewAuthService(store),
		services.NewLedgerService(store),
		services.NewBudgetService(store),
		services.NewReportService(store),
		strings.NewReader(strings.Join(script, "\n")+"\n"),
		&out,
	)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestMenuFullSession(t *testing.T) {
	out := runMenu(t,
		"1", "alice", "s3cret", // register
		"2", "alice", "s3cret", // login
		"1", "income", "Salary", "1000", "2024-11-01", // add
		"1", "expense", "Food", "200", "2024-11-02",
		"2", "2024-11", // report
		"3", "Food", "300", // budget
		"4", // logout
		"3", // exit
	)

	for _, want := range []string{
		"Registration successful!",
		"Login successful!",
		"Transaction added successfully!",
		"Category: Salary, Type: income, Amount: 1000.00",
		"Total Income: 1000.00",
		"Total Expenses: 200.00",
		"Savings: 800.00",
		"Budget set successfully!",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMenuUniformLoginFailure(t *testing.T) {
	out := runMenu(t,
		"1", "alice", "s3cret",
		"2", "alice", "wrong", // wrong password
		"2", "mallory", "wrong", // unknown username
		"3",
	)

	if got := strings.Count(out, "Invalid credentials."); got != 2 {
		t.Fatalf("expected the same failure line twice, got %d:\n%s", got, out)
	}
}

func TestMenuRejectsBadTransaction(t *testing.T) {
	out := runMenu(t,
		"1", "alice", "s3cret",
		"2", "alice", "s3cret",
		"1", "expense", "Food", "minus five", "2024-11-02",
		"2", "2024", // nothing was persisted
		"4",
		"3",
	)

	if !strings.Contains(out, "Could not add transaction") {
		t.Fatalf("expected rejection message:\n%s", out)
	}
	if !strings.Contains(out, "Total Expenses: 0.00") {
		t.Fatalf("rejected write must not persist:\n%s", out)
	}
}

func TestMenuDuplicateRegistration(t *testing.T) {
	out := runMenu(t,
		"1", "alice", "first",
		"1", "alice", "second",
		"3",
	)

	if !strings.Contains(out, "Registration failed") {
		t.Fatalf("expected duplicate registration to fail:\n%s", out)
	}
}
