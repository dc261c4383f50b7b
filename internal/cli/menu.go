package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"finman/internal/services"
)

// Menu is the interactive two-level session loop: register/login at the
// top, then transaction, report, and budget actions for the logged-in
// user. It only parses input and formats output; validation and all
// persistence rules stay behind the services.
type Menu struct {
	auth    *services.AuthService
	ledger  *services.LedgerService
	budgets *services.BudgetService
	reports *services.ReportService

	in    *bufio.Scanner
	rawIn io.Reader
	out   io.Writer
}

func NewMenu(
	auth *services.AuthService,
	ledger *services.LedgerService,
	budgets *services.BudgetService,
	reports *services.ReportService,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		auth:    auth,
		ledger:  ledger,
		budgets: budgets,
		reports: reports,
		in:      bufio.NewScanner(in),
		rawIn:   in,
		out:     out,
	}
}

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to Personal Finance Manager!")
	for {
		fmt.Fprintln(m.out, "\n1. Register\n2. Login\n3. Exit")
		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			m.register(ctx)
		case "2":
			if userID, ok := m.login(ctx); ok {
				if err := m.session(ctx, userID); err != nil {
					return err
				}
			}
		case "3":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) register(ctx context.Context) {
	username, ok := m.prompt("Enter a username: ")
	if !ok {
		return
	}
	password, ok := m.promptPassword("Enter a password: ")
	if !ok {
		return
	}
	if err := m.auth.Register(ctx, username, password); err != nil {
		fmt.Fprintf(m.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Registration successful!")
}

func (m *Menu) login(ctx context.Context) (int64, bool) {
	username, ok := m.prompt("Enter your username: ")
	if !ok {
		return 0, false
	}
	password, ok := m.promptPassword("Enter your password: ")
	if !ok {
		return 0, false
	}
	userID, err := m.auth.Authenticate(ctx, username, password)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid credentials.")
		return 0, false
	}
	fmt.Fprintln(m.out, "Login successful!")
	return userID, true
}

func (m *Menu) session(ctx context.Context, userID int64) error {
	for {
		fmt.Fprintln(m.out, "\n1. Add Transaction\n2. Generate Report\n3. Set Budget\n4. Logout")
		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			m.addTransaction(ctx, userID)
		case "2":
			m.generateReport(ctx, userID)
		case "3":
			m.setBudget(ctx, userID)
		case "4":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) addTransaction(ctx context.Context, userID int64) {
	kind, ok := m.prompt("Enter type (income/expense): ")
	if !ok {
		return
	}
	category, ok := m.prompt("Enter category (e.g., Food, Rent, Salary): ")
	if !ok {
		return
	}
	amount, ok := m.prompt("Enter amount: ")
	if !ok {
		return
	}
	date, ok := m.prompt("Enter date (YYYY-MM-DD) or press Enter for today: ")
	if !ok {
		return
	}
	if _, err := m.ledger.Add(ctx, userID, strings.ToLower(kind), category, amount, date); err != nil {
		fmt.Fprintf(m.out, "Could not add transaction: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Transaction added successfully!")
}

func (m *Menu) generateReport(ctx context.Context, userID int64) {
	filter, ok := m.prompt("Enter year (YYYY) and optionally month (YYYY-MM) for filtering: ")
	if !ok {
		return
	}
	report, err := m.reports.Generate(ctx, userID, filter)
	if err != nil {
		fmt.Fprintf(m.out, "Could not generate report: %v\n", err)
		return
	}

	fmt.Fprintln(m.out, "\nReport:")
	for _, g := range report.Groups {
		fmt.Fprintf(m.out, "Category: %s, Type: %s, Amount: %s\n", g.Category, g.Kind, g.Total)
	}
	fmt.Fprintf(m.out, "Total Income: %s\n", report.TotalIncome)
	fmt.Fprintf(m.out, "Total Expenses: %s\n", report.TotalExpenses)
	fmt.Fprintf(m.out, "Savings: %s\n", report.Savings)
}

func (m *Menu) setBudget(ctx context.Context, userID int64) {
	category, ok := m.prompt("Enter category for budget: ")
	if !ok {
		return
	}
	amount, ok := m.prompt("Enter budget amount: ")
	if !ok {
		return
	}
	if _, err := m.budgets.Set(ctx, userID, category, amount); err != nil {
		fmt.Fprintf(m.out, "Could not set budget: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Budget set successfully!")
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptPassword reads without echo when the session is a real terminal,
// so plaintext never shows on screen. Piped input falls back to a plain
// line read.
func (m *Menu) promptPassword(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if f, ok := m.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(m.out)
		if err != nil {
			return "", false
		}
		return string(pw), true
	}
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
