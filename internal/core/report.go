package core

// GroupTotal is the summed amount for one (kind, category) pair.
type GroupTotal struct {
	Kind     Kind
	Category string
	Total    Money
}

// Report is the aggregate view of a user's transactions over one period.
type Report struct {
	Filter        string
	TotalIncome   Money
	TotalExpenses Money
	Savings       Money
	Groups        []GroupTotal
}

// Aggregate builds a report from transactions already filtered to a period.
//
// Transactions are grouped by (kind, category) in order of first occurrence,
// each group's amounts are summed in cents, group sums roll up into the
// per-kind totals, and savings is income minus expenses. An empty input
// yields zero totals and no groups.
func Aggregate(filter string, txs []Transaction) Report {
	report := Report{Filter: filter}

	index := make(map[[2]string]int)
	for _, tx := range txs {
		key := [2]string{string(tx.Kind), tx.Category}
		i, ok := index[key]
		if !ok {
			i = len(report.Groups)
			index[key] = i
			report.Groups = append(report.Groups, GroupTotal{
				Kind:     tx.Kind,
				Category: tx.Category,
			})
		}
		report.Groups[i].Total = report.Groups[i].Total.Add(tx.Amount)
	}

	for _, g := range report.Groups {
		if g.Kind == Income {
			report.TotalIncome = report.TotalIncome.Add(g.Total)
		} else {
			report.TotalExpenses = report.TotalExpenses.Add(g.Total)
		}
	}
	report.Savings = report.TotalIncome.Sub(report.TotalExpenses)
	return report
}

// MatchesPeriod reports whether the date falls inside the filter window.
// The filter is a literal prefix of the ISO date: "2024" selects a year,
// "2024-11" a month. No calendar logic; a filter that matches nothing is
// not an error.
func (d Date) MatchesPeriod(filter string) bool {
	if len(filter) > len(d) {
		return false
	}
	return string(d[:len(filter)]) == filter
}
