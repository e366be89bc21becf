// Package renderer renders simulation reports to markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/banksim"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders the end-of-run state of a simulation: one row
// per account, then totals aggregated by kind.
func SimulationMarkdown(r *banksim.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Simulation of %d accounts (%s)", len(r.Accounts), r.Currency))

	doc.H2("Accounts")
	accounts := md.TableSet{
		Header: []string{"Account", "Kind", "Balance"},
	}
	for _, a := range r.Accounts {
		accounts.Rows = append(accounts.Rows, []string{shortID(a), string(a.Kind), a.Balance.Display()})
	}
	doc.Table(accounts)

	doc.H2("Totals by kind")
	counts := make(map[banksim.Kind]int)
	totals := make(map[banksim.Kind]banksim.Money)
	for _, a := range r.Accounts {
		counts[a.Kind]++
		totals[a.Kind] = totals[a.Kind].Add(a.Balance)
	}
	byKind := md.TableSet{
		Header: []string{"Kind", "Accounts", "Total balance"},
	}
	for _, k := range banksim.Kinds() {
		if counts[k] == 0 {
			continue
		}
		byKind.Rows = append(byKind.Rows, []string{string(k), fmt.Sprintf("%d", counts[k]), totals[k].Display()})
	}
	doc.Table(byKind)

	return doc.String()
}

// shortID keeps account rows readable: the first UUID group is plenty to
// tell accounts of a single run apart.
func shortID(a banksim.AccountState) string {
	return a.ID.String()[:8]
}
