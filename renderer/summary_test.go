package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/banksim"
	"github.com/google/uuid"
)

func TestSimulationMarkdown(t *testing.T) {
	r := &banksim.Report{
		Currency: "USD",
		Accounts: []banksim.AccountState{
			{ID: uuid.MustParse("11111111-0000-0000-0000-000000000000"), Kind: banksim.KindFee, Balance: banksim.M(95, "USD")},
			{ID: uuid.MustParse("22222222-0000-0000-0000-000000000000"), Kind: banksim.KindFee, Balance: banksim.M(45, "USD")},
			{ID: uuid.MustParse("33333333-0000-0000-0000-000000000000"), Kind: banksim.KindGambler, Balance: banksim.M(-10, "USD")},
		},
	}

	got := SimulationMarkdown(r)

	wantFragments := []string{
		"# Simulation of 3 accounts (USD)",
		"## Accounts",
		"11111111",
		"## Totals by kind",
		"Fee",
		"Gambler",
		"$140.00", // 95 + 45 aggregated for Fee
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("rendered report misses %q:\n%s", frag, got)
		}
	}

	// NickleNDime has no accounts in this run and must not appear.
	if strings.Contains(got, "NickleNDime") {
		t.Errorf("rendered report lists a kind with no accounts:\n%s", got)
	}
}
