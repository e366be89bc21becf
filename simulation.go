package banksim

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxRandomCents bounds the random transaction amounts: amounts are drawn
// uniformly in [0, 100.00) with cent granularity.
const maxRandomCents = 10000

// SimulationConfig describes the population and the monthly activity of a
// simulation.
type SimulationConfig struct {
	Accounts     int   // size of the account population
	Transactions int   // random deposits/withdrawals applied per month
	Opening      Money // opening balance given to every account
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SimulationConfig) Validate() error {
	if c.Accounts <= 0 {
		return fmt.Errorf("simulation needs at least one account, got %d", c.Accounts)
	}
	if c.Transactions < 0 {
		return fmt.Errorf("monthly transaction count cannot be negative, got %d", c.Transactions)
	}
	return nil
}

// Simulation owns a population of accounts and drives it through monthly
// cycles: random transactions through the polymorphic Account contract,
// then settlement of every account.
//
// It is strictly sequential. All randomness (kind selection, target
// selection, amounts, the Gambler's draws) comes from the injected source,
// so a fixed seed reproduces a run exactly.
type Simulation struct {
	cfg      SimulationConfig
	rng      *rand.Rand
	accounts []Account
}

// NewSimulation builds a population of cfg.Accounts accounts, each with a
// uniformly chosen kind and the configured opening balance.
func NewSimulation(cfg SimulationConfig, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{cfg: cfg, rng: rng}
	for i := 0; i < cfg.Accounts; i++ {
		switch Kinds()[rng.Intn(len(Kinds()))] {
		case KindFee:
			s.accounts = append(s.accounts, NewFee(cfg.Opening))
		case KindNickleNDime:
			s.accounts = append(s.accounts, NewNickleNDime(cfg.Opening))
		case KindGambler:
			s.accounts = append(s.accounts, NewGambler(cfg.Opening, rng))
		}
	}
	return s, nil
}

// Accounts returns the simulation's population.
func (s *Simulation) Accounts() []Account { return s.accounts }

// RunMonth applies the configured number of random transactions, then
// settles every account, writing one summary line per account to w.
func (s *Simulation) RunMonth(w io.Writer) {
	for i := 0; i < s.cfg.Transactions; i++ {
		target := s.accounts[s.rng.Intn(len(s.accounts))]
		amount := s.randomAmount()
		if s.rng.Intn(2) == 0 {
			target.Deposit(amount)
		} else {
			target.Withdraw(amount)
		}
	}
	for _, a := range s.accounts {
		a.SettleMonth(w)
	}
}

// Run drives the simulation for the given number of months.
func (s *Simulation) Run(w io.Writer, months int) {
	for m := 0; m < months; m++ {
		s.RunMonth(w)
	}
}

func (s *Simulation) randomAmount() Money {
	cents := decimal.New(int64(s.rng.Intn(maxRandomCents)), -2)
	return M(cents, s.cfg.Opening.Currency())
}

// AccountState is the reportable snapshot of one account.
type AccountState struct {
	ID      uuid.UUID
	Kind    Kind
	Balance Money
}

// Report is the reportable snapshot of a whole simulation.
type Report struct {
	Currency string
	Accounts []AccountState
}

// Report snapshots the current state of the population for rendering.
func (s *Simulation) Report() *Report {
	r := &Report{Currency: s.cfg.Opening.Currency()}
	for _, a := range s.accounts {
		r.Accounts = append(r.Accounts, AccountState{ID: a.ID(), Kind: a.Kind(), Balance: a.Balance()})
	}
	return r
}
