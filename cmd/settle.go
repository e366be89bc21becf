package cmd

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/etnz/banksim"
	"github.com/google/subcommands"
)

// settleCmd holds the flags for the 'settle' subcommand.
type settleCmd struct {
	balance  float64
	currency string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "settle one idle account of each kind" }
func (*settleCmd) Usage() string {
	return `bsim settle [-balance <amount>] [-currency <code>]

  Creates one account of each kind with the given opening balance, applies
  no transactions, and settles each one. This shows the bare effect of each
  monthly charge policy: the flat fee charges, the others do not.

`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.balance, "balance", 100, "Opening balance of each account.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the accounts.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opening := banksim.M(c.balance, c.currency)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	accounts := []banksim.Account{
		banksim.NewFee(opening),
		banksim.NewNickleNDime(opening),
		banksim.NewGambler(opening, rng),
	}
	for _, a := range accounts {
		a.SettleMonth(os.Stdout)
	}
	return subcommands.ExitSuccess
}
