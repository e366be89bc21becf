package banksim

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying an account's charge policy. It is
// fixed at construction and never changes for the account's lifetime.
type Kind string

// Account kinds.
const (
	KindFee         Kind = "Fee"
	KindNickleNDime Kind = "NickleNDime"
	KindGambler     Kind = "Gambler"
)

// Kinds lists every account kind, in a stable display order.
func Kinds() []Kind { return []Kind{KindFee, KindNickleNDime, KindGambler} }

// Account defines the common capability shared by every account kind.
//
// Deposit and Withdraw accept any amount, including negative ones, and a
// balance may go arbitrarily negative: amounts are trusted inputs here.
// Withdraw is the single bottleneck every balance reduction flows through,
// so a stricter policy would belong there, enforced once for all kinds.
type Account interface {
	// ID returns the account's unique identifier.
	ID() uuid.UUID
	// Kind returns the account's charge-policy kind.
	Kind() Kind
	// Deposit adds amount to the balance and counts one transaction.
	Deposit(amount Money)
	// Withdraw subtracts amount from the balance and counts one transaction.
	Withdraw(amount Money)
	// Balance returns the current balance.
	Balance() Money
	// Transactions returns the number of deposits and withdrawals since
	// the last settlement.
	Transactions() int
	// SettleMonth applies the kind's monthly charge, writes a one-line
	// summary to w, and resets the transaction counter. The charge runs
	// before the reset, so its own withdrawal shows up in the summary.
	SettleMonth(w io.Writer)
}

// Monthly charge rates.
var (
	flatMonthlyFee   = decimal.NewFromInt(5) // Fee: fixed charge at settlement
	perWithdrawalFee = decimal.New(50, -2)   // NickleNDime: charge per withdrawal
)

// gamblerOdds is the probability that a Gambler withdrawal doubles.
const gamblerOdds = 0.51

// baseAccount holds the state and primitives shared by all kinds. Kinds
// embed it and wrap its primitives with their own pre/post logic.
type baseAccount struct {
	id      uuid.UUID
	kind    Kind
	balance Money
	txCount int
}

func newBase(kind Kind, opening Money) baseAccount {
	return baseAccount{id: uuid.New(), kind: kind, balance: opening}
}

func (a *baseAccount) ID() uuid.UUID     { return a.id }
func (a *baseAccount) Kind() Kind        { return a.kind }
func (a *baseAccount) Balance() Money    { return a.balance }
func (a *baseAccount) Transactions() int { return a.txCount }

func (a *baseAccount) Deposit(amount Money) {
	a.balance = a.balance.Add(amount)
	a.txCount++
}

func (a *baseAccount) Withdraw(amount Money) {
	a.balance = a.balance.Sub(amount)
	a.txCount++
}

// settleMonth runs the monthly settlement protocol: charge first, then the
// summary line, then the counter reset. The order is fixed so the charge's
// own withdrawal is part of the printed transaction total.
func (a *baseAccount) settleMonth(w io.Writer, charge func()) {
	charge()
	fmt.Fprintf(w, "transactions:%d\tbalance:%s\t(%s)\n", a.txCount, a.balance, a.kind)
	a.txCount = 0
}

// Fee is an account charged a flat monthly fee at settlement, regardless
// of balance or activity.
type Fee struct {
	baseAccount
}

// NewFee creates a Fee account with the given opening balance.
func NewFee(opening Money) *Fee {
	return &Fee{baseAccount: newBase(KindFee, opening)}
}

func (a *Fee) chargeMonthly() {
	a.baseAccount.Withdraw(M(flatMonthlyFee, a.balance.Currency()))
}

func (a *Fee) SettleMonth(w io.Writer) { a.settleMonth(w, a.chargeMonthly) }

// NickleNDime is an account charged per withdrawal: it counts its own
// withdrawals during the month, separately from the shared transaction
// count, and settles them at 0.50 apiece.
type NickleNDime struct {
	baseAccount
	withdrawals int
}

// NewNickleNDime creates a NickleNDime account with the given opening balance.
func NewNickleNDime(opening Money) *NickleNDime {
	return &NickleNDime{baseAccount: newBase(KindNickleNDime, opening)}
}

// Withdraw counts the withdrawal before delegating the balance change to
// the shared primitive.
func (a *NickleNDime) Withdraw(amount Money) {
	a.withdrawals++
	a.baseAccount.Withdraw(amount)
}

func (a *NickleNDime) chargeMonthly() {
	if a.withdrawals == 0 {
		return
	}
	a.baseAccount.Withdraw(M(perWithdrawalFee, a.balance.Currency()).MulInt(int64(a.withdrawals)))
	a.withdrawals = 0
}

func (a *NickleNDime) SettleMonth(w io.Writer) { a.settleMonth(w, a.chargeMonthly) }

// Gambler is an account whose withdrawals are a bet: with probability
// gamblerOdds the amount actually withdrawn is double the requested one,
// otherwise it is zero. It pays no monthly charge.
type Gambler struct {
	baseAccount
	rng *rand.Rand
}

// NewGambler creates a Gambler account with the given opening balance.
// The outcome of each withdrawal is drawn from rng.
func NewGambler(opening Money, rng *rand.Rand) *Gambler {
	return &Gambler{baseAccount: newBase(KindGambler, opening), rng: rng}
}

// Withdraw draws the bet's outcome and delegates to the shared primitive.
// The losing branch withdraws zero rather than skipping the call, so the
// transaction still counts.
func (a *Gambler) Withdraw(amount Money) {
	if a.rng.Float64() < gamblerOdds {
		a.baseAccount.Withdraw(amount.MulInt(2))
		return
	}
	a.baseAccount.Withdraw(M(0, amount.Currency()))
}

func (a *Gambler) chargeMonthly() {}

func (a *Gambler) SettleMonth(w io.Writer) { a.settleMonth(w, a.chargeMonthly) }
