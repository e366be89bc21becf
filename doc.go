// Package banksim provides a small simulation of bank accounts whose
// monthly fee policy differs per account kind, while deposits,
// withdrawals and transaction counting are shared by all of them.
//
// The core functionalities include:
//   - Account Capability: the common contract (deposit, withdraw, balance,
//     monthly transaction counting) every account kind honors.
//   - Charge Policies: three concrete kinds (Fee, NickleNDime, Gambler),
//     each supplying its own end-of-month charge rule, two of them also
//     wrapping the shared withdrawal primitive.
//   - Monthly Settlement: the fixed protocol that applies the kind's
//     charge, emits a one-line summary, and resets the transaction counter.
//   - Simulation Engine: builds a random population of accounts, applies
//     random transactions through the polymorphic contract, and settles
//     every account at month end.
//
// This package serves as the foundational logic for the `bsim` command-line
// tool. All randomness flows through an injectable, seedable source so that
// every run can be reproduced exactly.
package banksim
