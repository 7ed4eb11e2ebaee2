// Package amortizer computes loan amortization schedules.
//
// A [Loan] is described by its amount, its number of monthly periods and its
// annual nominal interest rate in percent. Two repayment methods are
// supported:
//   - [Annuity]: a constant payment per period, the interest share of each
//     payment decreases while the principal share grows.
//   - [Straight]: a constant principal repayment per period, the interest and
//     so the payment decrease over time.
//
// A [Schedule] lists, for each period, the amortization, the interest
// expense, the payment and the remaining debt. Values are rounded to two
// decimals. A schedule can be reduced into a [Summary], or exported as HTML,
// JSON, CSV or XLSX.
//
// Schedules are recomputed on every call, a Loan is an immutable value.
//
// This package serves as the foundational logic for the `amortize`
// command-line tool.
package amortizer
