// Package dca provides the types and functions to follow a dollar-cost
// averaging plan on a single asset. It is designed to be local-first: every
// asset lives in its own file, readable by a spreadsheet application.
//
// The core functionalities include:
//   - Ledger Management: recording purchases (investment and unit price) in
//     the order they were made, with the quantity bought fixed at creation.
//   - Averaging: a stateless calculator that derives the totals, the
//     break-even price and the price of the next planned purchase given a
//     drawdown percentage.
//   - Sessions: a single "current asset" through which every mutation is
//     applied and immediately persisted to a [Repository].
//
// All the arithmetic is done with exact decimals, never with floats.
//
// This package serves as the foundational logic for the `dca` command-line
// tool.
package dca
