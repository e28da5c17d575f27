// Package kalshi reconstructs the financial state of a Kalshi trading
// account from its raw activity records.
//
// The inputs are the records an external collaborator has already fetched
// from the exchange: trade fills, market settlements, a point-in-time
// balance, and the open event positions. Their exact JSON shape varies
// across API revisions, so every logical value (timestamp, money amount,
// trade action) is resolved through an ordered list of candidate field
// names before any accounting happens.
//
// From those records the package derives:
//   - Capital deployed: total invested, the portion recycled from prior
//     sales, and the net new cash actually committed.
//   - Realized profit and loss from settled markets, with a time-ordered
//     cumulative series suitable for charting.
//   - The realized/unrealized split against the configured total deposits.
//
// The whole computation is a pure, stateless transform: it performs no
// I/O, never mutates its inputs, and never fails on incomplete records:
// absent or malformed fields degrade locally, field by field.
//
// This package is the foundation of the `kpr` command-line tool.
package kalshi
