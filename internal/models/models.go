// Package models holds the data contract shared with the Spicy Trolly
// backend. All identifiers are opaque strings assigned by the server;
// the client never generates them. JSON keys are camelCase to match the
// API exactly.
package models

import "github.com/shopspring/decimal"

func init() {
	// The backend serializes money as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
