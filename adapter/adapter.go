// Package adapter defines the outbound messaging boundary. The core hands
// plain structured payloads to an Adapter after a committed checkout or a
// confirmed reorder; formatting and transport are entirely the adapter's
// concern.
package adapter

import (
	"context"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// ReceiptEvent is the payload published when a checkout commits.
type ReceiptEvent struct {
	EventType string           `json:"event_type"` // always "receipt"
	Lines     []types.CartLine `json:"lines"`
	Total     float64          `json:"total"`
	Revenue   float64          `json:"revenue"`
	Timestamp string           `json:"timestamp"` // ISO 8601
}

// ReorderEvent is the payload published when a restock prompt is confirmed.
type ReorderEvent struct {
	EventType string `json:"event_type"` // always "reorder"
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"` // stock level that triggered the prompt
	Level     int    `json:"level"` // trigger level (5 warning, 2 critical)
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// Adapter publishes checkout and reorder payloads to a downstream system.
type Adapter interface {
	// PublishReceipt sends a committed transaction.
	// Must respect context cancellation and deadlines.
	PublishReceipt(ctx context.Context, event *ReceiptEvent) error

	// PublishReorder sends a confirmed restock request.
	PublishReorder(ctx context.Context, event *ReorderEvent) error

	// Close releases adapter resources.
	Close() error
}

// Noop discards every payload. Used when no adapter is configured.
type Noop struct{}

// PublishReceipt discards the event.
func (Noop) PublishReceipt(context.Context, *ReceiptEvent) error { return nil }

// PublishReorder discards the event.
func (Noop) PublishReorder(context.Context, *ReorderEvent) error { return nil }

// Close is a no-op.
func (Noop) Close() error { return nil }

// Verify Noop implements the adapter interface.
var _ Adapter = Noop{}
