// Package metrics provides per-session metrics collection.
//
// The Collector accumulates counters during a single till session. It is a
// leaf package with no internal dependencies; the status bar reads its
// Snapshot and the final session log line reports it.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of session metrics.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Input classification
	ScansAccepted int64
	ScansUnknown  int64
	Hotkeys       int64

	// Transactions
	UnitsAdded      int64
	OutOfStock      int64
	LinesRemoved    int64
	CartsCleared    int64
	Checkouts       int64
	ReorderPrompts  int64
	ProductsCreated int64

	// StreakPeak is the highest streak reached this session.
	StreakPeak int64

	// Dimensions (informational, set at construction)
	SessionID string
	Terminal  string
}

// Collector accumulates metrics during a single session.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe.
type Collector struct {
	mu sync.Mutex

	scansAccepted int64
	scansUnknown  int64
	hotkeys       int64

	unitsAdded      int64
	outOfStock      int64
	linesRemoved    int64
	cartsCleared    int64
	checkouts       int64
	reorderPrompts  int64
	productsCreated int64

	streakPeak int64

	sessionID string
	terminal  string
}

// NewCollector creates a Collector with dimension labels.
func NewCollector(sessionID, terminal string) *Collector {
	return &Collector{
		sessionID: sessionID,
		terminal:  terminal,
	}
}

// IncScanAccepted records a scan resolved to a catalog product.
func (c *Collector) IncScanAccepted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.scansAccepted++
	c.mu.Unlock()
}

// IncScanUnknown records a scan with no catalog match.
func (c *Collector) IncScanUnknown() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.scansUnknown++
	c.mu.Unlock()
}

// IncHotkey records a digit shortcut add.
func (c *Collector) IncHotkey() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.hotkeys++
	c.mu.Unlock()
}

// IncUnitAdded records a successful AddUnit.
func (c *Collector) IncUnitAdded() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.unitsAdded++
	c.mu.Unlock()
}

// IncOutOfStock records an AddUnit rejected for lack of stock.
func (c *Collector) IncOutOfStock() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.outOfStock++
	c.mu.Unlock()
}

// IncLineRemoved records a RemoveLine.
func (c *Collector) IncLineRemoved() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.linesRemoved++
	c.mu.Unlock()
}

// IncCartCleared records a ClearCart.
func (c *Collector) IncCartCleared() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.cartsCleared++
	c.mu.Unlock()
}

// IncCheckout records a committed checkout.
func (c *Collector) IncCheckout() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.checkouts++
	c.mu.Unlock()
}

// IncReorderPrompt records a reorder threshold crossing.
func (c *Collector) IncReorderPrompt() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.reorderPrompts++
	c.mu.Unlock()
}

// IncProductCreated records a CreateAndAdd.
func (c *Collector) IncProductCreated() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.productsCreated++
	c.mu.Unlock()
}

// ObserveStreak records a streak value, keeping the session peak.
func (c *Collector) ObserveStreak(streak int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	if int64(streak) > c.streakPeak {
		c.streakPeak = int64(streak)
	}
	c.mu.Unlock()
}

// Snapshot returns an immutable point-in-time view of all metrics.
// The returned Snapshot is safe to read concurrently; the Collector can
// continue to be mutated independently.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		ScansAccepted:   c.scansAccepted,
		ScansUnknown:    c.scansUnknown,
		Hotkeys:         c.hotkeys,
		UnitsAdded:      c.unitsAdded,
		OutOfStock:      c.outOfStock,
		LinesRemoved:    c.linesRemoved,
		CartsCleared:    c.cartsCleared,
		Checkouts:       c.checkouts,
		ReorderPrompts:  c.reorderPrompts,
		ProductsCreated: c.productsCreated,
		StreakPeak:      c.streakPeak,
		SessionID:       c.sessionID,
		Terminal:        c.terminal,
	}
}
