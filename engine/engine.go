package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/ThinkIshdeep/Chatur-Bazar/clock"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// DefaultStreakWindow is how long the streak counter survives without a
// successful add before decaying to zero.
const DefaultStreakWindow = 3 * time.Second

// Engine owns inventory, cart, revenue, streak, and the pending reorder
// prompt. All mutation routes through its operations; other components only
// read snapshots. Operations run on a single logical thread and return the
// domain events they produced, so no two operations can interleave partway.
type Engine struct {
	clk    clock.Clock
	window time.Duration

	products []types.Product
	index    map[string]int // product id -> products slice index

	cart      []types.CartLine
	cartIndex map[string]int // product id -> cart slice index

	revenue float64

	streak      int
	streakEpoch int64
	lastAdd     time.Time

	pending      *types.PendingReorder
	checkoutOpen bool
}

// New creates an engine over the given snapshot. The snapshot is copied;
// the caller's value is not retained. A zero streakWindow selects
// DefaultStreakWindow.
func New(clk clock.Clock, snap *types.Snapshot, streakWindow time.Duration) *Engine {
	if streakWindow <= 0 {
		streakWindow = DefaultStreakWindow
	}
	e := &Engine{
		clk:       clk,
		window:    streakWindow,
		products:  make([]types.Product, len(snap.Products)),
		index:     make(map[string]int, len(snap.Products)),
		cartIndex: make(map[string]int),
		revenue:   snap.Revenue,
	}
	copy(e.products, snap.Products)
	for i, p := range e.products {
		e.index[p.ID] = i
	}
	return e
}

// AddUnit reserves one unit of the product into the cart: stock decrements,
// the cart line increments (created on first add), the streak restarts its
// decay window, and the reorder trigger is evaluated against the new stock.
// Rejects with ErrOutOfStock when stock is zero; a StockDepleted event still
// accompanies the error so the surface can alert.
func (e *Engine) AddUnit(productID string) ([]types.DomainEvent, error) {
	i, ok := e.index[productID]
	if !ok {
		return nil, ErrUnknownProduct
	}
	p := &e.products[i]

	if p.Stock <= 0 {
		return []types.DomainEvent{types.StockDepleted{Product: *p}}, ErrOutOfStock
	}

	p.Stock--
	if p.Stock < 0 {
		panic("engine: stock conservation violated")
	}

	if j, ok := e.cartIndex[productID]; ok {
		e.cart[j].Quantity++
	} else {
		e.cartIndex[productID] = len(e.cart)
		e.cart = append(e.cart, types.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  1,
		})
	}

	e.streak++
	e.streakEpoch++
	e.lastAdd = e.clk.Now()
	events := []types.DomainEvent{
		types.StreakChanged{Count: e.streak, Epoch: e.streakEpoch},
	}

	// Edge-triggered: fires only when the decrement lands exactly on a
	// level. Restocking past a level and re-depleting to it fires again.
	if lvl, ok := triggerLevel(p.Stock); ok {
		e.pending = &types.PendingReorder{Product: *p, Level: lvl}
		events = append(events, types.ReorderThreshold{Product: *p, Level: lvl})
	}

	return events, nil
}

func triggerLevel(stock int) (types.ReorderLevel, bool) {
	switch types.ReorderLevel(stock) {
	case types.ReorderWarning:
		return types.ReorderWarning, true
	case types.ReorderCritical:
		return types.ReorderCritical, true
	}
	return 0, false
}

// RemoveLine restores the line's full quantity to inventory and deletes the
// line. No-op if the product has no line.
func (e *Engine) RemoveLine(productID string) {
	j, ok := e.cartIndex[productID]
	if !ok {
		return
	}
	line := e.cart[j]

	if i, ok := e.index[productID]; ok {
		e.products[i].Stock += line.Quantity
	}

	e.cart = append(e.cart[:j], e.cart[j+1:]...)
	delete(e.cartIndex, productID)
	for id, idx := range e.cartIndex {
		if idx > j {
			e.cartIndex[id] = idx - 1
		}
	}
}

// ClearCart restores every line's quantity to stock and empties the cart as
// one operation, so partial failure cannot leave stock inconsistent.
func (e *Engine) ClearCart() {
	for _, line := range e.cart {
		if i, ok := e.index[line.ProductID]; ok {
			e.products[i].Stock += line.Quantity
		}
	}
	e.cart = e.cart[:0]
	e.cartIndex = make(map[string]int)
	e.checkoutOpen = false
}

// OpenCheckout moves the checkout flow from Idle to ConfirmPending.
// Rejects with ErrEmptyCart; the surface disables the affordance but the
// engine still refuses.
func (e *Engine) OpenCheckout() error {
	if len(e.cart) == 0 {
		return ErrEmptyCart
	}
	e.checkoutOpen = true
	return nil
}

// CancelCheckout returns to Idle with the cart unchanged.
func (e *Engine) CancelCheckout() {
	e.checkoutOpen = false
}

// CheckoutOpen reports whether the confirmation is pending.
func (e *Engine) CheckoutOpen() bool {
	return e.checkoutOpen
}

// Checkout commits the sale: total is computed from each line's add-time
// price, revenue grows by that total, the cart empties without restoring
// stock (the units are sold, not returned), and the streak resets.
func (e *Engine) Checkout() ([]types.DomainEvent, error) {
	if len(e.cart) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]types.CartLine, len(e.cart))
	copy(lines, e.cart)

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}

	e.revenue += total
	e.cart = e.cart[:0]
	e.cartIndex = make(map[string]int)
	e.checkoutOpen = false
	e.streak = 0
	e.streakEpoch++

	return []types.DomainEvent{
		types.TransactionCompleted{Lines: lines, Total: total},
		types.StreakChanged{Count: 0, Epoch: e.streakEpoch},
	}, nil
}

// ReceiveStock adds incoming units to inventory. Independent of the cart
// and never touches the streak. Quantity must be positive.
func (e *Engine) ReceiveStock(productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidProductData
	}
	i, ok := e.index[productID]
	if !ok {
		return ErrUnknownProduct
	}
	e.products[i].Stock += quantity
	return nil
}

// CreateAndAdd creates a product with a fresh id and the default opening
// stock, then adds one unit to the cart. Used when an unknown scan code is
// confirmed as a new catalog entry.
func (e *Engine) CreateAndAdd(name string, price float64, category, scanCode string) (types.Product, []types.DomainEvent, error) {
	if name == "" || price <= 0 {
		return types.Product{}, nil, ErrInvalidProductData
	}

	p := types.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		Category: category,
		Stock:    types.DefaultOpeningStock,
		ScanCode: scanCode,
	}
	e.index[p.ID] = len(e.products)
	e.products = append(e.products, p)

	events, err := e.AddUnit(p.ID)
	return p, events, err
}

// ExpireStreak zeroes the streak if no AddUnit has superseded the given
// epoch. Decay callbacks are scheduled for later execution and must
// re-validate, not blindly zero.
func (e *Engine) ExpireStreak(epoch int64) (types.DomainEvent, bool) {
	if epoch != e.streakEpoch || e.streak == 0 {
		return nil, false
	}
	if e.clk.Now().Sub(e.lastAdd) < e.window {
		return nil, false
	}
	e.streak = 0
	e.streakEpoch++
	return types.StreakChanged{Count: 0, Epoch: e.streakEpoch}, true
}

// Streak returns the current streak counter.
func (e *Engine) Streak() int { return e.streak }

// StreakEpoch identifies the current decay window for timer scheduling.
func (e *Engine) StreakEpoch() int64 { return e.streakEpoch }

// StreakWindow returns the configured decay window.
func (e *Engine) StreakWindow() time.Duration { return e.window }

// PendingReorder returns the outstanding restock prompt, if any.
func (e *Engine) PendingReorder() (types.PendingReorder, bool) {
	if e.pending == nil {
		return types.PendingReorder{}, false
	}
	return *e.pending, true
}

// DismissReorder clears the prompt. Pure state clear; no inventory undo.
func (e *Engine) DismissReorder() {
	e.pending = nil
}

// ConfirmReorder clears the prompt and returns it so the caller can hand a
// payload to the messaging adapter.
func (e *Engine) ConfirmReorder() (types.PendingReorder, bool) {
	if e.pending == nil {
		return types.PendingReorder{}, false
	}
	pr := *e.pending
	e.pending = nil
	return pr, true
}

// Cart returns a copy of the cart lines in add order.
func (e *Engine) Cart() []types.CartLine {
	out := make([]types.CartLine, len(e.cart))
	copy(out, e.cart)
	return out
}

// CartTotal returns the open cart's total at add-time prices.
func (e *Engine) CartTotal() float64 {
	var total float64
	for _, line := range e.cart {
		total += line.Subtotal()
	}
	return total
}

// Revenue returns cumulative committed revenue.
func (e *Engine) Revenue() float64 { return e.revenue }

// Snapshot returns a deep copy of the persisted state: the full catalog and
// cumulative revenue. Handed to the store verbatim after every mutation.
func (e *Engine) Snapshot() *types.Snapshot {
	snap := &types.Snapshot{
		Products: make([]types.Product, len(e.products)),
		Revenue:  e.revenue,
	}
	copy(snap.Products, e.products)
	return snap
}
