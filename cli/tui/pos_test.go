package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ThinkIshdeep/Chatur-Bazar/adapter"
	"github.com/ThinkIshdeep/Chatur-Bazar/classify"
	"github.com/ThinkIshdeep/Chatur-Bazar/clock"
	"github.com/ThinkIshdeep/Chatur-Bazar/engine"
	"github.com/ThinkIshdeep/Chatur-Bazar/metrics"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// recordingAdapter captures published payloads for assertions.
type recordingAdapter struct {
	receipts []*adapter.ReceiptEvent
	reorders []*adapter.ReorderEvent
}

func (r *recordingAdapter) PublishReceipt(_ context.Context, ev *adapter.ReceiptEvent) error {
	r.receipts = append(r.receipts, ev)
	return nil
}

func (r *recordingAdapter) PublishReorder(_ context.Context, ev *adapter.ReorderEvent) error {
	r.reorders = append(r.reorders, ev)
	return nil
}

func (r *recordingAdapter) Close() error { return nil }

type fixture struct {
	model PosModel
	eng   *engine.Engine
	fake  *clock.Fake
	pub   *recordingAdapter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := clock.NewFake(time.Unix(1000, 0))
	snap := &types.Snapshot{
		Products: []types.Product{
			{ID: "a", Name: "Maggi Noodles", Price: 14, Category: "Food", Stock: 6, ScanCode: "89010588", Hotkey: "1"},
			{ID: "b", Name: "Coke (500ml)", Price: 40, Category: "Drink", Stock: 24, ScanCode: "54490000", Hotkey: "2"},
		},
	}
	eng := engine.New(fake, snap, engine.DefaultStreakWindow)
	pub := &recordingAdapter{}
	model := NewPosModel(Options{
		Engine:     eng,
		Classifier: classify.New(fake, classify.DefaultVelocityThreshold),
		Clock:      fake,
		Adapter:    pub,
		Metrics:    metrics.NewCollector("test-session", "till-1"),
	})
	return &fixture{model: model, eng: eng, fake: fake, pub: pub}
}

// press advances the fake clock by gap and feeds one key message.
func (f *fixture) press(gap time.Duration, msg tea.KeyMsg) {
	f.fake.Advance(gap)
	next, _ := f.model.Update(msg)
	f.model = next.(PosModel)
}

func (f *fixture) pressRune(gap time.Duration, r rune) {
	f.press(gap, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// scan fast-types a code and terminates it with Enter.
func (f *fixture) scan(code string) {
	for _, r := range code {
		f.pressRune(10*time.Millisecond, r)
	}
	f.press(10*time.Millisecond, tea.KeyMsg{Type: tea.KeyEnter})
}

// deliver runs a command's tea.Msg results back through Update, resolving
// batches recursively. Tick commands are skipped rather than slept on.
func (f *fixture) deliver(msg tea.Msg) {
	next, _ := f.model.Update(msg)
	f.model = next.(PosModel)
}

func TestScanAddsToCart(t *testing.T) {
	f := newFixture(t)
	f.scan("89010588")

	cart := f.eng.Cart()
	if len(cart) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart))
	}
	if cart[0].ProductID != "a" || cart[0].Quantity != 1 {
		t.Errorf("cart line = %+v, want product a ×1", cart[0])
	}
}

func TestUnknownScanOpensCreateModal(t *testing.T) {
	f := newFixture(t)
	f.scan("00000000")

	if f.model.mode != modeNewItem {
		t.Fatalf("mode = %d, want modeNewItem", f.model.mode)
	}
	if f.model.pendingCode != "00000000" {
		t.Errorf("pendingCode = %q, want the scanned code", f.model.pendingCode)
	}
	if len(f.eng.Cart()) != 0 {
		t.Error("unknown scan must not touch the cart")
	}
}

func TestHotkeyAddsProduct(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')

	cart := f.eng.Cart()
	if len(cart) != 1 || cart[0].ProductID != "b" {
		t.Fatalf("cart = %+v, want one line for product b", cart)
	}
}

func TestSpaceOpensAndConfirmsPayment(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')

	f.press(time.Second, tea.KeyMsg{Type: tea.KeySpace})
	if f.model.mode != modePayment || !f.eng.CheckoutOpen() {
		t.Fatal("space with a non-empty cart must open the payment confirm")
	}

	f.press(time.Second, tea.KeyMsg{Type: tea.KeySpace})
	if f.model.mode != modeSell {
		t.Error("second space must commit and return to the sell screen")
	}
	if got := f.eng.Revenue(); got != 40 {
		t.Errorf("revenue = %v, want 40", got)
	}
	if len(f.eng.Cart()) != 0 {
		t.Error("cart must be empty after checkout")
	}
}

func TestEscapeCancelsPayment(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')
	f.press(time.Second, tea.KeyMsg{Type: tea.KeySpace})

	f.press(time.Second, tea.KeyMsg{Type: tea.KeyEsc})
	if f.model.mode != modeSell || f.eng.CheckoutOpen() {
		t.Error("escape must cancel the open payment")
	}
	if f.eng.Revenue() != 0 {
		t.Error("cancelled payment must not commit revenue")
	}
	if len(f.eng.Cart()) != 1 {
		t.Error("cancelled payment must keep the cart")
	}
}

func TestSpaceWithEmptyCartIsConsumed(t *testing.T) {
	f := newFixture(t)
	f.press(time.Second, tea.KeyMsg{Type: tea.KeySpace})
	if f.model.mode != modeSell || f.eng.CheckoutOpen() {
		t.Error("space with an empty cart must do nothing")
	}
}

func TestDeleteRemovesSelectedLine(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')
	f.pressRune(time.Second, '2')

	before := f.eng.Products()[1].Stock
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyDelete})
	if len(f.eng.Cart()) != 0 {
		t.Fatal("delete must remove the selected cart line")
	}
	if got := f.eng.Products()[1].Stock; got != before+2 {
		t.Errorf("stock = %d, want full restore to %d", got, before+2)
	}
}

func TestRestockPromptFlow(t *testing.T) {
	f := newFixture(t)

	// Product a starts at 6; one sale lands exactly on the warning level.
	f.pressRune(time.Second, '1')
	if f.model.mode != modeRestockAnalysing {
		t.Fatalf("mode = %d, want modeRestockAnalysing after hitting the level", f.model.mode)
	}

	f.deliver(restockReadyMsg{seq: f.model.restockSeq})
	if f.model.mode != modeRestockConfirm {
		t.Fatalf("mode = %d, want modeRestockConfirm after the analyse delay", f.model.mode)
	}
	if f.model.restockQty.Value() != "25" {
		t.Errorf("suggested quantity = %q, want 25 at the warning level", f.model.restockQty.Value())
	}

	pending, ok := f.eng.PendingReorder()
	if !ok {
		t.Fatal("engine must hold the pending reorder while the prompt is open")
	}

	// Accept the suggested quantity.
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyEnter})
	if f.model.mode != modeSell {
		t.Error("confirming must return to the sell screen")
	}
	if _, still := f.eng.PendingReorder(); still {
		t.Error("confirming must clear the pending reorder")
	}

	f.deliver(f.model.publishReorderCmd(pending, 25)())
	if len(f.pub.reorders) != 1 {
		t.Fatalf("published %d reorders, want 1", len(f.pub.reorders))
	}
	got := f.pub.reorders[0]
	if got.ProductID != "a" || got.Level != 5 || got.Quantity != 25 {
		t.Errorf("reorder = %+v, want product a at level 5 × 25", got)
	}
}

func TestStaleRestockTimerIgnored(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '1')

	// Escape dismisses the prompt before the analyse timer fires.
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyEsc})
	f.deliver(restockReadyMsg{seq: f.model.restockSeq})
	if f.model.mode != modeSell {
		t.Error("a dismissed prompt's timer must not reopen the modal")
	}
	if _, ok := f.eng.PendingReorder(); ok {
		t.Error("escape must clear the pending reorder")
	}
}

func TestStaleStreakExpiryIgnored(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')
	stale := f.eng.StreakEpoch()
	f.pressRune(time.Second, '2')

	f.fake.Advance(engine.DefaultStreakWindow)
	f.deliver(streakExpireMsg{epoch: stale})
	if got := f.eng.Streak(); got != 2 {
		t.Errorf("streak = %d after stale expiry, want 2", got)
	}

	f.deliver(streakExpireMsg{epoch: f.eng.StreakEpoch()})
	if got := f.eng.Streak(); got != 0 {
		t.Errorf("streak = %d after current-epoch expiry, want 0", got)
	}
}

func TestSearchEnterAddsTopMatch(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '/')
	if !f.model.searchOn {
		t.Fatal("slash must focus the search field")
	}

	for _, r := range "coke" {
		f.pressRune(200*time.Millisecond, r)
	}
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyEnter})

	if f.model.searchOn {
		t.Error("enter must blur the search field")
	}
	cart := f.eng.Cart()
	if len(cart) != 1 || cart[0].ProductID != "b" {
		t.Fatalf("cart = %+v, want the top search match", cart)
	}
}

func TestSearchSuppressesCommands(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2') // cart non-empty
	f.pressRune(time.Second, '/')

	// Space and a digit are plain text while the field has focus.
	f.press(time.Second, tea.KeyMsg{Type: tea.KeySpace})
	f.pressRune(time.Second, '2')
	if f.eng.CheckoutOpen() {
		t.Error("space inside the search field must not open payment")
	}
	if len(f.eng.Cart()) != 1 {
		t.Error("a digit inside the search field must not fire a hotkey")
	}
}

func TestVoiceEntryResolvesTranscript(t *testing.T) {
	f := newFixture(t)
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyCtrlV})
	if f.model.mode != modeVoice {
		t.Fatal("ctrl+v must open the voice prompt")
	}

	for _, r := range "do maggi noodles dena" {
		f.pressRune(200*time.Millisecond, r)
	}
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyEnter})

	cart := f.eng.Cart()
	if len(cart) != 1 || cart[0].ProductID != "a" {
		t.Fatalf("cart = %+v, want maggi from the transcript", cart)
	}
}

func TestClearCartBinding(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')
	f.press(time.Second, tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(f.eng.Cart()) != 0 {
		t.Error("ctrl+x must clear the cart")
	}
	if got := f.eng.Products()[1].Stock; got != 24 {
		t.Errorf("stock = %d after clear, want restore to 24", got)
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	f := newFixture(t)
	f.pressRune(time.Second, '2')
	if out := f.model.View(); out == "" {
		t.Error("sell view must render")
	}

	f.press(time.Second, tea.KeyMsg{Type: tea.KeySpace})
	if out := f.model.View(); out == "" {
		t.Error("payment view must render")
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want classify.Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, classify.Key{Kind: classify.KeyRune, Ch: 'a'}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, classify.Key{Kind: classify.KeyRune, Ch: ' '}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, classify.Key{Kind: classify.KeyEnter}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, classify.Key{Kind: classify.KeyEscape}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, classify.Key{Kind: classify.KeyOther}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, classify.Key{Kind: classify.KeyOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapKey(tt.msg); got != tt.want {
				t.Errorf("mapKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
