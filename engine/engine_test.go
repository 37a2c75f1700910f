package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/ThinkIshdeep/Chatur-Bazar/clock"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

func testSnapshot() *types.Snapshot {
	return &types.Snapshot{
		Products: []types.Product{
			{ID: "a", Name: "Maggi Noodles", Price: 10, Category: "Food", Stock: 6, ScanCode: "89010588", Hotkey: "1"},
			{ID: "b", Name: "Coke (500ml)", Price: 40, Category: "Drink", Stock: 24, ScanCode: "54490000", Hotkey: "2"},
			{ID: "c", Name: "Dairy Milk", Price: 10, Category: "Food", Stock: 0},
		},
	}
}

func newTestEngine() (*Engine, *clock.Fake) {
	clk := clock.NewFake(time.Unix(5000, 0))
	return New(clk, testSnapshot(), 0), clk
}

// checkConservation asserts stock(p) + cart quantity(p) == baseline for
// every product.
func checkConservation(t *testing.T, e *Engine, baseline map[string]int) {
	t.Helper()
	inCart := make(map[string]int)
	for _, line := range e.Cart() {
		inCart[line.ProductID] += line.Quantity
	}
	for _, p := range e.Products() {
		if got := p.Stock + inCart[p.ID]; got != baseline[p.ID] {
			t.Errorf("conservation violated for %s: stock %d + cart %d != baseline %d",
				p.ID, p.Stock, inCart[p.ID], baseline[p.ID])
		}
	}
}

func baselineOf(snap *types.Snapshot) map[string]int {
	out := make(map[string]int)
	for _, p := range snap.Products {
		out[p.ID] = p.Stock
	}
	return out
}

func TestAddUnit_ReservesStockAndAccumulatesLine(t *testing.T) {
	e, _ := newTestEngine()
	baseline := baselineOf(testSnapshot())

	for i := 0; i < 3; i++ {
		if _, err := e.AddUnit("a"); err != nil {
			t.Fatalf("AddUnit: %v", err)
		}
		checkConservation(t, e, baseline)
	}

	cart := e.Cart()
	if len(cart) != 1 {
		t.Fatalf("got %d cart lines, want 1", len(cart))
	}
	if cart[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart[0].Quantity)
	}
	if got := e.Products()[0].Stock; got != 3 {
		t.Errorf("stock = %d, want 3", got)
	}
}

func TestAddUnit_OutOfStock(t *testing.T) {
	e, _ := newTestEngine()

	events, err := e.AddUnit("c")
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}
	// Feedback event still emitted so the surface can alert; no mutation.
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if _, ok := events[0].(types.StockDepleted); !ok {
		t.Errorf("got %T, want StockDepleted", events[0])
	}
	if len(e.Cart()) != 0 {
		t.Error("cart mutated on rejected add")
	}
}

func TestAddUnit_UnknownProduct(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.AddUnit("nope"); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("err = %v, want ErrUnknownProduct", err)
	}
}

func TestAddUnit_PriceCapturedAtAddTime(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}

	// A catalog price edit mid-transaction must not alter the open cart.
	snap := e.Snapshot()
	snap.Products[0].Price = 99
	// Snapshot is a copy, so the engine's catalog is untouched; the cart
	// line carries the add-time price regardless.
	if e.Cart()[0].UnitPrice != 10 {
		t.Errorf("UnitPrice = %v, want 10", e.Cart()[0].UnitPrice)
	}
}

func TestRemoveLine_RestoresFullQuantity(t *testing.T) {
	e, _ := newTestEngine()
	baseline := baselineOf(testSnapshot())

	for i := 0; i < 5; i++ {
		if _, err := e.AddUnit("a"); err != nil {
			t.Fatal(err)
		}
	}
	e.RemoveLine("a")

	if got := e.Products()[0].Stock; got != 6 {
		t.Errorf("stock = %d, want 6", got)
	}
	if len(e.Cart()) != 0 {
		t.Error("cart not empty after RemoveLine")
	}
	checkConservation(t, e, baseline)
}

func TestRemoveLine_AbsentLineIsNoop(t *testing.T) {
	e, _ := newTestEngine()
	e.RemoveLine("a")
	if got := e.Products()[0].Stock; got != 6 {
		t.Errorf("stock = %d, want 6", got)
	}
}

func TestRemoveLine_MiddleLineKeepsOrder(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.AddUnit("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}

	e.RemoveLine("a")
	cart := e.Cart()
	if len(cart) != 1 || cart[0].ProductID != "b" {
		t.Fatalf("cart = %#v, want single line for b", cart)
	}

	// The surviving line must still accumulate, not duplicate.
	if _, err := e.AddUnit("b"); err != nil {
		t.Fatal(err)
	}
	cart = e.Cart()
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("cart = %#v, want one line for b with qty 2", cart)
	}
}

func TestClearCart_RestoresEverything(t *testing.T) {
	e, _ := newTestEngine()
	baseline := baselineOf(testSnapshot())

	for i := 0; i < 4; i++ {
		if _, err := e.AddUnit("a"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := e.AddUnit("b"); err != nil {
		t.Fatal(err)
	}

	e.ClearCart()
	if len(e.Cart()) != 0 {
		t.Error("cart not empty after ClearCart")
	}
	checkConservation(t, e, baseline)
}

func TestConservation_MixedSequence(t *testing.T) {
	e, _ := newTestEngine()
	baseline := baselineOf(testSnapshot())

	ops := []func(){
		func() { _, _ = e.AddUnit("a") },
		func() { _, _ = e.AddUnit("b") },
		func() { _, _ = e.AddUnit("a") },
		func() { e.RemoveLine("b") },
		func() { _, _ = e.AddUnit("b") },
		func() { _, _ = e.AddUnit("c") }, // out of stock, no mutation
		func() { e.ClearCart() },
		func() { _, _ = e.AddUnit("a") },
	}
	for i, op := range ops {
		op()
		checkConservation(t, e, baseline)
		_ = i
	}
}

func TestReorder_EdgeTriggered(t *testing.T) {
	e, _ := newTestEngine()

	var fired []types.ReorderLevel
	deplete := func(n int) {
		for i := 0; i < n; i++ {
			events, err := e.AddUnit("a")
			if err != nil {
				t.Fatalf("AddUnit: %v", err)
			}
			for _, ev := range events {
				if r, ok := ev.(types.ReorderThreshold); ok {
					fired = append(fired, r.Level)
				}
			}
		}
	}

	// 6 -> 5 fires warning once; 5 -> 4 -> 3 -> 2 fires critical once.
	deplete(1)
	if len(fired) != 1 || fired[0] != types.ReorderWarning {
		t.Fatalf("after 6->5: fired = %v, want [warning]", fired)
	}
	deplete(3)
	if len(fired) != 2 || fired[1] != types.ReorderCritical {
		t.Fatalf("after 5->2: fired = %v, want [warning critical]", fired)
	}

	pr, ok := e.PendingReorder()
	if !ok {
		t.Fatal("no pending reorder")
	}
	// Critical superseded warning; overwrite, not queue.
	if pr.Level != types.ReorderCritical {
		t.Errorf("pending level = %d, want critical", pr.Level)
	}
	if pr.Product.Stock != 2 {
		t.Errorf("pending stock = %d, want 2", pr.Product.Stock)
	}
}

func TestReorder_RefiresAfterRestock(t *testing.T) {
	e, _ := newTestEngine()

	countTriggers := func(events []types.DomainEvent) int {
		n := 0
		for _, ev := range events {
			if _, ok := ev.(types.ReorderThreshold); ok {
				n++
			}
		}
		return n
	}

	events, _ := e.AddUnit("a") // 6 -> 5
	if countTriggers(events) != 1 {
		t.Fatal("expected trigger at 5")
	}
	if err := e.ReceiveStock("a", 1); err != nil { // back to 6
		t.Fatal(err)
	}
	events, _ = e.AddUnit("a") // 6 -> 5 again
	if countTriggers(events) != 1 {
		t.Error("re-depleting to a trigger level must fire again")
	}
}

func TestScenario_FiveAddsThenRemove(t *testing.T) {
	// Spec of record: product A stock=6 price=10. Five adds leave
	// stock=1, one reorder at 5, none at 1; RemoveLine restores all.
	e, _ := newTestEngine()

	var triggers []types.ReorderThreshold
	for i := 0; i < 5; i++ {
		events, err := e.AddUnit("a")
		if err != nil {
			t.Fatal(err)
		}
		for _, ev := range events {
			if r, ok := ev.(types.ReorderThreshold); ok {
				triggers = append(triggers, r)
			}
		}
	}

	if got := e.Products()[0].Stock; got != 1 {
		t.Errorf("stock = %d, want 1", got)
	}
	if len(triggers) != 2 {
		// 6->5 warning, then 3->2 critical. 1 is not a trigger level.
		t.Fatalf("got %d triggers, want 2", len(triggers))
	}
	cart := e.Cart()
	if len(cart) != 1 || cart[0].Quantity != 5 {
		t.Fatalf("cart = %#v, want one line qty 5", cart)
	}

	e.RemoveLine("a")
	if got := e.Products()[0].Stock; got != 6 {
		t.Errorf("stock = %d, want 6", got)
	}
	if len(e.Cart()) != 0 {
		t.Error("cart not empty")
	}
}

func TestCheckout_Finality(t *testing.T) {
	// Cart {a: 2 @ 10, b: 1 @ 40} => total 60.
	e, _ := newTestEngine()
	for i := 0; i < 2; i++ {
		if _, err := e.AddUnit("a"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := e.AddUnit("b"); err != nil {
		t.Fatal(err)
	}

	stockBefore := map[string]int{}
	for _, p := range e.Products() {
		stockBefore[p.ID] = p.Stock
	}

	if err := e.OpenCheckout(); err != nil {
		t.Fatal(err)
	}
	events, err := e.Checkout()
	if err != nil {
		t.Fatal(err)
	}

	var done types.TransactionCompleted
	found := false
	for _, ev := range events {
		if tc, ok := ev.(types.TransactionCompleted); ok {
			done = tc
			found = true
		}
	}
	if !found {
		t.Fatal("no TransactionCompleted event")
	}
	if done.Total != 60 {
		t.Errorf("total = %v, want 60", done.Total)
	}
	if e.Revenue() != 60 {
		t.Errorf("revenue = %v, want 60", e.Revenue())
	}
	if len(e.Cart()) != 0 {
		t.Error("cart not empty after checkout")
	}
	if e.CheckoutOpen() {
		t.Error("checkout still pending after commit")
	}
	// Stock unchanged by the checkout itself: already decremented at
	// add time.
	for _, p := range e.Products() {
		if p.Stock != stockBefore[p.ID] {
			t.Errorf("stock of %s changed at checkout: %d -> %d", p.ID, stockBefore[p.ID], p.Stock)
		}
	}
	if e.Streak() != 0 {
		t.Error("streak not reset by checkout")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	e, _ := newTestEngine()
	if err := e.OpenCheckout(); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("OpenCheckout err = %v, want ErrEmptyCart", err)
	}
	if _, err := e.Checkout(); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Checkout err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckout_CancelKeepsCart(t *testing.T) {
	e, _ := newTestEngine()
	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}
	if err := e.OpenCheckout(); err != nil {
		t.Fatal(err)
	}
	e.CancelCheckout()
	if e.CheckoutOpen() {
		t.Error("still pending after cancel")
	}
	if len(e.Cart()) != 1 {
		t.Error("cart changed by cancel")
	}
	if e.Revenue() != 0 {
		t.Error("revenue changed by cancel")
	}
}

func TestReceiveStock(t *testing.T) {
	e, _ := newTestEngine()

	if err := e.ReceiveStock("a", 10); err != nil {
		t.Fatal(err)
	}
	if got := e.Products()[0].Stock; got != 16 {
		t.Errorf("stock = %d, want 16", got)
	}
	if err := e.ReceiveStock("a", 0); !errors.Is(err, ErrInvalidProductData) {
		t.Errorf("qty 0: err = %v, want ErrInvalidProductData", err)
	}
	if err := e.ReceiveStock("a", -5); !errors.Is(err, ErrInvalidProductData) {
		t.Errorf("qty -5: err = %v, want ErrInvalidProductData", err)
	}
	if err := e.ReceiveStock("nope", 1); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("unknown: err = %v, want ErrUnknownProduct", err)
	}
	if e.Streak() != 0 {
		t.Error("ReceiveStock touched the streak")
	}
}

func TestCreateAndAdd(t *testing.T) {
	e, _ := newTestEngine()

	p, events, err := e.CreateAndAdd("Parle-G", 5, "Food", "12345678")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("no id assigned")
	}
	if p.Stock != types.DefaultOpeningStock {
		t.Errorf("opening stock = %d, want %d", p.Stock, types.DefaultOpeningStock)
	}
	if len(events) == 0 {
		t.Error("no events from embedded AddUnit")
	}

	got, lookupErr := e.ByScanCode("12345678")
	if lookupErr != nil {
		t.Fatalf("ByScanCode: %v", lookupErr)
	}
	if got.Stock != types.DefaultOpeningStock-1 {
		t.Errorf("stock = %d, want %d", got.Stock, types.DefaultOpeningStock-1)
	}
	cart := e.Cart()
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Fatalf("cart = %#v, want one line qty 1", cart)
	}
}

func TestCreateAndAdd_Validation(t *testing.T) {
	e, _ := newTestEngine()
	tests := []struct {
		name  string
		pname string
		price float64
	}{
		{"empty name", "", 5},
		{"zero price", "Thing", 0},
		{"negative price", "Thing", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := e.CreateAndAdd(tt.pname, tt.price, "Misc", ""); !errors.Is(err, ErrInvalidProductData) {
				t.Errorf("err = %v, want ErrInvalidProductData", err)
			}
		})
	}
	if len(e.Products()) != 3 {
		t.Error("catalog mutated by rejected create")
	}
}

func TestStreak_DecayEpochSupersession(t *testing.T) {
	e, clk := newTestEngine()

	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}
	firstEpoch := e.StreakEpoch()

	// A newer add supersedes the first decay window.
	clk.Advance(2 * time.Second)
	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}

	clk.Advance(2 * time.Second)
	if _, fired := e.ExpireStreak(firstEpoch); fired {
		t.Error("stale decay epoch zeroed a superseded streak")
	}
	if e.Streak() != 2 {
		t.Errorf("streak = %d, want 2", e.Streak())
	}

	// The current epoch expires once its window has elapsed.
	clk.Advance(2 * time.Second)
	ev, fired := e.ExpireStreak(e.StreakEpoch())
	if !fired {
		t.Fatal("current epoch did not expire")
	}
	if sc := ev.(types.StreakChanged); sc.Count != 0 {
		t.Errorf("Count = %d, want 0", sc.Count)
	}
	if e.Streak() != 0 {
		t.Errorf("streak = %d, want 0", e.Streak())
	}
}

func TestStreak_ExpiryBeforeWindowIsIgnored(t *testing.T) {
	e, clk := newTestEngine()
	if _, err := e.AddUnit("a"); err != nil {
		t.Fatal(err)
	}
	clk.Advance(time.Second)
	if _, fired := e.ExpireStreak(e.StreakEpoch()); fired {
		t.Error("streak expired inside its window")
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	e, _ := newTestEngine()
	snap := e.Snapshot()
	snap.Products[0].Stock = 9999
	snap.Revenue = 1234

	if e.Products()[0].Stock == 9999 {
		t.Error("snapshot aliases engine catalog")
	}
	if e.Revenue() != 0 {
		t.Error("snapshot aliases engine revenue")
	}
}
