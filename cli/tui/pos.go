package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ThinkIshdeep/Chatur-Bazar/adapter"
	"github.com/ThinkIshdeep/Chatur-Bazar/classify"
	"github.com/ThinkIshdeep/Chatur-Bazar/clock"
	"github.com/ThinkIshdeep/Chatur-Bazar/engine"
	"github.com/ThinkIshdeep/Chatur-Bazar/journal"
	"github.com/ThinkIshdeep/Chatur-Bazar/log"
	"github.com/ThinkIshdeep/Chatur-Bazar/metrics"
	"github.com/ThinkIshdeep/Chatur-Bazar/store"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

const (
	// restockAnalyseDelay is how long the restock prompt shows its
	// "analysing sales velocity" interstitial before asking for a quantity.
	restockAnalyseDelay = 1500 * time.Millisecond

	toastTTL       = 3 * time.Second
	saveTimeout    = 5 * time.Second
	publishTimeout = 10 * time.Second

	// DefaultCurrency prefixes rendered prices.
	DefaultCurrency = "₹"
)

// screenMode selects which surface owns the keyboard besides the sell screen.
type screenMode int

const (
	modeSell screenMode = iota
	modePayment
	modeRestockAnalysing
	modeRestockConfirm
	modeNewItem
	modeReceive
	modeVoice
)

// Scheduled messages. Each carries the epoch or sequence number of the state
// that scheduled it, so a stale timer firing after the state moved on is a
// no-op rather than a misfire.
type (
	streakExpireMsg struct{ epoch int64 }
	restockReadyMsg struct{ seq int }
	toastExpireMsg  struct{ seq int }
	saveDoneMsg     struct{ err error }
	publishDoneMsg  struct {
		kind string
		err  error
	}
)

// Options configures the point-of-sale screen.
type Options struct {
	Engine     *engine.Engine
	Classifier *classify.Classifier
	Clock      clock.Clock
	Store      store.Store
	Adapter    adapter.Adapter
	Metrics    *metrics.Collector
	Logger     *log.Logger
	Journal    *journal.Writer
	Currency   string
	Terminal   string
}

// PosModel is the Bubble Tea model for the sell screen. All engine access
// happens inside Update; commands only touch the store and the adapter.
type PosModel struct {
	eng *engine.Engine
	cls *classify.Classifier
	clk clock.Clock
	st  store.Store
	pub adapter.Adapter
	met *metrics.Collector
	log *log.Logger
	jw  *journal.Writer

	currency string
	terminal string

	mode     screenMode
	selected int

	search   textinput.Model
	searchOn bool

	itemName     textinput.Model
	itemPrice    textinput.Model
	itemCategory textinput.Model
	itemField    int
	pendingCode  string

	receiveCode  textinput.Model
	receiveQty   textinput.Model
	receiveField int

	restockQty textinput.Model
	restockSeq int

	voiceInput textinput.Model

	toast      string
	toastErr   bool
	toastSeq   int

	width    int
	height   int
	quitting bool
}

// NewPosModel creates the sell screen model.
func NewPosModel(opts Options) PosModel {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Adapter == nil {
		opts.Adapter = adapter.Noop{}
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.Logger == nil {
		opts.Logger = log.NewLoggerWithWriter(nil, io.Discard)
	}

	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		return ti
	}

	return PosModel{
		eng:          opts.Engine,
		cls:          opts.Classifier,
		clk:          opts.Clock,
		st:           opts.Store,
		pub:          opts.Adapter,
		met:          opts.Metrics,
		log:          opts.Logger,
		jw:           opts.Journal,
		currency:     opts.Currency,
		terminal:     opts.Terminal,
		search:       newInput("search products", 64),
		itemName:     newInput("name", 64),
		itemPrice:    newInput("price", 12),
		itemCategory: newInput("category", 32),
		receiveCode:  newInput("scan code or hotkey", 32),
		receiveQty:   newInput("quantity", 6),
		restockQty:   newInput("quantity", 6),
		voiceInput:   newInput("e.g. add two packets of biscuits", 128),
	}
}

// Init implements tea.Model.
func (m PosModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case streakExpireMsg:
		m.eng.ExpireStreak(msg.epoch)
		return m, nil

	case restockReadyMsg:
		if m.mode == modeRestockAnalysing && msg.seq == m.restockSeq {
			m.mode = modeRestockConfirm
			m.restockQty.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.log.Error("snapshot save failed", map[string]any{"error": msg.err.Error()})
			var cmd tea.Cmd
			m, cmd = m.showToast("save failed: "+msg.err.Error(), true)
			return m, cmd
		}
		return m, nil

	case publishDoneMsg:
		if msg.err != nil {
			m.log.Error("publish failed", map[string]any{
				"kind":  msg.kind,
				"error": msg.err.Error(),
			})
			var cmd tea.Cmd
			m, cmd = m.showToast(msg.kind+" publish failed", true)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m PosModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Sequence(m.saveCmd(), tea.Quit)

	case key.Matches(msg, keys.Receive):
		if m.mode == modeSell {
			m.mode = modeReceive
			m.receiveField = 0
			m.receiveCode.SetValue("")
			m.receiveQty.SetValue("")
			m.receiveCode.Focus()
			m.receiveQty.Blur()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, keys.Voice):
		if m.mode == modeSell {
			m.mode = modeVoice
			m.voiceInput.SetValue("")
			m.voiceInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, keys.Clear):
		if m.mode == modeSell && !m.searchOn {
			m.eng.ClearCart()
			m.met.IncCartCleared()
			m.selected = 0
			var cmd tea.Cmd
			m, cmd = m.showToast("cart cleared", false)
			return m, tea.Batch(cmd, m.saveCmd())
		}
		return m, nil
	}

	ev, ok := m.cls.Feed(mapKey(msg), classify.Context{
		InTextField:  m.inTextField(),
		ModalOpen:    m.mode != modeSell,
		CartNonEmpty: len(m.eng.Cart()) > 0,
	})
	if !ok {
		return m.handleRawKey(msg)
	}

	if m.jw != nil {
		if entry, err := journal.NewEntry(ev, m.clk.Now()); err == nil {
			if err := m.jw.Append(entry); err != nil {
				m.log.Warn("journal append failed", map[string]any{"error": err.Error()})
			}
		}
	}

	return m.handleIntent(ev, msg)
}

// handleIntent dispatches a classified input event.
func (m PosModel) handleIntent(ev types.InputEvent, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case types.TextInput:
		return m.updateFocusedInput(msg)

	case types.ScanComplete:
		if m.mode != modeSell {
			return m, nil
		}
		p, err := m.eng.ByScanCode(ev.Code)
		if err != nil {
			m.met.IncScanUnknown()
			return m.openNewItem(ev.Code)
		}
		m.met.IncScanAccepted()
		return m.addProduct(p.ID)

	case types.Hotkey:
		p, ok := m.eng.ByHotkey(ev.Digit)
		if !ok {
			return m.toastOnly(fmt.Sprintf("no product on hotkey %c", ev.Digit), true)
		}
		m.met.IncHotkey()
		return m.addProduct(p.ID)

	case types.Command:
		switch ev.Kind {
		case types.CommandDismiss:
			return m.dismiss()
		case types.CommandCheckout:
			if m.mode == modePayment {
				return m.commitCheckout()
			}
			if m.mode != modeSell {
				return m, nil
			}
			if err := m.eng.OpenCheckout(); err != nil {
				return m.toastOnly(err.Error(), true)
			}
			m.mode = modePayment
			return m, nil
		case types.CommandFocusSearch:
			m.searchOn = true
			m.search.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// handleRawKey handles keys the classifier consumed without an intent:
// editing keys inside text surfaces and navigation on the sell screen.
func (m PosModel) handleRawKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inTextField() {
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitTextSurface()
		case tea.KeyTab:
			return m.cycleField(), nil
		default:
			return m.updateFocusedInput(msg)
		}
	}

	switch m.mode {
	case modePayment:
		if msg.Type == tea.KeyEnter {
			return m.commitCheckout()
		}

	case modeSell:
		switch msg.Type {
		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
		case tea.KeyDown:
			if m.selected < len(m.eng.Cart())-1 {
				m.selected++
			}
		case tea.KeyDelete:
			lines := m.eng.Cart()
			if m.selected < len(lines) {
				m.eng.RemoveLine(lines[m.selected].ProductID)
				m.met.IncLineRemoved()
				if m.selected > 0 {
					m.selected--
				}
				var cmd tea.Cmd
				m, cmd = m.showToast("line removed, stock restored", false)
				return m, tea.Batch(cmd, m.saveCmd())
			}
		}
	}
	return m, nil
}

// dismiss handles Escape: close whatever surface is open, cancel an open
// payment, or decline the outstanding restock prompt.
func (m PosModel) dismiss() (tea.Model, tea.Cmd) {
	if m.searchOn {
		m.searchOn = false
		m.search.Blur()
		m.search.SetValue("")
		return m, nil
	}

	switch m.mode {
	case modePayment:
		m.eng.CancelCheckout()
	case modeRestockAnalysing, modeRestockConfirm:
		m.eng.DismissReorder()
		m.restockQty.Blur()
	case modeNewItem:
		m.itemName.Blur()
		m.itemPrice.Blur()
		m.itemCategory.Blur()
		m.pendingCode = ""
	case modeReceive:
		m.receiveCode.Blur()
		m.receiveQty.Blur()
	case modeVoice:
		m.voiceInput.Blur()
	}
	m.mode = modeSell
	return m, nil
}

// submitTextSurface handles Enter inside whichever text surface has focus.
func (m PosModel) submitTextSurface() (tea.Model, tea.Cmd) {
	if m.searchOn {
		query := m.search.Value()
		m.searchOn = false
		m.search.Blur()
		m.search.SetValue("")
		if results := m.eng.Search(query); len(results) > 0 {
			return m.addProduct(results[0].ID)
		}
		return m.toastOnly("no match for "+strconv.Quote(query), true)
	}

	switch m.mode {
	case modeNewItem:
		return m.submitNewItem()
	case modeReceive:
		return m.submitReceive()
	case modeVoice:
		return m.submitVoice()
	case modeRestockConfirm:
		return m.submitRestock()
	}
	return m, nil
}

func (m PosModel) submitNewItem() (tea.Model, tea.Cmd) {
	price, err := strconv.ParseFloat(strings.TrimSpace(m.itemPrice.Value()), 64)
	if err != nil {
		return m.toastOnly("invalid price", true)
	}
	name := strings.TrimSpace(m.itemName.Value())
	category := strings.TrimSpace(m.itemCategory.Value())

	p, evs, err := m.eng.CreateAndAdd(name, price, category, m.pendingCode)
	if err != nil {
		return m.toastOnly(err.Error(), true)
	}
	m.met.IncProductCreated()
	m.met.IncUnitAdded()
	m.pendingCode = ""
	m.mode = modeSell
	m.itemName.Blur()
	m.itemPrice.Blur()
	m.itemCategory.Blur()

	cmds := []tea.Cmd{m.saveCmd()}
	var evCmds []tea.Cmd
	m, evCmds = m.applyEvents(evs)
	cmds = append(cmds, evCmds...)
	var cmd tea.Cmd
	m, cmd = m.showToast("created "+p.Name, false)
	return m, tea.Batch(append(cmds, cmd)...)
}

func (m PosModel) submitReceive() (tea.Model, tea.Cmd) {
	// Enter on the code field advances to the quantity field.
	if m.receiveField == 0 {
		m = m.cycleField()
		return m, nil
	}

	code := strings.TrimSpace(m.receiveCode.Value())
	p, err := m.eng.ByScanCode(code)
	if err != nil && len(code) == 1 {
		var ok bool
		p, ok = m.eng.ByHotkey(code[0])
		if ok {
			err = nil
		}
	}
	if err != nil {
		return m.toastOnly("unknown product "+strconv.Quote(code), true)
	}

	qty, qerr := strconv.Atoi(strings.TrimSpace(m.receiveQty.Value()))
	if qerr != nil {
		return m.toastOnly("invalid quantity", true)
	}
	if err := m.eng.ReceiveStock(p.ID, qty); err != nil {
		return m.toastOnly(err.Error(), true)
	}

	m.mode = modeSell
	m.receiveCode.Blur()
	m.receiveQty.Blur()
	var cmd tea.Cmd
	m, cmd = m.showToast(fmt.Sprintf("received %d × %s", qty, p.Name), false)
	return m, tea.Batch(cmd, m.saveCmd())
}

func (m PosModel) submitVoice() (tea.Model, tea.Cmd) {
	transcript := m.voiceInput.Value()
	m.mode = modeSell
	m.voiceInput.Blur()

	p, err := m.eng.ResolveTranscript(transcript)
	if err != nil {
		return m.toastOnly("no product matched the transcript", true)
	}
	return m.addProduct(p.ID)
}

func (m PosModel) submitRestock() (tea.Model, tea.Cmd) {
	qty, err := strconv.Atoi(strings.TrimSpace(m.restockQty.Value()))
	if err != nil || qty <= 0 {
		return m.toastOnly("invalid quantity", true)
	}

	pending, ok := m.eng.ConfirmReorder()
	m.mode = modeSell
	m.restockQty.Blur()
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m, cmd = m.showToast(fmt.Sprintf("reorder sent: %d × %s", qty, pending.Product.Name), false)
	return m, tea.Batch(cmd, m.publishReorderCmd(pending, qty))
}

// openNewItem opens the create-product modal for an unrecognized scan code.
func (m PosModel) openNewItem(code string) (tea.Model, tea.Cmd) {
	m.mode = modeNewItem
	m.pendingCode = code
	m.itemField = 0
	m.itemName.SetValue("")
	m.itemPrice.SetValue("")
	m.itemCategory.SetValue("")
	m.itemName.Focus()
	m.itemPrice.Blur()
	m.itemCategory.Blur()
	return m, textinput.Blink
}

// addProduct adds one unit to the cart and fans out the resulting effects.
func (m PosModel) addProduct(productID string) (tea.Model, tea.Cmd) {
	evs, err := m.eng.AddUnit(productID)
	var cmds []tea.Cmd
	var evCmds []tea.Cmd
	m, evCmds = m.applyEvents(evs)
	cmds = append(cmds, evCmds...)

	if err != nil {
		m.met.IncOutOfStock()
		var cmd tea.Cmd
		m, cmd = m.showToast(err.Error(), true)
		return m, tea.Batch(append(cmds, cmd)...)
	}

	m.met.IncUnitAdded()
	cmds = append(cmds, m.saveCmd())
	return m, tea.Batch(cmds...)
}

func (m PosModel) commitCheckout() (tea.Model, tea.Cmd) {
	evs, err := m.eng.Checkout()
	m.mode = modeSell
	m.selected = 0
	if err != nil {
		return m.toastOnly(err.Error(), true)
	}

	m.met.IncCheckout()
	cmds := []tea.Cmd{m.saveCmd()}
	var evCmds []tea.Cmd
	m, evCmds = m.applyEvents(evs)
	cmds = append(cmds, evCmds...)
	return m, tea.Batch(cmds...)
}

// applyEvents reacts to engine effects: toasts, metrics, scheduled timers,
// and outbound publishes.
func (m PosModel) applyEvents(evs []types.DomainEvent) (PosModel, []tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range evs {
		switch ev := ev.(type) {
		case types.StockDepleted:
			var cmd tea.Cmd
			m, cmd = m.showToast("out of stock: "+ev.Product.Name, true)
			cmds = append(cmds, cmd)

		case types.ReorderThreshold:
			m.met.IncReorderPrompt()
			m.mode = modeRestockAnalysing
			m.restockSeq++
			m.restockQty.SetValue(strconv.Itoa(suggestedReorderQty(ev.Level)))
			seq := m.restockSeq
			cmds = append(cmds, tea.Tick(restockAnalyseDelay, func(time.Time) tea.Msg {
				return restockReadyMsg{seq: seq}
			}))

		case types.StreakChanged:
			m.met.ObserveStreak(ev.Count)
			if ev.Count > 0 {
				epoch := ev.Epoch
				cmds = append(cmds, tea.Tick(m.eng.StreakWindow(), func(time.Time) tea.Msg {
					return streakExpireMsg{epoch: epoch}
				}))
			}

		case types.TransactionCompleted:
			var cmd tea.Cmd
			m, cmd = m.showToast(
				fmt.Sprintf("sale complete: %s%.2f", m.currency, ev.Total), false)
			cmds = append(cmds, cmd, m.publishReceiptCmd(ev))
		}
	}
	return m, cmds
}

func suggestedReorderQty(level types.ReorderLevel) int {
	if level == types.ReorderCritical {
		return 50
	}
	return 25
}

func (m PosModel) inTextField() bool {
	if m.searchOn {
		return true
	}
	switch m.mode {
	case modeNewItem, modeReceive, modeVoice, modeRestockConfirm:
		return true
	}
	return false
}

// updateFocusedInput forwards an editing key to whichever input has focus.
func (m PosModel) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.searchOn:
		m.search, cmd = m.search.Update(msg)
	case m.mode == modeNewItem:
		switch m.itemField {
		case 0:
			m.itemName, cmd = m.itemName.Update(msg)
		case 1:
			m.itemPrice, cmd = m.itemPrice.Update(msg)
		default:
			m.itemCategory, cmd = m.itemCategory.Update(msg)
		}
	case m.mode == modeReceive:
		if m.receiveField == 0 {
			m.receiveCode, cmd = m.receiveCode.Update(msg)
		} else {
			m.receiveQty, cmd = m.receiveQty.Update(msg)
		}
	case m.mode == modeVoice:
		m.voiceInput, cmd = m.voiceInput.Update(msg)
	case m.mode == modeRestockConfirm:
		m.restockQty, cmd = m.restockQty.Update(msg)
	}
	return m, cmd
}

// cycleField moves focus to the next input in a multi-field modal.
func (m PosModel) cycleField() PosModel {
	switch m.mode {
	case modeNewItem:
		m.itemField = (m.itemField + 1) % 3
		m.itemName.Blur()
		m.itemPrice.Blur()
		m.itemCategory.Blur()
		switch m.itemField {
		case 0:
			m.itemName.Focus()
		case 1:
			m.itemPrice.Focus()
		default:
			m.itemCategory.Focus()
		}
	case modeReceive:
		m.receiveField = (m.receiveField + 1) % 2
		if m.receiveField == 0 {
			m.receiveCode.Focus()
			m.receiveQty.Blur()
		} else {
			m.receiveCode.Blur()
			m.receiveQty.Focus()
		}
	}
	return m
}

func (m PosModel) showToast(text string, isErr bool) (PosModel, tea.Cmd) {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

func (m PosModel) toastOnly(text string, isErr bool) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m, cmd = m.showToast(text, isErr)
	return m, cmd
}

// saveCmd snapshots the engine synchronously and persists asynchronously.
// Last write wins at the store.
func (m PosModel) saveCmd() tea.Cmd {
	if m.st == nil {
		return nil
	}
	snap := m.eng.Snapshot()
	st := m.st
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return saveDoneMsg{err: st.Save(ctx, snap)}
	}
}

func (m PosModel) publishReceiptCmd(ev types.TransactionCompleted) tea.Cmd {
	payload := &adapter.ReceiptEvent{
		EventType: "receipt",
		Lines:     ev.Lines,
		Total:     ev.Total,
		Revenue:   m.eng.Revenue(),
		Timestamp: m.clk.Now().Format(time.RFC3339),
	}
	pub := m.pub
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		return publishDoneMsg{kind: "receipt", err: pub.PublishReceipt(ctx, payload)}
	}
}

func (m PosModel) publishReorderCmd(pending types.PendingReorder, qty int) tea.Cmd {
	payload := &adapter.ReorderEvent{
		EventType: "reorder",
		ProductID: pending.Product.ID,
		Name:      pending.Product.Name,
		Stock:     pending.Product.Stock,
		Level:     int(pending.Level),
		Quantity:  qty,
		Timestamp: m.clk.Now().Format(time.RFC3339),
	}
	pub := m.pub
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		return publishDoneMsg{kind: "reorder", err: pub.PublishReorder(ctx, payload)}
	}
}

// mapKey translates a Bubble Tea key message into a raw classifier key.
func mapKey(msg tea.KeyMsg) classify.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return classify.Key{Kind: classify.KeyRune, Ch: msg.Runes[0]}
		}
		return classify.Key{Kind: classify.KeyOther}
	case tea.KeySpace:
		return classify.Key{Kind: classify.KeyRune, Ch: ' '}
	case tea.KeyEnter:
		return classify.Key{Kind: classify.KeyEnter}
	case tea.KeyEsc:
		return classify.Key{Kind: classify.KeyEscape}
	default:
		return classify.Key{Kind: classify.KeyOther}
	}
}

// keyMap defines the bindings handled before classification. These are
// chords a keyboard-wedge scanner cannot emit, so they bypass the
// velocity trap entirely.
type keyMap struct {
	Quit    key.Binding
	Receive key.Binding
	Voice   key.Binding
	Clear   key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Receive: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "receive stock"),
	),
	Voice: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "voice entry"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear cart"),
	),
}

// Run starts the point-of-sale screen in the alternate screen buffer and
// blocks until the operator quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewPosModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
