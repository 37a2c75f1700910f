package types

// CommandKind discriminates command inputs recognized by the classifier.
type CommandKind string

// Command kinds.
const (
	// CommandDismiss closes whatever modal surface is open (Escape).
	CommandDismiss CommandKind = "dismiss"
	// CommandCheckout opens the payment confirmation, or commits it if
	// already open (Space with a non-empty cart).
	CommandCheckout CommandKind = "checkout"
	// CommandFocusSearch moves focus to the search field ("/").
	CommandFocusSearch CommandKind = "focus_search"
)

// InputEvent is a classified keyboard intent produced by the classifier.
// Consumers switch exhaustively over the concrete types below.
type InputEvent interface {
	inputEvent()
}

// ScanComplete is an Enter-terminated scanner burst. Code carries the full
// buffered scan code; whether it matches the catalog is the consumer's call.
type ScanComplete struct {
	Code string
}

// Hotkey is a direct catalog shortcut, a single digit 1-9.
type Hotkey struct {
	Digit byte
}

// Command is a recognized command key.
type Command struct {
	Kind CommandKind
}

// TextInput is a raw character passed through to a focused text surface.
type TextInput struct {
	Ch rune
}

func (ScanComplete) inputEvent() {}
func (Hotkey) inputEvent()       {}
func (Command) inputEvent()      {}
func (TextInput) inputEvent()    {}

// ReorderLevel is a fixed stock value whose exact crossing raises a
// restock prompt.
type ReorderLevel int

// Reorder trigger levels. Edge-triggered: the prompt fires when a stock
// decrement lands exactly on the level, not for every value below it.
const (
	ReorderWarning  ReorderLevel = 5
	ReorderCritical ReorderLevel = 2
)

// PendingReorder is the single outstanding restock prompt. A new trigger
// overwrites a prior one; there is no queue.
type PendingReorder struct {
	Product Product
	Level   ReorderLevel
}

// DomainEvent is a side effect emitted by a transaction engine operation.
// The presentation layer renders these and forwards some to adapters.
type DomainEvent interface {
	domainEvent()
}

// StockDepleted reports an AddUnit rejected because stock was zero.
type StockDepleted struct {
	Product Product
}

// ReorderThreshold reports a stock decrement landing exactly on a trigger
// level. Product carries the post-decrement stock value.
type ReorderThreshold struct {
	Product Product
	Level   ReorderLevel
}

// StreakChanged reports the streak counter moving. Epoch identifies the
// decay window so a stale expiry cannot clobber a newer increment.
type StreakChanged struct {
	Count int
	Epoch int64
}

// TransactionCompleted reports a committed checkout.
type TransactionCompleted struct {
	Lines []CartLine
	Total float64
}

func (StockDepleted) domainEvent()        {}
func (ReorderThreshold) domainEvent()     {}
func (StreakChanged) domainEvent()        {}
func (TransactionCompleted) domainEvent() {}
