// Package journal records the classified input-event stream of a session as
// length-prefixed msgpack frames. A journal replayed through the same
// consumer reproduces the session exactly, since the classifier's output is
// a pure function of the (key, gap) sequence that produced it.
package journal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// Frame size constants.
const (
	// MaxFrameSize is the maximum frame size, including length prefix.
	MaxFrameSize = 64 * 1024
	// MaxPayloadSize is the maximum payload size.
	MaxPayloadSize = MaxFrameSize - LengthPrefixSize
	// LengthPrefixSize is the size of the big-endian length prefix.
	LengthPrefixSize = 4
)

// Entry type discriminants.
const (
	EntryScan    = "scan"
	EntryHotkey  = "hotkey"
	EntryCommand = "command"
	EntryText    = "text"
)

// Entry is one journaled classified event.
type Entry struct {
	// Type discriminates the event payload.
	Type string `msgpack:"type"`
	// Ts is the event timestamp in RFC 3339 nano UTC.
	Ts string `msgpack:"ts"`
	// Code carries the scan code for scan entries.
	Code string `msgpack:"code,omitempty"`
	// Digit carries the hotkey digit for hotkey entries.
	Digit byte `msgpack:"digit,omitempty"`
	// Kind carries the command kind for command entries.
	Kind string `msgpack:"kind,omitempty"`
	// Ch carries the character for text entries.
	Ch string `msgpack:"ch,omitempty"`
}

// NewEntry builds a journal entry from a classified event.
func NewEntry(ev types.InputEvent, ts time.Time) (Entry, error) {
	e := Entry{Ts: ts.UTC().Format(time.RFC3339Nano)}
	switch ev := ev.(type) {
	case types.ScanComplete:
		e.Type = EntryScan
		e.Code = ev.Code
	case types.Hotkey:
		e.Type = EntryHotkey
		e.Digit = ev.Digit
	case types.Command:
		e.Type = EntryCommand
		e.Kind = string(ev.Kind)
	case types.TextInput:
		e.Type = EntryText
		e.Ch = string(ev.Ch)
	default:
		return Entry{}, fmt.Errorf("journal: unsupported event %T", ev)
	}
	return e, nil
}

// Event reconstructs the classified event from an entry.
func (e Entry) Event() (types.InputEvent, error) {
	switch e.Type {
	case EntryScan:
		return types.ScanComplete{Code: e.Code}, nil
	case EntryHotkey:
		return types.Hotkey{Digit: e.Digit}, nil
	case EntryCommand:
		return types.Command{Kind: types.CommandKind(e.Kind)}, nil
	case EntryText:
		for _, r := range e.Ch {
			return types.TextInput{Ch: r}, nil
		}
		return nil, errors.New("journal: empty text entry")
	default:
		return nil, fmt.Errorf("journal: unknown entry type %q", e.Type)
	}
}

// FrameErrorKind classifies frame decoding errors.
type FrameErrorKind int

const (
	// FrameErrorPartial indicates a truncated or incomplete frame.
	FrameErrorPartial FrameErrorKind = iota
	// FrameErrorTooLarge indicates a frame exceeding MaxFrameSize.
	FrameErrorTooLarge
	// FrameErrorDecode indicates a msgpack decoding error.
	FrameErrorDecode
)

// FrameError represents a frame encoding or decoding error.
type FrameError struct {
	Kind FrameErrorKind
	Msg  string
	Err  error
}

func (e *FrameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// Writer appends journal entries as length-prefixed frames.
type Writer struct {
	w io.Writer
}

// NewWriter creates a journal writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Append encodes and writes one entry.
func (jw *Writer) Append(e Entry) error {
	payload, err := msgpack.Marshal(&e)
	if err != nil {
		return &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode entry", Err: err}
	}
	if len(payload) > MaxPayloadSize {
		return &FrameError{
			Kind: FrameErrorTooLarge,
			Msg:  fmt.Sprintf("payload size %d exceeds maximum %d", len(payload), MaxPayloadSize),
		}
	}

	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))
	if _, err := jw.w.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("journal: write length prefix: %w", err)
	}
	if _, err := jw.w.Write(payload); err != nil {
		return fmt.Errorf("journal: write payload: %w", err)
	}
	return nil
}

// Reader decodes length-prefixed journal frames from a stream.
type Reader struct {
	r io.Reader
}

// NewReader creates a journal reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next reads one entry.
//
// Errors:
//   - io.EOF: stream ended cleanly (no more frames)
//   - *FrameError with Kind=FrameErrorPartial: incomplete frame
//   - *FrameError with Kind=FrameErrorTooLarge: frame exceeds limit
//   - *FrameError with Kind=FrameErrorDecode: msgpack decode failure
func (jr *Reader) Next() (Entry, error) {
	var lengthBuf [LengthPrefixSize]byte
	_, err := io.ReadFull(jr.r, lengthBuf[:])
	if err != nil {
		if err == io.EOF {
			return Entry{}, io.EOF
		}
		return Entry{}, &FrameError{
			Kind: FrameErrorPartial,
			Msg:  "failed to read length prefix",
			Err:  err,
		}
	}

	payloadSize := binary.BigEndian.Uint32(lengthBuf[:])
	if payloadSize > MaxPayloadSize {
		return Entry{}, &FrameError{
			Kind: FrameErrorTooLarge,
			Msg:  fmt.Sprintf("payload size %d exceeds maximum %d", payloadSize, MaxPayloadSize),
		}
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(jr.r, payload); err != nil {
		return Entry{}, &FrameError{
			Kind: FrameErrorPartial,
			Msg:  "failed to read payload",
			Err:  err,
		}
	}

	var entry Entry
	if err := msgpack.Unmarshal(payload, &entry); err != nil {
		return Entry{}, &FrameError{
			Kind: FrameErrorDecode,
			Msg:  "failed to decode entry",
			Err:  err,
		}
	}
	return entry, nil
}

// Replay reads every entry and returns the reconstructed event sequence.
func Replay(r io.Reader) ([]types.InputEvent, error) {
	jr := NewReader(r)
	var events []types.InputEvent
	for {
		entry, err := jr.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		ev, err := entry.Event()
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}
