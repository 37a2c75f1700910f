package journal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

func TestReplay_RoundTrip(t *testing.T) {
	events := []types.InputEvent{
		types.ScanComplete{Code: "89010588"},
		types.Hotkey{Digit: '3'},
		types.Command{Kind: types.CommandCheckout},
		types.Command{Kind: types.CommandDismiss},
		types.TextInput{Ch: 'm'},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	ts := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	for i, ev := range events {
		entry, err := NewEntry(ev, ts.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("NewEntry: %v", err)
		}
		if err := w.Append(entry); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := Replay(&buf)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !reflect.DeepEqual(got, events) {
		t.Errorf("replay mismatch:\ngot:  %#v\nwant: %#v", got, events)
	}
}

func TestReader_EmptyStream(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil)).Next()
	if err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReader_TruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], 100)
	buf.Write(lengthBuf[:])
	buf.WriteString("short")

	_, err := NewReader(&buf).Next()
	var fe *FrameError
	if !errors.As(err, &fe) || fe.Kind != FrameErrorPartial {
		t.Errorf("err = %v, want FrameError{Partial}", err)
	}
}

func TestReader_OversizedFrame(t *testing.T) {
	var buf bytes.Buffer
	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], MaxPayloadSize+1)
	buf.Write(lengthBuf[:])

	_, err := NewReader(&buf).Next()
	var fe *FrameError
	if !errors.As(err, &fe) || fe.Kind != FrameErrorTooLarge {
		t.Errorf("err = %v, want FrameError{TooLarge}", err)
	}
}

func TestReader_GarbagePayload(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0xc1, 0xc1, 0xc1} // 0xc1 is never valid msgpack
	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))
	buf.Write(lengthBuf[:])
	buf.Write(payload)

	_, err := NewReader(&buf).Next()
	var fe *FrameError
	if !errors.As(err, &fe) || fe.Kind != FrameErrorDecode {
		t.Errorf("err = %v, want FrameError{Decode}", err)
	}
}

func TestEntry_UnknownType(t *testing.T) {
	e := Entry{Type: "mystery"}
	if _, err := e.Event(); err == nil {
		t.Error("expected error for unknown entry type")
	}
}
