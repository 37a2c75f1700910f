package engine

import (
	"strings"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// ByScanCode resolves a completed scan to a product. ErrUnknownScanCode is
// a signal to offer product creation, not a failure.
func (e *Engine) ByScanCode(code string) (types.Product, error) {
	for _, p := range e.products {
		if p.ScanCode != "" && p.ScanCode == code {
			return p, nil
		}
	}
	return types.Product{}, ErrUnknownScanCode
}

// ByHotkey resolves a digit shortcut to its bound product.
func (e *Engine) ByHotkey(digit byte) (types.Product, bool) {
	want := string(digit)
	for _, p := range e.products {
		if p.Hotkey == want {
			return p, true
		}
	}
	return types.Product{}, false
}

// ResolveTranscript resolves a voice transcript to a single product by
// case-insensitive substring match against product names. The first catalog
// match wins.
func (e *Engine) ResolveTranscript(transcript string) (types.Product, error) {
	t := strings.ToLower(transcript)
	for _, p := range e.products {
		if strings.Contains(t, strings.ToLower(p.Name)) {
			return p, nil
		}
	}
	return types.Product{}, ErrNoVoiceMatch
}

// Search returns catalog entries whose name contains the query,
// case-insensitively, in catalog order. An empty query returns everything.
func (e *Engine) Search(query string) []types.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]types.Product, 0, len(e.products))
	for _, p := range e.products {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Products returns a copy of the catalog in stable order.
func (e *Engine) Products() []types.Product {
	out := make([]types.Product, len(e.products))
	copy(out, e.products)
	return out
}
