// Package engine implements the cart-inventory transaction engine: the
// single authority mutating cart and inventory state. Every unit added to
// the cart is reserved from inventory in the same operation and every
// removal restores it, so stock plus reserved quantities is conserved
// until a checkout commits the sale.
package engine

import "errors"

// Sentinel errors for user-facing transaction conditions.
// All are recoverable; none abort the session. Use errors.Is for checks.
var (
	// ErrOutOfStock rejects an AddUnit when on-hand stock is zero.
	ErrOutOfStock = errors.New("out of stock")

	// ErrEmptyCart rejects a checkout on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidProductData rejects product creation or stock receipt
	// with invalid fields (empty name, non-positive price or quantity).
	ErrInvalidProductData = errors.New("invalid product data")

	// ErrUnknownScanCode reports a scan code with no catalog match. Not
	// an engine failure: the caller is expected to prompt for creation.
	ErrUnknownScanCode = errors.New("unknown scan code")

	// ErrNoVoiceMatch reports a transcript that resolves to no product.
	ErrNoVoiceMatch = errors.New("no product matches transcript")

	// ErrUnknownProduct reports an operation against a product id that
	// is not in the catalog.
	ErrUnknownProduct = errors.New("unknown product")
)
