package threshold

import "errors"

// Sentinel errors for the caller-facing failure modes. Everything
// except ErrInternal is an expected outcome on bad input; ErrInternal
// always indicates a broken invariant.
var (
	// ErrDecoding reports malformed bytes when reconstructing a key,
	// ciphertext, or partial decryption.
	ErrDecoding = errors.New("threshold: malformed encoding")

	// ErrShapeMismatch reports disagreeing vector lengths or an
	// unsupported committee size.
	ErrShapeMismatch = errors.New("threshold: shape mismatch")

	// ErrInsufficientShares reports a selector with fewer contributors
	// than the ciphertext threshold.
	ErrInsufficientShares = errors.New("threshold: insufficient shares")

	// ErrInvalidShare reports a contributed partial decryption that
	// fails its pairing self-check.
	ErrInvalidShare = errors.New("threshold: invalid share")

	// ErrInternal reports a broken invariant, such as a non-zero
	// remainder in a division that must be exact.
	ErrInternal = errors.New("threshold: internal error")
)
