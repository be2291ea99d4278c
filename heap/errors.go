package heap

import "errors"

// Sentinel errors for heap operations.
var (
	// ErrEmpty is returned when the minimum of an empty heap is requested.
	ErrEmpty = errors.New("heap: heap is empty")

	// ErrKeyIncreased indicates a DecreaseKey call whose new key is larger than the old one.
	ErrKeyIncreased = errors.New("heap: new key is greater than the current key")

	// ErrMeldSelf is returned by h.Meld(h).
	ErrMeldSelf = errors.New("heap: cannot meld a heap with itself")

	// ErrMeldMismatch is returned when melding two different heap implementations.
	ErrMeldMismatch = errors.New("heap: cannot meld heaps of different implementations")

	// ErrForeignRef indicates a reference that was not created by this heap.
	ErrForeignRef = errors.New("heap: reference belongs to another heap")

	// ErrNotInserted indicates a reference (or id) that is not currently in the heap.
	ErrNotInserted = errors.New("heap: element is not in the heap")

	// ErrAlreadyInserted indicates an index heap insertion of an id already present.
	ErrAlreadyInserted = errors.New("heap: element is already in the heap")

	// ErrIndexOutOfRange indicates an id outside the index heap universe.
	ErrIndexOutOfRange = errors.New("heap: index out of range")
)
