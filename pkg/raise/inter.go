package raise

import "time"

// DataCarrier is an error that holds a metadata store.
type DataCarrier interface {
	error
	// Data returns the store metadata is attached to
	Data() *Data
}

// Kind is the constraint on error kinds that can be raised. New must be
// callable on the zero value of E, so the message overloads can build an
// error without a caller supplied factory. Interface kinds have a nil zero
// value, so If and Or raise *InvalidState for them; use IfWith instead.
type Kind[E any] interface {
	DataCarrier
	// New returns a fresh error of this kind carrying msg
	New(msg string) E
}

// stamper is satisfied by every kind embedding Base.
type stamper interface {
	stamp(at time.Time)
}
