package raise

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Base is the shared core of every raisable error kind. Custom kinds embed
// it and provide a New(msg string) constructor:
//
//	type Timeout struct{ raise.Base }
//
//	func (*Timeout) New(msg string) *Timeout {
//		return &Timeout{Base: raise.NewBase("timeout", msg)}
//	}
type Base struct {
	kind     string
	msg      string
	data     Data
	id       uuid.UUID
	raisedAt time.Time
}

// NewBase builds the embeddable core for an error of the given kind label.
func NewBase(kind, msg string) Base {
	return Base{kind: kind, msg: msg}
}

// Error returns the message, or the kind label when no message was given.
func (b *Base) Error() string {
	if b.msg != "" {
		return b.msg
	}
	if b.kind != "" {
		return b.kind
	}
	return "error"
}

func (b *Base) Kind() string    { return b.kind }
func (b *Base) Message() string { return b.msg }

// Data returns the metadata store. It is never nil.
func (b *Base) Data() *Data { return &b.data }

// ID identifies the raise that produced this error. It is uuid.Nil until
// the error has been raised.
func (b *Base) ID() uuid.UUID { return b.id }

// RaisedAt is the clock reading taken when the error was raised.
func (b *Base) RaisedAt() time.Time { return b.raisedAt }

func (b *Base) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", b.kind),
		slog.String("msg", b.msg),
	}
	if b.id != uuid.Nil {
		attrs = append(attrs, slog.String("id", b.id.String()))
	}
	if b.data.Len() > 0 {
		attrs = append(attrs, slog.Any("data", &b.data))
	}
	return slog.GroupValue(attrs...)
}

// stamp records the raise. An error raised twice keeps its first stamp.
func (b *Base) stamp(at time.Time) {
	if b.id != uuid.Nil {
		return
	}
	b.id = uuid.New()
	b.raisedAt = at
}

// NullReference reports a missing value that was required.
type NullReference struct{ Base }

func (*NullReference) New(msg string) *NullReference {
	return &NullReference{Base: NewBase("null reference", msg)}
}

// InvalidOperation reports a call that is not valid for the current state.
type InvalidOperation struct{ Base }

func (*InvalidOperation) New(msg string) *InvalidOperation {
	return &InvalidOperation{Base: NewBase("invalid operation", msg)}
}

// Argument reports an argument with an unacceptable value.
type Argument struct{ Base }

func (*Argument) New(msg string) *Argument {
	return &Argument{Base: NewBase("invalid argument", msg)}
}

// ArgumentNull reports a required argument that was nil.
type ArgumentNull struct{ Base }

func (*ArgumentNull) New(msg string) *ArgumentNull {
	return &ArgumentNull{Base: NewBase("argument is nil", msg)}
}

// InvalidState is raised when a factory is wired up incorrectly.
type InvalidState struct{ Base }

func (*InvalidState) New(msg string) *InvalidState {
	return &InvalidState{Base: NewBase("invalid state", msg)}
}

// DuplicateKey is returned when metadata is added under a key the store
// already holds.
type DuplicateKey struct {
	Base
	Key string
}

func (*DuplicateKey) New(msg string) *DuplicateKey {
	return &DuplicateKey{Base: NewBase("duplicate key", msg)}
}

func newDuplicateKey(key string) *DuplicateKey {
	e := (*DuplicateKey)(nil).New("an item with the same key has already been added: " + key)
	e.Key = key
	return e
}
