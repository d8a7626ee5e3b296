package raise

import "errors"

// Result is the continuation of a conditional raise. On the passing path it
// lets the caller chain further checks; once an error has been raised every
// later step is skipped and Err reports it. The zero value is a passing
// chain root using the default settings.
type Result[E Kind[E]] struct {
	err  error
	opts *settings
}

// Using starts a chain of kind E whose raises use opts.
func Using[E Kind[E]](opts ...Option) Result[E] {
	return Result[E]{opts: newSettings(opts...)}
}

// Err returns the raised error, nil if every check passed.
func (r Result[E]) Err() error {
	return r.err
}

func (r Result[E]) IsRaised() bool {
	return r.err != nil
}

// As returns the raised error when it is of kind E. Misuse errors such as
// *InvalidState are not.
func (r Result[E]) As() (E, bool) {
	var e E
	if r.err == nil {
		return e, false
	}
	if errors.As(r.err, &e) {
		return e, true
	}
	return e, false
}

// Must panics with the raised error, if any, and returns r otherwise.
func (r Result[E]) Must() Result[E] {
	if r.err != nil {
		panic(r.err)
	}
	return r
}

// ElseDo calls fn once when nothing has been raised and returns r for further
// chaining. A nil fn raises *ArgumentNull.
func (r Result[E]) ElseDo(fn func()) Result[E] {
	if r.err != nil {
		return r
	}
	if fn == nil {
		return raised[E](r.opts, (*ArgumentNull)(nil).New("callback can not be nil"), nil)
	}
	fn()
	return r
}

func (r Result[E]) Or(cond bool, msg string, data ...Entry) Result[E] {
	if r.err != nil {
		return r
	}
	return ifMessage[E](r.opts, cond, msg, data)
}

func (r Result[E]) OrFunc(pred func() bool, msg string, data ...Entry) Result[E] {
	if r.err != nil {
		return r
	}
	return ifFunc(r.opts, pred, messageFactory[E](msg), data)
}

func (r Result[E]) OrWith(cond bool, factory func() E, data ...Entry) Result[E] {
	if r.err != nil {
		return r
	}
	return ifFactory(r.opts, cond, factory, data)
}

func (r Result[E]) OrFuncWith(pred func() bool, factory func() E, data ...Entry) Result[E] {
	if r.err != nil {
		return r
	}
	return ifFunc(r.opts, pred, factory, data)
}

// OrAs continues r with a check raising kind To. An error already raised on
// r is carried over unchanged.
func OrAs[To Kind[To], From Kind[From]](r Result[From], cond bool, msg string, data ...Entry) Result[To] {
	if r.err != nil {
		return carry[To](r)
	}
	return ifMessage[To](r.opts, cond, msg, data)
}

func OrFuncAs[To Kind[To], From Kind[From]](r Result[From], pred func() bool, msg string, data ...Entry) Result[To] {
	if r.err != nil {
		return carry[To](r)
	}
	return ifFunc(r.opts, pred, messageFactory[To](msg), data)
}

func OrWithAs[To Kind[To], From Kind[From]](r Result[From], cond bool, factory func() To, data ...Entry) Result[To] {
	if r.err != nil {
		return carry[To](r)
	}
	return ifFactory(r.opts, cond, factory, data)
}

func OrFuncWithAs[To Kind[To], From Kind[From]](r Result[From], pred func() bool, factory func() To, data ...Entry) Result[To] {
	if r.err != nil {
		return carry[To](r)
	}
	return ifFunc(r.opts, pred, factory, data)
}

func carry[To Kind[To], From Kind[From]](from Result[From]) Result[To] {
	return Result[To]{err: from.err, opts: from.opts}
}
