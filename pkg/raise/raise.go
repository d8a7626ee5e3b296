package raise

import "time"

// If raises an error of kind E carrying msg when cond is true. An empty msg
// leaves the kind's default text in place.
func If[E Kind[E]](cond bool, msg string, data ...Entry) Result[E] {
	return ifMessage[E](nil, cond, msg, data)
}

// IfFunc calls pred once and behaves like If with its result.
func IfFunc[E Kind[E]](pred func() bool, msg string, data ...Entry) Result[E] {
	return ifFunc(nil, pred, messageFactory[E](msg), data)
}

// IfWith raises the error built by factory when cond is true.
func IfWith[E Kind[E]](cond bool, factory func() E, data ...Entry) Result[E] {
	return ifFactory(nil, cond, factory, data)
}

// IfFuncWith calls pred once and behaves like IfWith with its result.
func IfFuncWith[E Kind[E]](pred func() bool, factory func() E, data ...Entry) Result[E] {
	return ifFunc(nil, pred, factory, data)
}

// AddData appends data to the metadata store of err in the given order. It
// stops at the first key already present and returns the *DuplicateKey. An
// err without a data store yields *InvalidState.
func AddData(err DataCarrier, data ...Entry) error {
	if isNil(err) {
		return (*ArgumentNull)(nil).New("error can not be nil")
	}
	store := err.Data()
	for _, e := range data {
		if failed := store.Add(e.Key, e.Value); failed != nil {
			return failed
		}
	}
	return nil
}

func messageFactory[E Kind[E]](msg string) func() E {
	return func() E {
		var kind E
		// a nil interface kind has no New to call
		if any(kind) == nil {
			return kind
		}
		return kind.New(msg)
	}
}

func ifMessage[E Kind[E]](s *settings, cond bool, msg string, data []Entry) Result[E] {
	return ifFactory(s, cond, messageFactory[E](msg), data)
}

func ifFunc[E Kind[E]](s *settings, pred func() bool, factory func() E, data []Entry) Result[E] {
	if pred == nil {
		return raised[E](s, (*ArgumentNull)(nil).New("predicate can not be nil"), nil)
	}
	return ifFactory(s, pred(), factory, data)
}

func ifFactory[E Kind[E]](s *settings, cond bool, factory func() E, data []Entry) Result[E] {
	if !cond {
		return Result[E]{opts: s}
	}
	if factory == nil {
		return raised[E](s, (*InvalidState)(nil).New("no exception was specified for the condition given"), nil)
	}
	err := factory()
	if isNil(err) {
		return raised[E](s, (*InvalidState)(nil).New("an exception was not generated through the given exception factory"), nil)
	}
	return raised[E](s, err, data)
}

// raised attaches data followed by the DateKey stamp and returns the chain
// in its raised state. A failed attachment is raised in place of err.
func raised[E Kind[E]](s *settings, err DataCarrier, data []Entry) Result[E] {
	at := s.now()
	if failed := AddData(err, data...); failed != nil {
		return Result[E]{opts: s, err: stamped(failed, at)}
	}
	if failed := AddData(err, Pair(DateKey, at.Format(s.layout()))); failed != nil {
		return Result[E]{opts: s, err: stamped(failed, at)}
	}
	return Result[E]{opts: s, err: stamped(err, at)}
}

func stamped(err error, at time.Time) error {
	if st, ok := err.(stamper); ok {
		st.stamp(at)
	}
	return err
}
