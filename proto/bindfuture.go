package proto

// bindState is the BindFuture's current position in the two-state
// machine described in spec.md §4.8.
type bindState int

const (
	bindPending bindState = iota
	bindReady
	bindError
)

// BindFuture drives the only asynchronous control flow in this package:
// an inner protocol bind in progress, paired with a peer address lookup,
// resolving to a ready transport once both succeed. It is a direct,
// explicit state machine — Pending(inner, peerAddr) -> Ready | Error —
// rather than a chained continuation, per spec.md §9's warning against
// "continuation soup".
type BindFuture[In, Out any] struct {
	state bindState

	pollInner func() (Transport[In, Out], bool, error) // (transport, done, err)
	peerAddr  func(Transport[In, Out]) (Transport[In, Out], error)

	result Transport[In, Out]
	err    error
}

// newBindFuture constructs a pending future. pollInner advances the inner
// protocol's own bind attempt; wrap is applied to the inner transport
// once it's ready, to attach the peer address (or any other wrapping a
// combinator needs) — wrap itself can fail, e.g. if the peer address
// lookup errors.
func newBindFuture[In, Out any](
	pollInner func() (Transport[In, Out], bool, error),
	wrap func(Transport[In, Out]) (Transport[In, Out], error),
) *BindFuture[In, Out] {
	return &BindFuture[In, Out]{pollInner: pollInner, peerAddr: wrap}
}

// Poll advances the future by one step. Calling Poll again after it has
// resolved to Ready or Error is a precondition violation, per spec.md
// §4.8's state table — it panics, the same way polling a spent Rust
// future would.
func (f *BindFuture[In, Out]) Poll() (done bool, err error) {
	switch f.state {
	case bindReady, bindError:
		panic("proto: Poll called after BindFuture already resolved")
	}

	t, ready, err := f.pollInner()
	if err != nil {
		f.state = bindError
		f.err = err
		return true, err
	}
	if !ready {
		return false, nil
	}

	wrapped, err := f.peerAddr(t)
	if err != nil {
		f.state = bindError
		f.err = err
		return true, err
	}

	f.state = bindReady
	f.result = wrapped
	return true, nil
}

// Resolve polls the future to completion (pollInner here is always
// immediately ready in this package — no protocol in this module has a
// genuinely suspending bind — but a future inner protocol that does would
// plug in by returning ready=false until its own I/O completes).
func (f *BindFuture[In, Out]) Resolve() (Transport[In, Out], error) {
	for {
		done, err := f.Poll()
		if done {
			if err != nil {
				return nil, err
			}
			return f.result, nil
		}
	}
}
