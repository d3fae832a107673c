package attrib

// Classify decides whether the node behind pair moved from its previous
// snapshot to its next one by actually rendering, and if so why. It is pure
// and O(1) in everything but the node's context subscriptions.
//
// The performed-work flag is trusted only as a negative: clear means the
// node definitely did not render and nothing else is looked at. Set means
// "candidate", which is confirmed against the node's real inputs to filter
// out bailouts the host flagged anyway.
func Classify(pair Pair) (Verdict, error) {
	next := pair.Next
	if next == nil {
		return Verdict{}, &MalformedSnapshotError{Field: "next snapshot"}
	}

	// Mount is unconditionally a render and carries no reason.
	prev := pair.Previous
	if prev == nil {
		return Verdict{Rendered: true}, nil
	}

	if prev.Kind != next.Kind {
		return Verdict{}, &PreconditionError{Previous: prev.Kind, Next: next.Kind}
	}

	if !next.Kind.Attributable() {
		return classifyStructural(prev, next), nil
	}

	// The flag check comes before any comparison. It is cheaper, and a clear
	// bit is a true negative while a set bit still needs confirmation.
	if !next.Flags.Has(FlagPerformedWork) {
		return Verdict{}, nil
	}

	if prev.Props == nil {
		return Verdict{}, &MalformedSnapshotError{Field: "previous props"}
	}
	if next.Props == nil {
		return Verdict{}, &MalformedSnapshotError{Field: "next props"}
	}

	switch {
	case !same(prev.Props, next.Props):
		return Verdict{Rendered: true, Reason: ReasonPropsChanged}, nil
	case !same(prev.State, next.State):
		return Verdict{Rendered: true, Reason: ReasonStateChanged}, nil
	case !same(prev.Ref, next.Ref):
		return Verdict{Rendered: true, Reason: ReasonRefChanged}, nil
	case depsChanged(next.Deps):
		return Verdict{Rendered: true, Reason: ReasonContextChanged}, nil
	}

	// Flag set but no input changed: the host bailed out of deep rendering
	// and marked the node anyway.
	return Verdict{}, nil
}

// classifyStructural infers rendering for non-component nodes from shallow
// identity alone. The performed-work flag means nothing for this family and
// is never read.
func classifyStructural(prev, next *Snapshot) Verdict {
	if !same(prev.Props, next.Props) || !same(prev.State, next.State) || !same(prev.Ref, next.Ref) {
		return Verdict{Rendered: true, Reason: ReasonStructuralChanged}
	}
	return Verdict{}
}
