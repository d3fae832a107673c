package attrib

// ContextRef identifies one host context. The host keeps Value pointing at
// the context's current provider value; consumers compare it by identity
// against the value they observed when they last read the context.
type ContextRef struct {
	Value any
}

// ContextDep records one context subscription held by a node: which context,
// and the value it held when the node last read it.
type ContextDep struct {
	Context  *ContextRef
	Observed any
}

// Snapshot is one node's state at a single point in the tree's lifecycle.
// Props, State and Ref are opaque references owned by the host; they are
// compared by identity only, never inspected. Snapshots are read-only and
// may be recycled by the host after the commit, so nothing here may be
// retained past the call that supplied it.
type Snapshot struct {
	Kind  Kind
	Flags Flags
	Props any
	State any
	Ref   any

	// Deps lists the node's context subscriptions in read order, nil when it
	// subscribes to no contexts.
	Deps []ContextDep
}

// Pair associates a node's snapshot before a commit with its snapshot after.
// A nil Previous means the node was newly mounted by this commit.
type Pair struct {
	Previous *Snapshot
	Next     *Snapshot
}

// same is identity equality over the host's opaque references.
func same(a, b any) bool {
	return a == b
}

// depsChanged reports whether any subscribed context's current value differs
// from the value observed at the node's last read. Any mismatch counts, even
// if the node never used the value.
func depsChanged(deps []ContextDep) bool {
	for i := range deps {
		dep := &deps[i]
		if dep.Context != nil && !same(dep.Context.Value, dep.Observed) {
			return true
		}
	}
	return false
}
