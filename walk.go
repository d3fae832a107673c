package attrib

import (
	"fmt"
	"log/slog"

	"github.com/renderlens/attrib/internal"
)

// Node is one position in the host's next tree. ID is the host's stable,
// opaque identity for the node (never derived from position), used to find
// the node's previous snapshot.
type Node struct {
	ID       any
	Snapshot *Snapshot
	Children []*Node
}

// Entry is one line of a commit's change log. Err is set when the node's
// classification faulted on a contract breach; the verdict is then zero and
// not meaningful.
type Entry struct {
	ID      any
	Verdict Verdict
	Err     error
}

// Walker runs the attribution pass over one commit at a time. A Walker
// holds no state between walks; every call is fully independent.
type Walker struct {
	failFast bool
	log      *slog.Logger
}

type Option func(*Walker)

// WithFailFast makes any classification fault abort the walk with an error
// instead of riding in the node's log entry. No partial log is returned.
func WithFailFast() Option {
	return func(w *Walker) { w.failFast = true }
}

// WithLogger sets the logger contract breaches are reported on. The default
// discards. The handler must not block; the walk runs inline in the host's
// post-commit hook.
func WithLogger(log *slog.Logger) Option {
	return func(w *Walker) { w.log = log }
}

func NewWalker(opts ...Option) *Walker {
	w := &Walker{
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Walk classifies every node under root in pre-order, pairing each with its
// previous snapshot from previous (absence means mount), and returns one
// ordered log entry per node. Repeated walks over the same inputs produce
// identical logs.
//
// A node that classified as not rendered while some ancestor did render is
// reported as rendered with ReasonParentRendered: its subtree was visited by
// the rendering pass even though the node did no work of its own. The
// carried flag is threaded down the walk and never survives the call.
func (w *Walker) Walk(root *Node, previous map[any]*Snapshot) ([]Entry, error) {
	if root == nil {
		return nil, nil
	}

	stack := internal.GetScratch()
	entries := make([]Entry, 0, len(previous)+1)

	stack.Push(root, false)
	for {
		n, ancestor, ok := stack.Pop()
		if !ok {
			break
		}
		node := n.(*Node)

		pair := Pair{Previous: previous[node.ID], Next: node.Snapshot}
		verdict, err := Classify(pair)

		childAncestor := ancestor
		switch {
		case err != nil:
			err = fmt.Errorf("node %v: %w", node.ID, err)
			w.log.Warn("classification fault", "node", node.ID, "error", err)

			if w.failFast {
				stack.Reset()
				return nil, err
			}

			// Isolate the fault to this node and keep walking.
			entries = append(entries, Entry{ID: node.ID, Err: err})

		case !verdict.Rendered && ancestor:
			entries = append(entries, Entry{
				ID:      node.ID,
				Verdict: Verdict{Rendered: true, Reason: ReasonParentRendered},
			})

		default:
			childAncestor = ancestor || verdict.Rendered
			entries = append(entries, Entry{ID: node.ID, Verdict: verdict})
		}

		// Reverse push keeps the pop order pre-order.
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack.Push(node.Children[i], childAncestor)
		}
	}

	return entries, nil
}

// Walk runs a default Walker over one commit.
func Walk(root *Node, previous map[any]*Snapshot) ([]Entry, error) {
	return NewWalker().Walk(root, previous)
}
