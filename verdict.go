package attrib

// Reason is the primary cause attributed to a render. When several inputs
// changed in the same commit, the most actionable one wins: props over state
// over ref over context.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonPropsChanged
	ReasonStateChanged
	ReasonRefChanged
	ReasonContextChanged
	ReasonParentRendered
	ReasonStructuralChanged

	numReasons
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonPropsChanged:
		return "props-changed"
	case ReasonStateChanged:
		return "state-changed"
	case ReasonRefChanged:
		return "ref-changed"
	case ReasonContextChanged:
		return "context-changed"
	case ReasonParentRendered:
		return "parent-rendered"
	case ReasonStructuralChanged:
		return "structural-identity-changed"
	default:
		return "unknown"
	}
}

// Verdict is the classification of one node for one commit. A mount is
// Rendered with ReasonNone: mounting is its own category, not attributed.
type Verdict struct {
	Rendered bool
	Reason   Reason
}
