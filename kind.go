package attrib

// Kind tags what a work-node represents.
//
// Two families matter: attributable kinds are user-authored components whose
// re-render is worth reporting with a cause, structural kinds (everything
// else) render purely as a consequence of identity changes and never carry a
// meaningful performed-work flag.
type Kind uint8

const (
	KindClassComponent Kind = iota
	KindFunctionComponent
	KindContextConsumer
	KindMemoComponent
	KindSimpleMemoComponent
	KindForwardRef

	KindHostElement
	KindFragment
	KindPortal
	KindText
)

// Attributable reports whether re-renders of this kind are attributed to a
// specific cause (props/state/ref/context) rather than inferred structurally.
func (k Kind) Attributable() bool {
	switch k {
	case KindClassComponent, KindFunctionComponent, KindContextConsumer,
		KindMemoComponent, KindSimpleMemoComponent, KindForwardRef:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindClassComponent:
		return "class"
	case KindFunctionComponent:
		return "function"
	case KindContextConsumer:
		return "context-consumer"
	case KindMemoComponent:
		return "memo"
	case KindSimpleMemoComponent:
		return "simple-memo"
	case KindForwardRef:
		return "forward-ref"
	case KindHostElement:
		return "host"
	case KindFragment:
		return "fragment"
	case KindPortal:
		return "portal"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}
