package internal

// Frame is one pending position in a depth-first walk: the node still to
// visit, and whether some ancestor already rendered in this commit.
type Frame struct {
	Node     any
	Ancestor bool
}

// Scratch is a goroutine's reusable walk stack. Only capacity survives from
// one walk to the next; every reference is dropped on pop/reset so snapshots
// owned by the host never outlive the commit that supplied them.
type Scratch struct {
	frames []Frame
}

func NewScratch() *Scratch {
	return &Scratch{}
}

func (s *Scratch) Push(node any, ancestor bool) {
	s.frames = append(s.frames, Frame{Node: node, Ancestor: ancestor})
}

func (s *Scratch) Pop() (node any, ancestor bool, ok bool) {
	n := len(s.frames)
	if n == 0 {
		return nil, false, false
	}

	f := s.frames[n-1]
	s.frames[n-1] = Frame{} // drop the reference
	s.frames = s.frames[:n-1]

	return f.Node, f.Ancestor, true
}

func (s *Scratch) Reset() {
	for i := range s.frames {
		s.frames[i] = Frame{}
	}
	s.frames = s.frames[:0]
}
