package attrib

// Summary folds one commit's change log into aggregate counts. The per-reason
// breakdown is a fixed array, so summaries of identical logs compare equal.
type Summary struct {
	Nodes    int
	Rendered int
	Mounts   int
	Bailouts int
	Faults   int

	byReason [numReasons]int
}

// Count returns how many rendered nodes were attributed to reason.
func (s Summary) Count(reason Reason) int {
	if int(reason) >= len(s.byReason) {
		return 0
	}
	return s.byReason[reason]
}

func Summarize(entries []Entry) Summary {
	var s Summary
	s.Nodes = len(entries)

	for i := range entries {
		e := &entries[i]

		switch {
		case e.Err != nil:
			s.Faults++
		case e.Verdict.Rendered:
			s.Rendered++
			s.byReason[e.Verdict.Reason]++
			if e.Verdict.Reason == ReasonNone {
				// Rendered with no reason only ever means a mount.
				s.Mounts++
			}
		default:
			s.Bailouts++
		}
	}

	return s
}
