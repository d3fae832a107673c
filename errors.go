package attrib

import "fmt"

// PreconditionError reports a pair whose previous and next snapshots carry
// different kinds. A type swap at the same tree position is supposed to reach
// this engine as an unmount plus a mount; seeing it as a continuous pair
// means the upstream tree diff is broken, so it is surfaced, never guessed
// around.
type PreconditionError struct {
	Previous Kind
	Next     Kind
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("kind changed across pair: %s -> %s", e.Previous, e.Next)
}

// MalformedSnapshotError reports a missing required field, a host contract
// breach. It is reported and never recovered from.
type MalformedSnapshotError struct {
	Field string
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("snapshot missing %s", e.Field)
}
