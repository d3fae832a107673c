package attrib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Fixture-driven commits: snapshots are described with string tokens, where
// equal tokens stand for identical opaque references.

type scenarioContext struct {
	Current  string `yaml:"current"`
	Observed string `yaml:"observed"`
}

type scenarioNode struct {
	ID       string           `yaml:"id"`
	Kind     string           `yaml:"kind"`
	Worked   bool             `yaml:"worked"`
	Props    string           `yaml:"props"`
	State    string           `yaml:"state"`
	Ref      string           `yaml:"ref"`
	Context  *scenarioContext `yaml:"context"`
	Children []scenarioNode   `yaml:"children"`
}

type scenarioVerdict struct {
	ID       string `yaml:"id"`
	Rendered bool   `yaml:"rendered"`
	Reason   string `yaml:"reason"`
}

type scenario struct {
	Name     string            `yaml:"name"`
	Previous []scenarioNode    `yaml:"previous"`
	Tree     scenarioNode      `yaml:"tree"`
	Expect   []scenarioVerdict `yaml:"expect"`
}

var kindNames = map[string]Kind{}

func init() {
	for k := KindClassComponent; k <= KindText; k++ {
		kindNames[k.String()] = k
	}
}

func opaque(token string) any {
	if token == "" {
		return nil
	}
	return token
}

func (n *scenarioNode) snapshot(t *testing.T) *Snapshot {
	kind, ok := kindNames[n.Kind]
	require.True(t, ok, "unknown kind %q", n.Kind)

	snap := &Snapshot{
		Kind:  kind,
		Props: opaque(n.Props),
		State: opaque(n.State),
		Ref:   opaque(n.Ref),
	}
	if n.Worked {
		snap.Flags.Set(FlagPerformedWork)
	}
	if n.Context != nil {
		snap.Deps = []ContextDep{{
			Context:  &ContextRef{Value: n.Context.Current},
			Observed: n.Context.Observed,
		}}
	}

	return snap
}

func (n *scenarioNode) build(t *testing.T) *Node {
	node := &Node{ID: n.ID, Snapshot: n.snapshot(t)}
	for i := range n.Children {
		node.Children = append(node.Children, n.Children[i].build(t))
	}
	return node
}

func TestScenarios(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			previous := make(map[any]*Snapshot, len(sc.Previous))
			for i := range sc.Previous {
				prev := &sc.Previous[i]
				previous[any(prev.ID)] = prev.snapshot(t)
			}

			entries, err := Walk(sc.Tree.build(t), previous)
			require.NoError(t, err)
			require.Len(t, entries, len(sc.Expect))

			for i, want := range sc.Expect {
				got := entries[i]
				assert.NoError(t, got.Err, want.ID)
				assert.Equal(t, want.ID, got.ID)
				assert.Equal(t, want.Rendered, got.Verdict.Rendered, want.ID)
				assert.Equal(t, want.Reason, got.Verdict.Reason.String(), want.ID)
			}
		})
	}
}
