package table

import (
	"github.com/dekarrin/rezi"

	"github.com/dekarrin/lr1kit/internal/lr1/automaton"
	"github.com/dekarrin/lr1kit/internal/lr1/grammar"
)

// Snapshot is the byte-serializable projection of a Table: every exported
// field except Automaton, plus the two unexported maps, flattened so rezi
// can walk it. A
// Snapshot round-trips through EncodeBinary/DecodeBinary without needing
// the Automaton it was built from -- the caller supplies that back in on
// decode, the same way a session's game.State is handed back its owning
// connection rather than reserializing it.
type Snapshot struct {
	Productions []Production
	Actions     map[int]map[grammar.Symbol]Action
	Gotos       map[int]map[grammar.Symbol]int
	Conflicts   []Conflict
}

// ToSnapshot projects t into its serializable form.
func (t *Table) ToSnapshot() Snapshot {
	return Snapshot{
		Productions: t.Productions,
		Actions:     t.action,
		Gotos:       t.gotoTable,
		Conflicts:   t.Conflicts,
	}
}

// FromSnapshot rebuilds a Table from a Snapshot and the Automaton it was
// originally built over. The caller is responsible for supplying the same
// Automaton used to produce the Snapshot; FromSnapshot does not attempt to
// re-derive or validate it.
func FromSnapshot(snap Snapshot, a *automaton.Automaton) *Table {
	return &Table{
		Automaton:   a,
		Productions: snap.Productions,
		action:      snap.Actions,
		gotoTable:   snap.Gotos,
		Conflicts:   snap.Conflicts,
	}
}

// EncodeBinary renders t's snapshot as REZI-encoded bytes, suitable for
// writing to a file or a catalog's blob column.
func (t *Table) EncodeBinary() []byte {
	return rezi.EncBinary(t.ToSnapshot())
}

// DecodeBinary decodes a REZI-encoded Snapshot from data and rebuilds a
// Table over Automaton a.
func DecodeBinary(data []byte, a *automaton.Automaton) (*Table, error) {
	var snap Snapshot
	n, err := rezi.DecBinary(data, &snap)
	if err != nil {
		return nil, err
	}
	_ = n
	return FromSnapshot(snap, a), nil
}
