package irreps

import (
	"github.com/mailhexu/anaddb-irreps/activity"
	"github.com/mailhexu/anaddb-irreps/chartab"
	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// Block is one degenerate (or force-paired) set of modes with its
// character and match outcome. Query-scoped; discard after reporting.
type Block struct {
	// Modes are the indices of the member modes, in order.
	Modes []int
	// Traces is the block character under every group operation.
	Traces []complex128
	// Undersized marks a forced-pairing remainder smaller than the
	// target dimension.
	Undersized bool
	// Match is the projection outcome.
	Match Match
}

// Assignment is the per-mode classification output.
type Assignment struct {
	Mode        int
	Frequency   float64
	Label       string
	Confidence  float64
	IRActive    bool
	RamanActive bool
}

// Result holds one query's classification.
type Result struct {
	Assignments []Assignment
	Blocks      []Block
	// Gamma reports whether the query ran at the zone center, where
	// Activity is populated.
	Gamma bool
	// Activity maps irrep labels to IR/Raman tags; nil away from Γ.
	Activity map[string]activity.Tag
}

// Classify runs the full pipeline for one (little group, modes, table)
// query: degeneracy grouping or forced pairing, trace computation, table
// projection, and — at the zone center — activity tagging.
//
// Modes must be sorted ascending by frequency. The table is aligned to
// the little group's operation order internally, so tables may come
// straight from the repository. Fatal errors (operation/table mismatch,
// group closure) abort the query; unidentified blocks do not.
func Classify(lg *symmetry.LittleGroup, modes []Mode, table *chartab.Table, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)

	if table.Order() != lg.Order() {
		return nil, orderMismatch(table.Order(), lg.Order())
	}
	aligned, err := table.Align(lg.Rotations(), cfg.GeometricTolerance)
	if err != nil {
		return nil, err
	}

	natoms := 0
	if lg.Order() > 0 {
		natoms = len(lg.Ops[0].Perm)
	}
	for i, m := range modes {
		if len(m.Displacement) != 3*natoms {
			return nil, displacementSize(i, len(m.Displacement), 3*natoms)
		}
	}

	res := &Result{Gamma: lg.IsGamma(cfg.GeometricTolerance)}
	if res.Gamma {
		tags, err := activity.Classify(lg, aligned, cfg.ActivityEpsilon, cfg.GeometricTolerance)
		if err != nil {
			return nil, err
		}
		res.Activity = tags
	}

	if len(modes) == 0 {
		return res, nil
	}

	dMin := aligned.MinDimension()
	forced := dMin > 1 && !cfg.DisablePairing

	var groups [][]int
	if forced {
		groups = PairConsecutive(len(modes), dMin)
	} else {
		freqs := make([]float64, len(modes))
		for i, m := range modes {
			freqs[i] = m.Frequency
		}
		groups = GroupDegenerate(freqs, cfg.DegeneracyTolerance)
	}

	res.Assignments = make([]Assignment, 0, len(modes))
	res.Blocks = make([]Block, 0, len(groups))
	for _, grp := range groups {
		block := Block{
			Modes:      grp,
			Traces:     BlockTraces(lg, modes, grp, cfg.Gauge),
			Undersized: forced && len(grp) < dMin,
		}

		if block.Undersized {
			// A remainder block cannot satisfy the target dimension;
			// report it unidentified instead of forcing a label.
			block.Match = Match{Entry: -1, Label: UnidentifiedLabel}
		} else {
			block.Match = MatchBlock(block.Traces, aligned.Entries, cfg.Threshold)
		}
		res.Blocks = append(res.Blocks, block)

		tag := res.Activity[block.Match.Label]
		for _, m := range grp {
			res.Assignments = append(res.Assignments, Assignment{
				Mode:        m,
				Frequency:   modes[m].Frequency,
				Label:       block.Match.Label,
				Confidence:  block.Match.Confidence,
				IRActive:    tag.IR,
				RamanActive: tag.Raman,
			})
		}
	}
	return res, nil
}
