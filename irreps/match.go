package irreps

import (
	"math"
	"math/cmplx"

	"github.com/mailhexu/anaddb-irreps/chartab"
)

// UnidentifiedLabel marks a block no table entry claimed.
const UnidentifiedLabel = "-"

// maxImagPart bounds the imaginary part a projection may carry and still
// count as a physical multiplicity.
const maxImagPart = 0.1

// Match is the outcome of projecting one block onto a character table.
type Match struct {
	// Entry indexes the winning table entry, -1 when unidentified.
	Entry int
	// Label is the irrep label, or UnidentifiedLabel.
	Label string
	// Projection is the raw multiplicity of the winning entry.
	Projection complex128
	// Confidence is the accepted real multiplicity clipped to [0,1];
	// zero when unidentified.
	Confidence float64
}

// MatchBlock projects a block's trace vector onto every table entry and
// picks the entry with the largest real multiplicity. The winner must
// reach threshold and carry a negligible imaginary part; ties resolve to
// the first entry in table order. Failing candidates leave the block
// unidentified rather than mislabeled.
func MatchBlock(traces []complex128, entries []chartab.Entry, threshold float64) Match {
	g := float64(len(traces))

	best := Match{Entry: -1, Label: UnidentifiedLabel}
	bestRe := math.Inf(-1)
	for i, e := range entries {
		var n complex128
		for k := range traces {
			n += cmplx.Conj(e.Chars[k]) * traces[k]
		}
		n /= complex(g, 0)

		if re := real(n); re > bestRe {
			bestRe = re
			best.Entry = i
			best.Projection = n
		}
	}

	if best.Entry < 0 || bestRe < threshold || math.Abs(imag(best.Projection)) > maxImagPart {
		return Match{Entry: -1, Label: UnidentifiedLabel, Projection: best.Projection}
	}

	best.Label = entries[best.Entry].Label
	best.Confidence = clip01(bestRe)
	return best
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
