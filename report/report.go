package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mailhexu/anaddb-irreps/irreps"
	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// Summary renders the per-mode table: index, frequency, label,
// confidence, and IR/Raman activity. Activity columns show "-" away
// from the zone center, where they are undefined.
func Summary(res *irreps.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Mode", "Freq (THz)", "Irrep", "Conf", "IR", "Raman"})

	for _, a := range res.Assignments {
		ir, raman := "-", "-"
		if res.Gamma {
			ir, raman = yesNo(a.IRActive), yesNo(a.RamanActive)
		}
		tw.AppendRow(table.Row{
			a.Mode,
			fmt.Sprintf("%.4f", a.Frequency),
			a.Label,
			fmt.Sprintf("%.2f", a.Confidence),
			ir,
			raman,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// Verbose renders the group context, the per-label activity map, and
// every block's character under each operation.
func Verbose(res *irreps.Result, lg *symmetry.LittleGroup) string {
	var b strings.Builder

	q := lg.Qpoint
	fmt.Fprintf(&b, "q = (%.4f, %.4f, %.4f)\n", q[0], q[1], q[2])
	fmt.Fprintf(&b, "point group: %s\n", lg.PointGroup)
	if lg.SpaceGroup != "" {
		fmt.Fprintf(&b, "space group: %s\n", lg.SpaceGroup)
	}
	fmt.Fprintf(&b, "little group order: %d\n", lg.Order())

	if res.Gamma && len(res.Activity) > 0 {
		b.WriteString("\nactivity:\n")
		labels := make([]string, 0, len(res.Activity))
		for l := range res.Activity {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		for _, l := range labels {
			tag := res.Activity[l]
			fmt.Fprintf(&b, "  %-4s IR=%-5v Raman=%v\n", l, tag.IR, tag.Raman)
		}
	}

	for i, blk := range res.Blocks {
		fmt.Fprintf(&b, "\nblock %d: modes %v\n", i, blk.Modes)
		fmt.Fprintf(&b, "  label %s  confidence %.2f", blk.Match.Label, blk.Match.Confidence)
		if blk.Undersized {
			b.WriteString("  (undersized)")
		}
		b.WriteByte('\n')
		for k, tr := range blk.Traces {
			fmt.Fprintf(&b, "  chi[%2d] = %s\n", k, fmtComplex(tr))
		}
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fmtComplex(c complex128) string {
	re, im := real(c), imag(c)
	// Normalize negative zero so output stays stable across fixtures.
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	return fmt.Sprintf("%+.4f%+.4fi", re, im)
}
