package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mailhexu/anaddb-irreps/chartab"
	"github.com/mailhexu/anaddb-irreps/irreps"
	"github.com/mailhexu/anaddb-irreps/phonio"
	"github.com/mailhexu/anaddb-irreps/report"
)

type options struct {
	phononFile string
	qIndex     int
	symprec    float64
	degenTol   float64
	threshold  float64
	rGauge     bool
	noPairing  bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "anaddb-irreps",
		Short: "Label phonon modes with irreducible representations",
		Long: `Classify the phonon modes of one q-point by the irreducible
representations of its little group. At the zone center the summary
also tags infrared and Raman activity per mode.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.phononFile, "phonon-file", "p", "", "path to the phonon document (YAML)")
	f.IntVarP(&opts.qIndex, "q-index", "q", 0, "index of the q-point in the document (0-based)")
	f.Float64VarP(&opts.symprec, "symprec", "s", 1e-5, "geometric tolerance for symmetry resolution")
	f.Float64VarP(&opts.degenTol, "degeneracy-tolerance", "d", 1e-4, "frequency gap tolerance for degeneracy grouping (THz)")
	f.Float64Var(&opts.threshold, "threshold", 0.5, "minimum projection multiplicity to accept a label")
	f.BoolVar(&opts.rGauge, "r-gauge", true, "multiply wrap-around lattice phases into block characters")
	f.BoolVar(&opts.noPairing, "no-pairing", false, "group by frequency even when the table has no one-dimensional irrep")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print block characters and activity, log progress to stderr")
	cobra.CheckErr(cmd.MarkFlagRequired("phonon-file"))

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}

	doc, err := phonio.LoadFile(opts.phononFile)
	if err != nil {
		return err
	}
	logger.Info("document loaded", "atoms", doc.NAtoms(), "qpoints", len(doc.Qpoints))

	lg, err := doc.LittleGroup(opts.qIndex, opts.symprec)
	if err != nil {
		return err
	}
	logger.Info("little group selected",
		"q", lg.Qpoint, "order", lg.Order(), "pointgroup", lg.PointGroup)

	repo, err := chartab.NewRepository()
	if err != nil {
		return err
	}
	table, err := repo.Lookup(lg.PointGroup)
	if err != nil {
		return err
	}

	modes, err := doc.Modes(opts.qIndex)
	if err != nil {
		return err
	}

	copts := []irreps.Option{
		irreps.WithDegeneracyTolerance(opts.degenTol),
		irreps.WithGeometricTolerance(opts.symprec),
		irreps.WithThreshold(opts.threshold),
	}
	if !opts.rGauge {
		copts = append(copts, irreps.WithGauge(irreps.GaugeLattice))
	}
	if opts.noPairing {
		copts = append(copts, irreps.WithoutPairing())
	}

	res, err := irreps.Classify(lg, modes, table, copts...)
	if err != nil {
		return err
	}
	logger.Info("classification done", "modes", len(res.Assignments), "blocks", len(res.Blocks))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Summary(res))
	if opts.verbose {
		fmt.Fprintln(out)
		fmt.Fprint(out, report.Verbose(res, lg))
	}
	return nil
}
