// Command fieldinfo prints wavenumber responses of potential-field filters
// and the physical-constant table they depend on.
//
// Usage:
//
//	fieldinfo [flags] [filter-name ...]
//
// Without arguments it prints the response of every filter over a sweep from
// long wavelengths down to the Nyquist wavenumber of the given spacing.
//
// Examples:
//
//	fieldinfo continuation
//	fieldinfo -height 250 continuation
//	fieldinfo -inc 30 -dec -15 reduction pseudogravity
//	fieldinfo -demo
//	fieldinfo -constants
//	fieldinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-potfield/potfield/enhance"
	"github.com/cwbudde/algo-potfield/potfield/filter"
	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/physics"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
	"github.com/cwbudde/algo-potfield/potfield/synth"
)

type sweepParams struct {
	height   float64
	oldField spectral.Direction
	oldSrc   spectral.Direction
	newField spectral.Direction
	newSrc   spectral.Direction
	rho      float64
	mag      float64
	azimuth  float64
	consts   physics.Constants
}

type filterEntry struct {
	name     string
	desc     string
	response func(p sweepParams, k float64) float64
}

var registry = []filterEntry{
	{"continuation", "vertical continuation exp(-H|k|)", continuationResponse},
	{"reduction", "direction reduction (f1*m1)/(f0*m0)", reductionResponse},
	{"pseudogravity", "pseudogravity C/(thetaF*thetaS*|k|)", pseudogravityResponse},
}

func main() {
	height := flag.Float64("height", 100, "continuation height in meters (positive is upward)")
	inc := flag.Float64("inc", 45, "inclination of the measured field and source in degrees")
	dec := flag.Float64("dec", 0, "declination of the measured field and source in degrees")
	newInc := flag.Float64("newinc", 90, "target inclination for reduction in degrees")
	newDec := flag.Float64("newdec", 0, "target declination for reduction in degrees")
	rho := flag.Float64("rho", 200, "density contrast for pseudogravity in kg/m3")
	mag := flag.Float64("mag", 5, "magnetization intensity for pseudogravity in A/m")
	azimuth := flag.Float64("azimuth", 0, "wavenumber azimuth of the sweep in degrees east of north")
	spacing := flag.Float64("dx", 100, "grid sample spacing in meters (sets the Nyquist wavenumber)")
	samples := flag.Int("samples", 8, "number of sweep rows")
	constFile := flag.String("constfile", "", "YAML file with physical-constant overrides")
	constants := flag.Bool("constants", false, "print the physical-constant table")
	demo := flag.Bool("demo", false, "run the filters over a synthetic dipole anomaly and print grid statistics")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fieldinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints wavenumber responses of potential-field filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the response of all filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fieldinfo continuation\n")
		fmt.Fprintf(os.Stderr, "  fieldinfo -height 250 continuation pseudogravity\n")
		fmt.Fprintf(os.Stderr, "  fieldinfo -demo\n")
		fmt.Fprintf(os.Stderr, "  fieldinfo -constants\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	consts := physics.Default()
	if *constFile != "" {
		var err error
		consts, err = physics.Load(*constFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *constants {
		printConstants(consts)
		return
	}

	p := sweepParams{
		height:   *height,
		oldField: spectral.Direction{Inclination: *inc, Declination: *dec},
		oldSrc:   spectral.Direction{Inclination: *inc, Declination: *dec},
		newField: spectral.Direction{Inclination: *newInc, Declination: *newDec},
		newSrc:   spectral.Direction{Inclination: *newInc, Declination: *newDec},
		rho:      *rho,
		mag:      *mag,
		azimuth:  *azimuth,
		consts:   consts,
	}

	if *demo {
		if err := runDemo(p, *spacing); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}
	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filters\n")
		os.Exit(1)
	}

	printResponses(entries, p, *spacing, *samples)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []filterEntry {
	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// thetaAt evaluates the directional factor for a wavenumber pointing along
// the given azimuth; the radial magnitude cancels out of the factor.
func thetaAt(dir spectral.Direction, azimuth float64) complex128 {
	mx, my, mz := dir.Cosines()
	a := azimuth * math.Pi / 180
	return complex(mz, mx*math.Cos(a)+my*math.Sin(a))
}

func continuationResponse(p sweepParams, k float64) float64 {
	return math.Exp(-p.height * k)
}

func reductionResponse(p sweepParams, k float64) float64 {
	f0 := thetaAt(p.oldField, p.azimuth)
	m0 := thetaAt(p.oldSrc, p.azimuth)
	f1 := thetaAt(p.newField, p.azimuth)
	m1 := thetaAt(p.newSrc, p.azimuth)
	return cmplx.Abs((f1 * m1) / (f0 * m0))
}

func pseudogravityResponse(p sweepParams, k float64) float64 {
	c := p.consts
	scale := c.G * p.rho * c.SI2MGal / (c.CM * p.mag * c.T2NT)
	f := thetaAt(p.oldField, p.azimuth)
	s := thetaAt(p.oldSrc, p.azimuth)
	return cmplx.Abs(complex(scale, 0) / (f * s * complex(k, 0)))
}

func printResponses(entries []filterEntry, p sweepParams, spacing float64, samples int) {
	if samples < 1 {
		samples = 8
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "k [rad/m]\tWavelength [m]"
	dashes := "---------\t--------------"
	for _, e := range entries {
		header += "\t" + e.name
		dashes += "\t" + strings.Repeat("-", len(e.name))
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintln(tw, dashes); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	nyquist := math.Pi / spacing
	for j := 1; j <= samples; j++ {
		k := float64(j) / float64(samples) * nyquist
		row := fmt.Sprintf("%.6g\t%.1f", k, 2*math.Pi/k)
		for _, e := range entries {
			row += fmt.Sprintf("\t%.6g", e.response(p, k))
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printConstants(c physics.Constants) {
	rows := []struct {
		name  string
		value float64
		unit  string
	}{
		{"g", c.G, "m3 kg-1 s-2"},
		{"si2mGal", c.SI2MGal, "mGal per m/s2"},
		{"t2nT", c.T2NT, "nT per T"},
		{"nT2T", c.NT2T, "T per nT"},
		{"cm", c.CM, "T m/A"},
		{"mu0", c.Mu0, "T m/A"},
		{"earthRadius", c.EarthRadius, "m"},
		{"earthMass", c.EarthMass, "kg"},
		{"meanDensity", c.MeanDensity, "g/cm3"},
		{"escapeVelocity", c.EscapeVelocity, "m/s"},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Constant\tValue\tUnit")
	fmt.Fprintln(tw, "--------\t-----\t----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%g\t%s\n", r.name, r.value, r.unit)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// runDemo builds a synthetic dipole anomaly, runs the transforms over it and
// prints per-stage grid statistics.
func runDemo(p sweepParams, spacing float64) error {
	const n = 32
	gen, err := synth.NewGenerator(n, n, spacing, spacing, synth.WithConstants(p.consts))
	if err != nil {
		return err
	}
	x, y := gen.PlaneGrid()

	center := spacing * n / 2
	data, err := gen.DipoleAnomaly(p.oldField, p.oldSrc, center, center, 5*spacing, 1e11)
	if err != nil {
		return err
	}

	up, err := filter.Continuation(x, y, data, p.height, filter.WithConstants(p.consts))
	if err != nil {
		return err
	}
	reduced, err := filter.Reduction(x, y, data, p.oldField, p.oldSrc, p.newField, p.newSrc)
	if err != nil {
		return err
	}
	pgrav, err := filter.Pseudogravity(x, y, data, p.oldField, p.oldSrc, p.rho, p.mag,
		filter.WithConstants(p.consts))
	if err != nil {
		return err
	}
	tilt, err := enhance.Tilt(x, y, data)
	if err != nil {
		return err
	}

	stages := []struct {
		name string
		g    *grid.Grid
	}{
		{"anomaly [nT]", data},
		{"continued [nT]", up.Real()},
		{"reduced [nT]", reduced.Real()},
		{"pseudogravity [mGal]", pgrav.Real()},
		{"tilt [rad]", tilt},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Stage\tMin\tMax\tMean\tStdDev\tRMS")
	fmt.Fprintln(tw, "-----\t---\t---\t----\t------\t---")
	for _, s := range stages {
		st := grid.Calculate(s.g)
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n",
			s.name, st.Min, st.Max, st.Mean, st.StdDev, st.RMS)
	}
	return tw.Flush()
}
