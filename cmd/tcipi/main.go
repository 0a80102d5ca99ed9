// Command tcipi scores a single set of environmental readings and prints the
// intensification potential index without starting the service.
//
// Usage:
//
//	go run ./cmd/tcipi \
//	  -sst 28 -shear 10 -humidity 65 -divergence 15 -ohc 75 \
//	  -size small -profile ohc
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/tcipi-service/internal/domain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tcipi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var obs domain.Observation
	fs.Float64Var(&obs.SST, "sst", 0, "sea surface temperature in °C")
	fs.Float64Var(&obs.WindShear, "shear", 0, "vertical wind shear in knots")
	fs.Float64Var(&obs.Humidity, "humidity", 0, "mid-level relative humidity in %")
	fs.Float64Var(&obs.UpperDivergence, "divergence", 0, "upper-level divergence")
	fs.Float64Var(&obs.OceanHeatContent, "ohc", 0, "ocean heat content in kJ/cm²")
	fs.Float64Var(&obs.LowerConvergence, "convergence", 0, "lower-level convergence")
	sizeName := fs.String("size", "none", "cyclone size: none, small, average, large")
	profileName := fs.String("profile", domain.ProfileOHC.Name, "index profile: ohc or convergence")
	asJSON := fs.Bool("json", false, "print the full assessment as JSON")
	legend := fs.Bool("categories", false, "print the category legend for the profile and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	profile, err := domain.ProfileByName(*profileName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	size, err := domain.ParseSizeClass(*sizeName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *legend {
		printLegend(stdout, profile)
		return 0
	}

	a := domain.Assess(profile, obs, size)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a); err != nil {
			fmt.Fprintf(stderr, "error: encode assessment: %v\n", err)
			return 1
		}
		return 0
	}

	printAssessment(stdout, a)
	return 0
}

func printAssessment(w io.Writer, a domain.Assessment) {
	s := a.SubScores
	fmt.Fprintf(w, "Profile: %s\n\n", a.Profile)
	fmt.Fprintf(w, "  %-24s %4.1f\n", domain.FactorSST.Label(), s.SST)
	fmt.Fprintf(w, "  %-24s %4.1f\n", domain.FactorShear.Label(), s.Shear)
	fmt.Fprintf(w, "  %-24s %4.1f\n", domain.FactorHumidity.Label(), s.Humidity)
	fmt.Fprintf(w, "  %-24s %4.1f\n", domain.FactorDivergence.Label(), s.Divergence)
	fmt.Fprintf(w, "  %-24s %4.1f\n", s.FifthFactor.Label(), s.Fifth)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Composite: %.2f\n", a.RawIndex)
	if a.Adjusted {
		fmt.Fprintf(w, "Pre-adjustment: %.1f (%s)\n", a.BaseIndex, a.BaseCategory)
		fmt.Fprintf(w, "Size adjustment (%s): %+.2f\n", a.Size, a.Adjustment)
	}
	fmt.Fprintf(w, "TCIPI: %.1f\n", a.Index)
	fmt.Fprintf(w, "Category: %s\n", a.Category)
}

func printLegend(w io.Writer, p domain.Profile) {
	cats := p.Categories()
	for i := len(cats) - 1; i >= 0; i-- {
		c := cats[i]
		fmt.Fprintf(w, "  %-10s %-8s %s\n", c.Category, c.Range, c.Description)
	}
}
