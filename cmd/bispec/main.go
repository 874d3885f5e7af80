// Command bispec estimates the polarization spectrum of a synthesized
// bivariate signal and renders it in the terminal.
//
// Examples:
//
//	bispec periodogram -n 256 --freq 0.05
//	bispec multitaper --bandwidth 4 --signal mixed
//	bispec multitaper --config scenario.yaml
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-bispec/spectral"
)

var (
	cfgFile  string
	scenario = defaultScenario()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "bispec",
		Short:         "polarization spectral analysis of bivariate signals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML scenario file")
	rootCmd.PersistentFlags().IntVarP(&scenario.Samples, "samples", "n", scenario.Samples, "signal length")
	rootCmd.PersistentFlags().Float64Var(&scenario.Dt, "dt", scenario.Dt, "sampling step")
	rootCmd.PersistentFlags().StringVar(&scenario.Signal, "signal", scenario.Signal, "signal type: tone, noise, or mixed")
	rootCmd.PersistentFlags().Float64Var(&scenario.Freq, "freq", scenario.Freq, "tone frequency in cycles per sample interval")
	rootCmd.PersistentFlags().Float64Var(&scenario.Amplitude, "amp", scenario.Amplitude, "tone amplitude")
	rootCmd.PersistentFlags().Float64Var(&scenario.Chi, "chi", scenario.Chi, "tone ellipticity (rad, pi/4 = circular)")
	rootCmd.PersistentFlags().Float64Var(&scenario.Theta, "theta", scenario.Theta, "tone orientation (rad)")
	rootCmd.PersistentFlags().Int64Var(&scenario.Seed, "seed", scenario.Seed, "noise seed")
	rootCmd.PersistentFlags().Float64Var(&scenario.NoiseAmp, "noise-amp", scenario.NoiseAmp, "noise amplitude")
	rootCmd.PersistentFlags().Float64Var(&scenario.Tolerance, "tol", scenario.Tolerance, "Stokes normalization tolerance")
	rootCmd.PersistentFlags().IntVar(&scenario.PlotHeight, "height", scenario.PlotHeight, "plot height in rows")

	periodogramCmd := &cobra.Command{
		Use:   "periodogram",
		Short: "single-realization quaternion periodogram",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(cmd)
			if err != nil {
				return err
			}

			t, x, err := s.synthesize()
			if err != nil {
				return err
			}

			p, err := spectral.ComputePeriodogram(t, x)
			if err != nil {
				return err
			}

			p.Normalize(s.Tolerance)
			report(&p.Estimate, s, 0)

			return nil
		},
	}

	multitaperCmd := &cobra.Command{
		Use:   "multitaper",
		Short: "multitaper estimate over a Slepian taper bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(cmd)
			if err != nil {
				return err
			}

			t, x, err := s.synthesize()
			if err != nil {
				return err
			}

			m, err := spectral.ComputeMultitaper(t, x, s.Bandwidth)
			if err != nil {
				return err
			}

			m.Normalize(s.Tolerance)
			report(&m.Estimate, s, m.Bank.Count())

			return nil
		},
	}
	multitaperCmd.Flags().Float64VarP(&scenario.Bandwidth, "bandwidth", "b", scenario.Bandwidth, "time-bandwidth product")

	rootCmd.AddCommand(periodogramCmd, multitaperCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bispec:", err)
		os.Exit(1)
	}
}

// resolveScenario merges the YAML scenario (if any) with explicitly set
// flags, flags winning.
func resolveScenario(cmd *cobra.Command) (Scenario, error) {
	s := scenario

	if cfgFile != "" {
		loaded, err := loadScenario(cfgFile)
		if err != nil {
			return s, err
		}

		flagged := s
		s = loaded

		for name, dst := range map[string]func(){
			"samples":   func() { s.Samples = flagged.Samples },
			"dt":        func() { s.Dt = flagged.Dt },
			"signal":    func() { s.Signal = flagged.Signal },
			"freq":      func() { s.Freq = flagged.Freq },
			"amp":       func() { s.Amplitude = flagged.Amplitude },
			"chi":       func() { s.Chi = flagged.Chi },
			"theta":     func() { s.Theta = flagged.Theta },
			"seed":      func() { s.Seed = flagged.Seed },
			"noise-amp": func() { s.NoiseAmp = flagged.NoiseAmp },
			"tol":       func() { s.Tolerance = flagged.Tolerance },
			"height":    func() { s.PlotHeight = flagged.PlotHeight },
			"bandwidth": func() { s.Bandwidth = flagged.Bandwidth },
		} {
			if cmd.Flags().Changed(name) || cmd.InheritedFlags().Changed(name) {
				dst()
			}
		}
	}

	return s, s.validate()
}

func report(e *spectral.Estimate, s Scenario, taperCount int) {
	half := len(e.F) / 2
	if half < 1 {
		half = len(e.F)
	}

	peak := 0
	for k := 1; k < half; k++ {
		if e.S0[k] > e.S0[peak] {
			peak = k
		}
	}

	meanPhi := 0.0
	for k := 0; k < half; k++ {
		meanPhi += e.Phi[k]
	}
	meanPhi /= float64(half)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "signal\t%s\n", s.Signal)
	fmt.Fprintf(w, "samples\t%d\n", len(e.Signal))
	fmt.Fprintf(w, "dt\t%g\n", s.Dt)
	if taperCount > 0 {
		fmt.Fprintf(w, "tapers\t%d\n", taperCount)
	}
	fmt.Fprintf(w, "peak bin\t%d\n", peak)
	fmt.Fprintf(w, "peak frequency\t%g\n", e.F[peak])
	fmt.Fprintf(w, "peak S0\t%g\n", e.S0[peak])
	fmt.Fprintf(w, "Phi at peak\t%.3f\n", e.Phi[peak])
	fmt.Fprintf(w, "mean Phi\t%.3f\n", meanPhi)
	w.Flush()

	fmt.Println()
	fmt.Println("log10 S0, positive frequencies:")
	fmt.Println(plot(logS0(e.S0[:half]), s.PlotHeight))
	fmt.Println()
	fmt.Println("degree of polarization Phi, positive frequencies:")
	fmt.Println(plot(e.Phi[:half], s.PlotHeight))
}

func logS0(s0 []float64) []float64 {
	out := make([]float64, len(s0))
	for i, v := range s0 {
		if v > 0 {
			out[i] = math.Log10(v)
		} else {
			out[i] = math.Inf(-1)
		}
	}

	// asciigraph cannot render -Inf; clamp empty bins to the visible floor.
	floor := 0.0
	for _, v := range out {
		if !math.IsInf(v, -1) && v < floor {
			floor = v
		}
	}
	for i, v := range out {
		if math.IsInf(v, -1) {
			out[i] = floor - 1
		}
	}

	return out
}

func plot(data []float64, height int) string {
	if height < 1 {
		height = 1
	}

	return strings.TrimRight(asciigraph.Plot(data, asciigraph.Height(height)), "\n")
}
