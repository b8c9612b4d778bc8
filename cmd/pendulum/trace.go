package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendulum/internal/analysis"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/integrators"
	"github.com/san-kum/pendulum/internal/metrics"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/sim"
)

var header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// runTrace integrates cfg.Trace.Steps fixed steps and writes a summary
// followed by plots of θ and ω to w.
func runTrace(ctx context.Context, cfg *config.Config, w io.Writer, logger *log.Logger) error {
	integ, err := integrators.New(cfg.Physics.Integrator)
	if err != nil {
		return err
	}
	p := &physics.Pendulum{Length: cfg.Physics.Length, Gravity: cfg.Physics.Gravity}

	s := sim.New(p, integ)
	s.AddMetric(metrics.NewEnergy(p))
	s.AddMetric(metrics.NewEnergyDrift(p))

	logger.Debug("trace", "integrator", cfg.Physics.Integrator, "dt", cfg.Trace.Dt, "steps", cfg.Trace.Steps)
	res, err := s.Run(ctx, cfg.InitState(), dynamo.Config{
		Dt:            cfg.Trace.Dt,
		Steps:         cfg.Trace.Steps,
		ValidateState: true,
	})
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	final := res.States[len(res.States)-1]
	summary := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("INTEGRATOR", "STEPS", "T", "θ", "ω", "MEAN E", "MAX DRIFT", "FINAL DRIFT").
		Row(
			cfg.Physics.Integrator,
			strconv.Itoa(res.StepsTaken),
			fmt.Sprintf("%.3fs", res.Times[len(res.Times)-1]),
			fmt.Sprintf("%.4f", final[0]),
			fmt.Sprintf("%.4f", final[1]),
			fmt.Sprintf("%.4f", res.Metrics["energy"]),
			fmt.Sprintf("%.3e", res.Metrics["energy_drift"]),
			fmt.Sprintf("%.3e", res.EnergyDrift),
		)
	fmt.Fprintln(w, summary.String())

	theta, omega := component(res.States, 0), component(res.States, 1)
	fmt.Fprintln(w, oscillation(p, cfg, res.Times, theta, omega))

	for _, plot := range []struct {
		caption string
		data    []float64
	}{{"θ (rad)", theta}, {"ω (rad/s)", omega}} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, asciigraph.Plot(plot.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(plot.caption),
		))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header.Render("phase portrait θ-ω"))
	fmt.Fprintln(w, analysis.PhasePortrait(theta, omega, 80, 20))
	return nil
}

// oscillation compares the measured period and dominant frequency with the
// exact period for the initial amplitude.
func oscillation(p *physics.Pendulum, cfg *config.Config, times, theta, omega []float64) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("PERIOD", "EXACT", "SMALL ANGLE", "DOMINANT FREQ")

	measured := "n/a"
	if T, err := analysis.Period(times, omega); err == nil {
		measured = fmt.Sprintf("%.4fs", T)
	}
	exact := "n/a"
	if cfg.Physics.Omega0 == 0 {
		if T := p.Period(cfg.Physics.Theta0); !math.IsInf(T, 0) {
			exact = fmt.Sprintf("%.4fs", T)
		}
	}
	t.Row(
		measured,
		exact,
		fmt.Sprintf("%.4fs", p.SmallAnglePeriod()),
		fmt.Sprintf("%.4fHz", analysis.DominantFrequency(theta, cfg.Trace.Dt)),
	)
	return t.String()
}

func component(states []dynamo.State, i int) []float64 {
	out := make([]float64, len(states))
	for j, x := range states {
		out[j] = x[i]
	}
	return out
}

func presetTable() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle()
		}).
		Headers("PRESET", "θ0", "ω0", "MAX STEP")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		maxStep := "off"
		if p.MaxStep > 0 {
			maxStep = fmt.Sprintf("%.4fs", p.MaxStep)
		}
		t.Row(name, fmt.Sprintf("%.4f", p.Theta0), fmt.Sprintf("%.2f", p.Omega0), maxStep)
	}
	return t.String()
}
