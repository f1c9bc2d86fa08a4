package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/taylorint/internal/config"
	"github.com/san-kum/taylorint/internal/dynamo"
	"github.com/san-kum/taylorint/internal/experiment"
	"github.com/san-kum/taylorint/internal/livetui"
	"github.com/san-kum/taylorint/internal/optim"
	"github.com/san-kum/taylorint/internal/storage"
	"github.com/san-kum/taylorint/internal/taylor"
	"github.com/san-kum/taylorint/internal/taylorfields"
	"github.com/spf13/cobra"
)

var (
	dataDir string

	// classical-baseline + Taylor shared init state flags
	theta, omega, theta2, omega2, pos, vel, x0, y0, z0 float64

	// Taylor engine flags
	order    int
	abstol   float64
	maxSteps int
	parseEqs bool
	t0, tmax float64
	trangeStr string
	evalAt    float64

	// classical-baseline flags
	dt                 float64
	duration           float64
	seed               int64
	controller         string
	kp, ki, kd, target float64

	preset     string
	configFile string

	// tune flags
	ordersStr  string
	abstolsStr string

	saveRun bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taylorint",
		Short: "a Taylor-series ODE integrator, with a classical-integrator baseline to measure it against",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".taylorint", "data directory")

	rootCmd.AddCommand(
		newRunCmd(),
		newDenseCmd(),
		newRangeCmd(),
		newCompareCmd(),
		newTuneCmd(),
		newTuneControllerCmd(),
		newEnsembleCmd(),
		newLiveCmd(),
		newPresetsCmd(),
		newListCmd(),
		newExportCSVCmd(),
		newExportJSONCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addTaylorFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&order, "order", 20, "series truncation order")
	cmd.Flags().Float64Var(&abstol, "abstol", 1e-20, "step-size absolute tolerance")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 500, "maximum accepted steps")
	cmd.Flags().BoolVar(&parseEqs, "parse-eqs", true, "use a specialized jet builder when one is registered")
	cmd.Flags().Float64Var(&t0, "t0", 0.0, "initial time")
	cmd.Flags().Float64Var(&tmax, "tmax", 10.0, "final time")
	cmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle / x0 component")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity / x1 component")
	cmd.Flags().Float64Var(&pos, "pos", 0.0, "initial position (spring_mass)")
	cmd.Flags().Float64Var(&vel, "vel", 0.0, "initial velocity (spring_mass)")
	cmd.Flags().Float64Var(&x0, "x", 1.0, "initial x (lorenz)")
	cmd.Flags().Float64Var(&y0, "y", 1.0, "initial y (lorenz)")
	cmd.Flags().Float64Var(&z0, "z", 1.0, "initial z (lorenz)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().BoolVar(&saveRun, "save", false, "persist the run under --data")
}

// resolveTaylorField loads the taylor.Config and initial state for a
// registered taylorfields model, applying preset/config-file/flag
// precedence the way runSimulation in the teacher's dynsim CLI did
// for the classical baseline.
func resolveTaylorField(cmd *cobra.Command, model string) (taylor.VectorField[float64], int, []float64, taylor.Config, error) {
	field, ok := taylorfields.Fields[model]
	if !ok {
		return nil, 0, nil, taylor.Config{}, fmt.Errorf("unknown model: %s (available: logistic, harmonic, pendulum, lorenz)", model)
	}
	dim := taylorfields.Dims[model]

	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return nil, 0, nil, taylor.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		order = cfg.Taylor.Order
		abstol = cfg.Taylor.AbsTol
		maxSteps = cfg.Taylor.MaxSteps
		parseEqs = cfg.Taylor.ParseEqs
		theta, omega = cfg.InitState.Theta, cfg.InitState.Omega
		pos, vel = cfg.InitState.Pos, cfg.InitState.Vel
		x0, y0, z0 = cfg.InitState.X, cfg.InitState.Y, cfg.InitState.Z
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, 0, nil, taylor.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("order") {
			order = cfg.Taylor.Order
		}
		if !cmd.Flags().Changed("abstol") {
			abstol = cfg.Taylor.AbsTol
		}
		if !cmd.Flags().Changed("max-steps") {
			maxSteps = cfg.Taylor.MaxSteps
		}
		if !cmd.Flags().Changed("parse-eqs") {
			parseEqs = cfg.Taylor.ParseEqs
		}
		if !cmd.Flags().Changed("theta") {
			theta = cfg.InitState.Theta
		}
		if !cmd.Flags().Changed("omega") {
			omega = cfg.InitState.Omega
		}
	}

	x00 := &config.Config{Model: model, InitState: config.InitStateConfig{
		Theta: theta, Omega: omega, Pos: pos, Vel: vel, X: x0, Y: y0, Z: z0,
	}}
	initState := x00.GetTaylorInitState()

	cfg := taylor.Config{
		T0: t0, TMax: tmax, Order: order, AbsTol: abstol, MaxSteps: maxSteps, ParseEqs: parseEqs,
	}
	return field, dim, initState, cfg, nil
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate a model in steps mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			field, dim, initState, cfg, err := resolveTaylorField(cmd, model)
			if err != nil {
				return err
			}
			registry := taylorfields.NewRegistry()
			res, err := taylor.Steps(field, model, registry, dim, initState, cfg, nil)
			if err != nil {
				return err
			}
			printResult(model, res.Times, res.States, res.Warning)
			if saveRun {
				return saveTaylorRun(model, cfg, res.Warning, res.Times, res.States)
			}
			return nil
		},
	}
	addTaylorFlags(cmd)
	return cmd
}

func newDenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dense [model]",
		Short: "integrate a model in dense mode and report interpolant round-trip error at each knot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			field, dim, initState, cfg, err := resolveTaylorField(cmd, model)
			if err != nil {
				return err
			}
			registry := taylorfields.NewRegistry()
			res, interp, err := taylor.Dense(field, model, registry, dim, initState, cfg, nil)
			if err != nil {
				return err
			}
			printResult(model, res.Times, res.States, res.Warning)
			printRoundTripError(res.Times, res.States, interp)
			if cmd.Flags().Changed("eval-at") {
				val := interp.Evaluate(evalAt)
				fmt.Printf("interpolant at t=%.6f: %v\n", evalAt, val)
			}
			return nil
		},
	}
	addTaylorFlags(cmd)
	cmd.Flags().Float64Var(&evalAt, "eval-at", 0, "evaluate the dense interpolant at this time")
	return cmd
}

// printRoundTripError re-evaluates the dense interpolant at every
// accepted knot and reports how far it lands from the state the
// driver recorded there, the way TestDenseConsistencyWithSteps checks
// the same property in internal/taylor.
func printRoundTripError(times []float64, states [][]float64, interp *taylor.Interpolant[float64]) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "knot\tt\troundtrip error")
	maxErr := 0.0
	for k := range times {
		got := interp.Evaluate(times[k])
		errNorm := 0.0
		for i, g := range got {
			d := g - states[k][i]
			errNorm += d * d
		}
		errNorm = math.Sqrt(errNorm)
		if errNorm > maxErr {
			maxErr = errNorm
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.3e\n", k, times[k], errNorm)
	}
	w.Flush()
	fmt.Printf("max roundtrip error: %.3e\n", maxErr)
}

func newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range [model]",
		Short: "integrate a model, sampling the solution at --trange points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			field, dim, initState, cfg, err := resolveTaylorField(cmd, model)
			if err != nil {
				return err
			}
			trange, err := parseTRange(trangeStr, cfg.T0, cfg.TMax)
			if err != nil {
				return err
			}
			registry := taylorfields.NewRegistry()
			states, warning, err := taylor.Range(field, model, registry, dim, initState, trange, cfg, nil)
			if err != nil {
				return err
			}
			printResult(model, trange, states, warning)
			return nil
		},
	}
	addTaylorFlags(cmd)
	cmd.Flags().StringVar(&trangeStr, "trange", "", "comma-separated sample times (defaults to 11 evenly spaced points from t0 to tmax)")
	return cmd
}

func parseTRange(spec string, t0, tmax float64) ([]float64, error) {
	if spec == "" {
		n := 10
		out := make([]float64, n+1)
		for i := 0; i <= n; i++ {
			out[i] = t0 + (tmax-t0)*float64(i)/float64(n)
		}
		return out, nil
	}
	parts := strings.Split(spec, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid trange entry %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func newCompareCmd() *cobra.Command {
	var integrators []string
	cmd := &cobra.Command{
		Use:   "compare [model] [integrator1] [integrator2] ...",
		Short: "compare classical integrators against the Taylor engine on the same model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			integrators = args[1:]
			if len(integrators) == 0 {
				integrators = []string{"euler", "rk4", "rk45"}
			}

			registry := experiment.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tSTEPS\tENERGY DRIFT")

			_, classicalErr := registry.GetModel(model)
			for _, name := range integrators {
				if classicalErr != nil {
					break
				}
				dyn, err := registry.GetModel(model)
				if err != nil {
					return err
				}
				integ, err := registry.GetIntegrator(name)
				if err != nil {
					return err
				}
				ctrl, err := registry.GetController(controller, map[string]float64{
					"dim": float64(dyn.ControlDim()), "kp": kp, "ki": ki, "kd": kd, "target": target,
				})
				if err != nil {
					return err
				}
				exp := experiment.New(experiment.Config{
					Model: model, Integrator: name, Controller: controller,
					InitState: (&config.Config{Model: model, InitState: config.InitStateConfig{
						Theta: theta, Omega: omega, Theta2: theta2, Omega2: omega2, Pos: pos, Vel: vel, X: x0, Y: y0, Z: z0,
					}}).GetInitState(),
					Dt: dt, Duration: duration, Seed: seed,
				})
				if err := exp.Setup(dyn, integ, ctrl, registry.DefaultMetrics(model)); err != nil {
					return err
				}
				result, err := exp.Run(context.Background())
				if err != nil {
					return err
				}
				drift := "n/a"
				if _, ok := dyn.(dynamo.Hamiltonian); ok {
					drift = fmt.Sprintf("%.3e", result.EnergyDrift)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, result.StepsTaken, drift)
			}

			if field, ok := taylorfields.Fields[model]; ok {
				dim := taylorfields.Dims[model]
				initState := (&config.Config{Model: model, InitState: config.InitStateConfig{
					Theta: theta, Omega: omega, X: x0, Y: y0, Z: z0,
				}}).GetTaylorInitState()
				tcfg := taylor.Config{T0: 0, TMax: duration, Order: order, AbsTol: abstol, MaxSteps: maxSteps, ParseEqs: parseEqs}
				res, err := taylor.Steps(field, model, taylorfields.NewRegistry(), dim, initState, tcfg, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "taylor(order=%d)\t%d\t%s\n", order, len(res.Times)-1, "n/a")
			}

			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().StringVar(&controller, "controller", "none", "controller")
	cmd.Flags().Float64Var(&kp, "kp", 10.0, "pid kp")
	cmd.Flags().Float64Var(&ki, "ki", 0.1, "pid ki")
	cmd.Flags().Float64Var(&kd, "kd", 5.0, "pid kd")
	cmd.Flags().Float64Var(&target, "target", 0.0, "pid target")
	cmd.Flags().IntVar(&order, "order", 20, "Taylor series order")
	cmd.Flags().Float64Var(&abstol, "abstol", 1e-20, "Taylor step-size tolerance")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 500, "Taylor max steps")
	cmd.Flags().BoolVar(&parseEqs, "parse-eqs", true, "use specialized Taylor builders")
	return cmd
}

func newTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune [model]",
		Short: "grid-search (order, abstol) for the fewest accepted steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			field, ok := taylorfields.Fields[model]
			if !ok {
				return fmt.Errorf("unknown model: %s", model)
			}
			dim := taylorfields.Dims[model]
			initState := (&config.Config{Model: model, InitState: config.InitStateConfig{
				Theta: theta, Omega: omega, X: x0, Y: y0, Z: z0,
			}}).GetTaylorInitState()

			orders, err := parseIntList(ordersStr)
			if err != nil {
				return err
			}
			abstols, err := parseFloatList(abstolsStr)
			if err != nil {
				return err
			}
			registry := taylorfields.NewRegistry()

			tune := optim.NewTaylorTune(orders, abstols)
			best, found := tune.Search(func(order int, abstol float64) (int, error) {
				cfg := taylor.Config{T0: t0, TMax: tmax, Order: order, AbsTol: abstol, MaxSteps: maxSteps, ParseEqs: parseEqs}
				res, err := taylor.Steps(field, model, registry, dim, initState, cfg, nil)
				if err != nil {
					return 0, err
				}
				if res.Warning != "" {
					return 0, fmt.Errorf("%s", res.Warning)
				}
				return len(res.Times) - 1, nil
			})
			if !found {
				return fmt.Errorf("no candidate converged within max-steps")
			}
			fmt.Printf("best: order=%d abstol=%.3g steps=%d\n", best.Order, best.AbsTol, best.StepsTaken)
			return nil
		},
	}
	addTaylorFlags(cmd)
	cmd.Flags().StringVar(&ordersStr, "orders", "10,15,20,25,30", "comma-separated candidate orders")
	cmd.Flags().StringVar(&abstolsStr, "abstols", "1e-12,1e-16,1e-20", "comma-separated candidate tolerances")
	return cmd
}

func newEnsembleCmd() *cobra.Command {
	var numRuns int
	var seedStart int64
	var integratorName string
	cmd := &cobra.Command{
		Use:   "ensemble [model]",
		Short: "run a classical-baseline model under N seeds and report metric spread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			registry := experiment.NewRegistry()
			dyn, err := registry.GetModel(model)
			if err != nil {
				return err
			}
			integ, err := registry.GetIntegrator(integratorName)
			if err != nil {
				return err
			}
			ctrl, err := registry.GetController(controller, map[string]float64{
				"dim": float64(dyn.ControlDim()), "kp": kp, "ki": ki, "kd": kd, "target": target,
			})
			if err != nil {
				return err
			}

			exp := experiment.New(experiment.Config{Model: model, Integrator: integratorName, Controller: controller, Dt: dt, Duration: duration, Seed: seedStart})
			if err := exp.Setup(dyn, integ, ctrl, registry.DefaultMetrics(model)); err != nil {
				return err
			}

			initState := (&config.Config{Model: model, InitState: config.InitStateConfig{
				Theta: theta, Omega: omega, Theta2: theta2, Omega2: omega2, Pos: pos, Vel: vel, X: x0, Y: y0, Z: z0,
			}}).GetInitState()

			simCfg := dynamo.DefaultConfig()
			simCfg.Dt = dt
			simCfg.Duration = duration

			ens := dynamo.NewEnsemble(exp.GetSimulator(), numRuns, seedStart)
			results, err := ens.Run(context.Background(), initState, simCfg)
			if err != nil {
				return err
			}

			drifts := make([]float64, len(results))
			for i, r := range results {
				drifts[i] = r.EnergyDrift
			}
			mean, stddev := meanStddev(drifts)
			fmt.Printf("%s over %d seeds starting at %d: energy drift mean=%.6e stddev=%.6e\n", model, numRuns, seedStart, mean, stddev)
			return nil
		},
	}
	cmd.Flags().IntVar(&numRuns, "runs", 8, "number of independent seeded runs")
	cmd.Flags().Int64Var(&seedStart, "seed-start", 0, "first seed; runs use seed-start+0..numRuns-1")
	cmd.Flags().StringVar(&integratorName, "integrator", "rk4", "classical integrator")
	cmd.Flags().StringVar(&controller, "controller", "none", "controller")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().Float64Var(&kp, "kp", 10.0, "pid kp")
	cmd.Flags().Float64Var(&ki, "ki", 0.1, "pid ki")
	cmd.Flags().Float64Var(&kd, "kd", 5.0, "pid kd")
	cmd.Flags().Float64Var(&target, "target", 0.0, "pid target")
	return cmd
}

func meanStddev(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, math.Sqrt(variance)
}

func newTuneControllerCmd() *cobra.Command {
	var kpRange, kiRange, kdRange, metricName, integratorName string
	cmd := &cobra.Command{
		Use:   "tune-controller [model]",
		Short: "grid-search PID gains against a classical baseline metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			kps, err := parseFloatList(kpRange)
			if err != nil {
				return fmt.Errorf("invalid --kp: %w", err)
			}
			kis, err := parseFloatList(kiRange)
			if err != nil {
				return fmt.Errorf("invalid --ki: %w", err)
			}
			kds, err := parseFloatList(kdRange)
			if err != nil {
				return fmt.Errorf("invalid --kd: %w", err)
			}

			registry := experiment.NewRegistry()
			if _, err := registry.GetModel(model); err != nil {
				return err
			}
			initState := (&config.Config{Model: model, InitState: config.InitStateConfig{
				Theta: theta, Omega: omega, Theta2: theta2, Omega2: omega2, Pos: pos, Vel: vel, X: x0, Y: y0, Z: z0,
			}}).GetInitState()

			search := optim.NewGridSearch([]string{"kp", "ki", "kd"}, [][]float64{kps, kis, kds})
			best, val, err := search.Search(context.Background(), func(params map[string]float64) (*experiment.Experiment, error) {
				dyn, err := registry.GetModel(model)
				if err != nil {
					return nil, err
				}
				integ, err := registry.GetIntegrator(integratorName)
				if err != nil {
					return nil, err
				}
				ctrl, err := registry.GetController("pid", map[string]float64{
					"dim": float64(dyn.ControlDim()), "kp": params["kp"], "ki": params["ki"], "kd": params["kd"], "target": target,
				})
				if err != nil {
					return nil, err
				}
				exp := experiment.New(experiment.Config{
					Model: model, Integrator: integratorName, Controller: "pid",
					InitState: initState, Dt: dt, Duration: duration, Seed: seed,
				})
				if err := exp.Setup(dyn, integ, ctrl, registry.DefaultMetrics(model)); err != nil {
					return nil, err
				}
				return exp, nil
			}, metricName)
			if err != nil {
				return err
			}
			if best == nil {
				return fmt.Errorf("no gain combination produced a metric value for %q on %s", metricName, model)
			}
			fmt.Printf("best kp=%.4f ki=%.4f kd=%.4f  %s=%.6f\n", best["kp"], best["ki"], best["kd"], metricName, val)
			return nil
		},
	}
	cmd.Flags().StringVar(&kpRange, "kp", "5,10,15,20", "comma-separated candidate kp values")
	cmd.Flags().StringVar(&kiRange, "ki", "0,0.1,0.5", "comma-separated candidate ki values")
	cmd.Flags().StringVar(&kdRange, "kd", "1,5,10", "comma-separated candidate kd values")
	cmd.Flags().StringVar(&metricName, "metric", "control_effort", "result metric to minimize")
	cmd.Flags().StringVar(&integratorName, "integrator", "rk4", "classical integrator to simulate with")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().Float64Var(&target, "target", 0.0, "pid target")
	return cmd
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live [model]",
		Short: "play back an integration frame by frame in a terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			field, dim, initState, cfg, err := resolveTaylorField(cmd, model)
			if err != nil {
				return err
			}
			registry := taylorfields.NewRegistry()
			res, err := taylor.Steps(field, model, registry, dim, initState, cfg, nil)
			if err != nil {
				return err
			}
			run := livetui.FromTaylorResult(model, res.Times, res.States)
			p := tea.NewProgram(livetui.NewModel(run))
			_, err = p.Run()
			return err
		},
	}
	addTaylorFlags(cmd)
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list runs stored under --data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.New(dataDir)
			runs, err := store.List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no stored runs")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "id\tmodel\ttimestamp\tintegrator\tcontroller")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Model, r.Timestamp.Format("2006-01-02 15:04:05"), r.Integrator, r.Controller)
			}
			return w.Flush()
		},
	}
}

func newExportCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a stored run's states as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.New(dataDir)
			states, times, err := store.LoadStates(args[0])
			if err != nil {
				return fmt.Errorf("run not found: %s: %w", args[0], err)
			}
			w := csv.NewWriter(os.Stdout)
			defer w.Flush()
			header := []string{"time"}
			if len(states) > 0 {
				for i := range states[0] {
					header = append(header, fmt.Sprintf("x%d", i))
				}
			}
			if err := w.Write(header); err != nil {
				return err
			}
			for i, t := range times {
				row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
				for _, v := range states[i] {
					row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newExportJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print a stored run's metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.New(dataDir)
			if tmeta, err := store.LoadTaylorMetadata(args[0]); err == nil && tmeta.Order > 0 {
				enc, _ := json.MarshalIndent(tmeta, "", "  ")
				fmt.Println(string(enc))
				return nil
			}
			meta, err := store.Load(args[0])
			if err != nil {
				return fmt.Errorf("run not found: %s", args[0])
			}
			enc, _ := json.MarshalIndent(meta, "", "  ")
			fmt.Println(string(enc))
			return nil
		},
	}
}

func saveTaylorRun(model string, cfg taylor.Config, warning string, times []float64, states [][]float64) error {
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.SaveTaylor(model, cfg.Order, cfg.AbsTol, cfg.MaxSteps, cfg.ParseEqs, warning, times, states)
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

func printResult(model string, times []float64, states [][]float64, warning string) {
	fmt.Printf("model: %s  steps: %d\n", model, len(times)-1)
	if warning != "" {
		fmt.Printf("warning: %s\n", warning)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "t\tstate")
	n := len(times)
	step := 1
	if n > 20 {
		step = n / 20
	}
	for i := 0; i < n; i += step {
		fmt.Fprintf(w, "%.6f\t%v\n", times[i], states[i])
	}
	if (n-1)%step != 0 {
		fmt.Fprintf(w, "%.6f\t%v\n", times[n-1], states[n-1])
	}
	w.Flush()

	if len(states) > 1 {
		series := make([]float64, len(states))
		for i, s := range states {
			series[i] = s[0]
		}
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(fmt.Sprintf("%s[0]", model))))
	}
}
