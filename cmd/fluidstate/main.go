package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/fluidstate/internal/config"
	"github.com/san-kum/fluidstate/internal/fluidstate"
	"github.com/san-kum/fluidstate/internal/fluidsystems"
	"github.com/san-kum/fluidstate/internal/probe"
	"github.com/san-kum/fluidstate/internal/registry"
	"github.com/san-kum/fluidstate/internal/viz"
)

var (
	configFile  string
	preset      string
	temperature float64
	tFrom       float64
	tTo         float64
	steps       int
	strict      bool
)

// main registers the commands and flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	setupLogging()

	rootCmd := &cobra.Command{
		Use:           "fluidstate",
		Short:         "inspect fluid-state snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list fluid systems",
		RunE:  listSystems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a fluid system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	queryCmd := &cobra.Command{
		Use:   "query [system...]",
		Short: "query every quantity of one or more snapshots",
		RunE:  querySnapshot,
	}
	addSnapshotFlags(queryCmd)
	queryCmd.Flags().BoolVar(&strict, "strict", false, "fail if any query is not implemented")

	sweepCmd := &cobra.Command{
		Use:   "sweep [system]",
		Short: "plot fugacities against temperature",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepTemperature,
	}
	addSnapshotFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&tFrom, "from", 250, "start temperature [K]")
	sweepCmd.Flags().Float64Var(&tTo, "to", 400, "end temperature [K]")
	sweepCmd.Flags().IntVar(&steps, "steps", 60, "number of samples")

	exploreCmd := &cobra.Command{
		Use:   "explore [system...]",
		Short: "browse snapshots interactively",
		RunE:  explore,
	}

	rootCmd.AddCommand(systemsCmd, presetsCmd, queryCmd, sweepCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// setupLogging configures zerolog from LOG_LEVEL, writing to stderr.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func addSnapshotFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "snapshot file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset snapshot")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "override temperature [K]")
}

// loadSnapshot resolves the snapshot of one system from, in increasing
// precedence, the defaults, a preset, a config file and the --temperature
// flag. A config file given with --preset is read on top of the preset.
func loadSnapshot(cmd *cobra.Command, system string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	explicit := system != ""
	if !explicit {
		system = cfg.System
	}

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		cfg = p
	}

	if configFile != "" {
		var loaded *config.Config
		var err error
		if preset != "" {
			loaded, err = config.LoadOver(configFile, cfg)
		} else {
			loaded, err = config.Load(configFile)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if explicit && system != cfg.System {
			return nil, fmt.Errorf("config file describes %s, not %s", cfg.System, system)
		}
	}

	if preset == "" && configFile == "" && system != cfg.System {
		names := config.ListPresets(system)
		if len(names) == 0 {
			return nil, fmt.Errorf("no snapshot for %s: pass --config or --preset", system)
		}
		cfg = config.GetPreset(system, names[0])
		log.Info().Str("system", system).Str("preset", names[0]).Msg("using first preset")
	}

	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = temperature
	}
	return cfg, nil
}

// buildStates loads and builds the snapshot of each system.
func buildStates(cmd *cobra.Command, r *registry.Registry, systems []string) ([]probe.Named, error) {
	if len(systems) == 0 {
		systems = []string{""}
	}

	states := make([]probe.Named, 0, len(systems))
	for _, system := range systems {
		cfg, err := loadSnapshot(cmd, system)
		if err != nil {
			return nil, err
		}
		fs, err := r.Build(cfg)
		if err != nil {
			return nil, err
		}
		states = append(states, probe.Named{Name: cfg.System, State: fs})
	}
	return states, nil
}

// missingQueries collects the queries each report lacks, keyed by report name.
func missingQueries(reports []*probe.Report) map[string][]string {
	missing := make(map[string][]string)
	for _, report := range reports {
		if m := report.Missing(); len(m) > 0 {
			missing[report.Name] = m
		}
	}
	return missing
}

func listSystems(cmd *cobra.Command, args []string) error {
	r := registry.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tPHASES\tCOMPONENTS\tSOLVENTS\tPRESETS\tDESCRIPTION")
	for _, name := range r.ListSystems() {
		c, err := r.Counts(name)
		if err != nil {
			return err
		}
		info, err := r.Info(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			name, c.Phases, c.Components, c.Solvents, len(config.ListPresets(name)), info)
	}
	return w.Flush()
}

func querySnapshot(cmd *cobra.Command, args []string) error {
	states, err := buildStates(cmd, registry.NewRegistry(), args)
	if err != nil {
		return err
	}

	reports := probe.ProbeAll(states)
	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(viz.RenderReport(report))
	}

	if missing := missingQueries(reports); strict && len(missing) > 0 {
		return fmt.Errorf("%w: %v", fluidstate.ErrNotImplemented, missing)
	}
	return nil
}

func sweepTemperature(cmd *cobra.Command, args []string) error {
	system := "ideal_gas"
	if len(args) > 0 {
		system = args[0]
	}
	cfg, err := loadSnapshot(cmd, system)
	if err != nil {
		return err
	}

	r := registry.NewRegistry()
	at := func(T float64) (fluidstate.FluidState[float64], error) {
		c := cfg.Clone()
		c.Temperature = T
		return r.Build(c)
	}

	log.Debug().Float64("from", tFrom).Float64("to", tTo).Int("steps", steps).Msg("sweeping temperature")
	points, err := probe.Sweep(at, tFrom, tTo, steps)
	if err != nil {
		return err
	}

	var names []string
	switch cfg.System {
	case "ideal_gas":
		names = []string{"N2", "O2", "CO2"}
	case "water_air":
		names = []string{"H2O", "air"}
	}
	fmt.Print(viz.PlotSweep(points, names))

	pressures := make([]float64, len(points))
	for i, pt := range points {
		pressures[i] = pt.Pressure
	}
	fmt.Printf("phase pressure  %s  %.6g .. %.6g Pa\n",
		viz.SparklineChart(pressures, 40), pressures[0], pressures[len(pressures)-1])
	return nil
}

func explore(cmd *cobra.Command, args []string) error {
	r := registry.NewRegistry()
	if len(args) == 0 {
		args = r.ListSystems()
	}

	var states []probe.Named
	for _, system := range args {
		for _, name := range config.ListPresets(system) {
			fs, err := r.Build(config.GetPreset(system, name))
			if err != nil {
				return err
			}
			states = append(states, probe.Named{Name: system + "/" + name, State: fs})
		}
	}
	if len(states) == 0 {
		states = append(states, probe.Named{Name: "air", State: fluidsystems.NewAir(config.DefaultTemperature, config.DefaultPressure)})
	}
	sel, err := viz.RunExplorer(states...)
	if err != nil {
		return err
	}
	log.Debug().Str("state", sel.Name).Int("phase", sel.Phase).Int("component", sel.Comp).Msg("explorer closed")
	return nil
}
