package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapconn/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
	"github.com/leapstack-labs/leapconn/pkg/driverreg"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ProbeOptions holds options for the probe command.
type ProbeOptions struct {
	Require bool
	Drivers bool
}

// ProbeResult reports whether one dialect found a usable driver.
type ProbeResult struct {
	Type   string `json:"type" yaml:"type"`
	Name   string `json:"name" yaml:"name"`
	Driver string `json:"driver" yaml:"driver"`
	Usable bool   `json:"usable" yaml:"usable"`
}

// ProbeOutput is the JSON/YAML form of the probe command's result.
type ProbeOutput struct {
	Results []ProbeResult `json:"results" yaml:"results"`
	Drivers []string      `json:"drivers,omitempty" yaml:"drivers,omitempty"`
}

// NewProbeCommand creates the probe command.
func NewProbeCommand() *cobra.Command {
	opts := &ProbeOptions{}
	cmd := &cobra.Command{
		Use:   "probe [type...]",
		Short: "Check which dialects have a usable driver",
		Long: `Check, for every registered dialect (or the given type codes), whether a
usable database driver is linked into this binary. A dialect is usable when
its native driver is registered or when any registered driver accepts its
probe URL.`,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return dialect.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Require, "require", false, "Fail if any probed dialect is unusable")
	cmd.Flags().BoolVar(&opts.Drivers, "drivers", false, "Also list the registered database/sql drivers")

	return cmd
}

func runProbe(cmd *cobra.Command, types []string, opts *ProbeOptions) error {
	cmdCtx := NewCommandContext(cmd)

	dialects, err := selectDialects(types)
	if err != nil {
		return err
	}

	env := driverreg.DefaultEnvironment(cmdCtx.Logger)
	results, err := probeDialects(cmd.Context(), dialects, env)
	if err != nil {
		return err
	}

	for _, res := range results {
		cmdCtx.Logger.Debug("probed dialect",
			"type", res.Type,
			"driver", res.Driver,
			"usable", res.Usable)
	}

	out := ProbeOutput{Results: results}
	if opts.Drivers {
		out.Drivers = driverreg.RegisteredNames(env.Drivers)
	}

	if err := renderProbe(cmdCtx.Renderer, out); err != nil {
		return err
	}

	if opts.Require {
		var missing []string
		for _, res := range results {
			if !res.Usable {
				missing = append(missing, res.Type)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("no usable driver for: %s", strings.Join(missing, ", "))
		}
	}
	return nil
}

// selectDialects resolves type codes, or returns every registered dialect.
func selectDialects(types []string) ([]core.Dialect, error) {
	if len(types) == 0 {
		return dialect.All(), nil
	}
	out := make([]core.Dialect, 0, len(types))
	for _, t := range types {
		d, err := dialect.ForType(sharedcfg.ResolveType(t))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// probeDialects runs IsUsable for each dialect concurrently. Results keep
// the order of dialects.
func probeDialects(ctx context.Context, dialects []core.Dialect, env core.Environment) ([]ProbeResult, error) {
	results := make([]ProbeResult, len(dialects))
	g, ctx := errgroup.WithContext(ctx)

	for i, d := range dialects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dt := d.DatabaseType()
			results[i] = ProbeResult{
				Type:   dt.ShortName,
				Name:   dt.Name,
				Driver: d.NativeDriver(),
				Usable: d.IsUsable(env),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderProbe(r *output.Renderer, out ProbeOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeYAML:
		return r.YAML(out)
	}

	for _, res := range out.Results {
		detail := "driver " + res.Driver + " available"
		if !res.Usable {
			detail = "no driver accepts " + res.Driver + " connections"
		}
		r.StatusLine(res.Usable, res.Type, detail)
	}
	if len(out.Drivers) > 0 {
		r.Println("")
		r.Println("Registered drivers: " + strings.Join(out.Drivers, ", "))
	}
	return nil
}
