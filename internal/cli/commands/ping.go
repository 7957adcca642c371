package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/leapstack-labs/leapconn/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/spf13/cobra"
)

// PingOptions holds options for the ping command.
type PingOptions struct {
	Timeout time.Duration
}

// PingOutput is the JSON/YAML form of the ping command's result.
type PingOutput struct {
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	Type      string `json:"type" yaml:"type"`
	Name      string `json:"name" yaml:"name"`
	Driver    string `json:"driver" yaml:"driver"`
	ElapsedMS int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	opts := &PingOptions{}
	cmd := &cobra.Command{
		Use:   "ping [target]",
		Short: "Open a connection to a target and ping it",
		Long: `Open a real connection to a configured target through its Go driver and
ping it. Only dialects with a linked connection adapter can be pinged.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runPing(cmd, name, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Connection timeout")

	return cmd
}

func runPing(cmd *cobra.Command, name string, opts *PingOptions) error {
	cmdCtx := NewCommandContext(cmd)

	target, err := cmdCtx.Cfg.Target(name)
	if err != nil {
		return err
	}
	conn, err := sharedcfg.ToConnection(target)
	if err != nil {
		return err
	}

	adp, err := adapter.NewAdapter(target.Type, cmdCtx.Logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := adp.Connect(ctx, conn); err != nil {
		return fmt.Errorf("ping %s: %w", target.Type, err)
	}
	defer func() { _ = adp.Close() }()

	if err := adp.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", target.Type, err)
	}
	elapsed := time.Since(start)

	out := PingOutput{
		Target:    name,
		Type:      target.Type,
		Name:      adp.Dialect().DatabaseType().Name,
		Driver:    adp.DriverName(),
		ElapsedMS: elapsed.Milliseconds(),
	}
	switch cmdCtx.Renderer.EffectiveMode() {
	case output.ModeJSON:
		return cmdCtx.Renderer.JSON(out)
	case output.ModeYAML:
		return cmdCtx.Renderer.YAML(out)
	}
	cmdCtx.Renderer.StatusLine(true, target.Type, fmt.Sprintf("%s reachable via %s in %s", out.Name, out.Driver, elapsed.Round(time.Millisecond)))
	return nil
}
