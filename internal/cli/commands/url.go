package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/leapconn/internal/cli/config"
	"github.com/leapstack-labs/leapconn/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
	"github.com/spf13/cobra"
)

// URLOptions holds options for the url command.
type URLOptions struct {
	NoValidate bool
	Override   config.TargetConfig
}

// URLOutput is the JSON/YAML form of the url command's result.
type URLOutput struct {
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Type   string `json:"type" yaml:"type"`
	Access string `json:"access" yaml:"access"`
	URL    string `json:"url" yaml:"url"`
}

// NewURLCommand creates the url command.
func NewURLCommand() *cobra.Command {
	opts := &URLOptions{}
	cmd := &cobra.Command{
		Use:   "url [target]",
		Short: "Print the connection URL for a target",
		Long: `Build the connection URL for a configured target.

Without an argument the default_target from leapconn.yaml is used. Flags
override individual target fields; with --type alone no config is needed:

  leapconn url --type snowflake --host acme.snowflakecomputing.com \
      --database ANALYTICS --warehouse COMPUTE_WH

When --type names a different product than the configured target, only the
host, database and credentials carry over; port, access and options fall back
to the new product's defaults unless given as flags.

Extra options are appended in key order using the dialect's separators.
The connection is validated first unless --no-validate is given.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runURL(cmd, name, opts)
		},
	}

	addTargetOverrideFlags(cmd, &opts.Override)
	cmd.Flags().BoolVar(&opts.NoValidate, "no-validate", false, "Print the URL even if the connection is incomplete")

	return cmd
}

func runURL(cmd *cobra.Command, name string, opts *URLOptions) error {
	cmdCtx := NewCommandContext(cmd)

	target, err := resolveTarget(cmdCtx.Cfg, name, &opts.Override)
	if err != nil {
		return err
	}
	d, err := dialect.ForType(target.Type)
	if err != nil {
		return err
	}
	conn, err := sharedcfg.ToConnection(target)
	if err != nil {
		return err
	}

	if !opts.NoValidate {
		if err := dialect.ValidateConnection(d, conn); err != nil {
			return err
		}
	}

	url := dialect.BuildURL(d, conn)
	cmdCtx.Logger.Debug("built connection url",
		"target", name,
		"type", target.Type,
		"access", conn.AccessType.String())

	out := URLOutput{
		Target: name,
		Type:   d.DatabaseType().ShortName,
		Access: lower.String(conn.AccessType.String()),
		URL:    url,
	}
	switch cmdCtx.Renderer.EffectiveMode() {
	case output.ModeJSON:
		return cmdCtx.Renderer.JSON(out)
	case output.ModeYAML:
		return cmdCtx.Renderer.YAML(out)
	}
	cmdCtx.Renderer.Println(url)
	return nil
}

// addTargetOverrideFlags registers flags that override single target fields.
func addTargetOverrideFlags(cmd *cobra.Command, t *config.TargetConfig) {
	f := cmd.Flags()
	f.StringVar(&t.Type, "type", "", "Dialect type code (e.g. snowflake, postgresql)")
	f.StringVar(&t.Access, "access", "", "Access type: native, odbc, jndi")
	f.StringVar(&t.Host, "host", "", "Hostname")
	f.IntVar(&t.Port, "port", 0, "Port (defaults to the dialect's default port)")
	f.StringVar(&t.Database, "database", "", "Database name or file path")
	f.StringVar(&t.User, "user", "", "User name")
	f.StringVar(&t.Warehouse, "warehouse", "", "Snowflake warehouse")
	f.StringToStringVar(&t.Options, "option", nil, "Extra URL option key=value (repeatable)")

	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("access", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"native", "odbc", "jndi"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// resolveTarget looks up a configured target and applies flag overrides.
// When only overrides are given and no target is configured, the overrides
// alone describe the target.
func resolveTarget(cfg *config.Config, name string, override *config.TargetConfig) (*config.TargetConfig, error) {
	base, err := cfg.Target(name)
	if err != nil {
		if name != "" || override.Type == "" || !errors.Is(err, sharedcfg.ErrUnknownTarget) {
			return nil, err
		}
		base = nil
	}
	if base != nil && override.Type != "" && sharedcfg.ResolveType(override.Type) != sharedcfg.ResolveType(base.Type) {
		base = productNeutral(base)
	}

	merged := config.MergeTargetConfig(base, cloneTarget(override))
	if merged.Type == "" {
		return nil, fmt.Errorf("target has no type")
	}
	sharedcfg.ApplyTargetDefaults(merged)
	if err := sharedcfg.ValidateTarget(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// productNeutral keeps only the fields that mean the same for every product.
// Port, access, options and product attributes belong to the configured type.
func productNeutral(t *config.TargetConfig) *config.TargetConfig {
	return &config.TargetConfig{
		Type:     t.Type,
		Host:     t.Host,
		Database: t.Database,
		User:     t.User,
		Password: t.Password,
	}
}

func cloneTarget(t *config.TargetConfig) *config.TargetConfig {
	c := *t
	if t.Options != nil {
		c.Options = make(map[string]string, len(t.Options))
		for k, v := range t.Options {
			c.Options[k] = v
		}
	}
	return &c
}

// completeTargets offers configured target names. Completion runs without
// the root's config loading, so the project file is read here.
func completeTargets(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg.TargetNames(), cobra.ShellCompDirectiveNoFileComp
	}

	project, err := loadProjectConfig(cmd)
	if err != nil || project == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return sharedcfg.TargetNames(project.Targets), cobra.ShellCompDirectiveNoFileComp
}

// loadProjectConfig reads the file named by --config, or the nearest
// leapconn.yaml above the working directory. It returns nil, nil when there is none.
func loadProjectConfig(cmd *cobra.Command) (*sharedcfg.ProjectConfig, error) {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return sharedcfg.LoadFile(f.Value.String())
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root := sharedcfg.FindProjectRoot(cwd)
	if root == "" {
		return nil, nil
	}
	return sharedcfg.LoadFromDir(root)
}
