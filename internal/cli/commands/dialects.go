package commands

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapconn/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapconn/internal/config"
	"github.com/leapstack-labs/leapconn/pkg/adapter"
	"github.com/leapstack-labs/leapconn/pkg/core"
	"github.com/leapstack-labs/leapconn/pkg/dialect"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DialectInfo is the serializable description of a registered dialect.
type DialectInfo struct {
	Type                string   `json:"type" yaml:"type"`
	Name                string   `json:"name" yaml:"name"`
	AccessTypes         []string `json:"access_types" yaml:"access_types"`
	DefaultPort         int      `json:"default_port" yaml:"default_port"`
	URLPrefix           string   `json:"url_prefix" yaml:"url_prefix"`
	NativeDriver        string   `json:"native_driver" yaml:"native_driver"`
	Libraries           []string `json:"libraries" yaml:"libraries"`
	RequiredAttributes  []string `json:"required_attributes,omitempty" yaml:"required_attributes,omitempty"`
	ExtraOptionsHelpURL string   `json:"extra_options_help_url,omitempty" yaml:"extra_options_help_url,omitempty"`
	Connectable         bool     `json:"connectable" yaml:"connectable"`
}

var lower = cases.Lower(language.Und)

// describeDialect builds a DialectInfo from a dialect's static metadata.
func describeDialect(d core.Dialect) DialectInfo {
	dt := d.DatabaseType()
	access := make([]string, len(dt.AccessTypes))
	for i, a := range dt.AccessTypes {
		access[i] = lower.String(a.String())
	}
	return DialectInfo{
		Type:                dt.ShortName,
		Name:                dt.Name,
		AccessTypes:         access,
		DefaultPort:         dt.DefaultPort,
		URLPrefix:           d.NativeURLPrefix(),
		NativeDriver:        d.NativeDriver(),
		Libraries:           d.UsedLibraries(),
		RequiredAttributes:  d.RequiredAttributes(),
		ExtraOptionsHelpURL: dt.ExtraOptionsHelpURL,
		Connectable:         adapter.IsRegistered(dt.ShortName),
	}
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects [type]",
		Short: "List registered connection dialects",
		Long: `List every registered connection dialect with its default port,
URL prefix and native driver. Pass a type code to show one dialect in detail.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dialect.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if len(args) == 1 {
				d, err := dialect.ForType(sharedcfg.ResolveType(args[0]))
				if err != nil {
					return err
				}
				return showDialect(cmdCtx.Renderer, describeDialect(d))
			}
			return listDialects(cmdCtx.Renderer)
		},
	}
}

func listDialects(r *output.Renderer) error {
	all := dialect.All()
	infos := make([]DialectInfo, len(all))
	for i, d := range all {
		infos[i] = describeDialect(d)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeYAML:
		return r.YAML(infos)
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{
			info.Type,
			info.Name,
			strings.Join(info.AccessTypes, ", "),
			portString(info.DefaultPort),
			info.URLPrefix,
			info.NativeDriver,
			yesNo(info.Connectable),
		}
	}
	r.Table([]string{"Type", "Name", "Access", "Port", "URL Prefix", "Driver", "Connect"}, rows)
	return nil
}

func showDialect(r *output.Renderer, info DialectInfo) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeYAML:
		return r.YAML(info)
	case output.ModeMarkdown:
		r.Println("# " + info.Name)
		r.Println("")
	default:
		r.Println(r.Styles().Header.Render(info.Name))
	}

	r.Table([]string{"Property", "Value"}, [][]string{
		{"Type", info.Type},
		{"Access types", strings.Join(info.AccessTypes, ", ")},
		{"Default port", portString(info.DefaultPort)},
		{"URL prefix", info.URLPrefix},
		{"Native driver", info.NativeDriver},
		{"Libraries", strings.Join(info.Libraries, ", ")},
		{"Required attributes", strings.Join(info.RequiredAttributes, ", ")},
		{"Extra options help", info.ExtraOptionsHelpURL},
		{"Connect support", yesNo(info.Connectable)},
	})
	return nil
}

func portString(port int) string {
	if port <= 0 {
		return "-"
	}
	return strconv.Itoa(port)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

