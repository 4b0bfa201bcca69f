// Command dashctl prints the sales dashboard views in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/okian/salesboard/internal/dashclient"
)

// Flag and environment keys.
const (
	keyURL      = "url"
	keyTimeout  = "timeout"
	keyClientID = "client-id"
	keyDark     = "dark"
	keyOutput   = "output"
	keyState    = "state"

	envPrefix = "DASHCTL"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(viper.New()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:          "dashctl",
		Short:        "Show sales dashboard KPIs, history, roster and theme",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			out := v.GetString(keyOutput)
			if out != outputTable && out != outputJSON {
				return fmt.Errorf("invalid --output %q: want %s or %s", out, outputTable, outputJSON)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyURL, dashclient.DefaultBaseURL, "Base URL of the dashboard service (env DASHCTL_URL)")
	pf.Duration(keyTimeout, dashclient.DefaultTimeout, "HTTP request timeout (env DASHCTL_TIMEOUT)")
	pf.String(keyClientID, "", "Client id sent as the preference cookie (env DASHCTL_CLIENT_ID)")
	pf.Bool(keyDark, false, "Report a dark OS color scheme (env DASHCTL_DARK)")
	pf.StringP(keyOutput, "o", outputTable, "Output format: table or json")
	pf.String(keyState, defaultStatePath(), "File remembering the issued client id (env DASHCTL_STATE)")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(pf)

	state := func() stateFile { return stateFile{path: v.GetString(keyState)} }
	client := func() *dashclient.Client {
		id := v.GetString(keyClientID)
		if id == "" {
			id = state().clientID()
		}
		return dashclient.New(v.GetString(keyURL),
			dashclient.WithTimeout(v.GetDuration(keyTimeout)),
			dashclient.WithClientID("", id),
			dashclient.WithPrefersDark(v.GetBool(keyDark)),
		)
	}
	remember := func(c *dashclient.Client) error {
		if v.GetString(keyClientID) != "" {
			return nil
		}
		st := state()
		if id := c.ClientID(); id != "" && id != st.clientID() {
			return st.saveClientID(id)
		}
		return nil
	}
	output := func(cmd *cobra.Command) *printer {
		return newPrinter(cmd.OutOrStdout(), v.GetString(keyOutput))
	}

	root.AddCommand(
		newKPIsCmd(client, output),
		newSeriesCmd(client, output),
		newRosterCmd(client, output),
		newThemeCmd(client, remember, output),
	)
	return root
}

type (
	clientFactory  func() *dashclient.Client
	clientSaver    func(*dashclient.Client) error
	printerFactory func(*cobra.Command) *printer
)

func newKPIsCmd(client clientFactory, out printerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Show the headline KPI cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := client().KPIs(cmd.Context())
			if err != nil {
				return err
			}
			return out(cmd).kpis(cards)
		},
	}
}

func newSeriesCmd(client clientFactory, out printerFactory) *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Show the daily history of one metric",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pts, err := client().Series(cmd.Context(), metric)
			if err != nil {
				return err
			}
			return out(cmd).series(metric, pts)
		},
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", "Sales", "Metric to show: Sales, Profit or Customers")
	return cmd
}

func newRosterCmd(client clientFactory, out printerFactory) *cobra.Command {
	var (
		status string
		names  []string
	)
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Show salespeople filtered by status and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := client().Roster(cmd.Context(), status, names)
			if err != nil {
				return err
			}
			return out(cmd).roster(rows)
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "all", "Status: all, overperforming, average or underperforming")
	cmd.Flags().StringSliceVarP(&names, "name", "n", nil, "Salesperson to include; repeat or comma-separate. None selects everyone")
	return cmd
}

func newThemeCmd(client clientFactory, remember clientSaver, out printerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the active color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client()
			state, err := c.Theme(cmd.Context())
			if err != nil {
				return err
			}
			if err := remember(c); err != nil {
				return err
			}
			return out(cmd).theme(state)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip and store the color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client()
			state, err := c.ToggleTheme(cmd.Context())
			if err != nil {
				return err
			}
			if err := remember(c); err != nil {
				return err
			}
			return out(cmd).theme(state)
		},
	})
	return cmd
}

const stateClientID = "client_id"

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dashctl", "state.yaml")
}

// stateFile keeps the server-issued client id between invocations.
// An empty path disables it.
type stateFile struct {
	path string
}

func (s stateFile) clientID() string {
	if s.path == "" {
		return ""
	}
	st := viper.New()
	st.SetConfigFile(s.path)
	if err := st.ReadInConfig(); err != nil {
		return ""
	}
	return st.GetString(stateClientID)
}

func (s stateFile) saveClientID(id string) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("save client id: %w", err)
	}
	st := viper.New()
	st.Set(stateClientID, id)
	if err := st.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("save client id: %w", err)
	}
	return nil
}
