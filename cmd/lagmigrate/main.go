// Lagmigrate - unattended LACP link-aggregation migration
//
// Converts a static or mismatched port-bonding configuration on a managed
// switch to LACP-negotiated bonding, watches reachability of a target
// address for a required stability period, and commits the change or rolls
// it back automatically:
//
//	backup -> apply -> monitor -> commit-or-rollback
//
// Write commands preview by default; use -x to touch the device:
//
//	lagmigrate run -f plan.yaml        # dry-run: show the command sequence
//	lagmigrate run -f plan.yaml -x     # execute the migration
//	lagmigrate check -f plan.yaml      # startup preconditions only
//	lagmigrate plan -f plan.yaml       # show the resolved plan
//
// The peer side of the aggregation is NOT configured by this tool; the run
// logs a pause point where the operator must configure it out-of-band.
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lagmigrate-network/lagmigrate/pkg/device"
	"github.com/lagmigrate-network/lagmigrate/pkg/plan"
	"github.com/lagmigrate-network/lagmigrate/pkg/settings"
	"github.com/lagmigrate-network/lagmigrate/pkg/util"
	"github.com/lagmigrate-network/lagmigrate/pkg/version"
)

var (
	// Global option flags
	planPath   string
	verbose    bool
	jsonOutput bool

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "lagmigrate",
	Short:         "Reversible static-to-LACP link aggregation migration",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Lagmigrate converts a switch's static port bonding to LACP, monitors
reachability of a target address, and commits or soft-rolls-back the change
based on whether the link stays stable.

Write commands preview by default; use -x to execute.

  lagmigrate run -f <plan.yaml> [-x]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Apply defaults from settings
		if planPath == "" {
			planPath = userSettings.DefaultPlan
		}

		// The run log is the operator-facing output, so info is the default.
		if verbose {
			util.SetLogLevel("debug")
		}
		if jsonOutput || userSettings.JSONLogs {
			util.SetJSONFormat()
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planPath, "plan", "f", "", "Migration plan file (or set default via: lagmigrate settings set plan <path>)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON log output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("lagmigrate dev build (use 'make build' for version info)")
		} else {
			fmt.Printf("lagmigrate %s (%s)\n", version.Version, version.GitCommit)
		}
	},
}

// loadPlan loads and validates the migration plan from -f or settings.
func loadPlan() (*plan.MigrationPlan, error) {
	if planPath == "" {
		return nil, fmt.Errorf("plan required: use -f <plan.yaml> or set a default with 'lagmigrate settings set plan <path>'")
	}
	return plan.Load(planPath)
}

// connectDevice opens the SSH command channel, prompting for the password
// when the plan file does not carry one. An unavailable channel is the one
// fatal startup condition: the run refuses to start without it.
func connectDevice(p *plan.MigrationPlan) (*device.SSHExecutor, error) {
	password := p.Device.Password
	if password == "" {
		fmt.Fprintf(os.Stderr, "Password for %s@%s: ", p.Device.User, p.Device.Host)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}

	exec, err := device.Dial(p.Device.Host, p.Device.Port, p.Device.User, password)
	if err != nil {
		return nil, util.NewPreconditionError("run", "device command channel available", err.Error())
	}
	return exec, nil
}

// isSettingsOrHelp checks whether cmd (or any ancestor) is a settings, help,
// or version command.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "settings":
			return true
		}
	}
	return false
}
