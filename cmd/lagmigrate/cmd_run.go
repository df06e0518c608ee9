package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lagmigrate-network/lagmigrate/pkg/migrate"
	"github.com/lagmigrate-network/lagmigrate/pkg/plan"
	"github.com/lagmigrate-network/lagmigrate/pkg/util"
)

var executeMode bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the migration (dry-run by default, -x to execute)",
	Long: `Run the LACP migration described by the plan file.

Without -x this is a dry run: the resolved plan and the exact command
sequences (forward path and rollback path) are printed and the device is
never contacted.

With -x the tool connects to the device, saves a named pre-change backup,
converts the aggregation to LACP, monitors target reachability for the
required stability window, and then either commits with a named save or
soft-rolls-back to static aggregation without saving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan()
		if err != nil {
			return err
		}

		if !executeMode {
			printDryRun(p)
			return nil
		}

		exec, err := connectDevice(p)
		if err != nil {
			return err
		}
		defer exec.Close()

		orch := migrate.New(p, exec)
		outcome, err := orch.Run(context.Background())
		if err != nil {
			return err
		}
		if outcome != migrate.OutcomeCommitted {
			return fmt.Errorf("migration rolled back: %s did not stay reachable for %s within %s",
				p.Target, p.StableRequired(), p.OverallTimeout())
		}
		util.Infof("Migration committed")
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&executeMode, "execute", "x", false, "Execute on the device (default is dry-run)")
}

func printDryRun(p *plan.MigrationPlan) {
	printPlanSummary(p)

	forward, rollback := migrate.Preview(p)

	fmt.Println("\nForward path (backup, apply, commit):")
	for _, c := range forward {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println("\nRollback path (on monitor failure):")
	for _, c := range rollback {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println("\nDry run - no device contacted. Use -x to execute.")
}
