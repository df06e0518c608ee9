package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lagmigrate-network/lagmigrate/pkg/probe"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the plan and the startup preconditions",
	Long: `Validate the plan file, open the SSH command channel, and detect a
working ping syntax for the monitor target. No configuration commands are
issued. Useful before scheduling an unattended run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan()
		if err != nil {
			return err
		}
		fmt.Printf("ok    plan %s validates\n", planPath)

		exec, err := connectDevice(p)
		if err != nil {
			fmt.Printf("FAIL  ssh %s: %v\n", p.Device.Host, err)
			return err
		}
		defer exec.Close()
		fmt.Printf("ok    ssh %s@%s\n", p.Device.User, p.Device.Host)

		// Detection results are per-run, so a fresh run re-detects.
		prober := probe.New(exec, p.Target, p.Commands.ProbeCandidates)
		template := prober.Detect(context.Background())
		if template == "" {
			fmt.Printf("warn  no working ping syntax for %s; a run would roll back after the overall timeout\n", p.Target)
			return nil
		}
		fmt.Printf("ok    probe syntax %q reaches %s\n", template, p.Target)
		return nil
	},
}
