package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lagmigrate-network/lagmigrate/pkg/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the resolved migration plan",
	Long:  `Load the plan file, apply defaults, validate it, and print the resolved values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan()
		if err != nil {
			return err
		}
		printPlanSummary(p)
		return nil
	},
}

func printPlanSummary(p *plan.MigrationPlan) {
	port := p.Device.Port
	if port == 0 {
		port = 22
	}
	fmt.Printf("Plan: %s\n", planPath)
	fmt.Printf("  Device:          %s@%s:%d\n", p.Device.User, p.Device.Host, port)
	fmt.Printf("  Primary port:    %s\n", p.PrimaryPort)
	fmt.Printf("  Member ports:    %s\n", strings.Join(p.MemberPorts, ", "))
	fmt.Printf("  Algorithm:       %s\n", p.Algorithm)
	fmt.Printf("  Monitor target:  %s\n", p.Target)
	fmt.Printf("  Stability:       %s stable within %s, polling every %s\n",
		p.StableRequired(), p.OverallTimeout(), p.PollInterval())
	fmt.Printf("  Backup labels:   pre=%s post=%s\n", p.PreLabel, p.PostLabel)
}
