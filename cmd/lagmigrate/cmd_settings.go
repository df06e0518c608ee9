package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lagmigrate-network/lagmigrate/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long:  `View or modify persistent lagmigrate settings stored in ~/.lagmigrate/settings.json`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())
		if s.DefaultPlan != "" {
			fmt.Printf("  default plan:  %s\n", s.DefaultPlan)
		} else {
			fmt.Printf("  default plan:  (not set)\n")
		}
		fmt.Printf("  json logs:     %v\n", s.JSONLogs)
		return nil
	},
}

var settingsSetPlanCmd = &cobra.Command{
	Use:   "plan <path>",
	Short: "Set the default plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		s, err := settings.Load()
		if err != nil {
			return err
		}
		s.SetDefaultPlan(abs)
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("Default plan set to %s\n", abs)
		return nil
	},
}

var settingsSetJSONCmd = &cobra.Command{
	Use:   "json-logs <true|false>",
	Short: "Enable or disable JSON log output by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enable bool
		switch args[0] {
		case "true", "on":
			enable = true
		case "false", "off":
			enable = false
		default:
			return fmt.Errorf("expected true or false, got %q", args[0])
		}
		s, err := settings.Load()
		if err != nil {
			return err
		}
		s.JSONLogs = enable
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("JSON logs: %v\n", enable)
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		s.Clear()
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a setting",
}

func init() {
	settingsSetCmd.AddCommand(settingsSetPlanCmd)
	settingsSetCmd.AddCommand(settingsSetJSONCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
}
