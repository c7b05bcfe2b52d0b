package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"alumni-connect-workers/internal/common/validation"
	"alumni-connect-workers/pkg/registry"
)

var registryPath string

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the activity registry",
	Long: `Lists or checks the activity registry describing each job worker.
Without --path the registry compiled into the binary is used.`,
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered task types",
	RunE:  runRegistryList,
}

var registryValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every activity's input schema and timeout",
	RunE:  runRegistryValidate,
}

func init() {
	registryCmd.PersistentFlags().StringVar(&registryPath, "path", "", "Path to a registry JSON file")

	registryCmd.AddCommand(registryListCmd)
	registryCmd.AddCommand(registryValidateCmd)
	rootCmd.AddCommand(registryCmd)
}

func loadRegistry() (*registry.ActivityRegistry, error) {
	if registryPath == "" {
		return registry.Default()
	}
	return registry.LoadRegistry(registryPath)
}

func runRegistryList(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	activities := append([]registry.Activity(nil), reg.Activities...)
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].TaskType < activities[j].TaskType
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "registry %s (%d activities)\n", reg.Version, len(activities))
	for _, a := range activities {
		fmt.Fprintf(out, "  %-26s %-14s %s\n", a.TaskType, a.Category, a.Timeout)
	}
	return nil
}

func runRegistryValidate(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	var problems []string
	for _, a := range reg.Activities {
		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				problems = append(problems, fmt.Sprintf("%s: bad timeout %q", a.TaskType, a.Timeout))
			}
		}
		if len(a.ErrorCodes) == 0 {
			problems = append(problems, fmt.Sprintf("%s: no error codes", a.TaskType))
		}
		if len(a.InputSchema) == 0 {
			problems = append(problems, fmt.Sprintf("%s: no input schema", a.TaskType))
		}
	}
	if _, err := validation.NewValidator(reg); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(cmd.ErrOrStderr(), p)
		}
		return fmt.Errorf("%d problem(s) in registry", len(problems))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "registry %s ok: %d activities\n", reg.Version, len(reg.Activities))
	return nil
}
