package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the display theme",
	Long: `Theme prints the stored preference and the resolved value. With an
argument it stores a new preference in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	store := theme.Open(configPersister{}, systemTheme())

	if len(args) == 1 {
		p := theme.Preference(args[0])
		if !p.Valid() {
			return fmt.Errorf("unknown theme %q (want light, dark or system)", args[0])
		}
		if err := store.Set(p); err != nil {
			return fmt.Errorf("persist theme: %w", err)
		}
	}

	fmt.Printf("Preference: %s\n", store.Preference())
	fmt.Printf("Resolved:   %s\n", store.Resolved())
	return nil
}

// systemTheme reports the ambient preference. There is no portable terminal
// probe, so the config key system_theme stands in for it; light is the fallback.
func systemTheme() theme.Resolved {
	if v := cfg.GetString("system_theme"); v == string(theme.Dark) {
		return theme.ResolvedDark
	}
	return theme.ResolvedLight
}
