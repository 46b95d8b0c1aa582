package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/naming"
	"github.com/tuck-sh/tuck/pkg/repo"
	"github.com/tuck-sh/tuck/pkg/targets"
)

var groupsCategory string

var groupsCmd = &cobra.Command{
	Use:   "groups [group...]",
	Short: "List groups and the platform variant that applies",
	Long: `Lists the groups set up under each category of the repository. When a
group has platform-conditioned variants, the variant that applies on the
current platform is marked; variants for other platforms are dimmed.

With group name arguments, reports which of them have no corresponding
directory instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		categories, err := selectedCategories()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			return reportMissing(settings, categories, args)
		}

		for _, category := range categories {
			if err := printCategory(settings, category); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	groupsCmd.Flags().StringVarP(&groupsCategory, "category", "c", "",
		"Restrict to one category (Configs, Hooks or Secrets)")
}

func selectedCategories() ([]repo.Category, error) {
	if groupsCategory == "" {
		return repo.Categories(), nil
	}
	for _, category := range repo.Categories() {
		if strings.EqualFold(groupsCategory, string(category)) {
			return []repo.Category{category}, nil
		}
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown category %q", groupsCategory)
}

func reportMissing(settings config.Settings, categories []repo.Category, groups []string) error {
	for _, group := range groups {
		if err := naming.ValidateGroupName(group); err != nil && group != "*" {
			return err
		}
	}

	var missingEverywhere []string
	for _, group := range groups {
		found := false
		for _, category := range categories {
			if len(repo.MissingGroups(settings, profile, category, []string{group})) == 0 {
				found = true
				break
			}
		}
		if !found {
			missingEverywhere = append(missingEverywhere, group)
		}
	}

	if len(missingEverywhere) == 0 {
		fmt.Println(render(selectedStyle, "All requested groups exist."))
		return nil
	}
	return errors.Newf(errors.ErrNotFound,
		"no directory for group(s): %s", strings.Join(missingEverywhere, ", "))
}

func printCategory(settings config.Settings, category repo.Category) error {
	groups, err := repo.Groups(settings, profile, category)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrCategoryNotSetup) {
			return nil
		}
		return err
	}

	fmt.Println(render(headerStyle, string(category)+":"))

	// Group variants by their base name so platform-conditioned variants
	// of one logical group print on one line.
	variants := make(map[string][]string)
	var bases []string
	for _, group := range groups {
		base := targets.Strip(group)
		if _, seen := variants[base]; !seen {
			bases = append(bases, base)
		}
		variants[base] = append(variants[base], group)
	}
	sort.Strings(bases)

	for _, base := range bases {
		chosen, ok := targets.BestVariant(variants[base], settings.OS, settings.Family)
		switch {
		case !ok:
			fmt.Printf("  %s\n", render(dimStyle, base+" (no variant for this platform)"))
		case chosen == base:
			fmt.Printf("  %s\n", base)
		default:
			fmt.Printf("  %s %s\n", base, render(selectedStyle, "("+chosen+")"))
		}
	}
	return nil
}
