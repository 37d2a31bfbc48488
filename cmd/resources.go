package cmd

import (
	"fmt"

	"github.com/mindfulme/mindful/internal/resources"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List curated digital wellness resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		resType, _ := cmd.Flags().GetString("type")

		items := resources.Select(resources.Filter{
			Category: resources.ResourceCategory(category),
			Type:     resources.ResourceType(resType),
		})
		if len(items) == 0 {
			fmt.Println("No resources match the given filters.")
			return nil
		}

		for _, r := range items {
			fmt.Printf("%s [%s/%s]\n", r.Title, r.Type, r.Category)
			fmt.Printf("  %s\n", r.Description)
			if r.Author != "" {
				fmt.Printf("  by %s", r.Author)
				if r.Publisher != "" {
					fmt.Printf(", %s", r.Publisher)
				}
				if r.Year > 0 {
					fmt.Printf(" (%d)", r.Year)
				}
				fmt.Println()
			}
			fmt.Printf("  %s\n\n", r.URL)
		}
		return nil
	},
}

func init() {
	resourcesCmd.Flags().StringP("category", "c", "", "Filter by category (research, self-help, tools, support)")
	resourcesCmd.Flags().StringP("type", "t", "", "Filter by type (article, app, book, organization)")
}
