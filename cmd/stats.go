package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/social"
	"github.com/youssefmaged/snxml/internal/xmldoc"
	"github.com/youssefmaged/snxml/utils"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show user statistics for the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := xmldoc.ParseFile(inputPath)
		if err != nil {
			return err
		}
		doc, err := social.Normalize(root)
		if err != nil {
			return err
		}

		summary, err := social.Summarize(doc)
		if err != nil {
			return err
		}
		stats, err := social.ComputeStatistics(doc)
		if err != nil {
			return err
		}

		fmt.Println(utils.Render(utils.TitleStyle, "📊 Social Network Statistics"))
		fmt.Println(strings.Repeat("═", 40))

		fmt.Println("\nTOTALS")
		fmt.Println(strings.Repeat("─", 30))
		fmt.Printf("Users:      %d\n", stats.TotalUsers)
		fmt.Printf("Posts:      %d\n", stats.TotalPosts)
		fmt.Printf("Followers:  %d\n", stats.TotalFollowers)
		fmt.Printf("Following:  %d\n", stats.TotalFollowing)

		fmt.Println("\nAVERAGES")
		fmt.Println(strings.Repeat("─", 30))
		fmt.Printf("Age:            %.1f\n", stats.AvgAge)
		fmt.Printf("Followers/user: %.1f\n", stats.AvgFollowers)
		fmt.Printf("Posts/user:     %.1f\n", stats.AvgPosts)

		fmt.Printf("\nSample user: %s (%s)\n",
			utils.Render(utils.InfoStyle, summary.SampleID), summary.SampleName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addInputFlag(statsCmd)
}
