package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/graph"
	"github.com/youssefmaged/snxml/internal/social"
	"github.com/youssefmaged/snxml/internal/xmldoc"
	"github.com/youssefmaged/snxml/utils"
)

var topCount int

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the follow graph and show degree metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := xmldoc.ParseFile(inputPath)
		if err != nil {
			return err
		}
		doc, err := social.Normalize(root)
		if err != nil {
			return err
		}
		g, err := graph.Build(doc)
		if err != nil {
			return err
		}
		m := g.CalculateMetrics()
		logger.Debug("built graph", "nodes", m.NumNodes, "edges", m.NumEdges)

		fmt.Println(utils.Render(utils.TitleStyle, "🕸  Network Analysis"))
		fmt.Println(strings.Repeat("═", 40))

		fmt.Printf("\nNodes:          %d\n", m.NumNodes)
		fmt.Printf("Edges:          %d\n", m.NumEdges)
		fmt.Printf("Density:        %.4f\n", m.Density)
		fmt.Printf("Avg in-degree:  %.2f\n", m.AvgInDegree)
		fmt.Printf("Avg out-degree: %.2f\n", m.AvgOutDegree)

		fmt.Printf("\n⭐ Most influential: %s (%s) with %d followers\n",
			utils.Render(utils.GoodStyle, m.MostInfluential.Name),
			m.MostInfluential.ID, m.MostInfluential.Degree)
		fmt.Printf("🚀 Most active:      %s (%s) following %d\n",
			utils.Render(utils.GoodStyle, m.MostActive.Name),
			m.MostActive.ID, m.MostActive.Degree)

		printRanked("TOP BY FOLLOWERS", g.Ranked(m.InDegree))
		printRanked("TOP BY FOLLOWING", g.Ranked(m.OutDegree))
		return nil
	},
}

func printRanked(title string, ranks []graph.NodeRank) {
	fmt.Println()
	fmt.Println(utils.Render(utils.MutedStyle, title))
	fmt.Println(strings.Repeat("─", 30))
	for i, r := range ranks {
		if i >= topCount {
			break
		}
		fmt.Printf("%2d. %-20s %d\n", i+1, r.Name, r.Degree)
	}
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addInputFlag(graphCmd)
	graphCmd.Flags().IntVar(&topCount, "top", 5, "How many nodes to list per ranking")
}
