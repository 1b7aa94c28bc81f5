package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/social"
	"github.com/youssefmaged/snxml/internal/xmldoc"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Transform the XML file to a JSON format file",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := xmldoc.ParseFile(inputPath)
		if err != nil {
			return err
		}
		doc, err := social.Normalize(root)
		if err != nil {
			return err
		}
		logger.Debug("normalized document", "users", len(doc.Order), "edges", len(doc.Edges))

		summary, err := social.WriteJSON(doc, outputPath)
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jsonCmd)
	addInputFlag(jsonCmd)
	addOutputFlag(jsonCmd)
}
