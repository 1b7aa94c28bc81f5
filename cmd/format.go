package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/xmldoc"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format the XML file to the standard format",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := xmldoc.ParseFile(inputPath)
		if err != nil {
			return err
		}
		pretty := xmldoc.Format(root, cfg.Indent)
		if err := os.WriteFile(outputPath, []byte(pretty), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Printf("XML file formatted successfully. File saved: %s\n", outputPath)
		return nil
	},
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Strip whitespace from the XML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := xmldoc.ParseFile(inputPath)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, []byte(xmldoc.Minify(root)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Printf("XML file minified successfully. File saved: %s\n", outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	addInputFlag(formatCmd)
	addOutputFlag(formatCmd)

	rootCmd.AddCommand(miniCmd)
	addInputFlag(miniCmd)
	addOutputFlag(miniCmd)
}
