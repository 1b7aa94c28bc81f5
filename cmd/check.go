package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/social"
	"github.com/youssefmaged/snxml/internal/xmldoc"
	"github.com/youssefmaged/snxml/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the dataset for integrity issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := xmldoc.ParseFile(inputPath)
		if err != nil {
			return err
		}

		errs, warnings, err := social.Validate(root)
		if err != nil {
			return err
		}

		fmt.Println(utils.Render(utils.TitleStyle, "🔍 Integrity Check"))

		if len(errs) == 0 && len(warnings) == 0 {
			fmt.Println(utils.Render(utils.GoodStyle, "✅ No issues found"))
			return nil
		}

		if len(errs) > 0 {
			fmt.Printf("\n%s\n", utils.Render(utils.CriticalStyle, fmt.Sprintf("Errors (%d)", len(errs))))
			for _, e := range errs {
				fmt.Printf("  ✗ %s\n", utils.Render(utils.CriticalStyle, e))
			}
		}
		if len(warnings) > 0 {
			fmt.Printf("\n%s\n", utils.Render(utils.WarningStyle, fmt.Sprintf("Warnings (%d)", len(warnings))))
			for _, w := range warnings {
				fmt.Printf("  ⚠ %s\n", utils.Render(utils.WarningStyle, w))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addInputFlag(checkCmd)
}
