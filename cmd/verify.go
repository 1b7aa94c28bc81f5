package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/xmldoc"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the structure of the XML provided",
	RunE: func(cmd *cobra.Command, args []string) error {
		details, err := xmldoc.VerifyFile(inputPath)
		if err != nil {
			return err
		}
		logger.Debug("verified document", "path", inputPath)
		for _, d := range details {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addInputFlag(verifyCmd)
}
