package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/archive"
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress XML file to specified destination",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := archive.Compress(inputPath, outputPath); err != nil {
			return err
		}
		fmt.Printf("File compressed successfully. File saved: %s\n", outputPath)
		return nil
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "Decompress XML file to specified destination",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := archive.Decompress(inputPath, outputPath); err != nil {
			return err
		}
		fmt.Printf("File decompressed successfully. File saved: %s\n", outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
	addInputFlag(compressCmd)
	addOutputFlag(compressCmd)

	rootCmd.AddCommand(decompressCmd)
	addInputFlag(decompressCmd)
	addOutputFlag(decompressCmd)
}
