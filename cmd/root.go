package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/youssefmaged/snxml/internal/config"
	"github.com/youssefmaged/snxml/internal/logging"
	"github.com/youssefmaged/snxml/utils"
)

var (
	cfg    config.Config
	logger *slog.Logger

	logLevel  string
	logFormat string
	noColor   bool

	inputPath  string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "snxml",
	Short: "Social network XML toolkit",
	Long: `snxml loads social-network XML datasets, checks their integrity,
computes statistics and follow-graph metrics, and converts them
(pretty-print, minify, JSON export, compress).`,
	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load("")
		cfg = loaded

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		if noColor {
			cfg.Color = false
		}

		logger = logging.New(cfg.LogLevel, cfg.LogFormat)
		utils.SetColorEnabled(cfg.Color)

		if err != nil {
			logger.Warn("config file ignored", "error", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.Render(utils.CriticalStyle, "error occurred:"), err)
		os.Exit(1)
	}
}

// addInputFlag wires the -i/--input flag shared by every file-taking
// command, with .xml completion and an existence check before run.
func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the input XML file")
	cmd.MarkFlagRequired("input")
	cmd.RegisterFlagCompletionFunc("input", utils.CompleteFilesByExtension([]string{".xml"}))

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", inputPath)
		}
		return nil
	}
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the output file")
	cmd.MarkFlagRequired("output")
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shell completions",
	Run: func(cmd *cobra.Command, args []string) {
		shell := detectShell()
		if err := installCompletions(cmd.Root(), shell); err != nil {
			fmt.Printf("❌ Failed for %s: %v\n", shell, err)
			fmt.Println("Supported shells: bash, zsh, fish, powershell")
			return
		}
		fmt.Println("✅ Done! Restart your shell to enable tab completion.")
	},
}

func detectShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}
	shell := filepath.Base(os.Getenv("SHELL"))
	if shell == "" {
		return "bash"
	}
	return shell
}

func installCompletions(root *cobra.Command, shell string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	type completionConfig struct {
		dir     string
		file    string
		genFunc func(io.Writer) error
	}

	configs := map[string]completionConfig{
		"bash": {
			dir:     filepath.Join(home, ".local/share/bash-completion/completions"),
			file:    "snxml",
			genFunc: root.GenBashCompletion,
		},
		"zsh": {
			dir:     filepath.Join(home, ".zsh/completions"),
			file:    "_snxml",
			genFunc: root.GenZshCompletion,
		},
		"fish": {
			dir:     filepath.Join(home, ".config/fish/completions"),
			file:    "snxml.fish",
			genFunc: func(w io.Writer) error { return root.GenFishCompletion(w, true) },
		},
		"powershell": {
			dir:     home,
			file:    "snxml_completion.ps1",
			genFunc: root.GenPowerShellCompletionWithDesc,
		},
	}

	c, ok := configs[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	file, err := os.Create(filepath.Join(c.dir, c.file))
	if err != nil {
		return err
	}
	defer file.Close()

	return c.genFunc(file)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text|json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(installCmd)
}
