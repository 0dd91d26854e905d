// Package main provides the CLI entrypoint for foldergen.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/davidrencse/Folder-Generator/internal/app"
	"github.com/davidrencse/Folder-Generator/internal/config"
	"github.com/davidrencse/Folder-Generator/internal/generator"
	"github.com/davidrencse/Folder-Generator/internal/model"
	"github.com/davidrencse/Folder-Generator/internal/prompt"
	"github.com/davidrencse/Folder-Generator/internal/report"
	"github.com/davidrencse/Folder-Generator/internal/topic"
	"github.com/davidrencse/Folder-Generator/internal/tui"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "foldergen",
		Short:         "Create uniquely named study folders from a topic word list",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerateCmd,
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(fileCfg)

	answers, err := askAnswers(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.DefaultCount)
	if err != nil {
		return err
	}

	gen := generator.New(generator.WithSuffixes(cfg.Suffixes))
	runner := app.NewRunner(cfg, gen, cmd.OutOrStdout(), cmd.ErrOrStderr())
	result, err := runner.Run(answers)
	if err != nil {
		return err
	}

	if err := report.Summary(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if cfg.ShowNames {
		if err := report.Names(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// askAnswers uses the Bubble Tea form on a terminal and plain line prompts
// when input or output is redirected.
func askAnswers(in io.Reader, out io.Writer, defaultCount int) (model.Answers, error) {
	if isTerminal(in) && isTerminal(out) {
		return tui.Run(in, out, topic.All(), defaultCount)
	}
	return prompt.Asker{In: in, Out: out}.Ask(topic.All(), defaultCount)
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func resolveConfig(fileCfg config.FileConfig) model.Config {
	cfg := model.Config{DefaultCount: app.DefaultCount}
	gen := fileCfg.Generate
	if gen.Count != nil {
		if *gen.Count > 0 {
			cfg.DefaultCount = *gen.Count
		} else {
			logErrf("ignoring config count %d; using %d\n", *gen.Count, app.DefaultCount)
		}
	}
	if gen.WordListDir != nil {
		cfg.WordListDir = strings.TrimSpace(*gen.WordListDir)
	}
	cfg.Suffixes = gen.Suffixes
	if gen.ShowNames != nil {
		cfg.ShowNames = *gen.ShowNames
	}
	return cfg
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics and their word list files",
		Args:  cobra.NoArgs,
		RunE:  runTopicsCmd,
	}
}

func runTopicsCmd(cmd *cobra.Command, _ []string) error {
	for _, t := range topic.All() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", prompt.MenuLine(t), t.File); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# foldergen configuration
# Uncomment a value to enable it.

[generate]
# count = %d                # Default folder count offered by the prompt
# wordlist-dir = "%s"       # Directory holding the topic CSV files
# suffixes = [%s]
# show-names = false        # Print every generated name after the summary
`,
		app.DefaultCount,
		filepath.ToSlash(config.DefaultWordListDir()),
		quoteList(generator.DefaultSuffixes),
	)
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
