// Package app coordinates a folder generation run.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davidrencse/Folder-Generator/internal/config"
	"github.com/davidrencse/Folder-Generator/internal/folders"
	"github.com/davidrencse/Folder-Generator/internal/generator"
	"github.com/davidrencse/Folder-Generator/internal/model"
	"github.com/davidrencse/Folder-Generator/internal/wordlist"
)

// DefaultCount is the folder count used when none is given.
const DefaultCount = 88

// Runner turns prompt answers into folders on disk.
type Runner struct {
	cfg    model.Config
	gen    *generator.Generator
	out    io.Writer
	errOut io.Writer
}

// NewRunner creates a Runner. Progress goes to out, warnings to errOut.
func NewRunner(cfg model.Config, gen *generator.Generator, out, errOut io.Writer) *Runner {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = DefaultCount
	}
	return &Runner{cfg: cfg, gen: gen, out: out, errOut: errOut}
}

// Run loads the topic's words, generates names and creates the folders.
func (r *Runner) Run(answers model.Answers) (model.Result, error) {
	if _, err := fmt.Fprintf(r.out, "Generating folder set for %s...\n", answers.Topic.Label); err != nil {
		return model.Result{}, err
	}

	count, warn := ParseCount(answers.CountInput, r.cfg.DefaultCount)
	if warn {
		logWarnf(r.errOut, "Invalid number; using default %d.\n", r.cfg.DefaultCount)
	}

	path := ResolveWordListPath(r.cfg.WordListDir, answers.Topic.File)
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to load word list: %w", err)
	}

	names, err := r.gen.Names(words, count)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to generate names: %w", err)
	}

	return folders.Create(folders.TargetDir(answers.BaseDir), names)
}

// ParseCount interprets the folder count answer. Blank input yields def; input
// that is not an integer yields def and reports warn.
func ParseCount(raw string, def int) (n int, warn bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, true
	}
	return n, false
}

// ResolveWordListPath locates a topic CSV. A configured directory wins; else
// the working directory is tried before the XDG word list directory.
func ResolveWordListPath(dir, file string) string {
	if dir != "" {
		return filepath.Join(dir, file)
	}
	if _, err := os.Stat(file); err == nil {
		return file
	}
	fallback := filepath.Join(config.DefaultWordListDir(), file)
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return file
}

func logWarnf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort warning output.
		_ = err
	}
}
