// Package model defines shared data structures.
package model

// Topic maps a menu entry to its CSV word list.
type Topic struct {
	Key   string
	Label string
	File  string
}

// Config defines settings for a single generation run.
type Config struct {
	DefaultCount int
	WordListDir  string
	Suffixes     []string
	ShowNames    bool
}

// Answers holds the raw values collected by the interactive prompts.
type Answers struct {
	Topic      Topic
	BaseDir    string
	CountInput string
}

// Folder records what happened to one generated name.
type Folder struct {
	Name    string
	Created bool
}

// Result summarizes the folders produced by a run, in generation order.
type Result struct {
	TargetDir string
	Requested int
	Folders   []Folder
}

// Created returns the names that were made by the run.
func (r Result) Created() []string {
	return r.names(true)
}

// Skipped returns the names that already existed.
func (r Result) Skipped() []string {
	return r.names(false)
}

func (r Result) names(created bool) []string {
	var out []string
	for _, f := range r.Folders {
		if f.Created == created {
			out = append(out, f.Name)
		}
	}
	return out
}
