// Package prompt collects run answers from a line-oriented console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davidrencse/Folder-Generator/internal/model"
	"github.com/davidrencse/Folder-Generator/internal/topic"
)

// Prompt text shared by the line and terminal front ends.
const (
	MenuHeader    = "Choose a topic below to generate folders from:"
	TopicPrompt   = "Enter a topic number: "
	BaseDirPrompt = `Base directory (e.g., E:\comp architecture): `
)

var (
	// ErrInvalidSelection is returned for a menu choice outside the topic keys.
	ErrInvalidSelection = errors.New("invalid selection; choose 1-5")
	// ErrNoBaseDir is returned when the base directory answer is blank.
	ErrNoBaseDir = errors.New("no base directory provided")
)

// CountPrompt renders the folder count question.
func CountPrompt(defaultCount int) string {
	return fmt.Sprintf("How many folders? (default %d): ", defaultCount)
}

// MenuLine renders one topic entry.
func MenuLine(t model.Topic) string {
	return fmt.Sprintf("%s. %s", t.Key, t.Label)
}

// CleanBaseDir trims whitespace and surrounding double quotes, as left by
// shells and "copy as path" actions.
func CleanBaseDir(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"`)
}

// SelectTopic resolves a menu answer or returns ErrInvalidSelection.
func SelectTopic(answer string) (model.Topic, error) {
	t, ok := topic.Lookup(answer)
	if !ok {
		return model.Topic{}, ErrInvalidSelection
	}
	return t, nil
}

// Asker prompts on Out and reads answers line by line from In.
type Asker struct {
	In  io.Reader
	Out io.Writer
}

// Ask prints the topic menu and collects the answers for one run.
func (a Asker) Ask(topics []model.Topic, defaultCount int) (model.Answers, error) {
	reader := bufio.NewReader(a.In)

	if _, err := fmt.Fprintln(a.Out, MenuHeader); err != nil {
		return model.Answers{}, err
	}
	for _, t := range topics {
		if _, err := fmt.Fprintln(a.Out, MenuLine(t)); err != nil {
			return model.Answers{}, err
		}
	}

	selection, err := a.readLine(reader, TopicPrompt)
	if err != nil {
		return model.Answers{}, err
	}
	chosen, err := SelectTopic(selection)
	if err != nil {
		return model.Answers{}, err
	}

	baseDir, err := a.readLine(reader, BaseDirPrompt)
	if err != nil {
		return model.Answers{}, err
	}
	baseDir = CleanBaseDir(baseDir)
	if baseDir == "" {
		return model.Answers{}, ErrNoBaseDir
	}

	count, err := a.readLine(reader, CountPrompt(defaultCount))
	if err != nil {
		return model.Answers{}, err
	}

	return model.Answers{
		Topic:      chosen,
		BaseDir:    baseDir,
		CountInput: strings.TrimSpace(count),
	}, nil
}

func (a Asker) readLine(reader *bufio.Reader, question string) (string, error) {
	if _, err := fmt.Fprint(a.Out, question); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
