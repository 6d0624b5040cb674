// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/jeranaias/pocketkit/internal/config"
)

// Prompter reads one line after showing a prompt. It returns io.EOF at the
// end of input, including when the user presses Ctrl+C or Ctrl+D.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// newPrompter returns a liner-backed prompter with history when in is a
// terminal, and a plain buffered reader otherwise.
func newPrompter(in io.Reader, out io.Writer, historyName string, log logrus.FieldLogger) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return newLinePrompter(historyName, log)
	}
	return &plainPrompter{in: bufio.NewReader(in), out: out}
}

// =============================================================================
// LINER PROMPTER
// =============================================================================

// linePrompter provides line editing and per-tool input history.
type linePrompter struct {
	line        *liner.State
	historyFile string
	log         logrus.FieldLogger
}

func newLinePrompter(historyName string, log logrus.FieldLogger) *linePrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	p := &linePrompter{line: line, log: log}
	if dir, err := config.ConfigDir(); err == nil {
		p.historyFile = filepath.Join(dir, historyName+"_history")
		if f, err := os.Open(p.historyFile); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				log.WithError(err).Debug("could not read history")
			}
			f.Close()
		}
	}
	return p
}

func (p *linePrompter) Prompt(prompt string) (string, error) {
	input, err := p.line.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history with 0600 permissions and restores the terminal.
func (p *linePrompter) Close() error {
	if p.historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(p.historyFile), 0700); err == nil {
			if f, err := os.OpenFile(p.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
				if _, err := p.line.WriteHistory(f); err != nil {
					p.log.WithError(err).Debug("could not write history")
				}
				f.Close()
			}
		}
	}
	return p.line.Close()
}

// =============================================================================
// PLAIN PROMPTER
// =============================================================================

// plainPrompter reads lines from a pipe or file. The prompt is still
// written so transcripts read like an interactive session.
type plainPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *plainPrompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			fmt.Fprintln(p.out)
			return strings.TrimRight(line, "\r\n"), nil
		}
		fmt.Fprintln(p.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainPrompter) Close() error {
	return nil
}
