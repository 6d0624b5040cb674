// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// helpTopics are the markdown pages shown by "pocketkit help <topic>".
var helpTopics = map[string]string{
	"overview": `# pocketkit

Three small tools in one binary.

| Command | What it does |
|---|---|
| ` + "`calc`" + ` | four-function calculator with a keypad UI |
| ` + "`currency`" + ` | currency converter backed by an exchange-rate API |
| ` + "`rps`" + ` | Rock-Paper-Scissors against the computer |
| ` + "`config`" + ` | show or change settings |

Run ` + "`pocketkit help <topic>`" + ` for one of: calc, currency, rps, config.
`,

	"calc": `# calc

The display has two lines: the pending expression above, the entry below.

## Keys

- ` + "`0-9`" + ` and ` + "`.`" + ` edit the entry
- ` + "`+ - * /`" + ` choose an operator (` + "`x`" + ` also multiplies)
- ` + "`=`" + ` or ` + "`enter`" + ` evaluates
- ` + "`n`" + ` negates, ` + "`backspace`" + ` deletes, ` + "`esc`" + ` or ` + "`c`" + ` clears
- ` + "`?`" + ` toggles help, ` + "`q`" + ` quits

Dividing by zero shows *Division by zero* (or *Result is undefined* for 0/0)
and disables the operator keys until a digit, point, backspace or clear.

## Scripting

    pocketkit calc --keys "12+3="
    echo "5 neg * 2 =" | pocketkit calc
`,

	"currency": `# currency

Set ` + "`CURRENCY_API_KEY`" + ` (or ` + "`currency.api_key`" + ` in the config file), then:

- ` + "`list`" + ` shows available currencies
- ` + "`rate`" + ` shows the rate between two currencies
- ` + "`convert`" + ` converts an amount
- ` + "`q`" + ` quits

Requests are paced to ` + "`currency.requests_per_hour`" + `.
`,

	"rps": `# rps

Type *rock*, *paper* or *scissors* (any case). ` + "`q`" + ` quits and prints
the final score. Set ` + "`--seed`" + ` or ` + "`rps.seed`" + ` for a repeatable game.
`,

	"config": `# config

Settings live in ` + "`~/.pocketkit/config.toml`" + ` (` + "`config.json`" + ` is also read).

    pocketkit config show
    pocketkit config get calc.entry_max_len
    pocketkit config set ui.theme light
    pocketkit config path

Environment overrides: ` + "`CURRENCY_API_KEY`, `POCKETKIT_CURRENCY_URL`, `POCKETKIT_LOG_LEVEL`, `POCKETKIT_THEME`, `POCKETKIT_RPS_SEED`" + `.
`,
}

func newHelpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "help [topic]",
		Short: "Show help for a topic",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return helpTopicNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := "overview"
			if len(args) == 1 {
				topic = strings.ToLower(args[0])
			}
			page, ok := helpTopics[topic]
			if !ok {
				return &UsageError{fmt.Errorf("unknown help topic %q (topics: %s)", topic, strings.Join(helpTopicNames(), ", "))}
			}
			fmt.Fprint(app.out, renderMarkdown(page, app.colors, terminalWidth(app.out)))
			return nil
		},
	}
}

func helpTopicNames() []string {
	names := make([]string, 0, len(helpTopics))
	for name := range helpTopics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// renderMarkdown renders md with glamour, falling back to the raw text if
// the renderer cannot be built.
func renderMarkdown(md string, colors bool, width int) string {
	style := glamour.WithStandardStyle("notty")
	if colors {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
