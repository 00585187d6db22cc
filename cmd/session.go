package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/goracle/internal/domain"
	m "github.com/mouse-blink/goracle/internal/model"
)

const sessionPrompt = "goracle> "

const sessionHelp = `commands:
  <mode> <file> <pos>   run a query; pos is N, N-M or LINE:COL
  scope [tokens...]     show or set the analysis scope
  history               list previous scopes
  modes                 list query modes
  quit                  end the session`

var errQuit = errors.New("quit")

// sessionCmd represents the session command.
var sessionCmd = newSessionCmd()

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive session that keeps the scope between queries",
		Long: `Start an interactive session. The analysis scope and its history live as long
as the session, so the scope is asked for only once.

` + sessionHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd.Context())
		},
	}

	return cmd
}

func runSession(ctx context.Context) error {
	for {
		line, err := ui.ReadLine(sessionPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		err = sessionCommand(ctx, strings.Fields(line))
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			ui.DisplayMessage("error: %v", err)
		}
	}
}

func sessionCommand(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit", "exit":
		return errQuit

	case "help":
		ui.DisplayMessage("%s", sessionHelp)

		return nil

	case "scope":
		if len(fields) == 1 {
			if scope := workflow.Scope(); scope != "" {
				ui.DisplayMessage("scope: %s", scope)
			} else {
				ui.DisplayMessage("No scope set")
			}

			return nil
		}

		scope, err := workflow.SetScope(strings.Join(fields[1:], " "))
		if err != nil {
			return err
		}

		ui.DisplayMessage("scope set to %s", scope)

		return nil

	case "history":
		return workflow.ShowHistory()

	case "modes":
		return workflow.ShowModes()
	}

	mode, err := domain.ParseMode(fields[0])
	if err != nil {
		return err
	}

	if len(fields) != 3 {
		return fmt.Errorf("usage: %s <file> <pos>", mode)
	}

	args, err := parsePosition(fields[2])
	if err != nil {
		return err
	}

	args.Mode = mode
	args.Document.Path = m.Path(fields[1])

	return workflow.Query(ctx, args)
}

// parsePosition reads a session position: a character position N, a range
// N-M, or LINE:COL.
func parsePosition(pos string) (domain.QueryArgs, error) {
	if line, col, ok := strings.Cut(pos, ":"); ok {
		l, lineErr := strconv.Atoi(line)
		c, colErr := strconv.Atoi(col)

		if lineErr != nil || colErr != nil || l < 1 || c < 1 {
			return domain.QueryArgs{}, fmt.Errorf("invalid position %q", pos)
		}

		return domain.QueryArgs{Line: l, Column: c}, nil
	}

	start, end, isRange := strings.Cut(pos, "-")

	s, err := strconv.Atoi(start)
	if err != nil || s < 1 {
		return domain.QueryArgs{}, fmt.Errorf("invalid position %q", pos)
	}

	sel := m.Selection{Start: s}

	if isRange {
		e, err := strconv.Atoi(end)
		if err != nil || e < s {
			return domain.QueryArgs{}, fmt.Errorf("invalid range %q", pos)
		}

		sel.End = e
	}

	return domain.QueryArgs{Document: m.Document{Selection: sel}}, nil
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
