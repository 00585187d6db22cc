package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/goracle/internal/domain"
	m "github.com/mouse-blink/goracle/internal/model"
)

const stdinBuffer = "-"

// queryOptions holds the flags shared by every query command.
type queryOptions struct {
	file     string
	start    int
	end      int
	line     int
	col      int
	scope    string
	modified bool
	buffer   string
}

func (o *queryOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "source file the position refers to")
	cmd.Flags().IntVarP(&o.start, "start", "s", 0, "1-based character position of the cursor or selection start")
	cmd.Flags().IntVarP(&o.end, "end", "e", 0, "1-based character position of the selection end")
	cmd.Flags().IntVarP(&o.line, "line", "l", 0, "1-based line of the cursor")
	cmd.Flags().IntVar(&o.col, "col", 1, "1-based column of the cursor, in characters")
	cmd.Flags().StringVar(&o.scope, "scope", "", "analysis scope, replacing the current one")
	cmd.Flags().BoolVar(&o.modified, "modified", false, "the editor buffer has unsaved changes")
	cmd.Flags().StringVar(&o.buffer, "buffer", "", "file holding the editor buffer, or - for stdin, compared with the file on disk")

	cmd.MarkFlagsMutuallyExclusive("start", "line")
	cmd.MarkFlagsMutuallyExclusive("end", "line")
	cmd.MarkFlagsOneRequired("start", "line")
}

func (o *queryOptions) queryArgs(cmd *cobra.Command, mode m.Mode) (domain.QueryArgs, error) {
	doc := m.Document{
		Path:      m.Path(o.file),
		Modified:  o.modified,
		Selection: m.Selection{Start: o.start, End: o.end},
	}

	if o.buffer != "" {
		buffer, err := o.readBuffer(cmd.InOrStdin())
		if err != nil {
			return domain.QueryArgs{}, err
		}

		doc.Buffer = buffer
	}

	return domain.QueryArgs{
		Document: doc,
		Mode:     mode,
		Line:     o.line,
		Column:   o.col,
	}, nil
}

func (o *queryOptions) readBuffer(stdin io.Reader) ([]byte, error) {
	if o.buffer == stdinBuffer {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read buffer from stdin: %w", err)
		}

		return content, nil
	}

	content, err := os.ReadFile(o.buffer)
	if err != nil {
		return nil, fmt.Errorf("failed to read buffer: %w", err)
	}

	return content, nil
}

func (o *queryOptions) run(cmd *cobra.Command, mode m.Mode) error {
	if o.scope != "" {
		if _, err := workflow.SetScope(o.scope); err != nil {
			return err
		}
	}

	args, err := o.queryArgs(cmd, mode)
	if err != nil {
		return err
	}

	return workflow.Query(cmd.Context(), args)
}

// newModeCmd builds the subcommand running queries in mode.
func newModeCmd(mode m.Mode) *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   string(mode),
		Short: "Show the " + mode.Summary(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, mode)
		},
	}
	opts.register(cmd)

	return cmd
}

// queryCmd runs a query whose mode is given as an argument.
var queryCmd = newQueryCmd()

func newQueryCmd() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query <mode>",
		Short: "Run a query in the given mode",
		Long:  "Run a query in the given mode. Unknown modes are reported with the closest supported one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseMode(args[0])
			if err != nil {
				return err
			}

			return opts.run(cmd, mode)
		},
	}
	opts.register(cmd)

	return cmd
}

func init() {
	for _, mode := range m.Modes {
		rootCmd.AddCommand(newModeCmd(mode))
	}

	rootCmd.AddCommand(queryCmd)
}
