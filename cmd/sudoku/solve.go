package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/solver"
)

func newSolveCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a board given in character form ('.' = empty) from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			b, err := domain.ParseBoard(string(data))
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			out, st, err := solver.NewBacktrackingSolver().Solve(ctx, b)
			if err != nil {
				return fmt.Errorf("%w (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
			}
			fmt.Fprint(cmd.OutOrStdout(), out.String())
			fmt.Fprintf(cmd.ErrOrStderr(), "solved in %v, nodes=%d\n", st.Duration.Round(time.Millisecond), st.Nodes)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "abort the search after this long")
	return cmd
}
