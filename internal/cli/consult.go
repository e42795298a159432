package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"drepalife-app/internal/service"
	"drepalife-app/internal/session"
)

func newConsultCmd(cc *cliContext) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "consult [symptoms...]",
		Short: "Describe symptoms and get automated advice",
		Long: "Sends the symptoms given as arguments. Without arguments the consultation opens with a greeting. " +
			"With --interactive every line read from stdin is sent until an empty line or \"exit\".",
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ask := func(text string) error {
				fmt.Fprintf(out, "You: %s\n", text)
				advice, err := a.consult.Ask(ctx, text)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Advice: %s\n", advice)
				return nil
			}

			if len(args) > 0 {
				if err := ask(strings.Join(args, " ")); err != nil {
					return err
				}
			} else if err := ask(service.Greeting); err != nil {
				return err
			}
			if !interactive {
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.EqualFold(line, "exit") {
					break
				}
				if err := ask(line); err != nil {
					if errors.Is(err, session.ErrSessionExpired) {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			}
			return scanner.Err()
		}),
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "keep reading symptoms from stdin")
	return cmd
}
