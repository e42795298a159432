package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTipsCmd(cc *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Read and manage health tips",
	}

	var refresh bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List health tips",
		Args:  cobra.NoArgs,
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			tips, err := a.tips.List(ctx, refresh)
			if err != nil {
				return fmt.Errorf("failed to load health tips: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(tips) == 0 {
				fmt.Fprintln(out, "No health tips yet")
				return nil
			}
			for _, tip := range tips {
				fmt.Fprintf(out, "[%s] %s\n    %s\n", tip.ID, tip.Title, tip.Content)
			}
			return nil
		}),
	}
	list.Flags().BoolVar(&refresh, "refresh", false, "ignore the cached copy")

	var title, content string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a health tip",
		Args:  cobra.NoArgs,
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			tip, err := a.tips.Save(ctx, "", title, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Health tip added [%s]\n", tip.ID)
			return nil
		}),
	}

	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace the title and content of a health tip",
		Args:  cobra.ExactArgs(1),
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			tip, err := a.tips.Save(ctx, args[0], title, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Health tip updated [%s]\n", tip.ID)
			return nil
		}),
	}

	for _, c := range []*cobra.Command{add, edit} {
		c.Flags().StringVar(&title, "title", "", "tip title")
		c.Flags().StringVar(&content, "content", "", "tip content")
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a health tip",
		Args:  cobra.ExactArgs(1),
		RunE: cc.withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.tips.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Health tip deleted")
			return nil
		}),
	}

	cmd.AddCommand(list, add, edit, del)
	return cmd
}
