package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"

	"drepalife-app/internal/devapi"
)

func newDevAPICmd(cc *cliContext) *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "devapi",
		Short: "Serve a local stand-in for the platform API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cc.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			srv, err := devapi.New(cc.cfg.DevAPI, sqlite.Open(dsn), cc.log)
			if err != nil {
				return err
			}
			defer srv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&dsn, "db", "file::memory:?cache=shared", "sqlite database for the stand-in")
	return cmd
}
