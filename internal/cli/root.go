// Package cli is the drepalife command line front end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drepalife-app/internal/apiclient"
	"drepalife-app/internal/config"
	"drepalife-app/internal/logger"
	"drepalife-app/internal/service"
	"drepalife-app/internal/session"
	"drepalife-app/internal/storage"
)

// cliContext carries what PersistentPreRunE loaded to the subcommands.
type cliContext struct {
	envFile string
	cfg     *config.Config
	log     *zap.Logger
}

// app is the wired client: storage, session cache, API client and use cases.
type app struct {
	cfg      *config.Config
	store    storage.Store
	sessions *session.Cache
	auth     *service.AuthService
	tips     *service.TipsService
	consult  *service.ConsultService
	genotype *service.GenotypeService
}

func (cc *cliContext) setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(cc.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", cc.envFile, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	cc.cfg = cfg
	cc.log = log
	return nil
}

func (cc *cliContext) open() (*app, error) {
	store, err := storage.Open(cc.cfg.Storage, cc.log)
	if err != nil {
		return nil, err
	}
	sessions := session.NewCache(store, cc.log)
	client := apiclient.New(apiclient.Options{
		BaseURL:        cc.cfg.APIBaseURL,
		ConsultBaseURL: cc.cfg.ConsultBaseURL,
		Timeout:        cc.cfg.HTTPTimeout,
	}, sessions, cc.log)

	return &app{
		cfg:      cc.cfg,
		store:    store,
		sessions: sessions,
		auth:     service.NewAuthService(client, sessions, cc.log),
		tips:     service.NewTipsService(client, store, sessions, cc.cfg.TipsCacheTTL, cc.log),
		consult:  service.NewConsultService(client, sessions, cc.log),
		genotype: service.NewGenotypeService(client, sessions, cc.log),
	}, nil
}

// withApp opens the client for the duration of one command.
func (cc *cliContext) withApp(run func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := cc.open()
		if err != nil {
			return err
		}
		defer func() {
			if err := a.store.Close(); err != nil {
				cc.log.Warn("failed to close storage", zap.Error(err))
			}
		}()
		return run(cmd.Context(), a, cmd, args)
	}
}

// NewRootCmd builds the drepalife command tree.
func NewRootCmd() *cobra.Command {
	cc := &cliContext{}
	root := &cobra.Command{
		Use:               "drepalife",
		Short:             "Drepalife sickle cell companion: accounts, health tips, consultations and genotype checks",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cc.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cc.log != nil {
				_ = cc.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&cc.envFile, "env-file", ".env", "file with environment variables to load")

	root.AddCommand(
		newLoginCmd(cc),
		newRegisterCmd(cc),
		newLogoutCmd(cc),
		newWhoamiCmd(cc),
		newTipsCmd(cc),
		newConsultCmd(cc),
		newGenotypeCmd(cc),
		newDevAPICmd(cc),
	)
	return root
}

// Run executes the command line and prints a failure as one line on stderr.
func Run() error {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
