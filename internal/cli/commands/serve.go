package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jerops/prd-generator/internal/config"
	"github.com/jerops/prd-generator/internal/project"
	"github.com/jerops/prd-generator/internal/server"
	"github.com/jerops/prd-generator/internal/sqlite"
	"github.com/jerops/prd-generator/internal/store"
)

func ServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form API (local-only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				return err
			}
			if err := project.EnsureInitialized(root); err != nil {
				return err
			}
			if addr == "" {
				cfg, err := config.LoadFromRoot(root)
				if err != nil {
					return err
				}
				addr = cfg.ListenAddr
			}
			db, err := sqlite.Open(project.DBPath(root))
			if err != nil {
				return err
			}
			defer db.Close()
			if err := sqlite.Migrate(db); err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := server.New(store.New(project.StatePath(root)), sqlite.NewStore(db), log)
			fmt.Fprintf(cmd.OutOrStdout(), "prdgen API listening on %s\n", addr)
			return srv.ListenAndServe(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP bind address (default from config)")
	cmd.SetOut(os.Stdout)
	return cmd
}
