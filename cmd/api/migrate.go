package main

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/meeting-scheduler/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := openDatabase(cfg, log)
			if err != nil {
				return err
			}
			log.Info("schema up to date")
			return dbpkg.Close(db)
		},
	}
}
