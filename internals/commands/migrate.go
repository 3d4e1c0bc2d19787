package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	database "pulpito_backend/internals/databases"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Crea o actualiza las tablas propias",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openDB(); err != nil {
			return err
		}
		defer database.Close()

		if err := database.Migrate(database.DB.WithContext(cmd.Context())); err != nil {
			return err
		}
		zap.L().Info("migración completada", zap.Int("models", len(database.Models())))
		return nil
	},
}
