package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pulpito_backend/internals/configs"
	database "pulpito_backend/internals/databases"
)

// rootCmd es el binario pulpito; sin subcomando arranca el servidor.
var rootCmd = &cobra.Command{
	Use:   "pulpito",
	Short: "Gestor de púlpito: cultos, puestos y festivos",
	Long: `Backend del gestor de púlpito.

Subcomandos:
  serve    - Arranca la API HTTP y las tareas programadas
  migrate  - Crea o actualiza las tablas
  generate - Genera los cultos de un mes desde la plantilla semanal
  resync   - Reaplica la regla de festivos a una fecha`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configs.LoadEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, generateCmd, resyncCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB conecta y ajusta el pool; la usan todos los subcomandos.
func openDB() error {
	if err := database.ConnectDB(); err != nil {
		return err
	}
	database.TunePool()
	return nil
}
