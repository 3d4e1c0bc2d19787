package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pulpito_backend/internals/configs"
	database "pulpito_backend/internals/databases"
	"pulpito_backend/internals/helpers/dbtime"
	routeDetails "pulpito_backend/internals/route/details"
)

var generateMonth string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Genera los cultos de un mes desde la plantilla semanal",
	Long: `Genera los cultos del mes indicado (YYYY-MM) con la plantilla de SCHEDULE_TEMPLATE_PATH.

Es idempotente: los cultos que ya existen no se duplican. Sin --month se usa el mes siguiente.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		month := generateMonth
		if month == "" {
			month = dbtime.Today(configs.Location()).AddDate(0, 1, 0).Format("2006-01")
		}
		year, m, err := dbtime.ParseMonth(month)
		if err != nil {
			return err
		}

		if err := openDB(); err != nil {
			return err
		}
		defer database.Close()

		deps := routeDetails.NewCultosDeps(database.DB)
		res, err := deps.Generator.Generate(cmd.Context(), year, m)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.String())
		if len(res.Failed) > 0 {
			return fmt.Errorf("%d fechas de festivo sin ajustar; reintentar con 'pulpito resync'", len(res.Failed))
		}
		return nil
	},
}

var resyncDate string

var resyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Reaplica la regla de festivos a una fecha",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dbtime.ParseDate(resyncDate)
		if err != nil {
			return fmt.Errorf("--date debe tener formato YYYY-MM-DD")
		}
		if err := openDB(); err != nil {
			return err
		}
		defer database.Close()

		deps := routeDetails.NewCultosDeps(database.DB)
		res, err := deps.Sync.Resync(cmd.Context(), date)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ajustados, %d omitidos, %d fallidos\n",
			res.Date, len(res.Shifted), len(res.Skipped), len(res.Failed))
		if res.Partial() {
			return fmt.Errorf("ajuste incompleto")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateMonth, "month", "", "mes a generar (YYYY-MM)")
	resyncCmd.Flags().StringVar(&resyncDate, "date", "", "fecha a resincronizar (YYYY-MM-DD)")
	_ = resyncCmd.MarkFlagRequired("date")
}
