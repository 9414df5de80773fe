package cmd

import (
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/server"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr    string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(serveVerbose)
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := store.Open(flagDB, log)
		if err != nil {
			return err
		}
		defer st.Close()

		srv := server.New(st, serveAddr, log)
		return srv.ListenAndServe()
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8900", "Listen address")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Verbose logging")
	rootCmd.AddCommand(serveCmd)
}
