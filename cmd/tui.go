package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/client"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/server"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/store"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverAddr := flagServer

		if !cmd.Flags().Changed("server") {
			// Start embedded server in background
			log, err := newLogger(false)
			if err != nil {
				return err
			}
			defer log.Sync()

			st, err := store.Open(flagDB, log)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			srv := server.New(st, "127.0.0.1:8901", log)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Warn("embedded server stopped", zap.Error(err))
				}
			}()
			serverAddr = "http://127.0.0.1:8901"

			// Wait for server to be ready
			c := client.New(serverAddr, flagCompany)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			for {
				if err := c.Ping(ctx); err == nil {
					break
				}
				if ctx.Err() != nil {
					return fmt.Errorf("timeout waiting for embedded server")
				}
				time.Sleep(50 * time.Millisecond)
			}
		}

		c := client.New(serverAddr, flagCompany)
		app := tui.NewApp(c)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
