package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/rasoi/config"
	"github.com/shashiranjanraj/rasoi/database/seeders"
	"github.com/shashiranjanraj/rasoi/internal/server"
	"github.com/shashiranjanraj/rasoi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "rasoi",
	Short: "rasoi — restaurant ordering backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// rasoi serve — explicit alias for the default action.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// rasoi seed — insert sample menu items and reviews for local development.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx := context.Background()
		s, err := store.Connect(ctx)
		if err != nil {
			return err
		}
		defer s.Close(ctx) //nolint:errcheck

		fmt.Println("Seeding database…")
		return seeders.Run(ctx, s)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
