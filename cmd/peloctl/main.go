package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/peloctl/peloctl/pkg/config"
	"github.com/peloctl/peloctl/pkg/peloton"
	"github.com/peloctl/peloctl/pkg/server"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "peloctl",
	Short: "Peloton command-line interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List recently aired classes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}

		discipline, _ := cmd.Flags().GetString("discipline")
		list, err := client.RecentClasses(discipline)
		if err != nil {
			return err
		}
		if debug {
			pp.Println(list)
		}

		for _, ride := range list.Data {
			fmt.Printf("%s  %s\n", ride.ID, ride.Title)
		}
		return nil
	},
}

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Show the last week of workouts grouped by day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}

		auth, err := client.Authenticate()
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		groups, err := client.UserWorkouts(auth.UserID, page)
		if err != nil {
			return err
		}

		for _, date := range groups.Dates() {
			for _, label := range groups.Labels(date) {
				fmt.Println(label)
			}
		}
		return nil
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <ride_id>",
	Short: "Favorite a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}
		if _, err := client.Authenticate(); err != nil {
			return err
		}
		if err := client.Favorite(args[0]); err != nil {
			return err
		}
		fmt.Printf("favorited %s\n", args[0])
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List browse categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}

		list, err := client.Categories()
		if err != nil {
			return err
		}
		if debug {
			pp.Println(list)
		}

		for _, cat := range list.BrowseCategories {
			fmt.Printf("%s  %s\n", cat.Slug, cat.Name)
		}
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <ride_id>",
	Short: "Resolve a ride id to its on-demand join token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient(cmd)
		if err != nil {
			return err
		}

		token, err := client.RideToClassID(args[0])
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve workouts and stack as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		srv := server.New(cfg, logger)
		logger.Info("starting server", "addr", cfg.ListenAddr)
		return srv.Start(cfg.ListenAddr)
	},
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "peloctl",
		Level:           level,
	})
}

func buildClient(cmd *cobra.Command) (*peloton.Client, *config.Config, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return peloton.New(cfg, newLogger()), cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump raw responses and enable debug logging")
	rootCmd.PersistentFlags().String("username", "", "Account username or email")
	rootCmd.PersistentFlags().String("password", "", "Account password")
	rootCmd.PersistentFlags().String("api-root", "", "REST API root override")
	rootCmd.PersistentFlags().String("graphql-root", "", "GraphQL gateway override")

	classesCmd.Flags().String("discipline", "", "Filter by fitness discipline slug")
	workoutsCmd.Flags().Int("page", 0, "Workout history page")
	serveCmd.Flags().String("addr", "", "Listen address")

	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(workoutsCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
