package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/ranger"
)

// newRootCmd builds the hostcfg command tree, running servers with run.
func newRootCmd(run func(ranger.Config) error) *cobra.Command {
	root := &cobra.Command{
		Use:          "hostcfg",
		Short:        "Manage named host configurations over HTTP",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(run))

	return root
}

func newServeCmd(run func(ranger.Config) error) *cobra.Command {
	var (
		port      string
		resources string
		env       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the hostcfg API server",
		Long: `Run the hostcfg API server.

Settings come from environment variables, or a .env file, and flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ranger.NewConfig()

			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			if cmd.Flags().Changed("resources") {
				cfg.ResourcesDir = resources
			}

			if cmd.Flags().Changed("env") {
				cfg.Env = hostcfg.Environment(strings.ToUpper(env))
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", ranger.DefaultPort, "port to listen on")
	cmd.Flags().StringVar(&resources, "resources", ranger.DefaultResourcesDir, "directory holding the seeding word lists")
	cmd.Flags().StringVar(&env, "env", hostcfg.Development.String(), "environment to run in")

	return cmd
}

// serve assembles a Ranger from cfg and runs it until it is told to stop.
func serve(cfg ranger.Config) error {
	rng, err := ranger.New(cfg)
	if err != nil {
		return err
	}

	return rng.Guide()
}
