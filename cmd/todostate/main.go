package main

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path"

	"github.com/nicolagi/todostate"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.WithField("cause", err).Fatal("Command failed")
	}
}

func defaultConfigPath() string {
	u, err := user.Current()
	if err != nil {
		log.WithField("cause", err).Warning("Could not get current user, not loading configuration")
		return ""
	}
	return path.Join(u.HomeDir, "lib/todostate/config.yaml")
}

// newApp builds the command line interface. The state is created in Before, once flags and configuration are
// known, and shared by the subcommands.
func newApp() *cli.Command {
	var (
		configPath string
		todosPath  string
		st         *todostate.State
		cfg        *config
	)
	app := &cli.Command{
		Name:  "todostate",
		Usage: "Inspect a todo list and the current user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODOSTATE_CONFIG"),
				Value:       defaultConfigPath(),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "todos",
				Usage:       "path to a YAML todo list",
				Destination: &todosPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			if cfg, err = loadConfig(configPath); err != nil {
				return ctx, err
			}
			level, _ := log.ParseLevel(cfg.LogLevel)
			log.SetLevel(level)
			directory, err := todostate.NewDirectory(cfg.directoryOptions()...)
			if err != nil {
				return ctx, fmt.Errorf("create directory client: %w", err)
			}
			st = todostate.NewState(todostate.NewStore(), directory)
			st.CurrentUserID.Set(cfg.UserID)
			if todosPath != "" {
				if err := loadTodos(st, todosPath); err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print the todo list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "all, completed or uncompleted",
						Value: "all",
					},
					&cli.BoolFlag{
						Name:  "sort",
						Usage: "sort alphabetically rather than in list order",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					filter, err := todostate.ParseFilter(c.String("filter"))
					if err != nil {
						return err
					}
					st.Filter.Set(filter)
					return printItems(c.Root().Writer, st, c.Bool("sort"))
				},
			},
			{
				Name:  "stats",
				Usage: "print todo list statistics",
				Action: func(ctx context.Context, c *cli.Command) error {
					return printStats(c.Root().Writer, st)
				},
			},
			{
				Name:  "whoami",
				Usage: "print the name of the current user",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "user",
						Usage: "user id, overrides the configured one",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if id := c.String("user"); id != "" {
						st.CurrentUserID.Set(id)
					}
					return printUserName(ctx, c.Root().Writer, st)
				},
			},
		},
	}
	return app
}
