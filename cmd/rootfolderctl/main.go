package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wjohnson5/Radarr/internal/config"
	"github.com/wjohnson5/Radarr/internal/db"
	"github.com/wjohnson5/Radarr/internal/diskfs"
	"github.com/wjohnson5/Radarr/internal/mediafile"
	"github.com/wjohnson5/Radarr/internal/rootfolder"
	"github.com/wjohnson5/Radarr/internal/xslices"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := runMain(logger); err != nil {
		logger.Error("runMain", "error", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func newService(configPath string, logger *slog.Logger) (*rootfolder.Service, error) {
	conf, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.ReadConfig: %w", err)
	}
	dbClient, err := db.FromConfig(conf, logger)
	if err != nil {
		return nil, fmt.Errorf("db.FromConfig: %w", err)
	}
	if err := dbClient.Migrate(); err != nil {
		return nil, fmt.Errorf("dbClient.Migrate: %w", err)
	}

	return rootfolder.NewService(
		logger,
		diskfs.NewService(logger),
		rootfolder.NewDBRepository(dbClient),
		mediafile.NewReader(dbClient),
		conf,
	), nil
}

func parseID(argument string) (uint, error) {
	id, err := strconv.ParseUint(argument, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseUint: %w", err)
	}
	return uint(id), nil
}

func runMain(logger *slog.Logger) error {
	rootCommand := cobra.Command{
		Use: "rootfolderctl",
	}

	var configPath string
	rootCommand.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")

	addCommand := cobra.Command{
		Use:   "add [path]",
		Short: "Register a directory as a root folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(configPath, logger)
			if err != nil {
				return err
			}
			folder, err := service.Add(rootfolder.RootFolder{
				Path: args[0],
			})
			if err != nil {
				return fmt.Errorf("service.Add: %w", err)
			}
			fmt.Printf("Added root folder %d: %s\n", folder.ID, folder.Path)
			return nil
		},
	}

	removeCommand := cobra.Command{
		Use:   "remove [id]",
		Short: "Delete a root folder record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			service, err := newService(configPath, logger)
			if err != nil {
				return err
			}
			if err := service.Remove(id); err != nil {
				return fmt.Errorf("service.Remove: %w", err)
			}
			fmt.Printf("Removed root folder %d\n", id)
			return nil
		},
	}

	listCommand := cobra.Command{
		Use:   "list",
		Short: "List every root folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(configPath, logger)
			if err != nil {
				return err
			}
			folders, err := service.GetAll(false)
			if err != nil {
				return fmt.Errorf("service.GetAll: %w", err)
			}
			for _, folder := range folders {
				fmt.Printf("%d\t%s\n", folder.ID, folder.Path)
			}
			return nil
		},
	}

	unmappedCommand := cobra.Command{
		Use:   "unmapped [id]",
		Short: "Show folders not yet tracked as media, for one root folder or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(configPath, logger)
			if err != nil {
				return err
			}

			var folders []rootfolder.RootFolder
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				folder, err := service.Get(id, true)
				if err != nil {
					return fmt.Errorf("service.Get: %w", err)
				}
				folders = []rootfolder.RootFolder{folder}
			} else {
				folders, err = service.GetAll(false)
				if err != nil {
					return fmt.Errorf("service.GetAll: %w", err)
				}

				eg, _ := errgroup.WithContext(cmd.Context())
				for index, folder := range folders {
					eg.Go(func() error {
						scanned, err := service.Get(folder.ID, true)
						if err != nil {
							return fmt.Errorf("service.Get: %w", err)
						}
						folders[index] = scanned
						return nil
					})
				}
				if err := eg.Wait(); err != nil {
					return err
				}
				folders = xslices.Filter(folders, func(folder rootfolder.RootFolder) bool {
					return len(folder.UnmappedFolders) > 0
				})
			}

			for _, folder := range folders {
				fmt.Printf("%s\n", folder.Path)
				for _, unmapped := range folder.UnmappedFolders {
					fmt.Printf("\t%s\n", unmapped.Path)
				}
			}
			return nil
		},
	}

	rootCommand.AddCommand(&addCommand, &removeCommand, &listCommand, &unmappedCommand)
	return rootCommand.Execute()
}
