// Package cli defines the dir-printer command tree
package cli

import (
	"fmt"

	"github.com/bethropolis/dir-printer/internal/app"
	"github.com/bethropolis/dir-printer/internal/config"
	"github.com/spf13/cobra"
)

const (
	rootUse              = "dir-printer [path]"
	rootShortDescription = "Print a directory tree, filtered by gitignore-style rules"
	rootLongDescription  = `dir-printer renders a directory as an indented tree using box-drawing
characters. Entries matching the rules of an ignore file (gitignore syntax),
the --ignore patterns or, optionally, the .gitignore files inside the tree
are left out.`
	rootExample = `  dir-printer .
  dir-printer ./src -i .printignore --ignore "*.log,dist/" --progress
  dir-printer --last --format markdown --copy`

	configFlagName  = "config"
	clearFlagName   = "clear"
	versionTemplate = "dir-printer version %s\n"
)

// NewRootCommand builds the command tree. The app options are applied to
// every App a command creates.
func NewRootCommand(appOptions ...app.Option) *cobra.Command {
	var configFile string

	loadApp := func(command *cobra.Command, rootDir string) (*app.App, error) {
		cfg, err := config.Load(command.Flags(), configFile)
		if err != nil {
			return nil, err
		}
		cfg.RootDir = rootDir
		application := app.New(cfg, appOptions...)
		if cfg.ConfigFileUsed != "" {
			application.Logger().Debug("Using config file %s", cfg.ConfigFileUsed)
		}
		return application, nil
	}

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			rootDir := ""
			if len(arguments) == 1 {
				rootDir = arguments[0]
			}
			application, err := loadApp(command, rootDir)
			if err != nil {
				return err
			}
			return application.Run(command.Context())
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, configFlagName, "", "Config file (default $HOME/"+config.DirName+"/"+config.ConfigFileName+")")
	config.RegisterFlags(rootCommand.PersistentFlags())

	var checkRoot string
	checkCommand := &cobra.Command{
		Use:   "check PATH...",
		Short: "Show whether paths would be ignored and which rule decided",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			application, err := loadApp(command, checkRoot)
			if err != nil {
				return err
			}
			return application.Check(arguments)
		},
	}
	checkCommand.Flags().StringVarP(&checkRoot, "dir", "d", ".", "Root the paths are relative to")

	var clearRecent bool
	recentCommand := &cobra.Command{
		Use:   "recent",
		Short: "List recently printed directories",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			application, err := loadApp(command, "")
			if err != nil {
				return err
			}
			return application.Recent(clearRecent)
		},
	}
	recentCommand.Flags().BoolVar(&clearRecent, clearFlagName, false, "Forget all recent directories")

	langCommand := &cobra.Command{
		Use:   "lang [CODE]",
		Short: "Show or save the message language (en, es, zh)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			application, err := loadApp(command, "")
			if err != nil {
				return err
			}
			code := ""
			if len(arguments) == 1 {
				code = arguments[0]
			}
			return application.Language(code)
		},
	}

	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, arguments []string) {
			fmt.Fprintf(command.OutOrStdout(), versionTemplate, config.Version)
		},
	}

	rootCommand.AddCommand(checkCommand, recentCommand, langCommand, versionCommand)
	return rootCommand
}
