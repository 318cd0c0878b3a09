package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	glspserver "github.com/tliron/glsp/server"
	"github.com/tminor/lspmyql/catalog"
	"github.com/tminor/lspmyql/implementation"
)

const toolName = "lspmyql"

// Set with -ldflags "-X github.com/tminor/lspmyql/commands.version=..."
var version = "0.1.0"

var log = logging.MustGetLogger(toolName)

func newRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:           toolName,
		Short:         "Language server for MyQL",
		Long:          `Serves completion and hover documentation for MyQL over the Language Server Protocol, driven by a static symbol catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			config, err := loadConfig(command)
			if err != nil {
				return err
			}
			if err := configureLogging(config.Log, config.Verbose); err != nil {
				return err
			}
			return serve(config)
		},
	}

	flags := command.PersistentFlags()
	flags.String("config", "", "configuration file (json, yaml or toml)")
	flags.String("catalog", "", "symbol catalog path or URL (default completions.json next to the executable)")
	flags.String("log", "", "log to this file instead of stderr")
	flags.CountP("verbose", "v", "add verbosity (repeat for more)")
	command.Flags().String("tcp", "", "listen on this TCP address instead of stdio")

	command.AddCommand(newVersionCommand())

	return command
}

func serve(config *Config) error {
	log.Infof("%s %s starting", toolName, version)

	symbols, err := catalog.Load(config.Catalog)
	if err != nil {
		return err
	}
	log.Infof("loaded %d symbols from %s", symbols.Len(), config.Catalog)

	languageServer := implementation.NewServer(symbols, version)
	server := glspserver.NewServer(&languageServer.Handler, implementation.Name, config.Verbose > 1)

	if config.TCP != "" {
		log.Infof("listening on %s", config.TCP)
		return server.RunTCP(config.TCP)
	}
	return server.RunStdio()
}

// Execute runs the root command and exits the process through atexit.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		if logFile != nil {
			log.Criticalf("%s", err.Error())
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", toolName, err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
