// Command objopsd serves a recipe over HTTP.
//
// Usage:
//
//	objopsd -config objopsd.yaml
//
// The configuration file has two sections:
//
//	log:
//	  level: info
//	  format: json
//	service:
//	  address: ":8080"
//	  maxBodyBytes: 1048576
//	  recipeFile: recipes.yaml
//	  recipeSection: recipes.cleanup
//
// The log section is optional.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/objectops"
	"github.com/0xalexb/objectops/config"
	filefetcher "github.com/0xalexb/objectops/config/fetcher/file"
	yamlparser "github.com/0xalexb/objectops/config/parser/yaml"
	"github.com/0xalexb/objectops/logging"
	"github.com/0xalexb/objectops/service"

	"go.uber.org/fx"
)

const (
	serviceName    = "objopsd"
	logSection     = "log"
	serviceSection = "service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "objopsd.yaml", "configuration `file`")
	version := flags.Bool("version", false, "print version information and exit")

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		return 2
	}

	if *version {
		_, _ = fmt.Fprintln(stdout, serviceName, objectops.BuildInfo())

		return 0
	}

	app, err := newApp(*configPath, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, serviceName+":", err)

		return 1
	}

	app.Run()

	return 0
}

// newApp reads the log section eagerly, since the logger must exist before the
// container, and leaves the service section to config.Provider inside it.
func newApp(configPath string, logOutput io.Writer) (*service.App, error) {
	fetcher, err := filefetcher.NewFetcher(configPath)()
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	parser := yamlparser.NewParser(yamlparser.WithStrict())

	logConfig, err := config.Load(&logging.LoggerConfig{}, logSection, parser, fetcher)
	if errors.Is(err, yamlparser.ErrPathNotFound) {
		logConfig, err = &logging.LoggerConfig{}, nil
		logConfig.SetDefaults()
	}

	if err != nil {
		return nil, fmt.Errorf("log configuration: %w", err)
	}

	app := service.NewApp(
		service.WithLogLevel(logConfig.Level),
		service.WithLogFormat(logConfig.Format),
		service.WithLogOutput(logOutput),
		service.WithModules(
			fx.Supply(
				fx.Annotate(parser, fx.As(new(config.Parser))),
				fx.Annotate(fetcher, fx.As(new(config.DataFetcher))),
			),
			fx.Provide(fx.Annotate(provideServiceConfig, fx.ResultTags(`name:"`+serviceName+`"`))),
		),
		service.WithEditService(serviceName),
	)

	err = app.Err()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return app, nil
}

func provideServiceConfig(parser config.Parser, fetcher config.DataFetcher) (service.Config, error) {
	cfg, err := config.Provider(&service.Config{}, serviceSection)(parser, fetcher)
	if err != nil {
		return service.Config{}, fmt.Errorf("service configuration: %w", err)
	}

	return *cfg, nil
}
