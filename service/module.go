package service

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/objectops/recipe"

	"go.uber.org/fx"
)

// LoadProgram reads and compiles the recipe named by cfg.
func LoadProgram(cfg Config) (*recipe.Program, error) {
	if cfg.RecipeFile == "" {
		return nil, ErrNoRecipe
	}

	loaded, err := recipe.Load(cfg.RecipeFile, cfg.RecipeSection)
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the file
	}

	program, err := recipe.Compile(loaded)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", cfg.RecipeFile, err)
	}

	slog.Info("recipe loaded",
		slog.String("recipe", program.Name()),
		slog.Int("steps", program.Len()),
		slog.Bool("atomic", program.Atomic()))

	return program, nil
}

// NewModule creates an Fx module for a named edit service.
// The name is used as both the module name and the DI named tag for Config and
// the compiled *recipe.Program. If any options are passed, the module supplies
// Config from them; otherwise Config must be provided externally (e.g., via
// config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...ModuleOption) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(fx.Annotate(LoadProgram, fx.ParamTags(tag), fx.ResultTags(tag))),
		fx.Invoke(fx.Annotate(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, program *recipe.Program, serviceCfg Config) error {
				srv, err := NewServer(name, program, serviceCfg, func(error) {
					shutdownErr := shutdowner.Shutdown(fx.ExitCode(1))
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})

				return nil
			},
			fx.ParamTags("", "", tag, tag),
		)),
	)

	return fx.Module(name, moduleOpts...)
}
