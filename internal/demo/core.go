package demo

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"github.com/rs/zerolog"
	"go.lepovirta.org/boundq/internal/demo/config"
	"go.lepovirta.org/boundq/internal/logging"
	"go.lepovirta.org/boundq/internal/osenv"
	"go.lepovirta.org/boundq/internal/runner"
	"go.lepovirta.org/boundq/internal/scenario"
	"go.lepovirta.org/boundq/internal/sighandle"
)

type Core struct {
	osEnv     osenv.OsEnv
	cliFlags  config.CliFlags
	scenarios []scenario.Scenario
}

func (this *Core) Init(osEnv osenv.OsEnv) error {
	this.osEnv = osEnv

	var logConfig logging.Config
	logConfig.FromEnv(config.AppName, this.osEnv.EnvVars)
	logConfig.SetupGlobal(config.AppName, this.osEnv.Stderr)

	if err := this.cliFlags.Parse(
		this.osEnv.EnvVars,
		this.osEnv.Args,
		this.osEnv.Stderr,
	); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("failed to parse CLI flags: %w", err)
	}

	var file scenario.File
	if err := loadScenarios(this.osEnv, &this.cliFlags, &file); err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	this.scenarios = file.Select(this.cliFlags.Only)
	if len(this.scenarios) == 0 {
		return fmt.Errorf("no scenarios match '%s'", this.cliFlags.Only.String())
	}
	return nil
}

func (this *Core) Run(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	if this.cliFlags.List {
		log.Debug().Msg("list scenarios")
		return list(this.osEnv.Stdout, this.scenarios)
	}

	ctx, sigCancel := sighandle.CancelOnSignals(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer sigCancel()

	log.Debug().
		Int("scenarios", len(this.scenarios)).
		Int("parallel", this.cliFlags.Parallel).
		Msg("run scenarios")
	results := runner.RunAll(ctx, this.scenarios, this.cliFlags.Parallel)

	failed := 0
	for i := range results {
		if !results[i].Passed() {
			failed += 1
			log.Info().Str("scenario", results[i].Name).Err(results[i].Err).Msg("scenario failed")
		}
	}

	if err := report(this.osEnv.Stdout, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
