package config

import (
	"flag"
	"fmt"
	"io"

	"go.lepovirta.org/boundq/internal/envvar"
	"go.lepovirta.org/boundq/internal/matcher"
)

const (
	AppName   = "boundq"
	StdinPath = "-"
)

type CliFlags struct {
	// ScenariosPath points to a scenario file. Empty means the builtin scenarios.
	ScenariosPath string
	Only          matcher.M
	List          bool
	Parallel      int
}

func (this *CliFlags) validate() error {
	if this.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", this.Parallel)
	}
	return nil
}

func (this *CliFlags) Parse(
	envVars envvar.Vars,
	args []string,
	output io.Writer,
) error {
	var flagSet flag.FlagSet
	flagSet.Init(AppName, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(
			flagSet.Output(),
			"Usage: %s [-scenarios <path>] [-only <name | /regex/>] [-parallel <n>] [-list] [-h | --help]\n\nOptions:\n",
			args[0],
		)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(
		&this.ScenariosPath,
		"scenarios",
		"",
		"Path to a scenario file. Use '-' to read from STDIN. By default, the builtin scenarios are run.",
	)
	flagSet.Var(
		&this.Only,
		"only",
		"Run only the scenarios matching the given name. Surround the name with slashes to use a regular expression.",
	)
	flagSet.BoolVar(
		&this.List,
		"list",
		false,
		"List the selected scenarios instead of running them.",
	)
	flagSet.IntVar(
		&this.Parallel,
		"parallel",
		0,
		"Maximum number of scenarios to run at the same time. Defaults to 1.",
	)

	if err := flagSet.Parse(args[1:]); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	// Fall back to env vars
	if this.ScenariosPath == "" {
		this.ScenariosPath = envVars.GetForApp(AppName, "SCENARIOS_PATH")
	}
	if this.Only.IsEmpty() {
		if err := this.Only.FromString(envVars.GetForApp(AppName, "ONLY")); err != nil {
			return err
		}
	}
	if this.Parallel == 0 {
		parallel, err := envVars.GetIntForAppOr(AppName, "PARALLEL", 1)
		if err != nil {
			return err
		}
		this.Parallel = parallel
	}

	return this.validate()
}
