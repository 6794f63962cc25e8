package demo

import (
	"bufio"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.lepovirta.org/boundq/internal/demo/config"
	"go.lepovirta.org/boundq/internal/file"
	"go.lepovirta.org/boundq/internal/osenv"
	"go.lepovirta.org/boundq/internal/scenario"
)

func loadScenarios(
	osEnv osenv.OsEnv,
	cliFlags *config.CliFlags,
	scenarios *scenario.File,
) error {
	switch cliFlags.ScenariosPath {
	case "":
		log.Debug().Msg("using builtin scenarios")
		*scenarios = scenario.Builtin()
		return nil
	case config.StdinPath:
		log.Debug().Msg("reading scenarios from STDIN")
		return scenarios.Parse(osEnv.EnvVars, osEnv.Stdin)
	}

	var fileReader file.Reader
	fileReader.Init(osEnv.Fs, 1)

	f, err := fileReader.Open(cliFlags.ScenariosPath)
	if err != nil {
		_ = fileReader.Close()
		return fmt.Errorf(
			"failed to open scenarios in path '%s': %w",
			cliFlags.ScenariosPath,
			err,
		)
	}
	log.Debug().Str("path", cliFlags.ScenariosPath).Msg("reading scenarios from file")

	if err := scenarios.Parse(osEnv.EnvVars, bufio.NewReader(f)); err != nil {
		_ = fileReader.Close()
		return err
	}
	return fileReader.Close()
}
