package main

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordbee"
	"github.com/projectdiscovery/wordbee/internal/runner"
)

func main() {
	cliOpts := runner.ParseSolveFlags()

	// reject bad puzzles before touching any wordlist
	if _, err := wordbee.ValidateLetters(cliOpts.Letters); err != nil {
		gologger.Fatal().Msgf("invalid letters %q: %v", cliOpts.Letters, err)
	}

	solverOpts, err := cliOpts.SolverOptions()
	if err != nil {
		gologger.Fatal().Msgf("failed to read wordlist config got %v", err)
	}

	sections, err := wordbee.NewSolver(solverOpts).Solve(cliOpts.Letters)
	if err != nil {
		gologger.Fatal().Msgf("failed to solve %v got %v", cliOpts.Letters, err)
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if err := wordbee.FormatSections(output, sections); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
