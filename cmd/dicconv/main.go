package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordbee"
	"github.com/projectdiscovery/wordbee/internal/runner"
)

func main() {
	cliOpts := runner.ParseConvertFlags()

	c, err := wordbee.New(&wordbee.Options{
		Dictionary: cliOpts.DictionaryPath(),
		Affix:      cliOpts.AffixPath(),
		Workers:    cliOpts.Workers,
	})
	if err != nil {
		gologger.Fatal().Msgf("Error: %v", err)
	}

	result, err := c.Convert()
	if err != nil {
		gologger.Fatal().Msgf("failed to convert %v got %v", cliOpts.Dictionary, err)
	}

	written, err := result.WriteFiles(cliOpts.OutputDir, cliOpts.Name(), cliOpts.OutputTemplate)
	for _, f := range written {
		gologger.Info().Msgf("Wrote %d %v to %v", f.Count, f.Category, f.Path)
	}
	if err != nil {
		gologger.Fatal().Msgf("failed to write wordlists got %v", err)
	}
}
