package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordbee"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// defaultConfigPath is the solver wordlist config used when -wc is not given
var defaultConfigPath = filepath.Join(getUserHomeDir(), ".config/wordbee/config.yaml")

// loadSolverConfig reads the solver config from path, falling back to the
// default config which is created on first use
func loadSolverConfig(path string) (*wordbee.Config, error) {
	if path != "" {
		return wordbee.NewConfig(path)
	}
	if fileutil.FileExists(defaultConfigPath) {
		return wordbee.NewConfig(defaultConfigPath)
	}
	if err := os.MkdirAll(filepath.Dir(defaultConfigPath), 0700); err == nil {
		if err := wordbee.GenerateSample(defaultConfigPath); err != nil {
			gologger.Error().Msgf("failed to save default config to %v got: %v", defaultConfigPath, err)
		}
	}
	return wordbee.NewConfigFromEnv()
}
