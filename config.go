package wordbee

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config describes where the solver finds its wordlists.
// Every field can be overridden with its WORDBEE_* environment variable.
type Config struct {
	WordlistDir string `yaml:"wordlist-dir" env:"WORDBEE_WORDLIST_DIR" env-default:"wordlists"`
	Common      string `yaml:"common" env:"WORDBEE_COMMON" env-default:"en_US_common.txt"`
	Profanity   string `yaml:"profanity" env:"WORDBEE_PROFANITY" env-default:"en_US_profanity.txt"`
	ProperNouns string `yaml:"proper-nouns" env:"WORDBEE_PROPER_NOUNS" env-default:"en_US_proper_nouns.txt"`
	Acronyms    string `yaml:"acronyms" env:"WORDBEE_ACRONYMS" env-default:"en_US_acronyms.txt"`
	Other       string `yaml:"other" env:"WORDBEE_OTHER" env-default:"words_alpha.txt"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(filePath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewConfigFromEnv builds a config from defaults and WORDBEE_* variables only
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path joins name with the wordlist directory
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.WordlistDir, name)
}

// Generate Sample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
