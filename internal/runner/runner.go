package runner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/wordbee"
	updateutils "github.com/projectdiscovery/utils/update"
)

// common holds flags shared by both tools
type common struct {
	Config             string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

// ConvertOptions are the dicconv cli options
type ConvertOptions struct {
	common
	Dictionary     string // prefix of the .dic/.aff pair, ex: wordlists/en_US
	OutputDir      string
	OutputTemplate string
	Workers        int
}

// DictionaryPath returns the .dic path of the dictionary prefix
func (o *ConvertOptions) DictionaryPath() string {
	return o.Dictionary + ".dic"
}

// AffixPath returns the .aff path of the dictionary prefix
func (o *ConvertOptions) AffixPath() string {
	return o.Dictionary + ".aff"
}

// Name returns the base name used in output file names
func (o *ConvertOptions) Name() string {
	return filepath.Base(o.Dictionary)
}

// ParseConvertFlags parses dicconv flags
func ParseConvertFlags() *ConvertOptions {
	opts := &ConvertOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Expand a hunspell .dic/.aff pair into classified plain text wordlists.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Dictionary, "dictionary", "d", "", "dictionary prefix, reads <prefix>.dic and <prefix>.aff (ex: wordlists/en_US)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputDir, "output", "o", "", "output directory for wordlists (default dictionary directory)"),
		flagSet.StringVarP(&opts.OutputTemplate, "output-template", "ot", wordbee.DefaultOutputTemplate, "output file name template ({{name}}, {{category}})"),
	)

	flagSet.CreateGroup("optimization", "Optimization",
		flagSet.IntVarP(&opts.Workers, "workers", "w", 1, "number of goroutines expanding stems"),
	)

	registerCommon(flagSet, &opts.common)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	opts.common.apply(flagSet, "dicconv")

	if opts.Dictionary == "" {
		gologger.Fatal().Msgf("dicconv: no dictionary prefix given (-d)")
	}
	// accept the prefix with or without extension
	opts.Dictionary = strings.TrimSuffix(strings.TrimSuffix(opts.Dictionary, ".dic"), ".aff")
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Dir(opts.Dictionary)
	}
	return opts
}

// SolveOptions are the beesolver cli options
type SolveOptions struct {
	common
	Letters       string
	WordlistDir   string
	WordlistCfg   string
	ShowProfanity bool
	HideAcronyms  bool
	Output        string
}

// ParseSolveFlags parses beesolver flags
func ParseSolveFlags() *SolveOptions {
	opts := &SolveOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Solve NYT Spelling Bee puzzles.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Letters, "letters", "l", "", "7 unique letters, the first is the required main letter (ex: LAERTIV)"),
		flagSet.StringVarP(&opts.WordlistDir, "wordlist-dir", "wd", "", "directory holding the wordlists (overrides config)"),
		flagSet.StringVarP(&opts.WordlistCfg, "wordlist-config", "wc", "", `wordlist config file (default '$HOME/.config/wordbee/config.yaml')`),
	)

	flagSet.CreateGroup("filter", "Filter",
		flagSet.BoolVarP(&opts.ShowProfanity, "show-profanity", "sp", false, "include profanity section in output"),
		flagSet.BoolVarP(&opts.HideAcronyms, "hide-acronyms", "ha", false, "exclude acronyms section from output"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write solutions"),
	)

	registerCommon(flagSet, &opts.common)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	opts.common.apply(flagSet, "beesolver")

	if opts.Letters == "" {
		gologger.Fatal().Msgf("beesolver: no letters given (-l)")
	}
	return opts
}

// SolverOptions builds library solver options from cli options
func (o *SolveOptions) SolverOptions() (*wordbee.SolverOptions, error) {
	cfg, err := loadSolverConfig(o.WordlistCfg)
	if err != nil {
		return nil, err
	}
	if o.WordlistDir != "" {
		cfg.WordlistDir = o.WordlistDir
	}
	return &wordbee.SolverOptions{
		Config:        cfg,
		ShowProfanity: o.ShowProfanity,
		HideAcronyms:  o.HideAcronyms,
	}, nil
}

func registerCommon(flagSet *goflags.FlagSet, c *common) {
	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&c.Config, "config", "", "cli flag config file"),
	)
	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&c.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&c.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display wordbee version"),
	)
	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update wordbee to latest version"),
		flagSet.BoolVarP(&c.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic wordbee update check"),
	)
}

// apply merges the flag config file, sets log level and runs the update check
func (c *common) apply(flagSet *goflags.FlagSet, tool string) {
	if c.Config != "" {
		if err := flagSet.MergeConfigFile(c.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if c.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if c.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !c.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("wordbee")()
		if err != nil {
			if c.Verbose {
				gologger.Error().Msgf("%v version check failed: %v", tool, err.Error())
			}
		} else {
			gologger.Info().Msgf("Current %v version %v %v", tool, version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
