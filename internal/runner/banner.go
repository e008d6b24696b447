package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                       ____
 _    _____  _______/ / /_  ___ ___
| |/|/ / _ \/ __/ _  / __ \/ -_) -_)
|__,__/\___/_/  \_,_/_.___/\__/\__/
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates wordbee
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("wordbee", version)()
	}
}
