package wordbee

import (
	"fmt"
	"slices"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// Replace replaces placeholders in template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// validateTemplate checks the template compiles, uses the required
// variable and nothing outside vars
func validateTemplate(template, required string, vars ...string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return err
	}
	if !slices.Contains(getAllVars(template), required) {
		return fmt.Errorf("template `%v` must contain {{%v}}", template, required)
	}
	sample := make(map[string]interface{}, len(vars))
	for _, v := range vars {
		sample[v] = "temp"
	}
	return checkMissing(template, sample)
}
