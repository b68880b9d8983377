package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/runar/internal/models"
)

// contextParamNames are skipped by GenerateParameterExtraction; the handler
// passes its own context instead.
var contextParamNames = map[string]bool{
	"context":  true,
	"ctx":      true,
	"_context": true,
	"_ctx":     true,
}

// GenerateParameterExtraction emits statements that pull each parameter out
// of the request's parameter bag by name, returning early when one is missing
// or cannot be decoded. It is not used by the generated adapters, which pass
// the bag to the method unchanged.
func GenerateParameterExtraction(params []models.Parameter) string {
	var b strings.Builder
	for _, p := range params {
		if contextParamNames[p.Name] {
			continue
		}
		fmt.Fprintf(&b, "\t%s, err := runar.ExtractParameter[%s](params, %q)\n", p.Name, p.Type, p.Name)
		b.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	}
	return b.String()
}
