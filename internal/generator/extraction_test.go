package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/runar/internal/models"
)

func TestGenerateParameterExtraction(t *testing.T) {
	params := []models.Parameter{
		{Name: "ctx", Type: "context.Context"},
		{Name: "user_id", Type: "string"},
		{Name: "_context", Type: "context.Context"},
		{Name: "filter", Type: "*Filter", IsReference: true},
	}

	expected := "\tuser_id, err := runar.ExtractParameter[string](params, \"user_id\")\n" +
		"\tif err != nil {\n\t\treturn nil, err\n\t}\n" +
		"\tfilter, err := runar.ExtractParameter[*Filter](params, \"filter\")\n" +
		"\tif err != nil {\n\t\treturn nil, err\n\t}\n"

	assert.Equal(t, expected, GenerateParameterExtraction(params))
}

func TestGenerateParameterExtraction_OnlyContext(t *testing.T) {
	params := []models.Parameter{
		{Name: "context", Type: "context.Context"},
		{Name: "_ctx", Type: "context.Context"},
	}
	assert.Empty(t, GenerateParameterExtraction(params))
	assert.Empty(t, GenerateParameterExtraction(nil))
}
