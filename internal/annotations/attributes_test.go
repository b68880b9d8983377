package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AttributeOptions
	}{
		{"empty", "", AttributeOptions{}},
		{"whitespace only", "   ", AttributeOptions{}},
		{"name", `name = "get_user"`, AttributeOptions{"name": "get_user"}},
		{"no spaces", `name="get_user"`, AttributeOptions{"name": "get_user"}},
		{"wrapped in parens", `(name = "get_user")`, AttributeOptions{"name": "get_user"}},
		{"raw string", "name = `list`", AttributeOptions{"name": "list"}},
		{"escaped quote", `name = "say \"hi\""`, AttributeOptions{"name": `say "hi"`}},
		{"multiple items", `name = "x", version = "2"`, AttributeOptions{"name": "x", "version": "2"}},
		{"trailing comma", `name = "x",`, AttributeOptions{"name": "x"}},
		{"non-string values skipped", `name = "x", timeout = 3, strict = true`, AttributeOptions{"name": "x"}},
		{"flags and nested lists skipped", `cached, retry(max = "3"), name = "x"`, AttributeOptions{"name": "x"}},
		{"later duplicate wins", `name = "a", name = "b"`, AttributeOptions{"name": "b"}},
		{"unrelated key only", `foo = "bar"`, AttributeOptions{"foo": "bar"}},
		{"empty name kept", `name = ""`, AttributeOptions{"name": ""}},
		{"malformed", `name = `, AttributeOptions{}},
		{"garbage", `=== "x"`, AttributeOptions{}},
		{"unbalanced parens", `(name = "x"`, AttributeOptions{}},
		{"missing key", `= "x"`, AttributeOptions{}},
		{"bare string", `"x"`, AttributeOptions{}},
		{"lone comma", `,`, AttributeOptions{}},
		{"empty parens", `()`, AttributeOptions{}},
		{"empty nested list", `retry(), name = "x"`, AttributeOptions{"name": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, ParseAttributes(tt.input))
			})
		})
	}
}

func TestOperationName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"explicit name", `name = "get_user"`, "get_user"},
		{"absent", "", "GetUser"},
		{"explicit empty counts as absent", `name = ""`, "GetUser"},
		{"other keys only", `foo = "bar"`, "GetUser"},
		{"malformed falls back", `name = (`, "GetUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OperationName(ParseAttributes(tt.input), "GetUser"))
		})
	}
}

func TestParseComment(t *testing.T) {
	tests := []struct {
		input    string
		ok       bool
		expected Directive
	}{
		{"//runar::action", true, Directive{Kind: "action"}},
		{`//runar::action name = "get_user"`, true, Directive{Kind: "action", Attributes: `name = "get_user"`}},
		{`// runar::action(name = "x")`, true, Directive{Kind: "action", Attributes: `(name = "x")`}},
		{"//runar::actoin", true, Directive{Kind: "actoin"}},
		{"// plain comment", false, Directive{}},
		{"//runar::", false, Directive{}},
		{"/* runar::action */", false, Directive{}},
		{"//other::route GET /x", false, Directive{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, ok := ParseComment(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDirective(t *testing.T) {
	attrs, ok := ParseDirective(`//runar::action name = "list"`)
	assert.True(t, ok)
	assert.Equal(t, `name = "list"`, attrs)

	_, ok = ParseDirective("//runar::service")
	assert.False(t, ok)
}
