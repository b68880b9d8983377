package templates

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/toyz/runar/internal/errors"
	"github.com/toyz/runar/internal/models"
)

// RuntimeImport is the import path of the runtime package generated code depends on
const RuntimeImport = "github.com/toyz/runar/pkg/runar"

// FileData is the input of the "file" template
type FileData struct {
	PackageName   string
	RuntimeImport string
	Actions       []ActionData
}

// ActionData describes one generated handler
type ActionData struct {
	HandlerName     string
	OperationName   string
	MethodName      string
	ReceiverType    string
	Shape           string   // models.ReturnShape name
	Call            string   // method invocation expression
	Results         []string // result variables preceding the error, if any
	PointerResponse bool
	ConvertResponse bool
}

// NewActionData converts synthesized metadata into template input
func NewActionData(action models.ActionMetadata) ActionData {
	args := "ctx"
	if action.PassParams {
		args += ", params"
	}

	results := make([]string, action.Return.Values)
	for i := range results {
		results[i] = "r" + strconv.Itoa(i)
	}
	if action.Return.Shape == models.WrappedResponse {
		results = nil
	}

	return ActionData{
		HandlerName:     HandlerName(action.ReceiverType, action.MethodName),
		OperationName:   action.OperationName,
		MethodName:      action.MethodName,
		ReceiverType:    action.ReceiverType,
		Shape:           action.Return.Shape.String(),
		Call:            "service." + action.MethodName + "(" + args + ")",
		Results:         results,
		PointerResponse: action.Return.PointerResponse,
		ConvertResponse: action.Return.ConvertResponse,
	}
}

// HandlerName returns the identifier of the generated handler for a method
func HandlerName(receiverType, methodName string) string {
	return "action" + receiverType + methodName
}

// GenerateActionFile renders the complete source of an autogen_actions.go file
func GenerateActionFile(packageName string, actions []models.ActionMetadata) (string, error) {
	data := FileData{
		PackageName:   packageName,
		RuntimeImport: RuntimeImport,
	}
	names := uniqueHandlerNames(actions)
	for i, action := range actions {
		ad := NewActionData(action)
		ad.HandlerName = names[i]
		data.Actions = append(data.Actions, ad)
	}
	return executeTemplate("file", data)
}

// uniqueHandlerNames assigns every action a distinct handler identifier.
// Receiver and method names are concatenated, so (*User).ServiceGet and
// (*UserService).Get share a base name; later ones get a numeric suffix
// that collides with no other base name.
func uniqueHandlerNames(actions []models.ActionMetadata) []string {
	bases := make(map[string]bool, len(actions))
	for _, action := range actions {
		bases[HandlerName(action.ReceiverType, action.MethodName)] = true
	}

	used := make(map[string]bool, len(actions))
	names := make([]string, len(actions))
	for i, action := range actions {
		base := HandlerName(action.ReceiverType, action.MethodName)
		name := base
		for n := 2; used[name] || (name != base && bases[name]); n++ {
			name = base + strconv.Itoa(n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// GenerateHandler renders the handler function for a single action
func GenerateHandler(action models.ActionMetadata) (string, error) {
	return executeTemplate("handler", NewActionData(action))
}

// payloadExpr is the expression converted into the success payload
func payloadExpr(results []string) string {
	if len(results) == 1 {
		return results[0]
	}
	return "[]any{" + strings.Join(results, ", ") + "}"
}

// executeTemplate executes a registered template with every other
// registered template available for nesting
func executeTemplate(name string, data interface{}) (string, error) {
	funcMap := template.FuncMap{
		"quote":   strconv.Quote,
		"join":    strings.Join,
		"payload": payloadExpr,
	}

	root := template.New(name).Funcs(funcMap)
	for tmplName, text := range DefaultTemplateRegistry.templates {
		if _, err := root.New(tmplName).Parse(text); err != nil {
			return "", errors.WrapTemplateError(tmplName, "parse", err)
		}
	}

	var buf bytes.Buffer
	if err := root.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}
