package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerFileTemplates()
	registry.registerHandlerTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerFileTemplates registers the templates that frame a generated file
func (tr *TemplateRegistry) registerFileTemplates() {
	tr.templates["file"] = `// Code generated by runar. DO NOT EDIT.

package {{.PackageName}}

import (
	"context"

	"{{.RuntimeImport}}"
)

// RegisterActions registers every runar action declared in package {{.PackageName}}.
func RegisterActions(r runar.Registrar) error {
	return r.Register(
{{- range .Actions}}
		runar.Descriptor{
			Name:        {{quote .OperationName}},
			ServiceType: runar.TypeOf[*{{.ReceiverType}}](),
			Handler:     {{.HandlerName}},
		},
{{- end}}
	)
}
{{range .Actions}}
{{template "handler" .}}
{{end}}`
}

// registerHandlerTemplates registers one handler body per return shape
func (tr *TemplateRegistry) registerHandlerTemplates() {
	tr.templates["handler"] = `// {{.HandlerName}} invokes {{.ReceiverType}}.{{.MethodName}} as the {{quote .OperationName}} action.
func {{.HandlerName}}(ctx context.Context, svc runar.ServiceRef, operation string, params runar.Params) (*runar.ServiceResponse, error) {
	service, err := runar.Downcast[*{{.ReceiverType}}](svc)
	if err != nil {
		return nil, err
	}
{{if eq .Shape "WrappedResponse"}}{{template "wrapped-response" .}}{{else if eq .Shape "RawResult"}}{{template "raw-result" .}}{{else}}{{template "raw" .}}{{end}}
}`

	tr.templates["wrapped-response"] = `	resp, err := {{.Call}}
	if err != nil {
		return nil, runar.WrapExecution({{quote .OperationName}}, err)
	}
{{if .ConvertResponse}}	out, err := runar.ResponseOf({{if .PointerResponse}}resp{{else}}&resp{{end}})
	if err != nil {
		return nil, runar.WrapExecution({{quote .OperationName}}, err)
	}
	return out, nil{{else}}	return {{if .PointerResponse}}resp{{else}}&resp{{end}}, nil{{end}}`

	tr.templates["raw-result"] = `	{{if .Results}}{{join .Results ", "}}, err := {{.Call}}{{else}}err = {{.Call}}{{end}}
	if err != nil {
		return nil, runar.WrapExecution({{quote .OperationName}}, err)
	}
{{template "success" .}}`

	tr.templates["raw"] = `	{{if .Results}}{{join .Results ", "}} := {{end}}{{.Call}}
{{template "success" .}}`

	tr.templates["success"] = `{{if .Results}}	payload, err := runar.ToValue({{payload .Results}})
	if err != nil {
		return nil, runar.WrapExecution({{quote .OperationName}}, err)
	}
	return runar.Success("Operation succeeded", payload), nil{{else}}	return runar.Success("Operation succeeded", nil), nil{{end}}`
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
