package templates

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/runar/internal/models"
)

func action(op string, sig models.ReturnSignature) models.ActionMetadata {
	return models.ActionMetadata{
		OperationName: op,
		MethodName:    "Do",
		ReceiverType:  "Svc",
		Return:        sig,
		PassParams:    true,
	}
}

func TestNewActionData(t *testing.T) {
	data := NewActionData(action("do", models.ReturnSignature{Shape: models.RawResult, Values: 2}))
	assert.Equal(t, "actionSvcDo", data.HandlerName)
	assert.Equal(t, "RawResult", data.Shape)
	assert.Equal(t, "service.Do(ctx, params)", data.Call)
	assert.Equal(t, []string{"r0", "r1"}, data.Results)

	noParams := action("do", models.ReturnSignature{Shape: models.WrappedResponse, Values: 1, PointerResponse: true})
	noParams.PassParams = false
	data = NewActionData(noParams)
	assert.Equal(t, "service.Do(ctx)", data.Call)
	assert.Nil(t, data.Results)
	assert.True(t, data.PointerResponse)
}

func TestGenerateHandler(t *testing.T) {
	tests := []struct {
		name     string
		sig      models.ReturnSignature
		contains []string
		excludes []string
	}{
		{
			name: "wrapped pointer response",
			sig:  models.ReturnSignature{Shape: models.WrappedResponse, Values: 1, PointerResponse: true},
			contains: []string{
				"service, err := runar.Downcast[*Svc](svc)",
				"resp, err := service.Do(ctx, params)",
				`return nil, runar.WrapExecution("do", err)`,
				"return resp, nil",
			},
			excludes: []string{"runar.Success", "runar.ToValue"},
		},
		{
			name:     "wrapped value response",
			sig:      models.ReturnSignature{Shape: models.WrappedResponse, Values: 1},
			contains: []string{"return &resp, nil"},
			excludes: []string{"runar.Success"},
		},
		{
			name: "custom response type",
			sig:  models.ReturnSignature{Shape: models.WrappedResponse, Values: 1, PointerResponse: true, ConvertResponse: true},
			contains: []string{
				"resp, err := service.Do(ctx, params)",
				"out, err := runar.ResponseOf(resp)",
				"return out, nil",
			},
			excludes: []string{"return resp, nil", "runar.Success"},
		},
		{
			name:     "custom response type by value",
			sig:      models.ReturnSignature{Shape: models.WrappedResponse, Values: 1, ConvertResponse: true},
			contains: []string{"out, err := runar.ResponseOf(&resp)"},
		},
		{
			name: "raw result with one value",
			sig:  models.ReturnSignature{Shape: models.RawResult, Values: 1},
			contains: []string{
				"r0, err := service.Do(ctx, params)",
				`return nil, runar.WrapExecution("do", err)`,
				"payload, err := runar.ToValue(r0)",
				`return runar.Success("Operation succeeded", payload), nil`,
			},
		},
		{
			name:     "raw result with several values",
			sig:      models.ReturnSignature{Shape: models.RawResult, Values: 2},
			contains: []string{"r0, r1, err := service.Do(ctx, params)", "runar.ToValue([]any{r0, r1})"},
		},
		{
			name: "lone error",
			sig:  models.ReturnSignature{Shape: models.RawResult},
			contains: []string{
				"err = service.Do(ctx, params)",
				`return runar.Success("Operation succeeded", nil), nil`,
			},
			excludes: []string{"runar.ToValue"},
		},
		{
			name:     "raw value",
			sig:      models.ReturnSignature{Shape: models.Raw, Values: 1},
			contains: []string{"r0 := service.Do(ctx, params)", "payload, err := runar.ToValue(r0)"},
			excludes: []string{`runar.WrapExecution("do", err)` + "\n\t}\n\tpayload"},
		},
		{
			name:     "no results",
			sig:      models.ReturnSignature{Shape: models.Raw},
			contains: []string{"\tservice.Do(ctx, params)\n", `return runar.Success("Operation succeeded", nil), nil`},
			excludes: []string{"runar.ToValue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateHandler(action("do", tt.sig))
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, code, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, code, unwanted)
			}
		})
	}
}

func TestGenerateActionFile(t *testing.T) {
	actions := []models.ActionMetadata{
		action("get_user", models.ReturnSignature{Shape: models.WrappedResponse, Values: 1, PointerResponse: true}),
		{
			OperationName: "Count",
			MethodName:    "Count",
			ReceiverType:  "Svc",
			Return:        models.ReturnSignature{Shape: models.RawResult, Values: 1},
		},
	}

	code, err := GenerateActionFile("users", actions)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, models.GeneratedHeader+"\n"))
	assert.Contains(t, code, "package users")
	assert.Contains(t, code, `"github.com/toyz/runar/pkg/runar"`)
	assert.Contains(t, code, `Name:        "get_user",`)
	assert.Contains(t, code, "ServiceType: runar.TypeOf[*Svc](),")
	assert.Contains(t, code, "Handler:     actionSvcDo,")
	assert.Contains(t, code, "func actionSvcCount(")
	assert.Contains(t, code, "service.Count(ctx)")

	_, err = parser.ParseFile(token.NewFileSet(), "autogen_actions.go", code, parser.AllErrors)
	assert.NoError(t, err, code)
}

func TestPayloadExpr(t *testing.T) {
	assert.Equal(t, "r0", payloadExpr([]string{"r0"}))
	assert.Equal(t, "[]any{r0, r1, r2}", payloadExpr([]string{"r0", "r1", "r2"}))
}

func TestTemplateRegistry(t *testing.T) {
	for _, name := range []string{"file", "handler", "wrapped-response", "raw-result", "raw", "success"} {
		_, ok := DefaultTemplateRegistry.Get(name)
		assert.True(t, ok, name)
	}
	assert.Panics(t, func() { DefaultTemplateRegistry.MustGet("missing") })
}

func TestGenerateActionFile_CollidingHandlerNames(t *testing.T) {
	sig := models.ReturnSignature{Shape: models.RawResult}
	actions := []models.ActionMetadata{
		{OperationName: "a", MethodName: "ServiceGet", ReceiverType: "User", Return: sig},
		{OperationName: "b", MethodName: "Get", ReceiverType: "UserService", Return: sig},
		{OperationName: "c", MethodName: "Get2", ReceiverType: "UserService", Return: sig},
	}

	assert.Equal(t,
		[]string{"actionUserServiceGet", "actionUserServiceGet3", "actionUserServiceGet2"},
		uniqueHandlerNames(actions))

	code, err := GenerateActionFile("users", actions)
	require.NoError(t, err)
	for _, name := range []string{"actionUserServiceGet", "actionUserServiceGet2", "actionUserServiceGet3"} {
		assert.Equal(t, 1, strings.Count(code, "func "+name+"("), name)
		assert.Equal(t, 1, strings.Count(code, "Handler:     "+name+","), name)
	}
}
