package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Parameters []struct {
		Name        string `json:"name"`
		In          string `json:"in"`
		Description string `json:"description"`
	} `json:"parameters"`
}

func readPaths(t *testing.T) map[string]map[string]operation {
	t.Helper()
	doc, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var spec struct {
		BasePath string                          `json:"basePath"`
		Paths    map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	assert.Equal(t, "/api/v1", spec.BasePath)
	return spec.Paths
}

func TestPaymentTakesPaymentID(t *testing.T) {
	op, ok := readPaths(t)["/payments/{id}"]["get"]
	require.True(t, ok)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "path", op.Parameters[0].In)
	assert.Equal(t, "Payment ID", op.Parameters[0].Description)
}

func TestEveryRouteIsDescribed(t *testing.T) {
	paths := readPaths(t)
	for path, method := range map[string]string{
		"/auth/code":             "post",
		"/auth/login":            "post",
		"/auth/logout":           "post",
		"/config":                "get",
		"/charities":             "get",
		"/me":                    "patch",
		"/me/password":           "post",
		"/goals":                 "post",
		"/goals/deadline-bounds": "get",
		"/goals/{id}":            "get",
		"/goals/{id}/supervise":  "post",
		"/supervisions":          "get",
		"/lists/{list}/sort":     "post",
	} {
		_, ok := paths[path][method]
		assert.True(t, ok, "%s %s", method, path)
	}
}
