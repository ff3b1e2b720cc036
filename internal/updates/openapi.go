package updates

import "github.com/JaimeStill/weekly/pkg/openapi"

// Schemas are the component schemas referenced by Paths.
var Schemas = map[string]*openapi.Schema{
	"ComposeRequest": {
		Type:     "object",
		Required: []string{"template", "tone", "notes"},
		Properties: map[string]*openapi.Schema{
			"template": {Type: "string", Example: "Exam and assessment update"},
			"tone":     {Type: "string", Example: "Short and efficient"},
			"notes":    {Type: "string", Example: "Students reviewed fractions.\nSome forgot calculators."},
		},
	},
	"Document": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"english":   {Type: "string", Description: "English narrative"},
			"chinese":   {Type: "string", Description: "Chinese narrative"},
			"bilingual": {Type: "string", Description: "English narrative, a blank line, then the Chinese narrative"},
			"captions":  {Type: "string", Description: "Three numbered caption lines"},
		},
	},
	"BatchRequest": {
		Type:     "object",
		Required: []string{"requests"},
		Properties: map[string]*openapi.Schema{
			"requests": {Type: "array", Items: openapi.SchemaRef("ComposeRequest")},
		},
	},
	"BatchResult": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"index":    {Type: "integer"},
			"document": openapi.SchemaRef("Document"),
			"error":    {Type: "string"},
		},
	},
	"Catalog": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"templates": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"tones":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	},
}

// Paths describes the routes of Handler relative to the API base path.
var Paths = map[string]*openapi.PathItem{
	"/updates": {
		Post: &openapi.Operation{
			Summary:     "Compose a weekly update",
			Tags:        []string{"updates"},
			RequestBody: openapi.RequestBodyJSON("ComposeRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Composed document", "Document"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	},
	"/updates/preview": {
		Post: &openapi.Operation{
			Summary:     "Compose a weekly update and render it as HTML",
			Tags:        []string{"updates"},
			RequestBody: openapi.RequestBodyJSON("ComposeRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseHTML("Rendered document"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	},
	"/updates/batch": {
		Post: &openapi.Operation{
			Summary:     "Compose many weekly updates",
			Tags:        []string{"updates"},
			RequestBody: openapi.RequestBodyJSON("BatchRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseArray("Per-request results in input order", "BatchResult"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	},
	"/updates/catalog": {
		Get: &openapi.Operation{
			Summary: "List accepted templates and tones",
			Tags:    []string{"updates"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Template and tone names", "Catalog"),
			},
		},
	},
}
