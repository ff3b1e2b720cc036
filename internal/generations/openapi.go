package generations

import "github.com/JaimeStill/weekly/pkg/openapi"

// Schemas are the component schemas referenced by Paths.
var Schemas = map[string]*openapi.Schema{
	"Generation": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":           {Type: "string", Format: "uuid"},
			"template":     {Type: "string"},
			"tone":         {Type: "string"},
			"seed":         {Type: "integer", Description: "Rotation seed, 0 <= seed < 1000003"},
			"fragments":    {Type: "integer", Description: "Number of note fragments extracted"},
			"notes_length": {Type: "integer", Description: "Length of the cleaned notes in characters"},
			"created_at":   {Type: "string", Format: "date-time"},
		},
	},
	"GenerationPage": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"data":        {Type: "array", Items: openapi.SchemaRef("Generation")},
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
	},
}

// Paths describes the routes of Handler relative to the API base path.
var Paths = map[string]*openapi.PathItem{
	"/generations": {
		Get: &openapi.Operation{
			Summary: "List recorded generations, newest first",
			Tags:    []string{"generations"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("template", "string", "Only generations of this template", false),
				openapi.QueryParam("tone", "string", "Only generations of this tone", false),
				openapi.QueryParam("sort", "string", "Sort fields, e.g. -created_at,template", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of generations", "GenerationPage"),
				500: openapi.ResponseRef("InternalError"),
			},
		},
	},
	"/generations/{id}": {
		Get: &openapi.Operation{
			Summary:    "Find a recorded generation",
			Tags:       []string{"generations"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Generation id")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Generation", "Generation"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	},
}
