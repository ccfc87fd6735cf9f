// Package docs registers the swagger spec served at /swagger/doc.json.
// Hand-maintained here in place of `swag init` output; keep the @Param and
// @Router annotations in pkg/server/rest in sync with this template.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/search/shortest-path": {
            "post": {
                "description": "runs the sequential A* search between two node ids in the demo graph",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "sequential shortest-path query",
                "parameters": [{
                    "description": "start and goal node ids, and optional heuristic selection",
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {"type": "object"}
                }],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/search/shortest-path-parallel": {
            "post": {
                "description": "runs one of the four parallel A* variants between two node ids in the demo graph",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "parallel shortest-path query",
                "parameters": [{
                    "description": "start/goal node ids, worker count, and variant selection",
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {"type": "object"}
                }],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/search/graph": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "list demo graph nodes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array"}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported swagger spec metadata at fixed demo values;
// nothing in main overrides them.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "parastar demo API",
	Description:      "in-memory parallel A* search engine, exposed over HTTP for demonstration",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
