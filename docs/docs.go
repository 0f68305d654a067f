// Package docs holds the Swagger document for the JSON API. Regenerate with `swag init -g cmd/web/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
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
        "/form": {
            "get": {
                "description": "Return the draft, inline errors and last accepted snapshot of the session's form.",
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Get Form State",
                "parameters": [
                    {"type": "string", "description": "Session id (or form_session cookie)", "name": "X-Form-Session", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "description": "Start a fresh form under a new session id, discarding the previous session's draft and snapshot.",
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Mount Form",
                "parameters": [
                    {"type": "string", "description": "Previous session id, discarded on mount", "name": "X-Form-Session", "in": "header"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/form/fields/{field}": {
            "patch": {
                "description": "Change one field of the draft. After a submit attempt the field is re-validated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Edit Field",
                "parameters": [
                    {"enum": ["name", "email", "category", "message", "subscribe"], "type": "string", "description": "Field name", "name": "field", "in": "path", "required": true},
                    {"description": "New value", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.EditFieldRequest"}},
                    {"type": "string", "description": "Session id", "name": "X-Form-Session", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/form/submit": {
            "post": {
                "description": "Validate all five fields at once. On success the snapshot is replaced and echoed back.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Submit Form",
                "parameters": [
                    {"description": "Form values", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.FormValues"}},
                    {"type": "string", "description": "Session id", "name": "X-Form-Session", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/form/validate": {
            "post": {
                "description": "Check values against every rule without touching any session.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["form"],
                "summary": "Validate Form",
                "parameters": [
                    {"description": "Form values", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.FormValues"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FormValues": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "category": {"type": "string", "enum": ["bug", "feature", "question", "other"]},
                "message": {"type": "string"},
                "subscribe": {"type": "boolean"}
            }
        },
        "v1.EditFieldRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Go Form Template API",
	Description:      "JSON API of the example form: mount, edit, submit and validate.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
