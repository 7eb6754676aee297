// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/onboarding/{screen}": {
            "get": {
                "tags": ["onboarding"],
                "summary": "Open or resume the onboarding flow at a screen",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "screen", "in": "path", "required": true},
                    {"type": "boolean", "name": "debug", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.viewResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/v1/onboarding": {
            "get": {
                "tags": ["onboarding"],
                "summary": "Get the current onboarding view",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "screen", "in": "query"},
                    {"type": "boolean", "name": "debug", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.viewResponse"}}}
            }
        },
        "/v1/onboarding/start": {"post": {"tags": ["onboarding"], "summary": "Leave the welcome screen", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/skip": {"post": {"tags": ["onboarding"], "summary": "Skip straight to the worker tips", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/goal": {
            "post": {
                "tags": ["onboarding"],
                "summary": "Choose the onboarding goal",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.selectGoalRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/v1/onboarding/category": {
            "post": {
                "tags": ["onboarding"],
                "summary": "Browse a sector category",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.selectCategoryRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}
            }
        },
        "/v1/onboarding/sector": {
            "post": {
                "tags": ["onboarding"],
                "summary": "Choose a sector from the category list",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.selectSectorRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}
            }
        },
        "/v1/onboarding/sector/search": {
            "post": {
                "tags": ["onboarding"],
                "summary": "Choose a sector found by search",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.selectSectorRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}
            }
        },
        "/v1/onboarding/sector/skip": {"post": {"tags": ["onboarding"], "summary": "Continue without a sector", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/tips/continue": {"post": {"tags": ["onboarding"], "summary": "Finish the tips and open the dashboard", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/mode/toggle": {"post": {"tags": ["onboarding"], "summary": "Switch between manager and worker dashboards", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/back": {"post": {"tags": ["onboarding"], "summary": "Go to the previous screen", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/reset": {"post": {"tags": ["onboarding"], "summary": "Forget the flow and start over", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/pro": {"post": {"tags": ["onboarding"], "summary": "Register interest in the Pro tier", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}}},
        "/v1/onboarding/first-value": {
            "post": {
                "tags": ["onboarding"],
                "summary": "Record the first action taken on a dashboard",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.firstValueRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.actionResponse"}}}
            }
        },
        "/v1/onboarding/events": {"get": {"tags": ["onboarding"], "summary": "Read the session's analytics event log", "parameters": [{"type": "boolean", "name": "debug", "in": "query"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/onboarding/preferences": {"get": {"tags": ["onboarding"], "summary": "Read the device's saved preferences", "responses": {"200": {"description": "OK"}}}},
        "/v1/onboarding/completed": {"get": {"tags": ["onboarding"], "summary": "Report whether this device finished onboarding and where it stopped", "responses": {"200": {"description": "OK"}}}},
        "/v1/catalog/categories": {"get": {"tags": ["catalog"], "summary": "List sector categories with their sector counts", "responses": {"200": {"description": "OK"}}}},
        "/v1/catalog/categories/{category}/sectors": {"get": {"tags": ["catalog"], "summary": "List the sectors of a category in catalog order", "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/v1/catalog/sectors": {"get": {"tags": ["catalog"], "summary": "Search sectors", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/v1/catalog/sectors/{name}": {"get": {"tags": ["catalog"], "summary": "Look up a sector by exact name", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.selectGoalRequest": {"type": "object", "required": ["goal"], "properties": {"goal": {"type": "string", "enum": ["manager", "worker", "both"]}}},
        "handler.selectCategoryRequest": {"type": "object", "required": ["category"], "properties": {"category": {"type": "string", "maxLength": 100}}},
        "handler.selectSectorRequest": {"type": "object", "required": ["sector"], "properties": {"sector": {"type": "string", "maxLength": 100}}},
        "handler.firstValueRequest": {"type": "object", "required": ["type"], "properties": {"type": {"type": "string", "maxLength": 64}}},
        "handler.viewResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "object"},
                "location": {"type": "string"},
                "canGoBack": {"type": "boolean"},
                "canToggle": {"type": "boolean"},
                "events": {"type": "array", "items": {"type": "object"}}
            }
        },
        "handler.actionResponse": {
            "type": "object",
            "properties": {
                "applied": {"type": "boolean"},
                "view": {"$ref": "#/definitions/handler.viewResponse"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Onboarding Flow API",
	Description:      "Guided onboarding navigation with dual-scope persistence and an analytics event log.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
