// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/geocode": {
            "get": {
                "produces": ["application/json"],
                "summary": "Resolve a place name",
                "parameters": [
                    {"type": "string", "description": "place name", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LocationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/reverse-geocode": {
            "get": {
                "produces": ["application/json"],
                "summary": "Find the address at a coordinate",
                "parameters": [
                    {"type": "number", "description": "latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "longitude", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LocationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/distance": {
            "get": {
                "produces": ["application/json"],
                "summary": "Great-circle distance between two places",
                "parameters": [
                    {"type": "string", "description": "first place", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "second place", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Distance"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "summary": "Recorded lookups, newest first",
                "parameters": [
                    {"type": "integer", "description": "maximum number of records, 0 for all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Location"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/map": {
            "get": {
                "produces": ["text/html"],
                "summary": "Interactive map document",
                "parameters": [
                    {"type": "string", "description": "place name", "name": "q", "in": "query"},
                    {"type": "number", "description": "latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "longitude", "name": "lon", "in": "query"},
                    {"type": "boolean", "description": "include nearby points of interest", "name": "pois", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.LocationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "query": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "display_name": {"type": "string"},
                "kind": {"type": "string"},
                "created_at": {"type": "string"},
                "warning": {"type": "string"}
            }
        },
        "models.Location": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "query": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "display_name": {"type": "string"},
                "kind": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.Distance": {
            "type": "object",
            "properties": {
                "from": {"$ref": "#/definitions/models.Location"},
                "to": {"$ref": "#/definitions/models.Location"},
                "kilometers": {"type": "number"}
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
	Title:            "Geolocator API",
	Description:      "Geocoding, map rendering and lookup history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
