// Package docs holds the OpenAPI description served under /swagger. It
// mirrors the handler annotations; regenerate with swag init -g cmd/api/main.go.
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
        "/api/jobs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Job postings by profession and postal codes",
                "parameters": [
                    {"type": "string", "description": "Profession keyword", "name": "profession", "in": "query"},
                    {"type": "string", "description": "Single postal code", "name": "plz", "in": "query"},
                    {"type": "string", "description": "Comma separated postal codes", "name": "plzs", "in": "query"},
                    {"type": "integer", "default": 200, "description": "Maximum number of jobs (max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Job"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/jobs-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Number of postings and companies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.JobStats"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/locations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Autocomplete places by postal code or name",
                "parameters": [
                    {"type": "string", "description": "Partial postal code or place name", "name": "q", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Maximum number of places (max 50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Place"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/radius-search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Places within a radius of a postal code",
                "parameters": [
                    {"type": "string", "description": "Source postal code", "name": "plz", "in": "query", "required": true},
                    {"type": "integer", "default": 25, "description": "Radius in km (5, 10, 25, 50 or 100)", "name": "radius", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RadiusResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "failed to search locations"}
            }
        },
        "models.Job": {
            "type": "object",
            "properties": {
                "benefits": {"type": "array", "items": {"type": "string"}},
                "company": {"type": "string"},
                "contractType": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "link": {"type": "string"},
                "location": {"type": "string"},
                "plz": {"type": "string"},
                "postedDate": {"type": "string"},
                "requirements": {"type": "array", "items": {"type": "string"}},
                "salary": {"type": "string"},
                "title": {"type": "string"},
                "workload": {"type": "string"}
            }
        },
        "models.JobStats": {
            "type": "object",
            "properties": {
                "companyCount": {"type": "integer"},
                "jobCount": {"type": "integer"}
            }
        },
        "models.Place": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "zip": {"type": "string"}
            }
        },
        "models.RadiusPlace": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "plz": {"type": "string"}
            }
        },
        "models.RadiusResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "plz": {"type": "string"},
                "radiusKm": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/models.RadiusPlace"}}
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
	Title:            "Job Search API",
	Description:      "Postal code radius search and job lookup.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
