// Package docs registers the Swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List events of a day",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD, today, tomorrow or yesterday", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar service failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Book a room",
                "parameters": [
                    {"description": "Booking request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.bookReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflicts with existing events", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar service failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Get an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/calendar.ics": {
            "get": {
                "produces": ["text/calendar"],
                "tags": ["Events"],
                "summary": "Export a day as iCalendar",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/locations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Rooms"],
                "summary": "List bookable locations",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/rooms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Rooms"],
                "summary": "List buildings and rooms",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "OK"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "OK"}, "503": {"description": "No rooms configured"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "http.bookReq": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Sprint planning"},
                "start_time": {"type": "string", "example": "2025-01-15T10:00:00-08:00"},
                "end_time": {"type": "string", "example": "2025-01-15T11:00:00-08:00"},
                "location": {"type": "string", "example": "Hogwarts Hall"},
                "description": {"type": "string"},
                "host_email": {"type": "string", "example": "owner@example.com"},
                "additional_hosts": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Room Booking API",
	Description:      "Meeting-room booking over a remote calendar, with conflict checks and a Telegram bot.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
