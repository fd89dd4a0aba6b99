// Package docs holds the Swagger description served at /swagger.
package docs

import "github.com/swaggo/swag"

// @title           Flowboard API
// @version         1.0
// @description     Projects, tasks, users and an assistant chatbot.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Auth
// @tag.name Projects
// @tag.name Tasks
// @tag.name Users
// @tag.name Chatbot

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
        "/api/auth/register": {"post": {"tags": ["Auth"], "summary": "Register a new user"}},
        "/api/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in"}},
        "/api/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current user"},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Update own profile"}
        },
        "/api/projects": {
            "get": {"tags": ["Projects"], "summary": "List projects"},
            "post": {"tags": ["Projects"], "summary": "Create project"}
        },
        "/api/projects/{id}": {
            "get": {"tags": ["Projects"], "summary": "Get project"},
            "put": {"tags": ["Projects"], "summary": "Update project"},
            "delete": {"tags": ["Projects"], "summary": "Delete project"}
        },
        "/api/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks"},
            "post": {"tags": ["Tasks"], "summary": "Create task"}
        },
        "/api/tasks/filter": {"get": {"tags": ["Tasks"], "summary": "Filter tasks"}},
        "/api/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Get task"},
            "put": {"tags": ["Tasks"], "summary": "Update task"},
            "delete": {"tags": ["Tasks"], "summary": "Delete task"}
        },
        "/api/users": {"get": {"tags": ["Users"], "summary": "List users"}},
        "/api/users/{id}": {"get": {"tags": ["Users"], "summary": "Get user"}},
        "/api/chatbot/message": {"post": {"security": [{"BearerAuth": []}], "tags": ["Chatbot"], "summary": "Send chatbot message"}},
        "/api/chatbot/history/{userId}": {"get": {"tags": ["Chatbot"], "summary": "Chat history"}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flowboard API",
	Description:      "Projects, tasks, users and an assistant chatbot.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
