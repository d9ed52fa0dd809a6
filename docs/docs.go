// Package docs holds the OpenAPI description served at /swagger-doc.json.
// It is maintained by hand alongside the handler annotations; running
// "swag init -g cmd/api/main.go" regenerates it from them.
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
        "/auth/code": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Send a one-time code",
                "parameters": [{"description": "Phone number", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SendCodeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SendCodeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "Phone number with code or password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Goal rules",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RulesResponse"}}}
            }
        },
        "/charities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Donation targets",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListCharitiesResponse"}}}
            }
        },
        "/me": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}
            },
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update name and email",
                "parameters": [{"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProfileRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}
            }
        },
        "/me/password": {
            "post": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Set the sign-in password",
                "parameters": [{"description": "Password and confirmation", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChangePasswordRequest"}}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/goals": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "My goals",
                "parameters": [
                    {"type": "integer", "description": "Page, from 0", "name": "page", "in": "query"},
                    {"type": "string", "description": "title, amount, deadline or status", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "dir", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListGoalsResponse"}}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Validates the goal and returns the URL to pay its stake.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Create a goal",
                "parameters": [{"description": "Goal", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateGoalRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateGoalResponse"}}}
            }
        },
        "/goals/deadline-bounds": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Selectable deadline days",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeadlineBoundsResponse"}}}
            }
        },
        "/goals/{id}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Get a goal by ID",
                "parameters": [{"type": "integer", "description": "Goal ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GoalResponse"}}}
            }
        },
        "/goals/{id}/supervise": {
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Only the supervisor, once, while the supervision window is open.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Judge a goal",
                "parameters": [
                    {"type": "integer", "description": "Goal ID", "name": "id", "in": "path", "required": true},
                    {"description": "Decision", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SuperviseRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GoalResponse"}}}
            }
        },
        "/supervisions": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Goals I supervise",
                "parameters": [
                    {"type": "integer", "description": "Page, from 0", "name": "page", "in": "query"},
                    {"type": "string", "description": "title, amount, deadline or status", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "dir", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListGoalsResponse"}}}
            }
        },
        "/lists/{list}/sort": {
            "post": {
                "security": [{"CookieAuth": []}],
                "description": "Picking the active ascending column flips it to descending; any other pick sorts ascending.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["goals"],
                "summary": "Pick a sort column",
                "parameters": [
                    {"type": "string", "description": "goals or supervisions", "name": "list", "in": "path", "required": true},
                    {"description": "Column", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SortRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SortResponse"}}}
            }
        },
        "/payments/{id}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Stake payment status",
                "parameters": [{"type": "integer", "description": "Payment ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PaymentResponse"}}}
            }
        }
    },
    "definitions": {
        "dto.SendCodeRequest": {"type": "object", "required": ["phone_number"], "properties": {"phone_number": {"type": "string"}}},
        "dto.SendCodeResponse": {"type": "object", "properties": {"phone_number": {"type": "string"}, "sent_at": {"type": "integer"}, "timeout": {"type": "integer"}}},
        "dto.LoginRequest": {"type": "object", "required": ["phone_number"], "properties": {"phone_number": {"type": "string"}, "code": {"type": "string"}, "password": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {"ok": {"type": "boolean"}, "is_new_user": {"type": "boolean"}, "user": {"$ref": "#/definitions/dto.UserResponse"}}},
        "dto.UserResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "first_name": {"type": "string"}, "last_name": {"type": "string"}, "full_name": {"type": "string"}, "phone_number": {"type": "string"}, "email": {"type": "string"}}},
        "dto.UpdateProfileRequest": {"type": "object", "properties": {"first_name": {"type": "string"}, "last_name": {"type": "string"}, "email": {"type": "string"}}},
        "dto.ChangePasswordRequest": {"type": "object", "required": ["password", "confirmation"], "properties": {"password": {"type": "string"}, "confirmation": {"type": "string"}}},
        "dto.RulesResponse": {"type": "object", "properties": {"supervision_timeout_hours": {"type": "integer"}, "min_goal_hours": {"type": "integer"}, "max_goal_hours": {"type": "integer"}, "min_goal_value": {"type": "integer"}, "max_goal_value": {"type": "integer"}, "goal_creation_fee": {"type": "integer"}, "otp_timeout": {"type": "integer"}}},
        "dto.CharityResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"}, "logo_url": {"type": "string"}, "website": {"type": "string"}}},
        "dto.ListCharitiesResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/dto.CharityResponse"}}}},
        "dto.CreateGoalRequest": {"type": "object", "required": ["title", "deadline", "amount", "supervisor_phone"], "properties": {"title": {"type": "string", "maxLength": 120, "minLength": 1}, "description": {"type": "string", "maxLength": 1000}, "deadline": {"type": "string", "example": "1404/08/01"}, "amount": {"type": "integer"}, "supervisor_phone": {"type": "string"}}},
        "dto.CreateGoalResponse": {"type": "object", "properties": {"payment_url": {"type": "string"}}},
        "dto.SuperviseRequest": {"type": "object", "required": ["done"], "properties": {"done": {"type": "boolean"}, "note": {"type": "string", "maxLength": 1000}}},
        "dto.SortRequest": {"type": "object", "required": ["key"], "properties": {"key": {"type": "string", "enum": ["title", "amount", "deadline", "status"]}}},
        "dto.SortResponse": {"type": "object", "properties": {"list": {"type": "string"}, "key": {"type": "string"}, "direction": {"type": "string"}}},
        "dto.StatusResponse": {"type": "object", "properties": {"state": {"type": "string"}, "label": {"type": "string"}, "supervision": {"type": "string"}, "supervision_label": {"type": "string"}, "tooltip": {"type": "string"}, "supervision_tooltip": {"type": "string"}, "row_class": {"type": "string"}, "priority": {"type": "integer"}, "remaining_days": {"type": "integer"}}},
        "dto.WindowResponse": {"type": "object", "properties": {"state": {"type": "string"}, "opens_at": {"type": "string"}, "closes_at": {"type": "string"}}},
        "dto.GoalResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"}, "amount": {"type": "integer"}, "amount_formatted": {"type": "string"}, "deadline": {"type": "string"}, "deadline_local": {"type": "string"}, "creator_name": {"type": "string"}, "creator_phone": {"type": "string"}, "supervisor_phone": {"type": "string"}, "supervisor_note": {"type": "string"}, "supervised_at": {"type": "string"}, "done": {"type": "boolean"}, "donated_to": {"type": "string"}, "created_at": {"type": "string"}, "status": {"$ref": "#/definitions/dto.StatusResponse"}, "window": {"$ref": "#/definitions/dto.WindowResponse"}, "role": {"type": "string"}}},
        "dto.ListGoalsResponse": {"type": "object", "properties": {"list": {"type": "string"}, "page": {"type": "integer"}, "sort": {"$ref": "#/definitions/dto.SortResponse"}, "items": {"type": "array", "items": {"$ref": "#/definitions/dto.GoalResponse"}}}},
        "dto.DeadlineBoundsResponse": {"type": "object", "properties": {"first": {"type": "string"}, "last": {"type": "string"}, "min_hours": {"type": "integer"}, "max_hours": {"type": "integer"}}},
        "dto.PaymentResponse": {"type": "object", "properties": {"goal_id": {"type": "integer"}, "amount": {"type": "integer"}, "amount_formatted": {"type": "string"}, "gateway": {"type": "string"}, "tracing_code": {"type": "string"}}}
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "session_id", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Motiv API",
	Description:      "Goals with a money stake, judged by a supervisor.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
