// Package docs holds the OpenAPI document served under /swagger. It is kept
// in the layout swag init produces so it can be regenerated from the handler
// annotations.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/v1/auth/register": {
            "post": {
                "tags": ["auth"], "summary": "Register an identity",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Login",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Logout",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/facilities": {
            "get": {
                "tags": ["facilities"], "summary": "List facilities", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.facilityListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["facilities"], "summary": "Add a facility",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createFacilityRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.facilityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/facilities/{id}": {
            "get": {
                "tags": ["facilities"], "summary": "Get a facility", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Facility ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.facilityResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/owners/me/facilities": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["facilities"], "summary": "List my facilities", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.facilityListResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/reservations": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "Reserve a slot",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createReservationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Reservation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/reservations/me": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "List my reservations", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reservationListResponse"}}}
            }
        },
        "/v1/me/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Role dashboard", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.dashboardResponse"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "handle": {"type": "string"},
                "role": {"type": "string", "enum": ["regular", "owner", "administrator"]},
                "created_at": {"type": "string"}
            }
        },
        "domain.Slot": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "available": {"type": "boolean"}}
        },
        "domain.Reservation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "identity_id": {"type": "string"}, "handle": {"type": "string"},
                "facility_id": {"type": "string"}, "facility_name": {"type": "string"},
                "date": {"type": "string"}, "time_label": {"type": "string"}, "created_at": {"type": "string"}
            }
        },
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.registerRequest": {
            "type": "object", "required": ["handle", "role", "secret"],
            "properties": {"handle": {"type": "string"}, "secret": {"type": "string"}, "role": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object", "required": ["handle", "secret"],
            "properties": {"handle": {"type": "string"}, "secret": {"type": "string"}}
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}, "expires_at": {"type": "string"},
                "identity": {"$ref": "#/definitions/domain.Identity"}
            }
        },
        "handler.createFacilityRequest": {
            "type": "object", "required": ["hourly_rate", "location", "name"],
            "properties": {"name": {"type": "string"}, "location": {"type": "string"}, "hourly_rate": {"type": "number"}}
        },
        "handler.createReservationRequest": {
            "type": "object", "required": ["date", "facility_id", "time_label"],
            "properties": {"facility_id": {"type": "string"}, "date": {"type": "string"}, "time_label": {"type": "string"}}
        },
        "handler.facilityResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "location": {"type": "string"},
                "hourly_rate": {"type": "number"}, "owner_id": {"type": "string"},
                "available_slots": {"type": "integer"},
                "slots": {"type": "array", "items": {"$ref": "#/definitions/domain.Slot"}},
                "created_at": {"type": "string"}
            }
        },
        "handler.facilityListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.facilityResponse"}},
                "total": {"type": "integer"}
            }
        },
        "handler.reservationListResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Reservation"}},
                "total": {"type": "integer"}
            }
        },
        "handler.dashboardResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string"}, "handle": {"type": "string"},
                "facilities": {"type": "array", "items": {"$ref": "#/definitions/handler.facilityResponse"}},
                "reservations": {"type": "array", "items": {"$ref": "#/definitions/domain.Reservation"}}
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
	Title:            "Futsal Booking API",
	Description:      "Court catalog and slot reservations for futsal facilities.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
