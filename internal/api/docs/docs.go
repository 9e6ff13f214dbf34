// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o internal/api/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/eventdash"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "tags": [
                    "Core"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "summary": "Liveness probe",
                "tags": [
                    "Core"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "summary": "Readiness probe",
                "tags": [
                    "Core"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/dashboard/metrics": {
            "get": {
                "summary": "Metrics summary",
                "tags": [
                    "Dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/dashboard/timeline": {
            "get": {
                "summary": "Event timeline",
                "tags": [
                    "Dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "eventType",
                        "in": "query",
                        "type": "string",
                        "description": "Topic filter"
                    },
                    {
                        "name": "cameraId",
                        "in": "query",
                        "type": "string",
                        "description": "Channel filter"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/dashboard/events/geo": {
            "get": {
                "summary": "Geo events (dashboard)",
                "tags": [
                    "Dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "eventType",
                        "in": "query",
                        "type": "string",
                        "description": "Topic filter"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Row cap, clamped"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/dashboard/analytics": {
            "get": {
                "summary": "Analytics breakdown",
                "tags": [
                    "Dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "start",
                        "in": "query",
                        "type": "integer",
                        "description": "Window start, epoch ms"
                    },
                    {
                        "name": "end",
                        "in": "query",
                        "type": "integer",
                        "description": "Window end, epoch ms"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard/graph": {
            "get": {
                "summary": "Graph records",
                "tags": [
                    "Graph"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Row cap, clamped"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard/graph/{label}/{id}": {
            "get": {
                "summary": "Node relationships",
                "tags": [
                    "Graph"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "label",
                        "in": "path",
                        "type": "string",
                        "description": "Node label",
                        "required": true
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "description": "Node id",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard/identities": {
            "get": {
                "summary": "Face and plate identities",
                "tags": [
                    "Graph"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "start",
                        "in": "query",
                        "type": "integer",
                        "description": "Window start, epoch ms"
                    },
                    {
                        "name": "end",
                        "in": "query",
                        "type": "integer",
                        "description": "Window end, epoch ms"
                    },
                    {
                        "name": "facesLimit",
                        "in": "query",
                        "type": "integer",
                        "description": "Face cap"
                    },
                    {
                        "name": "platesLimit",
                        "in": "query",
                        "type": "integer",
                        "description": "Plate cap"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/events": {
            "get": {
                "summary": "Paged events",
                "tags": [
                    "Events"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "start",
                        "in": "query",
                        "type": "integer",
                        "description": "Window start, epoch ms"
                    },
                    {
                        "name": "end",
                        "in": "query",
                        "type": "integer",
                        "description": "Window end, epoch ms"
                    },
                    {
                        "name": "eventType",
                        "in": "query",
                        "type": "string",
                        "description": "Topic filter"
                    },
                    {
                        "name": "cameraId",
                        "in": "query",
                        "type": "string",
                        "description": "Channel filter"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Matches id, topic or channel name"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "description": "Page, minimum 1"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Row cap, clamped"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/events/types": {
            "get": {
                "summary": "Event types",
                "tags": [
                    "Events"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/events/cameras": {
            "get": {
                "summary": "Cameras",
                "tags": [
                    "Events"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/events/geo": {
            "get": {
                "summary": "Geo events (listing)",
                "tags": [
                    "Events"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "eventType",
                        "in": "query",
                        "type": "string",
                        "description": "Topic filter"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Row cap, clamped"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/events/{id}": {
            "get": {
                "summary": "Event detail",
                "tags": [
                    "Events"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "description": "Event ID",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/snapshots": {
            "get": {
                "summary": "Paged snapshots",
                "tags": [
                    "Snapshots"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "description": "30m, 1h, 4h, 12h, 24h, 7d or 30d"
                    },
                    {
                        "name": "eventId",
                        "in": "query",
                        "type": "string",
                        "description": "Parent event filter"
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "type": "string",
                        "description": "Snapshot type filter"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "description": "Page, minimum 1"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Row cap, clamped"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/snapshots/types": {
            "get": {
                "summary": "Snapshot types",
                "tags": [
                    "Snapshots"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/snapshots/{id}": {
            "get": {
                "summary": "Snapshot detail",
                "tags": [
                    "Snapshots"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "description": "Snapshot ID",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        },
        "/login": {
            "post": {
                "summary": "Log in",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.LoginRequest"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Session check",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Log out",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.LoginRequest": {
            "type": "object",
            "required": [
                "password"
            ],
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "query_time_ms": {
                    "type": "integer"
                },
                "cached": {
                    "type": "boolean"
                },
                "degraded": {
                    "type": "boolean"
                }
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "data": {},
                "filters": {},
                "timestamp": {
                    "type": "string",
                    "format": "date-time"
                },
                "metadata": {
                    "$ref": "#/definitions/models.Metadata"
                },
                "error": {
                    "$ref": "#/definitions/models.APIError"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "CookieAuth": {
            "type": "apiKey",
            "name": "authToken",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "EventDash API",
	Description:      "Camera event analytics: time-windowed metrics, timelines, geo listings, paged events and snapshots, and graph views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
