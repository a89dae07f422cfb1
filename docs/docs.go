// Package docs holds the OpenAPI description served under /swagger.
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
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Degraded"
                    }
                }
            }
        },
        "/api/user": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.registerRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/api/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.tokenResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/api/refresh": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Refresh token",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.tokenResponse"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/character": {
            "get": {
                "tags": [
                    "characters"
                ],
                "summary": "List the caller's characters",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.characterResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "characters"
                ],
                "summary": "Create a character",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.characterResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CharacterFields"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/character/{id}": {
            "get": {
                "tags": [
                    "characters"
                ],
                "summary": "Get one of the caller's characters",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.characterResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "tags": [
                    "characters"
                ],
                "summary": "Update a character",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.characterResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.CharacterFields"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "characters"
                ],
                "summary": "Delete a character",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/merit": {
            "get": {
                "tags": [
                    "merits"
                ],
                "summary": "List the merit catalog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Merit"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "merits"
                ],
                "summary": "Add a merit to the catalog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Merit"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.meritRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/merit/{id}": {
            "get": {
                "tags": [
                    "merits"
                ],
                "summary": "Get a merit",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Merit"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "merits"
                ],
                "summary": "Replace a merit the caller created",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Merit"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.meritRequest"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "merits"
                ],
                "summary": "Delete a merit the caller created",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {
                "authToken": {
                    "type": "string"
                }
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "handler.meritRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "prerequisites": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "rating"
            ]
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.Merit": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "prerequisites": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.Attributes": {
            "type": "object",
            "properties": {
                "mental": {
                    "type": "object",
                    "properties": {
                        "intelligence": {
                            "type": "integer"
                        },
                        "wits": {
                            "type": "integer"
                        },
                        "resolve": {
                            "type": "integer"
                        }
                    }
                },
                "physical": {
                    "type": "object",
                    "properties": {
                        "strength": {
                            "type": "integer"
                        },
                        "dexterity": {
                            "type": "integer"
                        },
                        "stamina": {
                            "type": "integer"
                        }
                    }
                },
                "social": {
                    "type": "object",
                    "properties": {
                        "presence": {
                            "type": "integer"
                        },
                        "manipulation": {
                            "type": "integer"
                        },
                        "composure": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "domain.Skills": {
            "type": "object",
            "properties": {
                "mental": {
                    "type": "object",
                    "properties": {
                        "academics": {
                            "type": "integer"
                        },
                        "computers": {
                            "type": "integer"
                        },
                        "crafts": {
                            "type": "integer"
                        },
                        "investigation": {
                            "type": "integer"
                        },
                        "medicine": {
                            "type": "integer"
                        },
                        "occult": {
                            "type": "integer"
                        },
                        "politics": {
                            "type": "integer"
                        },
                        "science": {
                            "type": "integer"
                        }
                    }
                },
                "physical": {
                    "type": "object",
                    "properties": {
                        "athletics": {
                            "type": "integer"
                        },
                        "brawl": {
                            "type": "integer"
                        },
                        "drive": {
                            "type": "integer"
                        },
                        "firearms": {
                            "type": "integer"
                        },
                        "larceny": {
                            "type": "integer"
                        },
                        "stealth": {
                            "type": "integer"
                        },
                        "survival": {
                            "type": "integer"
                        },
                        "weaponry": {
                            "type": "integer"
                        }
                    }
                },
                "social": {
                    "type": "object",
                    "properties": {
                        "animalKen": {
                            "type": "integer"
                        },
                        "empathy": {
                            "type": "integer"
                        },
                        "expression": {
                            "type": "integer"
                        },
                        "intimidation": {
                            "type": "integer"
                        },
                        "persuasion": {
                            "type": "integer"
                        },
                        "socialize": {
                            "type": "integer"
                        },
                        "streetwise": {
                            "type": "integer"
                        },
                        "subterfuge": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "domain.CharacterMerit": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "domain.CharacterFields": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "age": {
                    "type": "string"
                },
                "player": {
                    "type": "string"
                },
                "virtue": {
                    "type": "string"
                },
                "vice": {
                    "type": "string"
                },
                "concept": {
                    "type": "string"
                },
                "chronicle": {
                    "type": "string"
                },
                "faction": {
                    "type": "string"
                },
                "group": {
                    "type": "string"
                },
                "attributes": {
                    "$ref": "#/definitions/domain.Attributes"
                },
                "skills": {
                    "$ref": "#/definitions/domain.Skills"
                },
                "merits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CharacterMerit"
                    }
                },
                "integrity": {
                    "type": "integer"
                },
                "conditions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "aspirations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "combatBlock": {
                    "type": "object",
                    "properties": {
                        "size": {
                            "type": "integer"
                        },
                        "armor": {
                            "type": "integer"
                        },
                        "beats": {
                            "type": "integer"
                        },
                        "experience": {
                            "type": "integer"
                        }
                    }
                },
                "health": {
                    "type": "object",
                    "properties": {
                        "damage": {
                            "type": "object",
                            "properties": {
                                "bashing": {
                                    "type": "integer"
                                },
                                "lethal": {
                                    "type": "integer"
                                },
                                "aggravated": {
                                    "type": "integer"
                                }
                            }
                        }
                    }
                },
                "willpower": {
                    "type": "object",
                    "properties": {
                        "spent": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "handler.characterResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "age": {
                    "type": "string"
                },
                "player": {
                    "type": "string"
                },
                "virtue": {
                    "type": "string"
                },
                "vice": {
                    "type": "string"
                },
                "concept": {
                    "type": "string"
                },
                "chronicle": {
                    "type": "string"
                },
                "faction": {
                    "type": "string"
                },
                "group": {
                    "type": "string"
                },
                "attributes": {
                    "$ref": "#/definitions/domain.Attributes"
                },
                "skills": {
                    "$ref": "#/definitions/domain.Skills"
                },
                "merits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CharacterMerit"
                    }
                },
                "integrity": {
                    "type": "integer"
                },
                "conditions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "aspirations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "combatBlock": {
                    "type": "object",
                    "properties": {
                        "size": {
                            "type": "integer"
                        },
                        "armor": {
                            "type": "integer"
                        },
                        "beats": {
                            "type": "integer"
                        },
                        "experience": {
                            "type": "integer"
                        },
                        "initiativeMod": {
                            "type": "integer"
                        },
                        "speed": {
                            "type": "integer"
                        },
                        "defense": {
                            "type": "integer"
                        }
                    }
                },
                "health": {
                    "type": "object",
                    "properties": {
                        "damage": {
                            "type": "object",
                            "properties": {
                                "bashing": {
                                    "type": "integer"
                                },
                                "lethal": {
                                    "type": "integer"
                                },
                                "aggravated": {
                                    "type": "integer"
                                }
                            }
                        },
                        "max": {
                            "type": "integer"
                        }
                    }
                },
                "willpower": {
                    "type": "object",
                    "properties": {
                        "spent": {
                            "type": "integer"
                        },
                        "max": {
                            "type": "integer"
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Character API",
	Description:      "CRUD backend for Chronicles of Darkness character sheets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
