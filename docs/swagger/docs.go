// Package swagger registers the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "API Support"},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/itinerary/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Itinerary"],
                "summary": "Генерация многодневного маршрута",
                "parameters": [{"description": "Параметры поездки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerateItineraryRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary/categories": {
            "get": {"produces": ["application/json"], "tags": ["Itinerary"], "summary": "Категории мест",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/itinerary/districts": {
            "get": {"produces": ["application/json"], "tags": ["Itinerary"], "summary": "Районы",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/itinerary/clusters": {
            "get": {"produces": ["application/json"], "tags": ["Itinerary"], "summary": "Региональные кластеры",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/itinerary/{id}": {
            "get": {"produces": ["application/json"], "tags": ["Itinerary"], "summary": "Маршрут по идентификатору",
                "parameters": [{"type": "string", "description": "ID маршрута (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }}
        },
        "/api/v1/itinerary/{id}/pdf": {
            "get": {"produces": ["application/pdf"], "tags": ["Itinerary"], "summary": "PDF маршрута",
                "parameters": [{"type": "string", "description": "ID маршрута (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }}
        },
        "/api/v1/places": {
            "get": {"produces": ["application/json"], "tags": ["Places"], "summary": "Список мест",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Категории", "name": "category", "in": "query"},
                    {"type": "string", "description": "Район", "name": "district", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Размер страницы", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Смещение", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}},
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Places"], "summary": "Добавление места",
                "parameters": [{"description": "Место", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PlaceRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }}
        },
        "/api/v1/places/{id}": {
            "get": {"produces": ["application/json"], "tags": ["Places"], "summary": "Место каталога",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["Places"], "summary": "Обновление места",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PlaceRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}},
            "delete": {"tags": ["Places"], "summary": "Удаление места",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}}
        },
        "/api/v1/ml/health": {
            "get": {"produces": ["application/json"], "tags": ["ML"], "summary": "Состояние ML-сервиса",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}}
        },
        "/api/v1/ml/retrain": {
            "post": {"produces": ["application/json"], "tags": ["ML"], "summary": "Переобучение модели",
                "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}}
        },
        "/api/v1/ml/model-info": {
            "get": {"produces": ["application/json"], "tags": ["ML"], "summary": "Информация о модели",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "dto.GenerateItineraryRequest": {
            "type": "object",
            "required": ["start_date", "total_days"],
            "properties": {
                "title": {"type": "string"},
                "start_date": {"type": "string", "example": "2025-03-01"},
                "end_date": {"type": "string", "example": "2025-03-03"},
                "total_days": {"type": "integer", "minimum": 1, "maximum": 30},
                "adults_count": {"type": "integer"},
                "children_count": {"type": "integer"},
                "students_count": {"type": "integer"},
                "foreigners_count": {"type": "integer"},
                "preferred_categories": {"type": "array", "items": {"type": "string"}},
                "budget_range": {"type": "string", "enum": ["low", "medium", "high", "luxury"]},
                "starting_location": {"type": "string"},
                "transport_preference": {"type": "string", "enum": ["bus", "train", "car", "private", "taxi", "walk"]},
                "include_weather": {"type": "boolean"},
                "max_travel_distance_km": {"type": "number"}
            }
        },
        "dto.PlaceRequest": {
            "type": "object",
            "required": ["name", "category"],
            "properties": {
                "place_id": {"type": "string"},
                "name": {"type": "string"},
                "district": {"type": "string"},
                "region": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "estimated_time_to_visit": {"type": "number"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.AppError"}}
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "strategy": {"type": "string"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Itinerary Service API",
	Description:      "Планировщик многодневных поездок по Шри-Ланке: маршруты по дням с выездом и возвратом в Коломбо, каталог мест, управление ML-сервисом рекомендаций.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
