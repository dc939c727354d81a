package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "IFSI Gestion API",
        "description": "Administration backend for a nursing school: students, filieres, classes, internships, attendance and timetables.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Registration, login and sessions"},
        {"name": "Students", "description": "Student records"},
        {"name": "Filieres", "description": "Training tracks"},
        {"name": "Classes", "description": "Class groups"},
        {"name": "Internships", "description": "Clinical placements"},
        {"name": "Attendance", "description": "Classroom and on-site attendance"},
        {"name": "Timetables", "description": "Weekly schedule slots"},
        {"name": "Dashboard", "description": "Aggregate statistics"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check", "responses": {"200": {"description": "Ready"}}}
        },
        "/api/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register an account and log in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error or duplicate username"}
                }
            }
        },
        "/api/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/user": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current authenticated user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No live session"}
                }
            }
        },
        "/api/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate counts and today's attendance",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Insufficient role"}
                }
            }
        },
        "/api/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Partially update student (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the roster as CSV or PDF (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "classId", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "File download"}}
            }
        },
        "/api/students/import": {
            "post": {
                "tags": ["Students"],
                "summary": "Import students from xlsx (admin)",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {"200": {"description": "Import report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "integer"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Record attendance (teacher or admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAttendanceRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/attendance/export": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Export attendance as CSV or PDF (teacher or admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "studentId", "in": "query", "type": "integer"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "File download"}}
            }
        },
        "/api/internships": {
            "get": {
                "tags": ["Internships"],
                "summary": "List internships",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "studentId", "in": "query", "type": "integer"},
                    {"name": "serviceId", "in": "query", "type": "integer"},
                    {"name": "periodeId", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Internships"],
                "summary": "Place a student (teacher or admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInternshipRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/api/timetables": {
            "get": {
                "tags": ["Timetables"],
                "summary": "List weekly slots",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "classId", "in": "query", "type": "integer"},
                    {"name": "teacherId", "in": "query", "type": "integer"},
                    {"name": "dayOfWeek", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["username", "password", "fullName"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "teacher", "student"]}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["fullName"],
            "properties": {
                "fullName": {"type": "string"},
                "idCardNumber": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "email": {"type": "string"},
                "filiereId": {"type": "integer"},
                "classId": {"type": "integer"},
                "status": {"type": "string", "enum": ["Actif", "Suspendu", "Diplômé", "Exclu"]},
                "documents": {"type": "string"}
            }
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "idCardNumber": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "email": {"type": "string"},
                "filiereId": {"type": "integer"},
                "classId": {"type": "integer"},
                "status": {"type": "string", "enum": ["Actif", "Suspendu", "Diplômé", "Exclu"]},
                "documents": {"type": "string"}
            }
        },
        "CreateAttendanceRequest": {
            "type": "object",
            "required": ["studentId", "date"],
            "properties": {
                "studentId": {"type": "integer"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["Present", "Absent", "Late"]},
                "remarks": {"type": "string"}
            }
        },
        "CreateInternshipRequest": {
            "type": "object",
            "required": ["studentId", "serviceId", "periodeDeStageId", "startDate", "endDate"],
            "properties": {
                "studentId": {"type": "integer"},
                "serviceId": {"type": "integer"},
                "periodeDeStageId": {"type": "integer"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "validationStatus": {"type": "string", "enum": ["Pending", "Validated", "Rejected"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
