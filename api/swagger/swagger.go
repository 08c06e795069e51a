package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Admission API",
        "description": "Admission lifecycle service: inquiry through enrollment",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Admissions", "description": "Admission workflow from inquiry to enrollment"},
        {"name": "Students", "description": "Enrolled students"},
        {"name": "Letters", "description": "Offer letter downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Not ready"}
                }
            }
        },
        "/admissions": {
            "get": {
                "tags": ["Admissions"],
                "summary": "List admissions",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "class", "in": "query", "type": "integer"},
                    {"name": "academicYearId", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admissions/inquiries": {
            "post": {
                "tags": ["Admissions"],
                "summary": "Open a new admission inquiry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInquiryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/admissions/statistics": {
            "get": {
                "tags": ["Admissions"],
                "summary": "Admission pipeline statistics",
                "parameters": [
                    {"name": "academicYearId", "in": "query", "type": "string"},
                    {"name": "class", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admissions/{id}": {
            "get": {
                "tags": ["Admissions"],
                "summary": "Get a single admission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/admissions/{id}/application": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Convert an inquiry into a formal application",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/admissions/{id}/test-schedule": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Schedule the admission test",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleTestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/admissions/{id}/test-score": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Record the admission test outcome",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TestScoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/admissions/{id}/interview-schedule": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Schedule the admission interview",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleInterviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/admissions/{id}/interview-result": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Record interview feedback",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/InterviewResultRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/admissions/{id}/admit": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Admit the candidate and issue the offer letter",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/AdmitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"},
                    "502": {"description": "Offer letter generation failed"}
                }
            }
        },
        "/admissions/{id}/enroll": {
            "post": {
                "tags": ["Admissions"],
                "summary": "Enroll the admitted candidate as a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"},
                    "502": {"description": "Student code issuance failed"}
                }
            }
        },
        "/admissions/{id}/reject": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Reject the admission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RejectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/admissions/{id}/withdraw": {
            "put": {
                "tags": ["Admissions"],
                "summary": "Withdraw the admission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WithdrawRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Invalid transition or concurrent update"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "classId", "in": "query", "type": "integer"},
                    {"name": "academicYearId", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a single student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/letters/{token}": {
            "get": {
                "tags": ["Letters"],
                "summary": "Download an offer letter via signed token",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF document"},
                    "403": {"description": "Invalid or expired link"},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "definitions": {
        "CreateInquiryRequest": {
            "type": "object",
            "required": ["first_name_en", "last_name_en", "applying_for_class", "academic_year_id"],
            "properties": {
                "first_name_en": {"type": "string"},
                "last_name_en": {"type": "string"},
                "first_name_np": {"type": "string"},
                "last_name_np": {"type": "string"},
                "applying_for_class": {"type": "integer", "minimum": 1, "maximum": 12},
                "academic_year_id": {"type": "string"},
                "dob_ad": {"type": "string", "format": "date"},
                "dob_bs": {"type": "string"},
                "gender": {"type": "string", "enum": ["MALE", "FEMALE", "OTHER"]},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "guardian_name": {"type": "string"},
                "guardian_phone": {"type": "string"},
                "father_name": {"type": "string"},
                "father_phone": {"type": "string"},
                "mother_name": {"type": "string"},
                "mother_phone": {"type": "string"}
            }
        },
        "ApplicationRequest": {
            "type": "object",
            "properties": {
                "father_name": {"type": "string"},
                "father_phone": {"type": "string"},
                "mother_name": {"type": "string"},
                "mother_phone": {"type": "string"},
                "guardian_name": {"type": "string"},
                "guardian_phone": {"type": "string"},
                "address": {"type": "string"},
                "dob_ad": {"type": "string", "format": "date"},
                "dob_bs": {"type": "string"},
                "gender": {"type": "string", "enum": ["MALE", "FEMALE", "OTHER"]},
                "application_fee_paid": {"type": "boolean"},
                "application_fee_amount": {"type": "number"},
                "documents_verified": {"type": "boolean"}
            }
        },
        "ScheduleTestRequest": {
            "type": "object",
            "required": ["test_date"],
            "properties": {
                "test_date": {"type": "string", "format": "date-time"}
            }
        },
        "TestScoreRequest": {
            "type": "object",
            "required": ["max_score"],
            "properties": {
                "score": {"type": "number"},
                "max_score": {"type": "number"},
                "remarks": {"type": "string"}
            }
        },
        "ScheduleInterviewRequest": {
            "type": "object",
            "required": ["interview_date"],
            "properties": {
                "interview_date": {"type": "string", "format": "date-time"},
                "interviewer_name": {"type": "string"}
            }
        },
        "InterviewResultRequest": {
            "type": "object",
            "required": ["feedback"],
            "properties": {
                "feedback": {"type": "string"},
                "score": {"type": "number", "minimum": 0, "maximum": 10}
            }
        },
        "AdmitRequest": {
            "type": "object",
            "properties": {
                "documents_verified": {"type": "boolean"}
            }
        },
        "EnrollRequest": {
            "type": "object",
            "required": ["current_class_id", "roll_number"],
            "properties": {
                "current_class_id": {"type": "integer"},
                "roll_number": {"type": "integer"}
            }
        },
        "RejectRequest": {
            "type": "object",
            "required": ["reason"],
            "properties": {
                "reason": {"type": "string"}
            }
        },
        "WithdrawRequest": {
            "type": "object",
            "required": ["reason"],
            "properties": {
                "reason": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
