// Package docs serves the OpenAPI document for the HTTP API. It mirrors the
// swag annotations on the handlers; refresh it with
// swag init -g cmd/coop_backend/main.go -o cmd/docs after changing them.
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
        "/activities": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activities"
                ],
                "summary": "List activities",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListActivitiesResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activities"
                ],
                "summary": "Record an activity",
                "parameters": [
                    {
                        "description": "Activity",
                        "name": "activity",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecordActivityRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Activity"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Actor not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/activities/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "activities"
                ],
                "summary": "Delete an activity",
                "parameters": [
                    {
                        "description": "Activity ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Selects a member by id or email and the role to act as, and returns a JWT.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Role login",
                "parameters": [
                    {
                        "description": "Login details",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Role not allowed or member inactive",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/backup": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns what the snapshot repository holds without touching the live state.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backup"
                ],
                "summary": "Read the persisted copy",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Snapshot"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backup"
                ],
                "summary": "Save a backup now",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BackupStatusResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/backup/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backup"
                ],
                "summary": "Export the ledger",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Snapshot"
                        }
                    }
                }
            }
        },
        "/backup/import": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the collections present in the document and keeps the rest.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backup"
                ],
                "summary": "Import a ledger document",
                "parameters": [
                    {
                        "description": "Snapshot document",
                        "name": "snapshot",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ImportSnapshotRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Snapshot"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contributions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Members only see their own contributions.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contributions"
                ],
                "summary": "List contributions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListContributionsResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The period end is derived as period start plus 28 days.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contributions"
                ],
                "summary": "Record a contribution",
                "parameters": [
                    {
                        "description": "Contribution",
                        "name": "contribution",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecordContributionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Contribution"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contributions/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "contributions"
                ],
                "summary": "Delete a contribution",
                "parameters": [
                    {
                        "description": "Contribution ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Cooperative-wide headline figures derived from the ledger.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Dashboard totals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DashboardTotals"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/investments": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns every investment with the aggregate capital, expenses, profits and ROI.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "List investments",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListInvestmentsResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Create an investment",
                "parameters": [
                    {
                        "description": "Investment",
                        "name": "investment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInvestmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/investments/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Get an investment",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Investment"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Changes name, description or creation date. Capital and accumulators are fixed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Update an investment",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "name": "investment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateInvestmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Delete an investment",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/investments/{id}/expenses": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Record an investment expense",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Expense",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.InvestmentEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/investments/{id}/profits": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Record an investment profit",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Profit",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.InvestmentEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Investment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/loans": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Members only see their own loans.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "loans"
                ],
                "summary": "List loans",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListLoansResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Prices the loan with the current interest rate setting. Pricing never changes afterwards.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "loans"
                ],
                "summary": "Issue a loan",
                "parameters": [
                    {
                        "description": "Loan details",
                        "name": "loan",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.IssueLoanRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Loan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/loans/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "loans"
                ],
                "summary": "Get a loan",
                "parameters": [
                    {
                        "description": "Loan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Loan"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "loans"
                ],
                "summary": "Delete a loan",
                "parameters": [
                    {
                        "description": "Loan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/loans/{id}/accrual": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Advisory months elapsed, paid and outstanding, with the suggested interest payment.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "loans"
                ],
                "summary": "Loan interest accrual",
                "parameters": [
                    {
                        "description": "Loan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Reference date (YYYY-MM-DD)",
                        "name": "asOf",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "today"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.LoanAccrual"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/loans/{id}/payments": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Applies a principal/interest split. The sum must be positive.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "loans"
                ],
                "summary": "Record a loan payment",
                "parameters": [
                    {
                        "description": "Loan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Payment split",
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecordLoanPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Loan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "List members",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListMembersResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Add a member",
                "parameters": [
                    {
                        "description": "Member details",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Member"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Email already used",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members/shares": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Derived total funds, share count and share value of every member.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Share table",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MemberSharesResponse"
                        }
                    }
                }
            }
        },
        "/members/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Get a member",
                "parameters": [
                    {
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Member"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Update a member",
                "parameters": [
                    {
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Member"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members/{id}/portfolio": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Personal financial view. Members may only view their own.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Member portfolio",
                "parameters": [
                    {
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.MemberPortfolio"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/notifications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Newest first, filtered by the caller's role.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "List notifications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ListNotificationsResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Clear all notifications",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Mark a notification as read",
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/export-rows": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Contributions and loans flattened into Type, Amount, Date, Status rows.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Ledger export rows",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExportRowsResponse"
                        }
                    }
                }
            }
        },
        "/reports/insight": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Advisory commentary. Always 200; Available is false when the generator could not answer.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "AI financial insight",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InsightResponse"
                        }
                    }
                }
            }
        },
        "/reports/quarterly": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Generates the financial statement for a quarter label such as \"Q1 2024\"",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Generate quarterly report",
                "parameters": [
                    {
                        "description": "Quarter label, e.g. Q1 2024",
                        "name": "quarter",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.QuarterlyReport"
                        }
                    },
                    "400": {
                        "description": "Invalid quarter",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to generate report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/reports/quarters": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The current quarter and the seven before it, newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Available quarters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuarterListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/settings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Get settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Settings"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The interest rate (percent) applies to loans issued afterwards only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Update settings",
                "parameters": [
                    {
                        "description": "Settings",
                        "name": "settings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateSettingsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Settings"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Activity": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "amountSpent": {
                    "type": "number"
                },
                "amountEarned": {
                    "type": "number"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "category": {
                    "type": "string"
                },
                "activityType": {
                    "type": "string"
                },
                "actorId": {
                    "type": "string"
                },
                "actorName": {
                    "type": "string"
                }
            }
        },
        "domain.Contribution": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "periodStart": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "periodEnd": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "datePaid": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "domain.DashboardTotals": {
            "type": "object",
            "properties": {
                "totalSharesValue": {
                    "type": "number"
                },
                "totalContributions": {
                    "type": "number"
                },
                "totalLoanIssued": {
                    "type": "number"
                },
                "totalPrincipalPaid": {
                    "type": "number"
                },
                "totalLoanOutstanding": {
                    "type": "number"
                },
                "totalProfitPaid": {
                    "type": "number"
                },
                "activeMembers": {
                    "type": "integer"
                },
                "activeLoans": {
                    "type": "integer"
                },
                "investments": {
                    "$ref": "#/definitions/domain.InvestmentTotals"
                }
            }
        },
        "domain.ExportRow": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "domain.FinancialSummary": {
            "type": "object",
            "properties": {
                "activeMembers": {
                    "type": "integer"
                },
                "totalContributions": {
                    "type": "number"
                },
                "totalLoans": {
                    "type": "number"
                },
                "outstandingLoans": {
                    "type": "number"
                },
                "projectExpenses": {
                    "type": "number"
                },
                "projectEarnings": {
                    "type": "number"
                }
            }
        },
        "domain.Investment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "totalCapital": {
                    "type": "number"
                },
                "totalExpenses": {
                    "type": "number"
                },
                "totalProfits": {
                    "type": "number"
                },
                "dateCreated": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "lastUpdated": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "expenseHistory": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.InvestmentEntry"
                    }
                },
                "profitHistory": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.InvestmentEntry"
                    }
                }
            }
        },
        "domain.InvestmentEntry": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                }
            }
        },
        "domain.InvestmentTotals": {
            "type": "object",
            "properties": {
                "totalCapital": {
                    "type": "number"
                },
                "totalExpenses": {
                    "type": "number"
                },
                "totalProfits": {
                    "type": "number"
                },
                "netResult": {
                    "type": "number"
                },
                "roi": {
                    "type": "number"
                }
            }
        },
        "domain.Loan": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "borrowerType": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "borrowerName": {
                    "type": "string"
                },
                "borrowerPhone": {
                    "type": "string"
                },
                "principal": {
                    "type": "number"
                },
                "interestRate": {
                    "type": "number"
                },
                "totalInterest": {
                    "type": "number"
                },
                "totalDue": {
                    "type": "number"
                },
                "amountPaid": {
                    "type": "number"
                },
                "interestPaid": {
                    "type": "number"
                },
                "remainingAmount": {
                    "type": "number"
                },
                "dateIssued": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "dueDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "status": {
                    "type": "string"
                },
                "monthsPaidHistory": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.MonthsPaidEntry"
                    }
                }
            }
        },
        "domain.LoanAccrual": {
            "type": "object",
            "properties": {
                "loanId": {
                    "type": "string"
                },
                "monthsElapsed": {
                    "type": "integer"
                },
                "monthsPaid": {
                    "type": "integer"
                },
                "monthsOutstanding": {
                    "type": "integer"
                },
                "monthlyInterestDue": {
                    "type": "number"
                },
                "suggestedInterest": {
                    "type": "number"
                }
            }
        },
        "domain.Member": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "joinedDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "status": {
                    "type": "string"
                },
                "historicalContribution": {
                    "type": "number"
                },
                "historicalProfit": {
                    "type": "number"
                }
            }
        },
        "domain.MemberPortfolio": {
            "type": "object",
            "properties": {
                "member": {
                    "$ref": "#/definitions/domain.Member"
                },
                "myTotalContrib": {
                    "type": "number"
                },
                "myTotalFunds": {
                    "type": "number"
                },
                "myShares": {
                    "type": "integer"
                },
                "myShareValue": {
                    "type": "number"
                },
                "loanOutstanding": {
                    "type": "number"
                },
                "contributions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Contribution"
                    }
                },
                "loans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Loan"
                    }
                }
            }
        },
        "domain.MemberShareSummary": {
            "type": "object",
            "properties": {
                "memberId": {
                    "type": "string"
                },
                "fullName": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "totalFunds": {
                    "type": "number"
                },
                "shareCount": {
                    "type": "integer"
                },
                "shareValue": {
                    "type": "number"
                }
            }
        },
        "domain.MonthsPaidEntry": {
            "type": "object",
            "properties": {
                "months": {
                    "type": "integer"
                },
                "date": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.Notification": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date-time"
                },
                "read": {
                    "type": "boolean"
                },
                "targetRole": {
                    "type": "string"
                }
            }
        },
        "domain.Quarter": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "number": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                }
            }
        },
        "domain.QuarterlyReport": {
            "type": "object",
            "properties": {
                "quarter": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "unpaidLoans": {
                    "type": "number"
                },
                "totalLoansEndOfPeriod": {
                    "type": "number"
                },
                "loansGivenInPeriod": {
                    "type": "number"
                },
                "loansPaidInPeriod": {
                    "type": "number"
                },
                "profitFromLoans": {
                    "type": "number"
                },
                "profitFromInvestments": {
                    "type": "number"
                },
                "activitiesExpenses": {
                    "type": "number"
                },
                "investmentExpenses": {
                    "type": "number"
                },
                "investmentsDoneInPeriod": {
                    "type": "number"
                },
                "contributionsPaidInPeriod": {
                    "type": "number"
                },
                "totalProfitsInPeriod": {
                    "type": "number"
                },
                "totalExpensesInPeriod": {
                    "type": "number"
                },
                "previousAccountBalance": {
                    "type": "number"
                },
                "currentAccountBalance": {
                    "type": "number"
                },
                "totalAssociation": {
                    "type": "number"
                }
            }
        },
        "domain.Settings": {
            "type": "object",
            "properties": {
                "loanInterestRate": {
                    "type": "number"
                },
                "sharePrice": {
                    "type": "number"
                }
            }
        },
        "domain.Snapshot": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Member"
                    }
                },
                "contributions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Contribution"
                    }
                },
                "loans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Loan"
                    }
                },
                "investments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Investment"
                    }
                },
                "activities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Activity"
                    }
                },
                "settings": {
                    "$ref": "#/definitions/domain.Settings"
                },
                "notifications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Notification"
                    }
                }
            }
        },
        "dto.BackupStatusResponse": {
            "type": "object",
            "properties": {
                "saved": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.CreateInvestmentRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "totalCapital": {
                    "type": "number"
                },
                "dateCreated": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.CreateMemberRequest": {
            "type": "object",
            "properties": {
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinedDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "historicalContribution": {
                    "type": "number"
                },
                "historicalProfit": {
                    "type": "number"
                }
            },
            "required": [
                "fullName",
                "role"
            ]
        },
        "dto.ExportRowsResponse": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ExportRow"
                    }
                }
            }
        },
        "dto.ImportSnapshotRequest": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Member"
                    }
                },
                "contributions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Contribution"
                    }
                },
                "loans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Loan"
                    }
                },
                "investments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Investment"
                    }
                },
                "activities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Activity"
                    }
                },
                "settings": {
                    "$ref": "#/definitions/domain.Settings"
                },
                "notifications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Notification"
                    }
                }
            }
        },
        "dto.InsightResponse": {
            "type": "object",
            "properties": {
                "summary": {
                    "$ref": "#/definitions/domain.FinancialSummary"
                },
                "commentary": {
                    "type": "string"
                },
                "available": {
                    "type": "boolean"
                }
            }
        },
        "dto.InvestmentEntryRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                }
            },
            "required": [
                "description"
            ]
        },
        "dto.IssueLoanRequest": {
            "type": "object",
            "properties": {
                "borrowerType": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "borrowerName": {
                    "type": "string"
                },
                "borrowerPhone": {
                    "type": "string"
                },
                "principal": {
                    "type": "number"
                },
                "dateIssued": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "dueDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                }
            },
            "required": [
                "borrowerType",
                "memberId",
                "borrowerName"
            ]
        },
        "dto.ListActivitiesResponse": {
            "type": "object",
            "properties": {
                "activities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Activity"
                    }
                }
            }
        },
        "dto.ListContributionsResponse": {
            "type": "object",
            "properties": {
                "contributions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Contribution"
                    }
                }
            }
        },
        "dto.ListInvestmentsResponse": {
            "type": "object",
            "properties": {
                "investments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Investment"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/domain.InvestmentTotals"
                }
            }
        },
        "dto.ListLoansResponse": {
            "type": "object",
            "properties": {
                "loans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Loan"
                    }
                }
            }
        },
        "dto.ListMembersResponse": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Member"
                    }
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "memberId": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "passcode": {
                    "type": "string"
                }
            },
            "required": [
                "memberId",
                "role"
            ]
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "member": {
                    "$ref": "#/definitions/domain.Member"
                }
            }
        },
        "dto.MemberSharesResponse": {
            "type": "object",
            "properties": {
                "shares": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.MemberShareSummary"
                    }
                }
            }
        },
        "dto.QuarterListResponse": {
            "type": "object",
            "properties": {
                "quarters": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Quarter"
                    }
                }
            }
        },
        "dto.RecordActivityRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "amountSpent": {
                    "type": "number"
                },
                "amountEarned": {
                    "type": "number"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "category": {
                    "type": "string"
                },
                "activityType": {
                    "type": "string"
                },
                "actorId": {
                    "type": "string"
                },
                "actorName": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "activityType"
            ]
        },
        "dto.RecordContributionRequest": {
            "type": "object",
            "properties": {
                "memberId": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "periodStart": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "datePaid": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "memberId"
            ]
        },
        "dto.RecordLoanPaymentRequest": {
            "type": "object",
            "properties": {
                "principalPortion": {
                    "type": "number"
                },
                "interestPortion": {
                    "type": "number"
                },
                "monthsSettled": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateInvestmentRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "dateCreated": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                }
            }
        },
        "dto.UpdateMemberRequest": {
            "type": "object",
            "properties": {
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinedDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-15"
                },
                "historicalContribution": {
                    "type": "number"
                },
                "historicalProfit": {
                    "type": "number"
                }
            }
        },
        "dto.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "loanInterestRate": {
                    "type": "number"
                },
                "sharePrice": {
                    "type": "number"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handlers.ListNotificationsResponse": {
            "type": "object",
            "properties": {
                "notifications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Notification"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Partners App Cooperative Ledger API",
	Description:      "Members, contributions, loans, investments and financial reports of a savings cooperative.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
