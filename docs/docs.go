// Package docs contém a documentação OpenAPI servida em /swagger.
// Regenerar com: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "basePath": "{{.BasePath}}",
    "definitions": {
        "dto.AuthResponse": {
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "empresa": {
                    "$ref": "#/definitions/dto.TenantResponse"
                },
                "expires_in": {
                    "type": "integer"
                },
                "refresh_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserResponse"
                }
            },
            "type": "object"
        },
        "dto.CreateQuoteRequest": {
            "properties": {
                "descricao": {
                    "type": "string"
                },
                "margem_lucro_percentual": {
                    "type": "string"
                },
                "produto_base": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                },
                "usar_composicao": {
                    "type": "boolean"
                }
            },
            "required": [
                "produto_base"
            ],
            "type": "object"
        },
        "dto.ErrorResponse": {
            "properties": {
                "code": {
                    "type": "integer"
                },
                "details": {
                    "type": "string"
                },
                "fields": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "type": "object"
                },
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.FeeLineRequest": {
            "properties": {
                "base_calculo": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "valor": {
                    "type": "string"
                }
            },
            "required": [
                "descricao"
            ],
            "type": "object"
        },
        "dto.FeeLineResponse": {
            "properties": {
                "base_calculo": {
                    "type": "string"
                },
                "custo_total_item": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "valor": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.FinalPriceRequest": {
            "properties": {
                "preco_venda_final": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.LoginRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ],
            "type": "object"
        },
        "dto.MaterialLineRequest": {
            "properties": {
                "componente": {
                    "type": "string"
                },
                "custo_unitario": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                }
            },
            "required": [
                "componente"
            ],
            "type": "object"
        },
        "dto.MaterialLineResponse": {
            "properties": {
                "componente": {
                    "type": "string"
                },
                "custo_total_item": {
                    "type": "string"
                },
                "custo_unitario": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.PaymentListResponse": {
            "properties": {
                "pagamentos": {
                    "items": {
                        "$ref": "#/definitions/dto.PaymentResponse"
                    },
                    "type": "array"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.PaymentResponse": {
            "properties": {
                "amount": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "gateway": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "paid_at": {
                    "type": "string"
                },
                "payment_method": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "subscription": {
                    "type": "string"
                },
                "user": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.PlanResponse": {
            "properties": {
                "billing_period": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "features": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "max_projects": {
                    "type": "integer"
                },
                "max_users": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "order": {
                    "type": "integer"
                },
                "price": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ProcessLineRequest": {
            "properties": {
                "custo_hora": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "horas": {
                    "type": "string"
                }
            },
            "required": [
                "descricao"
            ],
            "type": "object"
        },
        "dto.ProcessLineResponse": {
            "properties": {
                "custo_hora": {
                    "type": "string"
                },
                "custo_total_item": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "horas": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ProductListResponse": {
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "produtos": {
                    "items": {
                        "$ref": "#/definitions/dto.ProductResponse"
                    },
                    "type": "array"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.ProductRequest": {
            "properties": {
                "codigo_sku": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "nome": {
                    "type": "string"
                },
                "preco_custo": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "unidade_medida": {
                    "type": "string"
                }
            },
            "required": [
                "nome",
                "tipo"
            ],
            "type": "object"
        },
        "dto.ProductResponse": {
            "properties": {
                "codigo_sku": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "nome": {
                    "type": "string"
                },
                "preco_custo": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "unidade_medida": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.ProfileRequest": {
            "properties": {
                "company_name": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.QuoteListResponse": {
            "properties": {
                "orcamentos": {
                    "items": {
                        "$ref": "#/definitions/dto.QuoteResponse"
                    },
                    "type": "array"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.QuoteResponse": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "custo_adicional_fixo": {
                    "type": "string"
                },
                "custo_total_despesas_impostos": {
                    "type": "string"
                },
                "custo_total_materias_primas": {
                    "type": "string"
                },
                "custo_total_processos": {
                    "type": "string"
                },
                "custo_total_producao": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "itens_despesa_imposto": {
                    "items": {
                        "$ref": "#/definitions/dto.FeeLineResponse"
                    },
                    "type": "array"
                },
                "itens_processo": {
                    "items": {
                        "$ref": "#/definitions/dto.ProcessLineResponse"
                    },
                    "type": "array"
                },
                "itens_produto": {
                    "items": {
                        "$ref": "#/definitions/dto.MaterialLineResponse"
                    },
                    "type": "array"
                },
                "margem_lucro_percentual": {
                    "type": "string"
                },
                "preco_venda_calculado": {
                    "type": "string"
                },
                "preco_venda_final": {
                    "type": "string"
                },
                "preco_venda_final_manual": {
                    "type": "boolean"
                },
                "produto_base": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RecipeCostResponse": {
            "properties": {
                "composicao": {
                    "type": "string"
                },
                "custo_unitario": {
                    "type": "string"
                },
                "produto_acabado": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RecipeLineRequest": {
            "properties": {
                "componente": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                }
            },
            "required": [
                "componente"
            ],
            "type": "object"
        },
        "dto.RecipeLineResponse": {
            "properties": {
                "componente": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RecipeListResponse": {
            "properties": {
                "composicoes": {
                    "items": {
                        "$ref": "#/definitions/dto.RecipeResponse"
                    },
                    "type": "array"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "dto.RecipeRequest": {
            "properties": {
                "custo_adicional_fixo": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "itens": {
                    "items": {
                        "$ref": "#/definitions/dto.RecipeLineRequest"
                    },
                    "type": "array"
                },
                "produto_acabado": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RecipeResponse": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "custo_adicional_fixo": {
                    "type": "string"
                },
                "descricao": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "itens": {
                    "items": {
                        "$ref": "#/definitions/dto.RecipeLineResponse"
                    },
                    "type": "array"
                },
                "produto_acabado": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.RefreshTokenRequest": {
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            },
            "required": [
                "refresh_token"
            ],
            "type": "object"
        },
        "dto.RegisterRequest": {
            "properties": {
                "company_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ],
            "type": "object"
        },
        "dto.SubscribeRequest": {
            "properties": {
                "plan_id": {
                    "type": "string"
                }
            },
            "required": [
                "plan_id"
            ],
            "type": "object"
        },
        "dto.SubscriptionResponse": {
            "properties": {
                "auto_renew": {
                    "type": "boolean"
                },
                "canceled_at": {
                    "type": "string"
                },
                "current_period_end": {
                    "type": "string"
                },
                "current_period_start": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "plan": {
                    "type": "string"
                },
                "price_at_subscription": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "trial_end": {
                    "type": "string"
                },
                "user": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.TenantRequest": {
            "properties": {
                "cnpj": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "nome_fantasia": {
                    "type": "string"
                },
                "razao_social": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                }
            },
            "required": [
                "nome_fantasia"
            ],
            "type": "object"
        },
        "dto.TenantResponse": {
            "properties": {
                "cnpj": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "nome_fantasia": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "razao_social": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.UpdateQuoteRequest": {
            "properties": {
                "descricao": {
                    "type": "string"
                },
                "margem_lucro_percentual": {
                    "type": "string"
                },
                "quantidade": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "dto.UserResponse": {
            "properties": {
                "company_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "google_linked": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "last_login_at": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        }
    },
    "host": "{{.Host}}",
    "info": {
        "contact": {
            "email": "support@swagger.io",
            "name": "API Support",
            "url": "http://www.swagger.io/support"
        },
        "description": "{{escape .Description}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "termsOfService": "http://swagger.io/terms/",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/assinaturas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/dto.SubscriptionResponse"
                            },
                            "type": "array"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Lista assinaturas",
                "tags": [
                    "assinaturas"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plano",
                        "in": "body",
                        "name": "assinatura",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SubscribeRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.SubscriptionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Assina um plano",
                "tags": [
                    "assinaturas"
                ]
            }
        },
        "/assinaturas/ativa": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SubscriptionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Assinatura ativa",
                "tags": [
                    "assinaturas"
                ]
            }
        },
        "/assinaturas/{id}/cancelar": {
            "post": {
                "parameters": [
                    {
                        "description": "ID da assinatura",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SubscriptionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Cancela uma assinatura",
                "tags": [
                    "assinaturas"
                ]
            }
        },
        "/auth/google/callback": {
            "get": {
                "parameters": [
                    {
                        "description": "Código de autorização",
                        "in": "query",
                        "name": "code",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "State enviado no login",
                        "in": "query",
                        "name": "state",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "307": {
                        "description": "Temporary Redirect"
                    }
                },
                "summary": "Retorno do login com Google",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/google/login": {
            "get": {
                "responses": {
                    "307": {
                        "description": "Temporary Redirect"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Inicia o login com Google",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Verifica as credenciais do usuário e retorna os tokens JWT",
                "parameters": [
                    {
                        "description": "Credenciais de login",
                        "in": "body",
                        "name": "login",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Autentica um usuário",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/profile": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Retorna o perfil do usuário",
                "tags": [
                    "auth"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Dados do perfil",
                        "in": "body",
                        "name": "profile",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProfileRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Atualiza o perfil do usuário",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/refresh": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Troca um refresh token válido por um novo par",
                "parameters": [
                    {
                        "description": "Refresh token",
                        "in": "body",
                        "name": "refresh",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshTokenRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Renova os tokens JWT",
                "tags": [
                    "auth"
                ]
            }
        },
        "/auth/register": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Cria o usuário e, quando company_name é informado, a sua empresa",
                "parameters": [
                    {
                        "description": "Dados de cadastro",
                        "in": "body",
                        "name": "register",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Cadastra um usuário",
                "tags": [
                    "auth"
                ]
            }
        },
        "/composicoes": {
            "get": {
                "parameters": [
                    {
                        "description": "Página",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Itens por página",
                        "in": "query",
                        "name": "page_size",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Lista composições",
                "tags": [
                    "composicoes"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Composição e itens",
                        "in": "body",
                        "name": "composicao",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Cria uma composição",
                "tags": [
                    "composicoes"
                ]
            }
        },
        "/composicoes/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "ID da composição",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Remove uma composição",
                "tags": [
                    "composicoes"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "ID da composição",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Obtém uma composição",
                "tags": [
                    "composicoes"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID da composição",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Composição e itens",
                        "in": "body",
                        "name": "composicao",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Atualiza uma composição",
                "tags": [
                    "composicoes"
                ]
            }
        },
        "/composicoes/{id}/custo": {
            "get": {
                "parameters": [
                    {
                        "description": "ID da composição",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RecipeCostResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Custo unitário da composição",
                "tags": [
                    "composicoes"
                ]
            }
        },
        "/empresas": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Cria a empresa do usuário autenticado. Cada usuário possui uma empresa.",
                "parameters": [
                    {
                        "description": "Dados da empresa",
                        "in": "body",
                        "name": "empresa",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TenantRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.TenantResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Cria a empresa",
                "tags": [
                    "empresas"
                ]
            }
        },
        "/empresas/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TenantResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Retorna a empresa do usuário",
                "tags": [
                    "empresas"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Dados da empresa",
                        "in": "body",
                        "name": "empresa",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TenantRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.TenantResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Atualiza a empresa do usuário",
                "tags": [
                    "empresas"
                ]
            }
        },
        "/orcamentos": {
            "get": {
                "parameters": [
                    {
                        "description": "Situação (draft, sent, approved, rejected)",
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    },
                    {
                        "description": "Página",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Itens por página",
                        "in": "query",
                        "name": "page_size",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Lista orçamentos",
                "tags": [
                    "orcamentos"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Dados do orçamento",
                        "in": "body",
                        "name": "orcamento",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateQuoteRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Cria um orçamento",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Remove um orçamento",
                "tags": [
                    "orcamentos"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Obtém um orçamento",
                "tags": [
                    "orcamentos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Campos alterados",
                        "in": "body",
                        "name": "orcamento",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateQuoteRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Atualiza um orçamento",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/exportar": {
            "get": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Exporta o orçamento",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/itens-despesa": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Tipo percentual ou fixo; percentuais incidem sobre o custo ou sobre o preço de venda",
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Despesa ou imposto",
                        "in": "body",
                        "name": "item",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FeeLineRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Inclui despesa ou imposto",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/itens-despesa/{itemId}": {
            "delete": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID do item",
                        "in": "path",
                        "name": "itemId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Remove despesa ou imposto",
                "tags": [
                    "orcamentos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID do item",
                        "in": "path",
                        "name": "itemId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Despesa ou imposto",
                        "in": "body",
                        "name": "item",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FeeLineRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Altera despesa ou imposto",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/itens-processo": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Item de processo",
                        "in": "body",
                        "name": "item",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProcessLineRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Inclui item de processo",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/itens-processo/{itemId}": {
            "delete": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID do item",
                        "in": "path",
                        "name": "itemId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Remove item de processo",
                "tags": [
                    "orcamentos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID do item",
                        "in": "path",
                        "name": "itemId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Item de processo",
                        "in": "body",
                        "name": "item",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProcessLineRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Altera item de processo",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/itens-produto": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Descrição e custo unitário ausentes são preenchidos com o cadastro do componente",
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Item de produto",
                        "in": "body",
                        "name": "item",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MaterialLineRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Inclui item de produto",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/itens-produto/{itemId}": {
            "delete": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID do item",
                        "in": "path",
                        "name": "itemId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Remove item de produto",
                "tags": [
                    "orcamentos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID do item",
                        "in": "path",
                        "name": "itemId",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Item de produto",
                        "in": "body",
                        "name": "item",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MaterialLineRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Altera item de produto",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/preco-final": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Envie null para voltar a usar o preço calculado",
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Preço final",
                        "in": "body",
                        "name": "preco",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.FinalPriceRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Define o preço final",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/orcamentos/{id}/recalcular": {
            "post": {
                "parameters": [
                    {
                        "description": "ID do orçamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.QuoteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Recalcula o orçamento",
                "tags": [
                    "orcamentos"
                ]
            }
        },
        "/pagamentos": {
            "get": {
                "parameters": [
                    {
                        "description": "Página",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Itens por página",
                        "in": "query",
                        "name": "page_size",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Lista pagamentos",
                "tags": [
                    "pagamentos"
                ]
            }
        },
        "/pagamentos/{id}": {
            "get": {
                "parameters": [
                    {
                        "description": "ID do pagamento",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Obtém um pagamento",
                "tags": [
                    "pagamentos"
                ]
            }
        },
        "/planos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/dto.PlanResponse"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "Lista planos",
                "tags": [
                    "planos"
                ]
            }
        },
        "/planos/{slug}": {
            "get": {
                "parameters": [
                    {
                        "description": "Slug do plano",
                        "in": "path",
                        "name": "slug",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PlanResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "summary": "Obtém um plano",
                "tags": [
                    "planos"
                ]
            }
        },
        "/produtos": {
            "get": {
                "description": "Lista os produtos da empresa com filtros opcionais. Sem empresa a lista é vazia.",
                "parameters": [
                    {
                        "description": "Tipo (MP, PA, SV, SB)",
                        "in": "query",
                        "name": "tipo",
                        "type": "string"
                    },
                    {
                        "description": "Somente ativos ou inativos",
                        "in": "query",
                        "name": "ativo",
                        "type": "boolean"
                    },
                    {
                        "description": "Busca por nome ou SKU",
                        "in": "query",
                        "name": "busca",
                        "type": "string"
                    },
                    {
                        "description": "Página",
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "description": "Itens por página",
                        "in": "query",
                        "name": "page_size",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Lista produtos",
                "tags": [
                    "produtos"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Dados do produto",
                        "in": "body",
                        "name": "produto",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProductRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Cria um produto",
                "tags": [
                    "produtos"
                ]
            }
        },
        "/produtos/{id}": {
            "delete": {
                "description": "Produtos usados em composições ou orçamentos não podem ser removidos",
                "parameters": [
                    {
                        "description": "ID do produto",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Remove um produto",
                "tags": [
                    "produtos"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "ID do produto",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Obtém um produto",
                "tags": [
                    "produtos"
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID do produto",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Dados do produto",
                        "in": "body",
                        "name": "produto",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProductRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProductResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "summary": "Atualiza um produto",
                "tags": [
                    "produtos"
                ]
            }
        }
    },
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "Bearer": {
            "description": "Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: \"Bearer {token}\"",
            "in": "header",
            "name": "Authorization",
            "type": "apiKey"
        }
    },
    "swagger": "2.0"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Precificação API",
	Description:      "API multiempresa para precificação de produtos: catálogo, composições, orçamentos e assinaturas",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
