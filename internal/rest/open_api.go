package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

// NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	swagger := openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "ProjectHub API",
			Description: "REST APIs used for managing projects and the tasks assigned to users",
			Version:     "0.0.0",
			License: &openapi3.License{
				Name: "MIT",
			},
		},
		Components: &openapi3.Components{},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://127.0.0.1:9234",
			},
		},
	}

	dateSchema := func() *openapi3.Schema {
		return openapi3.NewStringSchema().WithFormat("date")
	}

	swagger.Components.SecuritySchemes = openapi3.SecuritySchemes{
		"bearerAuth": &openapi3.SecuritySchemeRef{
			Value: openapi3.NewJWTSecurityScheme(),
		},
	}

	swagger.Components.Schemas = openapi3.Schemas{
		"Project": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("id", openapi3.NewInt64Schema()).
				WithProperty("name", openapi3.NewStringSchema().WithMaxLength(255)).
				WithProperty("description", openapi3.NewStringSchema()).
				WithProperty("start_date", dateSchema()).
				WithProperty("end_date", dateSchema())),
		"TaskStatus": openapi3.NewSchemaRef("",
			openapi3.NewStringSchema().
				WithEnum("Pending", "In Progress", "Completed")),
		"Task": openapi3.NewSchemaRef("",
			openapi3.NewObjectSchema().
				WithProperty("id", openapi3.NewInt64Schema()).
				WithProperty("title", openapi3.NewStringSchema().WithMaxLength(255)).
				WithProperty("description", openapi3.NewStringSchema()).
				WithPropertyRef("status", &openapi3.SchemaRef{
					Ref: "#/components/schemas/TaskStatus",
				}).
				WithProperty("due_date", dateSchema()).
				WithProperty("project", openapi3.NewInt64Schema()).
				WithProperty("assigned_to", openapi3.NewInt64Schema())),
	}

	pageSchema := func(ref string) *openapi3.Schema {
		return openapi3.NewObjectSchema().
			WithProperty("count", openapi3.NewInt64Schema()).
			WithProperty("next", openapi3.NewStringSchema().WithNullable()).
			WithProperty("previous", openapi3.NewStringSchema().WithNullable()).
			WithProperty("results", &openapi3.Schema{
				Type:  "array",
				Items: &openapi3.SchemaRef{Ref: ref},
			})
	}

	swagger.Components.RequestBodies = openapi3.RequestBodies{
		"ProjectRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for creating or updating a project.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewSchema().
					WithProperty("name", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(255)).
					WithProperty("description", openapi3.NewStringSchema().WithMinLength(1)).
					WithProperty("start_date", dateSchema()).
					WithProperty("end_date", dateSchema())),
		},
		"TaskRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for creating or updating a task.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewSchema().
					WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(255)).
					WithProperty("description", openapi3.NewStringSchema().WithMinLength(1)).
					WithPropertyRef("status", &openapi3.SchemaRef{
						Ref: "#/components/schemas/TaskStatus",
					}).
					WithProperty("due_date", dateSchema()).
					WithProperty("project", openapi3.NewInt64Schema()).
					WithProperty("assigned_to", openapi3.NewInt64Schema())),
		},
		"CredentialsRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for registering users and obtaining tokens.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewSchema().
					WithProperty("username", openapi3.NewStringSchema().WithMaxLength(150)).
					WithProperty("password", openapi3.NewStringSchema()).
					WithProperty("is_staff", openapi3.NewBoolSchema())),
		},
		"RefreshRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for renewing an access token.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewSchema().
					WithProperty("refresh", openapi3.NewStringSchema())),
		},
	}

	swagger.Components.Responses = openapi3.Responses{
		"ErrorResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response when errors happen.").
				WithContent(openapi3.NewContentWithJSONSchema(openapi3.NewSchema().
					WithProperty("error", openapi3.NewStringSchema()).
					WithProperty("validations", openapi3.NewObjectSchema()))),
		},
		"ProjectResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Project record.").
				WithContent(openapi3.NewContentWithJSONSchemaRef(&openapi3.SchemaRef{
					Ref: "#/components/schemas/Project",
				})),
		},
		"TaskResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Task record.").
				WithContent(openapi3.NewContentWithJSONSchemaRef(&openapi3.SchemaRef{
					Ref: "#/components/schemas/Task",
				})),
		},
	}

	errorRef := func() *openapi3.ResponseRef {
		return &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"}
	}

	noContent := func(desc string) *openapi3.ResponseRef {
		return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(desc)}
	}

	secured := openapi3.NewSecurityRequirements().With(openapi3.NewSecurityRequirement().Authenticate("bearerAuth"))

	idParam := openapi3.Parameters{
		&openapi3.ParameterRef{
			Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewInt64Schema()),
		},
	}

	listParams := openapi3.Parameters{
		&openapi3.ParameterRef{
			Value: openapi3.NewQueryParameter("search").WithSchema(openapi3.NewStringSchema()),
		},
		&openapi3.ParameterRef{
			Value: openapi3.NewQueryParameter("page").WithSchema(openapi3.NewIntegerSchema().WithMin(1)),
		},
	}

	resource := func(name, schema, requestBody, response string) (*openapi3.PathItem, *openapi3.PathItem) {
		list := &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "Search" + name + "s",
				Parameters:  listParams,
				Security:    secured,
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription(name + "s found").
							WithJSONSchema(pageSchema("#/components/schemas/" + schema)),
					},
					"401": errorRef(),
					"404": errorRef(),
					"500": errorRef(),
				},
			},
			Post: &openapi3.Operation{
				OperationID: "Create" + name,
				Security:    secured,
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/" + requestBody},
				Responses: openapi3.Responses{
					"201": &openapi3.ResponseRef{Ref: "#/components/responses/" + response},
					"400": errorRef(),
					"401": errorRef(),
					"403": errorRef(),
					"500": errorRef(),
				},
			},
		}

		update := func(id string) *openapi3.Operation {
			return &openapi3.Operation{
				OperationID: id,
				Security:    secured,
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/" + requestBody},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/" + response},
					"400": errorRef(),
					"401": errorRef(),
					"403": errorRef(),
					"404": errorRef(),
					"500": errorRef(),
				},
			}
		}

		detail := &openapi3.PathItem{
			Parameters: idParam,
			Get: &openapi3.Operation{
				OperationID: "Read" + name,
				Security:    secured,
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/" + response},
					"401": errorRef(),
					"404": errorRef(),
					"500": errorRef(),
				},
			},
			Put:   update("Replace" + name),
			Patch: update("Update" + name),
			Delete: &openapi3.Operation{
				OperationID: "Delete" + name,
				Security:    secured,
				Responses: openapi3.Responses{
					"204": noContent(name + " deleted"),
					"401": errorRef(),
					"403": errorRef(),
					"404": errorRef(),
					"500": errorRef(),
				},
			},
		}

		return list, detail
	}

	projects, project := resource("Project", "Project", "ProjectRequest", "ProjectResponse")
	tasks, task := resource("Task", "Task", "TaskRequest", "TaskResponse")

	swagger.Paths = openapi3.Paths{
		"/api/register/": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "Register",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/CredentialsRequest"},
				Responses: openapi3.Responses{
					"201": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("User registered").
							WithJSONSchema(openapi3.NewSchema().WithProperty("message", openapi3.NewStringSchema())),
					},
					"400": errorRef(),
				},
			},
		},
		"/api/token/": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "ObtainToken",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/CredentialsRequest"},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Token pair").
							WithJSONSchema(openapi3.NewSchema().
								WithProperty("access", openapi3.NewStringSchema()).
								WithProperty("refresh", openapi3.NewStringSchema())),
					},
					"400": errorRef(),
					"401": errorRef(),
				},
			},
		},
		"/api/token/refresh/": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "RefreshToken",
				RequestBody: &openapi3.RequestBodyRef{Ref: "#/components/requestBodies/RefreshRequest"},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Access token").
							WithJSONSchema(openapi3.NewSchema().WithProperty("access", openapi3.NewStringSchema())),
					},
					"400": errorRef(),
					"401": errorRef(),
				},
			},
		},
		"/api/projects/":      projects,
		"/api/projects/{id}/": project,
		"/api/tasks/":         tasks,
		"/api/tasks/{id}/":    task,
	}

	return swagger
}

// RegisterOpenAPI serves the OpenAPI document as JSON and YAML.
func RegisterOpenAPI(r chi.Router) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, r *http.Request) {
		renderResponse(w, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, r *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)

		_, _ = w.Write(data)
	})
}
