package docs

import "github.com/swaggo/swag"

// @tag.name Auth
// @tag.description Session operations

// @tag.name Tasks
// @tag.description Task management operations

// @tag.name Sections
// @tag.description House section catalog operations

// @tag.name Job Positions
// @tag.description Job position catalog operations

// @tag.name Projects
// @tag.description Project management operations

// @tag.name Employees
// @tag.description Employee directory operations

// @tag.name Notifications
// @tag.description Notification feed operations

const docTemplate = `{
    "schemes": ["http"],
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "HomeTasks API",
	Description:      "API for managing household tasks, sections, projects and staff.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
