// Package api holds the OpenAPI document of the HTTP interface. The same
// document validates incoming requests and is served by the Swagger UI.
package api

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawDocument []byte

var registerOnce sync.Once

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawDocument)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

// Register publishes the document as JSON under swag.Name, where echo-swagger
// looks it up. Only the first call has an effect.
func Register(doc *openapi3.T) error {
	body, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          doc.Info.Version,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(body),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return nil
}
