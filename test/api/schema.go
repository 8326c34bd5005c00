/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aimall-cloud/commerce/pkg/openapi"
)

var (
	schemaDocument     *openapi3.T
	schemaDocumentErr  error
	schemaDocumentOnce sync.Once
)

func loadSchemaDocument() (*openapi3.T, error) {
	schemaDocumentOnce.Do(func() {
		schemaDocument, schemaDocumentErr = openapi.NewDocument()
	})

	return schemaDocument, schemaDocumentErr
}

// ValidateSchema checks a raw response body against a named component schema
// from the service's OpenAPI document. This is the structural half of every
// assertion: a handler returning the right status with a malformed body is
// still a failure.
func ValidateSchema(body []byte, schemaName string) error {
	doc, err := loadSchemaDocument()
	if err != nil {
		return fmt.Errorf("loading openapi document: %w", err)
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok {
		return fmt.Errorf("schema %q not present in openapi document", schemaName)
	}

	var value any

	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("unmarshaling body for schema %q: %w", schemaName, err)
	}

	if err := ref.Value.VisitJSON(value, openapi3.EnableFormatValidation()); err != nil {
		return fmt.Errorf("body does not match schema %q: %w", schemaName, err)
	}

	return nil
}

// ValidateListSchema checks every element of a JSON array body against a
// named component schema.
func ValidateListSchema(body []byte, schemaName string) error {
	var elements []json.RawMessage

	if err := json.Unmarshal(body, &elements); err != nil {
		return fmt.Errorf("unmarshaling body as list for schema %q: %w", schemaName, err)
	}

	for i, element := range elements {
		if err := ValidateSchema(element, schemaName); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}
