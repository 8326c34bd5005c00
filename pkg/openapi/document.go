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

package openapi

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is the raw OpenAPI description of the commerce API. The server
// serves it verbatim and the API test harness validates response bodies
// against its component schemas.
//
//go:embed openapi.json
var Document []byte

// NewDocument parses the embedded OpenAPI description.
func NewDocument() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(Document)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	return doc, nil
}
