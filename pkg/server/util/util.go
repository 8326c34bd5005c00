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

package util

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aimall-cloud/commerce/pkg/openapi"
)

// WriteJSONResponse marshals body and writes it with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already sent, nothing sensible left to do.
		_ = err
	}
}

// WriteError writes the standard error body.
func WriteError(w http.ResponseWriter, status int, kind, description string) {
	WriteJSONResponse(w, status, openapi.Error{
		Error:       kind,
		Description: description,
	})
}

// ReadJSONBody decodes the request body into out, rejecting unknown trailing
// content.
func ReadJSONBody(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}

	return nil
}
