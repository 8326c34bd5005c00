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

//nolint:err113 // dynamic errors acceptable in test code
package api

import (
	"fmt"
	"net/http"

	"github.com/onsi/gomega/types"

	"github.com/aimall-cloud/commerce/pkg/openapi"
)

// HaveStatus matches an *APIResponse with the given status code.
func HaveStatus(expected int) types.GomegaMatcher {
	return &statusMatcher{expected: expected}
}

type statusMatcher struct {
	expected int
}

func (m *statusMatcher) Match(actual any) (bool, error) {
	resp, ok := actual.(*APIResponse)
	if !ok {
		return false, fmt.Errorf("HaveStatus expects *APIResponse, got %T", actual)
	}

	return resp.StatusCode == m.expected, nil
}

func (m *statusMatcher) FailureMessage(actual any) string {
	resp, ok := actual.(*APIResponse)
	if !ok {
		return fmt.Sprintf("Expected *APIResponse, got %T", actual)
	}

	return fmt.Sprintf("Expected status %d %s, got %d %s, body: %s",
		m.expected, http.StatusText(m.expected), resp.StatusCode, http.StatusText(resp.StatusCode), string(resp.Body))
}

func (m *statusMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected status not to be %d %s", m.expected, http.StatusText(m.expected))
}

// ValidateErrorBody checks that a response carries the standard error body.
// Every non-2xx response from the service must satisfy this.
func ValidateErrorBody(resp *APIResponse) error {
	if err := ValidateSchema(resp.Body, "Error"); err != nil {
		return err
	}

	var body openapi.Error

	if err := resp.Decode(&body); err != nil {
		return err
	}

	if body.Error == "" {
		return fmt.Errorf("error body has an empty error field: %s", string(resp.Body))
	}

	return nil
}

// ExpectStatusError asserts a denial in one shot: the expected status code
// and a well-formed error body.
func ExpectStatusError(resp *APIResponse, expectedStatus int) error {
	if resp.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d, body: %s", expectedStatus, resp.StatusCode, string(resp.Body))
	}

	return ValidateErrorBody(resp)
}
