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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aimall-cloud/commerce/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When submitting malformed requests", func() {
		It("should reject a body that is not JSON", func() {
			resp, err := client.DoRaw(ctx, http.MethodPost, "/api/v1/customers", "this is not json")
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
		})

		It("should reject a truncated JSON body", func() {
			resp, err := client.DoRaw(ctx, http.MethodPost, "/api/v1/customers", `{"name": "trunc`)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
		})

		It("should reject mistyped fields", func() {
			resp, err := client.DoRaw(ctx, http.MethodPost, "/api/v1/customers",
				`{"name": 42, "email": "a@b.com", "password": "longenough"}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
		})

		It("should reject an empty body on endpoints requiring one", func() {
			fixture := api.JoinCustomerFixture(ctx, client)

			resp, err := fixture.Client.DoRaw(ctx, http.MethodPost, "/api/v1/orders", "")
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
		})
	})

	Context("When addressing unknown resources", func() {
		It("should treat a malformed order identifier as not found", func() {
			customer := api.JoinCustomerFixture(ctx, client)

			resp, err := customer.Client.Do(ctx, http.MethodGet, "/api/v1/orders/definitely-not-a-uuid", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ExpectStatusError(resp, http.StatusNotFound)).To(Succeed())
		})

		It("should return not found for an unknown route", func() {
			resp, err := client.Do(ctx, http.MethodGet, "/api/v1/warehouses", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp).To(api.HaveStatus(http.StatusNotFound))
		})

		It("should reject an unsupported method on a known route", func() {
			resp, err := client.Do(ctx, http.MethodDelete, "/api/v1/products", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp).To(api.HaveStatus(http.StatusMethodNotAllowed))
		})
	})

	Context("When inspecting denial responses", func() {
		It("should return the standard error body on every denial", func() {
			denials := []struct {
				method string
				path   string
			}{
				{http.MethodGet, "/api/v1/customers/me"},
				{http.MethodGet, "/api/v1/products/not-a-uuid"},
				{http.MethodPost, "/api/v1/admin/coupons"},
			}

			for _, denial := range denials {
				resp, err := client.Anonymous().Do(ctx, denial.method, denial.path, nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ValidateErrorBody(resp)).To(Succeed(),
					"denial for %s %s should carry the standard error body", denial.method, denial.path)
			}
		})
	})
})
