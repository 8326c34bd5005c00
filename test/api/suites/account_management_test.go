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

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aimall-cloud/commerce/test/api"
)

var _ = Describe("Account Management", func() {
	Context("When registering a customer account", func() {
		Describe("Given a valid registration payload", func() {
			It("should create the account and return a token", func() {
				payload := api.NewCustomerJoinPayload().Build()

				authorized, err := client.JoinCustomer(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(authorized.Token).NotTo(BeEmpty())
				Expect(authorized.Customer.Id).NotTo(Equal(uuid.Nil))
				Expect(authorized.Customer.Name).To(Equal(payload.Name))
				Expect(string(authorized.Customer.Email)).To(Equal(string(payload.Email)))
				Expect(authorized.Customer.JoinedAt).NotTo(BeZero())
			})

			It("should default the sales channel when omitted", func() {
				authorized, err := client.JoinCustomer(ctx, api.NewCustomerJoinPayload().WithChannel("").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(string(authorized.Customer.Channel)).To(Equal("aimall"))
			})

			It("should return a body matching the CustomerAuthorized schema", func() {
				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/customers", api.NewCustomerJoinPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(resp).To(api.HaveStatus(http.StatusCreated))
				Expect(api.ValidateSchema(resp.Body, "CustomerAuthorized")).To(Succeed())
			})
		})

		Describe("Given an invalid registration payload", func() {
			It("should reject a malformed email address", func() {
				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/customers",
					api.NewCustomerJoinPayload().WithEmail("not-an-email").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})

			It("should reject a short password", func() {
				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/customers",
					api.NewCustomerJoinPayload().WithPassword("short").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})

			It("should reject a missing name", func() {
				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/customers",
					api.NewCustomerJoinPayload().WithName("").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})
		})

		Describe("Given an email address already in use", func() {
			It("should reject the duplicate registration", func() {
				payload := api.NewCustomerJoinPayload().Build()

				_, err := client.JoinCustomer(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/customers", payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusConflict)).To(Succeed())
			})

			It("should treat email addresses case insensitively", func() {
				payload := api.NewCustomerJoinPayload().WithEmail(api.GenerateTestID() + "@Example.COM").Build()

				_, err := client.JoinCustomer(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/customers", payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusConflict)).To(Succeed())
			})
		})
	})

	Context("When registering a seller account", func() {
		Describe("Given a valid registration payload", func() {
			It("should create the account and return a token", func() {
				payload := api.NewSellerJoinPayload().Build()

				authorized, err := client.JoinSeller(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(authorized.Token).NotTo(BeEmpty())
				Expect(authorized.Seller.Company).To(Equal(payload.Company))
			})
		})

		Describe("Given an invalid registration payload", func() {
			It("should reject a missing company", func() {
				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/sellers",
					api.NewSellerJoinPayload().WithCompany("").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})
		})

		Describe("Given an email address already in use", func() {
			It("should reject the duplicate registration", func() {
				payload := api.NewSellerJoinPayload().Build()

				_, err := client.JoinSeller(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				resp, err := client.Do(ctx, http.MethodPost, "/api/v1/sellers", payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusConflict)).To(Succeed())
			})
		})
	})

	Context("When reading the authenticated profile", func() {
		Describe("Given a customer token", func() {
			It("should return the joined customer", func() {
				fixture := api.JoinCustomerFixture(ctx, client)

				customer, err := fixture.Client.GetCustomerSelf(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(customer.Id).To(Equal(fixture.Customer.Id))
				Expect(string(customer.Email)).To(Equal(string(fixture.Customer.Email)))
			})

			It("should return a body matching the CustomerRead schema", func() {
				fixture := api.JoinCustomerFixture(ctx, client)

				resp, err := fixture.Client.Do(ctx, http.MethodGet, "/api/v1/customers/me", nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(api.ValidateSchema(resp.Body, "CustomerRead")).To(Succeed())
			})
		})

		Describe("Given a seller token", func() {
			It("should return the joined seller", func() {
				fixture := api.JoinSellerFixture(ctx, client)

				seller, err := fixture.Client.GetSellerSelf(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(seller.Id).To(Equal(fixture.Seller.Id))
			})
		})

		Describe("Given a token for the wrong role", func() {
			It("should deny a seller reading the customer profile", func() {
				fixture := api.JoinSellerFixture(ctx, client)

				resp, err := fixture.Client.Do(ctx, http.MethodGet, "/api/v1/customers/me", nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusForbidden)).To(Succeed())
			})

			It("should deny a customer reading the seller profile", func() {
				fixture := api.JoinCustomerFixture(ctx, client)

				resp, err := fixture.Client.Do(ctx, http.MethodGet, "/api/v1/sellers/me", nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusForbidden)).To(Succeed())
			})
		})
	})
})
