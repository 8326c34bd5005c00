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

var _ = Describe("Product Catalog", func() {
	Context("When creating a product listing", func() {
		Describe("Given a valid product payload", func() {
			It("should create the product under the seller", func() {
				seller := api.JoinSellerFixture(ctx, client)

				payload := api.NewProductPayload().WithPrice(19.99).WithStock(5).Build()
				product := api.CreateProductWithCleanup(ctx, seller, payload)

				Expect(product.SellerId).To(Equal(seller.Seller.Id))
				Expect(product.Name).To(Equal(payload.Name))
				Expect(product.Price).To(Equal(19.99))
				Expect(product.Stock).To(Equal(5))
				Expect(product.CreatedAt).NotTo(BeZero())
			})

			It("should return a body matching the ProductRead schema", func() {
				seller := api.JoinSellerFixture(ctx, client)

				resp, err := seller.Client.Do(ctx, http.MethodPost,
					"/api/v1/sellers/"+seller.Seller.Id.String()+"/products",
					api.NewProductPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(resp).To(api.HaveStatus(http.StatusCreated))
				Expect(api.ValidateSchema(resp.Body, "ProductRead")).To(Succeed())
			})
		})

		Describe("Given an invalid product payload", func() {
			It("should reject a zero price", func() {
				seller := api.JoinSellerFixture(ctx, client)

				resp, err := seller.Client.Do(ctx, http.MethodPost,
					"/api/v1/sellers/"+seller.Seller.Id.String()+"/products",
					api.NewProductPayload().WithPrice(0).Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})

			It("should reject a negative stock", func() {
				seller := api.JoinSellerFixture(ctx, client)

				resp, err := seller.Client.Do(ctx, http.MethodPost,
					"/api/v1/sellers/"+seller.Seller.Id.String()+"/products",
					api.NewProductPayload().WithStock(-1).Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})
		})

		Describe("Given a path for a different seller", func() {
			It("should deny creation under another seller's identity", func() {
				owner := api.JoinSellerFixture(ctx, client)
				intruder := api.JoinSellerFixture(ctx, client)

				resp, err := intruder.Client.Do(ctx, http.MethodPost,
					"/api/v1/sellers/"+owner.Seller.Id.String()+"/products",
					api.NewProductPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusForbidden)).To(Succeed())
			})
		})
	})

	Context("When browsing the catalog", func() {
		Describe("Given products exist", func() {
			It("should list them without authentication", func() {
				fixture := api.CreateCatalogFixture(ctx, client, 3)

				products, err := client.Anonymous().ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())

				listed := make([]uuid.UUID, 0, len(products))
				for _, product := range products {
					listed = append(listed, product.Id)
				}

				for _, expected := range fixture.Products {
					Expect(listed).To(ContainElement(expected.Id))
				}
			})

			It("should return each product by identifier", func() {
				fixture := api.CreateCatalogFixture(ctx, client, 1)

				product, err := client.Anonymous().GetProduct(ctx, fixture.Products[0].Id.String())
				Expect(err).NotTo(HaveOccurred())

				Expect(product.Id).To(Equal(fixture.Products[0].Id))
				Expect(product.Name).To(Equal(fixture.Products[0].Name))
			})

			It("should return list bodies matching the ProductRead schema", func() {
				api.CreateCatalogFixture(ctx, client, 2)

				resp, err := client.Do(ctx, http.MethodGet, "/api/v1/products", nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(api.ValidateListSchema(resp.Body, "ProductRead")).To(Succeed())
			})
		})

		Describe("Given the product does not exist", func() {
			It("should return a not found error", func() {
				resp, err := client.Do(ctx, http.MethodGet, "/api/v1/products/"+uuid.New().String(), nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusNotFound)).To(Succeed())
			})

			It("should treat a malformed identifier as not found", func() {
				resp, err := client.Do(ctx, http.MethodGet, "/api/v1/products/not-a-uuid", nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusNotFound)).To(Succeed())
			})
		})
	})

	Context("When updating a product listing", func() {
		Describe("Given the seller owns the product", func() {
			It("should replace the listing", func() {
				seller := api.JoinSellerFixture(ctx, client)
				product := api.CreateProductWithCleanup(ctx, seller, api.NewProductPayload().Build())

				updated, err := seller.Client.UpdateProduct(ctx, seller.Seller.Id.String(), product.Id.String(),
					api.NewProductPayload().WithName("renamed-listing").WithPrice(42.50).Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(updated.Id).To(Equal(product.Id))
				Expect(updated.Name).To(Equal("renamed-listing"))
				Expect(updated.Price).To(Equal(42.50))
			})
		})

		Describe("Given a different seller owns the product", func() {
			It("should deny the update", func() {
				owner := api.JoinSellerFixture(ctx, client)
				product := api.CreateProductWithCleanup(ctx, owner, api.NewProductPayload().Build())

				intruder := api.JoinSellerFixture(ctx, client)

				resp, err := intruder.Client.Do(ctx, http.MethodPut,
					"/api/v1/sellers/"+intruder.Seller.Id.String()+"/products/"+product.Id.String(),
					api.NewProductPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusForbidden)).To(Succeed())
			})
		})
	})

	Context("When removing a product listing", func() {
		Describe("Given the seller owns the product", func() {
			It("should remove it from the catalog", func() {
				seller := api.JoinSellerFixture(ctx, client)

				product, err := seller.Client.CreateProduct(ctx, seller.Seller.Id.String(), api.NewProductPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(seller.Client.DeleteProduct(ctx, seller.Seller.Id.String(), product.Id.String())).To(Succeed())

				resp, err := client.Do(ctx, http.MethodGet, "/api/v1/products/"+product.Id.String(), nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusNotFound)).To(Succeed())
			})

			It("should handle repeated delete operations", func() {
				seller := api.JoinSellerFixture(ctx, client)

				product, err := seller.Client.CreateProduct(ctx, seller.Seller.Id.String(), api.NewProductPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(seller.Client.DeleteProduct(ctx, seller.Seller.Id.String(), product.Id.String())).To(Succeed())

				// Repeated delete should be idempotent - no error
				Expect(seller.Client.DeleteProduct(ctx, seller.Seller.Id.String(), product.Id.String())).To(Succeed())
			})
		})
	})
})
