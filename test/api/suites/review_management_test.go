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

var _ = Describe("Review Management", func() {
	Context("When writing a product review", func() {
		Describe("Given the customer purchased the product", func() {
			It("should create the review", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				payload := api.NewReviewPayload().WithScore(4).Build()

				review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(), payload)
				Expect(err).NotTo(HaveOccurred())

				Expect(review.ProductId).To(Equal(fixture.Product.Id))
				Expect(review.CustomerId).To(Equal(fixture.Customer.Customer.Id))
				Expect(review.Score).To(Equal(4))
				Expect(review.Title).To(Equal(payload.Title))
			})

			It("should return a body matching the ReviewRead schema", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				resp, err := fixture.Customer.Client.Do(ctx, http.MethodPost,
					"/api/v1/products/"+fixture.Product.Id.String()+"/reviews",
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(resp).To(api.HaveStatus(http.StatusCreated))
				Expect(api.ValidateSchema(resp.Body, "ReviewRead")).To(Succeed())
			})

			It("should reject a second review of the same product", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				_, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				resp, err := fixture.Customer.Client.Do(ctx, http.MethodPost,
					"/api/v1/products/"+fixture.Product.Id.String()+"/reviews",
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusConflict)).To(Succeed())
			})

			It("should reject an out of range score", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				resp, err := fixture.Customer.Client.Do(ctx, http.MethodPost,
					"/api/v1/products/"+fixture.Product.Id.String()+"/reviews",
					api.NewReviewPayload().WithScore(6).Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusBadRequest)).To(Succeed())
			})
		})

		Describe("Given the customer never purchased the product", func() {
			It("should reject the review", func() {
				catalog := api.CreateCatalogFixture(ctx, client, 1)
				bystander := api.JoinCustomerFixture(ctx, client)

				resp, err := bystander.Client.Do(ctx, http.MethodPost,
					"/api/v1/products/"+catalog.Products[0].Id.String()+"/reviews",
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusUnprocessableEntity)).To(Succeed())
			})
		})

		Describe("Given the product does not exist", func() {
			It("should return a not found error", func() {
				customer := api.JoinCustomerFixture(ctx, client)

				resp, err := customer.Client.Do(ctx, http.MethodPost,
					"/api/v1/products/"+uuid.New().String()+"/reviews",
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusNotFound)).To(Succeed())
			})
		})
	})

	Context("When reading reviews", func() {
		It("should list reviews for the product without authentication", func() {
			fixture := api.CreatePurchaseFixture(ctx, client)

			review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
				api.NewReviewPayload().Build())
			Expect(err).NotTo(HaveOccurred())

			reviews, err := client.Anonymous().ListReviews(ctx, fixture.Product.Id.String())
			Expect(err).NotTo(HaveOccurred())

			Expect(reviews).To(HaveLen(1))
			Expect(reviews[0].Id).To(Equal(review.Id))
		})

		It("should return a not found error for an unknown product", func() {
			resp, err := client.Do(ctx, http.MethodGet,
				"/api/v1/products/"+uuid.New().String()+"/reviews", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.ExpectStatusError(resp, http.StatusNotFound)).To(Succeed())
		})
	})

	Context("When updating a review", func() {
		Describe("Given the author's token", func() {
			It("should replace the review content", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
					api.NewReviewPayload().WithScore(2).Build())
				Expect(err).NotTo(HaveOccurred())

				updated, err := fixture.Customer.Client.UpdateReview(ctx, review.Id.String(),
					api.NewReviewPayload().WithScore(5).WithTitle("changed my mind").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(updated.Id).To(Equal(review.Id))
				Expect(updated.Score).To(Equal(5))
				Expect(updated.Title).To(Equal("changed my mind"))
			})
		})

		Describe("Given another customer's token", func() {
			It("should deny the update", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				stranger := api.JoinCustomerFixture(ctx, client)

				resp, err := stranger.Client.Do(ctx, http.MethodPut,
					"/api/v1/reviews/"+review.Id.String(),
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusForbidden)).To(Succeed())
			})
		})
	})

	Context("When deleting a review", func() {
		Describe("Given the author's token", func() {
			It("should remove the review from the listing", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(fixture.Customer.Client.DeleteReview(ctx, review.Id.String())).To(Succeed())

				reviews, err := client.ListReviews(ctx, fixture.Product.Id.String())
				Expect(err).NotTo(HaveOccurred())
				Expect(reviews).To(BeEmpty())
			})

			It("should handle repeated delete operations", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(fixture.Customer.Client.DeleteReview(ctx, review.Id.String())).To(Succeed())

				// Repeated delete should be idempotent - no error
				Expect(fixture.Customer.Client.DeleteReview(ctx, review.Id.String())).To(Succeed())
			})
		})

		Describe("Given another customer's token", func() {
			It("should deny the deletion", func() {
				fixture := api.CreatePurchaseFixture(ctx, client)

				review, err := fixture.Customer.Client.CreateReview(ctx, fixture.Product.Id.String(),
					api.NewReviewPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				stranger := api.JoinCustomerFixture(ctx, client)

				resp, err := stranger.Client.Do(ctx, http.MethodDelete,
					"/api/v1/reviews/"+review.Id.String(), nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.ExpectStatusError(resp, http.StatusForbidden)).To(Succeed())
			})
		})
	})
})
