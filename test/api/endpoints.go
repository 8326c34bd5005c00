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
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Account endpoints.
func (e *Endpoints) JoinCustomer() string {
	return "/api/v1/customers"
}

func (e *Endpoints) CustomerSelf() string {
	return "/api/v1/customers/me"
}

func (e *Endpoints) JoinSeller() string {
	return "/api/v1/sellers"
}

func (e *Endpoints) SellerSelf() string {
	return "/api/v1/sellers/me"
}

// Catalog endpoints.
func (e *Endpoints) CreateProduct(sellerID string) string {
	return fmt.Sprintf("/api/v1/sellers/%s/products",
		url.PathEscape(sellerID))
}

func (e *Endpoints) UpdateProduct(sellerID, productID string) string {
	return fmt.Sprintf("/api/v1/sellers/%s/products/%s",
		url.PathEscape(sellerID), url.PathEscape(productID))
}

func (e *Endpoints) DeleteProduct(sellerID, productID string) string {
	return fmt.Sprintf("/api/v1/sellers/%s/products/%s",
		url.PathEscape(sellerID), url.PathEscape(productID))
}

func (e *Endpoints) ListProducts() string {
	return "/api/v1/products"
}

func (e *Endpoints) GetProduct(productID string) string {
	return fmt.Sprintf("/api/v1/products/%s", url.PathEscape(productID))
}

// Order endpoints.
func (e *Endpoints) CreateOrder() string {
	return "/api/v1/orders"
}

func (e *Endpoints) ListOrders() string {
	return "/api/v1/orders"
}

func (e *Endpoints) GetOrder(orderID string) string {
	return fmt.Sprintf("/api/v1/orders/%s", url.PathEscape(orderID))
}

func (e *Endpoints) CancelOrder(orderID string) string {
	return fmt.Sprintf("/api/v1/orders/%s", url.PathEscape(orderID))
}

func (e *Endpoints) UpdateOrderItemStatus(orderID, itemID string) string {
	return fmt.Sprintf("/api/v1/orders/%s/items/%s",
		url.PathEscape(orderID), url.PathEscape(itemID))
}

// Coupon endpoints.
func (e *Endpoints) CreateCoupon() string {
	return "/api/v1/admin/coupons"
}

func (e *Endpoints) ListCoupons() string {
	return "/api/v1/coupons"
}

func (e *Endpoints) GetCoupon(couponID string) string {
	return fmt.Sprintf("/api/v1/coupons/%s", url.PathEscape(couponID))
}

func (e *Endpoints) IssueCouponTicket(couponID string) string {
	return fmt.Sprintf("/api/v1/coupons/%s/tickets", url.PathEscape(couponID))
}

// Review endpoints.
func (e *Endpoints) CreateReview(productID string) string {
	return fmt.Sprintf("/api/v1/products/%s/reviews", url.PathEscape(productID))
}

func (e *Endpoints) ListReviews(productID string) string {
	return fmt.Sprintf("/api/v1/products/%s/reviews", url.PathEscape(productID))
}

func (e *Endpoints) UpdateReview(reviewID string) string {
	return fmt.Sprintf("/api/v1/reviews/%s", url.PathEscape(reviewID))
}

func (e *Endpoints) DeleteReview(reviewID string) string {
	return fmt.Sprintf("/api/v1/reviews/%s", url.PathEscape(reviewID))
}

// Attachment endpoints.
func (e *Endpoints) CreateAttachment() string {
	return "/api/v1/attachments"
}

func (e *Endpoints) GetAttachment(attachmentID string) string {
	return fmt.Sprintf("/api/v1/attachments/%s", url.PathEscape(attachmentID))
}

// Health and metadata endpoints.
func (e *Endpoints) HealthCheck() string {
	return "/api/v1/health"
}

func (e *Endpoints) OpenAPISpec() string {
	return "/api/v1/openapi.json"
}

func (e *Endpoints) Version() string {
	return "/api/v1/version"
}
