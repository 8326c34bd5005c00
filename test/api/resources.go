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
	"context"
	"fmt"
	"net/http"

	"github.com/aimall-cloud/commerce/pkg/openapi"
)

// Account operations.

func (c *APIClient) JoinCustomer(ctx context.Context, body *openapi.CustomerJoin) (*openapi.CustomerAuthorized, error) {
	var out openapi.CustomerAuthorized

	if err := c.request(ctx, http.MethodPost, c.endpoints.JoinCustomer(), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("joining customer: %w", err)
	}

	return &out, nil
}

func (c *APIClient) GetCustomerSelf(ctx context.Context) (*openapi.CustomerRead, error) {
	var out openapi.CustomerRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.CustomerSelf(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting customer profile: %w", err)
	}

	return &out, nil
}

func (c *APIClient) JoinSeller(ctx context.Context, body *openapi.SellerJoin) (*openapi.SellerAuthorized, error) {
	var out openapi.SellerAuthorized

	if err := c.request(ctx, http.MethodPost, c.endpoints.JoinSeller(), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("joining seller: %w", err)
	}

	return &out, nil
}

func (c *APIClient) GetSellerSelf(ctx context.Context) (*openapi.SellerRead, error) {
	var out openapi.SellerRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.SellerSelf(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting seller profile: %w", err)
	}

	return &out, nil
}

// Catalog operations.

func (c *APIClient) CreateProduct(ctx context.Context, sellerID string, body *openapi.ProductWrite) (*openapi.ProductRead, error) {
	var out openapi.ProductRead

	if err := c.request(ctx, http.MethodPost, c.endpoints.CreateProduct(sellerID), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return &out, nil
}

func (c *APIClient) UpdateProduct(ctx context.Context, sellerID, productID string, body *openapi.ProductWrite) (*openapi.ProductRead, error) {
	var out openapi.ProductRead

	if err := c.request(ctx, http.MethodPut, c.endpoints.UpdateProduct(sellerID, productID), body, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	return &out, nil
}

func (c *APIClient) DeleteProduct(ctx context.Context, sellerID, productID string) error {
	if err := c.request(ctx, http.MethodDelete, c.endpoints.DeleteProduct(sellerID, productID), nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}

func (c *APIClient) ListProducts(ctx context.Context) ([]openapi.ProductRead, error) {
	var out []openapi.ProductRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.ListProducts(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return out, nil
}

func (c *APIClient) GetProduct(ctx context.Context, productID string) (*openapi.ProductRead, error) {
	var out openapi.ProductRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.GetProduct(productID), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return &out, nil
}

// Order operations.

func (c *APIClient) CreateOrder(ctx context.Context, body *openapi.OrderWrite) (*openapi.OrderRead, error) {
	var out openapi.OrderRead

	if err := c.request(ctx, http.MethodPost, c.endpoints.CreateOrder(), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return &out, nil
}

func (c *APIClient) ListOrders(ctx context.Context) ([]openapi.OrderRead, error) {
	var out []openapi.OrderRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.ListOrders(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return out, nil
}

// GetOrder retrieves a specific order.
// Also used to poll with Eventually while fulfillment progresses.
func (c *APIClient) GetOrder(ctx context.Context, orderID string) (*openapi.OrderRead, error) {
	var out openapi.OrderRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.GetOrder(orderID), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	return &out, nil
}

func (c *APIClient) CancelOrder(ctx context.Context, orderID string) error {
	if err := c.request(ctx, http.MethodDelete, c.endpoints.CancelOrder(orderID), nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("cancelling order: %w", err)
	}

	return nil
}

func (c *APIClient) UpdateOrderItemStatus(ctx context.Context, orderID, itemID string, body *openapi.OrderItemStatusWrite) (*openapi.OrderRead, error) {
	var out openapi.OrderRead

	if err := c.request(ctx, http.MethodPut, c.endpoints.UpdateOrderItemStatus(orderID, itemID), body, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("updating order item status: %w", err)
	}

	return &out, nil
}

// Coupon operations.

func (c *APIClient) CreateCoupon(ctx context.Context, body *openapi.CouponWrite) (*openapi.CouponRead, error) {
	var out openapi.CouponRead

	if err := c.request(ctx, http.MethodPost, c.endpoints.CreateCoupon(), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("creating coupon: %w", err)
	}

	return &out, nil
}

func (c *APIClient) ListCoupons(ctx context.Context) ([]openapi.CouponRead, error) {
	var out []openapi.CouponRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.ListCoupons(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("listing coupons: %w", err)
	}

	return out, nil
}

func (c *APIClient) GetCoupon(ctx context.Context, couponID string) (*openapi.CouponRead, error) {
	var out openapi.CouponRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.GetCoupon(couponID), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting coupon: %w", err)
	}

	return &out, nil
}

func (c *APIClient) IssueCouponTicket(ctx context.Context, couponID string) (*openapi.CouponTicketRead, error) {
	var out openapi.CouponTicketRead

	if err := c.request(ctx, http.MethodPost, c.endpoints.IssueCouponTicket(couponID), nil, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("issuing coupon ticket: %w", err)
	}

	return &out, nil
}

// Review operations.

func (c *APIClient) CreateReview(ctx context.Context, productID string, body *openapi.ReviewWrite) (*openapi.ReviewRead, error) {
	var out openapi.ReviewRead

	if err := c.request(ctx, http.MethodPost, c.endpoints.CreateReview(productID), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}

	return &out, nil
}

func (c *APIClient) ListReviews(ctx context.Context, productID string) ([]openapi.ReviewRead, error) {
	var out []openapi.ReviewRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.ListReviews(productID), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}

	return out, nil
}

func (c *APIClient) UpdateReview(ctx context.Context, reviewID string, body *openapi.ReviewWrite) (*openapi.ReviewRead, error) {
	var out openapi.ReviewRead

	if err := c.request(ctx, http.MethodPut, c.endpoints.UpdateReview(reviewID), body, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("updating review: %w", err)
	}

	return &out, nil
}

func (c *APIClient) DeleteReview(ctx context.Context, reviewID string) error {
	if err := c.request(ctx, http.MethodDelete, c.endpoints.DeleteReview(reviewID), nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}

	return nil
}

// Attachment operations.

func (c *APIClient) CreateAttachment(ctx context.Context, body *openapi.AttachmentWrite) (*openapi.AttachmentRead, error) {
	var out openapi.AttachmentRead

	if err := c.request(ctx, http.MethodPost, c.endpoints.CreateAttachment(), body, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("creating attachment: %w", err)
	}

	return &out, nil
}

func (c *APIClient) GetAttachment(ctx context.Context, attachmentID string) (*openapi.AttachmentRead, error) {
	var out openapi.AttachmentRead

	if err := c.request(ctx, http.MethodGet, c.endpoints.GetAttachment(attachmentID), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting attachment: %w", err)
	}

	return &out, nil
}

// Metadata operations.

func (c *APIClient) HealthCheck(ctx context.Context) (*openapi.Health, error) {
	var out openapi.Health

	if err := c.request(ctx, http.MethodGet, c.endpoints.HealthCheck(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}

	return &out, nil
}

func (c *APIClient) GetVersion(ctx context.Context) (*openapi.Version, error) {
	var out openapi.Version

	if err := c.request(ctx, http.MethodGet, c.endpoints.Version(), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	return &out, nil
}

func (c *APIClient) GetOpenAPISpec(ctx context.Context) ([]byte, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.OpenAPISpec(), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting openapi document: %w", err)
	}

	return resp.Body, nil
}
