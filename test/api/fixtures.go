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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"

	"github.com/aimall-cloud/commerce/pkg/openapi"
)

// CustomerFixture is a registered customer with an authenticated client.
type CustomerFixture struct {
	Client   *APIClient
	Customer openapi.CustomerRead
	Token    string
	Password string
}

// JoinCustomerFixture registers a fresh randomized customer and returns a
// client authenticated as them. Accounts are cheap and have no cleanup
// endpoint, so none is scheduled.
func JoinCustomerFixture(ctx context.Context, client *APIClient) *CustomerFixture {
	payload := NewCustomerJoinPayload().Build()

	authorized, err := client.JoinCustomer(ctx, payload)
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Joined customer %s (%s)\n", authorized.Customer.Id, authorized.Customer.Email)

	return &CustomerFixture{
		Client:   client.AsActor(authorized.Token),
		Customer: authorized.Customer,
		Token:    authorized.Token,
		Password: payload.Password,
	}
}

// SellerFixture is a registered seller with an authenticated client.
type SellerFixture struct {
	Client   *APIClient
	Seller   openapi.SellerRead
	Token    string
	Password string
}

// JoinSellerFixture registers a fresh randomized seller.
func JoinSellerFixture(ctx context.Context, client *APIClient) *SellerFixture {
	payload := NewSellerJoinPayload().Build()

	authorized, err := client.JoinSeller(ctx, payload)
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Joined seller %s (%s)\n", authorized.Seller.Id, authorized.Seller.Email)

	return &SellerFixture{
		Client:   client.AsActor(authorized.Token),
		Seller:   authorized.Seller,
		Token:    authorized.Token,
		Password: payload.Password,
	}
}

// CreateProductWithCleanup creates a product under the seller and schedules
// its removal, so listings from one spec don't leak into the next.
func CreateProductWithCleanup(ctx context.Context, seller *SellerFixture, payload *openapi.ProductWrite) *openapi.ProductRead {
	product, err := seller.Client.CreateProduct(ctx, seller.Seller.Id.String(), payload)
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Created product %s\n", product.Id)

	DeferCleanup(func() {
		deleteErr := seller.Client.DeleteProduct(context.Background(), seller.Seller.Id.String(), product.Id.String())
		if deleteErr != nil {
			GinkgoWriter.Printf("Warning: Failed to delete product %s: %v\n", product.Id, deleteErr)
		}
	})

	return product
}

// CatalogFixture is a seller with a set of live products.
type CatalogFixture struct {
	Seller   *SellerFixture
	Products []openapi.ProductRead
}

// CreateCatalogFixture registers a seller and stocks it with count products.
func CreateCatalogFixture(ctx context.Context, client *APIClient, count int) *CatalogFixture {
	seller := JoinSellerFixture(ctx, client)

	fixture := &CatalogFixture{
		Seller:   seller,
		Products: make([]openapi.ProductRead, 0, count),
	}

	for i := range count {
		product := CreateProductWithCleanup(ctx, seller,
			NewProductPayload().
				WithName(fmt.Sprintf("%s-%d", GenerateTestID(), i)).
				Build())

		fixture.Products = append(fixture.Products, *product)
	}

	return fixture
}

// PurchaseFixture is a customer that has placed an order for a product, the
// precondition for review coverage.
type PurchaseFixture struct {
	Customer *CustomerFixture
	Seller   *SellerFixture
	Product  openapi.ProductRead
	Order    openapi.OrderRead
}

// CreatePurchaseFixture builds the full chain: seller, product, customer and
// a placed order. The order is cancelled on cleanup.
func CreatePurchaseFixture(ctx context.Context, client *APIClient) *PurchaseFixture {
	seller := JoinSellerFixture(ctx, client)
	product := CreateProductWithCleanup(ctx, seller, NewProductPayload().Build())
	customer := JoinCustomerFixture(ctx, client)

	order := CreateOrderWithCleanup(ctx, customer, NewOrderPayload().WithItem(product.Id, 1).Build())

	return &PurchaseFixture{
		Customer: customer,
		Seller:   seller,
		Product:  *product,
		Order:    *order,
	}
}

// CreateOrderWithCleanup places an order as the customer and schedules its
// cancellation.
func CreateOrderWithCleanup(ctx context.Context, customer *CustomerFixture, payload *openapi.OrderWrite) *openapi.OrderRead {
	order, err := customer.Client.CreateOrder(ctx, payload)
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Placed order %s total=%v\n", order.Id, order.Total)

	DeferCleanup(func() {
		cancelErr := customer.Client.CancelOrder(context.Background(), order.Id.String())
		if cancelErr != nil {
			GinkgoWriter.Printf("Warning: Failed to cancel order %s: %v\n", order.Id, cancelErr)
		}
	})

	return order
}

// CouponFixture is an administered coupon, optionally with an issued ticket.
type CouponFixture struct {
	Coupon openapi.CouponRead
}

// CreateCouponFixture creates a coupon as the admin. Coupons have no delete
// endpoint; randomized codes keep runs from colliding.
func CreateCouponFixture(ctx context.Context, admin *APIClient, payload *openapi.CouponWrite) *CouponFixture {
	coupon, err := admin.CreateCoupon(ctx, payload)
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Created coupon %s (%s)\n", coupon.Id, coupon.Code)

	return &CouponFixture{Coupon: *coupon}
}

// IssueTicket issues a single-use ticket for the coupon to the customer.
func (f *CouponFixture) IssueTicket(ctx context.Context, customer *CustomerFixture) *openapi.CouponTicketRead {
	ticket, err := customer.Client.IssueCouponTicket(ctx, f.Coupon.Id.String())
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Issued ticket %s for coupon %s\n", ticket.Code, f.Coupon.Id)

	return ticket
}
