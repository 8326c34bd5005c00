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
	"time"

	"github.com/google/uuid"
	oapitypes "github.com/oapi-codegen/runtime/types"
)

// ActorRole defines the authorization role carried by an access token.
type ActorRole string

const (
	ActorRoleCustomer ActorRole = "customer"
	ActorRoleSeller   ActorRole = "seller"
	ActorRoleAdmin    ActorRole = "admin"
)

// OrderItemStatus is the fulfillment state of a single order item.
type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "pending"
	OrderItemStatusPreparing OrderItemStatus = "preparing"
	OrderItemStatusShipped   OrderItemStatus = "shipped"
	OrderItemStatusDelivered OrderItemStatus = "delivered"
)

// Error is the body returned by every non-2xx response.
type Error struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}

// Health is returned by the health endpoint.
type Health struct {
	Status string `json:"status"`
}

// Version describes the running service build.
type Version struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Revision    string `json:"revision"`
}

// CustomerJoin is the payload to register a customer account.
type CustomerJoin struct {
	Name     string          `json:"name" validate:"required,min=1,max=64"`
	Email    oapitypes.Email `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8,max=128"`
	Channel  ChannelCode     `json:"channel"`
}

// CustomerRead is a customer account as returned by the API.
type CustomerRead struct {
	Id       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Email    oapitypes.Email `json:"email"`
	Channel  ChannelCode     `json:"channel"`
	JoinedAt time.Time       `json:"joinedAt"`
}

// CustomerAuthorized couples a freshly joined customer with its access token.
type CustomerAuthorized struct {
	Customer CustomerRead `json:"customer"`
	Token    string       `json:"token"`
}

// SellerJoin is the payload to register a seller account.
type SellerJoin struct {
	Name     string          `json:"name" validate:"required,min=1,max=64"`
	Email    oapitypes.Email `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8,max=128"`
	Company  string          `json:"company" validate:"required,min=1,max=128"`
}

// SellerRead is a seller account as returned by the API.
type SellerRead struct {
	Id       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Email    oapitypes.Email `json:"email"`
	Company  string          `json:"company"`
	JoinedAt time.Time       `json:"joinedAt"`
}

// SellerAuthorized couples a freshly joined seller with its access token.
type SellerAuthorized struct {
	Seller SellerRead `json:"seller"`
	Token  string     `json:"token"`
}

// ProductWrite creates or replaces a product listing.
type ProductWrite struct {
	Name        string  `json:"name" validate:"required,min=1,max=128"`
	Description string  `json:"description" validate:"max=4096"`
	Category    string  `json:"category" validate:"required,min=1,max=64"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"min=0"`
}

// ProductRead is a product listing as returned by the API.
type ProductRead struct {
	Id          uuid.UUID `json:"id"`
	SellerId    uuid.UUID `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderItemWrite references a product within an order request.
type OrderItemWrite struct {
	ProductId uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=999"`
}

// OrderWrite is the payload to place an order.
type OrderWrite struct {
	Items      []OrderItemWrite `json:"items" validate:"required,min=1,dive"`
	TicketCode *string          `json:"ticketCode,omitempty"`
}

// OrderItemRead is a priced line item with a fulfillment status.
type OrderItemRead struct {
	Id        uuid.UUID       `json:"id"`
	ProductId uuid.UUID       `json:"productId"`
	SellerId  uuid.UUID       `json:"sellerId"`
	Name      string          `json:"name"`
	UnitPrice float64         `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Status    OrderItemStatus `json:"status"`
}

// OrderRead is an order as returned by the API, priced server side.
type OrderRead struct {
	Id         uuid.UUID       `json:"id"`
	CustomerId uuid.UUID       `json:"customerId"`
	Items      []OrderItemRead `json:"items"`
	Subtotal   float64         `json:"subtotal"`
	Discount   float64         `json:"discount"`
	Total      float64         `json:"total"`
	TicketCode *string         `json:"ticketCode,omitempty"`
	PlacedAt   time.Time       `json:"placedAt"`
}

// OrderItemStatusWrite advances the fulfillment status of an order item.
type OrderItemStatusWrite struct {
	Status OrderItemStatus `json:"status" validate:"required,oneof=pending preparing shipped delivered"`
}

// CouponWrite creates a discount coupon. Exactly one of PercentOff and
// AmountOff must be set.
type CouponWrite struct {
	Code       CouponCode `json:"code"`
	Name       string     `json:"name" validate:"required,min=1,max=128"`
	PercentOff *float64   `json:"percentOff,omitempty" validate:"omitempty,gt=0,lte=100"`
	AmountOff  *float64   `json:"amountOff,omitempty" validate:"omitempty,gt=0"`
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidTo    *time.Time `json:"validTo,omitempty"`
}

// CouponRead is a coupon as returned by the API.
type CouponRead struct {
	Id         uuid.UUID  `json:"id"`
	Code       CouponCode `json:"code"`
	Name       string     `json:"name"`
	PercentOff *float64   `json:"percentOff,omitempty"`
	AmountOff  *float64   `json:"amountOff,omitempty"`
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidTo    *time.Time `json:"validTo,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CouponTicketRead is a single-use ticket code issued to a customer.
type CouponTicketRead struct {
	Id         uuid.UUID `json:"id"`
	CouponId   uuid.UUID `json:"couponId"`
	CustomerId uuid.UUID `json:"customerId"`
	Code       string    `json:"code"`
	IssuedAt   time.Time `json:"issuedAt"`
}

// ReviewWrite creates or replaces a product review.
type ReviewWrite struct {
	Score int    `json:"score" validate:"required,min=1,max=5"`
	Title string `json:"title" validate:"required,min=1,max=128"`
	Body  string `json:"body" validate:"max=4096"`
}

// ReviewRead is a review as returned by the API.
type ReviewRead struct {
	Id         uuid.UUID `json:"id"`
	ProductId  uuid.UUID `json:"productId"`
	CustomerId uuid.UUID `json:"customerId"`
	Score      int       `json:"score"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AttachmentWrite records an uploaded file's metadata.
type AttachmentWrite struct {
	Filename    string `json:"filename" validate:"required,min=1,max=255"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

// AttachmentRead is an attachment record as returned by the API.
type AttachmentRead struct {
	Id          uuid.UUID `json:"id"`
	OwnerId     uuid.UUID `json:"ownerId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
