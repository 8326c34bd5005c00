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

// Package store is the in-memory persistence layer of the commerce API
// simulator. Entities are held in maps guarded by a single RW mutex, soft
// deletes set a tombstone timestamp and deleted entities read as not found.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when an entity does not exist or is soft deleted.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("entity already exists")
)

// Customer is a registered customer account.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Channel      string
	PasswordHash []byte
	JoinedAt     time.Time
}

// Seller is a registered seller account.
type Seller struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Company      string
	PasswordHash []byte
	JoinedAt     time.Time
}

// Product is a product listing owned by a seller.
type Product struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// OrderItem is a priced line of an order.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	SellerID  uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Status    string
}

// Order is a placed order with server side pricing.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []OrderItem
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	TicketCode *string
	PlacedAt   time.Time
	DeletedAt  *time.Time
}

// Coupon is a discount coupon with an optional validity window.
type Coupon struct {
	ID         uuid.UUID
	Code       string
	Name       string
	PercentOff *decimal.Decimal
	AmountOff  *decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
	CreatedAt  time.Time
}

// CouponTicket is a single-use code issued against a coupon.
type CouponTicket struct {
	ID         uuid.UUID
	CouponID   uuid.UUID
	CustomerID uuid.UUID
	Code       string
	IssuedAt   time.Time
}

// Review is a customer review of a product.
type Review struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	CustomerID uuid.UUID
	Score      int
	Title      string
	Body       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// Attachment is an uploaded file's metadata record.
type Attachment struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	UploadedAt  time.Time
}

// Store holds every entity of the simulator.
type Store struct {
	mu sync.RWMutex

	customers      map[uuid.UUID]Customer
	customerEmails map[string]uuid.UUID

	sellers      map[uuid.UUID]Seller
	sellerEmails map[string]uuid.UUID

	products map[uuid.UUID]Product

	orders map[uuid.UUID]Order

	coupons     map[uuid.UUID]Coupon
	couponCodes map[string]uuid.UUID

	tickets     map[uuid.UUID]CouponTicket
	ticketCodes map[string]uuid.UUID

	reviews map[uuid.UUID]Review

	attachments map[uuid.UUID]Attachment
}

// New creates an empty store.
func New() *Store {
	return &Store{
		customers:      map[uuid.UUID]Customer{},
		customerEmails: map[string]uuid.UUID{},
		sellers:        map[uuid.UUID]Seller{},
		sellerEmails:   map[string]uuid.UUID{},
		products:       map[uuid.UUID]Product{},
		orders:         map[uuid.UUID]Order{},
		coupons:        map[uuid.UUID]Coupon{},
		couponCodes:    map[string]uuid.UUID{},
		tickets:        map[uuid.UUID]CouponTicket{},
		ticketCodes:    map[string]uuid.UUID{},
		reviews:        map[uuid.UUID]Review{},
		attachments:    map[uuid.UUID]Attachment{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// InsertCustomer adds a customer, enforcing email uniqueness across customers.
func (s *Store) InsertCustomer(customer Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(customer.Email)

	if _, ok := s.customerEmails[email]; ok {
		return ErrConflict
	}

	s.customers[customer.ID] = customer
	s.customerEmails[email] = customer.ID

	return nil
}

// Customer looks a customer up by ID.
func (s *Store) Customer(id uuid.UUID) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return Customer{}, ErrNotFound
	}

	return customer, nil
}

// InsertSeller adds a seller, enforcing email uniqueness across sellers.
func (s *Store) InsertSeller(seller Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(seller.Email)

	if _, ok := s.sellerEmails[email]; ok {
		return ErrConflict
	}

	s.sellers[seller.ID] = seller
	s.sellerEmails[email] = seller.ID

	return nil
}

// Seller looks a seller up by ID.
func (s *Store) Seller(id uuid.UUID) (Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seller, ok := s.sellers[id]
	if !ok {
		return Seller{}, ErrNotFound
	}

	return seller, nil
}

// InsertProduct adds a product listing.
func (s *Store) InsertProduct(product Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = product
}

// Product looks a live product up by ID. Soft deleted listings read as not
// found.
func (s *Store) Product(id uuid.UUID) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok || product.DeletedAt != nil {
		return Product{}, ErrNotFound
	}

	return product, nil
}

// Products lists live products ordered by creation time then ID for a stable
// listing.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))

	for _, product := range s.products {
		if product.DeletedAt == nil {
			out = append(out, product)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

// UpdateProduct replaces a live product listing.
func (s *Store) UpdateProduct(product Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[product.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}

	s.products[product.ID] = product

	return nil
}

// DeleteProduct soft deletes a product. Deleting an already deleted product
// is a no-op so the operation is idempotent.
func (s *Store) DeleteProduct(id uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}

	if product.DeletedAt == nil {
		product.DeletedAt = &now
		s.products[id] = product
	}

	return nil
}

// RawProduct looks a product up by ID regardless of deletion state. Used by
// ownership checks that must distinguish 403 from 404.
func (s *Store) RawProduct(id uuid.UUID) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}

	return product, nil
}

// cloneOrder detaches an order's Items slice so callers never alias the
// persisted entity across the mutex.
func cloneOrder(order Order) Order {
	order.Items = append([]OrderItem(nil), order.Items...)

	return order
}

// InsertOrder adds a placed order.
func (s *Store) InsertOrder(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = cloneOrder(order)
}

// Order looks a live order up by ID.
func (s *Store) Order(id uuid.UUID) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok || order.DeletedAt != nil {
		return Order{}, ErrNotFound
	}

	return cloneOrder(order), nil
}

// OrdersByCustomer lists a customer's live orders, oldest first.
func (s *Store) OrdersByCustomer(customerID uuid.UUID) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0)

	for _, order := range s.orders {
		if order.CustomerID == customerID && order.DeletedAt == nil {
			out = append(out, cloneOrder(order))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlacedAt.Equal(out[j].PlacedAt) {
			return out[i].PlacedAt.Before(out[j].PlacedAt)
		}

		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

// UpdateOrder replaces a live order.
func (s *Store) UpdateOrder(order Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders[order.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}

	s.orders[order.ID] = cloneOrder(order)

	return nil
}

// DeleteOrder soft deletes an order, idempotently.
func (s *Store) DeleteOrder(id uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}

	if order.DeletedAt == nil {
		order.DeletedAt = &now
		s.orders[id] = order
	}

	return nil
}

// RawOrder looks an order up regardless of deletion state.
func (s *Store) RawOrder(id uuid.UUID) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}

	return cloneOrder(order), nil
}

// InsertCoupon adds a coupon, enforcing code uniqueness.
func (s *Store) InsertCoupon(coupon Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.couponCodes[coupon.Code]; ok {
		return ErrConflict
	}

	s.coupons[coupon.ID] = coupon
	s.couponCodes[coupon.Code] = coupon.ID

	return nil
}

// Coupon looks a coupon up by ID.
func (s *Store) Coupon(id uuid.UUID) (Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coupon, ok := s.coupons[id]
	if !ok {
		return Coupon{}, ErrNotFound
	}

	return coupon, nil
}

// Coupons lists all coupons, oldest first.
func (s *Store) Coupons() []Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Coupon, 0, len(s.coupons))

	for _, coupon := range s.coupons {
		out = append(out, coupon)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

// InsertTicket adds an issued coupon ticket, enforcing code uniqueness.
func (s *Store) InsertTicket(ticket CouponTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ticketCodes[ticket.Code]; ok {
		return ErrConflict
	}

	s.tickets[ticket.ID] = ticket
	s.ticketCodes[ticket.Code] = ticket.ID

	return nil
}

// TicketByCode looks an issued ticket up by its code.
func (s *Store) TicketByCode(code string) (CouponTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.ticketCodes[code]
	if !ok {
		return CouponTicket{}, ErrNotFound
	}

	return s.tickets[id], nil
}

// InsertReview adds a review, enforcing one review per customer per product.
func (s *Store) InsertReview(review Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reviews {
		if existing.DeletedAt == nil && existing.ProductID == review.ProductID && existing.CustomerID == review.CustomerID {
			return ErrConflict
		}
	}

	s.reviews[review.ID] = review

	return nil
}

// Review looks a live review up by ID.
func (s *Store) Review(id uuid.UUID) (Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok || review.DeletedAt != nil {
		return Review{}, ErrNotFound
	}

	return review, nil
}

// ReviewsByProduct lists live reviews of a product, oldest first.
func (s *Store) ReviewsByProduct(productID uuid.UUID) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Review, 0)

	for _, review := range s.reviews {
		if review.ProductID == productID && review.DeletedAt == nil {
			out = append(out, review)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

// UpdateReview replaces a live review.
func (s *Store) UpdateReview(review Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.reviews[review.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}

	s.reviews[review.ID] = review

	return nil
}

// RawReview looks a review up regardless of deletion state.
func (s *Store) RawReview(id uuid.UUID) (Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return Review{}, ErrNotFound
	}

	return review, nil
}

// DeleteReview soft deletes a review, idempotently.
func (s *Store) DeleteReview(id uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews[id]
	if !ok {
		return ErrNotFound
	}

	if review.DeletedAt == nil {
		review.DeletedAt = &now
		s.reviews[id] = review
	}

	return nil
}

// InsertAttachment adds an attachment record.
func (s *Store) InsertAttachment(attachment Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attachments[attachment.ID] = attachment
}

// Attachment looks an attachment record up by ID.
func (s *Store) Attachment(id uuid.UUID) (Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attachment, ok := s.attachments[id]
	if !ok {
		return Attachment{}, ErrNotFound
	}

	return attachment, nil
}
