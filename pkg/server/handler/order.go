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

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/payment"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/coupon"
	"github.com/aimall-cloud/commerce/pkg/server/pricing"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

// itemStatusRank orders the fulfillment states. Transitions may only move
// forward.
var itemStatusRank = map[openapi.OrderItemStatus]int{
	openapi.OrderItemStatusPending:   0,
	openapi.OrderItemStatusPreparing: 1,
	openapi.OrderItemStatusShipped:   2,
	openapi.OrderItemStatusDelivered: 3,
}

// resolveDiscount turns a ticket code into a pricing discount, consuming the
// ticket. Every failure mode is a semantic rejection.
func (h *Handler) resolveDiscount(actor *auth.Actor, code string, now time.Time) (*pricing.Discount, error) {
	ticket, err := h.store.TicketByCode(code)
	if err != nil {
		return nil, fmt.Errorf("ticket code %s is not issued", code)
	}

	if ticket.CustomerID != actor.ID {
		return nil, fmt.Errorf("ticket code %s belongs to another customer", code)
	}

	record, err := h.store.Coupon(ticket.CouponID)
	if err != nil {
		return nil, fmt.Errorf("ticket code %s references a missing coupon", code)
	}

	if !couponActive(record, now) {
		return nil, fmt.Errorf("coupon %s is outside its validity window", record.Code)
	}

	if err := h.tickets.Consume(code); err != nil {
		if errors.Is(err, coupon.ErrTicketUsed) {
			return nil, fmt.Errorf("ticket code %s has already been used", code)
		}

		return nil, err
	}

	return &pricing.Discount{
		PercentOff: record.PercentOff,
		AmountOff:  record.AmountOff,
	}, nil
}

func couponActive(record store.Coupon, now time.Time) bool {
	if record.ValidFrom != nil && now.Before(*record.ValidFrom) {
		return false
	}

	if record.ValidTo != nil && now.After(*record.ValidTo) {
		return false
	}

	return true
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	request := &openapi.OrderWrite{}

	if !h.bind(w, r, request) {
		return
	}

	now := time.Now().UTC()

	items := make([]store.OrderItem, 0, len(request.Items))

	for _, line := range request.Items {
		product, err := h.store.Product(line.ProductId)
		if err != nil {
			util.WriteError(w, http.StatusUnprocessableEntity, "unprocessable", fmt.Sprintf("product %s does not exist", line.ProductId))
			return
		}

		items = append(items, store.OrderItem{
			ID:        uuid.New(),
			ProductID: product.ID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			Status:    string(openapi.OrderItemStatusPending),
		})
	}

	var discount *pricing.Discount

	if request.TicketCode != nil {
		resolved, err := h.resolveDiscount(actor, *request.TicketCode, now)
		if err != nil {
			util.WriteError(w, http.StatusUnprocessableEntity, "unprocessable", err.Error())
			return
		}

		discount = resolved
	}

	subtotal, reduction, total := pricing.Price(items, discount)

	order := store.Order{
		ID:         uuid.New(),
		CustomerID: actor.ID,
		Items:      items,
		Subtotal:   subtotal,
		Discount:   reduction,
		Total:      total,
		TicketCode: request.TicketCode,
		PlacedAt:   now,
	}

	authorization := &payment.AuthorizeRequest{
		OrderId:  order.ID,
		Amount:   total.InexactFloat64(),
		Currency: "USD",
	}

	if _, err := h.gateway.Authorize(r.Context(), authorization); err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			util.WriteError(w, http.StatusUnprocessableEntity, "unprocessable", "payment was declined")
			return
		}

		util.WriteError(w, http.StatusBadGateway, "bad gateway", "payment gateway unavailable")

		return
	}

	h.store.InsertOrder(order)

	util.WriteJSONResponse(w, http.StatusCreated, convertOrder(order))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertOrderList(h.store.OrdersByCustomer(actor.ID)))
}

// orderVisible reports whether an actor may read an order: the owning
// customer, any seller with a line in it, or an admin.
func orderVisible(actor *auth.Actor, order store.Order) bool {
	switch actor.Role {
	case openapi.ActorRoleAdmin:
		return true
	case openapi.ActorRoleCustomer:
		return order.CustomerID == actor.ID
	case openapi.ActorRoleSeller:
		for _, item := range order.Items {
			if item.SellerID == actor.ID {
				return true
			}
		}
	}

	return false
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.Require(w, r)
	if !ok {
		return
	}

	orderID, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}

	order, err := h.store.Order(orderID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "order does not exist")
		return
	}

	if !orderVisible(actor, order) {
		util.WriteError(w, http.StatusForbidden, "forbidden", "order belongs to another customer")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertOrder(order))
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	orderID, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}

	order, err := h.store.RawOrder(orderID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "order does not exist")
		return
	}

	if order.CustomerID != actor.ID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "order belongs to another customer")
		return
	}

	if err := h.store.DeleteOrder(orderID, time.Now().UTC()); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "order does not exist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateOrderItemStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleSeller)
	if !ok {
		return
	}

	orderID, ok := pathID(w, r, "orderID")
	if !ok {
		return
	}

	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	order, err := h.store.Order(orderID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "order does not exist")
		return
	}

	index := -1

	for i := range order.Items {
		if order.Items[i].ID == itemID {
			index = i
			break
		}
	}

	if index < 0 {
		util.WriteError(w, http.StatusNotFound, "not found", "order item does not exist")
		return
	}

	if order.Items[index].SellerID != actor.ID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "order item belongs to another seller")
		return
	}

	request := &openapi.OrderItemStatusWrite{}

	if !h.bind(w, r, request) {
		return
	}

	current := openapi.OrderItemStatus(order.Items[index].Status)

	if itemStatusRank[request.Status] <= itemStatusRank[current] {
		util.WriteError(w, http.StatusUnprocessableEntity, "unprocessable", fmt.Sprintf("cannot move item from %s to %s", current, request.Status))
		return
	}

	order.Items[index].Status = string(request.Status)

	if err := h.store.UpdateOrder(order); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "order does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertOrder(order))
}
