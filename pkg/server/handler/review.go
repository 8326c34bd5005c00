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
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

// purchasedProducts collects the product IDs across a customer's orders.
func (h *Handler) purchasedProducts(customerID uuid.UUID) set.Set[uuid.UUID] {
	purchased := set.New[uuid.UUID]()

	for _, order := range h.store.OrdersByCustomer(customerID) {
		for _, item := range order.Items {
			purchased.Add(item.ProductID)
		}
	}

	return purchased
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	if _, err := h.store.Product(productID); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return
	}

	if !h.purchasedProducts(actor.ID).Contains(productID) {
		util.WriteError(w, http.StatusUnprocessableEntity, "unprocessable", "product has not been purchased by this customer")
		return
	}

	request := &openapi.ReviewWrite{}

	if !h.bind(w, r, request) {
		return
	}

	now := time.Now().UTC()

	review := store.Review{
		ID:         uuid.New(),
		ProductID:  productID,
		CustomerID: actor.ID,
		Score:      request.Score,
		Title:      request.Title,
		Body:       request.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.store.InsertReview(review); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.WriteError(w, http.StatusConflict, "conflict", "product already reviewed by this customer")
			return
		}

		util.WriteError(w, http.StatusInternalServerError, "internal error", err.Error())

		return
	}

	util.WriteJSONResponse(w, http.StatusCreated, convertReview(review))
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	if _, err := h.store.Product(productID); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertReviewList(h.store.ReviewsByProduct(productID)))
}

func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	reviewID, ok := pathID(w, r, "reviewID")
	if !ok {
		return
	}

	review, err := h.store.Review(reviewID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "review does not exist")
		return
	}

	if review.CustomerID != actor.ID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "review belongs to another customer")
		return
	}

	request := &openapi.ReviewWrite{}

	if !h.bind(w, r, request) {
		return
	}

	review.Score = request.Score
	review.Title = request.Title
	review.Body = request.Body
	review.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateReview(review); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "review does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertReview(review))
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	reviewID, ok := pathID(w, r, "reviewID")
	if !ok {
		return
	}

	review, err := h.store.RawReview(reviewID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "review does not exist")
		return
	}

	if review.CustomerID != actor.ID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "review belongs to another customer")
		return
	}

	if err := h.store.DeleteReview(reviewID, time.Now().UTC()); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "review does not exist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
