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
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

// requireProductOwner authorizes a seller scoped product operation: the
// acting seller must be the path seller and must own the named product.
func (h *Handler) requireProductOwner(w http.ResponseWriter, r *http.Request) (*auth.Actor, store.Product, bool) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleSeller)
	if !ok {
		return nil, store.Product{}, false
	}

	sellerID, ok := pathID(w, r, "sellerID")
	if !ok {
		return nil, store.Product{}, false
	}

	if actor.ID != sellerID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "cannot manage another seller's products")
		return nil, store.Product{}, false
	}

	productID, ok := pathID(w, r, "productID")
	if !ok {
		return nil, store.Product{}, false
	}

	product, err := h.store.RawProduct(productID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return nil, store.Product{}, false
	}

	if product.SellerID != actor.ID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "cannot manage another seller's products")
		return nil, store.Product{}, false
	}

	return actor, product, true
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleSeller)
	if !ok {
		return
	}

	sellerID, ok := pathID(w, r, "sellerID")
	if !ok {
		return
	}

	if actor.ID != sellerID {
		util.WriteError(w, http.StatusForbidden, "forbidden", "cannot manage another seller's products")
		return
	}

	request := &openapi.ProductWrite{}

	if !h.bind(w, r, request) {
		return
	}

	now := time.Now().UTC()

	product := store.Product{
		ID:          uuid.New(),
		SellerID:    actor.ID,
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Price:       decimal.NewFromFloat(request.Price),
		Stock:       request.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	h.store.InsertProduct(product)

	util.WriteJSONResponse(w, http.StatusCreated, convertProduct(product))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	util.WriteJSONResponse(w, http.StatusOK, convertProductList(h.store.Products()))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	product, err := h.store.Product(productID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertProduct(product))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	_, product, ok := h.requireProductOwner(w, r)
	if !ok {
		return
	}

	if product.DeletedAt != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return
	}

	request := &openapi.ProductWrite{}

	if !h.bind(w, r, request) {
		return
	}

	product.Name = request.Name
	product.Description = request.Description
	product.Category = request.Category
	product.Price = decimal.NewFromFloat(request.Price)
	product.Stock = request.Stock
	product.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateProduct(product); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertProduct(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	_, product, ok := h.requireProductOwner(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(product.ID, time.Now().UTC()); err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "product does not exist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
