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
	"golang.org/x/crypto/bcrypt"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

// defaultChannel is assigned when a join request does not name one.
const defaultChannel = "aimall"

func (h *Handler) JoinCustomer(w http.ResponseWriter, r *http.Request) {
	request := &openapi.CustomerJoin{}

	if !h.bind(w, r, request) {
		return
	}

	channel := string(request.Channel)
	if channel == "" {
		channel = defaultChannel
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "internal error", "unable to hash password")
		return
	}

	customer := store.Customer{
		ID:           uuid.New(),
		Name:         request.Name,
		Email:        string(request.Email),
		Channel:      channel,
		PasswordHash: hash,
		JoinedAt:     time.Now().UTC(),
	}

	if err := h.store.InsertCustomer(customer); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.WriteError(w, http.StatusConflict, "conflict", "email already registered")
			return
		}

		util.WriteError(w, http.StatusInternalServerError, "internal error", err.Error())

		return
	}

	token, err := h.issuer.Issue(customer.ID, openapi.ActorRoleCustomer)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "internal error", "unable to issue token")
		return
	}

	util.WriteJSONResponse(w, http.StatusCreated, openapi.CustomerAuthorized{
		Customer: convertCustomer(customer),
		Token:    token,
	})
}

func (h *Handler) GetCustomerSelf(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	customer, err := h.store.Customer(actor.ID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "customer does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertCustomer(customer))
}

func (h *Handler) JoinSeller(w http.ResponseWriter, r *http.Request) {
	request := &openapi.SellerJoin{}

	if !h.bind(w, r, request) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "internal error", "unable to hash password")
		return
	}

	seller := store.Seller{
		ID:           uuid.New(),
		Name:         request.Name,
		Email:        string(request.Email),
		Company:      request.Company,
		PasswordHash: hash,
		JoinedAt:     time.Now().UTC(),
	}

	if err := h.store.InsertSeller(seller); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.WriteError(w, http.StatusConflict, "conflict", "email already registered")
			return
		}

		util.WriteError(w, http.StatusInternalServerError, "internal error", err.Error())

		return
	}

	token, err := h.issuer.Issue(seller.ID, openapi.ActorRoleSeller)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "internal error", "unable to issue token")
		return
	}

	util.WriteJSONResponse(w, http.StatusCreated, openapi.SellerAuthorized{
		Seller: convertSeller(seller),
		Token:  token,
	})
}

func (h *Handler) GetSellerSelf(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleSeller)
	if !ok {
		return
	}

	seller, err := h.store.Seller(actor.ID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "seller does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertSeller(seller))
}
