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

// Package handler implements the commerce API surface over the in-memory
// store. Handlers own the access control decisions: 401 for missing
// authentication, 403 when the acting principal does not own the resource,
// 404 for unknown or soft deleted entities, 409 for uniqueness violations
// and 422 for semantically invalid operations.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aimall-cloud/commerce/pkg/constants"
	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/payment"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/coupon"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

type Handler struct {
	// store holds every entity.
	store *store.Store

	// issuer mints and verifies access tokens.
	issuer *auth.Issuer

	// tickets tracks consumed single-use coupon ticket codes.
	tickets *coupon.Registry

	// gateway authorizes order payments.
	gateway payment.Gateway

	// validate checks write payload constraints.
	validate *validator.Validate
}

func New(store *store.Store, issuer *auth.Issuer, tickets *coupon.Registry, gateway payment.Gateway) *Handler {
	return &Handler{
		store:    store,
		issuer:   issuer,
		tickets:  tickets,
		gateway:  gateway,
		validate: validator.New(),
	}
}

// Register attaches every route to the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.GetHealth)
		r.Get("/version", h.GetVersion)
		r.Get("/openapi.json", h.GetOpenAPI)

		r.Post("/customers", h.JoinCustomer)
		r.Get("/customers/me", h.GetCustomerSelf)

		r.Post("/sellers", h.JoinSeller)
		r.Get("/sellers/me", h.GetSellerSelf)

		r.Post("/sellers/{sellerID}/products", h.CreateProduct)
		r.Put("/sellers/{sellerID}/products/{productID}", h.UpdateProduct)
		r.Delete("/sellers/{sellerID}/products/{productID}", h.DeleteProduct)

		r.Get("/products", h.ListProducts)
		r.Get("/products/{productID}", h.GetProduct)
		r.Get("/products/{productID}/reviews", h.ListReviews)
		r.Post("/products/{productID}/reviews", h.CreateReview)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{orderID}", h.GetOrder)
		r.Delete("/orders/{orderID}", h.CancelOrder)
		r.Put("/orders/{orderID}/items/{itemID}", h.UpdateOrderItemStatus)

		r.Put("/reviews/{reviewID}", h.UpdateReview)
		r.Delete("/reviews/{reviewID}", h.DeleteReview)

		r.Post("/admin/coupons", h.CreateCoupon)
		r.Get("/coupons", h.ListCoupons)
		r.Get("/coupons/{couponID}", h.GetCoupon)
		r.Post("/coupons/{couponID}/tickets", h.IssueCouponTicket)

		r.Post("/attachments", h.CreateAttachment)
		r.Get("/attachments/{attachmentID}", h.GetAttachment)
	})
}

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	util.WriteJSONResponse(w, http.StatusOK, openapi.Health{Status: "up"})
}

func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	util.WriteJSONResponse(w, http.StatusOK, openapi.Version{
		Application: constants.Application,
		Version:     constants.Version,
		Revision:    constants.Revision,
	})
}

func (h *Handler) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapi.Document)
}

// bind decodes and validates a write payload, writing a 400 on failure.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := util.ReadJSONBody(r, out); err != nil {
		util.WriteError(w, http.StatusBadRequest, "bad request", err.Error())
		return false
	}

	if err := h.validate.Struct(out); err != nil {
		var fieldErrors validator.ValidationErrors

		if errors.As(err, &fieldErrors) {
			details := make([]string, 0, len(fieldErrors))

			for _, fieldError := range fieldErrors {
				details = append(details, fmt.Sprintf("%s violates %s", fieldError.Field(), fieldError.Tag()))
			}

			util.WriteError(w, http.StatusBadRequest, "bad request", strings.Join(details, "; "))

			return false
		}

		util.WriteError(w, http.StatusBadRequest, "bad request", err.Error())

		return false
	}

	return true
}

// pathID parses a UUID path parameter. Anything unparsable cannot name an
// entity, so it reads as not found.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", fmt.Sprintf("%s is not a valid identifier", name))
		return uuid.Nil, false
	}

	return id, true
}
