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
	"github.com/shopspring/decimal"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/coupon"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

func (h *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.RequireRole(w, r, openapi.ActorRoleAdmin)
	if !ok {
		return
	}

	request := &openapi.CouponWrite{}

	if !h.bind(w, r, request) {
		return
	}

	if request.Code == "" {
		util.WriteError(w, http.StatusBadRequest, "bad request", "coupon code is required")
		return
	}

	if (request.PercentOff == nil) == (request.AmountOff == nil) {
		util.WriteError(w, http.StatusBadRequest, "bad request", "exactly one of percentOff and amountOff must be set")
		return
	}

	record := store.Coupon{
		ID:        uuid.New(),
		Code:      string(request.Code),
		Name:      request.Name,
		ValidFrom: request.ValidFrom,
		ValidTo:   request.ValidTo,
		CreatedAt: time.Now().UTC(),
	}

	if request.PercentOff != nil {
		percent := decimal.NewFromFloat(*request.PercentOff)
		record.PercentOff = &percent
	}

	if request.AmountOff != nil {
		amount := decimal.NewFromFloat(*request.AmountOff)
		record.AmountOff = &amount
	}

	if err := h.store.InsertCoupon(record); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.WriteError(w, http.StatusConflict, "conflict", "coupon code already exists")
			return
		}

		util.WriteError(w, http.StatusInternalServerError, "internal error", err.Error())

		return
	}

	util.WriteJSONResponse(w, http.StatusCreated, convertCoupon(record))
}

func (h *Handler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	util.WriteJSONResponse(w, http.StatusOK, convertCouponList(h.store.Coupons()))
}

func (h *Handler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	couponID, ok := pathID(w, r, "couponID")
	if !ok {
		return
	}

	record, err := h.store.Coupon(couponID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "coupon does not exist")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertCoupon(record))
}

func (h *Handler) IssueCouponTicket(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.RequireRole(w, r, openapi.ActorRoleCustomer)
	if !ok {
		return
	}

	couponID, ok := pathID(w, r, "couponID")
	if !ok {
		return
	}

	record, err := h.store.Coupon(couponID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "coupon does not exist")
		return
	}

	now := time.Now().UTC()

	if !couponActive(record, now) {
		util.WriteError(w, http.StatusUnprocessableEntity, "unprocessable", "coupon is outside its validity window")
		return
	}

	ticket := store.CouponTicket{
		ID:         uuid.New(),
		CouponID:   record.ID,
		CustomerID: actor.ID,
		Code:       coupon.NewTicketCode(),
		IssuedAt:   now,
	}

	// Code collisions are vanishingly rare but cheap to retry.
	for range 3 {
		if err = h.store.InsertTicket(ticket); err == nil {
			break
		}

		ticket.Code = coupon.NewTicketCode()
	}

	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, "internal error", "unable to issue ticket")
		return
	}

	util.WriteJSONResponse(w, http.StatusCreated, convertTicket(ticket))
}
