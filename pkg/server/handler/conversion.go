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
	oapitypes "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/store"
)

func convertCustomer(in store.Customer) openapi.CustomerRead {
	return openapi.CustomerRead{
		Id:       in.ID,
		Name:     in.Name,
		Email:    oapitypes.Email(in.Email),
		Channel:  openapi.ChannelCode(in.Channel),
		JoinedAt: in.JoinedAt,
	}
}

func convertSeller(in store.Seller) openapi.SellerRead {
	return openapi.SellerRead{
		Id:       in.ID,
		Name:     in.Name,
		Email:    oapitypes.Email(in.Email),
		Company:  in.Company,
		JoinedAt: in.JoinedAt,
	}
}

func convertProduct(in store.Product) openapi.ProductRead {
	return openapi.ProductRead{
		Id:          in.ID,
		SellerId:    in.SellerID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price.InexactFloat64(),
		Stock:       in.Stock,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func convertProductList(in []store.Product) []openapi.ProductRead {
	out := make([]openapi.ProductRead, len(in))

	for i := range in {
		out[i] = convertProduct(in[i])
	}

	return out
}

func convertOrderItem(in store.OrderItem) openapi.OrderItemRead {
	return openapi.OrderItemRead{
		Id:        in.ID,
		ProductId: in.ProductID,
		SellerId:  in.SellerID,
		Name:      in.Name,
		UnitPrice: in.UnitPrice.InexactFloat64(),
		Quantity:  in.Quantity,
		Status:    openapi.OrderItemStatus(in.Status),
	}
}

func convertOrder(in store.Order) openapi.OrderRead {
	items := make([]openapi.OrderItemRead, len(in.Items))

	for i := range in.Items {
		items[i] = convertOrderItem(in.Items[i])
	}

	return openapi.OrderRead{
		Id:         in.ID,
		CustomerId: in.CustomerID,
		Items:      items,
		Subtotal:   in.Subtotal.InexactFloat64(),
		Discount:   in.Discount.InexactFloat64(),
		Total:      in.Total.InexactFloat64(),
		TicketCode: in.TicketCode,
		PlacedAt:   in.PlacedAt,
	}
}

func convertOrderList(in []store.Order) []openapi.OrderRead {
	out := make([]openapi.OrderRead, len(in))

	for i := range in {
		out[i] = convertOrder(in[i])
	}

	return out
}

func convertDecimalPtr(in *decimal.Decimal) *float64 {
	if in == nil {
		return nil
	}

	out := in.InexactFloat64()

	return &out
}

func convertCoupon(in store.Coupon) openapi.CouponRead {
	return openapi.CouponRead{
		Id:         in.ID,
		Code:       openapi.CouponCode(in.Code),
		Name:       in.Name,
		PercentOff: convertDecimalPtr(in.PercentOff),
		AmountOff:  convertDecimalPtr(in.AmountOff),
		ValidFrom:  in.ValidFrom,
		ValidTo:    in.ValidTo,
		CreatedAt:  in.CreatedAt,
	}
}

func convertCouponList(in []store.Coupon) []openapi.CouponRead {
	out := make([]openapi.CouponRead, len(in))

	for i := range in {
		out[i] = convertCoupon(in[i])
	}

	return out
}

func convertTicket(in store.CouponTicket) openapi.CouponTicketRead {
	return openapi.CouponTicketRead{
		Id:         in.ID,
		CouponId:   in.CouponID,
		CustomerId: in.CustomerID,
		Code:       in.Code,
		IssuedAt:   in.IssuedAt,
	}
}

func convertReview(in store.Review) openapi.ReviewRead {
	return openapi.ReviewRead{
		Id:         in.ID,
		ProductId:  in.ProductID,
		CustomerId: in.CustomerID,
		Score:      in.Score,
		Title:      in.Title,
		Body:       in.Body,
		CreatedAt:  in.CreatedAt,
		UpdatedAt:  in.UpdatedAt,
	}
}

func convertReviewList(in []store.Review) []openapi.ReviewRead {
	out := make([]openapi.ReviewRead, len(in))

	for i := range in {
		out[i] = convertReview(in[i])
	}

	return out
}

func convertAttachment(in store.Attachment) openapi.AttachmentRead {
	return openapi.AttachmentRead{
		Id:          in.ID,
		OwnerId:     in.OwnerID,
		Filename:    in.Filename,
		ContentType: in.ContentType,
		Size:        in.Size,
		UploadedAt:  in.UploadedAt,
	}
}
