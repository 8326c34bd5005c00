package api

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	oapitypes "github.com/oapi-codegen/runtime/types"

	"github.com/aimall-cloud/commerce/pkg/openapi"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// randomInt returns a value in [min, max].
func randomInt(min, max int) int {
	var value uint32

	_ = binary.Read(rand.Reader, binary.BigEndian, &value)

	return min + int(value%uint32(max-min+1))
}

func randomEmail(prefix string) oapitypes.Email {
	return oapitypes.Email(fmt.Sprintf("%s@example.com", generateRandomName(prefix)))
}

func randomCouponCode() openapi.CouponCode {
	bytes := make([]byte, 6)
	rand.Read(bytes)

	return openapi.CouponCode(fmt.Sprintf("SAVE%X", bytes))
}

// CustomerJoinBuilder builds customer registration payloads with randomized
// defaults so suites never collide on unique fields.
type CustomerJoinBuilder struct {
	payload openapi.CustomerJoin
}

func NewCustomerJoinPayload() *CustomerJoinBuilder {
	return &CustomerJoinBuilder{
		payload: openapi.CustomerJoin{
			Name:     generateRandomName("customer"),
			Email:    randomEmail("customer"),
			Password: generateRandomName("secret"),
			Channel:  "aimall",
		},
	}
}

func (b *CustomerJoinBuilder) WithName(name string) *CustomerJoinBuilder {
	b.payload.Name = name
	return b
}

func (b *CustomerJoinBuilder) WithEmail(email string) *CustomerJoinBuilder {
	b.payload.Email = oapitypes.Email(email)
	return b
}

func (b *CustomerJoinBuilder) WithPassword(password string) *CustomerJoinBuilder {
	b.payload.Password = password
	return b
}

func (b *CustomerJoinBuilder) WithChannel(channel string) *CustomerJoinBuilder {
	b.payload.Channel = openapi.ChannelCode(channel)
	return b
}

func (b *CustomerJoinBuilder) Build() *openapi.CustomerJoin {
	payload := b.payload
	return &payload
}

// SellerJoinBuilder builds seller registration payloads.
type SellerJoinBuilder struct {
	payload openapi.SellerJoin
}

func NewSellerJoinPayload() *SellerJoinBuilder {
	return &SellerJoinBuilder{
		payload: openapi.SellerJoin{
			Name:     generateRandomName("seller"),
			Email:    randomEmail("seller"),
			Password: generateRandomName("secret"),
			Company:  generateRandomName("company"),
		},
	}
}

func (b *SellerJoinBuilder) WithName(name string) *SellerJoinBuilder {
	b.payload.Name = name
	return b
}

func (b *SellerJoinBuilder) WithEmail(email string) *SellerJoinBuilder {
	b.payload.Email = oapitypes.Email(email)
	return b
}

func (b *SellerJoinBuilder) WithPassword(password string) *SellerJoinBuilder {
	b.payload.Password = password
	return b
}

func (b *SellerJoinBuilder) WithCompany(company string) *SellerJoinBuilder {
	b.payload.Company = company
	return b
}

func (b *SellerJoinBuilder) Build() *openapi.SellerJoin {
	payload := b.payload
	return &payload
}

// ProductBuilder builds product listing payloads.
type ProductBuilder struct {
	payload openapi.ProductWrite
}

func NewProductPayload() *ProductBuilder {
	return &ProductBuilder{
		payload: openapi.ProductWrite{
			Name:        generateRandomName("product"),
			Description: "generated by test automation",
			Category:    "electronics",
			Price:       float64(randomInt(500, 50000)) / 100,
			Stock:       randomInt(1, 100),
		},
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.payload.Name = name
	return b
}

func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.payload.Description = description
	return b
}

func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.payload.Category = category
	return b
}

func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.payload.Price = price
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.payload.Stock = stock
	return b
}

func (b *ProductBuilder) Build() *openapi.ProductWrite {
	payload := b.payload
	return &payload
}

// OrderBuilder builds order payloads.
type OrderBuilder struct {
	payload openapi.OrderWrite
}

func NewOrderPayload() *OrderBuilder {
	return &OrderBuilder{}
}

func (b *OrderBuilder) WithItem(productID uuid.UUID, quantity int) *OrderBuilder {
	b.payload.Items = append(b.payload.Items, openapi.OrderItemWrite{
		ProductId: productID,
		Quantity:  quantity,
	})

	return b
}

func (b *OrderBuilder) WithTicketCode(code string) *OrderBuilder {
	b.payload.TicketCode = &code
	return b
}

func (b *OrderBuilder) Build() *openapi.OrderWrite {
	payload := b.payload
	return &payload
}

// CouponBuilder builds coupon payloads. The default is a ten percent
// discount valid for a day either side of now.
type CouponBuilder struct {
	payload openapi.CouponWrite
}

func NewCouponPayload() *CouponBuilder {
	percentOff := 10.0
	validFrom := time.Now().Add(-24 * time.Hour)
	validTo := time.Now().Add(24 * time.Hour)

	return &CouponBuilder{
		payload: openapi.CouponWrite{
			Code:       randomCouponCode(),
			Name:       generateRandomName("coupon"),
			PercentOff: &percentOff,
			ValidFrom:  &validFrom,
			ValidTo:    &validTo,
		},
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.payload.Code = openapi.CouponCode(code)
	return b
}

func (b *CouponBuilder) WithName(name string) *CouponBuilder {
	b.payload.Name = name
	return b
}

func (b *CouponBuilder) WithPercentOff(percent float64) *CouponBuilder {
	b.payload.PercentOff = &percent
	b.payload.AmountOff = nil

	return b
}

func (b *CouponBuilder) WithAmountOff(amount float64) *CouponBuilder {
	b.payload.AmountOff = &amount
	b.payload.PercentOff = nil

	return b
}

func (b *CouponBuilder) WithValidity(from, to time.Time) *CouponBuilder {
	b.payload.ValidFrom = &from
	b.payload.ValidTo = &to

	return b
}

func (b *CouponBuilder) Build() *openapi.CouponWrite {
	payload := b.payload
	return &payload
}

// ReviewBuilder builds review payloads.
type ReviewBuilder struct {
	payload openapi.ReviewWrite
}

func NewReviewPayload() *ReviewBuilder {
	return &ReviewBuilder{
		payload: openapi.ReviewWrite{
			Score: randomInt(1, 5),
			Title: generateRandomName("review"),
			Body:  "generated by test automation",
		},
	}
}

func (b *ReviewBuilder) WithScore(score int) *ReviewBuilder {
	b.payload.Score = score
	return b
}

func (b *ReviewBuilder) WithTitle(title string) *ReviewBuilder {
	b.payload.Title = title
	return b
}

func (b *ReviewBuilder) WithBody(body string) *ReviewBuilder {
	b.payload.Body = body
	return b
}

func (b *ReviewBuilder) Build() *openapi.ReviewWrite {
	payload := b.payload
	return &payload
}

// AttachmentBuilder builds attachment metadata payloads.
type AttachmentBuilder struct {
	payload openapi.AttachmentWrite
}

func NewAttachmentPayload() *AttachmentBuilder {
	return &AttachmentBuilder{
		payload: openapi.AttachmentWrite{
			Filename:    generateRandomName("upload") + ".png",
			ContentType: "image/png",
			Size:        int64(randomInt(1024, 1<<20)),
		},
	}
}

func (b *AttachmentBuilder) WithFilename(filename string) *AttachmentBuilder {
	b.payload.Filename = filename
	return b
}

func (b *AttachmentBuilder) WithContentType(contentType string) *AttachmentBuilder {
	b.payload.ContentType = contentType
	return b
}

func (b *AttachmentBuilder) WithSize(size int64) *AttachmentBuilder {
	b.payload.Size = size
	return b
}

func (b *AttachmentBuilder) Build() *openapi.AttachmentWrite {
	payload := b.payload
	return &payload
}
