package openapi

import (
	"errors"
	"regexp"
)

var ErrInvalidChannelCode = errors.New("invalid channel code: must consist of lower case alphanumeric characters or '-', and must start and end with an alphanumeric character")

var ErrInvalidCouponCode = errors.New("invalid coupon code: must be 8 to 16 upper case alphanumeric characters")

var channelCodeValidationRegex = regexp.MustCompile("^[a-z0-9]([-a-z0-9]{0,30}[a-z0-9])?$")

var couponCodeValidationRegex = regexp.MustCompile("^[A-Z0-9]{8,16}$")

// ChannelCode identifies the sales channel an account was registered through.
type ChannelCode string

func (c *ChannelCode) UnmarshalText(text []byte) error {
	if !channelCodeValidationRegex.Match(text) {
		return ErrInvalidChannelCode
	}

	*c = ChannelCode(text)

	return nil
}

// CouponCode is the publicly visible unique code of a coupon.
type CouponCode string

func (c *CouponCode) UnmarshalText(text []byte) error {
	if !couponCodeValidationRegex.Match(text) {
		return ErrInvalidCouponCode
	}

	*c = CouponCode(text)

	return nil
}
