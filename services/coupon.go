package services

import (
	"errors"
	"strings"
	"time"

	"meghmart/models"

	"gorm.io/gorm"
)

type Coupons struct {
	db *gorm.DB
}

func NewCoupons(gdb *gorm.DB) *Coupons {
	return &Coupons{db: gdb}
}

// EvaluateCoupon validates a coupon against a cart total and the product ids
// in the cart, and returns the raw discount. Checks run in a fixed order:
// active, expiry, usage cap, minimum purchase, product applicability.
func EvaluateCoupon(coupon *models.Coupon, cartTotal float64, cartProductIDs []uint, now time.Time) (float64, error) {
	if !coupon.IsActive {
		return 0, errf(KindCouponInvalid, "this coupon is not active")
	}
	if coupon.IsExpired(now) {
		return 0, errf(KindCouponInvalid, "this coupon has expired")
	}
	if coupon.IsUsageLimitReached() {
		return 0, errf(KindCouponInvalid, "this coupon has reached its usage limit")
	}
	if cartTotal < coupon.MinPurchaseAmount {
		return 0, errf(KindCouponInvalid, "minimum purchase amount of %.2f is required to use this coupon", coupon.MinPurchaseAmount)
	}
	if coupon.ApplicableTo == models.CouponApplicableProducts && len(coupon.ApplicableProducts) > 0 {
		applicable := false
		for _, id := range cartProductIDs {
			if coupon.ApplicableProducts.Contains(id) {
				applicable = true
				break
			}
		}
		if !applicable {
			return 0, errf(KindCouponInvalid, "this coupon is not applicable to items in your cart")
		}
	}
	return coupon.CalculateDiscount(cartTotal), nil
}

type CouponInput struct {
	Code               string
	Description        string
	DiscountType       string
	DiscountValue      float64
	MinPurchaseAmount  float64
	MaxDiscountAmount  *float64
	ExpireAt           time.Time
	UsageLimit         *int
	ApplicableTo       string
	ApplicableProducts []uint
}

type CouponUpdate struct {
	Code               *string
	Description        *string
	DiscountType       *string
	DiscountValue      *float64
	MinPurchaseAmount  *float64
	MaxDiscountAmount  *float64
	ExpireAt           *time.Time
	UsageLimit         *int
	IsActive           *bool
	ApplicableTo       *string
	ApplicableProducts *[]uint
}

func normalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateCouponValue(discountType string, value float64) error {
	if discountType == models.CouponTypePercentage && value > 100 {
		return errf(KindInvalid, "percentage discount cannot exceed 100%%")
	}
	return nil
}

func (s *Coupons) Create(in CouponInput) (*models.Coupon, error) {
	code := normalizeCouponCode(in.Code)
	if code == "" {
		return nil, errf(KindInvalid, "coupon code is required")
	}
	if err := validateCouponValue(in.DiscountType, in.DiscountValue); err != nil {
		return nil, err
	}

	var n int64
	if err := s.db.Model(&models.Coupon{}).Where("code = ?", code).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, errf(KindDuplicate, "coupon code already exists")
	}

	slug, err := assignSlug(s.db, "coupons", code, 0)
	if err != nil {
		return nil, err
	}
	applicableTo := in.ApplicableTo
	if applicableTo == "" {
		applicableTo = models.CouponApplicableAll
	}
	coupon := &models.Coupon{
		Code:               code,
		Slug:               slug,
		Description:        in.Description,
		DiscountType:       in.DiscountType,
		DiscountValue:      in.DiscountValue,
		MinPurchaseAmount:  in.MinPurchaseAmount,
		MaxDiscountAmount:  in.MaxDiscountAmount,
		ExpireAt:           in.ExpireAt,
		UsageLimit:         in.UsageLimit,
		IsActive:           true,
		ApplicableTo:       applicableTo,
		ApplicableProducts: models.IDSet(in.ApplicableProducts),
	}
	if err := s.db.Create(coupon).Error; err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *Coupons) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := s.db.Where("code = ?", normalizeCouponCode(code)).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "invalid coupon code")
		}
		return nil, err
	}
	return &coupon, nil
}

func (s *Coupons) GetBySlug(slug string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := s.db.Where("slug = ?", slug).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "coupon not found")
		}
		return nil, err
	}
	return &coupon, nil
}

func (s *Coupons) List() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := s.db.Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (s *Coupons) Update(slug string, in CouponUpdate) (*models.Coupon, error) {
	coupon, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Code != nil {
		code := normalizeCouponCode(*in.Code)
		if code != coupon.Code {
			var n int64
			if err := s.db.Model(&models.Coupon{}).
				Where("code = ? AND id <> ?", code, coupon.ID).Count(&n).Error; err != nil {
				return nil, err
			}
			if n > 0 {
				return nil, errf(KindDuplicate, "coupon code already exists")
			}
			newSlug, err := assignSlug(s.db, "coupons", code, coupon.ID)
			if err != nil {
				return nil, err
			}
			coupon.Code = code
			coupon.Slug = newSlug
		}
	}
	if in.Description != nil {
		coupon.Description = *in.Description
	}
	if in.DiscountType != nil {
		coupon.DiscountType = *in.DiscountType
	}
	if in.DiscountValue != nil {
		coupon.DiscountValue = *in.DiscountValue
	}
	if err := validateCouponValue(coupon.DiscountType, coupon.DiscountValue); err != nil {
		return nil, err
	}
	if in.MinPurchaseAmount != nil {
		coupon.MinPurchaseAmount = *in.MinPurchaseAmount
	}
	if in.MaxDiscountAmount != nil {
		coupon.MaxDiscountAmount = in.MaxDiscountAmount
	}
	if in.ExpireAt != nil {
		coupon.ExpireAt = *in.ExpireAt
	}
	if in.UsageLimit != nil {
		coupon.UsageLimit = in.UsageLimit
	}
	if in.IsActive != nil {
		coupon.IsActive = *in.IsActive
	}
	if in.ApplicableTo != nil {
		coupon.ApplicableTo = *in.ApplicableTo
	}
	if in.ApplicableProducts != nil {
		coupon.ApplicableProducts = models.IDSet(*in.ApplicableProducts)
	}

	if err := s.db.Save(coupon).Error; err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *Coupons) Delete(slug string) error {
	coupon, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	return s.db.Delete(coupon).Error
}
