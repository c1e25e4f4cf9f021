package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meghmart/models"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestEvaluateCoupon(t *testing.T) {
	now := time.Now()
	future := now.AddDate(0, 0, 7)

	tests := []struct {
		name     string
		coupon   models.Coupon
		total    float64
		cartIDs  []uint
		want     float64
		wantKind Kind
	}{
		{
			name:   "fixed discount",
			coupon: models.Coupon{IsActive: true, ExpireAt: future, DiscountType: models.CouponTypeFixed, DiscountValue: 100},
			total:  250,
			want:   100,
		},
		{
			name:   "fixed discount capped at cart total",
			coupon: models.Coupon{IsActive: true, ExpireAt: future, DiscountType: models.CouponTypeFixed, DiscountValue: 100},
			total:  60,
			want:   60,
		},
		{
			name:   "percentage discount",
			coupon: models.Coupon{IsActive: true, ExpireAt: future, DiscountType: models.CouponTypePercentage, DiscountValue: 10},
			total:  250,
			want:   25,
		},
		{
			name: "percentage discount capped by max amount",
			coupon: models.Coupon{
				IsActive: true, ExpireAt: future,
				DiscountType: models.CouponTypePercentage, DiscountValue: 50,
				MaxDiscountAmount: floatPtr(40),
			},
			total: 250,
			want:  40,
		},
		{
			name:     "inactive",
			coupon:   models.Coupon{IsActive: false, ExpireAt: future, DiscountType: models.CouponTypeFixed, DiscountValue: 10},
			total:    250,
			wantKind: KindCouponInvalid,
		},
		{
			name:     "expired",
			coupon:   models.Coupon{IsActive: true, ExpireAt: now.AddDate(0, 0, -1), DiscountType: models.CouponTypeFixed, DiscountValue: 10},
			total:    250,
			wantKind: KindCouponInvalid,
		},
		{
			name: "usage limit reached",
			coupon: models.Coupon{
				IsActive: true, ExpireAt: future,
				DiscountType: models.CouponTypeFixed, DiscountValue: 10,
				UsageLimit: intPtr(3), UsedCount: 3,
			},
			total:    250,
			wantKind: KindCouponInvalid,
		},
		{
			name: "below minimum purchase",
			coupon: models.Coupon{
				IsActive: true, ExpireAt: future,
				DiscountType: models.CouponTypeFixed, DiscountValue: 10,
				MinPurchaseAmount: 500,
			},
			total:    250,
			wantKind: KindCouponInvalid,
		},
		{
			name: "not applicable to cart items",
			coupon: models.Coupon{
				IsActive: true, ExpireAt: future,
				DiscountType: models.CouponTypeFixed, DiscountValue: 10,
				ApplicableTo: models.CouponApplicableProducts, ApplicableProducts: models.IDSet{7, 8},
			},
			total:    250,
			cartIDs:  []uint{1, 2},
			wantKind: KindCouponInvalid,
		},
		{
			name: "applicable when one product matches",
			coupon: models.Coupon{
				IsActive: true, ExpireAt: future,
				DiscountType: models.CouponTypeFixed, DiscountValue: 10,
				ApplicableTo: models.CouponApplicableProducts, ApplicableProducts: models.IDSet{7, 8},
			},
			total:   250,
			cartIDs: []uint{2, 7},
			want:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateCoupon(&tt.coupon, tt.total, tt.cartIDs, now)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateCouponNormalizesCode(t *testing.T) {
	f := newFixture(t)

	coupon, err := f.coupons.Create(CouponInput{
		Code:          "  save10 ",
		DiscountType:  models.CouponTypePercentage,
		DiscountValue: 10,
		ExpireAt:      timeNowPlusDays(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.Equal(t, "save10", coupon.Slug)
	assert.True(t, coupon.IsActive)
	assert.Equal(t, models.CouponApplicableAll, coupon.ApplicableTo)

	found, err := f.coupons.GetByCode("save10")
	require.NoError(t, err)
	assert.Equal(t, coupon.ID, found.ID)
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.coupons.Create(CouponInput{
		Code: "SAVE10", DiscountType: models.CouponTypeFixed, DiscountValue: 10, ExpireAt: timeNowPlusDays(7),
	})
	require.NoError(t, err)

	_, err = f.coupons.Create(CouponInput{
		Code: "save10", DiscountType: models.CouponTypeFixed, DiscountValue: 10, ExpireAt: timeNowPlusDays(7),
	})
	require.Error(t, err)
	assert.Equal(t, KindDuplicate, KindOf(err))
}

func TestCreateCouponPercentageOverHundred(t *testing.T) {
	f := newFixture(t)

	_, err := f.coupons.Create(CouponInput{
		Code: "BIG", DiscountType: models.CouponTypePercentage, DiscountValue: 120, ExpireAt: timeNowPlusDays(7),
	})
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}
