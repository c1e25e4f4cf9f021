package services

import (
	"errors"
	"time"

	"meghmart/models"

	"gorm.io/gorm"
)

// Discounts manages discount rows and the back-reference each one keeps on
// its single target. A flat discount has no target; every other plan points
// at exactly one catalog entity, and that entity's discounts set mirrors the
// link.
type Discounts struct {
	db *gorm.DB
}

func NewDiscounts(gdb *gorm.DB) *Discounts {
	return &Discounts{db: gdb}
}

type DiscountInput struct {
	Name                string
	Description         string
	Type                string
	Plan                string
	TargetCategoryID    *uint
	TargetSubCategoryID *uint
	TargetBrandID       *uint
	TargetProductID     *uint
	ValidFrom           time.Time
	ValidTo             time.Time
	ValueByAmount       float64
	ValueByPercentage   float64
}

type DiscountUpdate struct {
	Name                *string
	Description         *string
	Type                *string
	Plan                *string
	TargetCategoryID    *uint
	TargetSubCategoryID *uint
	TargetBrandID       *uint
	TargetProductID     *uint
	ValidFrom           *time.Time
	ValidTo             *time.Time
	ValueByAmount       *float64
	ValueByPercentage   *float64
	IsActive            *bool
}

// targetFor picks the target id matching a plan out of the four columns, and
// rejects plans whose target is missing.
func targetFor(plan string, cat, sub, brand, product *uint) (*uint, error) {
	var target *uint
	switch plan {
	case models.DiscountPlanFlat:
		return nil, nil
	case models.DiscountPlanCategory:
		target = cat
	case models.DiscountPlanSubCategory:
		target = sub
	case models.DiscountPlanBrand:
		target = brand
	case models.DiscountPlanProduct:
		target = product
	default:
		return nil, errf(KindInvalid, "unknown discount plan %q", plan)
	}
	if target == nil {
		return nil, errf(KindInvalid, "discount plan %q requires a target", plan)
	}
	return target, nil
}

func (s *Discounts) checkTarget(plan string, targetID uint) error {
	var err error
	switch plan {
	case models.DiscountPlanCategory:
		_, err = findCategory(s.db, targetID)
	case models.DiscountPlanSubCategory:
		_, err = findSubCategory(s.db, targetID)
	case models.DiscountPlanBrand:
		_, err = findBrand(s.db, targetID)
	case models.DiscountPlanProduct:
		_, err = findProduct(s.db, targetID)
	}
	return err
}

func (s *Discounts) attach(plan string, targetID, discountID uint) error {
	switch plan {
	case models.DiscountPlanCategory:
		cat, err := findCategory(s.db, targetID)
		if err != nil {
			return err
		}
		return writeSet(s.db, &models.Category{}, targetID, "discounts", cat.Discounts.Add(discountID))
	case models.DiscountPlanSubCategory:
		sub, err := findSubCategory(s.db, targetID)
		if err != nil {
			return err
		}
		return writeSet(s.db, &models.SubCategory{}, targetID, "discounts", sub.Discounts.Add(discountID))
	case models.DiscountPlanBrand:
		brand, err := findBrand(s.db, targetID)
		if err != nil {
			return err
		}
		return writeSet(s.db, &models.Brand{}, targetID, "discounts", brand.Discounts.Add(discountID))
	case models.DiscountPlanProduct:
		product, err := findProduct(s.db, targetID)
		if err != nil {
			return err
		}
		return writeSet(s.db, &models.Product{}, targetID, "discounts", product.Discounts.Add(discountID))
	}
	return nil
}

// detach tolerates an already-deleted target; there is nothing to pull from.
func (s *Discounts) detach(plan string, targetID, discountID uint) error {
	switch plan {
	case models.DiscountPlanCategory:
		cat, err := findCategory(s.db, targetID)
		if err != nil {
			return nil
		}
		return writeSet(s.db, &models.Category{}, targetID, "discounts", cat.Discounts.Remove(discountID))
	case models.DiscountPlanSubCategory:
		sub, err := findSubCategory(s.db, targetID)
		if err != nil {
			return nil
		}
		return writeSet(s.db, &models.SubCategory{}, targetID, "discounts", sub.Discounts.Remove(discountID))
	case models.DiscountPlanBrand:
		brand, err := findBrand(s.db, targetID)
		if err != nil {
			return nil
		}
		return writeSet(s.db, &models.Brand{}, targetID, "discounts", brand.Discounts.Remove(discountID))
	case models.DiscountPlanProduct:
		product, err := findProduct(s.db, targetID)
		if err != nil {
			return nil
		}
		return writeSet(s.db, &models.Product{}, targetID, "discounts", product.Discounts.Remove(discountID))
	}
	return nil
}

func (s *Discounts) Create(in DiscountInput) (*models.Discount, error) {
	if !in.ValidTo.After(in.ValidFrom) {
		return nil, errf(KindInvalid, "valid-to must be after valid-from")
	}
	target, err := targetFor(in.Plan, in.TargetCategoryID, in.TargetSubCategoryID, in.TargetBrandID, in.TargetProductID)
	if err != nil {
		return nil, err
	}
	if target != nil {
		if err := s.checkTarget(in.Plan, *target); err != nil {
			return nil, err
		}
	}

	taken, err := nameTaken(s.db, &models.Discount{}, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errf(KindDuplicate, "discount with this name already exists")
	}

	slug, err := assignSlug(s.db, "discounts", in.Name, 0)
	if err != nil {
		return nil, err
	}

	discount := &models.Discount{
		Name:              in.Name,
		Slug:              slug,
		Description:       in.Description,
		Type:              in.Type,
		Plan:              in.Plan,
		ValidFrom:         in.ValidFrom,
		ValidTo:           in.ValidTo,
		ValueByAmount:     in.ValueByAmount,
		ValueByPercentage: in.ValueByPercentage,
		IsActive:          true,
	}
	switch in.Plan {
	case models.DiscountPlanCategory:
		discount.TargetCategoryID = target
	case models.DiscountPlanSubCategory:
		discount.TargetSubCategoryID = target
	case models.DiscountPlanBrand:
		discount.TargetBrandID = target
	case models.DiscountPlanProduct:
		discount.TargetProductID = target
	}

	if err := s.db.Create(discount).Error; err != nil {
		return nil, err
	}
	if target != nil {
		if err := s.attach(in.Plan, *target, discount.ID); err != nil {
			return nil, err
		}
	}
	return discount, nil
}

func (s *Discounts) GetBySlug(slug string) (*models.Discount, error) {
	var discount models.Discount
	if err := s.db.Where("slug = ?", slug).First(&discount).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "discount not found")
		}
		return nil, err
	}
	return &discount, nil
}

func (s *Discounts) List() ([]models.Discount, error) {
	var discounts []models.Discount
	if err := s.db.Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

func (s *Discounts) Update(slug string, in DiscountUpdate) (*models.Discount, error) {
	discount, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != discount.Name {
		taken, err := nameTaken(s.db, &models.Discount{}, *in.Name, discount.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errf(KindDuplicate, "another discount with this name already exists")
		}
		newSlug, err := assignSlug(s.db, "discounts", *in.Name, discount.ID)
		if err != nil {
			return nil, err
		}
		discount.Name = *in.Name
		discount.Slug = newSlug
	}

	oldPlan := discount.Plan
	oldTarget := discount.Target()

	newPlan := oldPlan
	if in.Plan != nil {
		newPlan = *in.Plan
	}
	targetCat := discount.TargetCategoryID
	if in.TargetCategoryID != nil {
		targetCat = in.TargetCategoryID
	}
	targetSub := discount.TargetSubCategoryID
	if in.TargetSubCategoryID != nil {
		targetSub = in.TargetSubCategoryID
	}
	targetBrand := discount.TargetBrandID
	if in.TargetBrandID != nil {
		targetBrand = in.TargetBrandID
	}
	targetProduct := discount.TargetProductID
	if in.TargetProductID != nil {
		targetProduct = in.TargetProductID
	}

	newTarget, err := targetFor(newPlan, targetCat, targetSub, targetBrand, targetProduct)
	if err != nil {
		return nil, err
	}

	planChanged := newPlan != oldPlan
	targetChanged := (oldTarget == nil) != (newTarget == nil) ||
		(oldTarget != nil && newTarget != nil && *oldTarget != *newTarget)

	if planChanged || targetChanged {
		if newTarget != nil {
			if err := s.checkTarget(newPlan, *newTarget); err != nil {
				return nil, err
			}
		}
		if oldTarget != nil {
			if err := s.detach(oldPlan, *oldTarget, discount.ID); err != nil {
				return nil, err
			}
		}
		if newTarget != nil {
			if err := s.attach(newPlan, *newTarget, discount.ID); err != nil {
				return nil, err
			}
		}

		discount.Plan = newPlan
		discount.TargetCategoryID = nil
		discount.TargetSubCategoryID = nil
		discount.TargetBrandID = nil
		discount.TargetProductID = nil
		switch newPlan {
		case models.DiscountPlanCategory:
			discount.TargetCategoryID = newTarget
		case models.DiscountPlanSubCategory:
			discount.TargetSubCategoryID = newTarget
		case models.DiscountPlanBrand:
			discount.TargetBrandID = newTarget
		case models.DiscountPlanProduct:
			discount.TargetProductID = newTarget
		}
	}

	if in.Description != nil {
		discount.Description = *in.Description
	}
	if in.Type != nil {
		discount.Type = *in.Type
	}
	if in.ValidFrom != nil {
		discount.ValidFrom = *in.ValidFrom
	}
	if in.ValidTo != nil {
		discount.ValidTo = *in.ValidTo
	}
	if !discount.ValidTo.After(discount.ValidFrom) {
		return nil, errf(KindInvalid, "valid-to must be after valid-from")
	}
	if in.ValueByAmount != nil {
		discount.ValueByAmount = *in.ValueByAmount
	}
	if in.ValueByPercentage != nil {
		discount.ValueByPercentage = *in.ValueByPercentage
	}
	if in.IsActive != nil {
		discount.IsActive = *in.IsActive
	}

	if err := s.db.Save(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

func (s *Discounts) Delete(slug string) error {
	discount, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	if target := discount.Target(); target != nil {
		if err := s.detach(discount.Plan, *target, discount.ID); err != nil {
			return err
		}
	}
	return s.db.Delete(discount).Error
}
