package services

import (
	"encoding/json"
	"errors"

	"meghmart/models"

	"gorm.io/gorm"
)

// Lookup helpers shared by the services. A missing row always surfaces as a
// KindNotFound error naming the entity.

func findCategory(gdb *gorm.DB, id uint) (*models.Category, error) {
	var cat models.Category
	if err := gdb.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "category not found")
		}
		return nil, err
	}
	return &cat, nil
}

func findSubCategory(gdb *gorm.DB, id uint) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := gdb.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "sub-category not found")
		}
		return nil, err
	}
	return &sub, nil
}

func findBrand(gdb *gorm.DB, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := gdb.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "brand not found")
		}
		return nil, err
	}
	return &brand, nil
}

func findProduct(gdb *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := gdb.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}

func findUser(gdb *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := gdb.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// writeSet persists a single id-set column. Updating just the column keeps
// the write narrow; the set values themselves are idempotent to re-apply.
// The set is marshalled here because a column-name Update bypasses the
// field's json serializer.
func writeSet(gdb *gorm.DB, model interface{}, id uint, column string, set models.IDSet) error {
	if set == nil {
		set = models.IDSet{}
	}
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return gdb.Model(model).Where("id = ?", id).Update(column, string(data)).Error
}
