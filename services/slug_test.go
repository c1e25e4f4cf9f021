package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meghmart/models"
)

func TestSlugBase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Running Shoes", "running-shoes"},
		{"UPPER", "upper"},
		{"  Fancy--Name!! ", "fancy-name"},
		{"a  b", "a-b"},
		{"trailing!", "trailing"},
		{"100% Cotton", "100-cotton"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugBase(tt.name), "slugBase(%q)", tt.name)
	}
}

func TestAssignSlugSequence(t *testing.T) {
	gdb := newTestDB(t)

	slug, err := assignSlug(gdb, "categories", "Shoes", 0)
	require.NoError(t, err)
	assert.Equal(t, "shoes", slug)
	require.NoError(t, gdb.Create(&models.Category{Name: "Shoes", Slug: slug}).Error)

	// one match exists, so the numeric suffix starts past it
	slug, err = assignSlug(gdb, "categories", "Shoes", 0)
	require.NoError(t, err)
	assert.Equal(t, "shoes-2", slug)
	require.NoError(t, gdb.Create(&models.Category{Name: "Shoes Two", Slug: slug}).Error)

	slug, err = assignSlug(gdb, "categories", "Shoes", 0)
	require.NoError(t, err)
	assert.Equal(t, "shoes-3", slug)
}

func TestAssignSlugKeepsOwnSlugOnRename(t *testing.T) {
	gdb := newTestDB(t)

	cat := &models.Category{Name: "Shoes", Slug: "shoes"}
	require.NoError(t, gdb.Create(cat).Error)

	slug, err := assignSlug(gdb, "categories", "Shoes", cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "shoes", slug)
}

func TestAssignSlugIgnoresUnrelatedPrefixes(t *testing.T) {
	gdb := newTestDB(t)

	// "shoes-sale" shares the prefix but is not in the numeric family
	require.NoError(t, gdb.Create(&models.Category{Name: "Shoes Sale", Slug: "shoes-sale"}).Error)

	slug, err := assignSlug(gdb, "categories", "Shoes", 0)
	require.NoError(t, err)
	assert.Equal(t, "shoes", slug)
}

func TestAssignSlugRejectsEmptyBase(t *testing.T) {
	gdb := newTestDB(t)

	_, err := assignSlug(gdb, "categories", "!!!", 0)
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}
