package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meghmart/models"
)

func TestReviewOnePerUserAndProduct(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "rev@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	review, err := f.reviews.Create(ReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusPending, review.Status)

	_, err = f.reviews.Create(ReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 5})
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
}

func TestApprovedOnlyRatingAggregate(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "alice@example.com")
	bob := f.seedUser(t, "bob@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	r1, err := f.reviews.Create(ReviewInput{UserID: alice.ID, ProductID: product.ID, Rating: 4})
	require.NoError(t, err)
	r2, err := f.reviews.Create(ReviewInput{UserID: bob.ID, ProductID: product.ID, Rating: 5})
	require.NoError(t, err)

	// pending reviews don't count
	reloaded, err := f.catalog.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reloaded.AverageRating)
	assert.Equal(t, 0, reloaded.TotalReviews)

	_, err = f.reviews.SetStatus(r1.ID, models.ReviewStatusApproved, "", "")
	require.NoError(t, err)
	_, err = f.reviews.SetStatus(r2.ID, models.ReviewStatusApproved, "", "")
	require.NoError(t, err)

	reloaded, err = f.catalog.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, reloaded.AverageRating)
	assert.Equal(t, 2, reloaded.TotalReviews)

	rejected, err := f.reviews.SetStatus(r2.ID, models.ReviewStatusRejected, "spam", "")
	require.NoError(t, err)
	assert.Equal(t, "spam", rejected.RejectionReason)

	reloaded, err = f.catalog.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, reloaded.AverageRating)
	assert.Equal(t, 1, reloaded.TotalReviews)
}

func TestDeleteApprovedReviewRefreshesAggregate(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "rev@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	review, err := f.reviews.Create(ReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 3})
	require.NoError(t, err)
	_, err = f.reviews.SetStatus(review.ID, models.ReviewStatusApproved, "", "")
	require.NoError(t, err)

	require.NoError(t, f.reviews.Delete(review.ID, user.ID, false))

	reloaded, err := f.catalog.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reloaded.AverageRating)
	assert.Equal(t, 0, reloaded.TotalReviews)
}

func TestReviewUpdateOwnershipAndLock(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner@example.com")
	other := f.seedUser(t, "other@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	review, err := f.reviews.Create(ReviewInput{UserID: owner.ID, ProductID: product.ID, Rating: 3})
	require.NoError(t, err)

	_, err = f.reviews.Update(review.ID, other.ID, ReviewUpdate{Rating: intPtr(1)})
	require.Error(t, err)
	assert.Equal(t, KindPermissionDenied, KindOf(err))

	updated, err := f.reviews.Update(review.ID, owner.ID, ReviewUpdate{Rating: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)

	_, err = f.reviews.SetStatus(review.ID, models.ReviewStatusApproved, "", "")
	require.NoError(t, err)

	_, err = f.reviews.Update(review.ID, owner.ID, ReviewUpdate{Rating: intPtr(5)})
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestReviewDeletePermissions(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner@example.com")
	other := f.seedUser(t, "other@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	review, err := f.reviews.Create(ReviewInput{UserID: owner.ID, ProductID: product.ID, Rating: 3})
	require.NoError(t, err)

	err = f.reviews.Delete(review.ID, other.ID, false)
	require.Error(t, err)
	assert.Equal(t, KindPermissionDenied, KindOf(err))

	// admin may delete anyone's review
	require.NoError(t, f.reviews.Delete(review.ID, other.ID, true))
}

func TestReviewImageCap(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "rev@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	images := make([]string, 6)
	for i := range images {
		images[i] = "/uploads/img.png"
	}

	_, err := f.reviews.Create(ReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 4, Images: images})
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))

	review, err := f.reviews.Create(ReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 4, Images: images[:5]})
	require.NoError(t, err)
	assert.Len(t, review.Images, 5)

	_, err = f.reviews.Update(review.ID, user.ID, ReviewUpdate{Images: &images})
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestMarkHelpful(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner@example.com")
	voter := f.seedUser(t, "voter@example.com")
	cat, sub, brand := f.seedHierarchy(t)
	product := f.seedProduct(t, cat, sub, brand, "Phone X", "PX-1", 499, 5)

	review, err := f.reviews.Create(ReviewInput{UserID: owner.ID, ProductID: product.ID, Rating: 5})
	require.NoError(t, err)

	// pending reviews can't collect votes
	_, err = f.reviews.MarkHelpful(review.ID, voter.ID)
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))

	_, err = f.reviews.SetStatus(review.ID, models.ReviewStatusApproved, "", "")
	require.NoError(t, err)

	marked, err := f.reviews.MarkHelpful(review.ID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, marked.Helpful)

	_, err = f.reviews.MarkHelpful(review.ID, voter.ID)
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))

	unmarked, err := f.reviews.UnmarkHelpful(review.ID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unmarked.Helpful)

	_, err = f.reviews.UnmarkHelpful(review.ID, voter.ID)
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}
