package services

import (
	"errors"
	"log"
	"math"

	"meghmart/models"
	"meghmart/storage"

	"gorm.io/gorm"
)

// Reviews enforces one review per (user, product), keeps the helpful counter
// equal to the helpful-by set size, and snapshots the approved-only rating
// aggregate onto the product whenever a review enters or leaves the approved
// state.
type Reviews struct {
	db    *gorm.DB
	blobs storage.Store
}

func NewReviews(gdb *gorm.DB, blobs storage.Store) *Reviews {
	return &Reviews{db: gdb, blobs: blobs}
}

type ReviewInput struct {
	UserID    uint
	ProductID uint
	Rating    int
	Comment   string
	Images    []string
}

type ReviewUpdate struct {
	Rating  *int
	Comment *string
	Images  *[]string
}

func (s *Reviews) findReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "review not found")
		}
		return nil, err
	}
	return &review, nil
}

const maxReviewImages = 5

func (s *Reviews) Create(in ReviewInput) (*models.Review, error) {
	if len(in.Images) > maxReviewImages {
		return nil, errf(KindInvalid, "a review can hold at most %d images", maxReviewImages)
	}
	if _, err := findUser(s.db, in.UserID); err != nil {
		return nil, err
	}
	if _, err := findProduct(s.db, in.ProductID); err != nil {
		return nil, err
	}

	var n int64
	if err := s.db.Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", in.UserID, in.ProductID).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, errf(KindAlreadyExists, "you have already reviewed this product")
	}

	review := &models.Review{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Images:    in.Images,
		Status:    models.ReviewStatusPending,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Reviews) Get(id uint) (*models.Review, error) {
	return s.findReview(id)
}

func (s *Reviews) ListByProduct(productID uint, status string) ([]models.Review, error) {
	query := s.db.Where("product_id = ?", productID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Reviews) ListByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update lets the owner edit a not-yet-approved review.
func (s *Reviews) Update(reviewID, userID uint, in ReviewUpdate) (*models.Review, error) {
	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, errf(KindPermissionDenied, "you can only update your own reviews")
	}
	if review.IsApproved() {
		return nil, errf(KindInvalid, "approved reviews cannot be edited")
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, errf(KindInvalid, "rating must be between 1 and 5")
		}
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if in.Images != nil {
		if len(*in.Images) > maxReviewImages {
			return nil, errf(KindInvalid, "a review can hold at most %d images", maxReviewImages)
		}
		if len(review.Images) > 0 {
			s.deleteBlobs(review.Images...)
		}
		review.Images = *in.Images
	}

	if err := s.db.Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review (owner or admin) and refreshes the product
// aggregate when an approved review goes away.
func (s *Reviews) Delete(reviewID, userID uint, isAdmin bool) error {
	review, err := s.findReview(reviewID)
	if err != nil {
		return err
	}
	if !isAdmin && review.UserID != userID {
		return errf(KindPermissionDenied, "you can only delete your own reviews")
	}

	if len(review.Images) > 0 {
		s.deleteBlobs(review.Images...)
	}
	wasApproved := review.IsApproved()
	if err := s.db.Delete(review).Error; err != nil {
		return err
	}
	if wasApproved {
		return s.refreshProductRating(review.ProductID)
	}
	return nil
}

// SetStatus transitions a review between pending/approved/rejected and
// recomputes the product aggregate for any transition touching approved.
func (s *Reviews) SetStatus(reviewID uint, status, rejectionReason, adminResponse string) (*models.Review, error) {
	switch status {
	case models.ReviewStatusPending, models.ReviewStatusApproved, models.ReviewStatusRejected:
	default:
		return nil, errf(KindInvalid, "status must be pending, approved, or rejected")
	}

	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}

	review.Status = status
	if status == models.ReviewStatusRejected {
		review.RejectionReason = rejectionReason
	} else {
		review.RejectionReason = ""
	}
	if adminResponse != "" {
		review.AdminResponse = adminResponse
	}

	if err := s.db.Save(review).Error; err != nil {
		return nil, err
	}
	if err := s.refreshProductRating(review.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

// MarkHelpful adds the user to the review's helpful-by set. Only approved
// reviews can be marked; marking twice fails.
func (s *Reviews) MarkHelpful(reviewID, userID uint) (*models.Review, error) {
	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}
	if !review.IsApproved() {
		return nil, errf(KindInvalid, "you can only mark approved reviews as helpful")
	}
	if review.HelpfulBy.Contains(userID) {
		return nil, errf(KindAlreadyExists, "you have already marked this review as helpful")
	}

	review.HelpfulBy = review.HelpfulBy.Add(userID)
	review.Helpful = len(review.HelpfulBy)
	if err := s.db.Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Reviews) UnmarkHelpful(reviewID, userID uint) (*models.Review, error) {
	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}
	if !review.HelpfulBy.Contains(userID) {
		return nil, errf(KindInvalid, "you haven't marked this review as helpful")
	}

	review.HelpfulBy = review.HelpfulBy.Remove(userID)
	review.Helpful = len(review.HelpfulBy)
	if err := s.db.Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ProductRating is the approved-only aggregate snapshotted onto the product.
type ProductRating struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

func (s *Reviews) calculateProductRating(productID uint) (ProductRating, error) {
	var stats struct {
		Avg   float64
		Total int
	}
	err := s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS total").
		Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Scan(&stats).Error
	if err != nil {
		return ProductRating{}, err
	}
	return ProductRating{
		AverageRating: math.Round(stats.Avg*10) / 10,
		TotalReviews:  stats.Total,
	}, nil
}

func (s *Reviews) refreshProductRating(productID uint) error {
	rating, err := s.calculateProductRating(productID)
	if err != nil {
		return err
	}
	return s.db.Model(&models.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": rating.AverageRating,
			"total_reviews":  rating.TotalReviews,
		}).Error
}

func (s *Reviews) deleteBlobs(urls ...string) {
	if s.blobs == nil || len(urls) == 0 {
		return
	}
	if err := s.blobs.Delete(urls...); err != nil {
		log.Printf("failed to delete review images %v: %v", urls, err)
	}
}
