package repository

import (
	"context"
	"fmt"

	model "auction-marketplace/internal/models"
)

// CreateReview inserts a review with bound parameters only
func (r *GormRepo) CreateReview(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review by %s: %w", review.ReviewerID, translate(err))
	}
	return nil
}

// ListReviewsForUser returns reviews received by the user, newest first
func (r *GormRepo) ListReviewsForUser(ctx context.Context, userID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("reviewee_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews for user %s: %w", userID, err)
	}
	return reviews, nil
}
