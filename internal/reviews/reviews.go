package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

const maxCommentLength = 2000

type Service struct {
	repo repository.ReviewDB
}

func NewService(repo repository.ReviewDB) *Service {
	return &Service{repo: repo}
}

// Create stores a review of revieweeID written by reviewerID
func (s *Service) Create(ctx context.Context, reviewerID, revieweeID, auctionID string, rating int, comment string) (models.Review, error) {
	comment = strings.TrimSpace(comment)
	switch {
	case reviewerID == "" || revieweeID == "":
		return models.Review{}, fmt.Errorf("service: %w - missing reviewer or reviewee", auctionerrors.ErrInvalidReview)
	case reviewerID == revieweeID:
		return models.Review{}, fmt.Errorf("service: %w", auctionerrors.ErrSelfReview)
	case rating < models.MinRating || rating > models.MaxRating:
		return models.Review{}, fmt.Errorf("service: %w - rating must be between %d and %d", auctionerrors.ErrInvalidReview, models.MinRating, models.MaxRating)
	case len(comment) > maxCommentLength:
		return models.Review{}, fmt.Errorf("service: %w - comment longer than %d characters", auctionerrors.ErrInvalidReview, maxCommentLength)
	}

	review := models.Review{
		ReviewID:   utils.GenerateID(),
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		AuctionID:  auctionID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateReview(ctx, &review); err != nil {
		if errors.Is(err, auctionerrors.ErrDuplicate) {
			return models.Review{}, fmt.Errorf("service: %w", auctionerrors.ErrAlreadyReviewed)
		}
		return models.Review{}, fmt.Errorf("service: %w", err)
	}
	return review, nil
}

// Summary returns the reviews a user received and their average rating
func (s *Service) Summary(ctx context.Context, userID string) (models.ReviewSummary, error) {
	reviews, err := s.repo.ListReviewsForUser(ctx, userID)
	if err != nil {
		return models.ReviewSummary{}, fmt.Errorf("service: %w", err)
	}

	summary := models.ReviewSummary{UserID: userID, Count: len(reviews), Reviews: reviews}
	if summary.Reviews == nil {
		summary.Reviews = []models.Review{}
	}
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		summary.AverageRating = float64(total) / float64(len(reviews))
	}
	return summary, nil
}
