package handler

import (
	"context"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, reviewerID, revieweeID, auctionID string, rating int, comment string) (model.Review, error)
	Summary(ctx context.Context, userID string) (model.ReviewSummary, error)
}

type ReviewHandler struct {
	service ReviewServiceInterface
}

func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReviewHandler handles POST /reviews
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	reviewerID, ok := helpers.RequireUser(c, "CreateReviewHandler")
	if !ok {
		return
	}

	var req helpers.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateReviewHandler", err)
		return
	}

	review, err := h.service.Create(c.Request.Context(), reviewerID, req.RevieweeID, req.AuctionID, req.Rating, req.Comment)
	if err != nil {
		helpers.RespondError(c, "CreateReviewHandler", err, map[string]any{
			"reviewer_id": reviewerID,
			"reviewee_id": req.RevieweeID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, review, "review created successfully")
	helpers.LogSuccess("CreateReviewHandler", "review created successfully", map[string]any{
		"review_id":   review.ReviewID,
		"reviewee_id": review.RevieweeID,
		"rating":      review.Rating,
	})
}

// ListReviewsHandler handles GET /users/:user_id/reviews
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	summary, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "ListReviewsHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, summary, "reviews retrieved successfully")
}
