package handler

import (
	"context"
	"net/http"

	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type DescriberInterface interface {
	Describe(ctx context.Context, imageBase64, title string) (string, error)
}

type DescribeHandler struct {
	describer DescriberInterface
}

func NewDescribeHandler(describer DescriberInterface) *DescribeHandler {
	return &DescribeHandler{describer: describer}
}

// DescribeHandler handles POST /ai/description
func (h *DescribeHandler) DescribeHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "DescribeHandler")
	if !ok {
		return
	}

	var req helpers.DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DescribeHandler", err)
		return
	}

	description, err := h.describer.Describe(c.Request.Context(), req.Image, req.Title)
	if err != nil {
		helpers.RespondError(c, "DescribeHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.DescribeResponse{Description: description}, "description generated")
	helpers.LogSuccess("DescribeHandler", "description generated", map[string]any{
		"user_id": userID,
		"length":  len(description),
	})
}
