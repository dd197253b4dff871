package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews", middleware.AuthMiddleware())
	{
		reviews.POST("", h.SubmitReview)
		reviews.GET("", h.ListReviews)
		reviews.GET("/:id", h.GetReview)
	}

	r.GET("/ratings/:cvId", h.RatingSummary)
}

// SubmitReview godoc
// @Summary      Review the counterparty on a job in the review stage
// @Description  Once both parties have reviewed, the job completes and the
// @Description  recipient's rating is recomputed.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SubmitReviewRequest true "Review payload"
// @Success      201 {object} dto.ReviewResponse
// @Router       /reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.SubmitReview(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var req dto.ReviewListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.reviewService.ListReviews(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	resp, err := h.reviewService.GetReview(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) RatingSummary(c *gin.Context) {
	resp, err := h.reviewService.RatingSummary(c.Param("cvId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
