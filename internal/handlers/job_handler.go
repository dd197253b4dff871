package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs", middleware.AuthMiddleware())
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.GET("/:id/history", h.StatusHistory)
		jobs.POST("/:id/done", h.MarkWorkDone)
		jobs.POST("/:id/payment/confirm", h.ConfirmPayment)
		jobs.POST("/:id/payment/problem", h.ReportPaymentProblem)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.JobListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.jobService.ListJobs(middleware.GetUserID(c), middleware.IsAdmin(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	resp, err := h.jobService.GetJob(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) StatusHistory(c *gin.Context) {
	resp, err := h.jobService.StatusHistory(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkWorkDone godoc
// @Summary      Declare the work finished and start the payment stage
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200 {object} dto.JobResponse
// @Router       /jobs/{id}/done [post]
func (h *JobHandler) MarkWorkDone(c *gin.Context) {
	resp, err := h.jobService.MarkWorkDone(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPayment godoc
// @Summary      Confirm the payment from the caller's side
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200 {object} dto.JobResponse
// @Router       /jobs/{id}/payment/confirm [post]
func (h *JobHandler) ConfirmPayment(c *gin.Context) {
	resp, err := h.jobService.ConfirmPayment(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReportPaymentProblem godoc
// @Summary      Report a payment problem from the caller's side
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200 {object} dto.JobResponse
// @Router       /jobs/{id}/payment/problem [post]
func (h *JobHandler) ReportPaymentProblem(c *gin.Context) {
	resp, err := h.jobService.ReportPaymentProblem(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
