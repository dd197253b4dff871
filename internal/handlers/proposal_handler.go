package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/models"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	BaseHandler
	proposalService services.ProposalService
}

func NewProposalHandler(proposalService services.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

func (h *ProposalHandler) RegisterRoutes(r *gin.RouterGroup) {
	proposals := r.Group("/proposals", middleware.AuthMiddleware())
	{
		proposals.POST("", middleware.RequireRoles(models.UserRoleWorker), h.CreateProposal)
		proposals.GET("", h.ListProposals)
		proposals.GET("/:id", h.GetProposal)
		proposals.PATCH("/:id/status", h.UpdateStatus)
	}
}

// CreateProposal godoc
// @Summary      Submit a proposal for an order
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProposalRequest true "Proposal payload"
// @Success      201 {object} dto.ProposalResponse
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.proposalService.CreateProposal(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var req dto.ProposalListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.proposalService.ListProposals(middleware.GetUserID(c), middleware.IsAdmin(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	resp, err := h.proposalService.GetProposal(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Resolve a proposal
// @Description  Approving a proposal closes the order and creates the job.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Proposal ID"
// @Param        request body dto.UpdateProposalStatusRequest true "Target status"
// @Success      200 {object} dto.ProposalResponse
// @Router       /proposals/{id}/status [patch]
func (h *ProposalHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateProposalStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.proposalService.UpdateStatus(middleware.GetUserID(c), c.Param("id"), req.Status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
