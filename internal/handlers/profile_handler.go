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

type ProfileHandler struct {
	BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	cvs := r.Group("/cvs", middleware.AuthMiddleware())
	{
		cvs.POST("", h.CreateCv)
		cvs.GET("/me", h.GetMyCv)
		cvs.GET("/:id", h.GetCv)
		cvs.PATCH("/:id", h.UpdateCv)
		cvs.DELETE("/:id", h.DeleteCv)
	}

	cards := r.Group("/bank-cards", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleWorker))
	{
		cards.POST("", h.CreateBankCard)
		cards.GET("", h.ListBankCards)
		cards.DELETE("/:id", h.DeleteBankCard)
	}

	passports := r.Group("/passports", middleware.AuthMiddleware())
	{
		passports.POST("", h.CreatePassport)
		passports.GET("", h.ListPassports)
		passports.DELETE("/:id", h.DeletePassport)
	}
}

func (h *ProfileHandler) CreateCv(c *gin.Context) {
	var req dto.CreateCvRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CreateCv(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProfileHandler) GetMyCv(c *gin.Context) {
	resp, err := h.profileService.GetCvByOwner(middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetCv(c *gin.Context) {
	resp, err := h.profileService.GetCv(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateCv(c *gin.Context) {
	var req dto.UpdateCvRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateCv(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) DeleteCv(c *gin.Context) {
	err := h.profileService.DeleteCv(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) CreateBankCard(c *gin.Context) {
	var req dto.CreateBankCardRequest
	if !h.BindJSON(c, &req) {
		return
	}

	card, err := h.profileService.CreateBankCard(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *ProfileHandler) ListBankCards(c *gin.Context) {
	cards, err := h.profileService.ListBankCards(middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *ProfileHandler) DeleteBankCard(c *gin.Context) {
	err := h.profileService.DeleteBankCard(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) CreatePassport(c *gin.Context) {
	var req dto.CreatePassportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	passport, err := h.profileService.CreatePassport(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passport)
}

func (h *ProfileHandler) ListPassports(c *gin.Context) {
	passports, err := h.profileService.ListPassports(middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, passports)
}

func (h *ProfileHandler) DeletePassport(c *gin.Context) {
	err := h.profileService.DeletePassport(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
