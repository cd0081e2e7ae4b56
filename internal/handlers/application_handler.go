package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/securities_account/internal/auth"
	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/services"
	"github.com/securities_account/pkg/utils"
)

// ApplicationHandler 封装了申请人端的 HTTP 处理逻辑
type ApplicationHandler struct {
	service services.ApplicationService
	log     *zap.Logger
}

// NewApplicationHandler 创建一个新的 ApplicationHandler 实例
func NewApplicationHandler(service services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{service: service, log: log}
}

// UpdateApplicationResponse 补件页需要显示补件说明
type UpdateApplicationResponse struct {
	*models.ApplicationStatusResponse
}

func currentUser(c *gin.Context) (int64, bool) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
	}
	return userID, ok
}

// CreateApplication godoc
// @Summary 提交證券帳戶申請
// @Description 每位使用者只能提交一次申請；三個欄位的錯誤會一併回傳
// @Tags Applications
// @Accept json
// @Produce json
// @Param application body models.ApplicationFields true "申請資料"
// @Success 201 {object} utils.SuccessResponse{data=models.ApplicationStatusResponse} "申請已提交"
// @Failure 400 {object} utils.APIErrorResponse "欄位驗證失敗"
// @Failure 401 {object} utils.APIErrorResponse "未認證或 Token 無效/過期"
// @Failure 409 {object} utils.APIErrorResponse "已有申請記錄"
// @Failure 500 {object} utils.APIErrorResponse "伺服器內部錯誤"
// @Router /applications [post]
// @Security BearerAuth
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var payload models.ApplicationFields
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	app, err := h.service.Create(c.Request.Context(), userID, payload)
	if err != nil {
		respondServiceError(c, h.log, err, "提交申請失敗")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, models.NewApplicationStatusResponse(app), "證券帳戶申請已成功提交！我們會盡快處理您的申請。")
}

// GetMyApplication godoc
// @Summary 查看申請狀態
// @Tags Applications
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.ApplicationStatusResponse} "申請狀態"
// @Failure 401 {object} utils.APIErrorResponse "未認證或 Token 無效/過期"
// @Failure 404 {object} utils.APIErrorResponse "尚未提交申請"
// @Router /applications/me [get]
// @Security BearerAuth
func (h *ApplicationHandler) GetMyApplication(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	app, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, h.log, err, "查詢申請失敗")
		return
	}
	if app == nil {
		utils.RespondRedirectError(c, http.StatusNotFound, "您尚未提交申請，請先填寫申請表單。", "/api/v1/applications")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, models.NewApplicationStatusResponse(app), "")
}

// GetApplicationForUpdate godoc
// @Summary 取得待補件的申請
// @Description 只能取得自己的申請；不屬於自己的申請與不存在的申請同樣回傳 404
// @Tags Applications
// @Produce json
// @Param id path int true "申請ID"
// @Success 200 {object} utils.SuccessResponse{data=UpdateApplicationResponse} "申請與補件說明"
// @Failure 404 {object} utils.APIErrorResponse "申請不存在"
// @Failure 409 {object} utils.APIErrorResponse "只有待補件狀態的申請可以更新"
// @Router /applications/{id} [get]
// @Security BearerAuth
func (h *ApplicationHandler) GetApplicationForUpdate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.service.GetForOwner(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, h.log, err, "查詢申請失敗")
		return
	}
	if !app.CanBeUpdated() {
		utils.RespondConflictError(c, "此申請目前無法修改。只有「待補件」狀態的申請可以更新。")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, UpdateApplicationResponse{models.NewApplicationStatusResponse(app)}, "")
}

// UpdateApplication godoc
// @Summary 補件並重新提交
// @Description 只有「待補件」狀態的申請可以更新，更新後狀態回到審核中
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "申請ID"
// @Param application body models.ApplicationFields true "更新後的申請資料"
// @Success 200 {object} utils.SuccessResponse{data=models.ApplicationStatusResponse} "已重新提交"
// @Failure 400 {object} utils.APIErrorResponse "欄位驗證失敗"
// @Failure 404 {object} utils.APIErrorResponse "申請不存在"
// @Failure 409 {object} utils.APIErrorResponse "目前狀態不允許修改"
// @Router /applications/{id} [put]
// @Security BearerAuth
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload models.ApplicationFields
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	app, err := h.service.RequestUpdate(c.Request.Context(), id, userID, payload)
	if err != nil {
		respondServiceError(c, h.log, err, "更新申請失敗")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, models.NewApplicationStatusResponse(app), "申請資料已更新並重新提交審核。感謝您提供補充資料！")
}

// GetApplicationSuccess godoc
// @Summary 申請通過頁面
// @Tags Applications
// @Produce json
// @Param id path int true "申請ID"
// @Success 200 {object} utils.SuccessResponse{data=models.ApplicationStatusResponse} "已通過的申請"
// @Failure 404 {object} utils.APIErrorResponse "申請不存在"
// @Failure 409 {object} utils.APIErrorResponse "此申請尚未通過審核"
// @Router /applications/{id}/success [get]
// @Security BearerAuth
func (h *ApplicationHandler) GetApplicationSuccess(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.service.GetApprovedForOwner(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			utils.RespondRedirectError(c, http.StatusConflict, "此申請尚未通過審核。", "/api/v1/applications/me")
			return
		}
		respondServiceError(c, h.log, err, "查詢申請失敗")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, models.NewApplicationStatusResponse(app), "恭喜！您的證券帳戶申請已通過。")
}
