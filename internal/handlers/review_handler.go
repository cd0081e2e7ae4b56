package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/services"
	"github.com/securities_account/pkg/utils"
)

const defaultReviewPageSize = 25

// ReviewHandler 封装了审核人员端的 HTTP 处理逻辑。
// 路由层已通过 auth.RequireRole 限定审核人员。
type ReviewHandler struct {
	service services.ApplicationService
	log     *zap.Logger
}

// NewReviewHandler 创建一个新的 ReviewHandler 实例
func NewReviewHandler(service services.ApplicationService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, log: log}
}

// PagedApplicationsData 定义了审核列表的分页响应结构
type PagedApplicationsData struct {
	Items      []models.ApplicationListItem `json:"items"`
	Pagination PaginationInfo               `json:"pagination"`
}

// SetStatusPayload 单笔审核请求
type SetStatusPayload struct {
	Status                 models.ApplicationStatus `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED ADDITIONAL_REQUIRED"`
	RejectionReason        string                   `json:"rejectionReason,omitempty"`
	AdditionalInfoRequired string                   `json:"additionalInfoRequired,omitempty"`
}

// BatchPayload 批量审核请求
type BatchPayload struct {
	ApplicationIDs []int64 `json:"applicationIds" binding:"required,min=1,dive,gt=0"`
}

// BatchResult 批量审核结果
type BatchResult struct {
	Count int `json:"count"`
}

// ListApplications godoc
// @Summary 審核列表
// @Description 依申請時間倒序列出申請，支援狀態篩選與關鍵字搜尋（帳號名稱、電話、地址、申請人帳號與電子郵件）
// @Tags Review
// @Produce json
// @Param page query int false "頁碼" default(1)
// @Param limit query int false "每頁數量" default(25)
// @Param status query string false "狀態篩選 (PENDING, APPROVED, REJECTED, ADDITIONAL_REQUIRED)"
// @Param search query string false "搜尋關鍵字"
// @Success 200 {object} utils.SuccessResponse{data=PagedApplicationsData} "申請列表"
// @Failure 400 {object} utils.APIErrorResponse "請求參數錯誤"
// @Failure 403 {object} utils.APIErrorResponse "權限不足"
// @Router /review/applications [get]
// @Security BearerAuth
func (h *ReviewHandler) ListApplications(c *gin.Context) {
	type listQuery struct {
		Page   int    `form:"page,default=1"`
		Limit  int    `form:"limit,default=25"`
		Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED ADDITIONAL_REQUIRED"`
		Search string `form:"search"`
	}

	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 || query.Limit > 100 {
		query.Limit = defaultReviewPageSize
	}

	items, total, err := h.service.ListApplications(c.Request.Context(), models.ApplicationListFilter{
		Page:   query.Page,
		Limit:  query.Limit,
		Status: models.ApplicationStatus(query.Status),
		Search: query.Search,
	})
	if err != nil {
		respondServiceError(c, h.log, err, "獲取申請列表失敗")
		return
	}
	if items == nil {
		items = []models.ApplicationListItem{}
	}

	utils.RespondSuccess(c, http.StatusOK, PagedApplicationsData{
		Items:      items,
		Pagination: newPaginationInfo(total, query.Page, query.Limit),
	}, "")
}

// GetApplication godoc
// @Summary 審核人員查看申請
// @Tags Review
// @Produce json
// @Param id path int true "申請ID"
// @Success 200 {object} utils.SuccessResponse{data=models.ApplicationStatusResponse} "申請詳情"
// @Failure 404 {object} utils.APIErrorResponse "申請不存在"
// @Router /review/applications/{id} [get]
// @Security BearerAuth
func (h *ReviewHandler) GetApplication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	app, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "查詢申請失敗")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, models.NewApplicationStatusResponse(app), "")
}

// SetApplicationStatus godoc
// @Summary 變更申請狀態
// @Description 拒絕時必須填寫拒絕原因；要求補件時可附上補件說明
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "申請ID"
// @Param review body SetStatusPayload true "審核結果"
// @Success 200 {object} utils.SuccessResponse{data=models.ApplicationStatusResponse} "更新後的申請"
// @Failure 400 {object} utils.APIErrorResponse "請求參數錯誤"
// @Failure 404 {object} utils.APIErrorResponse "申請不存在"
// @Router /review/applications/{id}/status [post]
// @Security BearerAuth
func (h *ReviewHandler) SetApplicationStatus(c *gin.Context) {
	reviewerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload SetStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	app, err := h.service.SetStatus(c.Request.Context(), id, payload.Status, reviewerID, models.ReviewOptions{
		RejectionReason:        payload.RejectionReason,
		AdditionalInfoRequired: payload.AdditionalInfoRequired,
	})
	if err != nil {
		respondServiceError(c, h.log, err, "更新申請狀態失敗")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, models.NewApplicationStatusResponse(app), "申請狀態已更新為"+payload.Status.Label())
}

// BatchApprove godoc
// @Summary 批量通過選中的申請
// @Description 只處理目前為審核中的申請，其餘略過
// @Tags Review
// @Accept json
// @Produce json
// @Param ids body BatchPayload true "申請ID列表"
// @Success 200 {object} utils.SuccessResponse{data=BatchResult} "實際通過的數量"
// @Failure 400 {object} utils.APIErrorResponse "請求參數錯誤"
// @Router /review/applications/batch-approve [post]
// @Security BearerAuth
func (h *ReviewHandler) BatchApprove(c *gin.Context) {
	h.batch(c, models.StatusApproved, "成功通過 %d 個申請。")
}

// BatchReject godoc
// @Summary 批量拒絕選中的申請
// @Description 只處理目前為審核中的申請，拒絕原因為固定的「批量拒絕操作」
// @Tags Review
// @Accept json
// @Produce json
// @Param ids body BatchPayload true "申請ID列表"
// @Success 200 {object} utils.SuccessResponse{data=BatchResult} "實際拒絕的數量"
// @Failure 400 {object} utils.APIErrorResponse "請求參數錯誤"
// @Router /review/applications/batch-reject [post]
// @Security BearerAuth
func (h *ReviewHandler) BatchReject(c *gin.Context) {
	h.batch(c, models.StatusRejected, "成功拒絕 %d 個申請。")
}

func (h *ReviewHandler) batch(c *gin.Context, status models.ApplicationStatus, messageFormat string) {
	reviewerID, ok := currentUser(c)
	if !ok {
		return
	}

	var payload BatchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	opts := models.ReviewOptions{}
	if status == models.StatusRejected {
		opts.RejectionReason = services.BatchRejectionReason
	}

	count, err := h.service.BatchSetStatus(c.Request.Context(), payload.ApplicationIDs, status, reviewerID, opts)
	if err != nil {
		respondServiceError(c, h.log, err, "批量審核失敗")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, BatchResult{Count: count}, fmt.Sprintf(messageFormat, count))
}
