package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/securities_account/internal/services"
	"github.com/securities_account/pkg/utils"
)

// PaginationInfo 定义了通用的分页信息结构
type PaginationInfo struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

func newPaginationInfo(totalItems int64, page, limit int) PaginationInfo {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (totalItems + int64(limit) - 1) / int64(limit)
	}
	return PaginationInfo{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    limit,
	}
}

// parseIDParam 解析路径中的数字 ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondValidationError(c, "無效的ID格式")
		return 0, false
	}
	return id, true
}

// respondServiceError 将服务层错误映射为 HTTP 响应
func respondServiceError(c *gin.Context, log *zap.Logger, err error, fallback string) {
	var validationErrs services.ValidationErrors
	var fieldErr *services.FieldError

	switch {
	case errors.As(err, &validationErrs):
		utils.RespondValidationError(c, validationErrs.Fields())
	case errors.As(err, &fieldErr):
		utils.RespondValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	case errors.Is(err, services.ErrDuplicateApplication):
		utils.RespondRedirectError(c, http.StatusConflict, "您已有一個申請記錄，請查看申請狀態。", "/api/v1/applications/me")
	case errors.Is(err, services.ErrApplicationNotFound):
		utils.RespondNotFoundError(c, "申請")
	case errors.Is(err, services.ErrInvalidState):
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrRejectionReasonRequired):
		utils.RespondAPIError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		log.Error(fallback, zap.Error(err))
		utils.RespondInternalServerError(c, fallback, err.Error())
	}
}
