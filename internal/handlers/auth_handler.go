package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/securities_account/internal/auth"
	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/services"
	"github.com/securities_account/pkg/utils"
)

// AuthHandler 封装了注册、登录与登出的 HTTP 处理逻辑
type AuthHandler struct {
	accounts  services.AccountService
	jwtSecret string
	tokenTTL  time.Duration
	log       *zap.Logger
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(accounts services.AccountService, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// RegisterRequest 各字段由 AccountService.Register 统一校验
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func newUserInfo(u *models.User) UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, FullName: u.FullName, Role: u.Role}
}

// Register godoc
// @Summary 使用者註冊
// @Description 建立申請人帳號，欄位錯誤會一次全部回傳
// @Tags auth
// @Accept  json
// @Produce  json
// @Param account body RegisterRequest true "註冊資料"
// @Success 201 {object} utils.SuccessResponse{data=UserInfo} "註冊成功"
// @Failure 400 {object} utils.APIErrorResponse "請求參數錯誤或欄位驗證失敗"
// @Failure 500 {object} utils.APIErrorResponse "伺服器內部錯誤"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), services.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		respondServiceError(c, h.log, err, "註冊失敗")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, newUserInfo(user), "帳號 "+user.Username+" 註冊成功！請登入開始申請證券帳戶。")
}

// Login godoc
// @Summary 使用者登入
// @Description 驗證帳號密碼並回傳 JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登入憑證"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "登入成功，回傳 Token 與使用者資訊"
// @Failure 400 {object} utils.APIErrorResponse "請求參數錯誤"
// @Failure 401 {object} utils.APIErrorResponse "帳號或密碼錯誤"
// @Failure 500 {object} utils.APIErrorResponse "無法產生Token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondUnauthorizedError(c, err.Error())
			return
		}
		h.log.Error("登录失败", zap.Error(err))
		utils.RespondInternalServerError(c, "登入失敗", err.Error())
		return
	}

	tokenString, expiresAt, err := auth.IssueToken(h.jwtSecret, h.tokenTTL, user.ID, user.Username, user.Role)
	if err != nil {
		utils.RespondInternalServerError(c, "無法產生Token", err.Error())
		return
	}

	displayName := user.FullName
	if displayName == "" {
		displayName = user.Username
	}
	utils.RespondSuccess(c, http.StatusOK, LoginResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		User:      newUserInfo(user),
	}, "歡迎回來，"+displayName+"！")
}

// LogoutHandler godoc
// @Summary 使用者登出
// @Description 將目前的 Token 加入拒絕列表
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "您已成功登出"
// @Failure 400 {object} utils.APIErrorResponse "上下文中缺少JTI或EXP"
// @Router /auth/logout [post]
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	jti := c.GetString(auth.ContextJTI)
	expVal, expExists := c.Get(auth.ContextExp)
	if jti == "" || !expExists {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: JTI or EXP not found in context", nil)
		return
	}

	exp, ok := expVal.(time.Time)
	if !ok {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: Invalid EXP", nil)
		return
	}

	auth.AddToDenylist(jti, exp)
	utils.RespondSuccess(c, http.StatusOK, nil, "您已成功登出。")
}
