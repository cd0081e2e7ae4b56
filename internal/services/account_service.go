package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/repositories"
	"github.com/securities_account/pkg/utils"
)

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("帳號或密碼錯誤，請重新輸入")

const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldFullName  = "fullName"
	FieldPassword  = "password"
	FieldPassword2 = "passwordConfirm"

	usernameMinLen = 3
	usernameMaxLen = 150
	fullNameMaxLen = 30
	passwordMinLen = 8  // 按字符计算
	passwordMaxLen = 72 // bcrypt 上限（字节）
)

// RegisterInput 注册表单
type RegisterInput struct {
	Username        string
	Email           string
	FullName        string
	Password        string
	PasswordConfirm string
}

// AccountService 定义了用户注册与登录的接口
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	// CreateReviewer 创建审核人员账号，用户名已存在时返回 repositories.ErrUsernameExists
	CreateReviewer(ctx context.Context, username, email, password string) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type accountService struct {
	repo repositories.UserRepository
	log  *zap.Logger
}

// NewAccountService 创建一个新的 accountService 实例
func NewAccountService(repo repositories.UserRepository, log *zap.Logger) AccountService {
	return &accountService{repo: repo, log: log}
}

// Register 校验注册资料并创建申请人账号，所有字段错误一次返回
func (s *accountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var errs ValidationErrors

	username := strings.TrimSpace(input.Username)
	switch length := utils.RuneLength(username); {
	case length < usernameMinLen:
		errs = append(errs, &FieldError{Field: FieldUsername, Kind: ErrLength, Message: "使用者帳號至少需要3個字符"})
	case length > usernameMaxLen:
		errs = append(errs, &FieldError{Field: FieldUsername, Kind: ErrLength, Message: "使用者帳號不能超過150個字符"})
	default:
		exists, err := s.repo.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("检查用户名失败: %w", err)
		}
		if exists {
			errs = append(errs, &FieldError{Field: FieldUsername, Kind: ErrUniqueness, Message: repositories.ErrUsernameExists.Error()})
		}
	}

	email := strings.TrimSpace(input.Email)
	if !utils.ValidateEmailFormat(email) || email == "" {
		errs = append(errs, &FieldError{Field: FieldEmail, Kind: ErrFormat, Message: "請輸入有效的電子郵件地址"})
	} else {
		exists, err := s.repo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("检查邮箱失败: %w", err)
		}
		if exists {
			errs = append(errs, &FieldError{Field: FieldEmail, Kind: ErrUniqueness, Message: "此電子郵件已被註冊，請使用其他郵件地址"})
		}
	}

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" || utils.RuneLength(fullName) > fullNameMaxLen {
		errs = append(errs, &FieldError{Field: FieldFullName, Kind: ErrLength, Message: "請輸入您的真實姓名"})
	}

	if utils.RuneLength(input.Password) < passwordMinLen || utils.IsNumeric(input.Password) {
		errs = append(errs, &FieldError{Field: FieldPassword, Kind: ErrFormat, Message: "密碼至少8個字符，不能完全是數字"})
	}
	if len(input.Password) > passwordMaxLen {
		errs = append(errs, &FieldError{Field: FieldPassword, Kind: ErrLength, Message: "密碼不能超過72個字元"})
	}
	if input.Password != input.PasswordConfirm {
		errs = append(errs, &FieldError{Field: FieldPassword2, Kind: ErrFormat, Message: "兩次輸入的密碼不一致"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.createUser(ctx, username, email, fullName, input.Password, models.RoleApplicant)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameExists):
			return nil, ValidationErrors{{Field: FieldUsername, Kind: ErrUniqueness, Message: err.Error()}}
		case errors.Is(err, repositories.ErrEmailExists):
			return nil, ValidationErrors{{Field: FieldEmail, Kind: ErrUniqueness, Message: err.Error()}}
		}
		return nil, err
	}
	s.log.Info("用户注册成功", zap.Int64("userID", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Authenticate 校验用户名与密码
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *accountService) CreateReviewer(ctx context.Context, username, email, password string) (*models.User, error) {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, repositories.ErrUsernameExists
	}
	user, err := s.createUser(ctx, username, email, username, password, models.RoleReviewer)
	if err != nil {
		return nil, err
	}
	s.log.Info("审核人员账号已创建", zap.Int64("userID", user.ID), zap.String("username", user.Username))
	return user, nil
}

// DeleteUser 删除用户，由外部管理操作调用
func (s *accountService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info("用户已删除", zap.Int64("userID", userID))
	return nil
}

func (s *accountService) createUser(ctx context.Context, username, email, fullName, password, role string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("生成密码哈希失败: %w", err)
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
