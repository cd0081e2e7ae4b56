package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/repositories"
	"github.com/securities_account/pkg/utils"
)

// BatchRejectionReason 批量拒绝时写入的固定原因
const BatchRejectionReason = "批量拒絕操作"

// errNotPending 批量审核时记录已不是审核中状态，跳过
var errNotPending = errors.New("申请已不是审核中状态")

// ApplicationService 定义了申请生命周期的接口。
// 审核人员身份由调用方（HTTP 层）校验，这里只接收 reviewerID。
// 同一条申请的并发修改以最后写入为准，单条记录的读取-修改-写回在一个事务内完成。
type ApplicationService interface {
	Create(ctx context.Context, userID int64, fields models.ApplicationFields) (*models.Application, error)
	// GetByUser 返回用户的申请，不存在时返回 nil, nil
	GetByUser(ctx context.Context, userID int64) (*models.Application, error)
	// GetForOwner 归属校验：不存在或不属于 requesterID 时都返回 ErrApplicationNotFound
	GetForOwner(ctx context.Context, applicationID, requesterID int64) (*models.Application, error)
	// GetApprovedForOwner 用于通过后的恭喜页，未通过时返回 ErrInvalidState
	GetApprovedForOwner(ctx context.Context, applicationID, requesterID int64) (*models.Application, error)
	GetByID(ctx context.Context, applicationID int64) (*models.Application, error)
	RequestUpdate(ctx context.Context, applicationID, requesterID int64, fields models.ApplicationFields) (*models.Application, error)
	SetStatus(ctx context.Context, applicationID int64, newStatus models.ApplicationStatus, reviewerID int64, opts models.ReviewOptions) (*models.Application, error)
	BatchSetStatus(ctx context.Context, applicationIDs []int64, newStatus models.ApplicationStatus, reviewerID int64, opts models.ReviewOptions) (int, error)
	ListApplications(ctx context.Context, filter models.ApplicationListFilter) ([]models.ApplicationListItem, int64, error)
	Validator() *ApplicationValidator
}

// applicationService 是 ApplicationService 的实现
type applicationService struct {
	repo      repositories.ApplicationRepository
	validator *ApplicationValidator
	log       *zap.Logger
	now       func() time.Time
}

// NewApplicationService 创建一个新的 applicationService 实例
func NewApplicationService(repo repositories.ApplicationRepository, log *zap.Logger) ApplicationService {
	return newApplicationService(repo, log, time.Now)
}

func newApplicationService(repo repositories.ApplicationRepository, log *zap.Logger, now func() time.Time) *applicationService {
	return &applicationService{
		repo:      repo,
		validator: NewApplicationValidator(repo),
		log:       log,
		now:       now,
	}
}

func (s *applicationService) Validator() *ApplicationValidator {
	return s.validator
}

// Create 为用户创建申请，每个用户只能有一个
func (s *applicationService) Create(ctx context.Context, userID int64, fields models.ApplicationFields) (*models.Application, error) {
	existing, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	cleaned, err := s.validator.ValidateFields(ctx, fields, nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	app := &models.Application{
		UserID:      userID,
		AccountName: cleaned.AccountName,
		PhoneNumber: cleaned.PhoneNumber,
		Address:     cleaned.Address,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, translateConflict(err)
	}

	s.log.Info("申请已提交",
		zap.Int64("applicationID", app.ID),
		zap.Int64("userID", userID),
		zap.String("accountName", app.AccountName),
	)
	return app, nil
}

// GetByUser 读取用户的申请
func (s *applicationService) GetByUser(ctx context.Context, userID int64) (*models.Application, error) {
	app, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户申请失败: %w", err)
	}
	return app, nil
}

func (s *applicationService) GetByID(ctx context.Context, applicationID int64) (*models.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("查询申请失败: %w", err)
	}
	return app, nil
}

func (s *applicationService) GetForOwner(ctx context.Context, applicationID, requesterID int64) (*models.Application, error) {
	app, err := s.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID != requesterID {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *applicationService) GetApprovedForOwner(ctx context.Context, applicationID, requesterID int64) (*models.Application, error) {
	app, err := s.GetForOwner(ctx, applicationID, requesterID)
	if err != nil {
		return nil, err
	}
	if !app.IsApproved() {
		return nil, ErrInvalidState
	}
	return app, nil
}

// RequestUpdate 申请人补件：仅待补件状态可修改，修改后重新进入审核中并清除审核信息
func (s *applicationService) RequestUpdate(ctx context.Context, applicationID, requesterID int64, fields models.ApplicationFields) (*models.Application, error) {
	current, err := s.GetForOwner(ctx, applicationID, requesterID)
	if err != nil {
		return nil, err
	}
	if !current.CanBeUpdated() {
		return nil, ErrInvalidState
	}

	cleaned, err := s.validator.ValidateFields(ctx, fields, &current.ID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Mutate(ctx, applicationID, func(app *models.Application) error {
		// 事务内再次检查，防止与审核动作交错
		if app.UserID != requesterID {
			return ErrApplicationNotFound
		}
		if !app.CanBeUpdated() {
			return ErrInvalidState
		}
		app.AccountName = cleaned.AccountName
		app.PhoneNumber = cleaned.PhoneNumber
		app.Address = cleaned.Address
		app.Status = models.StatusPending
		app.ReviewedAt = nil
		app.ReviewedByID = nil
		app.AdditionalInfoRequired = ""
		app.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, translateConflict(err)
	}

	s.log.Info("申请已补件并重新提交",
		zap.Int64("applicationID", updated.ID),
		zap.Int64("userID", requesterID),
	)
	return updated, nil
}

// SetStatus 审核人员变更申请状态。不按当前状态拒绝任何转换，由调用方决定可提供的操作。
func (s *applicationService) SetStatus(ctx context.Context, applicationID int64, newStatus models.ApplicationStatus, reviewerID int64, opts models.ReviewOptions) (*models.Application, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}
	if newStatus == models.StatusRejected && strings.TrimSpace(opts.RejectionReason) == "" {
		return nil, ErrRejectionReasonRequired
	}

	var previous models.ApplicationStatus
	updated, err := s.repo.Mutate(ctx, applicationID, func(app *models.Application) error {
		previous = app.Status
		s.applyStatus(app, newStatus, reviewerID, opts)
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("更新申请状态失败: %w", err)
	}

	s.log.Info("申请状态已更新",
		zap.Int64("applicationID", updated.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(newStatus)),
		zap.Int64("reviewerID", reviewerID),
	)
	return updated, nil
}

// BatchSetStatus 对列表中当前为审核中的申请逐条执行 SetStatus，其余跳过，返回实际变更数量
func (s *applicationService) BatchSetStatus(ctx context.Context, applicationIDs []int64, newStatus models.ApplicationStatus, reviewerID int64, opts models.ReviewOptions) (int, error) {
	if !newStatus.IsValid() {
		return 0, ErrInvalidStatus
	}
	if newStatus == models.StatusRejected && strings.TrimSpace(opts.RejectionReason) == "" {
		opts.RejectionReason = BatchRejectionReason
	}

	snapshot, err := s.repo.FindByIDsAndStatus(ctx, utils.UniqueInt64s(applicationIDs), models.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("查询待审核申请失败: %w", err)
	}

	count := 0
	for _, candidate := range snapshot {
		_, err := s.repo.Mutate(ctx, candidate.ID, func(app *models.Application) error {
			if !app.IsPending() {
				return errNotPending
			}
			s.applyStatus(app, newStatus, reviewerID, opts)
			return nil
		})
		if err != nil {
			if errors.Is(err, errNotPending) || errors.Is(err, repositories.ErrRecordNotFound) {
				continue
			}
			return count, fmt.Errorf("批量更新申请 %d 失败: %w", candidate.ID, err)
		}
		count++
	}

	s.log.Info("批量审核完成",
		zap.String("to", string(newStatus)),
		zap.Int("requested", len(applicationIDs)),
		zap.Int("transitioned", count),
		zap.Int64("reviewerID", reviewerID),
	)
	return count, nil
}

func (s *applicationService) ListApplications(ctx context.Context, filter models.ApplicationListFilter) ([]models.ApplicationListItem, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

// applyStatus 设置状态及审核元数据。
// 审核人员与审核时间只在首次离开审核中时写入，之后不覆盖；通过时间只写一次。
func (s *applicationService) applyStatus(app *models.Application, newStatus models.ApplicationStatus, reviewerID int64, opts models.ReviewOptions) {
	now := s.now()

	if app.ReviewedByID == nil && newStatus != models.StatusPending && app.Status != newStatus {
		reviewer := reviewerID
		app.ReviewedByID = &reviewer
	}
	if app.ReviewedAt == nil && newStatus != models.StatusPending {
		app.ReviewedAt = &now
	}
	if newStatus == models.StatusApproved && app.ApprovedAt == nil {
		app.ApprovedAt = &now
	}

	switch newStatus {
	case models.StatusRejected:
		app.RejectionReason = opts.RejectionReason
	case models.StatusAdditionalRequired:
		app.AdditionalInfoRequired = opts.AdditionalInfoRequired
	}

	app.Status = newStatus
	app.UpdatedAt = now
}

// translateConflict 将仓库层唯一约束冲突转换为服务层错误
func translateConflict(err error) error {
	switch {
	case errors.Is(err, repositories.ErrApplicationUserConflict):
		return ErrDuplicateApplication
	case errors.Is(err, repositories.ErrAccountNameConflict):
		return ValidationErrors{{Field: FieldAccountName, Kind: ErrUniqueness, Message: "此帳號名稱已被使用，請選擇其他名稱"}}
	}
	return err
}
