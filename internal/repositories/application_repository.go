package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/securities_account/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound 表示记录未找到，重用 gorm 的错误
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrApplicationUserConflict 表示该用户已有申请记录（user_id 唯一约束）
var ErrApplicationUserConflict = errors.New("该用户已有申请记录")

// ErrAccountNameConflict 表示账号名称已被其他申请使用（account_name 唯一约束）
var ErrAccountNameConflict = errors.New("账号名称已被使用")

// ApplicationRepository 定义了申请数据仓库的接口
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Application, error)
	// AccountNameTaken 检查账号名称是否已被 excludeID 以外的申请使用
	AccountNameTaken(ctx context.Context, accountName string, excludeID *int64) (bool, error)
	// FindByIDsAndStatus 按 ID 列表和状态取一个快照，用于批量审核
	FindByIDsAndStatus(ctx context.Context, ids []int64, status models.ApplicationStatus) ([]models.Application, error)
	// Mutate 在单条记录的事务内执行 读取-修改-写回
	Mutate(ctx context.Context, id int64, fn func(app *models.Application) error) (*models.Application, error)
	List(ctx context.Context, filter models.ApplicationListFilter) ([]models.ApplicationListItem, int64, error)
}

// gormApplicationRepository 是 ApplicationRepository 的 GORM 实现
type gormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository 创建一个新的 gormApplicationRepository 实例
func NewGormApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

// Create 在数据库中创建一个新的申请记录
func (r *gormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return translateApplicationError(err)
	}
	return nil
}

// GetByID 按主键获取申请
func (r *gormApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err // 调用方应处理 gorm.ErrRecordNotFound
	}
	return &app, nil
}

// GetByUserID 获取用户的申请
func (r *gormApplicationRepository) GetByUserID(ctx context.Context, userID int64) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// AccountNameTaken 检查账号名称唯一性，区分大小写
func (r *gormApplicationRepository) AccountNameTaken(ctx context.Context, accountName string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Application{}).Where("account_name = ?", accountName)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByIDsAndStatus 返回 ids 中当前处于 status 的申请
func (r *gormApplicationRepository) FindByIDsAndStatus(ctx context.Context, ids []int64, status models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	if len(ids) == 0 {
		return apps, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, status).
		Order("id ASC").
		Find(&apps).Error
	return apps, err
}

// Mutate 读取记录、交给 fn 修改并写回，全部在同一事务中完成。
// fn 返回错误时事务回滚，错误原样返回。
func (r *gormApplicationRepository) Mutate(ctx context.Context, id int64, fn func(app *models.Application) error) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&app).Error; err != nil {
			return err
		}
		if err := fn(&app); err != nil {
			return err
		}
		if err := tx.Save(&app).Error; err != nil {
			return translateApplicationError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// List 获取审核列表，支持分页、状态筛选和关键字搜索，按申请时间倒序
func (r *gormApplicationRepository) List(ctx context.Context, filter models.ApplicationListFilter) ([]models.ApplicationListItem, int64, error) {
	var items []models.ApplicationListItem
	var totalItems int64

	queryBuilder := r.db.WithContext(ctx).Table("applications").
		Joins("LEFT JOIN users AS applicant ON applicant.id = applications.user_id").
		Joins("LEFT JOIN users AS reviewer ON reviewer.id = applications.reviewed_by_id")

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where("applications.status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		queryBuilder = queryBuilder.Where(
			"applications.account_name LIKE ? OR applications.phone_number LIKE ? OR applications.address LIKE ? OR applicant.username LIKE ? OR applicant.email LIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm, searchTerm,
		)
	}
	base := queryBuilder.Session(&gorm.Session{})

	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := base.
		Select(
			"applications.*",
			"applicant.username AS applicant_username",
			"applicant.email AS applicant_email",
			"reviewer.username AS reviewer_username",
		).
		Order("applications.created_at DESC").
		Order("applications.id DESC").
		Offset(offset).
		Limit(filter.Limit).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range items {
		items[i].StatusLabel = items[i].Status.Label()
	}
	return items, totalItems, nil
}

// translateApplicationError 将 SQLite 唯一约束错误转换为仓库层错误
func translateApplicationError(err error) error {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique constraint") && !strings.Contains(msg, "duplicate key") {
		return err
	}
	switch {
	case strings.Contains(msg, "applications.user_id"), strings.Contains(msg, "idx_applications_user_id"):
		return ErrApplicationUserConflict
	case strings.Contains(msg, "applications.account_name"), strings.Contains(msg, "idx_applications_account_name"):
		return ErrAccountNameConflict
	}
	return err
}
