package models

import (
	"time"
)

// ApplicationStatus 定义了证券账户申请的审核状态
type ApplicationStatus string

const (
	StatusPending            ApplicationStatus = "PENDING"             // 审核中
	StatusApproved           ApplicationStatus = "APPROVED"            // 已通过
	StatusRejected           ApplicationStatus = "REJECTED"            // 已拒绝
	StatusAdditionalRequired ApplicationStatus = "ADDITIONAL_REQUIRED" // 待补件
)

var statusLabels = map[ApplicationStatus]string{
	StatusPending:            "審核中",
	StatusApproved:           "已通過",
	StatusRejected:           "已拒絕",
	StatusAdditionalRequired: "待補件",
}

// IsValid 判断状态值是否属于四种已知状态之一
func (s ApplicationStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label 返回状态的显示名称
func (s ApplicationStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Application 对应于数据库中的 applications 表，每个用户最多一条。
// 时间戳由服务层显式设置，不依赖 GORM 的自动时间戳。
type Application struct {
	ID                     int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                 int64             `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_applications_user_id"`
	AccountName            string            `json:"accountName" gorm:"column:account_name;not null;size:100;uniqueIndex:idx_applications_account_name"` // 证券账号名称
	PhoneNumber            string            `json:"phoneNumber" gorm:"column:phone_number;not null;size:20"`                                              // 保留用户输入的格式
	Address                string            `json:"address" gorm:"column:address;type:text;not null"`
	Status                 ApplicationStatus `json:"status" gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt              time.Time         `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false;index"`
	UpdatedAt              time.Time         `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime:false"`
	ReviewedAt             *time.Time        `json:"reviewedAt,omitempty" gorm:"column:reviewed_at"`
	ReviewedByID           *int64            `json:"reviewedById,omitempty" gorm:"column:reviewed_by_id;index"` // 审核人员，弱引用
	RejectionReason        string            `json:"rejectionReason" gorm:"column:rejection_reason;type:text"`
	AdditionalInfoRequired string            `json:"additionalInfoRequired" gorm:"column:additional_info_required;type:text"`
	ApprovedAt             *time.Time        `json:"approvedAt,omitempty" gorm:"column:approved_at"` // 首次通过时间，之后不再变更
}

// TableName 指定 Application 结构体对应的数据库表名
func (Application) TableName() string {
	return "applications"
}

// CanBeUpdated 只有待补件状态的申请可以由申请人修改
func (a *Application) CanBeUpdated() bool {
	return a.Status == StatusAdditionalRequired
}

func (a *Application) IsPending() bool  { return a.Status == StatusPending }
func (a *Application) IsApproved() bool { return a.Status == StatusApproved }
func (a *Application) IsRejected() bool { return a.Status == StatusRejected }

// ApplicationFields 是申请人可提交/修改的三个字段。
// 空值由服务层校验报告为字段错误，不在绑定阶段拦截。
type ApplicationFields struct {
	AccountName string `json:"accountName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// ReviewOptions 携带审核动作附带的说明
type ReviewOptions struct {
	RejectionReason        string `json:"rejectionReason,omitempty"`
	AdditionalInfoRequired string `json:"additionalInfoRequired,omitempty"`
}

// ApplicationStatusResponse 是申请状态页的只读投影
type ApplicationStatusResponse struct {
	Application
	StatusLabel  string `json:"statusLabel"`
	CanBeUpdated bool   `json:"canBeUpdated"`
	IsPending    bool   `json:"isPending"`
	IsApproved   bool   `json:"isApproved"`
	IsRejected   bool   `json:"isRejected"`
}

// NewApplicationStatusResponse 由申请记录构造状态投影
func NewApplicationStatusResponse(app *Application) *ApplicationStatusResponse {
	return &ApplicationStatusResponse{
		Application:  *app,
		StatusLabel:  app.Status.Label(),
		CanBeUpdated: app.CanBeUpdated(),
		IsPending:    app.IsPending(),
		IsApproved:   app.IsApproved(),
		IsRejected:   app.IsRejected(),
	}
}

// ApplicationListItem 审核列表中的一行，附带申请人信息
type ApplicationListItem struct {
	Application
	ApplicantUsername string  `json:"applicantUsername"`
	ApplicantEmail    string  `json:"applicantEmail"`
	ReviewerUsername  *string `json:"reviewerUsername,omitempty"`
	StatusLabel       string  `json:"statusLabel"`
}

// ApplicationListFilter 审核列表的筛选与分页参数
type ApplicationListFilter struct {
	Page   int
	Limit  int
	Status ApplicationStatus
	Search string
}
