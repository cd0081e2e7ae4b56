package services

import (
	"errors"
	"strings"
)

// 字段校验错误的种类，可用 errors.Is 判断
var (
	ErrFormat     = errors.New("格式錯誤")
	ErrLength     = errors.New("長度錯誤")
	ErrContent    = errors.New("內容不完整")
	ErrUniqueness = errors.New("已被使用")
)

// 申请生命周期错误
var (
	ErrDuplicateApplication    = errors.New("您已有一個申請記錄")
	ErrApplicationNotFound     = errors.New("申請不存在") // 归属不符时同样返回，不暴露他人记录是否存在
	ErrInvalidState            = errors.New("申請目前的狀態不允許此操作")
	ErrInvalidStatus           = errors.New("無效的申請狀態")
	ErrRejectionReasonRequired = errors.New("拒絕申請時必須填寫拒絕原因")
)

// FieldError 描述单个字段的校验失败
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    error  `json:"-"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// ValidationErrors 汇总一次提交中所有失败的字段
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, fe := range v {
		errs = append(errs, fe)
	}
	return errs
}

// Fields 返回 字段名 -> 错误信息 的映射，便于 handler 输出
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Message
	}
	return out
}
