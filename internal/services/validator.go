package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/securities_account/internal/models"
	"github.com/securities_account/internal/repositories"
	"github.com/securities_account/pkg/utils"
)

const (
	FieldAccountName = "accountName"
	FieldPhoneNumber = "phoneNumber"
	FieldAddress     = "address"

	accountNameMinLen = 3
	accountNameMaxLen = 20
	addressMinLen     = 10
	addressMaxLen     = 200
)

// ApplicationValidator 校验申请字段。除账号名称唯一性需要读取存储外，其余均为纯函数。
type ApplicationValidator struct {
	repo repositories.ApplicationRepository
}

// NewApplicationValidator 创建校验器
func NewApplicationValidator(repo repositories.ApplicationRepository) *ApplicationValidator {
	return &ApplicationValidator{repo: repo}
}

// ValidateAccountName 校验账号名称的格式、长度以及唯一性。
// excludeID 用于更新时排除申请自身。
func (v *ApplicationValidator) ValidateAccountName(ctx context.Context, candidate string, excludeID *int64) (string, error) {
	if !utils.MatchesAccountNameFormat(candidate) {
		return "", &FieldError{Field: FieldAccountName, Kind: ErrFormat,
			Message: "帳號名稱只能包含英文字母、數字、底線、短橫線，且必須以字母或數字開頭"}
	}
	length := utils.RuneLength(candidate)
	if length < accountNameMinLen {
		return "", &FieldError{Field: FieldAccountName, Kind: ErrLength, Message: "帳號名稱至少需要3個字符"}
	}
	if length > accountNameMaxLen {
		return "", &FieldError{Field: FieldAccountName, Kind: ErrLength, Message: "帳號名稱不能超過20個字符"}
	}

	taken, err := v.repo.AccountNameTaken(ctx, candidate, excludeID)
	if err != nil {
		return "", fmt.Errorf("检查账号名称唯一性失败: %w", err)
	}
	if taken {
		return "", &FieldError{Field: FieldAccountName, Kind: ErrUniqueness, Message: "此帳號名稱已被使用，請選擇其他名稱"}
	}
	return candidate, nil
}

// ValidatePhoneNumber 校验台湾手机号码。返回用户原始输入，分隔符只在校验时去除。
func (v *ApplicationValidator) ValidatePhoneNumber(candidate string) (string, error) {
	if !utils.IsTaiwanMobileNumber(candidate) {
		return "", &FieldError{Field: FieldPhoneNumber, Kind: ErrFormat,
			Message: "請輸入有效的台灣手機號碼格式，例如：0912-345-678"}
	}
	return candidate, nil
}

// ValidateAddress 校验地址长度与内容，返回去除首尾空白后的地址
func (v *ApplicationValidator) ValidateAddress(candidate string) (string, error) {
	address := strings.TrimSpace(candidate)
	length := utils.RuneLength(address)
	if length < addressMinLen {
		return "", &FieldError{Field: FieldAddress, Kind: ErrLength, Message: "地址太短，請提供完整的聯絡地址"}
	}
	if length > addressMaxLen {
		return "", &FieldError{Field: FieldAddress, Kind: ErrLength, Message: "地址過長，請簡化至200個字符以內"}
	}
	if !utils.ContainsLocalityKeyword(address) {
		return "", &FieldError{Field: FieldAddress, Kind: ErrContent, Message: "請提供完整的地址資訊，包含縣市、區域、街道門牌"}
	}
	return address, nil
}

// ValidateFields 依次校验三个字段并收集全部字段错误。
// 字段错误以 ValidationErrors 返回；存储读取失败等其他错误直接返回。
func (v *ApplicationValidator) ValidateFields(ctx context.Context, fields models.ApplicationFields, excludeID *int64) (models.ApplicationFields, error) {
	var cleaned models.ApplicationFields
	var errs ValidationErrors

	collect := func(err error) error {
		if fe, ok := err.(*FieldError); ok {
			errs = append(errs, fe)
			return nil
		}
		return err
	}

	accountName, err := v.ValidateAccountName(ctx, fields.AccountName, excludeID)
	if err != nil {
		if err := collect(err); err != nil {
			return cleaned, err
		}
	}
	phone, err := v.ValidatePhoneNumber(fields.PhoneNumber)
	if err != nil {
		_ = collect(err)
	}
	address, err := v.ValidateAddress(fields.Address)
	if err != nil {
		_ = collect(err)
	}

	if len(errs) > 0 {
		return cleaned, errs
	}
	cleaned = models.ApplicationFields{
		AccountName: accountName,
		PhoneNumber: phone,
		Address:     address,
	}
	return cleaned, nil
}
