package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	accountNamePattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	taiwanMobilePattern  = regexp.MustCompile(`^09[0-9]{8}$`)
	emailPattern         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	addressLocalityWords = []string{
		"市", "縣", "區", "鄉", "鎮", "路", "街", "巷", "號",
		"县", "区", "乡", "镇", "号", // 简体写法
	}
)

// IsNumeric 检查字符串是否只包含数字
func IsNumeric(s string) bool {
	if s == "" {
		return false // 空字符串不视为数字
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateEmailFormat 校验邮箱格式。空字符串不进行格式校验，由业务逻辑决定是否允许为空。
func ValidateEmailFormat(email string) bool {
	trimmedEmail := strings.TrimSpace(email)
	if trimmedEmail == "" {
		return true
	}
	return emailPattern.MatchString(trimmedEmail)
}

// MatchesAccountNameFormat 检查账号名称是否仅由英文字母、数字、底线、短横线组成，且以字母或数字开头
func MatchesAccountNameFormat(name string) bool {
	return accountNamePattern.MatchString(name)
}

// NormalizePhoneNumber 去除空白、短横线和括号，并把全角字符转为半角，仅用于校验
func NormalizePhoneNumber(phone string) string {
	narrowed := width.Narrow.String(phone)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, narrowed)
}

// IsTaiwanMobileNumber 检查号码（去除分隔符后）是否为 09 开头的 10 位台湾手机号码
func IsTaiwanMobileNumber(phone string) bool {
	return taiwanMobilePattern.MatchString(NormalizePhoneNumber(phone))
}

// RuneLength 按字符（而非字节）计算长度
func RuneLength(s string) int {
	return utf8.RuneCountInString(s)
}

// ContainsLocalityKeyword 检查地址是否包含任一县市、区域或街道门牌关键字
func ContainsLocalityKeyword(address string) bool {
	for _, keyword := range addressLocalityWords {
		if strings.Contains(address, keyword) {
			return true
		}
	}
	return false
}
