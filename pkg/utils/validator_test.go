package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesAccountNameFormat(t *testing.T) {
	valid := []string{"abc", "A1", "john_doe", "trader-01", "9lives", "a_b-c"}
	for _, name := range valid {
		assert.True(t, MatchesAccountNameFormat(name), name)
	}

	invalid := []string{"", "_abc", "-abc", "john doe", "王小明", "abc!", "abc\n", "abc.def"}
	for _, name := range invalid {
		assert.False(t, MatchesAccountNameFormat(name), "%q", name)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "0912345678", NormalizePhoneNumber("0912-345-678"))
	assert.Equal(t, "0912345678", NormalizePhoneNumber(" (0912) 345 678 "))
	assert.Equal(t, "0912345678", NormalizePhoneNumber("０９１２３４５６７８"))
	assert.Equal(t, "0912345678", NormalizePhoneNumber("0912\t345\n678"))
}

func TestIsTaiwanMobileNumber(t *testing.T) {
	valid := []string{"0912345678", "0912-345-678", "0912 345 678", "(09)12345678", "０９１２－３４５－６７８"}
	for _, phone := range valid {
		assert.True(t, IsTaiwanMobileNumber(phone), phone)
	}

	invalid := []string{"", "091234567", "09123456789", "0812345678", "+886912345678", "0912.345.678", "09123456ab"}
	for _, phone := range invalid {
		assert.False(t, IsTaiwanMobileNumber(phone), phone)
	}
}

func TestRuneLength(t *testing.T) {
	assert.Equal(t, 0, RuneLength(""))
	assert.Equal(t, 3, RuneLength("abc"))
	assert.Equal(t, 5, RuneLength("台北市信義"))
}

func TestContainsLocalityKeyword(t *testing.T) {
	assert.True(t, ContainsLocalityKeyword("台北市信義區市府路1號"))
	assert.True(t, ContainsLocalityKeyword("新竹縣竹北"))
	assert.True(t, ContainsLocalityKeyword("北京朝阳区"))
	assert.True(t, ContainsLocalityKeyword("民生东路三段100号"))
	assert.False(t, ContainsLocalityKeyword("somewhere over the rainbow"))
	assert.False(t, ContainsLocalityKeyword("台北信義一段十樓"))
}

func TestValidateEmailFormat(t *testing.T) {
	assert.True(t, ValidateEmailFormat(""))
	assert.True(t, ValidateEmailFormat("user@example.com"))
	assert.True(t, ValidateEmailFormat(" user.name+tag@mail.example.tw "))
	assert.False(t, ValidateEmailFormat("user@"))
	assert.False(t, ValidateEmailFormat("user.example.com"))
}

func TestIsNumeric(t *testing.T) {
	assert.False(t, IsNumeric(""))
	assert.True(t, IsNumeric("12345678"))
	assert.False(t, IsNumeric("1234abcd"))
}

func TestUniqueInt64s(t *testing.T) {
	assert.Nil(t, UniqueInt64s(nil))
	assert.Equal(t, []int64{}, UniqueInt64s([]int64{}))
	assert.Equal(t, []int64{3, 1, 2}, UniqueInt64s([]int64{3, 1, 3, 2, 1}))
}
