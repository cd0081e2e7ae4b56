package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securities_account/internal/models"
)

func TestValidateAccountName(t *testing.T) {
	env := newTestEnv(t)
	v := env.service.Validator()
	ctx := context.Background()

	name, err := v.ValidateAccountName(ctx, "trader_01", nil)
	require.NoError(t, err)
	assert.Equal(t, "trader_01", name)

	_, err = v.ValidateAccountName(ctx, "ab", nil)
	assert.ErrorIs(t, err, ErrLength)

	_, err = v.ValidateAccountName(ctx, strings.Repeat("a", 21), nil)
	assert.ErrorIs(t, err, ErrLength)

	_, err = v.ValidateAccountName(ctx, strings.Repeat("a", 20), nil)
	assert.NoError(t, err)

	// 格式检查先于长度检查
	_, err = v.ValidateAccountName(ctx, "_a", nil)
	assert.ErrorIs(t, err, ErrFormat)

	for _, bad := range []string{"_test", "-test", ""} {
		_, err = v.ValidateAccountName(ctx, bad, nil)
		assert.ErrorIs(t, err, ErrFormat, "%q", bad)
	}

	name, err = v.ValidateAccountName(ctx, "test_account_001", nil)
	require.NoError(t, err)
	assert.Equal(t, "test_account_001", name)

	_, err = v.ValidateAccountName(ctx, "王小明帳號", nil)
	assert.ErrorIs(t, err, ErrFormat)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, FieldAccountName, fe.Field)
}

func TestValidateAccountName_Uniqueness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner", models.RoleApplicant)

	app, err := env.service.Create(ctx, owner.ID, validFields("taken_name"))
	require.NoError(t, err)

	v := env.service.Validator()
	_, err = v.ValidateAccountName(ctx, "taken_name", nil)
	assert.ErrorIs(t, err, ErrUniqueness)

	// 区分大小写
	_, err = v.ValidateAccountName(ctx, "Taken_Name", nil)
	assert.NoError(t, err)

	// 更新时排除自身
	_, err = v.ValidateAccountName(ctx, "taken_name", &app.ID)
	assert.NoError(t, err)
}

func TestValidatePhoneNumber(t *testing.T) {
	v := NewApplicationValidator(nil)

	phone, err := v.ValidatePhoneNumber("0912-345-678")
	require.NoError(t, err)
	assert.Equal(t, "0912-345-678", phone, "原始输入原样保留")

	_, err = v.ValidatePhoneNumber("０９１２３４５６７８")
	assert.NoError(t, err)

	_, err = v.ValidatePhoneNumber("0912345678")
	assert.NoError(t, err)

	for _, bad := range []string{"1234567890", "0812345678", "091234567", "09123456789"} {
		_, err = v.ValidatePhoneNumber(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}

	_, err = v.ValidatePhoneNumber("")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestValidateAddress(t *testing.T) {
	v := NewApplicationValidator(nil)

	address, err := v.ValidateAddress("  台北市信義區市府路1號  ")
	require.NoError(t, err)
	assert.Equal(t, "台北市信義區市府路1號", address)

	// 按字符计算：9 个汉字不足 10
	_, err = v.ValidateAddress("台北市信義區市府路")
	assert.ErrorIs(t, err, ErrLength)

	_, err = v.ValidateAddress("台北市" + strings.Repeat("信", 198))
	assert.ErrorIs(t, err, ErrLength)

	_, err = v.ValidateAddress("台北市" + strings.Repeat("信", 197))
	assert.NoError(t, err)

	_, err = v.ValidateAddress("Somewhere in the mountains")
	assert.ErrorIs(t, err, ErrContent)

	_, err = v.ValidateAddress("台北")
	assert.ErrorIs(t, err, ErrLength)

	_, err = v.ValidateAddress("台北市")
	assert.ErrorIs(t, err, ErrLength)

	noKeyword := strings.Repeat("a", 50)
	_, err = v.ValidateAddress(noKeyword)
	assert.ErrorIs(t, err, ErrContent)

	_, err = v.ValidateAddress("北京市朝阳区建国路88号")
	assert.NoError(t, err)
}

func TestValidateFields_CollectsAllErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Validator().ValidateFields(context.Background(), models.ApplicationFields{
		AccountName: "x",
		PhoneNumber: "123",
		Address:     "short",
	}, nil)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)

	fields := verrs.Fields()
	assert.Contains(t, fields, FieldAccountName)
	assert.Contains(t, fields, FieldPhoneNumber)
	assert.Contains(t, fields, FieldAddress)

	assert.ErrorIs(t, err, ErrLength)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestValidateFields_EmptyValuesAreFieldErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Validator().ValidateFields(context.Background(), models.ApplicationFields{}, nil)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
}

func TestValidateFields_ReturnsCleanedValues(t *testing.T) {
	env := newTestEnv(t)

	cleaned, err := env.service.Validator().ValidateFields(context.Background(), models.ApplicationFields{
		AccountName: "clean_me",
		PhoneNumber: "0912 345 678",
		Address:     "\t高雄市前鎮區成功二路88號\n",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "clean_me", cleaned.AccountName)
	assert.Equal(t, "0912 345 678", cleaned.PhoneNumber)
	assert.Equal(t, "高雄市前鎮區成功二路88號", cleaned.Address)
}
