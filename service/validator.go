package service

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"

	"expense-tracker/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// 校验错误信息
const (
	MsgRequired       = "This field is required."
	MsgNotString      = "This field must be a string."
	MsgAmountInvalid  = "Amount must be a valid number."
	MsgAmountNegative = "Amount must be non-negative."
	MsgAmountTooLarge = "Amount must not exceed 9999999999.99."
	MsgDateFormat     = "Date must be in YYYY-MM-DD format."
	MsgTypeInvalid    = "Type must be either 'expense' or 'income'."
)

var (
	errAmountInvalid  = errors.New(MsgAmountInvalid)
	errAmountNegative = errors.New(MsgAmountNegative)
	errAmountTooLarge = errors.New(MsgAmountTooLarge)
)

// validator.Validate 并发安全，全局共享
var validate = validator.New()

// requiredFields 创建时必填的字段
var requiredFields = []string{models.FieldTitle, models.FieldAmount, models.FieldDate, models.FieldCategory}

// ValidateExpense 校验收支记录请求体，返回 字段 -> 错误信息，空表示通过
// partial 为 true 时（用于更新）跳过必填检查，只校验已提供字段的格式
func ValidateExpense(payload map[string]interface{}, partial bool) map[string]string {
	errs := make(map[string]string)

	if !partial {
		for _, key := range requiredFields {
			if isBlank(payload, key) {
				errs[key] = MsgRequired
			}
		}
	}

	for _, key := range []string{models.FieldTitle, models.FieldCategory} {
		v, ok := payload[key]
		if !ok {
			continue
		}
		switch v.(type) {
		case nil:
			errs[key] = MsgRequired
		case string:
		default:
			errs[key] = MsgNotString
		}
	}

	if v, ok := payload[models.FieldAmount]; ok {
		if _, err := ParseAmount(v); err != nil {
			errs[models.FieldAmount] = err.Error()
		}
	}

	if v, ok := payload[models.FieldDate]; ok {
		if s, isStr := v.(string); !isStr || validate.Var(s, "required,datetime=2006-01-02") != nil {
			errs[models.FieldDate] = MsgDateFormat
		}
	}

	if v, ok := payload[models.FieldType]; ok {
		if s, isStr := v.(string); !isStr || validate.Var(s, "oneof=expense income") != nil {
			errs[models.FieldType] = MsgTypeInvalid
		}
	}

	return errs
}

// isBlank 字段缺失、为 null 或为空白字符串
func isBlank(payload map[string]interface{}, key string) bool {
	v, ok := payload[key]
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// MaxAmount 金额列 DECIMAL(12,2) 可存储的最大值
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ParseAmount 解析金额，接受 JSON 数字或十进制数字字符串，必须非负且不超过 MaxAmount
func ParseAmount(v interface{}) (decimal.Decimal, error) {
	var amount decimal.Decimal
	switch n := v.(type) {
	case json.Number:
		parsed, err := parseDecimal(n.String())
		if err != nil {
			return decimal.Zero, errAmountInvalid
		}
		amount = parsed
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, errAmountInvalid
		}
		amount = decimal.NewFromFloat(n)
	case int:
		amount = decimal.NewFromInt(int64(n))
	case int64:
		amount = decimal.NewFromInt(n)
	case string:
		parsed, err := parseDecimal(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, errAmountInvalid
		}
		amount = parsed
	default:
		return decimal.Zero, errAmountInvalid
	}

	if amount.IsNegative() {
		return decimal.Zero, errAmountNegative
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, errAmountTooLarge
	}
	return amount, nil
}

// parseDecimal 只接受十进制写法（可带指数），数字之间允许单个下划线分隔
// 十六进制、inf、nan 均视为非法
func parseDecimal(s string) (decimal.Decimal, error) {
	if strings.Contains(s, "_") {
		if !digitGroups.MatchString(s) {
			return decimal.Zero, errAmountInvalid
		}
		return decimal.NewFromFormattedString(s, underscore)
	}
	return decimal.NewFromString(s)
}

var underscore = regexp.MustCompile(`_`)

// digitGroups 下划线两侧必须都是数字
var digitGroups = regexp.MustCompile(`^[+-]?(\d+(_\d+)*)?(\.(\d+(_\d+)*)?)?([eE][+-]?\d+(_\d+)*)?$`)
