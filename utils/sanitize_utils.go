package utils

import (
	"regexp"
	"strings"
)

var (
	// 印度手机号：10位数字且以6-9开头
	phoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	// 标准 local@domain.tld 形式，顶级域至少2个字母
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// 仅去除 < > " ' 四个字符，防止后续渲染时的简单注入
	unsafeReplacer = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")
)

// Clean 清洗表单字段：去除首尾空白并剔除 < > " ' 字符
func Clean(value string) string {
	return unsafeReplacer.Replace(strings.TrimSpace(value))
}

// IsValidPhone 校验手机号格式
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidEmail 校验邮箱格式
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
