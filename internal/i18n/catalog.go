// Package i18n resolves message keys to localized text. The supported locale
// set is fixed (English, Japanese, Chinese) with English as the default and
// the fallback for missing translations.
package i18n

import "golang.org/x/text/language"

// Locale identifies one of the supported languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
	LocaleZH Locale = "zh"

	DefaultLocale = LocaleEN
)

var supported = []language.Tag{
	language.English, // default / fallback
	language.Japanese,
	language.Chinese,
}

var matcher = language.NewMatcher(supported)

var messages = map[Locale]map[string]string{
	LocaleEN: {
		"auth.register.success":       "User registered successfully",
		"error.validation.error":      "Validation failed",
		"error.user.already.exists":   "Username is already taken",
		"error.authentication.failed": "Invalid username or password",
		"error.internal.server.error": "An internal error occurred",
		"menu.user.management":        "User Management",
		"menu.system.settings":        "System Settings",
		"menu.sales.management":       "Sales Management",
		"menu.customer.management":    "Customer Management",
		"menu.reports":                "Reports",
		"menu.profile":                "Profile",
		"menu.settings":               "Settings",
	},
	LocaleJA: {
		"auth.register.success":       "ユーザー登録が完了しました",
		"error.validation.error":      "入力内容に誤りがあります",
		"error.user.already.exists":   "このユーザー名は既に使用されています",
		"error.authentication.failed": "ユーザー名またはパスワードが正しくありません",
		"error.internal.server.error": "内部エラーが発生しました",
		"menu.user.management":        "ユーザー管理",
		"menu.system.settings":        "システム設定",
		"menu.sales.management":       "売上管理",
		"menu.customer.management":    "顧客管理",
		"menu.reports":                "レポート",
		"menu.profile":                "プロフィール",
		"menu.settings":               "設定",
	},
	LocaleZH: {
		"auth.register.success":       "用户注册成功",
		"error.validation.error":      "输入内容有误",
		"error.user.already.exists":   "用户名已被使用",
		"error.authentication.failed": "用户名或密码不正确",
		"error.internal.server.error": "发生内部错误",
		"menu.user.management":        "用户管理",
		"menu.system.settings":        "系统设置",
		"menu.sales.management":       "销售管理",
		"menu.customer.management":    "客户管理",
		"menu.reports":                "报表",
		"menu.profile":                "个人资料",
		"menu.settings":               "设置",
	},
}

// Resolve returns the message for key in the given locale, falling back to
// English and finally to the key itself so a missing translation never
// breaks a response.
func Resolve(key string, locale Locale) string {
	if msg, ok := messages[locale][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// ParseAcceptLanguage negotiates a supported locale from an Accept-Language
// header value. Empty or unparseable input yields the default locale.
func ParseAcceptLanguage(header string) Locale {
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, _ := matcher.Match(tags...)
	switch supported[index] {
	case language.Japanese:
		return LocaleJA
	case language.Chinese:
		return LocaleZH
	default:
		return LocaleEN
	}
}

// ParseLocale maps an explicit locale string (the lang query parameter) to a
// supported locale, reporting whether it was recognized.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleEN, LocaleJA, LocaleZH:
		return Locale(s), true
	default:
		return DefaultLocale, false
	}
}
