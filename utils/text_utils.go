package utils

import (
	"strings"
	"unicode/utf8"
)

// DeduplicateSlice 去重字符串切片，保留首次出现的顺序，忽略空白值
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(input))

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// IndexOf 返回元素在切片中的索引，如果不存在则返回-1
func IndexOf(slice []string, element string) int {
	for i, e := range slice {
		if e == element {
			return i
		}
	}
	return -1
}

// ToggleValue 不存在则追加，存在则移除；连续调用两次恢复原状
func ToggleValue(slice []string, value string) []string {
	if i := IndexOf(slice, value); i >= 0 {
		out := make([]string, 0, len(slice)-1)
		out = append(out, slice[:i]...)
		return append(out, slice[i+1:]...)
	}
	out := make([]string, 0, len(slice)+1)
	out = append(out, slice...)
	return append(out, value)
}

// Initials 头像占位符文字：取前两个单词的首字母，只有一个单词时取前两个字符
func Initials(name string) string {
	parts := strings.Split(name, " ")
	if len(parts) >= 2 && parts[0] != "" && parts[1] != "" {
		a, _ := utf8.DecodeRuneInString(parts[0])
		b, _ := utf8.DecodeRuneInString(parts[1])
		return strings.ToUpper(string([]rune{a, b}))
	}
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// AvatarColors 头像背景色，按名字首字符取模
var AvatarColors = []string{"#3b82f6", "#22c55e", "#a855f7", "#ec4899", "#6366f1", "#eab308", "#ef4444"}

// AvatarColor 同一个名字总是得到同一个颜色
func AvatarColor(name string) string {
	if name == "" {
		return AvatarColors[0]
	}
	return AvatarColors[int(name[0])%len(AvatarColors)]
}

// JoinOrDefault 用", "连接，为空时返回默认值
func JoinOrDefault(values []string, def string) string {
	if len(values) == 0 {
		return def
	}
	return strings.Join(values, ", ")
}

// OrDefault 空字符串时返回默认值
func OrDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
