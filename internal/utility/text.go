package utility

import "strings"

// TruncateUTF8 cắt chuỗi theo số ký tự (rune), không cắt giữa một ký tự UTF-8.
// Nếu chuỗi bị cắt thì thêm "..." vào cuối.
func TruncateUTF8(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// CollapseWhitespace gộp các khoảng trắng liên tiếp thành một dấu cách và trim hai đầu
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
