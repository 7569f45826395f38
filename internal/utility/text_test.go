package utility

import "testing"

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"chuỗi ngắn giữ nguyên", "hello", 10, "hello"},
		{"chuỗi dài bị cắt", "hello world", 5, "hello..."},
		{"tiếng Thái không vỡ ký tự", "สวัสดีครับ", 6, "สวัสดี..."},
		{"maxRunes bằng 0", "abc", 0, ""},
		{"chuỗi rỗng", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateUTF8(tt.input, tt.maxRunes)
			if got != tt.want {
				t.Errorf("TruncateUTF8(%q, %d) = %q, mong muốn %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  123/4   หมู่ 5  ")
	want := "123/4 หมู่ 5"
	if got != want {
		t.Errorf("CollapseWhitespace trả về %q, mong muốn %q", got, want)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"a", "b", "a", "c", "b"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Unique trả về %v, mong muốn [a b c]", got)
	}
}
