// Package unifysvc - Test hai backend Scorer cùng contract.
package unifysvc

import "testing"

func TestScorer_ChuoiGiongNhau100(t *testing.T) {
	for _, s := range []Scorer{NewStrutilScorer(), NewSequenceScorer()} {
		if got := s.Score("Somchai Jaidee", "Somchai Jaidee"); got != 100 {
			t.Errorf("%T: chuỗi identical phải ra 100, got %d", s, got)
		}
	}
}

func TestScorer_KhongPhanBietHoaThuong(t *testing.T) {
	for _, s := range []Scorer{NewStrutilScorer(), NewSequenceScorer()} {
		if got := s.Score("SOMCHAI", "somchai"); got != 100 {
			t.Errorf("%T: so sánh phải case-insensitive, got %d", s, got)
		}
	}
}

func TestScorer_ChuoiRongRa0(t *testing.T) {
	for _, s := range []Scorer{NewStrutilScorer(), NewSequenceScorer()} {
		if got := s.Score("", "abc"); got != 0 {
			t.Errorf("%T: vế rỗng phải ra 0, got %d", s, got)
		}
		if got := s.Score("abc", ""); got != 0 {
			t.Errorf("%T: vế rỗng phải ra 0, got %d", s, got)
		}
	}
}

func TestScorer_DoiXungVaTrongThang(t *testing.T) {
	pairs := [][2]string{
		{"Somchai Jaidee", "Jaidee Somchai"},
		{"123 Sukhumvit Rd", "123 Sukhumvit Road"},
		{"abc", "xyz"},
	}
	for _, s := range []Scorer{NewStrutilScorer(), NewSequenceScorer()} {
		for _, p := range pairs {
			ab := s.Score(p[0], p[1])
			ba := s.Score(p[1], p[0])
			if ab < 0 || ab > 100 {
				t.Errorf("%T: điểm ngoài thang 0-100: %d", s, ab)
			}
			if ab != ba {
				t.Errorf("%T: Score phải đối xứng, %q/%q: %d vs %d", s, p[0], p[1], ab, ba)
			}
		}
	}
}

func TestSequenceScorer_RatioRatcliffObershelp(t *testing.T) {
	s := NewSequenceScorer()
	// "abcd" vs "abxd": khối "ab" (2) + khối "d" (1) = 3 matched, ratio 2*3/8 = 0.75
	if got := s.Score("abcd", "abxd"); got != 75 {
		t.Errorf("Score(abcd, abxd) = %d, muốn 75", got)
	}
	if got := s.Score("abc", "xyz"); got != 0 {
		t.Errorf("chuỗi không có ký tự chung phải ra 0, got %d", got)
	}
}

func TestNewScorer_ChonBackendTheoTen(t *testing.T) {
	if _, ok := NewScorer("sequence").(*SequenceScorer); !ok {
		t.Error("backend 'sequence' phải trả về SequenceScorer")
	}
	if _, ok := NewScorer("strutil").(*StrutilScorer); !ok {
		t.Error("backend 'strutil' phải trả về StrutilScorer")
	}
	if _, ok := NewScorer("").(*StrutilScorer); !ok {
		t.Error("backend không nhận diện được phải fallback StrutilScorer")
	}
}
