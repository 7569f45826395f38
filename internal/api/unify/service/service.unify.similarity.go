// Scorer - backend tính độ tương đồng chuỗi cho tier fuzzy.
// Chọn một lần lúc khởi động, inject vào Matcher; không thay đổi runtime.
package unifysvc

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Scorer chấm độ tương đồng hai chuỗi theo thang 0-100.
// Chuỗi rỗng ở bất kỳ vế nào cho 0.
type Scorer interface {
	Score(a, b string) int
}

// StrutilScorer backend chính, dùng Sorensen-Dice trên bigram:
// chịu được đảo thứ tự từ và sai chính tả nhẹ, phù hợp tên/địa chỉ Thái.
type StrutilScorer struct {
	metric *metrics.SorensenDice
}

// NewStrutilScorer tạo StrutilScorer mặc định.
func NewStrutilScorer() *StrutilScorer {
	m := metrics.NewSorensenDice()
	m.CaseSensitive = false
	m.NgramSize = 2
	return &StrutilScorer{metric: m}
}

// Score trả về similarity 0-100.
func (s *StrutilScorer) Score(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return int(strutil.Similarity(a, b, s.metric) * 100)
}

// SequenceScorer backend dự phòng, thuần thuật toán: longest-matching-block
// kiểu Ratcliff/Obershelp, cùng contract với StrutilScorer.
type SequenceScorer struct{}

// NewSequenceScorer tạo SequenceScorer.
func NewSequenceScorer() *SequenceScorer {
	return &SequenceScorer{}
}

// Score trả về similarity 0-100.
func (s *SequenceScorer) Score(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	matched := matchingBlocks(ra, rb)
	ratio := 2.0 * float64(matched) / float64(total)
	return int(ratio*100 + 0.5)
}

// matchingBlocks đếm tổng số rune khớp theo đệ quy quanh khối chung dài nhất.
func matchingBlocks(a, b []rune) int {
	al, bl, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	matched := size
	matched += matchingBlocks(a[:al], b[:bl])
	matched += matchingBlocks(a[al+size:], b[bl+size:])
	return matched
}

// longestMatch tìm khối con chung dài nhất giữa a và b.
func longestMatch(a, b []rune) (bestA, bestB, bestSize int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// j2len[j] = độ dài khối kết thúc tại a[i-1], b[j-1]
	j2len := make(map[int]int)
	for i := range a {
		newJ2len := make(map[int]int)
		for j := range b {
			if a[i] == b[j] {
				k := j2len[j-1] + 1
				newJ2len[j] = k
				if k > bestSize {
					bestA = i - k + 1
					bestB = j - k + 1
					bestSize = k
				}
			}
		}
		j2len = newJ2len
	}
	return bestA, bestB, bestSize
}

// NewScorer chọn backend theo tên cấu hình: "sequence" dùng backend thuần,
// còn lại mặc định strutil.
func NewScorer(backend string) Scorer {
	if strings.EqualFold(backend, "sequence") {
		return NewSequenceScorer()
	}
	return NewStrutilScorer()
}
