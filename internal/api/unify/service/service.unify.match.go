// Matcher - quyết định hai đơn hàng có thuộc cùng một khách không.
// Hai tầng: định danh cứng (so khớp exact, rẻ, check trước) và
// chấm điểm fuzzy tên/địa chỉ khi không có định danh chung.
package unifysvc

import (
	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
	"github.com/NareeyaChenu/rfm-project/config"
)

// MatchConfig các ngưỡng của Matcher, đọc từ Configuration.
type MatchConfig struct {
	NameStrong     int // điểm tên coi là mạnh
	NameWeak       int // điểm tên coi là yếu
	AddrStrong     int // điểm địa chỉ coi là mạnh
	AddrWeak       int // điểm địa chỉ coi là yếu
	ScoreThreshold int // tổng điểm tối thiểu để match
}

// MatchConfigFrom đọc MatchConfig từ Configuration.
func MatchConfigFrom(cfg *config.Configuration) MatchConfig {
	return MatchConfig{
		NameStrong:     cfg.EngineNameStrong,
		NameWeak:       cfg.EngineNameWeak,
		AddrStrong:     cfg.EngineAddrStrong,
		AddrWeak:       cfg.EngineAddrWeak,
		ScoreThreshold: cfg.EngineScoreThreshold,
	}
}

// Matcher so khớp từng cặp đơn hàng.
type Matcher struct {
	scorer Scorer
	cfg    MatchConfig
}

// NewMatcher tạo Matcher với scorer và ngưỡng đã chọn.
func NewMatcher(scorer Scorer, cfg MatchConfig) *Matcher {
	return &Matcher{scorer: scorer, cfg: cfg}
}

// overlap kiểm tra hai slice có phần tử chung.
func overlap(a []string, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, y := range b {
		if _, ok := set[y]; ok {
			return true
		}
	}
	return false
}

// strongIdentifierMatch tầng 1: bất kỳ định danh cứng nào trùng là đủ.
// Giá trị rỗng không bao giờ được coi là trùng.
func (m *Matcher) strongIdentifierMatch(a, b *ordermodels.SalesOrder) bool {
	if overlap(PhonesOf(a), PhonesOf(b)) {
		return true
	}
	if overlap(EmailsOf(a), EmailsOf(b)) {
		return true
	}
	idsA, idsB := SocialIDsOf(a), SocialIDsOf(b)
	for id := range idsA {
		if _, ok := idsB[id]; ok {
			return true
		}
	}
	if sa, sb := ShopeeUserIDOf(a), ShopeeUserIDOf(b); sa != "" && sa == sb {
		return true
	}
	if a.MemberID != "" && a.MemberID == b.MemberID {
		return true
	}
	if a.ExternMemberID != "" && a.ExternMemberID == b.ExternMemberID {
		return true
	}
	return false
}

// nameSimilarity điểm cao nhất giữa mọi cặp tên ứng viên của hai đơn.
func (m *Matcher) nameSimilarity(a, b *ordermodels.SalesOrder) int {
	best := 0
	for _, na := range BuildNames(a) {
		for _, nb := range BuildNames(b) {
			if s := m.scorer.Score(na, nb); s > best {
				best = s
			}
		}
	}
	return best
}

// addressSimilarity điểm giữa hai chuỗi địa chỉ composite.
func (m *Matcher) addressSimilarity(a, b *ordermodels.SalesOrder) int {
	return m.scorer.Score(BuildAddress(a), BuildAddress(b))
}

// IsSameCustomer trả về true nếu hai đơn thuộc cùng một khách.
//
// Tầng 1: định danh cứng, match là trả về ngay, không tính fuzzy.
// Tầng 2: cộng dồn điểm: tên >= ngưỡng mạnh +3, >= ngưỡng yếu +2;
// địa chỉ >= ngưỡng mạnh +2, >= ngưỡng yếu +1; trùng 4 số cuối sđt +1.
// Cặp (tên mạnh AND địa chỉ mạnh) luôn match bất kể tổng điểm;
// còn lại match khi tổng điểm >= ScoreThreshold.
func (m *Matcher) IsSameCustomer(a, b *ordermodels.SalesOrder) bool {
	if m.strongIdentifierMatch(a, b) {
		return true
	}

	score := 0
	ns := m.nameSimilarity(a, b)
	if ns >= m.cfg.NameStrong {
		score += 3
	} else if ns >= m.cfg.NameWeak {
		score += 2
	}

	ads := m.addressSimilarity(a, b)
	if ads >= m.cfg.AddrStrong {
		score += 2
	} else if ads >= m.cfg.AddrWeak {
		score += 1
	}

	if sharedLast4(PhonesOf(a), PhonesOf(b)) {
		score += 1
	}

	if ns >= m.cfg.NameStrong && ads >= m.cfg.AddrStrong {
		return true
	}
	return score >= m.cfg.ScoreThreshold
}

// sharedLast4 tín hiệu yếu: hai đơn có sđt trùng 4 số cuối
// (chịu được khác biệt format còn sót). Chỉ xét số dài >= 4.
func sharedLast4(phonesA, phonesB []string) bool {
	last4 := func(phones []string) map[string]struct{} {
		out := make(map[string]struct{}, len(phones))
		for _, p := range phones {
			if len(p) >= 4 {
				out[p[len(p)-4:]] = struct{}{}
			}
		}
		return out
	}
	la, lb := last4(phonesA), last4(phonesB)
	for s := range la {
		if _, ok := lb[s]; ok {
			return true
		}
	}
	return false
}
