// Synthesizer - thu một cluster thành một CustomerProfile chuẩn.
// Mọi lựa chọn (tên, địa chỉ, primary phone/email, id) đều deterministic:
// cùng nội dung cluster cho cùng profile bất kể thứ tự thành viên.
package unifysvc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	"github.com/NareeyaChenu/rfm-project/internal/utility"

	"github.com/google/uuid"
)

// noiseKeywords tên chứa các từ này là rác từ kênh bán (brand/artifact),
// bị phạt khi chọn tên hiển thị.
var noiseKeywords = []string{"shopee", "line shopping", "international", "ส่งต่างประเทศ"}

// Synthesizer build profile từ cluster.
type Synthesizer struct {
	providerID string
}

// NewSynthesizer tạo Synthesizer với provider_id gắn vào mỗi profile.
func NewSynthesizer(providerID string) *Synthesizer {
	return &Synthesizer{providerID: providerID}
}

// hasNoise true nếu tên chứa noise keyword (so sánh lowercase).
func hasNoise(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range noiseKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// ChooseBestName chọn tên xuất hiện nhiều nhất; hòa thì ưu tiên tên sạch
// (không noise keyword), rồi tên ngắn hơn, rồi thứ tự từ điển.
func ChooseBestName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	counts := map[string]int{}
	for _, n := range names {
		counts[n]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	cands := make([]string, 0)
	for n, c := range counts {
		if c == maxCount {
			cands = append(cands, n)
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		ni, nj := hasNoise(cands[i]), hasNoise(cands[j])
		if ni != nj {
			return !ni
		}
		if len(cands[i]) != len(cands[j]) {
			return len(cands[i]) < len(cands[j])
		}
		return cands[i] < cands[j]
	})
	return cands[0]
}

// freqChoice chọn giá trị xuất hiện nhiều nhất; hòa thì ưu tiên chuỗi dài hơn
// (địa chỉ đầy đủ hơn), rồi thứ tự từ điển.
func freqChoice(values []string) string {
	if len(values) == 0 {
		return ""
	}
	counts := map[string]int{}
	for _, v := range values {
		counts[v]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	cands := make([]string, 0)
	for v, c := range counts {
		if c == maxCount {
			cands = append(cands, v)
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if len(cands[i]) != len(cands[j]) {
			return len(cands[i]) > len(cands[j])
		}
		return cands[i] < cands[j]
	})
	return cands[0]
}

// rankByFrequency xếp các giá trị theo tần suất giảm dần,
// hòa thì giữ thứ tự gặp lần đầu.
func rankByFrequency(values []string) []string {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}
	ranked := make([]string, 0, len(counts))
	for v := range counts {
		ranked = append(ranked, v)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	return ranked
}

// DeriveCustomerID sinh id ổn định cho cluster, theo thứ tự ưu tiên:
// member_id > extern_member_id > wsis_id trên social ref > uuid5 từ
// thuộc tính định danh đã sort > uuid5 từ danh sách order_id.
// Khi có nhiều ứng viên cùng loại, lấy giá trị nhỏ nhất để kết quả
// không phụ thuộc thứ tự thành viên trong cluster.
func DeriveCustomerID(cluster Cluster) string {
	if id := minNonEmpty(cluster, func(o *ordermodels.SalesOrder) []string {
		return []string{o.MemberID}
	}); id != "" {
		return id
	}
	if id := minNonEmpty(cluster, func(o *ordermodels.SalesOrder) []string {
		return []string{o.ExternMemberID}
	}); id != "" {
		return id
	}
	if id := minNonEmpty(cluster, func(o *ordermodels.SalesOrder) []string {
		out := make([]string, 0, len(o.Social))
		for _, s := range o.Social {
			out = append(out, s.WsisID)
		}
		return out
	}); id != "" {
		return id
	}

	phones := map[string]struct{}{}
	emails := map[string]struct{}{}
	names := map[string]struct{}{}
	addrs := map[string]struct{}{}
	for i := range cluster {
		o := &cluster[i]
		for _, p := range PhonesOf(o) {
			phones[p] = struct{}{}
		}
		for _, e := range EmailsOf(o) {
			emails[e] = struct{}{}
		}
		for _, n := range BuildNames(o) {
			names[strings.ToLower(n)] = struct{}{}
		}
		if a := BuildAddress(o); a != "" {
			addrs[a] = struct{}{}
		}
	}

	parts := append(sortedKeys(phones), sortedKeys(emails)...)
	parts = append(parts, sortedKeys(names)...)
	parts = append(parts, sortedKeys(addrs)...)
	basis := strings.Join(parts, "|")
	if basis == "" {
		orderIDs := make([]string, 0, len(cluster))
		for i := range cluster {
			orderIDs = append(orderIDs, cluster[i].OrderID)
		}
		sort.Strings(orderIDs)
		basis = "orderids:" + strings.Join(orderIDs, "|")
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(basis)).String()
}

// minNonEmpty lấy giá trị nhỏ nhất khác rỗng trích từ mọi đơn trong cluster.
func minNonEmpty(cluster Cluster, extract func(*ordermodels.SalesOrder) []string) string {
	best := ""
	for i := range cluster {
		for _, v := range extract(&cluster[i]) {
			if v != "" && (best == "" || v < best) {
				best = v
			}
		}
	}
	return best
}

// sortedKeys trả về các key của set theo thứ tự tăng dần.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// coerceAmount ép grand_total về float64; thiếu hoặc sai định dạng về 0.
func coerceAmount(v interface{}) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Synthesize build CustomerProfile từ một cluster. Không bao giờ lỗi:
// field thiếu/sai degrade về rỗng hoặc 0, cluster không có dữ liệu liên hệ
// vẫn ra profile (id fallback từ order_id).
func (s *Synthesizer) Synthesize(cluster Cluster) *unifymodels.CustomerProfile {
	profile := &unifymodels.CustomerProfile{
		ID:         DeriveCustomerID(cluster),
		ProviderID: s.providerID,
	}

	// Order summaries: chỉ đơn có order_id. Đơn thiếu order_id vẫn đóng góp
	// vào tên/sđt/nguồn vì nó vẫn là bằng chứng định danh, chỉ không phải
	// giao dịch báo cáo được.
	for i := range cluster {
		o := &cluster[i]
		if o.OrderID == "" {
			continue
		}
		products := make([]unifymodels.ProfileProduct, 0, len(o.Products))
		for _, p := range o.Products {
			products = append(products, unifymodels.ProfileProduct{
				ProductID:   p.ProductID,
				ProductName: p.Name,
				Sku:         p.Sku,
			})
		}
		profile.Orders = append(profile.Orders, unifymodels.ProfileOrder{
			OrderID:    o.OrderID,
			OrderFrom:  o.OrderFrom,
			OrderDate:  o.CreatedDate,
			Products:   products,
			GrandTotal: coerceAmount(o.GrandTotal),
		})
	}

	// Phones / emails xếp theo tần suất, đầu danh sách là primary
	var phoneDigits, emailAll []string
	for i := range cluster {
		phoneDigits = append(phoneDigits, PhonesOf(&cluster[i])...)
		emailAll = append(emailAll, EmailsOf(&cluster[i])...)
	}
	for i, d := range rankByFrequency(phoneDigits) {
		profile.Phones = append(profile.Phones, unifymodels.ProfilePhone{
			PhoneNumber: ToDisplayPhone(d),
			IsPrimary:   i == 0,
		})
	}
	for i, e := range rankByFrequency(emailAll) {
		profile.Emails = append(profile.Emails, unifymodels.ProfileEmail{
			Email:     e,
			IsPrimary: i == 0,
		})
	}

	// Tên & địa chỉ canonical
	var names, addrs []string
	for i := range cluster {
		names = append(names, BuildNames(&cluster[i])...)
		if a := BuildAddress(&cluster[i]); a != "" {
			addrs = append(addrs, a)
		}
	}
	profile.FullName = ChooseBestName(names)
	profile.Address = freqChoice(addrs)

	profile.Sources = collectSources(cluster)
	profile.Tags = collectTags(cluster)
	profile.Notes = collectNotes(cluster)
	profile.Addresses = collectAddresses(cluster)

	return profile
}

// collectSources gom mọi social ref cộng source tổng hợp theo kênh:
// Shopee khi đơn có shopee_user_id, Lazada khi order_from = 12,
// LINE Shopping khi order_from = 21. Dedup theo (platform, social_id),
// giữ lần gặp đầu tiên.
func collectSources(cluster Cluster) []unifymodels.ProfileSource {
	var sources []unifymodels.ProfileSource
	for i := range cluster {
		o := &cluster[i]
		for _, soc := range o.Social {
			sources = append(sources, unifymodels.ProfileSource{
				ChannelID:   o.ChannelID,
				Platform:    soc.Platform,
				ChannelName: soc.ChannelName,
				WsisID:      soc.WsisID,
				SocialName:  soc.SocialName,
				SocialID:    soc.SocialID,
			})
		}
		if o.ShopeeInfo != nil && o.ShopeeInfo.ShopeeUserID != "" {
			sources = append(sources, unifymodels.ProfileSource{
				ChannelID:   o.ChannelID,
				Platform:    "SHOPEE",
				ChannelName: o.ShopeeInfo.ShopeeUserName,
				SocialID:    o.ShopeeInfo.ShopeeUserID,
			})
		}
		// Đơn Lazada/LINE Shopping luôn sinh source theo kênh,
		// kể cả khi payload info thiếu (source rỗng, dedup gộp lại)
		if o.OrderFrom == ordermodels.OrderFromLazada {
			src := unifymodels.ProfileSource{
				ChannelID: o.ChannelID,
				Platform:  "LAZADA",
			}
			if o.LazadaInfo != nil {
				src.ChannelName = o.LazadaInfo.LazadaUserName
				src.SocialID = o.LazadaInfo.LazadaUserID
			}
			sources = append(sources, src)
		}
		if o.OrderFrom == ordermodels.OrderFromLineShopping {
			src := unifymodels.ProfileSource{
				ChannelID: o.ChannelID,
				Platform:  "LINE SHOPPING",
			}
			if o.LineInfo != nil {
				src.ChannelName = o.LineInfo.LineUserName
				src.SocialID = o.LineInfo.LineUserID
			}
			sources = append(sources, src)
		}
	}

	seen := map[string]struct{}{}
	unique := make([]unifymodels.ProfileSource, 0, len(sources))
	for _, src := range sources {
		key := src.Platform + "\x00" + src.SocialID
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, src)
	}
	return unique
}

// collectTags union tag của mọi đơn, dedup giữ thứ tự gặp đầu tiên.
func collectTags(cluster Cluster) []string {
	var tags []string
	for i := range cluster {
		tags = append(tags, cluster[i].Tags...)
	}
	return utility.Unique(tags)
}

// collectNotes union note theo note_id, giữ thứ tự gặp đầu tiên.
// Bản note ghi vào profile được copy và bỏ field note_id.
func collectNotes(cluster Cluster) []map[string]interface{} {
	var notes []map[string]interface{}
	seen := map[string]struct{}{}
	for i := range cluster {
		for _, note := range cluster[i].Notes {
			key := fmt.Sprint(note["note_id"])
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			clean := make(map[string]interface{}, len(note))
			for k, v := range note {
				if k == "note_id" {
					continue
				}
				clean[k] = v
			}
			notes = append(notes, clean)
		}
	}
	return notes
}

// collectAddresses địa chỉ có cấu trúc theo từng đơn,
// dedup theo bộ đầy đủ các sub-field.
func collectAddresses(cluster Cluster) []unifymodels.ProfileAddress {
	var out []unifymodels.ProfileAddress
	seen := map[unifymodels.ProfileAddress]struct{}{}
	for i := range cluster {
		o := &cluster[i]
		addr := unifymodels.ProfileAddress{
			Line1:       strings.TrimSpace(o.ShippingAddress1),
			Line2:       strings.TrimSpace(o.ShippingAddress2),
			Subdistrict: strings.TrimSpace(o.ShippingSubdistrict),
			District:    strings.TrimSpace(o.ShippingDistrict),
			Province:    strings.TrimSpace(o.ShippingProvince),
			Zipcode:     strings.TrimSpace(o.ShippingZipcode),
			Full:        BuildAddress(o),
		}
		if addr.Full == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}
