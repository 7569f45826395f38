// Package notification - báo cáo email sau mỗi lần chạy gộp khách hàng.
// Không cấu hình SMTP thì bỏ qua, không coi là lỗi.
package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/NareeyaChenu/rfm-project/config"
	"github.com/NareeyaChenu/rfm-project/internal/logger"
	"github.com/NareeyaChenu/rfm-project/internal/notification/channels"
	"github.com/NareeyaChenu/rfm-project/internal/utility"
)

// Độ dài tối đa của nhãn profile trong bảng báo cáo (tính theo rune,
// an toàn với tên/địa chỉ tiếng Thái).
const maxLabelRunes = 40

// RunReport số liệu tổng hợp của một lần chạy gộp.
type RunReport struct {
	RunID        string
	FromDate     string
	ToDate       string
	OrderCount   int
	ClusterCount int
	ProfileCount int
	Duration     time.Duration
	// Nhãn các profile lớn nhất (tên + số đơn) để xem nhanh trong mail
	TopProfiles []string
}

// buildHTML dựng nội dung báo cáo.
func buildHTML(r *RunReport) string {
	var b strings.Builder
	b.WriteString("<h3>Báo cáo gộp khách hàng</h3>")
	b.WriteString("<table border='1' cellpadding='6' cellspacing='0'>")
	fmt.Fprintf(&b, "<tr><td>Run ID</td><td>%s</td></tr>", r.RunID)
	fmt.Fprintf(&b, "<tr><td>Khoảng ngày</td><td>%s .. %s</td></tr>", r.FromDate, r.ToDate)
	fmt.Fprintf(&b, "<tr><td>Số đơn hàng</td><td>%d</td></tr>", r.OrderCount)
	fmt.Fprintf(&b, "<tr><td>Số cluster</td><td>%d</td></tr>", r.ClusterCount)
	fmt.Fprintf(&b, "<tr><td>Số profile</td><td>%d</td></tr>", r.ProfileCount)
	fmt.Fprintf(&b, "<tr><td>Thời gian chạy</td><td>%s</td></tr>", r.Duration.Round(time.Second))
	b.WriteString("</table>")

	if len(r.TopProfiles) > 0 {
		b.WriteString("<h4>Profile nhiều đơn nhất</h4><ul>")
		for _, label := range r.TopProfiles {
			fmt.Fprintf(&b, "<li>%s</li>", utility.TruncateUTF8(label, maxLabelRunes))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// SendRunReport gửi báo cáo qua SMTP trong config. SMTP_HOST hoặc
// REPORT_TO trống thì không gửi.
func SendRunReport(cfg *config.Configuration, report *RunReport) error {
	if cfg.SMTPHost == "" || cfg.ReportTo == "" {
		return nil
	}

	recipients := make([]string, 0)
	for _, addr := range strings.Split(cfg.ReportTo, ",") {
		if a := strings.TrimSpace(addr); a != "" {
			recipients = append(recipients, a)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	sender := &channels.EmailSender{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUsername: cfg.SMTPUsername,
		SMTPPassword: cfg.SMTPPassword,
		FromName:     cfg.ReportName,
		FromEmail:    cfg.ReportFrom,
	}

	subject := fmt.Sprintf("[CRM] Gộp khách hàng %s .. %s: %d profile", report.FromDate, report.ToDate, report.ProfileCount)
	if err := sender.SendHTML(recipients, subject, buildHTML(report)); err != nil {
		return err
	}
	logger.WithModule("unify").Infof("Đã gửi báo cáo run %s tới %d người nhận", report.RunID, len(recipients))
	return nil
}
