// Package notify delivers the daily report mail listing newly merged
// postings. It is a sink: it receives values and sends them, nothing flows
// back into the pipeline.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/domain"
)

type Report struct {
	Date     string
	NewCount int
	Postings []domain.Posting
}

const emailTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; }
  .header { background: linear-gradient(135deg, #667eea, #764ba2); color: white; padding: 20px; text-align: center; border-radius: 5px; }
  .job-item { border: 1px solid #ddd; padding: 15px; margin: 10px 0; border-radius: 5px; background: #f9f9f9; }
  .job-title { color: #2c5aa0; font-size: 18px; margin-bottom: 8px; }
  .job-meta { color: #666; font-size: 14px; }
  .badge { display: inline-block; padding: 2px 8px; border-radius: 3px; background: #28a745; color: white; font-size: 12px; margin-right: 5px; }
  .footer { color: #666; font-size: 12px; }
</style>
</head>
<body>
  <div class="header">
    <h1>🔬 神经科学招聘日报</h1>
    <p>{{.Date}} | 今日发现 {{.NewCount}} 个新岗位</p>
  </div>
  <div class="content">
    <h3>🎯 最新招聘信息</h3>
    {{range .Postings}}
    <div class="job-item">
      <div class="job-title">{{.Position}} - {{.Unit}}</div>
      <div class="job-meta">
        <span class="badge">{{.Location}}</span>
        📅 {{.Date}} | 🔍 {{.Requirements}}
      </div>
      {{if .URL}}<a href="{{.URL}}" target="_blank">查看详情</a>{{end}}
    </div>
    {{end}}
    <hr>
    <p class="footer">
      💡 此邮件由神经科学招聘追踪系统自动发送<br>
      📊 关注领域：超声神经调控、神经电生理、神经调控、脑机接口、神经界面
    </p>
  </div>
</body>
</html>
`

// RenderReport produces the HTML body for the given postings.
func RenderReport(r Report) (string, error) {
	tmpl, err := template.New("report").Parse(emailTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, r); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return body.String(), nil
}

// SendReport mails the report. Callers skip it entirely when there is
// nothing new; an empty posting list is the caller's bug, not handled here.
func SendReport(cfg config.Config, postings []domain.Posting, now time.Time) error {
	password, err := GetSMTPPassword(SMTPKeyringAccount(cfg))
	if err != nil {
		return err
	}

	report := Report{
		Date:     now.Format("2006/01/02"),
		NewCount: len(postings),
		Postings: postings,
	}
	body, err := RenderReport(report)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("🧠 神经科学招聘提醒 - %d个新岗位 (%s)", len(postings), report.Date)

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", cfg.Notify.From)
	fmt.Fprintf(&msg, "To: %s\r\n", cfg.Notify.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", cfg.Notify.Username, password, cfg.Notify.SMTPHost)
	addr := fmt.Sprintf("%s:%d", cfg.Notify.SMTPHost, cfg.Notify.SMTPPort)
	if err := smtp.SendMail(addr, auth, cfg.Notify.From, []string{cfg.Notify.To}, msg.Bytes()); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
