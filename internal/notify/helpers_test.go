package notify

import "neurojobs-engine/internal/config"

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Notify.Username = "bot"
	cfg.Notify.SMTPHost = "smtp.example.cn"
	cfg.Sources.Mailbox.Username = "alerts"
	cfg.Sources.Mailbox.IMAPHost = "imap.example.cn"
	return cfg
}
