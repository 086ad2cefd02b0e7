package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Pipeline.MaxPostings <= 0 {
		errs = append(errs, "pipeline.max_postings must be > 0")
	}
	if cfg.Pipeline.IntervalSeconds <= 0 {
		errs = append(errs, "pipeline.interval_seconds must be > 0")
	}

	if len(cfg.Keywords.Primary) == 0 {
		errs = append(errs, "keywords.primary must have at least 1 term")
	}
	checkTerms := func(name string, terms []string) {
		for i, t := range terms {
			if t == "" {
				errs = append(errs, fmt.Sprintf("%s[%d] cannot be empty", name, i))
			}
		}
	}
	checkTerms("keywords.primary", cfg.Keywords.Primary)
	checkTerms("keywords.secondary", cfg.Keywords.Secondary)

	for term, w := range cfg.Keywords.Weights {
		if term == "" {
			errs = append(errs, "keywords.weights has an empty term")
		}
		if w <= 0 {
			errs = append(errs, fmt.Sprintf("keywords.weights[%q] must be > 0", term))
		}
	}

	if cfg.Sources.Mailbox.Enabled {
		if cfg.Sources.Mailbox.IMAPHost == "" {
			errs = append(errs, "sources.mailbox.imap_host is required when mailbox is enabled")
		}
		if cfg.Sources.Mailbox.IMAPPort == 0 {
			errs = append(errs, "sources.mailbox.imap_port is required when mailbox is enabled")
		}
		if cfg.Sources.Mailbox.Username == "" {
			errs = append(errs, "sources.mailbox.username is required when mailbox is enabled")
		}
	}

	if cfg.Notify.Enabled {
		if cfg.Notify.SMTPHost == "" {
			errs = append(errs, "notify.smtp_host is required when notify is enabled")
		}
		if cfg.Notify.SMTPPort == 0 {
			errs = append(errs, "notify.smtp_port is required when notify is enabled")
		}
		if cfg.Notify.From == "" || cfg.Notify.To == "" {
			errs = append(errs, "notify.from and notify.to are required when notify is enabled")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
