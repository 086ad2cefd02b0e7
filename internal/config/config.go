package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Pipeline struct {
		IntervalSeconds int `yaml:"interval_seconds"`
		MaxPostings     int `yaml:"max_postings"`
	} `yaml:"pipeline"`

	Keywords struct {
		// Primary terms name the exact research focus; one hit is enough.
		Primary []string `yaml:"primary"`
		// Secondary terms are broader; a candidate needs >= 2 distinct hits.
		Secondary []string `yaml:"secondary"`
		// Weights drive the keyword-frequency and word-cloud reporting.
		Weights map[string]int `yaml:"weights"`
	} `yaml:"keywords"`

	Sources struct {
		Sciencenet struct {
			Enabled   bool   `yaml:"enabled"`
			SearchURL string `yaml:"search_url"`
		} `yaml:"sciencenet"`
		Gaoxiaojob struct {
			Enabled    bool   `yaml:"enabled"`
			ListingURL string `yaml:"listing_url"`
		} `yaml:"gaoxiaojob"`
		Mailbox struct {
			Enabled          bool     `yaml:"enabled"`
			IMAPHost         string   `yaml:"imap_host"`
			IMAPPort         int      `yaml:"imap_port"`
			Username         string   `yaml:"username"`
			Folder           string   `yaml:"folder"`
			SearchSubjectAny []string `yaml:"search_subject_any"`
		} `yaml:"mailbox"`
	} `yaml:"sources"`

	Notify struct {
		Enabled  bool   `yaml:"enabled"`
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort int    `yaml:"smtp_port"`
		Username string `yaml:"username"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"notify"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
