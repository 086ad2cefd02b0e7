package pipeline

import (
	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/scrape"
	"neurojobs-engine/internal/scrape/gaoxiaojob"
	"neurojobs-engine/internal/scrape/mailbox"
	"neurojobs-engine/internal/scrape/sciencenet"
)

func sciencenetFetcher(cfg config.Config, limiter *scrape.HostLimiter) scrape.Fetcher {
	return sciencenet.New(cfg.Sources.Sciencenet.SearchURL, limiter)
}

func gaoxiaojobFetcher(cfg config.Config, limiter *scrape.HostLimiter) scrape.Fetcher {
	return gaoxiaojob.New(cfg.Sources.Gaoxiaojob.ListingURL, limiter)
}

func mailboxFetcher(cfg config.Config, password string) scrape.Fetcher {
	return &mailbox.Fetcher{Cfg: cfg, Password: password}
}
