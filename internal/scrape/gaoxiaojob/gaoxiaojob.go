package gaoxiaojob

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/scrape"

	"github.com/PuerkitoBio/goquery"
)

// Scraper reads the gaoxiaojob.com neuroscience listing page. The site
// mostly carries university openings, so that is the fallback category when
// the unit name gives nothing away.
type Scraper struct {
	listingURL string
	hc         *http.Client
	limiter    *scrape.HostLimiter
}

func New(listingURL string, limiter *scrape.HostLimiter) *Scraper {
	return &Scraper{
		listingURL: listingURL,
		hc:         &http.Client{Timeout: 20 * time.Second},
		limiter:    limiter,
	}
}

func (s *Scraper) Name() string { return "gaoxiaojob" }

func (s *Scraper) Fetch(ctx context.Context) (scrape.Result, error) {
	out := scrape.Result{Source: s.Name()}

	if err := s.limiter.WaitURL(ctx, s.listingURL); err != nil {
		return out, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, s.listingURL, nil)
	req.Header.Set("User-Agent", "NeuroJobs/1.0 (+local)")

	res, err := s.hc.Do(req)
	if err != nil {
		return out, fmt.Errorf("gaoxiaojob get listing: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return out, fmt.Errorf("gaoxiaojob listing status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return out, fmt.Errorf("gaoxiaojob parse listing html: %w", err)
	}

	seen := map[string]bool{}
	doc.Find(".job-item, .list-item, ul.position-list li").Each(func(_ int, item *goquery.Selection) {
		a := item.Find("a[href]").First()
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = "https://www.gaoxiaojob.com" + href
		}
		seen[href] = true

		title := scrape.CleanText(a.Text())
		if title == "" {
			return
		}

		unit := scrape.CleanText(item.Find(".school, .unit, .company-name").First().Text())
		loc := scrape.CleanText(item.Find(".city, .area, .address").First().Text())
		reqText := scrape.CleanText(item.Find(".major, .requirement, .tags").First().Text())

		// the listing is dominated by universities; only explicit institute
		// names stay research
		cat := scrape.GuessCategory(unit)
		if cat == "research" && !strings.Contains(unit, "研究") && !strings.Contains(unit, "科学院") {
			cat = "university"
		}

		out.Candidates = append(out.Candidates, domain.Candidate{
			Unit:         unit,
			Location:     scrape.GuessRegion(loc),
			Position:     title,
			Requirements: reqText,
			URL:          href,
			Type:         domain.Category(cat),
			Source:       s.Name(),
		})
	})

	return out, nil
}
