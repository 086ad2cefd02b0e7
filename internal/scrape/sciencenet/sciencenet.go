package sciencenet

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

// Scraper pulls candidate postings from talent.sciencenet.cn search
// results. Result pages list one opening per row with the hiring unit and
// region inline.
type Scraper struct {
	searchURL string
	hc        *http.Client
	limiter   *scrape.HostLimiter
}

func New(searchURL string, limiter *scrape.HostLimiter) *Scraper {
	return &Scraper{
		searchURL: searchURL,
		hc:        &http.Client{Timeout: 20 * time.Second},
		limiter:   limiter,
	}
}

func (s *Scraper) Name() string { return "sciencenet" }

func (s *Scraper) Fetch(ctx context.Context) (scrape.Result, error) {
	out := scrape.Result{Source: s.Name()}

	if err := s.limiter.WaitURL(ctx, s.searchURL); err != nil {
		return out, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL, nil)
	req.Header.Set("User-Agent", "NeuroJobs/1.0 (+local)")

	res, err := s.hc.Do(req)
	if err != nil {
		return out, fmt.Errorf("sciencenet get search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return out, fmt.Errorf("sciencenet search status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return out, fmt.Errorf("sciencenet parse search html: %w", err)
	}

	seen := map[string]bool{}
	doc.Find(".talentList li, .jobList li, .searchList li").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a[href]").First()
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = "https://talent.sciencenet.cn" + href
		}
		seen[href] = true

		title := scrape.CleanText(a.Text())
		if title == "" {
			return
		}

		unit := scrape.CleanText(li.Find(".unit, .company, .orgName").First().Text())
		loc := scrape.CleanText(li.Find(".address, .area, .location").First().Text())
		desc := scrape.CleanText(li.Find(".intro, .desc, .requirement").First().Text())
		date := scrape.CleanText(li.Find(".time, .date").First().Text())

		out.Candidates = append(out.Candidates, domain.Candidate{
			Date:         normalizeDate(date),
			Unit:         unit,
			Location:     scrape.GuessRegion(loc),
			Position:     title,
			Requirements: desc,
			URL:          href,
			Type:         domain.Category(scrape.GuessCategory(unit)),
			Source:       s.Name(),
		})
	})

	return out, nil
}

// normalizeDate accepts the site's YYYY-MM-DD or YYYY/MM/DD stamps; other
// forms are dropped so ingestion defaults the date instead.
func normalizeDate(raw string) string {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return ""
	}
	return raw
}
