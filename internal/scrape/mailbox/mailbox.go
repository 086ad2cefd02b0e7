// Package mailbox ingests job-alert emails over IMAP. Recruitment lists in
// this field mostly arrive as digest mails: subject line carries the
// position, body carries the unit, requirements and a link.
package mailbox

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"regexp"
	"strings"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/scrape"

	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-imap/v2"
)

var urlRe = regexp.MustCompile(`https?://[^\s<>"']+`)

type Fetcher struct {
	Cfg      config.Config
	Password string // looked up from the keychain by the caller
}

func (f *Fetcher) Name() string { return "mailbox" }

func (f *Fetcher) Fetch(ctx context.Context) (scrape.Result, error) {
	out := scrape.Result{Source: f.Name()}
	mb := f.Cfg.Sources.Mailbox

	addr := mb.IMAPHost
	if !strings.Contains(addr, ":") {
		port := mb.IMAPPort
		if port == 0 {
			port = 993
		}
		addr = fmt.Sprintf("%s:%d", addr, port)
	}

	c, err := dialAndLogin(ctx, addr, mb.Username, f.Password)
	if err != nil {
		return out, err
	}
	defer logoutAndClose(c)

	folder := mb.Folder
	if folder == "" {
		folder = "INBOX"
	}
	if _, err := c.Select(folder, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return out, fmt.Errorf("imap select %q: %w", folder, err)
	}

	msgs, err := fetchUnseen(ctx, c, 200)
	if err != nil {
		return out, err
	}

	processed := make([]imap.UID, 0, len(msgs))
	for _, m := range msgs {
		processed = append(processed, m.UID)

		if len(mb.SearchSubjectAny) > 0 && !containsAnyCI(m.Subject, mb.SearchSubjectAny) {
			continue
		}
		if cand, ok := f.candidateFromMessage(m); ok {
			out.Candidates = append(out.Candidates, cand)
		}
	}

	if err := markSeen(c, processed); err != nil {
		// losing the flag only means re-reading the mail next run
		return out, nil
	}
	return out, nil
}

func (f *Fetcher) candidateFromMessage(m Message) (domain.Candidate, bool) {
	body := bodyText(m.RawMessage)
	if m.Subject == "" && body == "" {
		return domain.Candidate{}, false
	}

	// hrefs disappear when HTML is flattened to text, so scan the raw bytes
	link := urlRe.FindString(string(m.RawMessage))
	unit := scrape.CleanText(strings.SplitN(body, "\n", 2)[0])
	if unit == "" {
		unit = m.From
	}

	date := ""
	if !m.Date.IsZero() {
		date = m.Date.Format("2006-01-02")
	}

	return domain.Candidate{
		Date:         date,
		Unit:         unit,
		Location:     scrape.GuessRegion(body),
		Position:     scrape.CleanText(m.Subject),
		Requirements: clip(scrape.CleanText(body), 500),
		URL:          link,
		Type:         domain.Category(scrape.GuessCategory(unit)),
		Source:       f.Name(),
	}, true
}

// bodyText extracts readable text from the raw message, stripping tags from
// HTML bodies.
func bodyText(raw []byte) string {
	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		return ""
	}
	b, err := io.ReadAll(io.LimitReader(msg.Body, 1<<20))
	if err != nil {
		return ""
	}
	body := string(b)

	ct := msg.Header.Get("Content-Type")
	if strings.Contains(strings.ToLower(ct), "text/html") || strings.Contains(body, "<html") {
		if doc, derr := goquery.NewDocumentFromReader(strings.NewReader(body)); derr == nil {
			return doc.Text()
		}
	}
	return body
}

func containsAnyCI(s string, needles []string) bool {
	low := strings.ToLower(s)
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" && strings.Contains(low, n) {
			return true
		}
	}
	return false
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
