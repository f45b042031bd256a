// Package email turns job-alert mails sitting in an IMAP mailbox into job
// records. Only unseen alerts from the recent past are read, and they are
// fetched with peek so the mailbox state never changes; running the digest
// twice in a row sees the same alerts twice.
package email

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

type Config struct {
	Host        string
	Port        int    // 0 means 993
	Username    string
	Password    string
	Mailbox     string // empty means INBOX
	MaxMessages int    // cap per invocation, 0 means 50
}

// Source reads job postings out of alert mails instead of a results page.
// The term argument plays the same role a search box does elsewhere: only
// mails whose subject contains it are parsed. An empty term takes every
// unseen alert.
type Source struct {
	cfg Config
}

func New(cfg Config) *Source {
	return &Source{cfg: cfg}
}

func (s *Source) Name() string { return "Email" }

func (s *Source) Search(ctx context.Context, term string) ([]domain.JobRecord, error) {
	port := s.cfg.Port
	if port == 0 {
		port = 993
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, port)

	c, err := dialAndLogin(ctx, addr, s.cfg.Host, s.cfg.Username, s.cfg.Password)
	if err != nil {
		return nil, err
	}
	defer logoutAndClose(c)

	if err := selectMailbox(c, s.cfg.Mailbox); err != nil {
		return nil, err
	}

	msgs, err := fetchUnseen(ctx, c, s.cfg.MaxMessages)
	if err != nil {
		return nil, err
	}

	var out []domain.JobRecord
	for _, m := range msgs {
		subject, _, htmlPart := parseMessage(m.raw, m.subject)
		if term != "" && !strings.Contains(strings.ToLower(subject), strings.ToLower(term)) {
			continue
		}
		if htmlPart == "" {
			continue
		}

		jobs, err := parseAlertHTML(htmlPart)
		if err != nil {
			log.Printf("[email] parse alert %q: %v", subject, err)
			continue
		}
		for _, j := range jobs {
			out = append(out, domain.JobRecord{
				Title:    j.Title,
				Company:  j.Company,
				Location: j.Location,
				Link:     j.URL,
				Source:   "Email",
				Snippet:  util.CombineText(subject, j.Company, j.Location),
			})
		}
	}
	return out, nil
}
