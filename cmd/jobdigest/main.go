package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobdigest/internal/config"
	"jobdigest/internal/digest"
	"jobdigest/internal/domain"
	"jobdigest/internal/runlock"
	"jobdigest/internal/scrape"
	"jobdigest/internal/secrets"
)

func main() {
	// Data dir: use env if provided (cron units usually pass one), else local folder.
	defaultDataDir := os.Getenv("JOBDIGEST_DATA_DIR")
	if defaultDataDir == "" {
		defaultDataDir = "."
	}

	var (
		dataDir   = flag.String("data-dir", defaultDataDir, "directory for config, outbox and lock files")
		cfgPath   = flag.String("config", "", "config file (default <data-dir>/config.yml, seeded on first run)")
		printOnly = flag.Bool("print", false, "print the digest HTML to stdout instead of emailing it")
		storeSMTP = flag.Bool("store-smtp-password", false, "read the SMTP password from stdin, store it in the keychain and exit")
		storeIMAP = flag.Bool("store-imap-password", false, "read the IMAP password from stdin, store it in the keychain and exit")
	)
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	path := *cfgPath
	if path == "" {
		var err error
		path, err = config.EnsureUserConfig(*dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", path, err)
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", path)
	}

	if *storeSMTP {
		pw := readPassword("SMTP")
		if err := secrets.SetSMTPPassword(cfg.SMTP.Username, cfg.SMTP.Host, pw); err != nil {
			log.Fatalf("store smtp password: %v", err)
		}
		log.Printf("smtp password stored for %s@%s", cfg.SMTP.Username, cfg.SMTP.Host)
		return
	}
	if *storeIMAP {
		pw := readPassword("IMAP")
		if err := secrets.SetIMAPPassword(cfg.Sources.Email.Username, cfg.Sources.Email.IMAPHost, pw); err != nil {
			log.Fatalf("store imap password: %v", err)
		}
		log.Printf("imap password stored for %s@%s", cfg.Sources.Email.Username, cfg.Sources.Email.IMAPHost)
		return
	}

	release, locked, err := runlock.Acquire(*dataDir)
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Printf("another run holds %s; exiting", runlock.Path(*dataDir))
		return
	}
	defer release()

	run(cfg, *dataDir, *printOnly)
}

// run is one complete collection pass. Nothing in it is fatal: a source that
// fails shrinks the digest, a delivery that fails lands in the outbox.
func run(cfg config.Config, dataDir string, printOnly bool) {
	ctx := context.Background()
	started := time.Now()

	imapPassword := ""
	if cfg.Sources.Email.Enabled {
		pw, err := secrets.IMAPPassword(cfg.Sources.Email.Username, cfg.Sources.Email.IMAPHost)
		if err != nil {
			log.Printf("[email] source disabled: %v", err)
		} else {
			imapPassword = pw
		}
	}

	queries := scrape.BuildQueries(cfg, imapPassword)
	log.Printf("[run] starting %d queries", len(queries))

	raw := scrape.CollectAll(ctx, queries, cfg.App.MaxConcurrent)
	log.Printf("[run] collected %d raw results", len(raw))

	unique := scrape.Dedupe(raw)
	log.Printf("[run] %d unique after dedup", len(unique))

	matches := scrape.FilterRecords(cfg, unique)
	log.Printf("[run] filtered down to %d matching jobs", len(matches))
	reportMatches(matches)

	d, err := digest.NewRenderer(cfg.SMTP.SubjectPrefix).Render(matches, started)
	if err != nil {
		log.Printf("[digest] render failed: %v", err)
		return
	}

	if printOnly {
		fmt.Println(d.HTML)
		return
	}

	deliver(ctx, cfg, dataDir, d, started, len(matches))
}

func reportMatches(matches []domain.JobRecord) {
	if len(matches) == 0 {
		fmt.Println("No matching jobs found today.")
		return
	}
	fmt.Printf("Found %d matching jobs:\n", len(matches))
	for i, m := range matches {
		title := m.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%3d. %s (%s)\n", i+1, title, m.Source)
		if m.Link != "" {
			fmt.Printf("     %s\n", m.Link)
		}
	}
}

func readPassword(label string) string {
	fmt.Fprintf(os.Stderr, "%s password: ", label)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		log.Fatalf("no password on stdin")
	}
	pw := strings.TrimSpace(sc.Text())
	if pw == "" {
		log.Fatalf("password is empty")
	}
	return pw
}
