// Package secrets resolves mail passwords. The OS keychain is the home for
// them; environment variables are the fallback for headless machines and CI,
// so cron boxes without a keyring daemon still work.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobdigest"

const (
	envSMTPPassword = "JOBDIGEST_SMTP_PASSWORD"
	envIMAPPassword = "JOBDIGEST_IMAP_PASSWORD"
)

// SMTPPassword returns the delivery password for username at host.
func SMTPPassword(username, host string) (string, error) {
	return lookup(smtpAccount(username, host), envSMTPPassword)
}

// IMAPPassword returns the mailbox password for username at host.
func IMAPPassword(username, host string) (string, error) {
	return lookup(imapAccount(username, host), envIMAPPassword)
}

func SetSMTPPassword(username, host, password string) error {
	return store(smtpAccount(username, host), password)
}

func SetIMAPPassword(username, host, password string) error {
	return store(imapAccount(username, host), password)
}

func lookup(account, envVar string) (string, error) {
	if strings.TrimSpace(account) != "" {
		if pw, err := keyring.Get(KeyringService, account); err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	if pw := strings.TrimSpace(os.Getenv(envVar)); pw != "" {
		return pw, nil
	}
	return "", fmt.Errorf("password for %q not in keychain and $%s is unset", account, envVar)
}

func store(account, password string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("account name is empty; set the username and host in config first")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, account, password)
}

func smtpAccount(username, host string) string {
	if username == "" || host == "" {
		return ""
	}
	return fmt.Sprintf("smtp:%s@%s", username, host)
}

func imapAccount(username, host string) string {
	if username == "" || host == "" {
		return ""
	}
	return fmt.Sprintf("imap:%s@%s", username, host)
}
