package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"neurojobs-engine/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "neurojobs"

func GetSMTPPassword(account string) (string, error) {
	if strings.TrimSpace(account) != "" {
		pw, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	return "", errors.New("SMTP password not found in keychain")
}

func SetSMTPPassword(account, password string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, account, password)
}

func DeleteSMTPPassword(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

func SMTPKeyringAccount(cfg config.Config) string {
	return fmt.Sprintf("neurojobs:smtp:%s@%s", cfg.Notify.Username, cfg.Notify.SMTPHost)
}

func IMAPKeyringAccount(cfg config.Config) string {
	return fmt.Sprintf("neurojobs:imap:%s@%s", cfg.Sources.Mailbox.Username, cfg.Sources.Mailbox.IMAPHost)
}

func GetIMAPPassword(account string) (string, error) {
	if strings.TrimSpace(account) != "" {
		pw, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	return "", errors.New("IMAP password not found in keychain")
}
