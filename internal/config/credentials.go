package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

// KeyringService is the OS keyring entry the password is stored under.
const KeyringService = "ptr"

// ErrNoPassword indicates no password source produced a value and
// interactive prompting was impossible.
var ErrNoPassword = errors.New("no password available")

// ResolvePassword finds the account password, trying in order: the
// password file (testing convenience, first line only), the PTR_PASSWORD
// environment variable, the OS keyring, and finally an interactive no-echo
// prompt when stdin is a terminal.
func ResolvePassword(user, passwordFile string) (string, error) {
	if passwordFile != "" {
		pw, err := readFirstLine(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading password file: %w", err)
		}
		return pw, nil
	}
	if pw := os.Getenv("PTR_PASSWORD"); pw != "" {
		return pw, nil
	}
	if pw, err := keyring.Get(KeyringService, user); err == nil && pw != "" {
		return pw, nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return promptPassword(user)
	}
	return "", fmt.Errorf("%w for user %q", ErrNoPassword, user)
}

// StorePassword saves the password to the OS keyring for later runs.
func StorePassword(user, password string) error {
	if err := keyring.Set(KeyringService, user, password); err != nil {
		return fmt.Errorf("saving password to keyring: %w", err)
	}
	return nil
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("password file is empty")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func promptPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", user)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}
