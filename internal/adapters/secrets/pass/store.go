package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/bnema/nutricoach-cli/internal/ports"
)

// DefaultPrefix namespaces every entry inside the user's password store.
const DefaultPrefix = "nutricoach"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	prefix string
	run    runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}

	return &Store{prefix: prefix, run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := s.entryName(key)
	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", name)
	if err != nil {
		return formatError("put", name, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.entryName(key)
	stdout, stderr, err := s.run(ctx, "", "show", name)
	if err != nil {
		if isNotInStore(stderr) {
			return "", fmt.Errorf("pass get %q: %w", name, domain.ErrSecretNotFound)
		}
		return "", formatError("get", name, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	return stdout, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := s.entryName(key)
	_, stderr, err := s.run(ctx, "", "rm", "-f", name)
	if err != nil {
		if isNotInStore(stderr) {
			return nil
		}
		return formatError("delete", name, err, stderr)
	}

	return nil
}

func (s *Store) entryName(key string) string {
	return path.Join(s.prefix, strings.TrimSpace(key))
}

func isNotInStore(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, name string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, name, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, name, err, stderr)
}
