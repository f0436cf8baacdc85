package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/spf13/cobra"
)

// runCall executes one API call behind the spinner and prints its result.
func runCall[T any](cmd *cobra.Command, app *app, label string, call func(context.Context, *api.Services) (T, error)) error {
	svc, err := app.services()
	if err != nil {
		return err
	}

	var result T
	err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		var callErr error
		result, callErr = call(ctx, svc)
		return callErr
	})
	if err != nil {
		return err
	}

	return writeOutput(cmd, app.flags.output, result)
}

// runAction is runCall for calls without a response payload.
func runAction(cmd *cobra.Command, app *app, label, done string, call func(context.Context, *api.Services) error) error {
	svc, err := app.services()
	if err != nil {
		return err
	}

	if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		return call(ctx, svc)
	}); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), done)
	return err
}

func parseID(name, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: must be a number", name, raw)
	}

	return id, nil
}

func addListFlags(cmd *cobra.Command, q *api.ListQuery) {
	cmd.Flags().IntVar(&q.Page, "page", 0, "Page number (1-based)")
	cmd.Flags().IntVar(&q.PageSize, "page-size", 0, "Items per page")
	cmd.Flags().StringVar(&q.Search, "search", "", "Search term")
	cmd.Flags().StringVar(&q.Sort, "sort", "", "Sort expression")
}

// decodeData reads a JSON request body given inline, as @file, or "-" for stdin.
func decodeData(cmd *cobra.Command, raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var data []byte
	switch {
	case raw == "-":
		read, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read request body from stdin: %w", err)
		}
		data = read
	case strings.HasPrefix(raw, "@"):
		read, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return fmt.Errorf("read request body file: %w", err)
		}
		data = read
	default:
		data = []byte(raw)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	return nil
}

const dataFlagUsage = `Request body as JSON, "@file.json", or "-" for stdin`
