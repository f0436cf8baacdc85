package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/nutricoach-cli/internal/config"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

var settingEnvNames = map[domain.SettingKey]string{
	domain.SettingAPIBaseURL:     "NUTRICOACH_API_BASE_URL",
	domain.SettingAPITimeout:     "NUTRICOACH_API_TIMEOUT",
	domain.SettingCaptchaSiteKey: "NUTRICOACH_CAPTCHA_SITE_KEY",
	domain.SettingLogLevel:       "NUTRICOACH_LOG_LEVEL",
	domain.SettingEnvironment:    "NUTRICOACH_ENVIRONMENT",
	domain.SettingStoreBackend:   "NUTRICOACH_STORE_BACKEND",
	domain.SettingStoreDir:       "NUTRICOACH_STORE_DIR",
}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit CLI settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigUnsetCmd(app),
		newConfigPathCmd(app),
	)

	return cmd
}

type settingOutput struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective settings and where each one comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileValues, err := app.settings.Values(cmd.Context())
			if err != nil {
				return err
			}

			settings := make([]settingOutput, 0, len(domain.SettingKeys()))
			for _, key := range domain.SettingKeys() {
				settings = append(settings, settingOutput{
					Key:    string(key),
					Value:  app.cfg.Value(key),
					Source: settingSource(key, app.cfg.EnvFileValues, fileValues),
				})
			}

			if cmd.Flags().Changed("output") {
				return writeOutput(cmd, app.flags.output, settings)
			}

			for _, setting := range settings {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", setting.Key, setting.Value, setting.Source); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func settingSource(key domain.SettingKey, envFileValues map[string]string, fileValues map[domain.SettingKey]string) string {
	if _, ok := os.LookupEnv(settingEnvNames[key]); ok {
		return "env " + settingEnvNames[key]
	}
	if _, ok := envFileValues[settingEnvNames[key]]; ok {
		return ".env " + settingEnvNames[key]
	}
	if _, ok := fileValues[key]; ok {
		return "file"
	}

	return "default"
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a setting to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseSettingKey(args[0])
			if err != nil {
				return err
			}
			if err := config.ValidateSetting(key, args[1]); err != nil {
				return err
			}

			if err := app.settings.Set(cmd.Context(), key, args[1]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, app.settings.Path())
			return err
		},
	}
}

func newConfigUnsetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseSettingKey(args[0])
			if err != nil {
				return err
			}

			if err := app.settings.Unset(cmd.Context(), key); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s in %s\n", key, app.settings.Path())
			return err
		},
	}
}

func newConfigPathCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.settings.Path())
			return err
		},
	}
}
