package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage todo configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(c))
	cmd.AddCommand(newConfigHashPasswordCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			writeConfigInfo(w, out.GlobalConfig)
			writeConfigInfo(w, out.LocalConfig)
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}
}

func writeConfigInfo(w io.Writer, info domain.ConfigInfo) {
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
		return
	}
	_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
}

// formatEffectiveConfig writes cfg as TOML. Warnings are not part of the file format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template with default values to stdout.

It does not depend on existing configuration files and works even if they are broken.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates the local configuration file .todo.toml in the current directory.
With --global, creates the global configuration file at ~/.config/todo/config.toml.

Error conditions:
- Target file already exists, --force is not given and overwrite is declined: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			in := usecase.InitConfigInput{Global: global, Force: force}
			out, err := uc.Execute(cmd.Context(), in)
			if errors.Is(err, domain.ErrConfigExists) {
				ok, cerr := resolvePrompter(c, cmd).Confirm(cmd.Context(), "Config file already exists. Overwrite?")
				if cerr != nil || !ok {
					return err
				}
				in.Force = true
				out, err = uc.Execute(cmd.Context(), in)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

// newConfigHashPasswordCommand creates the config hash-password subcommand.
func newConfigHashPasswordCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a password for the [auth] section",
		Long: `Prompt for a password twice and print the password_hash line
to paste into the [auth] section of a config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := resolvePrompter(c, cmd)
			ctx := cmd.Context()

			password, err := p.Password(ctx, "New password:")
			if err != nil {
				return err
			}
			confirm, err := p.Password(ctx, "Confirm password:")
			if err != nil {
				return err
			}
			if password != confirm {
				return domain.ErrPasswordMismatch
			}

			out, err := c.HashPasswordUseCase().Execute(ctx, usecase.HashPasswordInput{Password: password})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "password_hash = %q\n", out.Hash)
			return nil
		},
	}
}
