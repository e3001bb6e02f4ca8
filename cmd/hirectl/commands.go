package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anuj140/hireengine/internal/app"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()

			if err := repository.Migrate(e.db); err != nil {
				return err
			}
			e.log.Info("schema migrated")
			return nil
		},
	}
}

func newSeedPlansCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-plans",
		Short: "Install or update the default plan catalog",
		Long:  `Upserts the free, basic, premium and enterprise plans by name. Existing subscriptions keep pointing at the updated rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				return a.Catalog.Seed(ctx, service.DefaultPlans())
			})
		},
	}
}

func newReconcileCommand() *cobra.Command {
	var (
		recruiter string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-apply plan limits to jobs and team members",
		Long:  `Reconciles one recruiter when --recruiter is given, otherwise every recruiter.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return withApp(ctx, func(ctx context.Context, a *app.App) error {
				if recruiter == "" {
					n, err := a.Reconciler.ReconcileAll(ctx)
					fmt.Fprintf(cmd.OutOrStdout(), "reconciled %d recruiters\n", n)
					return err
				}

				id, err := uuid.Parse(recruiter)
				if err != nil {
					return fmt.Errorf("invalid recruiter id %q: %w", recruiter, err)
				}
				res, err := a.Reconciler.Reconcile(ctx, id)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			})
		},
	}

	cmd.Flags().StringVar(&recruiter, "recruiter", "", "Recruiter id to reconcile")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time to run reconciliation")
	return cmd
}

func newExpireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expire",
		Short: "Expire subscriptions past their end date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				n, err := a.Subscriptions.ExpireDue(ctx, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d subscriptions\n", n)
				return nil
			})
		},
	}
}

func newCreateAdminCommand() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a platform admin account",
		Long:  `Creates an admin. The password is read from the terminal, or from the first line of stdin when it is not a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				admin, err := a.Accounts.CreateAdmin(ctx, service.CreateAdminInput{
					Email:    email,
					Name:     name,
					Password: password,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&name, "name", "", "Admin display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
