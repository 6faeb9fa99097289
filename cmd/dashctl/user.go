package main

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/onabhani/SimpleDashboard/internal/auth"
	"github.com/onabhani/SimpleDashboard/internal/repository"
	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage dashboard users",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
		roles    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user that can sign in to the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := newUser(email, password, name, roles)
			if err != nil {
				return err
			}

			return withRepo(cmd.Context(), func(repo *repository.Repository) error {
				id, err := repo.CreateUser(cmd.Context(), &u)
				if errors.Is(err, repository.ErrEmailTaken) {
					return fmt.Errorf("a user with email %s already exists", u.Email)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s) with roles %s\n", id, u.Email, strings.Join(u.Roles, ", "))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "sign-in email (required)")
	cmd.Flags().StringVar(&password, "password", "", "sign-in password (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name, defaults to the email's local part")
	cmd.Flags().StringSliceVar(&roles, "role", []string{auth.RoleEmployee}, "role to grant, repeatable")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// newUser validates the flags and builds the user to insert.
func newUser(email, password, name string, roles []string) (model.User, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return model.User{}, fmt.Errorf("invalid email %q", email)
	}
	if len(roles) == 0 {
		return model.User{}, errors.New("at least one role is required")
	}
	for _, r := range roles {
		if !auth.KnownRole(r) {
			return model.User{}, fmt.Errorf("unknown role %q", r)
		}
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	email = strings.ToLower(addr.Address)
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return model.User{
		Email:        email,
		DisplayName:  name,
		PasswordHash: hash,
		Roles:        roles,
	}, nil
}
