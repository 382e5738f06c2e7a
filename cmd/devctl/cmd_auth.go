package main

import (
	"fmt"

	"devconnector/internal/models"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE:  runWhoami,
}

func runRegister(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	ctx, cancel := commandContext(cmd)
	defer cancel()

	err := sess.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	printAlerts(cmd)
	if err != nil {
		return fmt.Errorf("register failed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered as %s\n", sess.Store.State().Auth.User.Name)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	ctx, cancel := commandContext(cmd)
	defer cancel()

	err := sess.Login(ctx, models.LoginRequest{Email: email, Password: password})
	printAlerts(cmd)
	if err != nil {
		return fmt.Errorf("login failed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", sess.Store.State().Auth.User.Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := sess.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if err := sess.LoadUser(ctx); err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	u := sess.Store.State().Auth.User
	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\n", u.Name, u.Email, u.ID)
	return nil
}
