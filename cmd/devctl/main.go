// Command devctl is a terminal client for the DevConnector API.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"devconnector/internal/client/api"
	"devconnector/internal/client/session"
	"devconnector/internal/client/state"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiURL    string
	tokenFile string
	timeout   time.Duration

	sess *session.Session
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "devctl",
	Short: "Terminal client for the DevConnector API",
	Long: `devctl registers, logs in and works with the post feed of a
DevConnector server. The session token is kept in --token-file between runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := session.Open(
			api.New(api.Config{BaseURL: apiURL, Timeout: timeout}),
			state.FileTokenStore{Path: tokenFile},
		)
		if err != nil {
			return err
		}
		sess = s
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if sess != nil {
			sess.Close()
		}
	},
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "devconnector", "token")
}

func defaultAPIURL() string {
	if v := os.Getenv("DEVCTL_API"); v != "" {
		return v
	}
	return "http://localhost:5000/api"
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "API base URL (or set DEVCTL_API)")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", defaultTokenFile(), "Where the session token is stored")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")

	registerCmd.Flags().String("name", "", "Display name (required)")
	registerCmd.Flags().String("email", "", "Email address (required)")
	registerCmd.Flags().String("password", "", "Password, 6 or more characters (required)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().String("email", "", "Email address (required)")
	loginCmd.Flags().String("password", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsDeleteCmd)
	postsCmd.AddCommand(postsLikeCmd)
	postsCmd.AddCommand(postsUnlikeCmd)
	postsCmd.AddCommand(postsCommentCmd)

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

// printAlerts writes the alerts raised by the last command.
func printAlerts(cmd *cobra.Command) {
	for _, a := range sess.Store.State().Alerts {
		mark := "✓"
		if a.AlertType == session.AlertDanger {
			mark = "✗"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, a.Msg)
	}
}
