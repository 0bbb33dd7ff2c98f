package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lilt-audio/lilt/internal/authz"
	"github.com/lilt-audio/lilt/internal/core"
)

var authYes bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage music access",
	Long:  `Commands for inspecting and changing the music access decision.`,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the music access status",
	Long:  `Shows the current music access status and when it was decided.`,
	RunE:  runAuthStatus,
}

var authGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Request music access",
	Long: `Asks for music access and records the answer.

If access has already been decided the stored answer is shown unchanged;
run 'lilt auth revoke' first to decide again.`,
	RunE: runAuthGrant,
}

var authRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Forget the music access decision",
	Long:  `Removes the stored decision, returning the status to not-determined.`,
	RunE:  runAuthRevoke,
}

func init() {
	authGrantCmd.Flags().BoolVarP(&authYes, "yes", "y", false, "grant without prompting")
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authGrantCmd)
	authCmd.AddCommand(authRevokeCmd)
	rootCmd.AddCommand(authCmd)
}

func authzManager() (*authz.Manager, error) {
	storage, err := authz.NewStorage("")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize decision storage: %w", err)
	}
	return authz.NewManager(storage, cfg.Authorization.Restricted), nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	mgr, err := authzManager()
	if err != nil {
		return err
	}

	status := mgr.Status()
	decision, err := mgr.Decision()
	if err != nil && Verbose() {
		fmt.Fprintf(os.Stderr, "decision file unreadable: %v\n", err)
	}

	if JSONOutput() {
		output := map[string]interface{}{
			"status":  status.String(),
			"granted": status.Granted(),
		}
		if msg := status.Message(); msg != "" {
			output["message"] = msg
		}
		if decision != nil {
			output["decided_at"] = decision.DecidedAt
		}
		return json.NewEncoder(os.Stdout).Encode(output)
	}

	fmt.Printf("Music access: %s\n", status)
	if msg := status.Message(); msg != "" {
		fmt.Println(msg)
	}
	if decision != nil {
		fmt.Printf("Decided: %s\n", humanize.Time(decision.DecidedAt))
	}
	if status == core.AuthNotDetermined {
		fmt.Println("Run 'lilt auth grant' to decide.")
	}

	return nil
}

func runAuthGrant(cmd *cobra.Command, args []string) error {
	mgr, err := authzManager()
	if err != nil {
		return err
	}

	if current := mgr.Status(); current != core.AuthNotDetermined {
		if JSONOutput() {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"status":  current.String(),
				"granted": current.Granted(),
				"changed": false,
			})
		}
		fmt.Printf("Music access already decided: %s\n", current)
		if current != core.AuthAuthorized {
			fmt.Println("Run 'lilt auth revoke' to decide again.")
		}
		return nil
	}

	granted := authYes
	if !authYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("not a terminal; pass --yes to grant access non-interactively")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Allow lilt to access your music?").
					Affirmative("Allow").
					Negative("Deny").
					Value(&granted),
			),
		)
		// Cancelling the form leaves the decision unmade
		if err := form.Run(); err != nil {
			return fmt.Errorf("prompt cancelled: %v", err)
		}
	}

	status, err := mgr.Request(func() bool { return granted })
	if err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"status":  status.String(),
			"granted": status.Granted(),
			"changed": true,
		})
	}

	if status.Granted() {
		fmt.Println("Music access granted.")
	} else {
		fmt.Println("Music access denied.")
	}
	return nil
}

func runAuthRevoke(cmd *cobra.Command, args []string) error {
	mgr, err := authzManager()
	if err != nil {
		return err
	}

	if err := mgr.Reset(); err != nil {
		return fmt.Errorf("failed to remove decision: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": core.AuthNotDetermined.String(),
		})
	}

	fmt.Println("Music access decision removed.")
	return nil
}
