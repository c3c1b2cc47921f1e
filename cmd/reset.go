package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the unfinished interview, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		snap, err := s.SessionSnapshotRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if snap == nil {
			fmt.Println("No unfinished interview to discard.")
			return nil
		}

		if !force {
			fmt.Printf("Discard unfinished interview from %s? [y/N] ",
				snap.Timestamp.Local().Format("2006-01-02 15:04"))
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := s.SessionSnapshotRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("Unfinished interview discarded. Completed interviews are kept.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
