package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/store"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Browse completed interviews",
}

var candidatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed interviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		interviews, err := s.CandidateRepo().List(ctx, limit)
		if err != nil {
			return fmt.Errorf("list interviews: %w", err)
		}

		if len(interviews) == 0 {
			fmt.Println("No completed interviews found.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-18s  %-6s  %s\n",
			"Session", "Name", "Role", "Score", "Completed")
		fmt.Println(strings.Repeat("─", 100))

		for _, iv := range interviews {
			fmt.Printf("%-36s  %-20s  %-18s  %-6.1f  %s\n",
				iv.SessionID,
				truncate(iv.Name, 20),
				truncate(iv.Role, 18),
				iv.FinalScore,
				iv.CompletedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var candidatesViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "View one interview with per-question detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		iv, err := s.CandidateRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get interview: %w", err)
		}
		if iv == nil {
			return fmt.Errorf("interview %q not found", args[0])
		}

		sep := strings.Repeat("─", 72)

		fmt.Printf("Candidate:  %s\n", iv.Name)
		fmt.Printf("Contact:    %s / %s\n", iv.Email, iv.Phone)
		fmt.Printf("Role:       %s\n", iv.Role)
		fmt.Printf("Score:      %.1f / 10\n", iv.FinalScore)
		fmt.Printf("Completed:  %s\n", iv.CompletedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Println()
		fmt.Println(iv.Summary)

		for _, a := range iv.Answers {
			fmt.Println()
			fmt.Println(sep)
			fmt.Printf("Q%d [%s]  %d/10  (confidence %.2f)\n",
				a.QuestionIndex+1, a.Difficulty, a.Score, a.Confidence)
			fmt.Println(sep)
			fmt.Println(a.QuestionText)
			fmt.Println()
			if strings.TrimSpace(a.AnswerText) == "" {
				fmt.Println("(no answer)")
			} else {
				fmt.Println(a.AnswerText)
			}
			if a.Feedback != "" {
				fmt.Printf("\nFeedback: %s\n", a.Feedback)
			}
		}

		return nil
	},
}

func init() {
	candidatesListCmd.Flags().IntP("limit", "n", 20, "Number of interviews to show")

	candidatesCmd.AddCommand(candidatesListCmd)
	candidatesCmd.AddCommand(candidatesViewCmd)
}
