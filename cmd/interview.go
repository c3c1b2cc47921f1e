package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/evaluator"
	"github.com/abhisek/intervu/internal/intake"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/questiongen"
	"github.com/abhisek/intervu/internal/scoring"
	"github.com/abhisek/intervu/internal/store"
	"github.com/abhisek/intervu/internal/tui"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Start or resume an interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func init() {
	// Persistent so a bare `intervu` run accepts them too.
	rootCmd.PersistentFlags().String("role", "software engineer", "Role the candidate is interviewing for")
	rootCmd.PersistentFlags().String("resume-file", "", "Path to a plain-text resume to prefill the profile")
	rootCmd.PersistentFlags().Bool("offline", false, "Force offline mode (no LLM calls)")
}

func runInterview(cmd *cobra.Command) error {
	ctx := context.Background()

	role, _ := cmd.Flags().GetString("role")
	resumeFile, _ := cmd.Flags().GetString("resume-file")
	offline, _ := cmd.Flags().GetBool("offline")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Build the provider; no credentials means offline mode, which is a
	// first-class way to run, not an error.
	var provider llm.Provider
	if !offline {
		provider, err = llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}
	}
	if provider == nil {
		fmt.Fprintln(os.Stderr, "No LLM credentials found; running in offline mode with templated questions.")
	}

	deps := interview.Deps{
		Snapshots:  st.SessionSnapshotRepo(),
		Candidates: st.CandidateRepo(),
	}
	if provider != nil {
		deps.Generator = questiongen.NewLLMGenerator(provider)
		deps.Evaluator = evaluator.NewLLMEvaluator(provider)
		deps.Summarizer = scoring.NewLLMSummarizer(provider)
	} else {
		deps.Generator = questiongen.NewOfflineGenerator()
		deps.Evaluator = evaluator.NewOfflineEvaluator()
		deps.Summarizer = scoring.NewOfflineSummarizer()
	}

	ctrl := interview.NewController(deps)

	// A marker in the store means a previous run died mid-interview.
	restored := ctrl.ResumeIfPresent(ctx)

	var prefill intake.Contact
	if restored == nil && resumeFile != "" {
		prefill, err = parseResumeFile(ctx, resumeFile, provider)
		if err != nil {
			return err
		}
		ctrl.StartIntake(prefill)
	}

	return tui.Run(tui.New(ctrl, role, prefill, restored))
}

// parseResumeFile extracts contact fields from a plain-text resume. The
// regex pass runs first; when a provider is available, an LLM pass fills
// whatever the regexes missed.
func parseResumeFile(ctx context.Context, path string, provider llm.Provider) (intake.Contact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return intake.Contact{}, fmt.Errorf("read resume: %w", err)
	}
	text := string(raw)

	contact := intake.Parse(text)
	if !contact.Complete() && provider != nil {
		extracted := intake.NewContactExtractor(provider).Extract(ctx, text)
		contact = contact.Merge(extracted)
	}
	return contact, nil
}
