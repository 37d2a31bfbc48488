package cmd

import (
	"fmt"
	"os"

	"github.com/mindfulme/mindful/internal/app"
	"github.com/mindfulme/mindful/internal/chat"
	"github.com/mindfulme/mindful/internal/insights"
	"github.com/mindfulme/mindful/internal/llm"
	"github.com/mindfulme/mindful/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var opts app.Options

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The wellness chat will be unavailable.")
	} else {
		opts.Gateway = chat.New(provider)
		opts.Insights = insights.NewService(provider)
	}

	return app.Run(opts)
}
