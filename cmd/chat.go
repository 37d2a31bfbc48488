package cmd

import (
	"fmt"
	"strings"

	"github.com/mindfulme/mindful/internal/chat"
	"github.com/mindfulme/mindful/internal/llm"
	"github.com/mindfulme/mindful/internal/store"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the wellness assistant a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		gateway := chat.New(provider)
		reply, err := gateway.SendMessage(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(reply.Content)
		return nil
	},
}
