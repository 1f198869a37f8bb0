package main

import (
	"fmt"
	"strings"

	"github.com/kodewerk/smartchat"
	chatjson "github.com/kodewerk/smartchat/json"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		sessionPath string
		threadID    string
		out         string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a saved thread as HTML",
		Long: `Export one thread of a saved session as a standalone HTML document.
Without --thread the thread that was in focus is exported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := chatjson.Load(sessionPath)
			if err != nil {
				return fmt.Errorf("load session: %w", err)
			}
			if threadID == "" {
				threadID = s.ActiveThreadID
			}
			thread, err := findThread(s, threadID)
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(sessionPath, ".json") + ".html"
			}
			if err := exportThread(thread, s.Locale, out); err != nil {
				return err
			}
			a.log.WithField("path", out).Info("thread exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Thread exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionPath, "session", "", "session file")
	cmd.Flags().StringVar(&threadID, "thread", "", "thread ID (default the thread in focus)")
	cmd.Flags().StringVar(&out, "out", "", "HTML file (default next to the session file)")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

func findThread(s smartchat.Session, id string) (smartchat.Thread, error) {
	for _, t := range s.Threads {
		if t.ID == id {
			return t, nil
		}
	}
	return smartchat.Thread{}, fmt.Errorf("thread %q: %w", id, smartchat.ErrThreadNotFound)
}
