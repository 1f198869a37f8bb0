package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/kodewerk/smartchat/chat"
	chatjson "github.com/kodewerk/smartchat/json"
	"github.com/spf13/cobra"
)

func newSessionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List saved chat sessions",
		Long: `List the chat sessions saved in the sessions directory with their
number of threads and the title of the thread in focus.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSessions(cmd.OutOrStdout(), a)
		},
	}
}

func listSessions(w io.Writer, a *app) error {
	paths, err := chatjson.List(a.cfg.SessionsDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(w, "No sessions in %s\n", a.cfg.SessionsDir)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, color.New(color.Bold).Sprint("PATH\tTHREADS\tUPDATED\tACTIVE THREAD"))
	now := a.now()
	for _, path := range paths {
		s, err := chatjson.Load(path)
		if err != nil {
			a.log.WithError(err).WithField("path", path).Warn("skipping unreadable session")
			continue
		}
		title, updated := "-", "-"
		for _, t := range s.Threads {
			if t.ID == s.ActiveThreadID {
				title = t.Title
			}
		}
		if len(s.Threads) > 0 {
			latest := s.Threads[0].UpdatedAt
			for _, t := range s.Threads[1:] {
				if t.UpdatedAt.After(latest) {
					latest = t.UpdatedAt
				}
			}
			updated = chat.RelativeLabel(latest, now, s.Locale)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", path, len(s.Threads), updated, title)
	}
	return tw.Flush()
}
