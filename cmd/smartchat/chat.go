package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kodewerk/smartchat"
	bt "github.com/kodewerk/smartchat/bubbletea"
	"github.com/kodewerk/smartchat/chat"
	"github.com/kodewerk/smartchat/goldmark"
	chatjson "github.com/kodewerk/smartchat/json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newChatCmd(a *app) *cobra.Command {
	var (
		model       string
		sessionPath string
		exportPath  string
	)
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the chat",
		Long: `Open the chat in a full-screen terminal UI.

Replies are generated locally and revealed as a stream. The session is saved
after every reply, to --session when given or to a new file in the sessions
directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if model == "" {
				model = a.cfg.Model
			}
			modelID, err := smartchat.ParseModelID(model)
			if err != nil {
				return err
			}
			store, path, err := openStore(a, a.locale(cmd), modelID, sessionPath)
			if err != nil {
				return err
			}

			save := func(s smartchat.Session) error {
				return chatjson.Save(path, s)
			}
			m := bt.New(store, bt.RevealReply(a.cfg.Chat.Pacing.Stream()), smartchat.DefaultTheme(),
				bt.WithClock(a.now),
				bt.WithSaver(save),
			)
			a.log.WithField("session", path).Info("chat started")
			if err := bt.Run(cmd.Context(), m); err != nil {
				return fmt.Errorf("TUI: %w", err)
			}

			// A reply interrupted by quitting is kept as far as it got.
			store.Stop()
			if err := save(store.Session()); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Session saved to %s\n", path)

			if exportPath != "" {
				if err := exportThread(store.Active(), store.Locale(), exportPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Thread exported to %s\n", exportPath)
			}
			return nil
		},
	}
	cmd.Flags().String("locale", "", "language of the chat: de or en")
	cmd.Flags().StringVar(&model, "model", "", "model profile: gpt4o, claude-sonnet or llama")
	cmd.Flags().StringVar(&sessionPath, "session", "", "session file to resume and save")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the active thread as HTML to this file on exit")
	return cmd
}

// openStore restores the session at sessionPath, or starts a new one saved
// in the sessions directory. A new session starts with modelID.
func openStore(a *app, locale smartchat.Locale, modelID smartchat.ModelID, sessionPath string) (*chat.Store, string, error) {
	opts := []chat.Option{chat.WithLogger(a.log), chat.WithClock(a.now)}
	if sessionPath != "" {
		session, err := chatjson.Load(sessionPath)
		switch {
		case err == nil:
			a.log.WithFields(logrus.Fields{"session": sessionPath, "threads": len(session.Threads)}).Info("session restored")
			return chat.NewStore(session.Locale, append(opts, chat.WithSession(session))...), sessionPath, nil
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, "", fmt.Errorf("load session: %w", err)
		}
	} else {
		sessionPath = filepath.Join(a.cfg.SessionsDir, "session-"+a.now().Format("20060102-150405")+".json")
	}
	store := chat.NewStore(locale, opts...)
	if err := store.SelectModel(modelID); err != nil {
		return nil, "", err
	}
	return store, sessionPath, nil
}

func exportThread(thread smartchat.Thread, locale smartchat.Locale, path string) error {
	doc, err := goldmark.ExportHTML(thread, locale)
	if err != nil {
		return fmt.Errorf("export thread: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export thread: %w", err)
		}
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("export thread: %w", err)
	}
	return nil
}
