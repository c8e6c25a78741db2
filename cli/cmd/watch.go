/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	pb "github.com/ponyo877/karaokesh/grpc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Shows the live queue in a full-screen view",
	Long: `Shows the connected session's queue in a tview-based screen and keeps it
up to date. Press Enter to play the next video, r to refresh and q or Ctrl+C to exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, err := currentSessionID()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = 2 * time.Second
		}
		if err := runWatchUITview(karaokeClient, sessionID, interval); err != nil {
			fmt.Fprintf(os.Stderr, "Watch UI error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationP("interval", "i", 2*time.Second, "How often to poll the session")
}

func runWatchUITview(client pb.KaraokeServiceClient, sessionID string, interval time.Duration) error {
	app := tview.NewApplication()

	header := tview.NewTextView().
		SetDynamicColors(true)
	queueView := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)
	queueView.SetBorder(true).SetTitle(" Queue ")
	statusLine := tview.NewTextView().
		SetDynamicColors(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 2, 0, false).
		AddItem(queueView, 0, 1, true).
		AddItem(statusLine, 1, 0, false)

	app.SetRoot(flex, true).SetFocus(queueView)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var lastVersion int64 = -1
	refresh := func(force bool) {
		reqCtx, reqCancel := context.WithTimeout(ctx, 5*time.Second)
		defer reqCancel()
		res, err := client.GetSession(reqCtx, &pb.GetSessionRequest{SessionId: sessionID})
		app.QueueUpdateDraw(func() {
			if err != nil {
				statusLine.SetText("[red]" + tview.Escape(status.Convert(err).Message()))
				return
			}
			s := res.GetSession()
			if !force && s.GetVersion() == lastVersion {
				return
			}
			lastVersion = s.GetVersion()
			renderSession(header, queueView, s)
		})
	}

	go func() {
		refresh(true)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh(false)
			}
		}
	}()

	playNext := func() {
		reqCtx, reqCancel := context.WithTimeout(ctx, 5*time.Second)
		defer reqCancel()
		res, err := client.NextVideo(reqCtx, &pb.NextVideoRequest{SessionId: sessionID})
		app.QueueUpdateDraw(func() {
			if err != nil {
				statusLine.SetText("[red]" + tview.Escape(status.Convert(err).Message()))
				return
			}
			statusLine.SetText("[green]" + tview.Escape(formatPlayback(res)))
		})
		refresh(true)
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC, event.Rune() == 'q':
			cancel()
			app.Stop()
			return nil
		case event.Key() == tcell.KeyEnter:
			go playNext()
			return nil
		case event.Rune() == 'r':
			go refresh(true)
			return nil
		}
		return event
	})

	if err := app.Run(); err != nil {
		cancel()
		return err
	}
	return nil
}

func renderSession(header, queueView *tview.TextView, s *pb.Session) {
	b := s.GetBusiness()
	header.SetText(fmt.Sprintf("[yellow]%s[white]  %s\n%d device(s)  last played: %s",
		tview.Escape(b.GetBusinessName()),
		tview.Escape(b.GetSlogan()),
		len(s.GetDevices()),
		orDash(s.GetLastPlayed())))

	var lines []string
	for i, item := range s.GetQueue() {
		lines = append(lines, tview.Escape(formatQueueItem(i+1, item)))
	}
	if len(lines) == 0 {
		lines = append(lines, "[gray]Queue is empty, Enter plays from the house list")
	}
	queueView.SetText(strings.Join(lines, "\n"))
	queueView.ScrollToBeginning()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
