// watch tails a user's todo list from a running server and prints a line
// whenever someone assigns them a new todo or bumps one to the top, the same
// diffing the web client does with native notifications.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dooo/internal/model"
	"dooo/internal/reconcile"
)

func main() {
	server := flag.String("server", "http://localhost:9872", "server base URL")
	userName := flag.String("user", "", "user name to watch")
	orgID := flag.String("org", "", "organization id")
	token := flag.String("token", "", "bearer token (required when the server enforces auth)")
	interval := flag.Duration("interval", 5*time.Second, "poll interval")
	flag.Parse()

	if *userName == "" || *orgID == "" {
		fmt.Fprintln(os.Stderr, "usage: watch -user NAME -org ORG_ID [-server URL] [-token TOKEN]")
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	client := &http.Client{Timeout: 10 * time.Second}

	fetch := func(ctx context.Context) ([]model.Todo, error) {
		q := url.Values{"userName": {*userName}, "organizationId": {*orgID}}
		var todos []model.Todo
		if err := getJSON(ctx, client, *server+"/todos?"+q.Encode(), *token, &todos); err != nil {
			return nil, err
		}
		return todos, nil
	}
	fetchRoster := func(ctx context.Context) ([]model.User, error) {
		q := url.Values{"organizationId": {*orgID}}
		var users []model.User
		if err := getJSON(ctx, client, *server+"/users?"+q.Encode(), *token, &users); err != nil {
			return nil, err
		}
		return users, nil
	}

	p := reconcile.New(reconcile.Config{
		Interval:    *interval,
		CurrentUser: *userName,
		Fetch:       fetch,
		FetchRoster: fetchRoster,
		Notify: func(changes []reconcile.Change) {
			for _, ch := range changes {
				switch ch.Kind {
				case reconcile.NewForeign:
					fmt.Printf("Hey! Someone needs you! %s needs you to: %s\n", ch.Todo.CreatedBy, ch.Todo.Text)
				case reconcile.Bumped:
					fmt.Printf("Hey! Someone needs you! %s moved %q to top priority\n", ch.Todo.CreatedBy, ch.Todo.Text)
				}
			}
		},
		OnRoster: func(users []model.User) {
			slog.Debug("roster refreshed", "users", len(users))
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("watching", "user", *userName, "org", *orgID, "interval", *interval)
	p.Run(ctx)
}

func getJSON(ctx context.Context, client *http.Client, rawURL, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
