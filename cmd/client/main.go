package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	username  string
)

func main() {
	root := &cobra.Command{
		Use:   "classchat-client",
		Short: "Polling client for the classchat server",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "server base URL")
	root.PersistentFlags().StringVarP(&username, "user", "u", "", "identity to act as")

	root.AddCommand(
		registerCmd(),
		watchCmd(),
		sendCmd(),
		broadcastCmd(),
		dmCmd(),
		roomsCmd(),
		privacyCmd(),
		adminCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		base: strings.TrimRight(serverURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type statusReply struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Enabled *bool  `json:"enabled"`
	Teacher *bool  `json:"teacher"`
}

type messageItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Room string `json:"room"`
	From string `json:"from"`
	Text string `json:"message"`
	TS   int64  `json:"ts"`
}

type messagesReply struct {
	Messages []messageItem `json:"messages"`
	Error    string        `json:"error"`
}

type roomsReply struct {
	Rooms []string `json:"rooms"`
	Error string   `json:"error"`
}

func (c *apiClient) post(path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) get(path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	resp, err := c.http.Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func printStatus(reply statusReply) error {
	if reply.Error != "" {
		return fmt.Errorf("%s", reply.Error)
	}
	fmt.Println(reply.Status)
	return nil
}

func requireUser() error {
	if username == "" {
		return fmt.Errorf("--user is required")
	}
	return nil
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register the identity with the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			if err := newAPIClient().post("/api/users/register", map[string]string{"username": username}, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	}
}

func printMessages(msgs []messageItem) {
	for _, m := range msgs {
		switch m.Type {
		case "private":
			fmt.Printf("[private] %s\n", m.Text)
		default:
			fmt.Printf("[%s] %s\n", m.Room, m.Text)
		}
	}
}

func watchCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the inbox and print messages as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api := newAPIClient()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			fmt.Printf("watching inbox for %s (every %s)\n", username, interval)
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					var reply messagesReply
					err := api.get("/api/inbox", url.Values{"user": {username}}, &reply)
					if err != nil {
						fmt.Fprintf(os.Stderr, "poll failed: %v\n", err)
						continue
					}
					if reply.Error != "" {
						fmt.Fprintf(os.Stderr, "poll rejected: %s\n", reply.Error)
						continue
					}
					printMessages(reply.Messages)
				}
			}
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "polling interval")
	return cmd
}

func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <room> <message...>",
		Short: "Send a message to a room you belong to",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{
				"sender":  username,
				"room":    args[0],
				"message": strings.Join(args[1:], " "),
			}
			if err := newAPIClient().post("/api/rooms/messages", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	}
}

func broadcastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "broadcast <message...>",
		Short: "Send a message to every room",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{
				"sender":  username,
				"message": strings.Join(args, " "),
			}
			if err := newAPIClient().post("/api/broadcast", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	}
}

func dmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dm <recipient> <message...>",
		Short: "Send a private message to a user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{
				"sender":    username,
				"recipient": args[0],
				"message":   strings.Join(args[1:], " "),
			}
			if err := newAPIClient().post("/api/private/messages", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	}
}

func roomsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List your rooms (or all rooms with --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := newAPIClient()
			var reply roomsReply
			var err error
			if all {
				err = api.get("/api/rooms", nil, &reply)
			} else {
				if err := requireUser(); err != nil {
					return err
				}
				err = api.get("/api/users/rooms", url.Values{"user": {username}}, &reply)
			}
			if err != nil {
				return err
			}
			if reply.Error != "" {
				return fmt.Errorf("%s", reply.Error)
			}
			for _, r := range reply.Rooms {
				fmt.Println(r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every room on the server")
	return cmd
}

func privacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "privacy",
		Short: "Show whether private messaging is enabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			var reply statusReply
			if err := newAPIClient().get("/api/privacy", nil, &reply); err != nil {
				return err
			}
			if reply.Enabled != nil && *reply.Enabled {
				fmt.Println("private messaging is enabled")
			} else {
				fmt.Println("private messaging is disabled")
			}
			return nil
		},
	}
}

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Teacher-only room and privacy management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <room>",
		Short: "Create a new room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{"sender": username, "room_name": args[0]}
			if err := newAPIClient().post("/api/admin/rooms", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <user> <room>",
		Short: "Add a user to a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{"sender": username, "user": args[0], "room": args[1]}
			if err := newAPIClient().post("/api/admin/members/add", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <user> <room>",
		Short: "Remove a user from a room (they return to the default room)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{"sender": username, "user": args[0], "room": args[1]}
			if err := newAPIClient().post("/api/admin/members/remove", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "close <room>",
		Short: "Close a room and move its members to the default room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{"sender": username, "room": args[0]}
			if err := newAPIClient().post("/api/admin/rooms/close", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle-privacy",
		Short: "Flip the global private messaging switch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			var reply statusReply
			body := map[string]string{"sender": username}
			if err := newAPIClient().post("/api/admin/privacy/toggle", body, &reply); err != nil {
				return err
			}
			return printStatus(reply)
		},
	})

	return cmd
}
