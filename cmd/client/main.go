// Command client is a terminal client for the vero chat server.
//
//	client [-s url] [-session file] <command> [args]
//
// Commands:
//
//	login -u name -p password   log in and keep the session
//	logout                      drop the session
//	whoami                      show the logged-in account
//	list [-n limit]             print recent messages, oldest first
//	send [-t type] [-m mediaId] text...
//	upload-url -t image|voice   request a presigned upload URL
//	purge                       delete the whole history
//	version                     print the server version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MKhiriev/vero/internal/adapter"
	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/models"
)

var errUsage = errors.New("usage: client [-s url] [-session file] login|logout|whoami|list|send|upload-url|purge|version")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "client:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.ServerURL, "s", cfg.Adapter.ServerURL, "Server URL")
	fs.StringVar(&cfg.SessionFile, "session", cfg.SessionFile, "Session file")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	log := logger.NewClientLogger("vero-client", filepath.Join(filepath.Dir(cfg.SessionFile), "client.log"))

	chat, err := adapter.NewHTTPChatAdapter(cfg.Adapter, log)
	if err != nil {
		return err
	}

	sessions := sessionFile(cfg.SessionFile)
	token, err := sessions.Load()
	if err != nil {
		return err
	}
	chat.SetSession(token)

	cmd := &command{chat: chat, sessions: sessions, out: out}
	name, rest := fs.Arg(0), fs.Args()[1:]

	log.Debug().Str("command", name).Msg("running command")

	switch name {
	case "login":
		return cmd.login(ctx, rest)
	case "logout":
		return cmd.logout(ctx)
	case "whoami":
		return cmd.whoami(ctx)
	case "list":
		return cmd.list(ctx, rest)
	case "send":
		return cmd.send(ctx, rest)
	case "upload-url":
		return cmd.uploadURL(ctx, rest)
	case "purge":
		return cmd.purge(ctx)
	case "version":
		return cmd.version(ctx)
	}

	return fmt.Errorf("unknown command %q\n%w", name, errUsage)
}

type command struct {
	chat     adapter.ChatAdapter
	sessions sessionFile
	out      io.Writer
}

func (c *command) login(ctx context.Context, args []string) error {
	var username, password string

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.StringVar(&username, "u", "", "Username")
	fs.StringVar(&password, "p", "", "Password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.chat.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err = c.sessions.Save(c.chat.Session()); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func (c *command) logout(ctx context.Context) error {
	err := c.chat.Logout(ctx)
	if rmErr := c.sessions.Clear(); rmErr != nil {
		return errors.Join(err, rmErr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "logged out")
	return nil
}

func (c *command) whoami(ctx context.Context) error {
	user, err := c.chat.Whoami(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s (%s) id=%s created=%s", user.Username, user.Role, user.ID, user.CreatedAt.Format("2006-01-02"))
	if user.LastLogin != nil {
		fmt.Fprintf(c.out, " last_login=%s", user.LastLogin.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *command) list(ctx context.Context, args []string) error {
	var limit int

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.IntVar(&limit, "n", 0, "Number of messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	messages, err := c.chat.ListMessages(ctx, limit)
	if err != nil {
		return err
	}

	for _, m := range messages {
		fmt.Fprintln(c.out, formatMessage(m))
	}
	return nil
}

func (c *command) send(ctx context.Context, args []string) error {
	var kind, mediaRef string

	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.StringVar(&kind, "t", string(models.KindText), "Message type: text, image or voice")
	fs.StringVar(&mediaRef, "m", "", "Media id from upload-url")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.SendMessageRequest{
		Text: strings.Join(fs.Args(), " "),
		Kind: models.MessageKind(kind),
	}
	if mediaRef != "" {
		req.MediaRef = &mediaRef
	}

	msg, err := c.chat.SendMessage(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, formatMessage(msg))
	return nil
}

func (c *command) uploadURL(ctx context.Context, args []string) error {
	var kind string

	fs := flag.NewFlagSet("upload-url", flag.ContinueOnError)
	fs.StringVar(&kind, "t", string(models.KindImage), "Media type: image or voice")
	if err := fs.Parse(args); err != nil {
		return err
	}

	upload, err := c.chat.RequestUploadURL(ctx, models.MessageKind(kind))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "media id: %s\nupload:   PUT %s\nexpires:  %s\n", upload.MediaRef, upload.UploadURL, upload.ExpiresAt.Format("15:04:05"))
	return nil
}

func (c *command) purge(ctx context.Context) error {
	n, err := c.chat.Purge(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "deleted %d messages\n", n)
	return nil
}

func (c *command) version(ctx context.Context) error {
	v, err := c.chat.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, v)
	return nil
}

func formatMessage(m models.Message) string {
	line := fmt.Sprintf("[%s] %s: %s", m.CreatedAt.Local().Format("2006-01-02 15:04"), m.SenderAlias, m.Text)
	if m.Kind.IsMedia() && m.MediaRef != nil {
		line += fmt.Sprintf(" <%s %s>", m.Kind, *m.MediaRef)
	}
	return line
}
