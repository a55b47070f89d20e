package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytbackup/internal/notifications"
)

func newNotifyCommand(ctx *commandContext) *cobra.Command {
	notifyCmd := &cobra.Command{
		Use:   "notify",
		Short: "Inspect and send notifications",
	}

	notifyCmd.AddCommand(newNotifyEventsCommand(ctx))
	notifyCmd.AddCommand(newNotifyTestCommand(ctx))
	notifyCmd.AddCommand(newNotifySendCommand(ctx))

	return notifyCmd
}

func newNotifyEventsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List notification events and whether they fire",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(notifications.Events()))
			for _, event := range notifications.Events() {
				name := event.String()
				rows = append(rows, []string{
					name,
					yesNo(cfg.Notifications.Events[name]),
					yesNo(cfg.EventEnabled(name)),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Event", "Enabled", "Sends"}, rows))
			if !cfg.Notifications.Enabled {
				fmt.Fprintln(out, "Notifications are globally disabled (notifications.enabled = false)")
			}
			return nil
		},
	}
}

func newNotifyTestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a test notification to every configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			notifier, err := ctx.notifier()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			reached, err := notifier.Test(cfg)
			switch {
			case errors.Is(err, notifications.ErrNoBackends):
				fmt.Fprintln(out, "Notification not sent: add apprise_urls to the [notifications] section")
				return err
			case err != nil && reached > 0:
				fmt.Fprintf(out, "Test notification sent to %d of %d backend(s)\n", reached, len(cfg.Notifications.AppriseURLs))
				return err
			case err != nil:
				return err
			}
			fmt.Fprintf(out, "Test notification sent to %d backend(s)\n", reached)
			return nil
		},
	}
}

func newNotifySendCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "send <event> [key=value ...]",
		Short: "Send one event notification through the configured switches",
		Long: "Send one event notification. The global and per-event switches apply, " +
			"so a disabled event prints nothing and sends nothing.\n\n" +
			"Keys: channel_name, channel_id, video_title, video_id, error_type, " +
			"videos_downloaded, total_size_mb, duration_minutes, video_count.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			event, err := notifications.ParseEvent(args[0])
			if err != nil {
				return err
			}
			payload, err := parsePayload(args[1:])
			if err != nil {
				return err
			}
			notifier, err := ctx.notifier()
			if err != nil {
				return err
			}
			if err := notifier.Publish(cfg, event, payload); err != nil {
				return fmt.Errorf("%s: %w", event, err)
			}
			if !cfg.EventEnabled(event.String()) {
				fmt.Fprintf(cmd.OutOrStdout(), "Event %s is disabled; nothing sent\n", event)
			}
			return nil
		},
	}
}

func parsePayload(args []string) (notifications.Payload, error) {
	payload := make(notifications.Payload, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", arg)
		}
		payload[key] = value
	}
	return payload, nil
}
