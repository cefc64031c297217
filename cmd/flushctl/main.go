package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mailwire/internal/config"
	"mailwire/internal/flush"
	"mailwire/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "flushctl: %v\n", err)
		os.Exit(1)
	}
}

type endpointFlags struct {
	configPath string
	network    string
	addr       string
	timeout    time.Duration
	policy     string
}

func (f *endpointFlags) client() (*flush.Client, error) {
	cfg := config.DefaultDaemonConfig()
	if f.configPath != "" {
		loaded, err := config.LoadDaemonConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.network != "" {
		cfg.Network = f.network
	}
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.timeout > 0 {
		cfg.IPCTimeout = f.timeout
	}
	if f.policy != "" {
		cfg.FlushPolicy = f.policy
	}
	log := logging.ConfigureRuntime("flushctl")
	return flush.NewClient(flush.ClientConfig{
		Network: cfg.Network,
		Addr:    cfg.Addr,
		Timeout: cfg.IPCTimeout,
		Policy:  cfg.FlushPolicy,
	}, log), nil
}

func newRootCmd() *cobra.Command {
	flags := &endpointFlags{}

	root := &cobra.Command{
		Use:           "flushctl",
		Short:         "Query the fast-flush cache daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "daemon TOML config to read the endpoint from")
	pf.StringVar(&flags.network, "network", "", "daemon network (tcp or unix)")
	pf.StringVar(&flags.addr, "addr", "", "daemon address")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-operation IPC timeout")
	pf.StringVar(&flags.policy, "policy", "", "flush policy (all or none)")

	root.AddCommand(
		newAddCmd(flags),
		newSendCmd(flags),
		newPurgeCmd(flags),
	)
	return root
}

func newAddCmd(flags *endpointFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <site> <queue-id>",
		Short: "Record a queue entry waiting for a site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			return report(client.Add(cmd.Context(), args[0], args[1]))
		},
	}
}

func newSendCmd(flags *endpointFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "send <site>",
		Short: "Request delivery of everything queued for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			return report(client.Send(cmd.Context(), args[0]))
		},
	}
}

func newPurgeCmd(flags *endpointFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Evict stale cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			return report(client.Purge(cmd.Context()))
		},
	}
}

func report(status flush.Status) error {
	if status != flush.StatusOK {
		return fmt.Errorf("request %s", status)
	}
	fmt.Println("ok")
	return nil
}
