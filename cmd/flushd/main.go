package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"mailwire/internal/config"
	"mailwire/internal/flush"
	"mailwire/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to flushd TOML config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "flushd: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.DefaultDaemonConfig()
	if configPath != "" {
		loaded, err := config.LoadDaemonConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	log := logging.ConfigureRuntime(cfg.Name)

	ln, err := net.Listen(cfg.Network, cfg.Addr)
	if err != nil {
		return err
	}
	log.Info().
		Str("network", cfg.Network).
		Str("addr", ln.Addr().String()).
		Str("policy", cfg.FlushPolicy).
		Msg("flushd listening")

	srv := flush.NewServer(flush.NewCache(cfg.Retention), cfg.IPCTimeout, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		_ = srv.Close()
	}()

	return srv.Serve(ln)
}
