package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animator/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeLib    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the animator SSH server",
	Long: `Start an SSH server that lets users connect and watch animations.

Each SSH connection gets its own session with the animation picker.
The catalog is shared by all sessions, and so are its play counts.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.animator/host_key

Examples:
  animator serve                            # Listen on :23234 with auto-generated key
  animator serve --ssh :2222                # Listen on port 2222
  animator serve --library ./examples       # Offer a directory of files too
  animator serve --db ./catalog.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeLib, "library", "", "Directory of animation files to offer")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	player := loadPlayerConfig()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = player.Catalog.DBPath
	cfg.LibraryDir = flagServeLib
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Player = player

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting animator SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
