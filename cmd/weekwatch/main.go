package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weekwatch/internal/cli"
	"weekwatch/internal/config"
	"weekwatch/internal/ipc"
	"weekwatch/internal/state"
	"weekwatch/internal/watch"
	"weekwatch/internal/web"
	"weekwatch/internal/weekrange"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "Path to the configuration file")
	daemonFlag := flag.Bool("daemon", false, "Run as daemon (for systemd service)")
	statusFlag := flag.Bool("status", false, "Show runtime status (schedule activity, transitions)")
	infoFlag := flag.Bool("info", false, "Show configuration info (schedules, ranges)")
	checkName := flag.String("check", "", "Check whether the named schedule is open")
	atTime := flag.String("at", "", "RFC 3339 instant for -check and -match (default: now)")
	matchSpec := flag.String("match", "", "Test an instant against a range expression, e.g. 'Mon 09:00 - 18:00'")
	reloadFlag := flag.Bool("reload", false, "Ask a running daemon to reload its configuration")
	versionFlag := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *versionFlag {
		fmt.Printf("weekwatch v%s\n", version)
		return
	}

	// -match never touches the daemon; it parses and tests locally.
	if *matchSpec != "" {
		runMatch(*matchSpec, *atTime)
		return
	}

	if *reloadFlag {
		response, err := ipc.SendSocketMessage(socketPath(*configPath), "reload", "")
		if err != nil {
			log.Fatalf("Failed to reach weekwatch daemon: %v", err)
		}
		fmt.Print(response)
		return
	}

	if *checkName != "" {
		payload := *checkName
		if *atTime != "" {
			payload += ":" + *atTime
		}
		if response, err := ipc.SendSocketMessage(socketPath(*configPath), "check", payload); err == nil {
			fmt.Print(response)
			return
		}
		// Daemon not running; evaluate locally from the config file.
		loadLocalSchedules(*configPath)
		fmt.Print(cli.GetCheckResponse(*checkName, *atTime))
		return
	}

	if *statusFlag || *infoFlag || flag.NFlag() == 0 || onlyConfigFlag() {
		action := "status"
		if *infoFlag {
			action = "info"
		}
		if response, err := ipc.SendSocketMessage(socketPath(*configPath), action, ""); err == nil {
			fmt.Print(response)
			return
		}

		// Socket not available, show static information from the config.
		cfg := loadLocalSchedules(*configPath)
		fmt.Println("(Service not running - showing configuration only)")
		if *infoFlag {
			fmt.Print(cli.GetInfoResponse(cfg))
		} else {
			fmt.Print(cli.GetStatusResponse(cfg))
		}
		return
	}

	if !*daemonFlag {
		log.Fatal("No matching command. Use -h for help, or -daemon to start the daemon.")
	}

	runDaemon(*configPath)
}

// onlyConfigFlag reports whether -config was the only flag given, which
// still means "show me the status".
func onlyConfigFlag() bool {
	if flag.NFlag() != 1 {
		return false
	}
	only := true
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			only = false
		}
	})
	return only
}

// socketPath resolves the daemon socket, preferring the config file
// when it is readable.
func socketPath(configPath string) string {
	if cfg, err := config.Load(configPath); err == nil {
		return cfg.Socket()
	}
	return config.DefaultSocketPath
}

// loadLocalSchedules loads and validates the config and installs its
// schedules for local, daemon-less evaluation.
func loadLocalSchedules(configPath string) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	scheds, err := watch.BuildSchedules(cfg)
	if err != nil {
		log.Fatalf("Failed to build schedules: %v", err)
	}
	watch.SetSchedules(scheds)
	return cfg
}

// runMatch parses a range expression and reports whether an instant
// falls inside it.
func runMatch(expr, rawTime string) {
	set, err := weekrange.ParseSet(expr)
	if err != nil {
		log.Fatalf("Invalid range expression: %v", err)
	}

	at := time.Now()
	if rawTime != "" {
		parsed, err := time.Parse(time.RFC3339, rawTime)
		if err != nil {
			log.Fatalf("Invalid time %q: %v", rawTime, err)
		}
		at = parsed
	}

	if matched, ok := set.FirstMatch(at); ok {
		fmt.Printf("MATCH: %s is inside %s\n", at.Format("2006-01-02 15:04:05"), matched.String())
	} else {
		fmt.Printf("NO MATCH: %s is outside %s\n", at.Format("2006-01-02 15:04:05"), set.String())
	}
}

// runDaemon starts the watcher loop, the IPC socket, and optionally the
// HTTP API, and blocks until SIGINT or SIGTERM.
func runDaemon(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	config.SetupLogging(cfg)

	log.Println("Starting weekwatch daemon...")

	scheds, err := watch.BuildSchedules(cfg)
	if err != nil {
		log.Fatalf("Failed to build schedules: %v", err)
	}
	watch.SetSchedules(scheds)
	state.SetStartedAt(time.Now())

	if err := ipc.SetupCommunication(cfg, configPath); err != nil {
		log.Fatalf("Failed to setup IPC: %v", err)
	}

	stop := make(chan struct{})

	if cfg.ListenAddr != "" {
		go web.StartServer(cfg, stop)
	}

	go watch.Run(cfg, stop)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Weekwatch daemon started with %d schedules", len(scheds))

	sig := <-sigChan
	log.Printf("Received signal %v, shutting down...", sig)
	close(stop)
	os.Remove(cfg.Socket())
}
