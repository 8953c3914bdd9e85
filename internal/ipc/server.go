package ipc

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"strings"

	"weekwatch/internal/cli"
	"weekwatch/internal/config"
)

// SetupCommunication creates and starts listening on the Unix domain
// socket. configPath is re-read when a reload command arrives.
func SetupCommunication(cfg *config.Config, configPath string) error {
	socketPath := cfg.Socket()

	// Remove stale socket from a previous run
	os.Remove(socketPath)

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket: %w", err)
	}

	if err := os.Chmod(socketPath, 0600); err != nil {
		log.Printf("Warning: couldn't set socket permissions: %v", err)
	}

	go handleConnections(cfg, configPath, listener)
	return nil
}

// handleConnections accepts incoming socket connections.
func handleConnections(cfg *config.Config, configPath string, listener net.Listener) {
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			slog.Debug("Socket accept error, stopping listener", "error", err)
			return
		}

		go HandleConnection(cfg, configPath, conn)
	}
}

// HandleConnection processes commands from a single socket connection.
// Every response ends with an END line.
func HandleConnection(cfg *config.Config, configPath string, conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		action := strings.TrimSpace(parts[0])
		slog.Debug("Socket command received", "action", action)

		switch action {
		case "status":
			conn.Write([]byte(cli.GetStatusResponse(cfg)))
		case "info":
			conn.Write([]byte(cli.GetInfoResponse(cfg)))
		case "check":
			if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
				conn.Write([]byte("ERROR: Invalid format. Use 'check:schedule[:time]'\nEND\n"))
				continue
			}
			payload := strings.TrimSpace(parts[1])
			name, rawTime := payload, ""
			if i := strings.Index(payload, ":"); i != -1 {
				name = strings.TrimSpace(payload[:i])
				rawTime = strings.TrimSpace(payload[i+1:])
			}
			conn.Write([]byte(cli.GetCheckResponse(name, rawTime)))
		case "reload":
			conn.Write([]byte("OK: Reload request received\nEND\n"))
			go cli.ProcessReloadRequest(cfg, configPath)
		default:
			conn.Write([]byte("ERROR: Unknown action\nEND\n"))
		}
	}
}

// SendSocketMessage sends a command to a running daemon's socket and
// returns the response up to the END marker.
func SendSocketMessage(socketPath, action, payload string) (string, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return "", fmt.Errorf("failed to connect to socket: %w", err)
	}
	defer conn.Close()

	message := action
	if payload != "" {
		message += ":" + payload
	}
	message += "\n"

	if _, err := conn.Write([]byte(message)); err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	var response strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if line == "END" {
			break
		}
		response.WriteString(line)
		response.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return response.String(), nil
}
