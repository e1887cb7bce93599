package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/BerylCAtieno/a2ui-agent/internal/a2a"
	"github.com/BerylCAtieno/a2ui-agent/internal/a2ui"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type ProbeClient struct {
	baseURL string
	client  *http.Client
}

func NewProbeClient(baseURL string) *ProbeClient {
	return &ProbeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:10002", "Base URL of the agent")
	testType := flag.String("test", "all", "Test type: all, health, agent-card, send, custom")
	text := flag.String("text", "", "Text to send (for custom test)")
	flag.Parse()

	client := NewProbeClient(*baseURL)

	printHeader("A2UI Agent - Probe")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, client.baseURL, colorReset)

	var ok bool
	switch *testType {
	case "all":
		ok = client.runAll()
	case "health":
		ok = client.probeHealth()
	case "agent-card":
		ok = client.probeAgentCard()
	case "send":
		ok = client.probeSend("hello from probe")
	case "custom":
		if *text == "" {
			printError("Text is required for custom test. Use -text flag")
			os.Exit(1)
		}
		ok = client.probeSend(*text)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, agent-card, send, custom")
		os.Exit(1)
	}

	if !ok {
		os.Exit(1)
	}
}

func (pc *ProbeClient) runAll() bool {
	probes := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", pc.probeHealth},
		{"Agent Card", pc.probeAgentCard},
		{"Message Send", func() bool { return pc.probeSend("hello from probe") }},
		{"Unknown Method", pc.probeUnknownMethod},
	}

	passed, failed := 0, 0
	for _, p := range probes {
		if p.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	return failed == 0
}

func (pc *ProbeClient) get(path string, out any) (int, error) {
	url := pc.baseURL + path
	fmt.Printf("GET %s\n", url)

	resp, err := pc.client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(resp.Body, out)
}

func (pc *ProbeClient) call(req a2a.JSONRPCRequest) (int, *a2a.JSONRPCResponse, error) {
	url := pc.baseURL + a2a.JSONRPCPath
	fmt.Printf("POST %s\n", url)

	body, err := json.Marshal(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	printJSON("Request", body)

	resp, err := pc.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var rpcResp a2a.JSONRPCResponse
	if err := decodeBody(resp.Body, &rpcResp); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, &rpcResp, nil
}

func (pc *ProbeClient) probeHealth() bool {
	printTestHeader("Health Endpoint")

	var health a2a.HealthStatus
	status, err := pc.get(a2a.HealthPath, &health)
	if err != nil {
		printError(err.Error())
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if !health.OK {
		printError("Health reported ok=false")
		return false
	}

	printSuccess(fmt.Sprintf("Healthy at %s (public base URL %s)", health.Time, health.PublicBaseURL))
	return true
}

func (pc *ProbeClient) probeAgentCard() bool {
	printTestHeader("Agent Card Endpoint")

	var card map[string]any
	status, err := pc.get(a2a.AgentCardPath, &card)
	if err != nil {
		printError(err.Error())
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	requiredFields := []string{"protocolVersion", "name", "description", "version", "url", "capabilities", "skills"}
	for _, field := range requiredFields {
		if _, ok := card[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Agent card is valid")
	if raw, err := json.Marshal(card); err == nil {
		printJSON("Response", raw)
	}
	return true
}

func (pc *ProbeClient) probeSend(text string) bool {
	printTestHeader("message/send")
	fmt.Printf("%sText:%s %s\n\n", colorCyan, colorReset, text)

	status, resp, err := pc.call(a2a.JSONRPCRequest{
		JSONRPC: a2a.JSONRPCVersion,
		ID:      jsontext.Value(fmt.Sprintf(`"probe-%d"`, time.Now().Unix())),
		Method:  a2a.MethodMessageSend,
		Params: a2a.MessageParams{
			Message: a2a.Message{
				Kind:  a2a.KindMessage,
				Role:  a2a.RoleUser,
				Parts: []a2a.Part{a2a.TextPart(text)},
			},
		},
	})
	if err != nil {
		printError(err.Error())
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}
	if resp.Error != nil {
		printError(resp.Error.Error())
		return false
	}

	task := resp.Result
	if task == nil || task.Status.Message == nil {
		printError("Response has no task message")
		return false
	}
	if task.Status.State != a2a.StateCompleted {
		printError(fmt.Sprintf("Expected state 'completed', got '%s'", task.Status.State))
		return false
	}

	wantKinds := []string{"surfaceUpdate", "dataModelUpdate", "beginRendering"}
	parts := task.Status.Message.Parts
	if len(parts) != len(wantKinds) {
		printError(fmt.Sprintf("Expected %d parts, got %d", len(wantKinds), len(parts)))
		return false
	}
	for i, part := range parts {
		data, _ := part.Data.(map[string]any)
		if part.MimeType != a2ui.MIMEType || data[wantKinds[i]] == nil {
			printError(fmt.Sprintf("Part %d is not a %s message", i, wantKinds[i]))
			return false
		}
	}

	printSuccess(fmt.Sprintf("Task %s completed with %d A2UI messages", task.ID, len(parts)))
	return true
}

func (pc *ProbeClient) probeUnknownMethod() bool {
	printTestHeader("Unknown Method")

	status, resp, err := pc.call(a2a.JSONRPCRequest{
		JSONRPC: a2a.JSONRPCVersion,
		ID:      jsontext.Value(`1`),
		Method:  "tasks/get",
	})
	if err != nil {
		printError(err.Error())
		return false
	}
	if status != http.StatusNotFound || resp.Error == nil || resp.Error.Code != a2a.CodeMethodNotFound {
		printError(fmt.Sprintf("Expected 404 with code %d, got status %d", a2a.CodeMethodNotFound, status))
		return false
	}

	printSuccess(resp.Error.Message)
	return true
}

func decodeBody(r io.Reader, out any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	return nil
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[PROBE] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(label string, data []byte) {
	v := jsontext.Value(data)
	if err := v.Indent(); err == nil {
		fmt.Printf("%s%s:%s\n%s\n", colorYellow, label, colorReset, v)
	}
}
