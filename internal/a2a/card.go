package a2a

const ProtocolVersion = "0.3.0"

// AgentCard is the capability descriptor served at
// /.well-known/agent-card.json.
type AgentCard struct {
	ProtocolVersion    string            `json:"protocolVersion"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Version            string            `json:"version"`
	URL                string            `json:"url"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []AgentSkill      `json:"skills"`
}

type AgentCapabilities struct {
	PushNotifications bool `json:"pushNotifications"`
}

type AgentSkill struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// NewAgentCard describes this agent with its JSON-RPC endpoint at rpcURL.
func NewAgentCard(rpcURL string) AgentCard {
	return AgentCard{
		ProtocolVersion: ProtocolVersion,
		Name:            "A2UI Go Agent (Stub)",
		Description:     "Minimal A2A JSON-RPC agent that returns A2UI v0.8 messages.",
		Version:         "0.1.0",
		URL:             rpcURL,
		Capabilities: AgentCapabilities{
			PushNotifications: false,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []AgentSkill{
			{ID: "a2ui", Name: "A2UI", Tags: []string{"a2ui"}},
		},
	}
}
