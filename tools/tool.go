// Package tools exposes the service's callable surface: named tools
// with map arguments, dispatched through a registry and returning
// formatted text payloads.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrov/flightdesk/airports"
)

// Tool is one callable operation.
type Tool interface {
	// Name returns the unique name of the tool (e.g. "search_flights").
	Name() string

	// Description returns what the tool does and its arguments.
	Description() string

	// Execute runs the tool and returns a text payload. Validation
	// problems are returned as user-facing text; err is reserved for
	// malformed invocations.
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// Registry manages tool registration and dispatch.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Names returns registered tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Execute dispatches a tool call by name.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return tool.Execute(ctx, args)
}

// stringArg extracts a string argument, "" when absent.
func stringArg(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

// intArg extracts an integer argument with a default. JSON decoding
// delivers numbers as float64, so both forms are accepted.
func intArg(args map[string]interface{}, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// codeArg extracts an airport code argument, uppercased.
func codeArg(args map[string]interface{}, key string) string {
	return strings.ToUpper(strings.TrimSpace(stringArg(args, key)))
}

// unknownAirportMessage is the user-facing listing returned for codes
// missing from the reference table; not a hard failure.
func unknownAirportMessage() string {
	return "Airport code not found. Available airports: " + strings.Join(airports.Codes(), ", ")
}

// clampPassengers bounds the passenger count to the supported 1-9.
func clampPassengers(n int) int {
	if n < 1 {
		return 1
	}
	if n > 9 {
		return 9
	}
	return n
}
