package terminal

import "fmt"

// ResultKind describes what a submitted line resolved to.
type ResultKind int

const (
	// ResultEmpty means the input was blank; nothing is shown.
	ResultEmpty ResultKind = iota
	// ResultOutput carries command text for an output line.
	ResultOutput
	// ResultError carries the unknown-command message for an error line.
	ResultError
	// ResultClear asks the caller to empty the transcript.
	ResultClear
)

// String returns the name used in logs and on the wire.
func (k ResultKind) String() string {
	switch k {
	case ResultEmpty:
		return "empty"
	case ResultOutput:
		return "output"
	case ResultError:
		return "error"
	case ResultClear:
		return "clear"
	default:
		return fmt.Sprintf("ResultKind(%d)", k)
	}
}

// Result is the outcome of executing one line.
type Result struct {
	Kind    ResultKind
	Command CommandName // set for ResultOutput and ResultClear
	Text    string
}

// NotFoundMessage is the text of the error line for an unknown key.
func NotFoundMessage(key string) string {
	return fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", key)
}

// Processor resolves raw input against a Registry.
type Processor struct {
	registry *Registry
}

// NewProcessor returns a processor over the given registry.
func NewProcessor(r *Registry) *Processor {
	return &Processor{registry: r}
}

// Registry returns the underlying registry.
func (p *Processor) Registry() *Registry {
	return p.registry
}

// Execute trims and lower-cases raw, then runs the matching command.
// Lookups are total: every input yields a Result, never an error.
func (p *Processor) Execute(raw string) Result {
	key := normalize(raw)
	if key == "" {
		return Result{Kind: ResultEmpty}
	}

	cmd, ok := p.registry.Lookup(key)
	if !ok {
		return Result{Kind: ResultError, Text: NotFoundMessage(key)}
	}

	text := cmd.Run()
	if cmd.Clears {
		return Result{Kind: ResultClear, Command: cmd.Name}
	}
	if text == "" {
		return Result{Kind: ResultEmpty, Command: cmd.Name}
	}
	return Result{Kind: ResultOutput, Command: cmd.Name, Text: text}
}
