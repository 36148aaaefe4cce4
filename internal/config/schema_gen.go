//go:build ignore

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// SchemaConfig mirrors config.Config with schema annotations
type SchemaConfig struct {
	Mode     string `json:"mode,omitempty" jsonschema:"enum=real,enum=real_time,enum=real-time,enum=cpu,enum=cpu_time,enum=cpu-time,default=real,description=Time source: wall clock (real) or process CPU time (cpu)"`
	Enabled  bool   `json:"enabled,omitempty" jsonschema:"default=true,description=If false every stopwatch operation is a no-op"`
	LogLevel string `json:"log_level,omitempty" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=warning,enum=error,enum=fatal,enum=panic,default=warn,description=Log level"`
	Output   string `json:"output,omitempty" jsonschema:"minLength=1,default=stdout,description=Where reports are written: stdout\\, stderr or a file path"`
	Runs     int    `json:"runs,omitempty" jsonschema:"minimum=1,default=1,description=How many times the run command executes the timed command"`
	Name     string `json:"name,omitempty" jsonschema:"minLength=1,description=Record name template (Go text/template with sprig functions)"`
}

func main() {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	schema := r.Reflect(&SchemaConfig{})
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.ID = "https://github.com/NikitaCOEUR/stopwatch/internal/config/schema-config"
	schema.Title = "Stopwatch configuration"
	schema.Description = "Configuration for the stopwatch command line tool"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal schema: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("schema.json", append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generated schema.json")
}
