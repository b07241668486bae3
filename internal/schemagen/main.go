// Generates the JSON schema for the viewscale configuration file.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/viewscale/viewscale/pkg/config"
)

var outFile = flag.String("o", "config.v1beta1.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	r := &jsonschema.Reflector{}

	err := r.AddGoComments("github.com/viewscale/viewscale/pkg/config", ".")
	if err != nil {
		log.Fatalf("add go comments: %v", err)
	}

	jss := r.Reflect(&config.Config{})

	data, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		log.Fatalf("marshal JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, append(data, '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
