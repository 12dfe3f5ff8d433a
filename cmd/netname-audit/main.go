package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mosaic-eda/netname/internal/fabric"
	"github.com/mosaic-eda/netname/internal/manifest"
	"github.com/mosaic-eda/netname/internal/policy"
)

func main() {
	policyDir := flag.String("policies", "policies", "directory holding .rego naming rules")
	fromManifest := flag.String("manifest", "", "audit an existing manifest JSON instead of building one")
	flag.Parse()

	args := flag.Args()
	if *fromManifest == "" && len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: netname-audit [--policies dir] (<fabric.json|fabric.yaml> | --manifest manifest.json)")
		os.Exit(1)
	}

	var tables manifest.Tables
	if *fromManifest != "" {
		data, err := os.ReadFile(*fromManifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading manifest: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &tables); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing manifest: %v\n", err)
			os.Exit(1)
		}
	} else {
		desc, err := fabric.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading fabric description: %v\n", err)
			os.Exit(1)
		}
		tables, err = manifest.Build(desc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building manifest: %v\n", err)
			os.Exit(1)
		}
	}

	engine, err := policy.New(*policyDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading policies: %v\n", err)
		os.Exit(1)
	}

	result, err := engine.Evaluate(tables)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating policies: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}

	if result.Summary.Errors > 0 {
		os.Exit(1)
	}
}
