package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mosaic-eda/netname/internal/config"
	"github.com/mosaic-eda/netname/internal/fabric"
	"github.com/mosaic-eda/netname/internal/manifest"
	"github.com/mosaic-eda/netname/internal/validator"
)

func main() {
	output := flag.String("output", "", "write manifest JSON to file (default: stdout)")
	flag.StringVar(output, "o", "", "write manifest JSON to file (shorthand)")
	prefix := flag.String("prefix", "", "keep only rows whose name carries this prefix")
	noValidate := flag.Bool("no-validate", false, "skip CUE schema validation")
	optionsPath := flag.String("options", "", "writer options file (JSON or YAML)")
	flag.Parse()

	opts := config.DefaultOptions()
	if *optionsPath != "" {
		var err error
		opts, err = config.Load(*optionsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: netname-manifest [--output file] [--prefix p] <fabric.json|fabric.yaml>")
		os.Exit(1)
	}

	desc, err := fabric.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fabric description: %v\n", err)
		os.Exit(1)
	}
	if *optionsPath == "" && desc.Options != nil {
		opts = desc.Options
	}

	if !*noValidate {
		v, err := validator.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building validator: %v\n", err)
			os.Exit(1)
		}
		if errs := v.ValidationErrors(desc); errs != nil {
			fmt.Fprintln(os.Stderr, "Fabric description failed schema validation:")
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  %s\n", e)
			}
			os.Exit(1)
		}
	}

	tables, err := manifest.Build(desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building manifest: %v\n", err)
		os.Exit(1)
	}

	if *prefix != "" {
		tables = manifest.FilterByPrefix(tables, *prefix)
	}

	if !*noValidate {
		mv, err := validator.NewManifestValidator()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building manifest validator: %v\n", err)
			os.Exit(1)
		}
		if err := mv.Validate(tables); err != nil {
			fmt.Fprintf(os.Stderr, "Manifest failed schema validation: %v\n", err)
			os.Exit(1)
		}
	}

	if opts.VerboseOutput {
		fmt.Fprintf(os.Stderr, "manifest: %d modules, %d ports, %d instances\n",
			len(tables.Modules), len(tables.Ports), len(tables.Instances))
	}

	if *output != "" {
		path := *output
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.OutputDirectory, path)
		}
		if err := writeJSON(path, tables); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
			os.Exit(1)
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tables); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding manifest: %v\n", err)
		os.Exit(1)
	}
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
