// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2024 The arcdps plugin-sdk-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


// Command arcdps-gen renders the registration file of an arcdps plugin
// from its YAML manifest. It is meant to be run through go:generate:
//
//	//go:generate go run github.com/gw2-arcdps/plugin-sdk-go/cmd/arcdps-gen -manifest arcdps.yaml
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gw2-arcdps/plugin-sdk-go/pkg/gen"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "arcdps-gen: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("arcdps-gen", flag.ContinueOnError)
	manifest := fs.String("manifest", "arcdps.yaml", "path of the plugin manifest")
	output := fs.String("output", "", "path of the generated file (default: "+gen.OutputFile+" next to the manifest)")
	verbose := fs.Bool("v", false, "print the kind chosen for every slot")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		*output = filepath.Join(filepath.Dir(*manifest), gen.OutputFile)
	}

	f, err := os.Open(*manifest)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := gen.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *manifest, err)
	}

	plan, err := gen.Plan(m)
	if err != nil {
		return fmt.Errorf("%s: %w", *manifest, err)
	}
	for _, p := range plan {
		if p.Shadowed {
			slog.Warn("raw callback takes precedence, safe callback ignored", "slot", p.Slot)
		}
		if *verbose {
			slog.Info("slot", "name", p.Slot, "kind", p.Kind)
		}
	}

	var buf bytes.Buffer
	if err := gen.Render(m, &buf); err != nil {
		return err
	}
	return os.WriteFile(*output, buf.Bytes(), 0o644)
}
