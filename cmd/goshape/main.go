package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/schemafile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "dump":
		dumpCmd(os.Args[2:])
	case "schemas":
		schemasCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "goshape CLI\n\nUsage:\n  goshape dump -schemas defs.yaml -schema NAME [-in objects.json] [-many] [-collect]\n  goshape schemas -schemas defs.yaml\n\nNotes:\n  - Input objects are JSON; with -many the input is a JSON array.\n  - Output documents preserve schema field order.")
}

func dumpCmd(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var schemasPath, schemaName, in string
	var many, collect bool
	fs.StringVar(&schemasPath, "schemas", "", "path to YAML schema definitions")
	fs.StringVar(&schemaName, "schema", "", "name of the schema to dump with")
	fs.StringVar(&in, "in", "", "path to JSON input; defaults to stdin")
	fs.BoolVar(&many, "many", false, "treat input as an array of objects")
	fs.BoolVar(&collect, "collect", false, "collect all per-object errors instead of failing fast")
	_ = fs.Parse(args)
	if schemasPath == "" || schemaName == "" {
		fs.Usage()
		os.Exit(2)
	}

	set, err := schemafile.LoadFile(schemasPath)
	if err != nil {
		fatal(err)
	}
	s, ok := set.Schema(schemaName)
	if !ok {
		fatal(fmt.Errorf("schema %q not found in %s", schemaName, schemasPath))
	}

	data, err := readInput(in)
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	if !many {
		var obj any
		if err := json.Unmarshal(data, &obj); err != nil {
			fatal(fmt.Errorf("failed to parse input JSON: %w", err))
		}
		doc, derr := s.DumpAny(ctx, obj)
		if derr != nil {
			fatal(derr)
		}
		printJSON(doc)
		return
	}

	var objs []any
	if err := json.Unmarshal(data, &objs); err != nil {
		fatal(fmt.Errorf("failed to parse input JSON array: %w", err))
	}
	ctx = goshape.WithCollect(ctx, collect)
	docs := make([]*goshape.Document, 0, len(objs))
	var iss goshape.Issues
	for i, obj := range objs {
		doc, derr := s.DumpAny(ctx, obj)
		if derr != nil {
			iss = goshape.AppendIssues(iss, goshape.RebaseIssues(goshape.PointerIndex(i), derr)...)
			if !collect {
				fatal(iss)
			}
			continue
		}
		docs = append(docs, doc)
	}
	if len(iss) > 0 {
		fatal(iss)
	}
	printJSON(docs)
}

func schemasCmd(args []string) {
	fs := flag.NewFlagSet("schemas", flag.ExitOnError)
	var schemasPath string
	fs.StringVar(&schemasPath, "schemas", "", "path to YAML schema definitions")
	_ = fs.Parse(args)
	if schemasPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	set, err := schemafile.LoadFile(schemasPath)
	if err != nil {
		fatal(err)
	}
	for _, name := range set.Names() {
		s, _ := set.Schema(name)
		fmt.Printf("%s: %v\n", name, s.Fields())
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	if iss, ok := goshape.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "goshape: %s at %s: %s\n", it.Code, it.Path, it.Message)
		}
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "goshape:", err)
	os.Exit(1)
}
