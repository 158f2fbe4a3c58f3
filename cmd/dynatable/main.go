package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/dynatable"
	"github.com/suparena/dynatable/expr"
	"github.com/suparena/dynatable/registry"
	"github.com/suparena/dynatable/table"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	bindingsFlag = flag.String("bindings", "", "Path to a YAML bindings file")
	nameFlag     = flag.String("name", "", "Logical binding name from the bindings file")
	tableFlag    = flag.String("table", "", "Table name (overrides -name)")
	regionFlag   = flag.String("region", "", "AWS region (overrides -name)")

	getFlag  = flag.String("get", "", "Fetch one item by key, e.g. -get id=123 or -get pk=USER#1,sk=PROFILE")
	scanFlag = flag.Bool("scan", false, "Scan one page of the table")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := dynatable.GetVersionInfo()
		fmt.Printf("dynatable version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	binding, err := resolveBinding()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	t, err := table.Open[map[string]interface{}](ctx, binding.TableName, binding.Region)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *getFlag != "":
		key, err := parseKey(*getFlag)
		if err != nil {
			log.Fatal(err)
		}
		item, err := t.Find(ctx, key, nil)
		if err != nil {
			log.Fatal(err)
		}
		if item == nil {
			log.Fatalf("no item for key %q", *getFlag)
		}
		printJSON(*item)

	case *scanFlag:
		page, err := t.GetAll(ctx, nil)
		if err != nil {
			log.Fatal(err)
		}
		for _, item := range page.Items {
			printJSON(item)
		}
		if page.HasMore() {
			fmt.Fprintln(os.Stderr, "more items available; narrow the scan or page with the library API")
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// resolveBinding picks the table binding from flags, a bindings file or the
// environment, in that order.
func resolveBinding() (registry.Binding, error) {
	if *tableFlag != "" {
		region := *regionFlag
		if region == "" {
			region = os.Getenv("AWS_REGION")
		}
		return registry.Binding{TableName: *tableFlag, Region: region}, nil
	}

	if *bindingsFlag != "" {
		if _, err := registry.LoadBindings(*bindingsFlag); err != nil {
			return registry.Binding{}, err
		}
	}
	if *nameFlag != "" {
		return registry.GetNamedBinding(*nameFlag)
	}

	if t := os.Getenv("AWS_DDB_TABLE"); t != "" {
		return registry.Binding{TableName: t, Region: os.Getenv("AWS_REGION")}, nil
	}
	return registry.Binding{}, fmt.Errorf("no table selected: pass -table, -name with -bindings, or set AWS_DDB_TABLE")
}

// parseKey turns "a=1,b=2" into a key spec with string values, in input order.
func parseKey(s string) (expr.KeySpec, error) {
	var key expr.KeySpec
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid key pair %q, want name=value", pair)
		}
		key = append(key, expr.Eq(name, value))
	}
	return key, nil
}

func printJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(b))
}
