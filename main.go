package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"doclens/logging"
	"doclens/pkg/docmodel"
	"doclens/pkg/handler"
	"doclens/pkg/parser"
	"doclens/repl"
	"doclens/serialization"
)

func main() {
	// Parse command line flags
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		inspect     = flag.Bool("inspect", false, "Open the inspection shell after parsing")
		format      = flag.String("format", "", "Export format (json, yaml)")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
	)
	flag.Parse()

	// Handle version flag with verbose support
	if *showVersion {
		if *verbose {
			fmt.Println("doclens v0.1.0 - Source Documentation Extractor")
			fmt.Println("Build: development")
		} else {
			fmt.Println("doclens v0.1.0 - Source Documentation Extractor")
		}
		os.Exit(0)
	}

	// Handle help flag
	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	// Load configuration
	configFilePath := *configPath
	if configFilePath == "" {
		// Try default locations
		home, _ := os.UserHomeDir()
		defaultPaths := []string{
			filepath.Join(home, ".doclens", "config.yaml"),
			"./config.yaml",
		}
		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				configFilePath = path
				break
			}
		}
	}

	cfg, err := LoadConfig(configFilePath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	log := logging.NewDefaultLogger()
	log.SetLevel(logging.ParseLevel(cfg.Logging.Level))

	files := flag.Args()
	if len(files) == 0 && !*inspect {
		printHelp()
		os.Exit(0)
	}

	objects := docmodel.NewRegistry()
	for _, name := range cfg.Parser.ExtraBuiltins {
		docmodel.AddBuiltin(name)
	}

	handlers := handler.NewRegistry()
	handler.RegisterDefaults(handlers)
	for _, name := range cfg.Handlers.Disabled {
		handlers.Disable(name)
	}
	for name, lua := range cfg.Handlers.Lua {
		script, err := os.ReadFile(expandHome(lua.Script))
		if err != nil {
			fmt.Printf("Error loading Lua handler %q: %v\n", name, err)
			os.Exit(1)
		}
		desc, err := handler.LuaDescriptor(name, string(script))
		if err != nil {
			fmt.Printf("Error compiling Lua handler %q: %v\n", name, err)
			os.Exit(1)
		}
		handlers.Register(desc)
	}

	resolver := handler.NewResolver(objects, log, cfg.Parser.LoadOrderDiagnostics)
	processor := handler.NewProcessor(handlers, objects, resolver, log)

	srcParser := parser.NewParser()
	failed := false
	for _, file := range files {
		statements, err := srcParser.ParseFile(file)
		if err != nil {
			fmt.Printf("Error parsing %s: %v\n", file, err)
			failed = true
			continue
		}
		processor.SetFile(file)
		processor.ParseAll(statements)
	}

	switch {
	case *inspect:
		shell := repl.NewREPL(objects, repl.Config{
			Prompt:      cfg.REPL.Prompt,
			HistoryFile: cfg.REPL.HistoryFile,
			HistorySize: cfg.REPL.HistorySize,
		}, log)
		if err := shell.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	case *format != "":
		data, err := serialization.Export(objects, *format)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	default:
		printSummary(objects)
	}

	if failed {
		os.Exit(1)
	}
}

// printSummary lists the documented objects collected from all files.
func printSummary(objects *docmodel.Registry) {
	counts := make(map[string]int)
	for _, path := range objects.Paths() {
		obj, _ := objects.Lookup(path)
		counts[obj.Kind()]++
		fmt.Printf("%-10s %s\n", obj.Kind(), path)
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	fmt.Printf("\n%d objects", objects.Count())
	for _, kind := range kinds {
		fmt.Printf(", %d %s", counts[kind], kind)
	}
	fmt.Println()
}

// printHelp displays help information
func printHelp() {
	fmt.Println("doclens - Source Documentation Extractor")
	fmt.Println()
	fmt.Println("Usage: doclens [options] <source files...>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>           Path to configuration file")
	fmt.Println("  --version                 Show version information")
	fmt.Println("  --help                    Show this help message")
	fmt.Println("  --inspect                 Open the inspection shell after parsing")
	fmt.Println("  --format <name>           Export the object graph (json, yaml)")
	fmt.Println("  --verbose                 Enable verbose output")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  doclens lib/foo.rb lib/bar.rb        Parse files and print the object summary")
	fmt.Println("  doclens --inspect lib/foo.rb         Parse and explore interactively")
	fmt.Println("  doclens --config config.yaml lib/    Run with custom configuration")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("  Configuration files are searched in the following order:")
	fmt.Println("  1. Path specified by --config flag")
	fmt.Println("  2. Default locations: ~/.doclens/config.yaml, ./config.yaml")
}
