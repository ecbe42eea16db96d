// Package repl provides the interactive inspection shell over a parsed
// documentation registry.
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"doclens/errors"
	"doclens/logging"
	"doclens/pkg/docmodel"
)

// Config contains configuration for the inspection shell.
type Config struct {
	Prompt      string
	HistoryFile string
	HistorySize int
}

// REPL is the interactive inspection loop.
type REPL struct {
	objects *docmodel.Registry
	config  Config
	log     logging.Logger
	running bool
}

// NewREPL creates an inspection shell over the given registry.
func NewREPL(objects *docmodel.Registry, config Config, log logging.Logger) *REPL {
	if config.Prompt == "" {
		config.Prompt = "doclens> "
	}
	if config.HistorySize == 0 {
		config.HistorySize = 1000
	}
	return &REPL{
		objects: objects,
		config:  config,
		log:     log.WithComponent("repl"),
	}
}

// Run starts the interactive loop and blocks until the user exits.
func (r *REPL) Run() error {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("ls", readline.PcItemDynamic(r.completePaths)),
		readline.PcItem("show", readline.PcItemDynamic(r.completePaths)),
		readline.PcItem("stats"),
		readline.PcItem(":help"),
		readline.PcItem(":exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.config.Prompt,
		HistoryFile:     r.config.HistoryFile,
		HistoryLimit:    r.config.HistorySize,
		InterruptPrompt: "^C",
		EOFPrompt:       ":exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return errors.WrapError(err, "READLINE_INIT_FAILED", "failed to initialize readline")
	}
	defer func() {
		if err := rl.Close(); err != nil {
			r.log.Warn("failed to close readline", logging.F("error", err.Error()))
		}
	}()

	fmt.Printf("%d documented objects loaded. Type :help for commands.\n", r.objects.Count())

	r.running = true
	for r.running {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			return errors.WrapError(err, "READ_ERROR", "read error")
		}

		line := strings.TrimSpace(input)
		if line == "" {
			continue
		}
		r.dispatch(line)
	}

	fmt.Println("Goodbye!")
	return nil
}

func (r *REPL) dispatch(line string) {
	fields := strings.Fields(line)
	command := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch command {
	case ":exit", ":quit", "exit", "quit":
		r.running = false
	case ":help", "help":
		r.printHelp()
	case "ls":
		r.list(arg)
	case "show":
		r.show(arg)
	case "stats":
		r.stats()
	default:
		fmt.Printf("unknown command %q, type :help\n", command)
	}
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  ls [prefix]   - list object paths, optionally under a prefix")
	fmt.Println("  show <path>   - show one documented object")
	fmt.Println("  stats         - object counts by kind")
	fmt.Println("  :exit         - leave the shell")
}

func (r *REPL) list(prefix string) {
	for _, path := range r.objects.Paths() {
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			continue
		}
		obj, _ := r.objects.Lookup(path)
		fmt.Printf("%-10s %s\n", obj.Kind(), path)
	}
}

func (r *REPL) show(path string) {
	if path == "" {
		fmt.Println("usage: show <path>")
		return
	}
	obj, ok := r.objects.Lookup(path)
	if !ok {
		fmt.Printf("no object at %q\n", path)
		return
	}

	base := obj.Base()
	fmt.Printf("%s %s\n", obj.Kind(), obj.Path())
	if base.File != "" {
		fmt.Printf("  defined:    %s:%d\n", base.File, base.Line)
	}
	if base.Dynamic {
		fmt.Println("  dynamic:    true")
	}

	switch o := obj.(type) {
	case *docmodel.ClassObject:
		if o.Superclass != nil {
			fmt.Printf("  superclass: %s\n", o.Superclass.Path())
		}
		printMixins(o.Mixins)
	case *docmodel.ModuleObject:
		printMixins(o.Mixins)
	case *docmodel.MethodObject:
		fmt.Printf("  visibility: %s\n", o.Visibility)
		fmt.Printf("  scope:      %s\n", o.Scope)
		if len(o.Parameters) > 0 {
			fmt.Printf("  params:     %s\n", strings.Join(o.Parameters, ", "))
		}
	case *docmodel.AttributeObject:
		fmt.Printf("  visibility: %s\n", o.Visibility)
		fmt.Printf("  readable=%v writable=%v\n", o.Readable, o.Writable)
	case *docmodel.ConstantObject:
		fmt.Printf("  value:      %s\n", o.Value)
	}

	if base.Docstring != "" {
		fmt.Println("  docstring:")
		for _, line := range strings.Split(base.Docstring, "\n") {
			fmt.Printf("    %s\n", line)
		}
	}
}

func (r *REPL) stats() {
	counts := make(map[string]int)
	for _, obj := range r.objects.All() {
		counts[obj.Kind()]++
	}
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("%-10s %d\n", kind, counts[kind])
	}
	fmt.Printf("%-10s %d\n", "total", r.objects.Count())
}

func (r *REPL) completePaths(string) []string {
	return r.objects.Paths()
}

func printMixins(mixins []*docmodel.Reference) {
	if len(mixins) == 0 {
		return
	}
	var names []string
	for _, ref := range mixins {
		names = append(names, ref.Path())
	}
	fmt.Printf("  mixins:     %s\n", strings.Join(names, ", "))
}
