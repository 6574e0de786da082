// Package main is a small file-inspection CLI built on argyle, showing
// subcommand dispatch, arity groups, flag shortcuts, and File/Folder
// resolution. Usage and error rendering live here: the library itself
// never prints.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/argyle-sh/argyle"
	"github.com/argyle-sh/argyle/fsys"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	root := buildRoot()
	st := defaultStyles()

	result, err := argyle.Execute(context.Background(), root, os.Args[1:], fsys.OS(""))

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, st.Warning.Render("warning:"), w.Error())
	}

	if err != nil {
		if errors.Is(err, argyle.ErrNoHandler) {
			printUsage(os.Stdout, st, root)
			return 0
		}

		fmt.Fprintln(os.Stderr, st.Error.Render("error:"), err.Error())

		return 1
	}

	if out, ok := result.Value.(string); ok && out != "" {
		fmt.Print(out)
	}

	return 0
}

// styles holds the lipgloss styles for terminal output.
type styles struct {
	Header  lipgloss.Style
	Command lipgloss.Style
	Arg     lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Arg:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

func printUsage(w io.Writer, st styles, root *argyle.Command) {
	fmt.Fprintln(w, st.Header.Render("argyle-demo"), "-", root.Help)
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Header.Render("Commands:"))

	names := make([]string, 0, len(root.Subcommands))
	for name := range root.Subcommands {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		sub := root.Subcommands[name]
		fmt.Fprintf(w, "  %s  %s\n", st.Command.Render(name), sub.Help)

		for _, p := range sub.Args {
			fmt.Fprintf(w, "    %s (%s)  %s\n", st.Arg.Render("--"+p.Name), p.Arg.Type, p.Arg.Help)
		}
	}
}

func buildRoot() *argyle.Command {
	return &argyle.Command{
		Help: "inspect files and folders",
		Subcommands: map[string]*argyle.Command{
			"ls":   lsCommand(),
			"head": headCommand(),
			"find": findCommand(),
		},
	}
}

func lsCommand() *argyle.Command {
	return &argyle.Command{
		Help: "list a folder's entries",
		Args: []argyle.Param{
			{Name: "dir", Arg: argyle.Arg{
				Help:    "folder to list",
				Type:    argyle.TypeFolder,
				Default: value(argyle.FolderPath(".")),
			}},
			{Name: "all", Arg: argyle.Arg{
				Help:      "include hidden entries",
				Type:      argyle.TypeBool,
				FlagChars: "a",
				Default:   value(argyle.Bool(false)),
			}},
		},
		DefaultParams: [][]string{{"dir"}},
		Handler:       runLs,
	}
}

func runLs(_ context.Context, rec *argyle.Record) (any, error) {
	dir, _ := rec.Get("dir")
	all, _ := rec.Get("all")

	var b strings.Builder

	for _, entry := range dir.Folder().Entries {
		if !all.Bool() && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fmt.Fprintln(&b, entry.Name())
	}

	return b.String(), nil
}

func headCommand() *argyle.Command {
	return &argyle.Command{
		Help: "print the first lines of a file",
		Args: []argyle.Param{
			{Name: "path", Arg: argyle.Arg{
				Help:     "file to read",
				Type:     argyle.TypeFile,
				Required: true,
			}},
			{Name: "lines", Arg: argyle.Arg{
				Help:    "how many lines to print",
				Type:    argyle.TypeNat,
				Default: value(argyle.Nat(10)),
			}},
		},
		DefaultParams: [][]string{{"path"}, {"path", "lines"}},
		Handler:       runHead,
	}
}

func runHead(_ context.Context, rec *argyle.Record) (any, error) {
	path, _ := rec.Get("path")
	lines, _ := rec.Get("lines")

	defer func() { _ = path.File().Reader.Close() }()

	var b strings.Builder

	scanner := bufio.NewScanner(path.File().Reader)
	for n := uint64(0); n < lines.Nat() && scanner.Scan(); n++ {
		fmt.Fprintln(&b, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return b.String(), nil
}

func findCommand() *argyle.Command {
	return &argyle.Command{
		Help: "expand a glob pattern",
		Args: []argyle.Param{
			{Name: "pattern", Arg: argyle.Arg{
				Help:     "glob pattern, ** and {a,b} supported",
				Type:     argyle.TypeString,
				Required: true,
			}},
		},
		DefaultParams: [][]string{{"pattern"}},
		Handler:       runFind,
	}
}

func runFind(_ context.Context, rec *argyle.Record) (any, error) {
	pattern, _ := rec.Get("pattern")

	matches, err := fsys.Match(pattern.Str())
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintln(&b, m)
	}

	return b.String(), nil
}

func value(v argyle.Value) *argyle.Value {
	return &v
}
