package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/robfig/emblem"
	"github.com/robfig/emblem/parse"
)

func newRootCmd() *cobra.Command {
	var (
		outputFormat string
		files        []string
		watch        bool
	)

	cmd := &cobra.Command{
		Use:   "emblem-expr [expression]...",
		Short: "Parse Emblem mustache expressions",
		Long: `Parse Emblem mustache expressions and print the name, attributes and
modifier of each.

Each argument is parsed as a single expression.  Expressions are also read
from each --file, one per line; blank lines and lines beginning with // in
files are ignored.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(files) == 0 {
				return fmt.Errorf("no expressions given")
			}
			if watch && len(files) == 0 {
				return fmt.Errorf("--watch requires at least one --file")
			}
			var output, err = printer(cmd.OutOrStdout(), outputFormat)
			if err != nil {
				return err
			}

			var argExprs []emblem.Expression
			for i, arg := range args {
				var name = fmt.Sprintf("arg%d", i+1)
				node, err := parse.Expression(name, arg)
				if err != nil {
					return err
				}
				argExprs = append(argExprs, emblem.Expression{File: name, Line: 1, MustacheNode: node})
			}
			var withArgs = func(exprs []emblem.Expression) []emblem.Expression {
				return append(argExprs[:len(argExprs):len(argExprs)], exprs...)
			}

			var bundle = emblem.NewBundle().WatchFiles(watch)
			for _, file := range files {
				bundle.AddExpressionFile(file)
			}
			bundle.SetRecompilationCallback(func(exprs []emblem.Expression) {
				if err := output(withArgs(exprs)); err != nil {
					emblem.Logger.Println(err)
				}
			})

			exprs, err := bundle.Compile()
			if err != nil {
				return err
			}
			if err := output(withArgs(exprs)); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			defer bundle.Close()
			var interrupt = make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json, repr or text")
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Read expressions from file, one per line")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-parse the files whenever they change")
	return cmd
}

// printer returns a function writing expressions to w in the given format.
func printer(w io.Writer, format string) (func([]emblem.Expression) error, error) {
	switch format {
	case "json":
		var enc = json.NewEncoder(w)
		return func(exprs []emblem.Expression) error {
			for _, expr := range exprs {
				if err := enc.Encode(expr); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			}
			return nil
		}, nil
	case "repr":
		return func(exprs []emblem.Expression) error {
			for _, expr := range exprs {
				if _, err := fmt.Fprintln(w, repr.String(expr.MustacheNode, repr.Indent("  "))); err != nil {
					return err
				}
			}
			return nil
		}, nil
	case "text":
		return func(exprs []emblem.Expression) error {
			for _, expr := range exprs {
				if _, err := fmt.Fprintln(w, expr.String()); err != nil {
					return err
				}
			}
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}
