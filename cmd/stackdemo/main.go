package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/quintans/stackfactory/internal/config"
	"github.com/quintans/stackfactory/internal/factory"
	"github.com/quintans/stackfactory/internal/lib/ds"
	"github.com/quintans/stackfactory/internal/lib/fails"
	"github.com/quintans/stackfactory/internal/lib/slices"
	"github.com/quintans/stackfactory/internal/model"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("Stack demo failed", "context", fails.ValuesOf(err), "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stackdemo", flag.ContinueOnError)
	cfgPath := fs.String("config", "stack.json", "path to the JSON config")
	variant := fs.String("variant", "", "stack variant, overrides the config (array, linked)")
	capacity := fs.Int("capacity", 0, "stack capacity, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			v, err := model.ParseVariant(*variant)
			if err != nil {
				parseErr = fmt.Errorf("flag -variant: %w", err)
				return
			}
			cfg.Variant = v
		case "capacity":
			cfg.Capacity = *capacity
		}
	})
	if parseErr != nil {
		return parseErr
	}

	cfg.Apply(factory.Default())
	slog.Info("stack", "variant", cfg.Variant, "capacity", humanize.Comma(int64(cfg.Capacity)))

	stack, err := factory.MakeStackDefault[string](cfg.Capacity)
	if err != nil {
		return fmt.Errorf("creating stack: %w", err)
	}

	for _, arg := range fs.Args() {
		err := stack.Push(arg)
		if errors.Is(err, ds.ErrInvalidState) {
			slog.Warn("Stack is full, dropping remaining arguments", "item", arg, "size", stack.Size())
			break
		}
		if err != nil {
			return fmt.Errorf("pushing %q: %w", arg, err)
		}
	}

	popped := make([]string, 0, stack.Size())
	for !stack.IsEmpty() {
		item, err := stack.Pop()
		if err != nil {
			return fmt.Errorf("popping: %w", err)
		}
		popped = append(popped, item)
	}

	_, err = fmt.Fprintln(out, strings.Join(slices.Map(popped, quote), " "))
	return err
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
