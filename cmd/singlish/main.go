// Command singlish converts romanized Sinhala from arguments or stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"singlish"
	"singlish/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "singlish: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger.Init()

	fs := ff.NewFlagSet("singlish")
	var (
		metrics = fs.BoolLong("metrics", "report how many positions changed")
		word    = fs.BoolLong("word", "convert only the trailing word of each line")
	)
	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	conv, err := singlish.NewConverter()
	if err != nil {
		return err
	}

	if args := fs.GetArgs(); len(args) > 0 {
		return emit(conv, strings.Join(args, " "), *metrics, *word)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		if err := emit(conv, scanner.Text(), *metrics, *word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func emit(conv *singlish.Converter, line string, metrics, word bool) error {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	switch {
	case word:
		fmt.Fprintln(w, conv.ConvertTrailingWord(line))
	case metrics:
		m := conv.ConvertWithMetrics(line)
		fmt.Fprintf(w, "%s\t(%d changed)\n", m.Text, m.Changed)
	default:
		fmt.Fprintln(w, conv.Convert(line))
	}
	return nil
}
