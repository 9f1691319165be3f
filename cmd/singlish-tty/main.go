// Command singlish-tty is an interactive terminal transliterator. Typed
// romanized text is converted to Sinhala as you type; committed text is
// final, the underlined tail is still pending.
package main

import (
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"singlish"
	"singlish/internal/config"
	"singlish/internal/ime"
	"singlish/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "singlish-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.Init()

	fs := ff.NewFlagSet("singlish-tty")
	configPath := fs.StringLong("config", "", "path to singlish.ini")
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	toggle, ok := toggleKeys[cfg.ToggleKey]
	if !ok {
		log.Warn("unknown toggle key, using ctrl+space", "key", cfg.ToggleKey)
		toggle = keyboard.KeyCtrlSpace
	}

	conv, err := singlish.NewConverter()
	if err != nil {
		return err
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer keyboard.Close()

	out := &lineOutput{preview: cfg.Preview}
	eng := ime.NewEngine(conv, ime.ParseMode(cfg.DefaultMode), out)

	fmt.Printf("mode: %s  (toggle: %s, enter commits, esc quits)\r\n", eng.Mode(), cfg.ToggleKey)
	out.redraw()

	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			eng.Flush()
			out.redraw()
			fmt.Print("\r\n")
			return nil
		case toggle:
			mode := eng.Toggle()
			log.Debug("mode toggled", "mode", mode.String())
		case keyboard.KeyEnter:
			eng.Flush()
			out.redraw()
			out.newline()
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			if !eng.HandleBackspace() {
				out.erase()
			}
		case keyboard.KeySpace:
			eng.HandleRune(' ')
		default:
			if ch != 0 {
				eng.HandleRune(ch)
			}
		}
		out.redraw()
	}
}

// toggleKeys maps the config names to terminal keys. Plain characters cannot
// toggle, they would be untypeable.
var toggleKeys = map[string]keyboard.Key{
	"ctrl+space": keyboard.KeyCtrlSpace,
	"ctrl+t":     keyboard.KeyCtrlT,
	"ctrl+g":     keyboard.KeyCtrlG,
	"tab":        keyboard.KeyTab,
}

// lineOutput renders the current line in place: committed runes first, then
// the pending preedit underlined. The engine only ever commits or replaces
// the preedit, so a full redraw of one line is enough.
type lineOutput struct {
	committed []rune
	preedit   string
	preview   bool
}

func (o *lineOutput) CommitText(text string) {
	o.committed = append(o.committed, []rune(text)...)
}

func (o *lineOutput) ShowPreedit(text string) {
	o.preedit = text
}

func (o *lineOutput) erase() {
	if len(o.committed) > 0 {
		o.committed = o.committed[:len(o.committed)-1]
	}
}

func (o *lineOutput) newline() {
	fmt.Print("\r\n")
	o.committed = o.committed[:0]
	o.preedit = ""
}

func (o *lineOutput) redraw() {
	fmt.Printf("\r\x1b[K> %s", string(o.committed))
	if o.preview && o.preedit != "" {
		fmt.Printf("\x1b[4m%s\x1b[24m", o.preedit)
	}
}
