// Command lingo is a terminal client for translation and grammar correction
// backed by a locally running Ollama server.
//
// Usage:
//
//	lingo [flags]                  interactive TUI
//	lingo -text "Hallo Welt"       one-shot translate, result on stdout
//	echo "Helo wrld" | lingo -correct
//	lingo -models                  list the server's models
//	lingo -health                  check backend availability
//
// Flags:
//
//	-host string             Ollama host URL (default $OLLAMA_HOST or http://localhost:11434)
//	-translate-model string  model for translation (default $LINGO_TRANSLATE_MODEL or aya:8b)
//	-correct-model string    model for correction (default $LINGO_CORRECT_MODEL or llama3.2)
//	-source string           source language code, "auto" to detect
//	-target string           target language code
//	-explain-lang string     language for change explanations (default $LINGO_EXPLAIN_LANG or detected)
//	-level string            correction level: fix, improve, rewrite
//	-no-stream               disable streaming generation ($LINGO_NO_STREAM)
//	-text string             run one operation on this text and exit
//	-correct                 one-shot mode corrects instead of translating
//	-models                  list models and exit
//	-health                  probe the backend and exit
//	-v                       enable debug logging
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fwojciec/lingo"
	bt "github.com/fwojciec/lingo/bubbletea"
	"github.com/fwojciec/lingo/cache"
	"github.com/fwojciec/lingo/lingua"
	"github.com/fwojciec/lingo/ollama"
	"github.com/fwojciec/lingo/workflow"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lingo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env augments the environment; absence is not an error.
	_ = godotenv.Load()

	var (
		host           = flag.String("host", "", "Ollama host URL")
		translateModel = flag.String("translate-model", "", "model for translation")
		correctModel   = flag.String("correct-model", "", "model for correction")
		source         = flag.String("source", lingo.LangAuto, "source language code, \"auto\" to detect")
		target         = flag.String("target", "en", "target language code")
		explainLang    = flag.String("explain-lang", "", "language for change explanations")
		levelFlag      = flag.String("level", string(lingo.DefaultLevel), "correction level: fix, improve, rewrite")
		noStream       = flag.Bool("no-stream", false, "disable streaming generation")
		text           = flag.String("text", "", "run one operation on this text and exit")
		correct        = flag.Bool("correct", false, "one-shot mode corrects instead of translating")
		listFlag       = flag.Bool("models", false, "list the server's models and exit")
		healthFlag     = flag.Bool("health", false, "probe the backend and exit")
		verbose        = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Env vars are read here and passed as values.
	cfg := newConfig(
		*host, os.Getenv("OLLAMA_HOST"),
		*translateModel, os.Getenv("LINGO_TRANSLATE_MODEL"),
		*correctModel, os.Getenv("LINGO_CORRECT_MODEL"),
		*explainLang, os.Getenv("LINGO_EXPLAIN_LANG"),
		*noStream, os.Getenv("LINGO_NO_STREAM"),
	)

	level := lingo.Level(*levelFlag)
	if err := level.Validate(); err != nil {
		return err
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := ollama.New(ollama.WithBaseURL(cfg.Host()))

	switch {
	case *healthFlag:
		return runHealth(ctx, client, cfg.Host(), os.Stdout)
	case *listFlag:
		return runModels(ctx, client, cfg.Host(), os.Stdout)
	}

	input, err := oneShotInput(*text, os.Stdin)
	if err != nil {
		return err
	}

	if !client.CheckHealth(ctx) {
		return fmt.Errorf("ollama server not reachable at %s (is \"ollama serve\" running?)", cfg.Host())
	}

	hook, stateCh := bt.Notifier()
	st := workflow.NewState(workflow.WithOnChange(hook))
	st.SetSourceLang(*source)
	st.SetTargetLang(*target)
	st.SetLevel(level)

	responses := cache.New(0, 0)
	detector := lingua.New()
	translator := workflow.NewTranslator(client, responses, detector, cfg, st)
	corrector := workflow.NewCorrector(client, responses, detector, cfg, st)

	if input != "" {
		var result string
		var err error
		if *correct {
			result, err = corrector.Correct(ctx, input)
		} else {
			result, err = translator.Translate(ctx, input)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, result)
		return nil
	}

	tuiModel := bt.New(translator, corrector, st, cfg, lingo.DefaultTheme(), stateCh)
	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// oneShotInput resolves the text for one-shot mode: the -text flag wins,
// otherwise piped stdin is read in full. Empty means interactive mode.
func oneShotInput(textFlag string, stdin *os.File) (string, error) {
	if strings.TrimSpace(textFlag) != "" {
		return strings.TrimSpace(textFlag), nil
	}
	fi, err := stdin.Stat()
	if err != nil {
		return "", nil
	}
	if fi.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// runHealth probes the backend and reports availability. A non-nil error
// (and the non-zero exit it causes) is the scripting contract for an
// unreachable server.
func runHealth(ctx context.Context, client *ollama.Client, host string, w io.Writer) error {
	if !client.CheckHealth(ctx) {
		return fmt.Errorf("ollama server not reachable at %s", host)
	}
	fmt.Fprintf(w, "ok: %s\n", host)
	return nil
}

// runModels prints the server's model names, one per line.
func runModels(ctx context.Context, client *ollama.Client, host string, w io.Writer) error {
	models := client.ListModels(ctx)
	if models == nil {
		return fmt.Errorf("could not list models from %s", host)
	}
	for _, m := range models {
		fmt.Fprintln(w, m.Name)
	}
	return nil
}
