// Command ordercheck validates order or patient records from JSON or YAML
// files and prints a JSON report per file: the derived summary for accepted
// records, localized field errors for rejected ones.
//
// Usage:
//
//	ordercheck [-all] [-lang es] [-kind order|patient] [-domains a.com,b.com] [-j 4] file...
//	ordercheck -new-id
//
// Files are checked concurrently and reported in argument order. A file
// named "-" is read from stdin as JSON and may appear only once. The exit
// code is 0 when every record is accepted, 1 when any is rejected and 2 on
// usage or setup errors.
// Order policy limits come from ORDER_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/orderkit/pkg/async"
	"github.com/dmitrymomot/orderkit/pkg/config"
	"github.com/dmitrymomot/orderkit/pkg/i18n"
	"github.com/dmitrymomot/orderkit/pkg/logger"
	"github.com/dmitrymomot/orderkit/pkg/order"
	"github.com/dmitrymomot/orderkit/pkg/patient"
	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2

	maxJobs = 64
)

type settings struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogFormat string `env:"LOG_FORMAT"`
	Lang      string `env:"LANG" envDefault:"en"`
}

type runIDKey struct{}

func main() {
	var s settings
	if err := config.Load(&s); err != nil {
		fmt.Fprintln(os.Stderr, "ordercheck:", err)
		os.Exit(exitUsage)
	}

	policy, err := order.LoadPolicy()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ordercheck:", err)
		os.Exit(exitUsage)
	}

	os.Exit(run(context.Background(), os.Args[1:], s, policy, os.Stdin, os.Stdout, os.Stderr))
}

type report struct {
	Source   string              `json:"source"`
	Accepted bool                `json:"accepted"`
	Summary  *order.Summary      `json:"summary,omitempty"`
	Profile  *patient.Profile    `json:"profile,omitempty"`
	Errors   []i18n.FieldMessage `json:"errors,omitempty"`
}

func run(ctx context.Context, args []string, s settings, policy order.Policy, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ordercheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		all     = fs.Bool("all", false, "report every failing field instead of the first one")
		lang    = fs.String("lang", s.Lang, "language for error messages")
		kind    = fs.String("kind", "order", "record kind: order or patient")
		domains = fs.String("domains", "", "comma-separated email domains allowed for patients")
		newID   = fs.Bool("new-id", false, "print a fresh order ID and exit")
		jobs    = fs.Int("j", 4, "number of files checked concurrently")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *newID {
		fmt.Fprintln(stdout, order.NewID(time.Now()))
		return exitOK
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "ordercheck: no input files")
		fs.Usage()
		return exitUsage
	}
	if stdinReads(fs.Args()) > 1 {
		fmt.Fprintln(stderr, `ordercheck: "-" (stdin) may be given only once`)
		return exitUsage
	}

	log, err := newLogger(s, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "ordercheck:", err)
		return exitUsage
	}
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	translator, err := i18n.Default(ctx, i18n.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "load translations", logger.Error(err))
		return exitUsage
	}
	msgLang := translator.Match(*lang)

	var check func(ctx context.Context, source string, r io.Reader) report
	switch *kind {
	case "order":
		opts := []order.Option{order.WithPolicy(policy)}
		if *all {
			opts = append(opts, order.WithAllErrors())
		}
		intake := order.NewIntake(order.NewValidator(opts...), order.WithLogger(log))
		check = func(ctx context.Context, source string, r io.Reader) report {
			var in order.Input
			if err := decode(source, r, &in); err != nil {
				return rejected(source, err, translator, msgLang)
			}
			_, summary, err := intake.Submit(ctx, in)
			if err != nil {
				return rejected(source, err, translator, msgLang)
			}
			return report{Source: source, Accepted: true, Summary: &summary}
		}
	case "patient":
		var opts []patient.Option
		if *all {
			opts = append(opts, patient.WithAllErrors())
		}
		if *domains != "" {
			opts = append(opts, patient.WithAllowedDomains(strings.Split(*domains, ",")...))
		}
		v := patient.NewValidator(opts...)
		check = func(ctx context.Context, source string, r io.Reader) report {
			var in patient.Input
			if err := decode(source, r, &in); err != nil {
				return rejected(source, err, translator, msgLang)
			}
			p, err := v.Construct(in)
			if err != nil {
				log.WarnContext(ctx, "patient rejected", logger.Source(source), logger.Error(err))
				return rejected(source, err, translator, msgLang)
			}
			profile := patient.Describe(p)
			return report{Source: source, Accepted: true, Profile: &profile}
		}
	default:
		fmt.Fprintf(stderr, "ordercheck: unknown kind %q\n", *kind)
		return exitUsage
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	workers := sanitizer.Clamp(*jobs, 1, maxJobs)
	reports := async.Map(ctx, fs.Args(), workers, func(ctx context.Context, source string) report {
		return checkSource(ctx, source, stdin, check)
	})

	code := exitOK
	for _, rep := range reports {
		if !rep.Accepted {
			code = exitRejected
		}
		if err := enc.Encode(rep); err != nil {
			log.ErrorContext(ctx, "write report", logger.Error(err))
			return exitUsage
		}
	}
	return code
}

func stdinReads(sources []string) int {
	n := 0
	for _, s := range sources {
		if s == "-" {
			n++
		}
	}
	return n
}

func checkSource(ctx context.Context, source string, stdin io.Reader, check func(context.Context, string, io.Reader) report) report {
	if source == "-" {
		return check(ctx, source, stdin)
	}
	f, err := os.Open(source)
	if err != nil {
		return report{Source: source, Errors: []i18n.FieldMessage{{Kind: "input", Message: err.Error()}}}
	}
	defer f.Close()
	return check(ctx, source, f)
}

func newLogger(s settings, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(s.AppEnv, "ordercheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id, ok := ctx.Value(runIDKey{}).(string)
			if !ok {
				return slog.Attr{}, false
			}
			return logger.RunID(id), true
		}),
	}
	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// decode reads YAML for .yaml/.yml sources and JSON otherwise. Unknown
// fields are rejected in both.
func decode(source string, r io.Reader, v any) error {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
}

func rejected(source string, err error, translator *i18n.Translator, lang string) report {
	rep := report{Source: source}
	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
		rep.Errors = translator.ValidationErrors(lang, errs)
		return rep
	}
	rep.Errors = []i18n.FieldMessage{{Kind: "input", Message: err.Error()}}
	return rep
}
