package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nikand.dev/go/urlkit"
)

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrBadBase64  = errors.New("bad base64")
	ErrUsage      = errors.New("usage")
)

type (
	config struct {
		Format string
		Mode   string
		Domain string
		Keys   []string
		Ignore string
	}

	record struct {
		Input     string  `json:"input" yaml:"input"`
		Valid     bool    `json:"valid" yaml:"valid"`
		Type      string  `json:"type" yaml:"type"`
		Scheme    *string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
		Username  *string `json:"username,omitempty" yaml:"username,omitempty"`
		Password  *string `json:"password,omitempty" yaml:"password,omitempty"`
		Host      *string `json:"host,omitempty" yaml:"host,omitempty"`
		Port      *uint16 `json:"port,omitempty" yaml:"port,omitempty"`
		Path      *string `json:"path,omitempty" yaml:"path,omitempty"`
		Query     *string `json:"query,omitempty" yaml:"query,omitempty"`
		Fragment  *string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
		Canonical string  `json:"canonical" yaml:"canonical"`
		Domain    *bool   `json:"domain,omitempty" yaml:"domain,omitempty"`
		Keys      []param `json:"keys,omitempty" yaml:"keys,omitempty"`
	}

	param struct {
		Key    string  `json:"key" yaml:"key"`
		Exists bool    `json:"exists" yaml:"exists"`
		Value  *string `json:"value,omitempty" yaml:"value,omitempty"`
	}
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, verbose, rest, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inputs, err := readInputs(rest, stdin)
	if err != nil {
		l.Error("read input", "err", err)
		return 1
	}

	l.Debug("start", "mode", cfg.Mode, "format", cfg.Format, "inputs", len(inputs))

	err = run(cfg, inputs, stdout, l)
	if err != nil {
		l.Error("urlinfo", "err", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (cfg config, verbose bool, rest []string, err error) {
	fs := flag.NewFlagSet("urlinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Format, "format", "text", "output format: text, json or yaml")
	fs.StringVar(&cfg.Mode, "mode", "parse", "parse, encode, decode, b64enc or b64dec")
	fs.StringVar(&cfg.Domain, "domain", "", "report whether the host is in the domain")
	fs.StringVar(&cfg.Ignore, "ignore", " \t\r\n", "bytes skipped by b64dec")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.Func("key", "query key to look up (repeatable)", func(v string) error {
		cfg.Keys = append(cfg.Keys, v)
		return nil
	})

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: urlinfo [options] [url ...]\n\n")
		fmt.Fprintf(stderr, "Parses URLs from arguments or stdin lines and prints their components.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err = fs.Parse(args); err != nil {
		return cfg, verbose, nil, err
	}

	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return cfg, verbose, nil, fmt.Errorf("%w: unknown format %q", ErrUsage, cfg.Format)
	}

	switch cfg.Mode {
	case "parse", "encode", "decode", "b64enc", "b64dec":
	default:
		return cfg, verbose, nil, fmt.Errorf("%w: unknown mode %q", ErrUsage, cfg.Mode)
	}

	return cfg, verbose, fs.Args(), nil
}

func readInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}

	var res []string

	s := bufio.NewScanner(stdin)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		res = append(res, line)
	}

	return res, s.Err()
}

func run(cfg config, inputs []string, w io.Writer, l *slog.Logger) (err error) {
	if cfg.Mode != "parse" {
		return convert(cfg, inputs, w, l)
	}

	recs := make([]record, 0, len(inputs))

	for _, in := range inputs {
		u := urlkit.Parse(in)

		if !u.IsValid() {
			l.Warn("invalid url", "url", in, "type", u.Type())
			err = fmt.Errorf("%w: %s", ErrInvalidURL, in)
		} else {
			l.Debug("parsed", "url", in, "type", u.Type())
		}

		recs = append(recs, newRecord(cfg, u, in))
	}

	if werr := write(cfg.Format, recs, w); werr != nil {
		return werr
	}

	return err
}

func convert(cfg config, inputs []string, w io.Writer, l *slog.Logger) (err error) {
	for _, in := range inputs {
		var out []byte
		var s urlkit.Status

		src := []byte(in)

		switch cfg.Mode {
		case "encode":
			out = []byte(urlkit.EncodeString(in))
		case "decode":
			out = []byte(urlkit.DecodeString(in))
		case "b64enc":
			out = make([]byte, urlkit.Base64EncodedLen(len(src), true))
			_, s = urlkit.Base64Encode(out, src, true)
		case "b64dec":
			out = make([]byte, len(src))

			var n int
			n, s = urlkit.Base64Decode(out, src, cfg.Ignore)
			out = out[:min(n, len(out))]
		}

		if s.Err() {
			l.Warn("convert", "mode", cfg.Mode, "input", in, "status", s.Error())
			err = fmt.Errorf("%w: %s: %v", ErrBadBase64, in, s)

			continue
		}

		_, werr := fmt.Fprintf(w, "%s\n", out)
		if werr != nil {
			return werr
		}
	}

	return err
}

func newRecord(cfg config, u urlkit.URL, in string) record {
	r := record{
		Input:     in,
		Valid:     u.IsValid(),
		Type:      u.Type().String(),
		Scheme:    ptr(u.Scheme()),
		Username:  ptr(u.Username()),
		Password:  ptr(u.Password()),
		Host:      ptr(u.Host()),
		Port:      ptr(u.Port()),
		Path:      ptr(u.Path()),
		Query:     ptr(u.Query()),
		Fragment:  ptr(u.Fragment()),
		Canonical: u.String(),
	}

	if cfg.Domain != "" {
		ok := u.IsDomain(cfg.Domain)
		r.Domain = &ok
	}

	q := u.QueryValues()

	for _, k := range cfg.Keys {
		r.Keys = append(r.Keys, param{
			Key:    k,
			Exists: q.Exists(k, true),
			Value:  ptr(q.Get(k)),
		})
	}

	return r
}

func write(format string, recs []record, w io.Writer) error {
	switch format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")

		return e.Encode(recs)
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)

		if err := e.Encode(recs); err != nil {
			return err
		}

		return e.Close()
	}

	for _, r := range recs {
		err := writeText(w, r)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeText(w io.Writer, r record) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.Input)
	fmt.Fprintf(&b, "\tvalid     %v\n", r.Valid)
	fmt.Fprintf(&b, "\ttype      %s\n", r.Type)

	field := func(name string, v *string) {
		if v != nil {
			fmt.Fprintf(&b, "\t%-9s %q\n", name, *v)
		}
	}

	field("scheme", r.Scheme)
	field("username", r.Username)
	field("password", r.Password)
	field("host", r.Host)

	if r.Port != nil {
		fmt.Fprintf(&b, "\tport      %d\n", *r.Port)
	}

	field("path", r.Path)
	field("query", r.Query)
	field("fragment", r.Fragment)

	fmt.Fprintf(&b, "\tcanonical %s\n", r.Canonical)

	if r.Domain != nil {
		fmt.Fprintf(&b, "\tdomain    %v\n", *r.Domain)
	}

	for _, p := range r.Keys {
		switch {
		case !p.Exists:
			fmt.Fprintf(&b, "\tkey %s: missing\n", p.Key)
		case p.Value == nil:
			fmt.Fprintf(&b, "\tkey %s: no value\n", p.Key)
		default:
			fmt.Fprintf(&b, "\tkey %s: %q\n", p.Key, *p.Value)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func ptr[T any](o urlkit.Optional[T]) *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}

	return &v
}
