package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/mailforge/pkg/email"
)

var errMissingInput = errors.New("render: -in is required")

type renderFlags struct {
	in, out, export string
	scheme, button  string
	legacy          bool
	utm             email.UTM
}

func parseRenderFlags(args []string, stderr io.Writer) (renderFlags, error) {
	var f renderFlags
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.in, "in", "", "JSON file with the email data")
	fs.StringVar(&f.out, "out", "", "output HTML file (default stdout)")
	fs.StringVar(&f.export, "export", "", "also export HTML and metadata into this directory")
	fs.StringVar(&f.scheme, "scheme", email.SchemeClassic, "color scheme: classic, slate or sand")
	fs.StringVar(&f.button, "button", email.ButtonRounded, "button style: rounded, square or pill")
	fs.BoolVar(&f.legacy, "legacy", false, "do not escape user supplied values")
	fs.StringVar(&f.utm.Source, "utm-source", "", "utm_source added to button links")
	fs.StringVar(&f.utm.Medium, "utm-medium", "", "utm_medium added to button links")
	fs.StringVar(&f.utm.Campaign, "utm-campaign", "", "utm_campaign added to button links")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.in == "" {
		return f, errMissingInput
	}
	return f, nil
}

func render(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseRenderFlags(args, stderr)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(f.in)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.in, err)
	}
	var data email.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode %s: %w", f.in, err)
	}
	if err := data.Validate(); err != nil {
		return err
	}

	opts := []email.Option{email.WithTheme(email.ResolveTheme(f.scheme, f.button))}
	if !f.utm.IsZero() {
		opts = append(opts, email.WithUTM(f.utm))
	}
	if f.legacy {
		opts = append(opts, email.WithLegacyOutput())
	}
	html := email.Render(data, opts...)

	if f.out == "" {
		if _, err := io.WriteString(stdout, html); err != nil {
			return err
		}
	} else if err := os.WriteFile(f.out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.out, err)
	}

	if f.export != "" {
		path, err := email.NewFileExporter(f.export).Export(ctx, data, html)
		if err != nil {
			return err
		}
		fmt.Fprintln(stderr, "exported", path)
	}
	return nil
}
