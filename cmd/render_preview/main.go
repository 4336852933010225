// Command render_preview renders a resume JSON document to preview HTML and,
// optionally, to PDF. It applies the same schema and required-field checks as
// the form.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-builder/internal/form"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	in := flag.String("in", "resume.json", "resume JSON document")
	out := flag.String("out", "resume.html", "output HTML file")
	pdfOut := flag.String("pdf", "", "also print to this PDF file")
	chrome := flag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome executable")
	requireSocial := flag.Bool("require-social", false, "treat social links as required")
	flag.Parse()

	if err := run(*in, *out, *pdfOut, *chrome, *requireSocial); err != nil {
		fmt.Fprintf(os.Stderr, "render_preview: %v\n", err)
		os.Exit(2)
	}
}

func run(in, out, pdfOut, chrome string, requireSocial bool) error {
	b, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	rec, err := model.DecodeResume(b)
	if err != nil {
		return err
	}
	if errs := form.NewValidator(requireSocial).Validate(rec); len(errs) > 0 {
		return &form.ValidationError{Fields: errs}
	}

	renderer, err := preview.NewRenderer(nil)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create out: %w", err)
	}
	defer f.Close()
	if err := renderer.Render(f, rec, nil); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	fmt.Printf("wrote %s\n", out)

	if pdfOut == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	printer := preview.NewPrinter(renderer, infra.NewChromedpRenderer(chrome, 0), nil, 3)
	pdf, err := printer.Print(ctx, "cli", rec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(pdfOut, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Printf("wrote %s\n", pdfOut)
	return nil
}
