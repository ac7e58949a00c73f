package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gomedit/internal/ui/pretty"
	"github.com/yaklabco/gomedit/pkg/runner"
)

// defaultDividerWidth is used when the terminal width is unknown.
const defaultDividerWidth = 60

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No mesh files found."))
		}
		return nil
	}

	for i, file := range result.Files {
		if i > 0 {
			fmt.Fprintln(r.bw)
		}
		r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("-", r.dividerWidth())))
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) {
	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.displayPath(file.Path)))

	if file.Error != nil {
		fmt.Fprintf(r.bw, "  %s\n", r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		return
	}
	if file.Mesh == nil {
		return
	}

	fmt.Fprintf(r.bw, "  %s %d\n", r.styles.Keyword.Render("dimension"), file.Mesh.Dimension())
	fmt.Fprintf(r.bw, "  %s %d\n", r.styles.Keyword.Render("points   "), file.Mesh.NumPoints())
	for _, block := range file.Mesh.Cells {
		fmt.Fprintf(r.bw, "  %s %d %s\n",
			r.styles.Keyword.Render("cells    "),
			len(block.Data),
			r.styles.Family.Render(block.Family),
		)
	}

	for _, name := range file.Skipped {
		fmt.Fprintf(r.bw, "  %s\n", r.styles.Warning.Render(fmt.Sprintf("warning: %s skipped", name)))
	}
}

// displayPath makes paths relative to the working directory when one
// is configured.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// dividerWidth clamps the summary divider to the terminal width.
func (r *TextReporter) dividerWidth() int {
	width := defaultDividerWidth
	if f, ok := r.opts.Writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && w < width {
			width = w
		}
	}
	return width
}
