package transpile

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/lbpc/internal/directive"
	"git.home.luguber.info/inful/lbpc/internal/document"
	"git.home.luguber.info/inful/lbpc/internal/errors"
	"git.home.luguber.info/inful/lbpc/internal/metrics"
)

// Translator runs the full two-pass translation: directive collection, then
// line transformation. The substitution table and the indentation policy are
// private to one run; a Translator holds only injected collaborators and may
// be reused across documents.
type Translator struct {
	policy   Policy
	sink     directive.EventSink
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithEventSink sets the sink that receives alias registration events.
func WithEventSink(sink directive.EventSink) Option {
	return func(t *Translator) { t.sink = sink }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(t *Translator) { t.recorder = r }
}

// WithLogger sets the logger used for run-level progress records.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) { t.logger = l }
}

// NewTranslator creates a Translator with the given indentation policy.
func NewTranslator(policy Policy, opts ...Option) *Translator {
	t := &Translator{
		policy:   policy,
		sink:     directive.NoopSink{},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Translate runs both passes over an in-memory document, streaming output to
// w. It returns the number of lines emitted. Any error aborts immediately;
// lines already written stay written.
func (t *Translator) Translate(doc *document.Document, w io.Writer) (int, error) {
	table, err := directive.Collect(doc.Lines(), t.sink)
	if err != nil {
		return 0, err
	}
	t.recorder.AddAliasesRegistered(table.Len())

	emitted, err := Transform(doc.Lines(), table, t.policy, w)
	t.recorder.AddLinesEmitted(emitted)
	if err != nil {
		return emitted, err
	}
	return emitted, nil
}

// TranslateFile loads inputPath and writes the translation to outputPath.
// The destination is created only after the input has been read and the
// collector pass has succeeded, so a missing input or a bad directive never
// touches the output file. On a mid-file error the partially written output
// remains on disk; the file handle itself is always flushed and closed.
func (t *Translator) TranslateFile(inputPath, outputPath string) error {
	start := time.Now()

	doc, err := document.Load(inputPath)
	if err != nil {
		t.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return err
	}

	table, err := directive.Collect(doc.Lines(), t.sink)
	if err != nil {
		t.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return err
	}
	t.recorder.AddAliasesRegistered(table.Len())

	out, err := os.Create(outputPath)
	if err != nil {
		t.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return errors.Wrap(err, errors.KindIO, "create output file")
	}
	w := bufio.NewWriter(out)

	emitted, terr := Transform(doc.Lines(), table, t.policy, w)
	t.recorder.AddLinesEmitted(emitted)

	// Flush and close on every exit path so partial output is durable and
	// no handle leaks, even when the transform aborted mid-file.
	ferr := w.Flush()
	cerr := out.Close()

	if terr != nil {
		t.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return terr
	}
	if ferr != nil {
		t.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return errors.Wrap(ferr, errors.KindIO, "flush output")
	}
	if cerr != nil {
		t.recorder.IncRunOutcome(metrics.OutcomeFailed)
		return errors.Wrap(cerr, errors.KindIO, "close output")
	}

	t.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	t.recorder.ObserveRunDuration(time.Since(start))
	t.logger.Info("Translation completed",
		"input", inputPath,
		"output", outputPath,
		"lines", emitted,
		"aliases", table.Len(),
		"duration", time.Since(start))
	return nil
}
