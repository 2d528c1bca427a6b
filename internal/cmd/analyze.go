package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pthm/speechstyle/internal/config"
	"github.com/pthm/speechstyle/internal/diagnosis"
	"github.com/pthm/speechstyle/internal/labels"
	"github.com/pthm/speechstyle/internal/reporter"
	"github.com/pthm/speechstyle/internal/transcript"
	"github.com/pthm/speechstyle/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	inlineText string
	duration   float64
	chartPath  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Diagnose the speaking style of a transcript",
	Long: `Analyze a Japanese transcript and report its speaking style.

The transcript may be plain text, Markdown (with optional YAML
frontmatter), JSON or YAML. Use - to read from stdin.

Examples:
  speechstyle analyze talk.txt
  speechstyle analyze --duration 240 talk.md
  speechstyle analyze --text "えっと、今日は発表します。"
  cat talk.txt | speechstyle analyze --format json -
  speechstyle analyze --chart radar.html talk.txt`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().StringVar(&inlineText, "text", "", "Analyze this text instead of reading a file")
	analyzeCmd.Flags().Float64VarP(&duration, config.KeyDuration, "d", config.DefaultDurationSeconds, "Assumed recording length in seconds")
	analyzeCmd.Flags().StringVar(&chartPath, "chart", "", "Also write the radar chart as an HTML page to this path")
	RootCmd.AddCommand(analyzeCmd)
}

// analyzeOptions is everything an analysis run needs, resolved from flags
// and configuration
type analyzeOptions struct {
	Path  string
	Text  string
	Stdin io.Reader

	// DurationSeconds is the configured duration. It wins over transcript
	// metadata only when DurationSet is true.
	DurationSeconds float64
	DurationSet     bool

	Format    string
	Labels    string
	ChartPath string
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts := analyzeOptions{
		Text:            inlineText,
		Stdin:           cmd.InOrStdin(),
		DurationSeconds: settings.DurationSeconds,
		DurationSet:     cmd.Flags().Changed(config.KeyDuration),
		Format:          settings.Format,
		Labels:          settings.Labels,
		ChartPath:       chartPath,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}

	if opts.Path == "" && opts.Text == "" {
		if f, ok := opts.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("no transcript given: pass a file, - for stdin, or --text")
		}
		opts.Path = transcript.StdinPath
	}

	return analyze(cmd.Context(), opts, GetUI(), GetLogger())
}

// analyze runs the full pipeline for one transcript and writes the report
func analyze(ctx context.Context, opts analyzeOptions, u *ui.UI, log *logrus.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := labels.Load(opts.Labels)
	if err != nil {
		return err
	}

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	progress.SetStage(ui.StageLoadTranscript)
	tr, err := loadTranscript(opts)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"source": tr.Path,
		"format": tr.Format,
		"runes":  len([]rune(tr.Text)),
	}).Debug("loaded transcript")

	if tr.Text == "" {
		log.Debug("transcript is empty, nothing to diagnose")
		return nil
	}

	seconds := resolveDuration(opts, tr)
	log.WithField("seconds", seconds).Debug("resolved duration")

	progress.SetStage(ui.StageLoadDictionary)
	tok, err := newTokenizer()
	if err != nil {
		return fmt.Errorf("failed to load tokenizer: %w", err)
	}

	d := diagnosis.New(tok, diagnosis.WithStageHook(func(s diagnosis.Stage) {
		progress.SetStage(uiStage(s))
		log.WithField("stage", s).Debug("diagnosis stage")
	}))

	res, err := d.Diagnose(ctx, tr.Text, seconds)
	if errors.Is(err, diagnosis.ErrEmptyText) {
		return nil
	}
	if err != nil {
		return err
	}

	// Stop progress before reporting
	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	if !transcript.IsJapanese(tr.Text) {
		u.Warn("%s does not look like Japanese; results may not be meaningful", sourceName(tr))
	}

	doc := &reporter.Document{
		Title:  tr.Title,
		Source: sourceName(tr),
		Result: res,
	}

	var rep reporter.Reporter
	switch opts.Format {
	case "json":
		rep = reporter.NewJSONReporter(u.Writer, set)
	default:
		rep = reporter.NewTerminalReporter(u.Writer, u, set)
	}
	if err := rep.Report(doc); err != nil {
		return err
	}

	if opts.ChartPath != "" {
		if err := writeChart(opts.ChartPath, doc, set); err != nil {
			return err
		}
		log.WithField("path", opts.ChartPath).Info("wrote radar chart")
	}

	return nil
}

func loadTranscript(opts analyzeOptions) (*transcript.Transcript, error) {
	switch {
	case opts.Text != "":
		return transcript.FromText(opts.Text), nil
	case opts.Path == transcript.StdinPath:
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return transcript.LoadReader(opts.Path, stdin)
	default:
		return transcript.Load(opts.Path)
	}
}

// resolveDuration applies the precedence: explicit flag, then transcript
// metadata, then configuration.
func resolveDuration(opts analyzeOptions, tr *transcript.Transcript) float64 {
	if !opts.DurationSet && tr.HasDuration() {
		return tr.DurationSeconds
	}
	return opts.DurationSeconds
}

func writeChart(path string, doc *reporter.Document, set *labels.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := reporter.NewChartReporter(f, set).Report(doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sourceName(tr *transcript.Transcript) string {
	switch tr.Path {
	case "":
		return "text"
	case transcript.StdinPath:
		return "stdin"
	default:
		return tr.Path
	}
}

func uiStage(s diagnosis.Stage) ui.Stage {
	switch s {
	case diagnosis.StageTokenize:
		return ui.StageTokenize
	case diagnosis.StageMeasure:
		return ui.StageMeasure
	case diagnosis.StageClassify:
		return ui.StageClassify
	case diagnosis.StageFeedback:
		return ui.StageFeedback
	default:
		return ui.StageDone
	}
}
