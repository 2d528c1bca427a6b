package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pthm/speechstyle/internal/config"
	"github.com/pthm/speechstyle/internal/diagnosis"
	"github.com/pthm/speechstyle/internal/labels"
	"github.com/pthm/speechstyle/internal/reporter"
	"github.com/pthm/speechstyle/internal/tokenizer"
	"github.com/pthm/speechstyle/internal/ui"
	"github.com/spf13/cobra"
)

var interactiveDuration float64

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Type or paste a transcript and see the diagnosis live",
	Long: `Open an interactive form with a transcript box and a duration
slider. The diagnosis is recomputed whenever the text or the duration
changes.

Keys:
  tab          Switch between transcript and slider
  ←/→          Adjust duration (slider focused)
  pgup/pgdn    Scroll results
  esc/ctrl+c   Quit`,
	Args:         cobra.NoArgs,
	RunE:         runInteractive,
	SilenceUsage: true,
}

func init() {
	interactiveCmd.Flags().Float64VarP(&interactiveDuration, config.KeyDuration, "d", config.DefaultDurationSeconds, "Initial slider position in seconds")
	RootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	u := GetUI()
	if !u.IsInteractive() {
		return errors.New("interactive mode requires a terminal")
	}

	set, err := labels.Load(settings.Labels)
	if err != nil {
		return err
	}

	spinner := u.StartSimpleSpinner(u.ErrWriter, "Loading dictionary...")
	tok, err := newTokenizer()
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("failed to load tokenizer: %w", err)
	}

	model := ui.NewFormModel(ui.FormConfig{
		Title:           set.Title,
		Placeholder:     set.Form.Input.Render(u.ShowIcons()),
		DurationLabel:   set.Form.Duration.Render(u.ShowIcons()),
		DurationSeconds: int(math.Round(settings.DurationSeconds)),
		Render:          formRenderer(tok, u, set),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive form: %w", err)
	}
	return nil
}

// formRenderer diagnoses the form's contents and renders them the same way
// the analyze command does
func formRenderer(tok tokenizer.Tokenizer, u *ui.UI, set *labels.Set) ui.RenderFunc {
	d := diagnosis.New(tok)
	rep := reporter.NewTerminalReporter(io.Discard, u, set)
	log := GetLogger()

	return func(text string, durationSeconds int) string {
		res, err := d.Diagnose(context.Background(), text, float64(durationSeconds))
		if errors.Is(err, diagnosis.ErrEmptyText) {
			return ""
		}
		if err != nil {
			log.WithError(err).Debug("diagnosis failed")
			return u.Styles.Error.Render(fmt.Sprintf("%s %v", u.Styles.IconError, err))
		}
		return rep.Render(&reporter.Document{Result: res})
	}
}
