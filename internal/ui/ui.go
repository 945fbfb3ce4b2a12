package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/ghissues/internal/errors"
	"github.com/thomas-vilte/ghissues/internal/i18n"
)

var (
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// SmartSpinner wraps a terminal spinner. It stays silent when its output
// is not a terminal.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

func NewSmartSpinner(out *os.File, initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithWriterFile(out),
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

// WithSpinner runs fn while a spinner with message is shown on out.
func WithSpinner(out *os.File, message string, fn func() error) error {
	s := NewSmartSpinner(out, message)
	s.Start()
	defer s.Stop()

	return fn()
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Warning.Sprint("⚠️"), Warning.Sprint(msg))
}

// HandleAppError writes err to w in a friendly way. Recoverable errors are
// shown as warnings. If t is nil, English defaults are used.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	tryPrefix := "💡 Try: "
	details := "Details"
	if t != nil {
		tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		details = t.GetMessage("ui_error.details", 0, nil)
	}

	_, _ = fmt.Fprintln(w)
	header := fmt.Sprintf("%s: %s", appErr.Type, appErr.Message)
	if domainErrors.IsRecoverable(appErr) {
		PrintWarning(w, header)
	} else {
		PrintError(w, header)
	}

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   %s: %v\n", details, appErr.Err)
	}

	if v, ok := appErr.Context["variable"]; ok {
		_, _ = Dim.Fprintf(w, "   variable: %v\n", v)
	}

	if appErr.Suggestion != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = Info.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}
