package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the terminal so prompting logic can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type askFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

type surveyDriver struct {
	ask askFunc
}

// NewSurveyDriver returns a Driver that prompts on the controlling terminal.
func NewSurveyDriver() Driver {
	return &surveyDriver{ask: survey.AskOne}
}

type answer struct {
	value string
	err   error
}

// Input returns ctx.Err() as soon as ctx is done, even while survey is still
// waiting on the terminal. The abandoned read ends when stdin closes or the
// process exits.
func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validator(s)
		}))
	}

	done := make(chan answer, 1)
	go func() {
		var out string
		err := d.ask(prompt, &out, opts...)
		done <- answer{value: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", translateSurveyErr(res.err)
		}
		return res.value, nil
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
