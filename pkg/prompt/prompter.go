package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-charmgen/pkg/charm"
)

// Prompter fills missing render context fields through a Driver.
type Prompter struct {
	driver Driver
}

// New returns a Prompter using driver, or the survey driver when nil.
func New(driver Driver) *Prompter {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Prompter{driver: driver}
}

// Fill asks for every field reported by rc.Missing and returns the completed
// copy. Present fields are never prompted for.
func (p *Prompter) Fill(ctx context.Context, rc charm.RenderContext) (charm.RenderContext, error) {
	if p == nil || p.driver == nil {
		return rc, ErrNoDriver
	}

	out := rc.Merge(charm.RenderContext{})
	for _, field := range rc.Missing() {
		answer, err := p.driver.Input(ctx, inputFor(field))
		if err != nil {
			return rc, fmt.Errorf("prompt: %s: %w", field, err)
		}
		answer = strings.TrimSpace(answer)

		switch field {
		case charm.FieldCharmClass:
			out.CharmClass = answer
		case charm.FieldPackage:
			out.Metadata.Package = answer
		case charm.FieldRelease:
			out.Release = answer
		case charm.FieldPackages:
			out.Packages = SplitList(answer)
		}
	}
	return out, nil
}

// SplitList splits a comma or whitespace separated answer into package names.
// An empty answer yields an empty, non-nil list.
func SplitList(answer string) []string {
	fields := strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func inputFor(field string) InputConfig {
	switch field {
	case charm.FieldCharmClass:
		return InputConfig{
			Message: "Charm class name:",
			Help:    "Python class name, e.g. NeutronOVSCharm",
			Validator: func(s string) error {
				return charm.CheckIdentifier(charm.FieldCharmClass, strings.TrimSpace(s))
			},
		}
	case charm.FieldPackage:
		return InputConfig{
			Message:   "Charm package name:",
			Help:      "Used for service_name and name, e.g. neutron-openvswitch",
			Validator: required(field),
		}
	case charm.FieldRelease:
		return InputConfig{
			Message:   "First supported OpenStack release:",
			Help:      "Release codename, e.g. wallaby",
			Validator: required(field),
		}
	default:
		return InputConfig{
			Message: "Packages to install (comma separated):",
			Help:    "Leave empty for no packages",
		}
	}
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return &charm.MissingFieldError{Field: field}
		}
		return nil
	}
}
