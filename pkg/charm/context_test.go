package charm_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-charmgen/pkg/charm"
)

func validContext() charm.RenderContext {
	return charm.RenderContext{
		CharmClass: "NeutronOVSCharm",
		Metadata:   charm.Metadata{Package: "neutron-openvswitch"},
		Release:    "wallaby",
		Packages:   []string{"openvswitch-switch", "neutron-common"},
	}
}

func TestRenderContext_ValidateAcceptsComplete(t *testing.T) {
	if err := validContext().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	empty := validContext()
	empty.Packages = []string{}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty package list should be valid: %v", err)
	}
}

func TestRenderContext_ValidateMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*charm.RenderContext)
		field string
	}{
		{"charm class", func(rc *charm.RenderContext) { rc.CharmClass = "" }, charm.FieldCharmClass},
		{"blank charm class", func(rc *charm.RenderContext) { rc.CharmClass = "  " }, charm.FieldCharmClass},
		{"package", func(rc *charm.RenderContext) { rc.Metadata.Package = "" }, charm.FieldPackage},
		{"release", func(rc *charm.RenderContext) { rc.Release = "" }, charm.FieldRelease},
		{"packages", func(rc *charm.RenderContext) { rc.Packages = nil }, charm.FieldPackages},
		{"blank package entry", func(rc *charm.RenderContext) { rc.Packages = []string{"a", " "} }, "packages[1]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc := validContext()
			tc.mut(&rc)

			err := rc.Validate()
			if !errors.Is(err, charm.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			var missing *charm.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *MissingFieldError, got %T", err)
			}
			if missing.Field != tc.field {
				t.Fatalf("field mismatch: want %q got %q", tc.field, missing.Field)
			}
		})
	}
}

func TestRenderContext_ValidateInvalidIdentifier(t *testing.T) {
	for _, name := range []string{"123Bad", "Bad-Name", "class", "With Space", "Dotted.Name", "__debug__", "Bad\u2e2f", "\u2e2fX"} {
		rc := validContext()
		rc.CharmClass = name

		err := rc.Validate()
		if !errors.Is(err, charm.ErrInvalidIdentifier) {
			t.Fatalf("%q: expected ErrInvalidIdentifier, got %v", name, err)
		}
	}

	for _, name := range []string{"_Private", "Charm2", "Überlauf", "\u2160Roman", "A\u00b7B", "\u2118x", "__debug"} {
		rc := validContext()
		rc.CharmClass = name
		if err := rc.Validate(); err != nil {
			t.Fatalf("%q: unexpected error %v", name, err)
		}
	}
}

func TestRenderContext_ValidateSerialization(t *testing.T) {
	rc := validContext()
	rc.Packages = []string{"ok", "bad\nname"}

	err := rc.Validate()
	var serr *charm.SerializationError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SerializationError, got %v", err)
	}
	if serr.Field != charm.FieldPackages || serr.Index != 1 {
		t.Fatalf("unexpected location %s[%d]", serr.Field, serr.Index)
	}

	rc = validContext()
	rc.Release = "wall\x00aby"
	if err := rc.Validate(); !errors.Is(err, charm.ErrSerialization) {
		t.Fatalf("expected ErrSerialization for release, got %v", err)
	}
}

func TestRenderContext_ValidateCapabilities(t *testing.T) {
	rc := validContext()
	rc.Capabilities = []charm.CapabilityModule{{Module: "charms_openstack.sdn.9odl", Alias: "odl"}}
	if err := rc.Validate(); !errors.Is(err, charm.ErrInvalidIdentifier) {
		t.Fatalf("expected invalid module path, got %v", err)
	}

	rc.Capabilities = []charm.CapabilityModule{{Module: "charms_openstack.sdn.odl", Alias: "import"}}
	if err := rc.Validate(); !errors.Is(err, charm.ErrInvalidIdentifier) {
		t.Fatalf("expected invalid alias, got %v", err)
	}
}

func TestRenderContext_MissingOrder(t *testing.T) {
	got := charm.RenderContext{}.Missing()
	want := []string{charm.FieldCharmClass, charm.FieldPackage, charm.FieldRelease, charm.FieldPackages}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderContext_Merge(t *testing.T) {
	base := validContext()
	merged := base.Merge(charm.RenderContext{Release: "xena", Packages: []string{}})

	want := validContext()
	want.Release = "xena"
	want.Packages = []string{}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	merged = base.Merge(charm.RenderContext{})
	merged.Packages[0] = "changed"
	if base.Packages[0] != "openvswitch-switch" {
		t.Fatalf("merge must not alias the input packages slice")
	}
}

func TestRenderContext_MergeIgnoresBlankOverrides(t *testing.T) {
	merged := validContext().Merge(charm.RenderContext{
		CharmClass: "  ",
		Metadata:   charm.Metadata{Package: "\t"},
		Release:    " ",
	})
	if diff := cmp.Diff(validContext(), merged); diff != "" {
		t.Fatalf("blank overrides must not replace values (-want +got):\n%s", diff)
	}
	if missing := merged.Missing(); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}

func TestRenderContext_EffectiveCapabilities(t *testing.T) {
	rc := validContext()
	if diff := cmp.Diff(charm.DefaultCapabilities(), rc.EffectiveCapabilities()); diff != "" {
		t.Fatalf("default capabilities mismatch (-want +got):\n%s", diff)
	}

	rc.Capabilities = []charm.CapabilityModule{}
	if got := rc.EffectiveCapabilities(); len(got) != 0 {
		t.Fatalf("expected no capabilities, got %v", got)
	}

	odl := charm.CapabilityModule{Module: "charms_openstack.sdn.odl", Alias: "odl"}
	if got := odl.ImportSpec(); got != "charms_openstack.sdn.odl as odl" {
		t.Fatalf("unexpected import spec %q", got)
	}
}
