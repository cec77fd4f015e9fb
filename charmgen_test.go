package charmgen_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-charmgen"
	"github.com/goliatone/go-charmgen/pkg/charm"
)

func TestRenderClass(t *testing.T) {
	rc := charmgen.RenderContext{
		CharmClass: "NeutronOVSCharm",
		Metadata:   charm.Metadata{Package: "neutron-openvswitch"},
		Release:    "wallaby",
		Packages:   []string{"openvswitch-switch", "neutron-common"},
	}
	out, err := charmgen.RenderClass(context.Background(), rc)
	if err != nil {
		t.Fatalf("render class: %v", err)
	}
	for _, want := range []string{
		"class NeutronOVSCharm(charms_openstack.charm.OpenStackCharm):\n",
		"    service_name = name = 'neutron-openvswitch'\n",
		"    release = 'wallaby'\n",
		"    packages = ['openvswitch-switch', 'neutron-common']\n",
	} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	rc.CharmClass = "123Bad"
	if _, err := charmgen.RenderClass(context.Background(), rc); !errors.Is(err, charm.ErrInvalidIdentifier) {
		t.Fatalf("expected invalid identifier error, got %v", err)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(charmgen.EmbeddedTemplates(), "templates/charm_class.py.tpl")
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), "{{ import_block|safe }}") {
		t.Fatalf("embedded template missing import block placeholder")
	}
}

func TestRenderClass_DefaultCapabilityHints(t *testing.T) {
	rc := charmgen.RenderContext{
		CharmClass: "NeutronOVSCharm",
		Metadata:   charm.Metadata{Package: "neutron-openvswitch"},
		Release:    "wallaby",
		Packages:   []string{},
	}
	out, err := charmgen.RenderClass(context.Background(), rc)
	if err != nil {
		t.Fatalf("render class: %v", err)
	}
	want := "import charms_openstack.charm\n" +
		"# import charms_openstack.sdn.odl as odl\n" +
		"# import charms_openstack.sdn.ovs as ovs\n" +
		"\n\nclass NeutronOVSCharm("
	if !strings.Contains(string(out), want) {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
}
