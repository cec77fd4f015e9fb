package charm

import (
	"fmt"
	"strings"
)

// BaseClassRef names the framework class every generated charm extends. The
// hierarchy lives in charms.openstack; only the reference is emitted.
const BaseClassRef = "charms_openstack.charm.OpenStackCharm"

// Field names as they appear in context documents and error messages.
const (
	FieldCharmClass   = "charm_class"
	FieldPackage      = "metadata.package"
	FieldRelease      = "release"
	FieldPackages     = "packages"
	FieldCapabilities = "capabilities"
)

// Metadata carries the subset of charm metadata the class template uses.
type Metadata struct {
	Package string `json:"package" yaml:"package"`
}

// CapabilityModule references an optional framework module, such as an SDN
// driver, that a charm may import. Disabled modules are emitted as commented
// import hints for maintainers.
type CapabilityModule struct {
	Module  string `json:"module" yaml:"module"`
	Alias   string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// ImportSpec returns the import target, e.g. "charms_openstack.sdn.odl as odl".
func (c CapabilityModule) ImportSpec() string {
	if c.Alias == "" {
		return c.Module
	}
	return c.Module + " as " + c.Alias
}

// DefaultCapabilities are the SDN driver hints emitted when a context does not
// declare capabilities.
func DefaultCapabilities() []CapabilityModule {
	return []CapabilityModule{
		{Module: "charms_openstack.sdn.odl", Alias: "odl"},
		{Module: "charms_openstack.sdn.ovs", Alias: "ovs"},
	}
}

// RenderContext holds the substitution values for one charm class. A nil
// Packages slice means the field is absent; an empty one renders as "[]".
// A nil Capabilities slice selects DefaultCapabilities, an empty one emits no
// hints.
type RenderContext struct {
	CharmClass   string             `json:"charm_class" yaml:"charm_class"`
	Metadata     Metadata           `json:"metadata" yaml:"metadata"`
	Release      string             `json:"release" yaml:"release"`
	Packages     []string           `json:"packages" yaml:"packages"`
	Capabilities []CapabilityModule `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// Validate checks presence of the required fields, then identifier syntax,
// then literal encodability, returning the first problem found.
func (rc RenderContext) Validate() error {
	if err := rc.checkPresent(); err != nil {
		return err
	}
	if err := CheckIdentifier(FieldCharmClass, rc.CharmClass); err != nil {
		return err
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{FieldPackage, rc.Metadata.Package},
		{FieldRelease, rc.Release},
	} {
		if reason := literalProblem(field.value); reason != "" {
			return &SerializationError{Field: field.name, Index: -1, Value: field.value, Reason: reason}
		}
	}
	for i, pkg := range rc.Packages {
		if strings.TrimSpace(pkg) == "" {
			return &MissingFieldError{Field: fmt.Sprintf("%s[%d]", FieldPackages, i)}
		}
		if reason := literalProblem(pkg); reason != "" {
			return &SerializationError{Field: FieldPackages, Index: i, Value: pkg, Reason: reason}
		}
	}

	for i, capability := range rc.Capabilities {
		field := fmt.Sprintf("%s[%d]", FieldCapabilities, i)
		if err := CheckDottedName(field+".module", capability.Module); err != nil {
			return err
		}
		if capability.Alias != "" {
			if err := CheckIdentifier(field+".alias", capability.Alias); err != nil {
				return err
			}
		}
	}
	return nil
}

// Missing lists the required fields that are absent, in declaration order.
func (rc RenderContext) Missing() []string {
	var missing []string
	if strings.TrimSpace(rc.CharmClass) == "" {
		missing = append(missing, FieldCharmClass)
	}
	if strings.TrimSpace(rc.Metadata.Package) == "" {
		missing = append(missing, FieldPackage)
	}
	if strings.TrimSpace(rc.Release) == "" {
		missing = append(missing, FieldRelease)
	}
	if rc.Packages == nil {
		missing = append(missing, FieldPackages)
	}
	return missing
}

func (rc RenderContext) checkPresent() error {
	if missing := rc.Missing(); len(missing) > 0 {
		return &MissingFieldError{Field: missing[0]}
	}
	return nil
}

// EffectiveCapabilities resolves the capability list used for rendering.
func (rc RenderContext) EffectiveCapabilities() []CapabilityModule {
	if rc.Capabilities == nil {
		return DefaultCapabilities()
	}
	return append([]CapabilityModule(nil), rc.Capabilities...)
}

// Merge returns a copy of rc where every non-blank field of override wins.
// Slices are copied so the result shares no backing arrays with either input.
func (rc RenderContext) Merge(override RenderContext) RenderContext {
	out := rc
	if strings.TrimSpace(override.CharmClass) != "" {
		out.CharmClass = override.CharmClass
	}
	if strings.TrimSpace(override.Metadata.Package) != "" {
		out.Metadata.Package = override.Metadata.Package
	}
	if strings.TrimSpace(override.Release) != "" {
		out.Release = override.Release
	}
	if override.Packages != nil {
		out.Packages = override.Packages
	}
	if override.Capabilities != nil {
		out.Capabilities = override.Capabilities
	}
	if out.Packages != nil {
		out.Packages = append(make([]string, 0, len(out.Packages)), out.Packages...)
	}
	if out.Capabilities != nil {
		out.Capabilities = append(make([]CapabilityModule, 0, len(out.Capabilities)), out.Capabilities...)
	}
	return out
}
