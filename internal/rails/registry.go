package rails

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrUnknownPaymentMethod is returned when no rail serves a payment method name.
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// RailKind identifies one of the rail variants.
type RailKind string

const (
	KindCorrespondent   RailKind = "correspondent"
	KindRegionalInstant RailKind = "regional_instant"
	KindCrypto          RailKind = "crypto"
)

// RegistryConfig holds the per-variant configuration and the method name mapping.
type RegistryConfig struct {
	Correspondent   CorrespondentConfig
	RegionalInstant RegionalInstantConfig
	Crypto          CryptoConfig
	Methods         map[string]RailKind
}

// DefaultMethods maps every catalog payment method onto its rail variant.
func DefaultMethods() map[string]RailKind {
	return map[string]RailKind{
		"SWIFT Wire Transfer":   KindCorrespondent,
		"Correspondent Banking": KindCorrespondent,
		"International ACH":     KindCorrespondent,
		"Same-Day Wire":         KindCorrespondent,
		"Overnight Express":     KindCorrespondent,
		"SEPA Credit Transfer":  KindRegionalInstant,
		"SEPA Instant":          KindRegionalInstant,
		"Bitcoin Network":       KindCrypto,
		"Ethereum Network":      KindCrypto,
		"Lightning Network":     KindCrypto,
	}
}

// DefaultRegistryConfig returns the default schedules with business hours evaluated in
// loc and time read from clock. Nil arguments fall back to UTC and time.Now.
func DefaultRegistryConfig(loc *time.Location, clock func() time.Time) RegistryConfig {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}

	correspondent := DefaultCorrespondentConfig()
	correspondent.Hours = BusinessHours(loc)
	correspondent.Clock = clock

	regional := DefaultRegionalInstantConfig()
	regional.Hours = BusinessHours(loc)
	regional.Clock = clock

	crypto := DefaultCryptoConfig()
	crypto.Clock = clock

	return RegistryConfig{
		Correspondent:   correspondent,
		RegionalInstant: regional,
		Crypto:          crypto,
		Methods:         DefaultMethods(),
	}
}

// Registry resolves payment method names to rails. It only holds configuration;
// every Resolve builds a fresh rail.
type Registry struct {
	cfg RegistryConfig
}

// NewRegistry creates a registry. The method mapping is copied.
func NewRegistry(cfg RegistryConfig) *Registry {
	methods := make(map[string]RailKind, len(cfg.Methods))
	for name, kind := range cfg.Methods {
		methods[name] = kind
	}
	cfg.Methods = methods
	return &Registry{cfg: cfg}
}

// Resolve returns the rail serving methodName.
func (r *Registry) Resolve(methodName string) (PaymentRail, error) {
	kind, ok := r.cfg.Methods[methodName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPaymentMethod, methodName)
	}
	switch kind {
	case KindCorrespondent:
		return NewCorrespondentRail(r.cfg.Correspondent), nil
	case KindRegionalInstant:
		return NewRegionalInstantRail(r.cfg.RegionalInstant), nil
	case KindCrypto:
		return NewCryptoRail(r.cfg.Crypto), nil
	default:
		return nil, fmt.Errorf("%w: %s mapped to unsupported rail kind %q", ErrUnknownPaymentMethod, methodName, kind)
	}
}

// Supports reports whether methodName has a rail.
func (r *Registry) Supports(methodName string) bool {
	_, ok := r.cfg.Methods[methodName]
	return ok
}

// MethodNames lists the supported payment method names in sorted order.
func (r *Registry) MethodNames() []string {
	names := make([]string, 0, len(r.cfg.Methods))
	for name := range r.cfg.Methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MethodsFor lists the method names served by a rail kind, sorted.
func (r *Registry) MethodsFor(kind RailKind) []string {
	var names []string
	for name, k := range r.cfg.Methods {
		if k == kind {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Accepts reports whether the rail serving instr's payment method would take the
// instruction. Unknown methods are not accepted.
func (r *Registry) Accepts(instr Instruction) bool {
	rail, err := r.Resolve(instr.PaymentMethodName)
	if err != nil {
		return false
	}
	return rail.Validate(instr).Valid
}
