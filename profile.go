package bandforge

// PrinterProfile supplies the build-volume bounds of a printer. The core
// consumes only these three values and performs no other profile
// interpretation.
type PrinterProfile struct {
	BedXMM float64
	BedYMM float64
	BedZMM float64
}

// ProfileStore resolves printer profiles by id. It is implemented by the
// printer-profile collaborator; StaticProfiles is a ready-made in-memory
// implementation.
type ProfileStore interface {
	// Profile returns the profile for id and whether it exists.
	Profile(id string) (PrinterProfile, bool)
}

// StaticProfiles is a fixed id → profile table.
type StaticProfiles map[string]PrinterProfile

// Profile implements ProfileStore.
func (s StaticProfiles) Profile(id string) (PrinterProfile, bool) {
	p, ok := s[id]
	return p, ok
}

// genericProfile is the fallback build volume used when a profile id is
// unknown.
var genericProfile = PrinterProfile{BedXMM: 250, BedYMM: 250, BedZMM: 250}

// BuiltinProfiles returns build volumes for the tested community
// printers. Unknown ids fall back to a generic 250×250×250 volume via
// resolveProfile.
func BuiltinProfiles() StaticProfiles {
	return StaticProfiles{
		"anycubic_kobra3": {BedXMM: 250, BedYMM: 250, BedZMM: 260},
		"bambulab_x1":     {BedXMM: 256, BedYMM: 256, BedZMM: 256},
		"ender_3":         {BedXMM: 220, BedYMM: 220, BedZMM: 250},
		"prusa_mk4":       {BedXMM: 250, BedYMM: 210, BedZMM: 220},
		"prusa_mini":      {BedXMM: 180, BedYMM: 180, BedZMM: 180},
		"voron_zero":      {BedXMM: 120, BedYMM: 120, BedZMM: 120},
		"generic":         genericProfile,
	}
}

// resolveProfile looks up id in store, falling back to the generic
// profile when the store is nil or the id is unknown.
func resolveProfile(store ProfileStore, id string) PrinterProfile {
	if store != nil {
		if p, ok := store.Profile(id); ok {
			return p
		}
	}
	Logger().Warn("unknown printer profile, using generic bed bounds",
		"profile_id", id)
	return genericProfile
}
