package spec

// ViewMode selects how sections are grouped for navigation.
type ViewMode string

const (
	// ModePaper partitions the specification into the two exam papers.
	ModePaper ViewMode = "paper"
	// ModeSpec presents one unified, unpartitioned listing.
	ModeSpec ViewMode = "spec"
)

// GroupKind distinguishes a single-section entry from a titled group.
type GroupKind string

const (
	GroupSingle GroupKind = "single"
	GroupMulti  GroupKind = "group"
)

// Group is a display-level aggregation of sections for navigation.
// A single group references one section by key; a multi group carries its
// own title and icon plus an ordered list of section ids.
type Group struct {
	Kind     GroupKind
	Key      string // section id when Kind == GroupSingle
	Title    string
	Icon     string
	Sections []string // section ids when Kind == GroupMulti
}

// paperModeGroups and specModeGroups are two independent static tables.
// They are allowed to diverge (circular motion and SHM are single entries
// split across papers in paper mode, but one merged group in spec mode)
// and must never be derived from each other.
var paperModeGroups = map[Paper][]Group{
	Paper1: {
		{Kind: GroupMulti, Title: "3.1 Measurements and their errors", Icon: "settings", Sections: []string{"measurements_errors", "number_work"}},
		{Kind: GroupMulti, Title: "3.2 Particles & Radiation", Icon: "atom", Sections: []string{"atomic_structure", "particle_interactions", "quantum_phenomena"}},
		{Kind: GroupMulti, Title: "3.3 Waves", Icon: "waves", Sections: []string{"waves_properties", "stationary_waves", "interference_patterns", "waves_optics"}},
		{Kind: GroupMulti, Title: "3.4 Mechanics & Materials", Icon: "target", Sections: []string{"vectors_scalars", "mechanics_moments", "motion_kinematics", "mechanics_dynamics", "mechanics_energy", "mechanics_materials"}},
		{Kind: GroupMulti, Title: "3.5 Electricity", Icon: "zap", Sections: []string{"current_voltage", "dc_circuits"}},
		{Kind: GroupSingle, Key: "circular_motion"},
	},
	Paper2: {
		{Kind: GroupSingle, Key: "simple_harmonic_motion"},
		{Kind: GroupMulti, Title: "3.6.2 Thermal Physics", Icon: "settings", Sections: []string{"thermal_energy_transfer", "ideal_gases", "kinetic_theory"}},
		{Kind: GroupMulti, Title: "3.7a G and E Fields", Icon: "globe", Sections: []string{"gravitational_fields", "electric_fields", "fields_capacitance"}},
		{Kind: GroupMulti, Title: "3.7b Magnetic Fields", Icon: "settings", Sections: []string{"magnetic_forces", "electromagnetic_induction", "ac_transformers"}},
		{Kind: GroupMulti, Title: "3.8 Nuclear Physics", Icon: "shield", Sections: []string{"nuclear_radioactivity", "nuclear_structure_energy", "nuclear_applications_safety"}},
	},
}

var specModeGroups = []Group{
	{Kind: GroupMulti, Title: "3.1 Measurements and their errors", Icon: "settings", Sections: []string{"measurements_errors", "number_work"}},
	{Kind: GroupMulti, Title: "3.2 Particles & Radiation", Icon: "atom", Sections: []string{"atomic_structure", "particle_interactions", "quantum_phenomena"}},
	{Kind: GroupMulti, Title: "3.3 Waves", Icon: "waves", Sections: []string{"waves_properties", "stationary_waves", "interference_patterns", "waves_optics"}},
	{Kind: GroupMulti, Title: "3.4 Mechanics & Materials", Icon: "target", Sections: []string{"vectors_scalars", "mechanics_moments", "motion_kinematics", "mechanics_dynamics", "mechanics_energy", "mechanics_materials"}},
	{Kind: GroupMulti, Title: "3.5 Electricity", Icon: "zap", Sections: []string{"current_voltage", "dc_circuits"}},
	{Kind: GroupMulti, Title: "3.6.1 Periodic motion", Icon: "target", Sections: []string{"circular_motion", "simple_harmonic_motion"}},
	{Kind: GroupMulti, Title: "3.6.2 Thermal Physics", Icon: "settings", Sections: []string{"thermal_energy_transfer", "ideal_gases", "kinetic_theory"}},
	{Kind: GroupMulti, Title: "3.7a G and E Fields", Icon: "globe", Sections: []string{"gravitational_fields", "electric_fields", "fields_capacitance"}},
	{Kind: GroupMulti, Title: "3.7b Magnetic Fields", Icon: "settings", Sections: []string{"magnetic_forces", "electromagnetic_induction", "ac_transformers"}},
	{Kind: GroupMulti, Title: "3.8 Nuclear Physics", Icon: "shield", Sections: []string{"nuclear_radioactivity", "nuclear_structure_energy", "nuclear_applications_safety"}},
}
