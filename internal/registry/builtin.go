package registry

import "github.com/DukeRupert/roadworthy/internal/domain"

// Builtin checklist version identifiers.
const (
	VersionInitial160 = "initial-160-v1"
	VersionQuarterly  = "quarterly-v1"
)

// Builtin returns a catalog with the shipped checklist versions: the
// 160-point initial inspection and the quarterly safety check.
func Builtin() *Catalog {
	c, err := NewCatalog(Initial160(), Quarterly())
	if err != nil {
		panic(err) // versions are distinct constants
	}
	return c
}

// p keeps the definition tables readable.
func p(id string, cat domain.PointCategory, tier domain.CriticalityTier, weight int, desc string) PointDefinition {
	return PointDefinition{ID: id, Category: cat, Tier: tier, Weight: weight, Description: desc}
}

// Initial160 returns the 160-point initial inspection checklist.
func Initial160() *Registry {
	const (
		crit = domain.TierCritical
		maj  = domain.TierMajor
		std  = domain.TierStandard
		min  = domain.TierMinor
	)

	defs := []PointDefinition{
		// Braking
		p("brk-pads-front", domain.CategoryBraking, crit, 10, "Front brake pad thickness"),
		p("brk-pads-rear", domain.CategoryBraking, crit, 10, "Rear brake pad thickness"),
		p("brk-rotors-front", domain.CategoryBraking, crit, 10, "Front rotor condition and runout"),
		p("brk-rotors-rear", domain.CategoryBraking, crit, 9, "Rear rotor condition and runout"),
		p("brk-lines", domain.CategoryBraking, crit, 12, "Brake line and hose integrity"),
		p("brk-fluid", domain.CategoryBraking, crit, 8, "Brake fluid level and condition"),
		p("brk-master", domain.CategoryBraking, crit, 11, "Master cylinder operation"),
		p("brk-parking", domain.CategoryBraking, maj, 6, "Parking brake engagement and travel"),
		p("brk-abs", domain.CategoryBraking, crit, 9, "ABS warning lamp and operation"),
		p("brk-pedal", domain.CategoryBraking, crit, 8, "Brake pedal feel and travel"),

		// Steering
		p("str-play", domain.CategorySteering, crit, 12, "Steering wheel free play"),
		p("str-rack", domain.CategorySteering, crit, 11, "Steering rack mounting and leaks"),
		p("str-tie-rods", domain.CategorySteering, crit, 10, "Tie rod end wear"),
		p("str-ball-joints", domain.CategorySteering, crit, 10, "Ball joint wear"),
		p("str-pump", domain.CategorySteering, maj, 6, "Power steering pump operation and noise"),
		p("str-fluid", domain.CategorySteering, maj, 4, "Power steering fluid level and condition"),
		p("str-column", domain.CategorySteering, crit, 8, "Steering column coupling and lock"),
		p("str-alignment", domain.CategorySteering, std, 3, "Alignment pull on road test"),
		p("str-boots", domain.CategorySteering, std, 2, "Steering boot condition"),
		p("str-wheel", domain.CategorySteering, maj, 5, "Steering wheel condition and controls"),

		// Tires
		p("tir-tread-fl", domain.CategoryTires, crit, 9, "Front-left tire tread depth"),
		p("tir-tread-fr", domain.CategoryTires, crit, 9, "Front-right tire tread depth"),
		p("tir-tread-rl", domain.CategoryTires, crit, 9, "Rear-left tire tread depth"),
		p("tir-tread-rr", domain.CategoryTires, crit, 9, "Rear-right tire tread depth"),
		p("tir-pressure", domain.CategoryTires, maj, 4, "Tire pressures at placard values"),
		p("tir-wear", domain.CategoryTires, std, 3, "Irregular tread wear pattern"),
		p("tir-sidewall", domain.CategoryTires, crit, 10, "Sidewall damage, cuts, or bulges"),
		p("tir-spare", domain.CategoryTires, std, 2, "Spare tire condition and pressure"),
		p("tir-wheels", domain.CategoryTires, maj, 5, "Wheel and rim damage"),
		p("tir-lugs", domain.CategoryTires, crit, 8, "Lug nut torque and stud condition"),

		// Lighting
		p("lgt-head-low", domain.CategoryLighting, maj, 6, "Low beam operation and aim"),
		p("lgt-head-high", domain.CategoryLighting, maj, 5, "High beam operation"),
		p("lgt-brake", domain.CategoryLighting, crit, 8, "Brake lamp operation"),
		p("lgt-turn", domain.CategoryLighting, maj, 5, "Turn signal operation"),
		p("lgt-tail", domain.CategoryLighting, maj, 4, "Tail lamp operation"),
		p("lgt-reverse", domain.CategoryLighting, std, 3, "Reverse lamp operation"),
		p("lgt-plate", domain.CategoryLighting, std, 2, "License plate lamp"),
		p("lgt-hazard", domain.CategoryLighting, maj, 4, "Hazard flasher operation"),
		p("lgt-fog", domain.CategoryLighting, min, 2, "Fog lamp operation"),
		p("lgt-interior", domain.CategoryLighting, min, 1, "Interior dome and map lights"),

		// Engine
		p("eng-idle", domain.CategoryEngine, maj, 6, "Idle quality and stalling"),
		p("eng-noise", domain.CategoryEngine, maj, 6, "Abnormal engine noise"),
		p("eng-mounts", domain.CategoryEngine, maj, 5, "Engine mount condition"),
		p("eng-belts", domain.CategoryEngine, maj, 5, "Drive belt condition"),
		p("eng-hoses", domain.CategoryEngine, maj, 4, "Coolant and vacuum hose condition"),
		p("eng-leaks", domain.CategoryEngine, maj, 6, "Oil and coolant leaks"),
		p("eng-air", domain.CategoryEngine, std, 3, "Air filter condition"),
		p("eng-exhaust", domain.CategoryEngine, maj, 5, "Exhaust leaks and mounting"),
		p("eng-mil", domain.CategoryEngine, maj, 7, "Check engine lamp status"),
		p("eng-start", domain.CategoryEngine, maj, 6, "Cold start behavior"),

		// Transmission
		p("trn-shift", domain.CategoryTransmission, maj, 7, "Shift quality through all gears"),
		p("trn-fluid", domain.CategoryTransmission, maj, 5, "Transmission fluid level and condition"),
		p("trn-leaks", domain.CategoryTransmission, maj, 5, "Transmission leaks"),
		p("trn-mounts", domain.CategoryTransmission, maj, 4, "Transmission mount condition"),
		p("trn-clutch", domain.CategoryTransmission, maj, 6, "Clutch engagement point and slip"),
		p("trn-driveshaft", domain.CategoryTransmission, maj, 5, "Driveshaft and U-joint condition"),
		p("trn-cv-boots", domain.CategoryTransmission, std, 3, "CV boot condition"),
		p("trn-diff", domain.CategoryTransmission, maj, 5, "Differential noise and leaks"),
		p("trn-transfer", domain.CategoryTransmission, std, 2, "Transfer case operation"),
		p("trn-linkage", domain.CategoryTransmission, std, 3, "Shift linkage adjustment"),

		// Suspension
		p("sus-shocks", domain.CategorySuspension, maj, 6, "Shock absorber damping and leaks"),
		p("sus-springs", domain.CategorySuspension, maj, 5, "Spring condition and sag"),
		p("sus-bushings", domain.CategorySuspension, std, 3, "Suspension bushing wear"),
		p("sus-control-arms", domain.CategorySuspension, maj, 6, "Control arm condition"),
		p("sus-sway-links", domain.CategorySuspension, std, 3, "Sway bar link wear"),
		p("sus-wheel-bearings", domain.CategorySuspension, crit, 8, "Wheel bearing play and noise"),
		p("sus-struts", domain.CategorySuspension, maj, 6, "Strut mount and bearing condition"),
		p("sus-ride-height", domain.CategorySuspension, std, 2, "Ride height side-to-side"),
		p("sus-bump-stops", domain.CategorySuspension, std, 2, "Bump stop condition"),
		p("sus-noise", domain.CategorySuspension, std, 3, "Suspension noise on road test"),

		// Electrical
		p("ele-battery", domain.CategoryElectrical, maj, 5, "Battery load test and terminals"),
		p("ele-alternator", domain.CategoryElectrical, maj, 6, "Charging system output"),
		p("ele-starter", domain.CategoryElectrical, maj, 5, "Starter engagement"),
		p("ele-wiring", domain.CategoryElectrical, std, 3, "Visible wiring condition"),
		p("ele-fuses", domain.CategoryElectrical, std, 2, "Fuse box condition"),
		p("ele-grounds", domain.CategoryElectrical, std, 2, "Ground strap condition"),
		p("ele-horn", domain.CategoryElectrical, maj, 4, "Horn operation"),
		p("ele-wipers", domain.CategoryElectrical, maj, 4, "Wiper and washer operation"),
		p("ele-defrost", domain.CategoryElectrical, std, 3, "Defroster operation"),
		p("ele-gauges", domain.CategoryElectrical, std, 3, "Instrument cluster gauges"),

		// Frame
		p("frm-rails", domain.CategoryFrame, crit, 10, "Frame rail corrosion and damage"),
		p("frm-crossmembers", domain.CategoryFrame, crit, 9, "Crossmember condition"),
		p("frm-rust", domain.CategoryFrame, crit, 8, "Structural rust perforation"),
		p("frm-mounts", domain.CategoryFrame, maj, 5, "Body mount condition"),
		p("frm-underbody", domain.CategoryFrame, std, 3, "Underbody coating condition"),
		p("frm-collision", domain.CategoryFrame, crit, 10, "Evidence of unrepaired collision damage"),
		p("frm-welds", domain.CategoryFrame, crit, 9, "Non-factory weld inspection"),
		p("frm-subframe", domain.CategoryFrame, crit, 9, "Subframe mounting and corrosion"),
		p("frm-rocker", domain.CategoryFrame, std, 3, "Rocker panel corrosion"),
		p("frm-floor", domain.CategoryFrame, maj, 5, "Floor pan integrity"),

		// HVAC
		p("hvc-ac", domain.CategoryHVAC, std, 3, "A/C cooling performance"),
		p("hvc-heat", domain.CategoryHVAC, std, 3, "Heater output"),
		p("hvc-blower", domain.CategoryHVAC, std, 2, "Blower operation at all speeds"),
		p("hvc-modes", domain.CategoryHVAC, std, 2, "Air distribution modes"),
		p("hvc-compressor", domain.CategoryHVAC, maj, 4, "Compressor engagement and noise"),
		p("hvc-refrigerant", domain.CategoryHVAC, std, 2, "Refrigerant leak evidence"),
		p("hvc-cabin-filter", domain.CategoryHVAC, min, 1, "Cabin air filter condition"),
		p("hvc-controls", domain.CategoryHVAC, std, 2, "HVAC control operation"),
		p("hvc-odor", domain.CategoryHVAC, min, 1, "Vent odor"),
		p("hvc-rear", domain.CategoryHVAC, min, 1, "Rear HVAC operation"),

		// Interior
		p("int-seats", domain.CategoryInterior, min, 2, "Seat condition and adjustment"),
		p("int-carpet", domain.CategoryInterior, min, 1, "Carpet and floor mat condition"),
		p("int-headliner", domain.CategoryInterior, min, 1, "Headliner condition"),
		p("int-dash", domain.CategoryInterior, std, 2, "Dashboard condition"),
		p("int-door-panels", domain.CategoryInterior, std, 2, "Interior door panels and handles"),
		p("int-trim", domain.CategoryInterior, min, 1, "Interior trim condition"),
		p("int-odor", domain.CategoryInterior, min, 1, "Interior odor (smoke, mildew)"),
		p("int-console", domain.CategoryInterior, min, 1, "Center console condition"),
		p("int-mirror", domain.CategoryInterior, std, 2, "Rearview mirror condition"),
		p("int-sunvisor", domain.CategoryInterior, min, 1, "Sun visor condition"),

		// Exterior
		p("ext-paint", domain.CategoryExterior, min, 2, "Paint condition and match"),
		p("ext-panels", domain.CategoryExterior, min, 2, "Body panel dents and gaps"),
		p("ext-glass", domain.CategoryExterior, maj, 4, "Windshield cracks and chips"),
		p("ext-mirrors", domain.CategoryExterior, std, 2, "Exterior mirror condition"),
		p("ext-bumpers", domain.CategoryExterior, min, 1, "Bumper condition"),
		p("ext-trim", domain.CategoryExterior, min, 1, "Exterior trim and moldings"),
		p("ext-doors", domain.CategoryExterior, std, 2, "Door operation and latches"),
		p("ext-hood", domain.CategoryExterior, std, 2, "Hood latch and struts"),
		p("ext-trunk", domain.CategoryExterior, min, 1, "Trunk/tailgate operation"),
		p("ext-wiper-blades", domain.CategoryExterior, min, 1, "Wiper blade condition"),

		// Fluids
		p("fld-oil", domain.CategoryFluids, maj, 5, "Engine oil level and condition"),
		p("fld-coolant", domain.CategoryFluids, maj, 5, "Coolant level and condition"),
		p("fld-trans", domain.CategoryFluids, maj, 4, "Transmission fluid on dipstick"),
		p("fld-diff", domain.CategoryFluids, std, 2, "Differential fluid level"),
		p("fld-washer", domain.CategoryFluids, min, 1, "Washer fluid level"),
		p("fld-antifreeze", domain.CategoryFluids, std, 2, "Coolant freeze protection"),
		p("fld-fuel", domain.CategoryFluids, crit, 8, "Fuel system leak inspection"),
		p("fld-under", domain.CategoryFluids, std, 3, "Fluid spotting under vehicle"),
		p("fld-history", domain.CategoryFluids, min, 1, "Oil service history and sticker"),
		p("fld-caps", domain.CategoryFluids, min, 1, "Reservoir caps and seals"),

		// Convenience
		p("cnv-keyfob", domain.CategoryConvenience, min, 1, "Key fob operation and battery"),
		p("cnv-locks", domain.CategoryConvenience, std, 2, "Central locking operation"),
		p("cnv-windows", domain.CategoryConvenience, std, 2, "Power window operation"),
		p("cnv-sunroof", domain.CategoryConvenience, min, 2, "Sunroof operation and seal"),
		p("cnv-power-seats", domain.CategoryConvenience, min, 1, "Power seat adjustment"),
		p("cnv-cruise", domain.CategoryConvenience, std, 2, "Cruise control engagement"),
		p("cnv-wheel-controls", domain.CategoryConvenience, min, 1, "Steering wheel control buttons"),
		p("cnv-outlets", domain.CategoryConvenience, min, 1, "12V and USB power outlets"),
		p("cnv-trunk-release", domain.CategoryConvenience, min, 1, "Remote trunk release"),
		p("cnv-remote-start", domain.CategoryConvenience, min, 1, "Remote start operation"),

		// Technology
		p("tec-infotainment", domain.CategoryTechnology, std, 2, "Infotainment unit operation"),
		p("tec-bluetooth", domain.CategoryTechnology, min, 1, "Bluetooth pairing"),
		p("tec-camera", domain.CategoryTechnology, std, 3, "Backup camera operation"),
		p("tec-sensors", domain.CategoryTechnology, std, 3, "Parking sensor operation"),
		p("tec-nav", domain.CategoryTechnology, min, 1, "Navigation system operation"),
		p("tec-audio", domain.CategoryTechnology, min, 1, "Speakers and audio quality"),
		p("tec-carplay", domain.CategoryTechnology, min, 1, "CarPlay/Android Auto connection"),
		p("tec-adas", domain.CategoryTechnology, maj, 4, "Driver assistance fault lamps"),
		p("tec-tpms", domain.CategoryTechnology, std, 3, "TPMS warning lamp"),
		p("tec-usb", domain.CategoryTechnology, min, 1, "USB data port operation"),

		// Safety equipment
		p("sfe-belts-front", domain.CategorySafetyEquipment, crit, 10, "Front seat belt latch and retraction"),
		p("sfe-belts-rear", domain.CategorySafetyEquipment, crit, 8, "Rear seat belt latch and retraction"),
		p("sfe-airbag-lamp", domain.CategorySafetyEquipment, crit, 10, "Airbag warning lamp status"),
		p("sfe-airbags", domain.CategorySafetyEquipment, crit, 9, "Airbag presence, no deployment evidence"),
		p("sfe-child-anchors", domain.CategorySafetyEquipment, maj, 4, "Child seat anchor points"),
		p("sfe-headrests", domain.CategorySafetyEquipment, std, 2, "Headrest presence and adjustment"),
		p("sfe-child-locks", domain.CategorySafetyEquipment, std, 2, "Child safety door locks"),
		p("sfe-triangle", domain.CategorySafetyEquipment, min, 1, "Warning triangle and emergency kit"),
		p("sfe-first-aid", domain.CategorySafetyEquipment, min, 1, "First aid kit"),
		p("sfe-tools", domain.CategorySafetyEquipment, min, 1, "Jack and wheel tools"),
	}

	return MustNew(VersionInitial160, "160-Point Initial Inspection", defs)
}

// Quarterly returns the quarterly safety check: the safety-relevant subset
// of the initial inspection, re-issued as its own version so the two weight
// tables never mix.
func Quarterly() *Registry {
	const (
		crit = domain.TierCritical
		maj  = domain.TierMajor
		std  = domain.TierStandard
		min  = domain.TierMinor
	)

	defs := []PointDefinition{
		p("brk-pads-front", domain.CategoryBraking, crit, 10, "Front brake pad thickness"),
		p("brk-pads-rear", domain.CategoryBraking, crit, 10, "Rear brake pad thickness"),
		p("brk-lines", domain.CategoryBraking, crit, 12, "Brake line and hose integrity"),
		p("brk-fluid", domain.CategoryBraking, crit, 8, "Brake fluid level and condition"),
		p("brk-pedal", domain.CategoryBraking, crit, 8, "Brake pedal feel and travel"),
		p("str-play", domain.CategorySteering, crit, 12, "Steering wheel free play"),
		p("str-tie-rods", domain.CategorySteering, crit, 10, "Tie rod end wear"),
		p("str-ball-joints", domain.CategorySteering, crit, 10, "Ball joint wear"),
		p("tir-tread-fl", domain.CategoryTires, crit, 9, "Front-left tire tread depth"),
		p("tir-tread-fr", domain.CategoryTires, crit, 9, "Front-right tire tread depth"),
		p("tir-tread-rl", domain.CategoryTires, crit, 9, "Rear-left tire tread depth"),
		p("tir-tread-rr", domain.CategoryTires, crit, 9, "Rear-right tire tread depth"),
		p("tir-pressure", domain.CategoryTires, maj, 4, "Tire pressures at placard values"),
		p("tir-sidewall", domain.CategoryTires, crit, 10, "Sidewall damage, cuts, or bulges"),
		p("lgt-head-low", domain.CategoryLighting, maj, 6, "Low beam operation and aim"),
		p("lgt-brake", domain.CategoryLighting, crit, 8, "Brake lamp operation"),
		p("lgt-turn", domain.CategoryLighting, maj, 5, "Turn signal operation"),
		p("eng-leaks", domain.CategoryEngine, maj, 6, "Oil and coolant leaks"),
		p("eng-belts", domain.CategoryEngine, maj, 5, "Drive belt condition"),
		p("eng-mil", domain.CategoryEngine, maj, 7, "Check engine lamp status"),
		p("sus-shocks", domain.CategorySuspension, maj, 6, "Shock absorber damping and leaks"),
		p("sus-wheel-bearings", domain.CategorySuspension, crit, 8, "Wheel bearing play and noise"),
		p("ele-battery", domain.CategoryElectrical, maj, 5, "Battery load test and terminals"),
		p("ele-wipers", domain.CategoryElectrical, maj, 4, "Wiper and washer operation"),
		p("ele-horn", domain.CategoryElectrical, maj, 4, "Horn operation"),
		p("fld-oil", domain.CategoryFluids, maj, 5, "Engine oil level and condition"),
		p("fld-coolant", domain.CategoryFluids, maj, 5, "Coolant level and condition"),
		p("fld-fuel", domain.CategoryFluids, crit, 8, "Fuel system leak inspection"),
		p("ext-glass", domain.CategoryExterior, maj, 4, "Windshield cracks and chips"),
		p("ext-wiper-blades", domain.CategoryExterior, min, 1, "Wiper blade condition"),
		p("sfe-belts-front", domain.CategorySafetyEquipment, crit, 10, "Front seat belt latch and retraction"),
		p("sfe-airbag-lamp", domain.CategorySafetyEquipment, crit, 10, "Airbag warning lamp status"),
		p("tec-tpms", domain.CategoryTechnology, std, 3, "TPMS warning lamp"),
		p("hvc-defrost", domain.CategoryHVAC, std, 3, "Windshield defrost performance"),
		p("int-mirror", domain.CategoryInterior, std, 2, "Rearview mirror condition"),
		p("frm-rust", domain.CategoryFrame, crit, 8, "Structural rust perforation"),
	}

	return MustNew(VersionQuarterly, "Quarterly Safety Check", defs)
}
