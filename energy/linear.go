package energy

// linearModel implements the Linear drone energy variant:
// energy per phase = (beta*payload + gamma) * phase_duration.
type linearModel struct {
	cfg Config
}

func newLinearModel(cfg Config) *linearModel {
	return &linearModel{cfg: cfg}
}

func (m *linearModel) PhaseTime(phase Phase, distanceOrAltitude, payload float64) float64 {
	return phaseTimeKinematic(phase, distanceOrAltitude, m.cfg.TakeoffSpeed, m.cfg.CruiseSpeed, m.cfg.LandingSpeed)
}

func (m *linearModel) PhaseEnergy(phase Phase, distanceOrAltitude, payload float64) float64 {
	dur := m.PhaseTime(phase, distanceOrAltitude, payload)
	power := m.cfg.Beta*payload + m.cfg.Gamma
	if power < 0 {
		power = 0
	}
	return power * dur
}

func (m *linearModel) BatteryCapacity() float64   { return m.cfg.Battery }
func (m *linearModel) Capacity() float64          { return m.cfg.Capacity }
func (m *linearModel) Feasible(_, _ float64) bool { return true }
