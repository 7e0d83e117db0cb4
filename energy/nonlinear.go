package energy

// nonlinearModel implements the Nonlinear drone energy variant: same
// kinematics as Linear, but power draw is a payload-dependent quadratic
// with phase-specific additive terms rather than an affine one. Modeled
// after the payload-quadratic power curves common in UAV energy-of-flight
// literature:
//
//	power(payload) = k1*payload^2 + k2*payload + c1
//	vertical phases (takeoff/landing) add c4 (induced-drag term from thrust
//	  reversal near the ground)
//	cruise adds c5 (parasitic drag term at forward airspeed)
//	energy(phase) = power(payload)*duration(phase) + c2 (fixed avionics/ESC
//	  overhead per phase, independent of duration)
type nonlinearModel struct {
	cfg Config
}

func newNonlinearModel(cfg Config) *nonlinearModel {
	return &nonlinearModel{cfg: cfg}
}

func (m *nonlinearModel) PhaseTime(phase Phase, distanceOrAltitude, payload float64) float64 {
	return phaseTimeKinematic(phase, distanceOrAltitude, m.cfg.TakeoffSpeed, m.cfg.CruiseSpeed, m.cfg.LandingSpeed)
}

func (m *nonlinearModel) PhaseEnergy(phase Phase, distanceOrAltitude, payload float64) float64 {
	if phase == PhaseHover {
		return 0
	}
	dur := m.PhaseTime(phase, distanceOrAltitude, payload)
	power := m.cfg.K1*payload*payload + m.cfg.K2*payload + m.cfg.C1
	switch phase {
	case PhaseTakeoff, PhaseLanding:
		power += m.cfg.C4
	case PhaseCruise:
		power += m.cfg.C5
	}
	if power < 0 {
		power = 0
	}
	return power*dur + m.cfg.C2
}

func (m *nonlinearModel) BatteryCapacity() float64   { return m.cfg.Battery }
func (m *nonlinearModel) Capacity() float64          { return m.cfg.Capacity }
func (m *nonlinearModel) Feasible(_, _ float64) bool { return true }
