package usecase

import "context"

// Probe checks one backing service
type Probe func(ctx context.Context) error

type HealthUsecase interface {
	// Check reports each probe's status and whether all of them passed
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	probes map[string]Probe
}

func NewHealthUsecase(probes map[string]Probe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{
		"status": "ok",
	}
	healthy := true
	for name, probe := range u.probes {
		if err := probe(ctx); err != nil {
			status[name] = "unavailable"
			healthy = false
			continue
		}
		status[name] = "ok"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
