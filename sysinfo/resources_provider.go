package sysinfo

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/gosigar"
)

type ResourcesProvider struct{}

func NewResourcesProvider() ResourcesProvider {
	return ResourcesProvider{}
}

func (provider ResourcesProvider) TotalMemory() (uint64, error) {
	mem := sigar.Mem{}

	err := mem.Get()
	if err != nil {
		return 0, err
	}

	return mem.Total, nil
}

func (provider ResourcesProvider) FreeMemory() (uint64, error) {
	mem := sigar.Mem{}

	err := mem.Get()
	if err != nil {
		return 0, err
	}

	return mem.ActualFree, nil
}

func (provider ResourcesProvider) LoadAverage() (sigar.LoadAverage, error) {
	load := sigar.LoadAverage{}

	err := load.Get()
	if err != nil {
		return sigar.LoadAverage{}, err
	}

	return load, nil
}

// LogHostInfo records what the host looks like before any workers start.
// Failures only cost a log line.
func (provider ResourcesProvider) LogHostInfo(logger lager.Logger) {
	data := lager.Data{}

	if total, err := provider.TotalMemory(); err == nil {
		data["total-memory"] = total
	} else {
		logger.Debug("cannot-get-total-memory", lager.Data{"error": err.Error()})
	}

	if free, err := provider.FreeMemory(); err == nil {
		data["free-memory"] = free
	} else {
		logger.Debug("cannot-get-free-memory", lager.Data{"error": err.Error()})
	}

	if load, err := provider.LoadAverage(); err == nil {
		data["load-average"] = []float64{load.One, load.Five, load.Fifteen}
	} else {
		logger.Debug("cannot-get-load-average", lager.Data{"error": err.Error()})
	}

	logger.Info("host-info", data)
}
