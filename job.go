package main

import (
	"sync"

	"wedge/keyboard"
	"wedge/profile"
)

// jobFlags carries the command-line settings that compete with a profile.
// The *Set fields record whether a flag was given explicitly.
type jobFlags struct {
	backend    string
	backendSet bool
	initialMs  uint64
	initialSet bool
	itemMs     uint64
	itemSet    bool
	dryRun     bool
}

// buildJob merges a profile, positional codes and flags. Explicit flags win
// over the profile, which wins over flag defaults.
func buildJob(p *profile.Profile, args []string, f jobFlags) (job, error) {
	if p == nil {
		p = &profile.Profile{}
	}
	var j job

	j.InitialMs, j.ItemMs = p.Delays(f.initialMs, f.itemMs)
	if f.initialSet {
		j.InitialMs = f.initialMs
	}
	if f.itemSet {
		j.ItemMs = f.itemMs
	}

	switch {
	case f.dryRun:
		j.Backend = "stdout"
	case f.backendSet:
		j.Backend = f.backend
	case p.Backend != "":
		j.Backend = p.Backend
	default:
		j.Backend = keyboard.Default()
	}
	if _, err := keyboard.Lookup(j.Backend); err != nil {
		return job{}, err
	}

	j.Codes = make([]string, 0, len(p.Codes)+len(args))
	j.Codes = append(j.Codes, p.Codes...)
	j.Codes = append(j.Codes, args...)
	return j, nil
}

// currentJob is the job replayed by hotkey mode; profile reloads replace it.
type currentJob struct {
	mu sync.Mutex
	j  job
}

func (c *currentJob) get() job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.j
}

func (c *currentJob) set(j job) {
	c.mu.Lock()
	c.j = j
	c.mu.Unlock()
}
