package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a simulation run.
type SimLogEntry struct {
	Tick     int
	Agent    int     // villager id, or -1 for world-level events
	Category string  // mode, nav, catch, player, round
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric payload
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] V03  mode    change      chase → halt
func (e SimLogEntry) String() string {
	who := "--"
	if e.Agent >= 0 {
		who = fmt.Sprintf("V%02d", e.Agent)
	}
	return fmt.Sprintf("[T=%03d] %-4s %-7s %-12s %s", e.Tick, who, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a run. It is unbounded and
// machine-readable; scenario tests dump and filter it, the HUD does not.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
	tick    *int
}

// NewSimLog creates a SimLog reading the current tick through tick. When
// verbose is true, per-tick noise (failed pathfinds and the like) is recorded
// as well.
func NewSimLog(verbose bool, tick *int) *SimLog {
	return &SimLog{verbose: verbose, tick: tick}
}

func (sl *SimLog) add(agent int, category, key, value string, numVal float64) {
	t := 0
	if sl.tick != nil {
		t = *sl.tick
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     t,
		Agent:    agent,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Add records a new entry. A nil SimLog drops it, so callers never branch.
func (sl *SimLog) Add(agent int, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.add(agent, category, key, value, numVal)
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(agent int, category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.add(agent, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	if sl == nil {
		return nil
	}
	return sl.entries
}

// Filter returns entries matching category and key. Empty strings match all.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	if sl == nil {
		return nil
	}
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Dump renders every entry, one per line.
func (sl *SimLog) Dump() string {
	if sl == nil || len(sl.entries) == 0 {
		return "(no log entries)"
	}
	var b strings.Builder
	for _, e := range sl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
