package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// ProcessedCrash is the processed form of a crash report
type ProcessedCrash struct {
	UUID            types.CrashID   `json:"uuid"`
	Product         types.Product   `json:"product"`
	Version         types.Version   `json:"version"`
	Build           string          `json:"build"`
	Signature       types.Signature `json:"signature"`
	ProcessType     *string         `json:"process_type"`
	OSName          string          `json:"os_name"`
	OSVersion       string          `json:"os_version"`
	CPUName         string          `json:"cpu_name"`
	CPUInfo         string          `json:"cpu_info"`
	Reason          string          `json:"reason"`
	Address         string          `json:"address"`
	URL             string          `json:"url"`
	UserComments    string          `json:"user_comments"`
	AppNotes        string          `json:"app_notes"`
	DateProcessed   string          `json:"date_processed"`
	ClientCrashDate string          `json:"client_crash_date"`
	Uptime          FlexInt         `json:"uptime"`
	InstallAge      FlexInt         `json:"install_age"`
	HangID          types.HangID    `json:"hangid"`
	Dump            string          `json:"dump"`
}

// ResolveProcessType maps the raw process_type to the label shown on the report page
func (c *ProcessedCrash) ResolveProcessType() types.ProcessType {
	if c.ProcessType == nil {
		return types.ProcessTypeBrowser
	}
	switch *c.ProcessType {
	case "plugin":
		return types.ProcessTypePlugin
	case "content":
		return types.ProcessTypeContent
	default:
		return types.ProcessTypeUnknown
	}
}

// RawCrash is the submitted crash metadata. Its keys are client-defined.
type RawCrash map[string]json.RawMessage

// HangID returns the HangID annotation if present
func (r RawCrash) HangID() (types.HangID, bool) {
	raw, ok := r["HangID"]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return types.HangID(s), true
}

// String returns the value of key as text, unquoting JSON strings
func (r RawCrash) String(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Keys returns the annotation names in sorted order
func (r RawCrash) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CrashPairs lists the crash IDs sharing a hang ID with a crash
type CrashPairs []types.CrashID

// Module is a loaded module line of a crash dump
type Module struct {
	Filename        string
	Version         string
	DebugFilename   string
	DebugIdentifier string
}

// Frame is one stack frame of a crash dump thread
type Frame struct {
	Number     int
	Module     string
	Signature  string
	Source     string
	SourceLine string
	Address    string
}

// Thread is the stack of one thread in a crash dump
type Thread struct {
	Number int
	Frames []Frame
}

// Dump is the parsed pipe-delimited crash dump
type Dump struct {
	Modules        []Module
	Threads        []Thread
	CrashingThread int
}

// ParseDump splits a pipe-delimited dump into module and stack frame records.
// The crashing thread is the first thread that appears. Lines that are neither
// module nor frame lines, or that are too short, are skipped.
func ParseDump(dump string) *Dump {
	result := &Dump{
		Modules:        []Module{},
		Threads:        []Thread{},
		CrashingThread: -1,
	}
	threads := make(map[int]*Thread)

	for _, line := range strings.Split(dump, "\n") {
		entry := strings.Split(line, "|")

		switch {
		case entry[0] == "Module":
			if len(entry) < 5 {
				continue
			}
			result.Modules = append(result.Modules, Module{
				Filename:        entry[1],
				Version:         entry[2],
				DebugFilename:   entry[3],
				DebugIdentifier: entry[4],
			})

		case isDigits(entry[0]):
			if len(entry) < 7 {
				continue
			}
			threadNumber, err := strconv.Atoi(entry[0])
			if err != nil {
				continue
			}
			frameNumber, err := strconv.Atoi(entry[1])
			if err != nil {
				continue
			}

			if len(threads) == 0 {
				result.CrashingThread = threadNumber
			}

			thread, ok := threads[threadNumber]
			if !ok {
				thread = &Thread{Number: threadNumber}
				threads[threadNumber] = thread
			}
			thread.Frames = append(thread.Frames, Frame{
				Number:     frameNumber,
				Module:     entry[2],
				Signature:  entry[3],
				Source:     entry[4],
				SourceLine: entry[5],
				Address:    entry[6],
			})
		}
	}

	for _, thread := range threads {
		result.Threads = append(result.Threads, *thread)
	}
	sort.Slice(result.Threads, func(i, j int) bool {
		return result.Threads[i].Number < result.Threads[j].Number
	})

	return result
}

// Thread returns the thread with the given number
func (d *Dump) Thread(number int) *Thread {
	for i := range d.Threads {
		if d.Threads[i].Number == number {
			return &d.Threads[i]
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
