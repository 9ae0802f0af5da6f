package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var ErrNotFound = errors.New("not found")

type FailureReason struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// FailureReasons decodes from either {"reason": count} or [{"reason": ..., "count": ...}].
// Entries are kept sorted by count descending, then reason.
type FailureReasons []FailureReason

func (f *FailureReasons) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}

	var out FailureReasons
	switch data[0] {
	case '{':
		var m map[string]int
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failure reasons: %w", err)
		}
		out = make(FailureReasons, 0, len(m))
		for reason, count := range m {
			out = append(out, FailureReason{Reason: reason, Count: count})
		}
	case '[':
		var list []FailureReason
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failure reasons: %w", err)
		}
		out = list
	default:
		return fmt.Errorf("failure reasons: unexpected json %q", string(data[:1]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	*f = out
	return nil
}

func (f FailureReasons) Labels() []string {
	labels := make([]string, len(f))
	for i, r := range f {
		labels[i] = r.Reason
	}
	return labels
}

func (f FailureReasons) Counts() []int {
	counts := make([]int, len(f))
	for i, r := range f {
		counts[i] = r.Count
	}
	return counts
}

type Metrics struct {
	TotalAssigned  int            `json:"totalAssigned"`
	SuccessRate    float64        `json:"successRate"`
	FailureRate    float64        `json:"failureRate"`
	FailureReasons FailureReasons `json:"failureReasons"`
}

type PartnerAssignmentMetrics struct {
	PartnerName string `json:"partnerName"`
	Metrics
}
