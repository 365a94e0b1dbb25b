// FILE: lixenwraith/tlog/policy.go
package tlog

import (
	"strconv"
	"strings"
	"time"
)

// PolicyKind identifies a timeout strategy
type PolicyKind int

const (
	PolicyConstant PolicyKind = iota
	PolicyDynamic
	PolicyDynamicThreshold
	PolicyDynamic2
	PolicyLinear
)

// TimeoutPolicy maps the backlog drained in one pass to the wait before the
// next pass. It is an immutable value; construct it with one of the
// constructors below. The worker never waits less than MinWaitTime.
type TimeoutPolicy struct {
	kind       PolicyKind
	idle       time.Duration // constant wait, idle wait, or linear max
	busy       time.Duration // busy wait, first tier, or linear min
	busy2      time.Duration // second tier (dynamic2)
	threshold  int
	threshold2 int
}

// Constant always waits d. Values under MinWaitTime, including zero, are
// raised to MinWaitTime by the worker.
func Constant(d time.Duration) TimeoutPolicy {
	return TimeoutPolicy{kind: PolicyConstant, idle: d}
}

// Dynamic waits busy when anything was drained, idle otherwise
func Dynamic(idle, busy time.Duration) TimeoutPolicy {
	return TimeoutPolicy{kind: PolicyDynamic, idle: idle, busy: busy}
}

// DynamicThreshold waits busy when more than threshold lines were drained
func DynamicThreshold(idle, busy time.Duration, threshold int) TimeoutPolicy {
	return TimeoutPolicy{kind: PolicyDynamicThreshold, idle: idle, busy: busy, threshold: threshold}
}

// Dynamic2 is a three tier policy: backlog <= t1 waits idle, <= t2 waits d1,
// anything above waits d2
func Dynamic2(idle, d1 time.Duration, t1 int, d2 time.Duration, t2 int) TimeoutPolicy {
	return TimeoutPolicy{
		kind:       PolicyDynamic2,
		idle:       idle,
		busy:       d1,
		threshold:  t1,
		busy2:      d2,
		threshold2: t2,
	}
}

// Linear interpolates from max at backlog 0 down to min at backlog threshold
func Linear(minWait, maxWait time.Duration, threshold int) TimeoutPolicy {
	return TimeoutPolicy{kind: PolicyLinear, busy: minWait, idle: maxWait, threshold: threshold}
}

// DefaultPolicy is Dynamic with a long idle wait and a short busy wait
func DefaultPolicy() TimeoutPolicy {
	return Dynamic(5*DefaultTimeout, DefaultTimeout)
}

// Kind returns the strategy of the policy
func (p TimeoutPolicy) Kind() PolicyKind {
	return p.kind
}

// Timeout returns the wait for the given backlog. The result is not clamped;
// the worker applies the MinWaitTime floor when it schedules the next pass.
func (p TimeoutPolicy) Timeout(backlog int) time.Duration {
	if backlog < 0 {
		backlog = 0
	}

	switch p.kind {
	case PolicyConstant:
		return p.idle

	case PolicyDynamic:
		if backlog > 0 {
			return p.busy
		}
		return p.idle

	case PolicyDynamicThreshold:
		if backlog > p.threshold {
			return p.busy
		}
		return p.idle

	case PolicyDynamic2:
		switch {
		case backlog <= p.threshold:
			return p.idle
		case backlog <= p.threshold2:
			return p.busy
		default:
			return p.busy2
		}

	case PolicyLinear:
		if p.threshold <= 0 || backlog >= p.threshold {
			return p.busy
		}
		factor := 1 - float64(backlog)/float64(p.threshold)
		return p.busy + time.Duration(factor*float64(p.idle-p.busy))
	}

	return p.idle
}

// Validate rejects negative durations and inconsistent tiers
func (p TimeoutPolicy) Validate() error {
	if p.idle < 0 || p.busy < 0 || p.busy2 < 0 {
		return fmtErrorf("timeout policy '%s' has a negative duration", p)
	}
	switch p.kind {
	case PolicyDynamicThreshold, PolicyLinear:
		if p.threshold < 0 {
			return fmtErrorf("timeout policy '%s' has a negative threshold", p)
		}
	case PolicyDynamic2:
		if p.threshold < 0 || p.threshold2 < p.threshold {
			return fmtErrorf("timeout policy '%s' needs 0 <= threshold1 <= threshold2", p)
		}
	}
	if p.kind == PolicyLinear && p.busy > p.idle {
		return fmtErrorf("timeout policy '%s' has min greater than max", p)
	}
	return nil
}

// String renders the policy in the form accepted by ParsePolicy, durations in ms
func (p TimeoutPolicy) String() string {
	ms := func(d time.Duration) string { return strconv.FormatInt(d.Milliseconds(), 10) }
	n := strconv.Itoa

	switch p.kind {
	case PolicyConstant:
		return "constant:" + ms(p.idle)
	case PolicyDynamic:
		return "dynamic:" + ms(p.idle) + "," + ms(p.busy)
	case PolicyDynamicThreshold:
		return "dynamic:" + ms(p.idle) + "," + ms(p.busy) + "," + n(p.threshold)
	case PolicyDynamic2:
		return "dynamic2:" + ms(p.idle) + "," + ms(p.busy) + "," + n(p.threshold) + "," + ms(p.busy2) + "," + n(p.threshold2)
	case PolicyLinear:
		return "linear:" + ms(p.busy) + "," + ms(p.idle) + "," + n(p.threshold)
	}
	return "unknown"
}

// ParsePolicy parses "kind:n1,n2,..." where durations are milliseconds.
//
//	constant:1000
//	dynamic:5000,1000
//	dynamic:5000,1000,10
//	dynamic2:5000,1000,10,100,50
//	linear:100,1000,10
func ParsePolicy(s string) (TimeoutPolicy, error) {
	kind, rest, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return TimeoutPolicy{}, fmtErrorf("invalid policy '%s', expected kind:values", s)
	}

	var nums []int64
	for _, field := range strings.Split(rest, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return TimeoutPolicy{}, fmtErrorf("invalid number '%s' in policy '%s': %w", field, s, err)
		}
		if v < 0 {
			return TimeoutPolicy{}, fmtErrorf("negative value %d in policy '%s'", v, s)
		}
		nums = append(nums, v)
	}

	ms := func(i int) time.Duration { return time.Duration(nums[i]) * time.Millisecond }

	var p TimeoutPolicy
	switch k := strings.ToLower(strings.TrimSpace(kind)); {
	case k == "constant" && len(nums) == 1:
		p = Constant(ms(0))
	case k == "dynamic" && len(nums) == 2:
		p = Dynamic(ms(0), ms(1))
	case k == "dynamic" && len(nums) == 3:
		p = DynamicThreshold(ms(0), ms(1), int(nums[2]))
	case k == "dynamic2" && len(nums) == 5:
		p = Dynamic2(ms(0), ms(1), int(nums[2]), ms(3), int(nums[4]))
	case k == "linear" && len(nums) == 3:
		p = Linear(ms(0), ms(1), int(nums[2]))
	default:
		return TimeoutPolicy{}, fmtErrorf("invalid policy '%s' (use constant:ms, dynamic:idle,busy[,threshold], dynamic2:idle,ms1,t1,ms2,t2, or linear:min,max,threshold)", s)
	}

	if err := p.Validate(); err != nil {
		return TimeoutPolicy{}, err
	}
	return p, nil
}
