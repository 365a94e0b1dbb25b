// FILE: lixenwraith/tlog/timer.go
package tlog

import "time"

// TimerSet holds all timers used in processLogs
type TimerSet struct {
	waitTimer       *time.Timer
	heartbeatTicker *time.Ticker
	heartbeatChan   <-chan time.Time
}

// setupProcessingTimers creates the wait timer and the optional heartbeat ticker
func (l *Logger) setupProcessingTimers() *TimerSet {
	timers := &TimerSet{}

	// Created stopped; the loop arms it with the policy wait
	timers.waitTimer = time.NewTimer(time.Hour)
	timers.waitTimer.Stop()

	timers.heartbeatChan = l.setupHeartbeatTimer(timers)

	return timers
}

// closeProcessingTimers stops all active timers
func (l *Logger) closeProcessingTimers(timers *TimerSet) {
	timers.waitTimer.Stop()
	if timers.heartbeatTicker != nil {
		timers.heartbeatTicker.Stop()
	}
}

// setupHeartbeatTimer configures the heartbeat ticker if enabled
func (l *Logger) setupHeartbeatTimer(timers *TimerSet) <-chan time.Time {
	if interval := l.heartbeatInterval(); interval > 0 {
		timers.heartbeatTicker = time.NewTicker(interval)
		return timers.heartbeatTicker.C
	}
	return nil
}
