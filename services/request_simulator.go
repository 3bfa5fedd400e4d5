package services

import (
	"hash/fnv"
	"time"
)

// HashFailurePolicy is the default failure selector: the last task of a
// plan fails when the FNV-1a hash of the request id leaves residue 0
// modulo 4, so roughly a quarter of requests end with a failure.
func HashFailurePolicy(requestID string) bool {
	h := fnv.New32a()
	h.Write([]byte(requestID))
	return h.Sum32()%4 == 0
}

// simulate advances one request through its lifecycle: after the readiness
// delay the request is marked ready, then each task transitions in creation
// order with a fixed pause between steps. Every step re-checks that the
// registry entry still exists and exits silently when it was evicted; a
// simulation never errors and never retries.
func (r *RequestRegistry) simulate(requestID string) {
	time.Sleep(r.readyDelay)

	if !r.markReady(requestID) {
		return
	}

	total := r.taskCount(requestID)
	for i := 0; i < total; i++ {
		time.Sleep(r.taskDelay)
		if !r.advanceTask(requestID, i, total) {
			return
		}
	}
}

// markReady flips the request to ready. Returns false when the entry is gone.
func (r *RequestRegistry) markReady(requestID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[requestID]
	if !ok {
		return false
	}
	request.Ready = true
	request.Status = RequestStatusReady
	return true
}

func (r *RequestRegistry) taskCount(requestID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks[requestID])
}

// advanceTask applies the scripted transition for the task at index:
// the first task completes, the second moves to in_progress, the last one
// fails when the policy fires, everything else completes. Returns false
// when the entry is gone.
func (r *RequestRegistry) advanceTask(requestID string, index, total int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, ok := r.tasks[requestID]
	if !ok || index >= len(tasks) {
		return false
	}

	switch {
	case index == 0:
		tasks[index].Status = SimTaskCompleted
	case index == 1:
		tasks[index].Status = SimTaskInProgress
	case index == total-1:
		if r.shouldFail(requestID) {
			tasks[index].Status = SimTaskFailed
		} else {
			tasks[index].Status = SimTaskCompleted
		}
	default:
		tasks[index].Status = SimTaskCompleted
	}
	return true
}
