/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package concurrent

import (
	"fmt"
	"sync"
	"time"
)

// WorkerPoolExecutorConfig contains options to configure a WorkerPoolExecutor.
type WorkerPoolExecutorConfig struct {
	// The maximum number of workers allowed in pool (required, must be greater than 0)
	MaxPoolSize uint32

	// The number of workers started with the pool
	MinPoolSize uint32
}

// Validate verifies config values.
func (config *WorkerPoolExecutorConfig) Validate() error {
	if config.MaxPoolSize == 0 {
		return fmt.Errorf(`WorkerPoolExecutor: MaxPoolSize must be a non-zero value which specifies ` +
			`the maximum number of workers to be created by the executor. If you have no idea, try to ` +
			`set the value to uint32(runtime.GOMAXPROCS(-1)).`)
	}

	if config.MaxPoolSize < config.MinPoolSize {
		return fmt.Errorf(`WorkerPoolExecutor: MaxPoolSize (%d) should be greater than MinPoolSize (%d)`,
			config.MaxPoolSize, config.MinPoolSize)
	}
	return nil
}

type workerPoolTaskState int

const (
	workerPoolTaskPending workerPoolTaskState = iota
	workerPoolTaskRunning
	workerPoolTaskDone
)

// workerPoolTask wraps a submitted Task and implements its TaskHandle.
type workerPoolTask struct {
	task Task

	mutex  sync.Mutex
	state  workerPoolTaskState
	result interface{}
	err    error

	// done is closed when the task completes or is cancelled.
	done chan struct{}
}

var _ TaskHandle = (*workerPoolTask)(nil)

func newWorkerPoolTask(task Task) *workerPoolTask {
	return &workerPoolTask{
		task: task,
		done: make(chan struct{}),
	}
}

// start moves the task to running. It returns false if the task was cancelled.
func (t *workerPoolTask) start() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.state != workerPoolTaskPending {
		return false
	}
	t.state = workerPoolTaskRunning
	return true
}

func (t *workerPoolTask) run() {
	if !t.start() {
		return
	}

	result, err := t.task.Run()

	t.mutex.Lock()
	t.state = workerPoolTaskDone
	t.result, t.err = result, err
	t.mutex.Unlock()
	close(t.done)
}

// Cancel implements TaskHandle.
func (t *workerPoolTask) Cancel() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.state != workerPoolTaskPending {
		return ErrTaskNotCancellable
	}
	t.state = workerPoolTaskDone
	t.err = ErrTaskCancelled
	close(t.done)
	return nil
}

// AwaitResult implements TaskHandle.
func (t *workerPoolTask) AwaitResult(timeout time.Duration) (interface{}, error) {
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-t.done:
		case <-timer.C:
			return nil, ErrAwaitTaskResultTimeout
		}
	} else {
		<-t.done
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.result, t.err
}

// WorkerPoolExecutor runs tasks on a pool of goroutines. Workers are spawned on demand up to
// MaxPoolSize and live until the executor shuts down.
type WorkerPoolExecutor struct {
	config WorkerPoolExecutorConfig

	// mutex guards the fields below. cond signals workers about new tasks and shutdown.
	mutex       sync.Mutex
	cond        *sync.Cond
	queue       []*workerPoolTask
	workers     uint32
	idleWorkers uint32
	shutdown    bool
	terminated  bool

	// terminations are notified once the last worker exits after shutdown.
	terminations []chan bool
}

var _ Executor = (*WorkerPoolExecutor)(nil)

// NewWorkerPoolExecutor creates an executor from config.
func NewWorkerPoolExecutor(config WorkerPoolExecutorConfig) (*WorkerPoolExecutor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	executor := &WorkerPoolExecutor{
		config: config,
	}
	executor.cond = sync.NewCond(&executor.mutex)

	executor.mutex.Lock()
	for i := uint32(0); i < config.MinPoolSize; i++ {
		executor.spawnWorker()
	}
	executor.mutex.Unlock()

	return executor, nil
}

// spawnWorker must be called with mutex held.
func (executor *WorkerPoolExecutor) spawnWorker() {
	executor.workers++
	go executor.work()
}

func (executor *WorkerPoolExecutor) work() {
	executor.mutex.Lock()
	for {
		for len(executor.queue) == 0 && !executor.shutdown {
			executor.idleWorkers++
			executor.cond.Wait()
			executor.idleWorkers--
		}

		if len(executor.queue) == 0 {
			// Shut down with nothing left to run.
			break
		}

		task := executor.queue[0]
		executor.queue[0] = nil
		executor.queue = executor.queue[1:]

		executor.mutex.Unlock()
		task.run()
		executor.mutex.Lock()
	}

	executor.workers--
	if executor.workers == 0 {
		executor.terminate()
	}
	executor.mutex.Unlock()
}

// terminate must be called with mutex held.
func (executor *WorkerPoolExecutor) terminate() {
	executor.terminated = true
	for _, termination := range executor.terminations {
		termination <- true
	}
	executor.terminations = nil
}

// Submit implements Executor.
func (executor *WorkerPoolExecutor) Submit(task Task) (TaskHandle, error) {
	t := newWorkerPoolTask(task)

	executor.mutex.Lock()
	defer executor.mutex.Unlock()

	if executor.shutdown {
		return nil, ErrExecutorShutdown
	}

	executor.queue = append(executor.queue, t)
	if executor.idleWorkers == 0 && executor.workers < executor.config.MaxPoolSize {
		executor.spawnWorker()
	} else {
		executor.cond.Signal()
	}
	return t, nil
}

// Shutdown implements Executor.
func (executor *WorkerPoolExecutor) Shutdown() (<-chan bool, error) {
	termination := make(chan bool, 1)

	executor.mutex.Lock()
	defer executor.mutex.Unlock()

	executor.shutdown = true
	if executor.workers == 0 {
		executor.terminated = true
	}

	if executor.terminated {
		termination <- true
	} else {
		executor.terminations = append(executor.terminations, termination)
		executor.cond.Broadcast()
	}
	return termination, nil
}
