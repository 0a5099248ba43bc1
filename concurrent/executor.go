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

// Package concurrent runs tasks on a pool of goroutines.
package concurrent

import (
	"errors"
	"time"
)

// Task represents an instance that can be executed by an Executor.
type Task interface {
	// Run performs actions to complete a Task. The return value is passed to the TaskHandle of the
	// task.
	Run() (interface{}, error)
}

// The TaskFunc type is an adapter to allow the use of ordinary functions as a Task.
type TaskFunc func() (interface{}, error)

var _ Task = (TaskFunc)(nil)

// Run implements Task. It calls f().
func (f TaskFunc) Run() (interface{}, error) {
	return f()
}

// Error values returned from Executor and TaskHandle
var (
	// ErrTaskCancelled indicates the task is cancelled.
	ErrTaskCancelled = errors.New("task was cancelled")

	// ErrTaskNotCancellable is returned by Cancel once the task has started.
	ErrTaskNotCancellable = errors.New("task has already started")

	// ErrAwaitTaskResultTimeout indicates AwaitResult runs out of time to wait for result.
	ErrAwaitTaskResultTimeout = errors.New("timeout while waiting task result")

	// ErrExecutorShutdown is returned by Submit after Shutdown.
	ErrExecutorShutdown = errors.New("executor has been shut down")
)

// TaskHandle tracks progress of a Task and can be used to cancel execution and/or wait for
// completion.
type TaskHandle interface {
	// Cancel tries to cancel execution of the associated task. It fails once the task has started.
	Cancel() error

	// AwaitResult blocks caller until the underlying task completed or timeout. A zero timeout waits
	// without limit. Possible return values are:
	//
	//  1. (nil, ErrTaskCancelled): task was cancelled.
	//  2. (nil, ErrAwaitTaskResultTimeout)
	//  3. (any, any): the result returned from the Run method of corresponding task.
	AwaitResult(timeout time.Duration) (interface{}, error)
}

// Executor provides interfaces to manage and to execute tasks.
type Executor interface {
	// Shutdown shuts down the executor. Previously submitted tasks are executed but no new tasks will
	// be accepted. It is an no-op if the executor has already shut down. The returned channel
	// receives a value once all remaining tasks have completed.
	Shutdown() (terminated <-chan bool, err error)

	// Submit submits a task for execution. The method only arranges task for execution. The actual
	// execution may occur sometime later.
	Submit(task Task) (TaskHandle, error)
}
