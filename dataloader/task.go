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

package dataloader

import (
	"context"
	"sync"

	"github.com/botobag/forge/concurrent/future"
)

// task loads the value at one key. It completes once with either a value or an error.
type task struct {
	key Key

	mutex  sync.Mutex
	done   bool
	value  interface{}
	err    error
	wakers []future.Waker
}

func newTask(key Key) *task {
	return &task{key: key}
}

// complete stores the result and wakes every future waiting on the task. It returns false if the
// task was already completed.
func (t *task) complete(value interface{}, err error) bool {
	t.mutex.Lock()
	if t.done {
		t.mutex.Unlock()
		return false
	}
	t.done = true
	t.value = value
	t.err = err
	wakers := t.wakers
	t.wakers = nil
	t.mutex.Unlock()

	for _, waker := range wakers {
		_ = waker.Wake()
	}
	return true
}

// result returns the result and true if the task is completed. Otherwise waker, if given, is
// recorded to be woken on completion.
func (t *task) result(waker future.Waker) (interface{}, bool, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.done {
		return t.value, true, t.err
	}
	if waker != nil {
		t.wakers = append(t.wakers, waker)
	}
	return nil, false, nil
}

// taskFuture is the future.Future returned by Load. Polling a future whose task is still queued
// dispatches the queue of the loader.
type taskFuture struct {
	ctx    context.Context
	loader *Loader
	task   *task
}

var _ future.Future = (*taskFuture)(nil)

// Poll implements future.Future.
func (f *taskFuture) Poll(waker future.Waker) (future.PollResult, error) {
	if value, done, err := f.task.result(nil); done {
		return value, err
	}

	f.loader.Dispatch(f.ctx)

	if value, done, err := f.task.result(waker); done {
		return value, err
	}
	return future.PollResultPending, nil
}
