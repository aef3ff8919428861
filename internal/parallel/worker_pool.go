// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel runs the per-file pipeline across a worker pool.
// Workers share only the immutable signature table and family map, so
// no synchronization beyond the channels is needed.
package parallel

import (
	"context"
	"sync"

	"extcheck/internal/report"
)

// ProcessFunc runs the whole pipeline for one file and returns its record.
type ProcessFunc func(path string) report.Record

// Pool manages parallel file processing.
type Pool struct {
	workers int
	jobs    chan string
	results chan report.Record
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	process ProcessFunc
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int, process ProcessFunc) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan string, workers*2),
		results: make(chan report.Record, workers*2),
		ctx:     ctx,
		cancel:  cancel,
		process: process,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Submit queues a file path for processing.
func (p *Pool) Submit(path string) {
	select {
	case p.jobs <- path:
	case <-p.ctx.Done():
	}
}

// Finish signals that no more jobs will be submitted, waits for the
// workers to drain the queue and closes the results channel.
func (p *Pool) Finish() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Results returns the channel records arrive on. It is closed by Finish.
func (p *Pool) Results() <-chan report.Record {
	return p.results
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for path := range p.jobs {
		record := p.process(path)
		select {
		case p.results <- record:
		case <-p.ctx.Done():
			return
		}
	}
}
