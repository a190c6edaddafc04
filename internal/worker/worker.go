// File: internal/worker/worker.go
package worker

import (
	"context"
	"errors"
	"sync"
)

// Task 一個工作單元；回傳的錯誤會在 Stop 時一併回報
type Task func(ctx context.Context) error

// Pool 固定數量 goroutine 的工作池
type Pool interface {
	Submit(Task)
	Stop() error
}

// NewPool 建立 n 個 worker 的工作池，n<=0 時為 1
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{ctx: ctx, jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job == nil {
					continue
				}
				// context 已取消時仍要把 channel 消化完，避免 Submit 卡住
				if err := p.ctx.Err(); err != nil {
					p.record(err)
					continue
				}
				p.record(job(p.ctx))
			}
		}()
	}
	return p
}

type pool struct {
	ctx  context.Context
	jobs chan Task
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

func (p *pool) record(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop 關閉佇列並等待所有工作完成，回傳合併後的錯誤
func (p *pool) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
