// Package worker 執行背景工作（目前用於 blob 上傳完成紀錄）
package worker

import (
	"sync"

	"go.uber.org/zap"
)

// Task 一個背景工作
type Task func()

// Pool 固定數量 worker 的工作池
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool 建立 n 個 worker，n<=0 時為 1；工作 panic 會被記錄，不會終止 worker
func NewPool(n int, logger *zap.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &pool{jobs: make(chan Task), logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(id, job)
			}
		}(i)
	}
	return p
}

type pool struct {
	jobs     chan Task
	wg       sync.WaitGroup
	stopOnce sync.Once
	logger   *zap.Logger
}

func (p *pool) run(id int, job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()
	job()
}

// Submit 阻塞直到有 worker 接手；Stop 之後呼叫會 panic
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop 等待已送出的工作完成，可重複呼叫
func (p *pool) Stop() {
	p.stopOnce.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
