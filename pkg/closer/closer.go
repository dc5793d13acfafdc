// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при завершении приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer обеспечивает потокобезопасное закрытие ресурсов.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []Func
}

func New() *Closer {
	return &Closer{}
}

// Add добавляет функцию в список закрытия.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно запускает закрытие всех зарегистрированных функций (LIFO).
// При отмене контекста оставшиеся функции не вызываются.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				msgs = append(msgs, fmt.Sprintf("[!] shutdown interrupted, %d resource(s) left open", i+1))
				err = fmt.Errorf("shutdown incomplete:\n%s", strings.Join(msgs, "\n"))
				return
			default:
			}

			if closeErr := funcs[i](ctx); closeErr != nil {
				msgs = append(msgs, fmt.Sprintf("[!] %v", closeErr))
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}
