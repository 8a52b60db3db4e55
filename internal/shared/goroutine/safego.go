// Package goroutine provides panic-isolated goroutine launching.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orderline-io/orderline/internal/shared/logger"
)

// SafeGo launches fn in a goroutine with panic recovery. A panic is logged
// with its stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
