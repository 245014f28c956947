/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sz

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LoggingListener adapts a structured go-kit/log logger into a Listener,
// printing block and lifecycle progress through it instead of ad hoc
// Fprintf calls.
type LoggingListener struct {
	logger log.Logger
}

// NewLoggingListener wraps logger as a Listener.
func NewLoggingListener(logger log.Logger) *LoggingListener {
	return &LoggingListener{logger: logger}
}

// ProcessEvent logs evt at debug level for per-block events and info
// level for whole-array lifecycle events.
func (l *LoggingListener) ProcessEvent(evt *Event) {
	logger := l.logger
	switch evt.Type() {
	case EvtBlockStart, EvtBlockEnd, EvtBeforeEntropy, EvtAfterEntropy:
		logger = level.Debug(logger)
	default:
		logger = level.Info(logger)
	}

	_ = logger.Log(
		"event", evt.String(),
		"block", evt.BlockID(),
		"size", evt.Size(),
	)
}
